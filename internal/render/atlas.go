package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Glyph cell size. basicfont.Face7x13 fits with a pixel of padding.
const (
	GlyphWidth  = 8
	GlyphHeight = 14

	firstGlyph = 32  // space
	lastGlyph  = 126 // ~
	atlasCols  = 16
)

// FontAtlas holds the printable-ASCII glyph atlas and cached sub-images.
type FontAtlas struct {
	image  *ebiten.Image
	glyphs [lastGlyph + 1]*ebiten.Image
}

// NewFontAtlas rasterizes printable ASCII with basicfont.Face7x13 once at
// startup.
func NewFontAtlas() *FontAtlas {
	n := lastGlyph - firstGlyph + 1
	rows := (n + atlasCols - 1) / atlasCols
	img := image.NewNRGBA(image.Rect(0, 0, atlasCols*GlyphWidth, rows*GlyphHeight))

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: basicfont.Face7x13,
	}
	for code := firstGlyph; code <= lastGlyph; code++ {
		cx, cy := glyphOrigin(code)
		d.Dot = fixed.P(cx, cy+11) // baseline, leaves room for descenders
		d.DrawString(string(rune(code)))
	}

	eimg := ebiten.NewImageFromImage(img)
	a := &FontAtlas{image: eimg}
	for code := firstGlyph; code <= lastGlyph; code++ {
		cx, cy := glyphOrigin(code)
		rect := image.Rect(cx, cy, cx+GlyphWidth, cy+GlyphHeight)
		a.glyphs[code] = eimg.SubImage(rect).(*ebiten.Image)
	}
	return a
}

func glyphOrigin(code int) (x, y int) {
	i := code - firstGlyph
	return (i % atlasCols) * GlyphWidth, (i / atlasCols) * GlyphHeight
}

// Glyph returns the cached sub-image for an ASCII code, or nil for codes
// the atlas doesn't cover.
func (a *FontAtlas) Glyph(code byte) *ebiten.Image {
	if int(code) > lastGlyph {
		return nil
	}
	return a.glyphs[code]
}
