package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Cell represents a single character cell of the HUD overlay.
type Cell struct {
	Glyph byte  // ASCII code; 0 or ' ' draws nothing
	FG    uint8 // Foreground color index (0-15)
	BG    uint8 // Background color index (0-15); black is transparent
}

var blank = Cell{Glyph: ' ', FG: ColorWhite, BG: ColorBlack}

// CellBuffer is a 2D grid of character cells.
type CellBuffer struct {
	Cols  int
	Rows  int
	Cells []Cell
}

// NewCellBuffer creates a new cell buffer filled with blank cells.
func NewCellBuffer(cols, rows int) *CellBuffer {
	b := &CellBuffer{Cols: cols, Rows: rows, Cells: make([]Cell, cols*rows)}
	b.Clear()
	return b
}

// Set writes a single cell at (x, y). Out-of-bounds writes are ignored.
func (b *CellBuffer) Set(x, y int, glyph byte, fg, bg uint8) {
	if x >= 0 && x < b.Cols && y >= 0 && y < b.Rows {
		b.Cells[y*b.Cols+x] = Cell{Glyph: glyph, FG: fg, BG: bg}
	}
}

// Get reads a single cell at (x, y). Out-of-bounds reads return a blank cell.
func (b *CellBuffer) Get(x, y int) Cell {
	if x >= 0 && x < b.Cols && y >= 0 && y < b.Rows {
		return b.Cells[y*b.Cols+x]
	}
	return Cell{}
}

// Clear resets all cells to blank.
func (b *CellBuffer) Clear() {
	for i := range b.Cells {
		b.Cells[i] = blank
	}
}

// ClearRow blanks row y.
func (b *CellBuffer) ClearRow(y int) {
	if y < 0 || y >= b.Rows {
		return
	}
	row := b.Cells[y*b.Cols : (y+1)*b.Cols]
	for i := range row {
		row[i] = blank
	}
}

// WriteString writes s starting at (x, y), one byte per cell. Anything
// outside printable ASCII becomes '?'. Returns the column after the text.
func (b *CellBuffer) WriteString(x, y int, s string, fg, bg uint8) int {
	for _, ch := range s {
		if ch < ' ' || ch > '~' {
			ch = '?'
		}
		b.Set(x, y, byte(ch), fg, bg)
		x++
	}
	return x
}

// String returns row y as text, for tests and debugging.
func (b *CellBuffer) String(y int) string {
	if y < 0 || y >= b.Rows {
		return ""
	}
	out := make([]byte, b.Cols)
	for x := range out {
		g := b.Cells[y*b.Cols+x].Glyph
		if g == 0 {
			g = ' '
		}
		out[x] = g
	}
	return string(out)
}

// GridRenderer draws a CellBuffer on top of an Ebitengine screen.
type GridRenderer struct {
	Atlas   *FontAtlas
	CellW   int
	CellH   int
	bgPixel *ebiten.Image // 1x1 white pixel for drawing backgrounds
}

// NewGridRenderer creates a renderer with the given atlas and cell dimensions.
func NewGridRenderer(atlas *FontAtlas, cellW, cellH int) *GridRenderer {
	bgPixel := ebiten.NewImage(1, 1)
	bgPixel.Fill(color.White)
	return &GridRenderer{
		Atlas:   atlas,
		CellW:   cellW,
		CellH:   cellH,
		bgPixel: bgPixel,
	}
}

// Draw renders the buffer. Black backgrounds are left transparent so the
// field shows through the HUD.
func (r *GridRenderer) Draw(screen *ebiten.Image, buf *CellBuffer) {
	scaleX := float64(r.CellW) / float64(GlyphWidth)
	scaleY := float64(r.CellH) / float64(GlyphHeight)

	var op ebiten.DrawImageOptions
	for y := 0; y < buf.Rows; y++ {
		for x := 0; x < buf.Cols; x++ {
			cell := buf.Cells[y*buf.Cols+x]
			px := float64(x * r.CellW)
			py := float64(y * r.CellH)

			if cell.BG != ColorBlack {
				op = ebiten.DrawImageOptions{}
				op.GeoM.Scale(float64(r.CellW), float64(r.CellH))
				op.GeoM.Translate(px, py)
				op.ColorScale.ScaleWithColor(Palette[cell.BG])
				screen.DrawImage(r.bgPixel, &op)
			}

			if cell.Glyph == ' ' || cell.Glyph == 0 {
				continue
			}
			glyph := r.Atlas.Glyph(cell.Glyph)
			if glyph == nil {
				continue
			}
			op = ebiten.DrawImageOptions{}
			op.GeoM.Scale(scaleX, scaleY)
			op.GeoM.Translate(px, py)
			op.ColorScale.ScaleWithColor(Palette[cell.FG])
			screen.DrawImage(glyph, &op)
		}
	}
}
