package render

import (
	"image/color"

	"github.com/gatherfall/gatherfall/internal/game"
)

// CGA 16-color palette indices.
const (
	ColorBlack        = 0
	ColorBlue         = 1
	ColorGreen        = 2
	ColorCyan         = 3
	ColorRed          = 4
	ColorMagenta      = 5
	ColorBrown        = 6
	ColorLightGray    = 7
	ColorDarkGray     = 8
	ColorLightBlue    = 9
	ColorLightGreen   = 10
	ColorLightCyan    = 11
	ColorLightRed     = 12
	ColorLightMagenta = 13
	ColorYellow       = 14
	ColorWhite        = 15
)

// Palette contains the classic CGA 16-color palette.
var Palette = [16]color.RGBA{
	{0, 0, 0, 255},       // 0: Black
	{0, 0, 170, 255},     // 1: Blue
	{0, 170, 0, 255},     // 2: Green
	{0, 170, 170, 255},   // 3: Cyan
	{170, 0, 0, 255},     // 4: Red
	{170, 0, 170, 255},   // 5: Magenta
	{170, 85, 0, 255},    // 6: Brown
	{170, 170, 170, 255}, // 7: Light Gray
	{85, 85, 85, 255},    // 8: Dark Gray
	{85, 85, 255, 255},   // 9: Light Blue
	{85, 255, 85, 255},   // 10: Light Green
	{85, 255, 255, 255},  // 11: Light Cyan
	{255, 85, 85, 255},   // 12: Light Red
	{255, 85, 255, 255},  // 13: Light Magenta
	{255, 255, 85, 255},  // 14: Yellow
	{255, 255, 255, 255}, // 15: White
}

// Ground is the field color behind everything. Not a CGA color so that
// black iron and gray rock both stay visible.
var Ground = color.RGBA{118, 140, 84, 255}

// ResourceColor maps a resource kind to its palette index:
// wood green, food red, rock gray, iron black. Kinds this build doesn't
// know about are drawn white.
func ResourceColor(kind game.ResourceKind) uint8 {
	switch kind {
	case game.Wood:
		return ColorGreen
	case game.Food:
		return ColorRed
	case game.Rock:
		return ColorDarkGray
	case game.Iron:
		return ColorBlack
	default:
		return ColorWhite
	}
}

// MessageColor maps an event log priority to its palette index.
func MessageColor(p game.MsgPriority) uint8 {
	switch p {
	case game.MsgOrder:
		return ColorWhite
	case game.MsgHarvest:
		return ColorLightGreen
	default:
		return ColorLightCyan
	}
}
