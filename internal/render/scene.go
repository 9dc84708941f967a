package render

import (
	"image/color"

	"github.com/gatherfall/gatherfall/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// NodeRadius is the drawn radius of a resource node.
const NodeRadius = 20

var (
	townCenterColor = Palette[ColorBrown]
	villagerColor   = Palette[ColorBlue]
	selectionColor  = Palette[ColorYellow]
)

// Scene is the per-frame read model of the field.
type Scene struct {
	TownCenter game.TownCenter
	Nodes      []game.NodeView
	Villagers  []game.VillagerView
}

// DrawScene paints the field: ground, town center, nodes, then villagers
// on top with a ring around the selected ones.
func DrawScene(screen *ebiten.Image, sc Scene) {
	screen.Fill(Ground)

	tc := sc.TownCenter
	half := tc.Size / 2
	vector.DrawFilledRect(screen,
		float32(tc.Pos.X-half), float32(tc.Pos.Y-half),
		float32(tc.Size), float32(tc.Size),
		townCenterColor, false)

	for _, n := range sc.Nodes {
		clr := color.Color(Palette[ResourceColor(n.Kind)])
		vector.DrawFilledCircle(screen, float32(n.Pos.X), float32(n.Pos.Y), NodeRadius, clr, true)
	}

	for _, v := range sc.Villagers {
		x, y := float32(v.Pos.X), float32(v.Pos.Y)
		if v.Selected {
			vector.StrokeCircle(screen, x, y, float32(v.Size), 2, selectionColor, true)
		}
		vector.DrawFilledCircle(screen, x, y, float32(v.Size/2), villagerColor, true)
	}
}
