package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gatherfall/gatherfall/assets"
	"github.com/gatherfall/gatherfall/internal/game"
	"github.com/gatherfall/gatherfall/internal/render"
	"github.com/gatherfall/gatherfall/internal/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	screenWidth  = 800
	screenHeight = 600
	title        = "Gatherfall"
	scenarioFile = "scenarios/default.yaml"

	cellWidth  = render.GlyphWidth
	cellHeight = render.GlyphHeight
	gridCols   = screenWidth / cellWidth   // 100
	gridRows   = screenHeight / cellHeight // 42
)

// Game is the Ebitengine game struct. It owns rendering and input and
// drives the simulation one step per tick. All gameplay state lives in sim.
type Game struct {
	renderer *render.GridRenderer
	buffer   *render.CellBuffer
	hud      render.HUD
	sim      *game.Sim
	logger   *slog.Logger
}

func NewGame(logger *slog.Logger) (*Game, error) {
	data, err := assets.Scenarios.ReadFile(scenarioFile)
	if err != nil {
		return nil, fmt.Errorf("load scenario: %w", err)
	}
	sc, err := world.LoadScenario(data)
	if err != nil {
		return nil, err
	}

	sim := game.NewSim(sc.Setup(), game.SystemClock{}, logger)
	logger.Info("scenario loaded",
		"name", sc.Name,
		"villagers", sim.VillagerCount(),
		"nodes", sim.NodeCount())

	g := &Game{
		renderer: render.NewGridRenderer(render.NewFontAtlas(), cellWidth, cellHeight),
		buffer:   render.NewCellBuffer(gridCols, gridRows),
		sim:      sim,
		logger:   logger,
	}
	g.hud.DrawHelp(g.buffer)
	g.drawHUD()
	return g, nil
}

// pointerEvents collects this tick's button presses at the cursor.
// Ebitengine keeps the browser context menu off its canvas, which
// covers the suppression a secondary click needs.
func pointerEvents() []game.PointerEvent {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)

	var evs []game.PointerEvent
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		evs = append(evs, game.PointerEvent{Button: game.ButtonPrimary, X: x, Y: y})
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		evs = append(evs, game.PointerEvent{Button: game.ButtonSecondary, X: x, Y: y})
	}
	return evs
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	for _, ev := range pointerEvents() {
		g.sim.HandlePointer(ev)
	}

	report := g.sim.Step()
	if report.LedgerChanged {
		g.logger.Debug("ledger changed", "tick", report.Tick, "total", g.sim.Ledger.Total())
	}

	g.drawHUD()
	return nil
}

func (g *Game) drawHUD() {
	g.hud.RefreshLedger(g.buffer, &g.sim.Ledger)
	g.hud.DrawStatus(g.buffer, g.sim.Villagers(), g.sim.State)
	g.hud.DrawLog(g.buffer, g.sim.Log)

	fps := fmt.Sprintf("TPS: %3.0f", ebiten.ActualTPS())
	g.buffer.WriteString(gridCols-len(fps)-1, 0, fps, render.ColorDarkGray, render.ColorBlack)
}

func (g *Game) Draw(screen *ebiten.Image) {
	render.DrawScene(screen, render.Scene{
		TownCenter: g.sim.TownCenter,
		Nodes:      g.sim.Nodes(),
		Villagers:  g.sim.Villagers(),
	})
	g.renderer.Draw(screen, g.buffer)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle(title)

	g, err := NewGame(logger)
	if err != nil {
		logger.Error("startup failed", "error", err)
		os.Exit(1)
	}
	if err := ebiten.RunGame(g); err != nil {
		logger.Error("game exited", "error", err)
		os.Exit(1)
	}
}
