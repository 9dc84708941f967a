package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gatherfall/gatherfall/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parkedSim(t *testing.T) (*game.Sim, *game.ManualClock) {
	t.Helper()
	clock := &game.ManualClock{T: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	s := game.NewSim(game.Setup{
		Villagers: []game.VillagerSpec{{Pos: game.Position{X: 50, Y: 50}, Size: 20, Speed: 2}},
		Nodes:     []game.NodeSpec{{Kind: game.Food, Pos: game.Position{X: 50, Y: 50}, Amount: 10}},
	}, clock, nil)
	return s, clock
}

func TestHUDRefreshLedgerOnlyOnChange(t *testing.T) {
	s, clock := parkedSim(t)
	buf := NewCellBuffer(60, 12)
	var hud HUD

	require.True(t, hud.RefreshLedger(buf, &s.Ledger))
	assert.Contains(t, buf.String(0), "Wood: 0  Food: 0  Rock: 0  Iron: 0")
	assert.False(t, hud.RefreshLedger(buf, &s.Ledger))

	s.Select(game.Position{X: 50, Y: 50})
	s.Command(game.Position{X: 50, Y: 50})
	s.Step()
	clock.Advance(100 * time.Millisecond)
	s.Step() // cooldown, no change

	assert.True(t, hud.RefreshLedger(buf, &s.Ledger))
	assert.Contains(t, buf.String(0), "Food: 1")
	assert.False(t, hud.RefreshLedger(buf, &s.Ledger))
}

func TestHUDDrawStatus(t *testing.T) {
	s, _ := parkedSim(t)
	buf := NewCellBuffer(60, 12)
	var hud HUD

	hud.DrawStatus(buf, s.Villagers(), s.State)
	assert.Equal(t, " No selection", strings.TrimRight(buf.String(1), " "))

	s.Select(game.Position{X: 50, Y: 50})
	s.Command(game.Position{X: 50, Y: 50})
	hud.DrawStatus(buf, s.Villagers(), s.State)
	assert.Equal(t, " Villager 1: gathering", strings.TrimRight(buf.String(1), " "))
}

func TestHUDDrawLog(t *testing.T) {
	buf := NewCellBuffer(40, 12)
	log := game.NewMessageLog(20, 38)
	for _, text := range []string{"m1", "m2", "m3", "m4", "m5", "m6", "m7", "m8"} {
		log.Add(text, game.MsgInfo)
	}
	var hud HUD
	hud.DrawLog(buf, log)
	hud.DrawHelp(buf)

	var lines []string
	for y := buf.Rows - 1 - hudLogMax; y < buf.Rows-1; y++ {
		lines = append(lines, strings.TrimSpace(buf.String(y)))
	}
	assert.Equal(t, []string{"m3", "m4", "m5", "m6", "m7", "m8"}, lines)
	assert.Contains(t, buf.String(buf.Rows-1), "RMB: Move/Gather")
	assert.Equal(t, uint8(ColorLightCyan), buf.Get(1, buf.Rows-2).FG)
}
