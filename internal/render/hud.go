package render

import (
	"fmt"

	"github.com/gatherfall/gatherfall/internal/game"
)

// HUD layout rows.
const (
	hudLedgerRow = 0
	hudStatusRow = 1
	hudLogMax    = 6
)

// HUD composes the text overlay into a CellBuffer.
type HUD struct {
	drawnVersion uint64
	drawn        bool
}

// RefreshLedger rewrites the stockpile line, but only when the ledger
// changed since the last call. Reports whether it redrew.
func (h *HUD) RefreshLedger(buf *CellBuffer, l *game.Ledger) bool {
	if h.drawn && l.Version() == h.drawnVersion {
		return false
	}
	buf.ClearRow(hudLedgerRow)
	x := 1
	for _, kind := range game.ResourceKinds() {
		label := fmt.Sprintf("%s: %d  ", titleCase(kind.String()), l.Count(kind))
		fg := ResourceColor(kind)
		if fg == ColorBlack || fg == ColorDarkGray {
			fg = ColorLightGray
		}
		x = buf.WriteString(x, hudLedgerRow, label, fg, ColorBlack)
	}
	h.drawnVersion = l.Version()
	h.drawn = true
	return true
}

// DrawStatus writes the selection and state line for the villagers.
func (h *HUD) DrawStatus(buf *CellBuffer, villagers []game.VillagerView, state func(game.VillagerID) game.UnitState) {
	buf.ClearRow(hudStatusRow)
	x := 1
	for _, v := range villagers {
		if !v.Selected {
			continue
		}
		label := fmt.Sprintf("Villager %d: %s  ", v.ID+1, state(v.ID))
		x = buf.WriteString(x, hudStatusRow, label, ColorYellow, ColorBlack)
	}
	if x == 1 {
		buf.WriteString(x, hudStatusRow, "No selection", ColorDarkGray, ColorBlack)
	}
}

// DrawLog writes the most recent messages bottom-up, ending at row
// buf.Rows-2 and leaving the last row for the help line.
func (h *HUD) DrawLog(buf *CellBuffer, log *game.MessageLog) {
	top := buf.Rows - 1 - hudLogMax
	for y := top; y < buf.Rows-1; y++ {
		buf.ClearRow(y)
	}
	msgs := log.Recent(hudLogMax)
	start := buf.Rows - 1 - len(msgs)
	for i, m := range msgs {
		buf.WriteString(1, start+i, m.Text, MessageColor(m.Priority), ColorBlack)
	}
}

// DrawHelp writes the controls reminder on the last row.
func (h *HUD) DrawHelp(buf *CellBuffer) {
	y := buf.Rows - 1
	buf.ClearRow(y)
	buf.WriteString(1, y, "LMB: Select  RMB: Move/Gather  ESC: Quit", ColorLightGray, ColorBlack)
}

func titleCase(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
