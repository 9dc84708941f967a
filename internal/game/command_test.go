package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect(t *testing.T) {
	s, _ := newTestSim(t, clearing())

	order := s.HandlePointer(PointerEvent{Button: ButtonPrimary, X: 450, Y: 300})
	assert.Equal(t, OrderNone, order.Kind)
	assert.Equal(t, []VillagerID{0}, order.Selected)
	assert.True(t, s.Villager(0).Selected)

	order = s.HandlePointer(PointerEvent{Button: ButtonPrimary, X: 0, Y: 0})
	assert.Empty(t, order.Selected)
	assert.False(t, s.Villager(0).Selected)
}

func TestSelectRadiusIsStrict(t *testing.T) {
	tests := []struct {
		name string
		at   Position
		want bool
	}{
		{name: "center", at: Position{450, 300}, want: true},
		{name: "inside", at: Position{469.9, 300}, want: true},
		{name: "on edge", at: Position{470, 300}, want: false},
		{name: "outside", at: Position{450, 321}, want: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, _ := newTestSim(t, clearing())
			s.Select(tc.at)
			assert.Equal(t, tc.want, s.Villager(0).Selected)
		})
	}
}

func TestSelectIsExclusive(t *testing.T) {
	setup := Setup{
		Villagers: []VillagerSpec{
			{Pos: Position{100, 100}, Size: 20, Speed: 2},
			{Pos: Position{110, 100}, Size: 20, Speed: 2},
			{Pos: Position{300, 300}, Size: 20, Speed: 2},
		},
	}
	s, _ := newTestSim(t, setup)

	assert.Equal(t, []VillagerID{2}, s.Select(Position{300, 300}))
	assert.Equal(t, []VillagerID{0, 1}, s.Select(Position{105, 100}))

	views := s.Villagers()
	assert.True(t, views[0].Selected)
	assert.True(t, views[1].Selected)
	assert.False(t, views[2].Selected, "earlier selection is dropped")
}

func TestCommandGatherOnNode(t *testing.T) {
	s, _ := newTestSim(t, clearing())
	s.Select(Position{450, 300})

	order := s.HandlePointer(PointerEvent{Button: ButtonSecondary, X: 150, Y: 100})
	assert.Equal(t, OrderGather, order.Kind)
	assert.Equal(t, NodeID(0), order.Node)
	assert.Equal(t, Position{150, 100}, order.Target)
	assert.Equal(t, []VillagerID{0}, order.Selected)

	assert.Equal(t, Gathering{Node: 0, Kind: Wood}, s.Villager(0).Intent)
	assert.Equal(t, StateMovingToGather, s.State(0))
	target, ok := s.Target(0)
	require.True(t, ok)
	assert.Equal(t, Position{150, 100}, target)

	last := s.Log.Recent(1)
	require.Len(t, last, 1)
	assert.Equal(t, Message{Text: "Gather wood.", Priority: MsgOrder}, last[0])
}

func TestCommandNodeHitRadius(t *testing.T) {
	tests := []struct {
		name string
		at   Position
		want OrderKind
	}{
		{name: "on node", at: Position{650, 120}, want: OrderGather},
		{name: "inside radius", at: Position{674.9, 120}, want: OrderGather},
		{name: "on radius", at: Position{675, 120}, want: OrderMove},
		{name: "empty ground", at: Position{400, 200}, want: OrderMove},
		{name: "off canvas", at: Position{-500, 9000}, want: OrderMove},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, _ := newTestSim(t, clearing())
			s.Select(Position{450, 300})
			order := s.Command(tc.at)
			assert.Equal(t, tc.want, order.Kind)
			if tc.want == OrderMove {
				assert.Equal(t, Moving{Target: tc.at}, s.Villager(0).Intent)
				assert.Equal(t, StateMoving, s.State(0))
			}
		})
	}
}

func TestCommandFirstNodeWins(t *testing.T) {
	setup := Setup{
		Villagers: []VillagerSpec{{Pos: Position{0, 0}, Size: 20, Speed: 2}},
		Nodes: []NodeSpec{
			{Kind: Rock, Pos: Position{100, 100}, Amount: 5},
			{Kind: Iron, Pos: Position{110, 100}, Amount: 5},
		},
	}
	s, _ := newTestSim(t, setup)
	s.Select(Position{0, 0})

	// (112,100) is 2 from the iron node and 12 from the rock node.
	order := s.Command(Position{112, 100})
	assert.Equal(t, NodeID(0), order.Node)
	assert.Equal(t, Gathering{Node: 0, Kind: Rock}, s.Villager(0).Intent)
}

func TestCommandOverwritesIntent(t *testing.T) {
	s, _ := newTestSim(t, clearing())
	s.Select(Position{450, 300})

	s.Command(Position{150, 100})
	require.IsType(t, Gathering{}, s.Villager(0).Intent)

	s.Command(Position{300, 300})
	assert.Equal(t, Moving{Target: Position{300, 300}}, s.Villager(0).Intent)

	s.Command(Position{600, 450})
	assert.Equal(t, Gathering{Node: 3, Kind: Iron}, s.Villager(0).Intent)
}

func TestCommandWithoutSelectionIsNoOp(t *testing.T) {
	s, _ := newTestSim(t, clearing())
	logged := len(s.Log.Messages)

	order := s.HandlePointer(PointerEvent{Button: ButtonSecondary, X: 150, Y: 100})
	assert.Equal(t, OrderNone, order.Kind)
	assert.Empty(t, order.Selected)
	assert.Equal(t, Idle{}, s.Villager(0).Intent)
	assert.Len(t, s.Log.Messages, logged)
}

func TestCommandOnlySelectedVillagers(t *testing.T) {
	setup := Setup{
		Villagers: []VillagerSpec{
			{Pos: Position{100, 100}, Size: 20, Speed: 2},
			{Pos: Position{300, 300}, Size: 20, Speed: 2},
		},
	}
	s, _ := newTestSim(t, setup)
	s.Select(Position{300, 300})

	order := s.Command(Position{500, 500})
	assert.Equal(t, []VillagerID{1}, order.Selected)
	assert.Equal(t, Idle{}, s.Villager(0).Intent)
	assert.Equal(t, Moving{Target: Position{500, 500}}, s.Villager(1).Intent)
}

func TestHandlePointerIgnoresOtherButtons(t *testing.T) {
	s, _ := newTestSim(t, clearing())
	s.Select(Position{450, 300})
	before := s.Villager(0)

	order := s.HandlePointer(PointerEvent{Button: 1, X: 150, Y: 100})
	assert.Equal(t, OrderNone, order.Kind)
	assert.Equal(t, before, s.Villager(0))
}
