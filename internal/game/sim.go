package game

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/mlange-42/ark/ecs"
)

// Simulation constants.
const (
	ArrivalThreshold = 2.0                     // distance at which a unit has reached its target
	GatherInterval   = 1000 * time.Millisecond // minimum spacing between harvests
	NodeHitRadius    = 25.0                    // secondary-click radius around a node
	logSize          = 50
	logWidth         = 48
)

// TownCenter is the static drop-off building. Only the renderer uses it.
type TownCenter struct {
	Pos  Position
	Size float64
}

// VillagerSpec describes a villager placed at startup.
type VillagerSpec struct {
	Pos   Position
	Size  float64
	Speed float64
}

// NodeSpec describes a resource node placed at startup.
type NodeSpec struct {
	Kind   ResourceKind
	Pos    Position
	Amount int
}

// Setup is everything needed to build a Sim.
type Setup struct {
	TownCenter TownCenter
	Villagers  []VillagerSpec
	Nodes      []NodeSpec
}

// Sim is the simulation context. It owns all gameplay state and is
// passed around explicitly by the loop controller.
type Sim struct {
	ECS        *ecs.World
	Ledger     Ledger
	TownCenter TownCenter
	Log        *MessageLog
	Ticks      uint64

	clock  Clock
	logger *slog.Logger

	villagers []ecs.Entity // insertion order
	nodes     []ecs.Entity // registry order

	posMap    *ecs.Map[Position]
	bodyMap   *ecs.Map[Body]
	selectMap *ecs.Map[Selectable]
	orderMap  *ecs.Map[Orders]
	nodeMap   *ecs.Map[ResourceNode]
}

// NewSim creates a simulation from a setup. A nil logger discards output.
func NewSim(setup Setup, clock Clock, logger *slog.Logger) *Sim {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	w := ecs.NewWorld(len(setup.Villagers) + len(setup.Nodes) + 1)

	s := &Sim{
		ECS:        w,
		TownCenter: setup.TownCenter,
		Log:        NewMessageLog(logSize, logWidth),
		clock:      clock,
		logger:     logger,
		posMap:     ecs.NewMap[Position](w),
		bodyMap:    ecs.NewMap[Body](w),
		selectMap:  ecs.NewMap[Selectable](w),
		orderMap:   ecs.NewMap[Orders](w),
		nodeMap:    ecs.NewMap[ResourceNode](w),
	}

	villagerBuilder := ecs.NewMap4[Position, Body, Selectable, Orders](w)
	for _, v := range setup.Villagers {
		pos := v.Pos
		e := villagerBuilder.NewEntity(
			&pos,
			&Body{Size: v.Size, Speed: v.Speed},
			&Selectable{},
			&Orders{Intent: Idle{}},
		)
		s.villagers = append(s.villagers, e)
	}

	nodeBuilder := ecs.NewMap2[Position, ResourceNode](w)
	for _, n := range setup.Nodes {
		pos := n.Pos
		e := nodeBuilder.NewEntity(&pos, &ResourceNode{Kind: n.Kind, Remaining: n.Amount})
		s.nodes = append(s.nodes, e)
	}

	s.Log.Add("Left-click a villager to select it.", MsgInfo)
	s.Log.Add("Right-click ground to move, or a resource to gather.", MsgInfo)
	return s
}

// VillagerCount returns the number of villagers.
func (s *Sim) VillagerCount() int { return len(s.villagers) }

// NodeCount returns the number of resource nodes.
func (s *Sim) NodeCount() int { return len(s.nodes) }

// VillagerView is a read-only copy of one villager's state.
type VillagerView struct {
	ID         VillagerID
	Pos        Position
	Size       float64
	Speed      float64
	Selected   bool
	Intent     Intent
	LastGather time.Time
}

// Villager returns a snapshot of villager id.
func (s *Sim) Villager(id VillagerID) VillagerView {
	e := s.villagers[id]
	body := s.bodyMap.Get(e)
	orders := s.orderMap.Get(e)
	return VillagerView{
		ID:         id,
		Pos:        *s.posMap.Get(e),
		Size:       body.Size,
		Speed:      body.Speed,
		Selected:   s.selectMap.Get(e).Selected,
		Intent:     orders.Intent,
		LastGather: orders.LastGather,
	}
}

// Villagers returns snapshots of every villager in insertion order.
func (s *Sim) Villagers() []VillagerView {
	out := make([]VillagerView, len(s.villagers))
	for i := range s.villagers {
		out[i] = s.Villager(VillagerID(i))
	}
	return out
}

// NodeView is a read-only copy of one resource node.
type NodeView struct {
	ID        NodeID
	Kind      ResourceKind
	Pos       Position
	Remaining int
}

// Node returns a snapshot of node id.
func (s *Sim) Node(id NodeID) NodeView {
	e := s.nodes[id]
	n := s.nodeMap.Get(e)
	return NodeView{ID: id, Kind: n.Kind, Pos: *s.posMap.Get(e), Remaining: n.Remaining}
}

// Nodes returns snapshots of every node in registry order.
func (s *Sim) Nodes() []NodeView {
	out := make([]NodeView, len(s.nodes))
	for i := range s.nodes {
		out[i] = s.Node(NodeID(i))
	}
	return out
}

// State derives the state-machine view of villager id.
func (s *Sim) State(id VillagerID) UnitState {
	e := s.villagers[id]
	switch in := s.orderMap.Get(e).Intent.(type) {
	case Moving:
		return StateMoving
	case Gathering:
		if s.posMap.Get(e).DistanceTo(s.nodePos(in.Node)) > ArrivalThreshold {
			return StateMovingToGather
		}
		return StateGathering
	default:
		return StateIdle
	}
}

// Target returns the movement target of villager id, if it has one.
func (s *Sim) Target(id VillagerID) (Position, bool) {
	return s.target(s.orderMap.Get(s.villagers[id]).Intent)
}

func (s *Sim) target(in Intent) (Position, bool) {
	switch in := in.(type) {
	case Moving:
		return in.Target, true
	case Gathering:
		return s.nodePos(in.Node), true
	default:
		return Position{}, false
	}
}

func (s *Sim) nodePos(id NodeID) Position {
	return *s.posMap.Get(s.nodes[id])
}

// StepOutcome is what happened to one villager during a step.
type StepOutcome uint8

const (
	OutcomeIdle      StepOutcome = iota // no target, untouched
	OutcomeMoved                        // advanced toward its target
	OutcomeArrived                      // reached a move target and went idle
	OutcomeCollected                    // harvested one unit
	OutcomeCooldown                     // at a node, gather interval not yet elapsed
	OutcomeDepleted                     // at a node with nothing left; no-op
)

func (o StepOutcome) String() string {
	switch o {
	case OutcomeIdle:
		return "idle"
	case OutcomeMoved:
		return "moved"
	case OutcomeArrived:
		return "arrived"
	case OutcomeCollected:
		return "collected"
	case OutcomeCooldown:
		return "cooldown"
	case OutcomeDepleted:
		return "depleted"
	default:
		return "unknown"
	}
}

// StepReport lists one outcome per villager, in insertion order.
type StepReport struct {
	Tick          uint64
	Outcomes      []StepOutcome
	LedgerChanged bool
}

// Step advances the simulation by one tick. Each villager is resolved in
// order, movement before gather timing. The clock is read once.
func (s *Sim) Step() StepReport {
	s.Ticks++
	now := s.clock.Now()
	report := StepReport{Tick: s.Ticks, Outcomes: make([]StepOutcome, len(s.villagers))}
	version := s.Ledger.Version()
	for i, e := range s.villagers {
		report.Outcomes[i] = s.stepVillager(VillagerID(i), e, now)
	}
	report.LedgerChanged = s.Ledger.Version() != version
	return report
}

func (s *Sim) stepVillager(id VillagerID, e ecs.Entity, now time.Time) StepOutcome {
	orders := s.orderMap.Get(e)
	target, ok := s.target(orders.Intent)
	if !ok {
		return OutcomeIdle
	}

	pos := s.posMap.Get(e)
	dx := target.X - pos.X
	dy := target.Y - pos.Y
	dist := pos.DistanceTo(target)

	if dist > ArrivalThreshold {
		speed := s.bodyMap.Get(e).Speed
		pos.X += dx / dist * speed
		pos.Y += dy / dist * speed
		return OutcomeMoved
	}

	g, gathering := orders.Intent.(Gathering)
	if !gathering {
		orders.Intent = Idle{}
		s.Log.Add(fmt.Sprintf("Villager %d arrived.", id+1), MsgInfo)
		return OutcomeArrived
	}
	return s.gather(id, orders, g, now)
}

func (s *Sim) gather(id VillagerID, orders *Orders, g Gathering, now time.Time) StepOutcome {
	if now.Sub(orders.LastGather) <= GatherInterval {
		return OutcomeCooldown
	}
	node := s.nodeMap.Get(s.nodes[g.Node])
	if !node.take() {
		return OutcomeDepleted
	}
	s.Ledger.add(g.Kind, 1)
	orders.LastGather = now
	s.logger.Debug("harvested", "villager", int(id), "node", int(g.Node), "kind", g.Kind.String(), "remaining", node.Remaining)
	s.Log.Add(fmt.Sprintf("+1 %s (%d left)", g.Kind, node.Remaining), MsgHarvest)
	if node.Depleted() {
		s.logger.Info("node depleted", "node", int(g.Node), "kind", g.Kind.String())
	}
	return OutcomeCollected
}
