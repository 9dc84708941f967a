package game

import (
	"math"
	"time"
)

// Position is a point in canvas-local coordinates.
type Position struct {
	X, Y float64
}

// DistanceTo returns the Euclidean distance to other.
func (p Position) DistanceTo(other Position) float64 {
	return math.Hypot(other.X-p.X, other.Y-p.Y)
}

// Body holds a unit's physical properties.
type Body struct {
	Size  float64 // selection radius
	Speed float64 // distance per tick
}

// Selectable marks a unit the player can pick with a primary click.
type Selectable struct {
	Selected bool
}

// Orders is a villager's current intent plus its gather cooldown.
type Orders struct {
	Intent     Intent
	LastGather time.Time // zero until the first harvest
}

// NodeID is the stable index of a node in registry order.
type NodeID int

// VillagerID is the index of a villager in insertion order.
type VillagerID int

// Intent is what a villager is trying to do. It is one of Idle,
// Moving or Gathering.
type Intent interface {
	isIntent()
}

// Idle units stand still and are skipped by the step.
type Idle struct{}

// Moving walks to Target and goes idle on arrival.
type Moving struct {
	Target Position
}

// Gathering walks to Node and harvests it once there. The movement
// target is always the node's position.
type Gathering struct {
	Node NodeID
	Kind ResourceKind
}

func (Idle) isIntent()      {}
func (Moving) isIntent()    {}
func (Gathering) isIntent() {}

// UnitState is the state-machine view of a villager.
type UnitState uint8

const (
	StateIdle UnitState = iota
	StateMoving
	StateMovingToGather
	StateGathering
)

func (s UnitState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateMoving:
		return "moving"
	case StateMovingToGather:
		return "moving to gather"
	case StateGathering:
		return "gathering"
	default:
		return "unknown"
	}
}
