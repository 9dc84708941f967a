package game

import (
	"errors"
	"fmt"
)

// ResourceKind identifies a harvestable resource. The set is closed.
type ResourceKind uint8

const (
	Wood ResourceKind = iota
	Food
	Rock
	Iron
	ResourceKindCount // sentinel
)

// ErrUnknownResourceKind is returned when a name doesn't match any kind.
var ErrUnknownResourceKind = errors.New("unknown resource kind")

var resourceNames = [ResourceKindCount]string{
	Wood: "wood",
	Food: "food",
	Rock: "rock",
	Iron: "iron",
}

// String returns the lowercase name of the kind.
func (k ResourceKind) String() string {
	if k.Valid() {
		return resourceNames[k]
	}
	return fmt.Sprintf("ResourceKind(%d)", uint8(k))
}

// Valid reports whether k is one of the known kinds.
func (k ResourceKind) Valid() bool { return k < ResourceKindCount }

// ParseResourceKind maps a lowercase name to its kind.
func ParseResourceKind(name string) (ResourceKind, error) {
	for k, n := range resourceNames {
		if n == name {
			return ResourceKind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownResourceKind, name)
}

// ResourceKinds returns every kind in display order.
func ResourceKinds() []ResourceKind {
	return []ResourceKind{Wood, Food, Rock, Iron}
}

// Ledger is the player's stockpile, one counter per kind.
// Counts never go below zero; only the simulation step adds to them.
type Ledger struct {
	counts  [ResourceKindCount]int
	version uint64
}

// Count returns the stockpiled amount of kind.
func (l *Ledger) Count(kind ResourceKind) int {
	if !kind.Valid() {
		return 0
	}
	return l.counts[kind]
}

// Version changes every time a count changes. The HUD compares it
// against the last version it drew to know when to refresh.
func (l *Ledger) Version() uint64 { return l.version }

// Total returns the sum of all counts.
func (l *Ledger) Total() int {
	n := 0
	for _, c := range l.counts {
		n += c
	}
	return n
}

func (l *Ledger) add(kind ResourceKind, amount int) {
	if !kind.Valid() || amount <= 0 {
		return
	}
	l.counts[kind] += amount
	l.version++
}

// ResourceNode is a fixed harvestable point. A depleted node stays in
// the registry with Remaining == 0.
type ResourceNode struct {
	Kind      ResourceKind
	Remaining int
}

// Depleted reports whether nothing is left to harvest.
func (n *ResourceNode) Depleted() bool { return n.Remaining <= 0 }

// take removes one unit if any remain.
func (n *ResourceNode) take() bool {
	if n.Remaining <= 0 {
		return false
	}
	n.Remaining--
	return true
}
