package game

import "fmt"

// PointerButton identifies a mouse button using the DOM numbering the
// host surface reports.
type PointerButton int

const (
	ButtonPrimary   PointerButton = 0
	ButtonSecondary PointerButton = 2
)

// PointerEvent is a button press in canvas-local coordinates. Coordinates
// outside the canvas are accepted as-is.
type PointerEvent struct {
	Button PointerButton
	X, Y   float64
}

// OrderKind says what a secondary click turned into.
type OrderKind uint8

const (
	OrderNone   OrderKind = iota // nothing selected, or not a command
	OrderMove                    // walk to a point
	OrderGather                  // walk to a node and harvest it
)

// Order summarizes the result of one pointer event.
type Order struct {
	Kind     OrderKind
	Node     NodeID       // valid when Kind == OrderGather
	Target   Position     // movement target issued
	Selected []VillagerID // villagers the event applied to
}

// HandlePointer routes a pointer event to selection or command. Unknown
// buttons are ignored.
func (s *Sim) HandlePointer(ev PointerEvent) Order {
	p := Position{X: ev.X, Y: ev.Y}
	switch ev.Button {
	case ButtonPrimary:
		return Order{Kind: OrderNone, Target: p, Selected: s.Select(p)}
	case ButtonSecondary:
		return s.Command(p)
	default:
		return Order{Kind: OrderNone, Target: p}
	}
}

// Select runs one exclusive selection pass: a villager is selected iff p
// lies strictly inside its size radius. Everyone else is deselected.
func (s *Sim) Select(p Position) []VillagerID {
	var hit []VillagerID
	for i, e := range s.villagers {
		sel := s.selectMap.Get(e)
		sel.Selected = s.posMap.Get(e).DistanceTo(p) < s.bodyMap.Get(e).Size
		if sel.Selected {
			hit = append(hit, VillagerID(i))
		}
	}
	return hit
}

// Command gives every selected villager a new intent at p. A node within
// NodeHitRadius of p turns the order into a gather; otherwise it is a
// plain move. Prior intent is overwritten.
func (s *Sim) Command(p Position) Order {
	order := Order{Kind: OrderMove, Target: p}
	var intent Intent = Moving{Target: p}
	if id, ok := s.HitNode(p); ok {
		n := s.nodeMap.Get(s.nodes[id])
		intent = Gathering{Node: id, Kind: n.Kind}
		order = Order{Kind: OrderGather, Node: id, Target: s.nodePos(id)}
	}

	for i, e := range s.villagers {
		if !s.selectMap.Get(e).Selected {
			continue
		}
		s.orderMap.Get(e).Intent = intent
		order.Selected = append(order.Selected, VillagerID(i))
	}
	if len(order.Selected) == 0 {
		return Order{Kind: OrderNone, Target: p}
	}

	if g, ok := intent.(Gathering); ok {
		s.logger.Debug("gather order", "villagers", len(order.Selected), "node", int(g.Node), "kind", g.Kind.String())
		s.Log.Add(fmt.Sprintf("Gather %s.", g.Kind), MsgOrder)
	} else {
		s.logger.Debug("move order", "villagers", len(order.Selected), "x", p.X, "y", p.Y)
		s.Log.Add(fmt.Sprintf("Move to %.0f,%.0f.", p.X, p.Y), MsgOrder)
	}
	return order
}

// HitNode returns the first node in registry order strictly within
// NodeHitRadius of p. First match wins even if a later node is closer.
func (s *Sim) HitNode(p Position) (NodeID, bool) {
	for i, e := range s.nodes {
		if s.posMap.Get(e).DistanceTo(p) < NodeHitRadius {
			return NodeID(i), true
		}
	}
	return 0, false
}
