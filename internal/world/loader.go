package world

import (
	"errors"
	"fmt"

	"github.com/gatherfall/gatherfall/internal/game"
	"gopkg.in/yaml.v3"
)

// Scenario is the YAML definition of a starting layout.
type Scenario struct {
	Name       string        `yaml:"name"`
	TownCenter TownCenterDef `yaml:"town_center"`
	Villagers  []VillagerDef `yaml:"villagers"`
	Nodes      []NodeDef     `yaml:"nodes"`
}

// TownCenterDef places the town center.
type TownCenterDef struct {
	Pos  [2]float64 `yaml:"pos"`
	Size float64    `yaml:"size"`
}

// VillagerDef places one villager.
type VillagerDef struct {
	Pos   [2]float64 `yaml:"pos"`
	Size  float64    `yaml:"size"`
	Speed float64    `yaml:"speed"`
}

// NodeDef places one resource node.
type NodeDef struct {
	Kind   string     `yaml:"kind"`
	Pos    [2]float64 `yaml:"pos"`
	Amount int        `yaml:"amount"`
}

// LoadScenario parses and validates a Scenario from YAML bytes.
func LoadScenario(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
	}
	return &sc, nil
}

// Validate checks every definition and reports all problems at once.
func (sc *Scenario) Validate() error {
	var errs []error
	if len(sc.Villagers) == 0 {
		errs = append(errs, errors.New("no villagers"))
	}
	for i, v := range sc.Villagers {
		if v.Size <= 0 {
			errs = append(errs, fmt.Errorf("villager %d: size must be positive, got %v", i, v.Size))
		}
		if v.Speed <= 0 {
			errs = append(errs, fmt.Errorf("villager %d: speed must be positive, got %v", i, v.Speed))
		}
	}
	for i, n := range sc.Nodes {
		if _, err := game.ParseResourceKind(n.Kind); err != nil {
			errs = append(errs, fmt.Errorf("node %d: %w", i, err))
		}
		if n.Amount < 0 {
			errs = append(errs, fmt.Errorf("node %d: amount must not be negative, got %d", i, n.Amount))
		}
	}
	return errors.Join(errs...)
}

// Setup converts the scenario into simulation input. Call Validate first;
// LoadScenario already does.
func (sc *Scenario) Setup() game.Setup {
	setup := game.Setup{
		TownCenter: game.TownCenter{Pos: toPos(sc.TownCenter.Pos), Size: sc.TownCenter.Size},
	}
	for _, v := range sc.Villagers {
		setup.Villagers = append(setup.Villagers, game.VillagerSpec{
			Pos:   toPos(v.Pos),
			Size:  v.Size,
			Speed: v.Speed,
		})
	}
	for _, n := range sc.Nodes {
		kind, _ := game.ParseResourceKind(n.Kind)
		setup.Nodes = append(setup.Nodes, game.NodeSpec{Kind: kind, Pos: toPos(n.Pos), Amount: n.Amount})
	}
	return setup
}

func toPos(p [2]float64) game.Position { return game.Position{X: p[0], Y: p[1]} }
