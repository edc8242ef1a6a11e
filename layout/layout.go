// Package layout: the declarative Layout type and its builder.
package layout

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dkorbut/evacroute/floorplan"
)

// NodeSpec describes one node of a layout.
type NodeSpec struct {
	ID    string  `yaml:"id"`
	Label string  `yaml:"label"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Exit  bool    `yaml:"exit,omitempty"`
	Delay int64   `yaml:"delay,omitempty"`
}

// EdgeSpec describes one undirected weighted edge of a layout.
type EdgeSpec struct {
	From   string `yaml:"from"`
	To     string `yaml:"to"`
	Weight int64  `yaml:"weight"`
}

// Layout is a static seed topology: the nodes and edges a floor starts
// with. Order matters only for error reporting; the resulting graph is the
// same for any permutation.
type Layout struct {
	Name  string     `yaml:"name,omitempty"`
	Nodes []NodeSpec `yaml:"nodes"`
	Edges []EdgeSpec `yaml:"edges"`
}

// Build constructs a fresh floorplan.Graph from the layout. The first
// invalid node or edge aborts the build with the store's sentinel error
// wrapped with its context.
// Complexity: O(V + E).
func (l Layout) Build() (*floorplan.Graph, error) {
	g := floorplan.NewGraph()
	for _, n := range l.Nodes {
		opts := []floorplan.NodeOption{floorplan.WithPosition(n.X, n.Y)}
		if n.Exit {
			opts = append(opts, floorplan.WithExit())
		}
		if n.Delay != 0 {
			opts = append(opts, floorplan.WithDelay(n.Delay))
		}
		if err := g.AddNode(n.ID, n.Label, opts...); err != nil {
			return nil, fmt.Errorf("layout %q: node %q: %w", l.Name, n.ID, err)
		}
	}
	for _, e := range l.Edges {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("layout %q: edge %s-%s: %w", l.Name, e.From, e.To, err)
		}
	}

	return g, nil
}

// Parse decodes a YAML document into a Layout.
func Parse(data []byte) (Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("layout: parse: %w", err)
	}

	return l, nil
}

// Load reads and parses a layout YAML file.
func Load(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("layout: read %s: %w", path, err)
	}

	return Parse(data)
}

// Marshal encodes the layout as YAML, suitable for Load/Parse round-trips.
func (l Layout) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("layout: marshal: %w", err)
	}

	return data, nil
}
