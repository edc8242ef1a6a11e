// Package layout: the built-in reference floor.
package layout

// Default returns the fixed reference floor: three corridor rows of five
// nodes each plus three exits along the bottom. Horizontal connections
// weigh 2, vertical 3, the long drops to the exits and the four diagonals 4.
//
//	A1──A2──A3──A4──A5
//	│   │   │   │   │
//	B1──H1──H2──H3──B5
//	│   │ ╲ │ ╱ │   │
//	C1──H4──H5──H6──C5
//	│     ╲ │ ╱     │
//	E1──────E2──────E3
func Default() Layout {
	nodes := []NodeSpec{
		{ID: "A1", Label: "A1", X: 100, Y: 100},
		{ID: "A2", Label: "A2", X: 300, Y: 100},
		{ID: "A3", Label: "A3", X: 500, Y: 100},
		{ID: "A4", Label: "A4", X: 700, Y: 100},
		{ID: "A5", Label: "A5", X: 900, Y: 100},
		{ID: "B1", Label: "B1", X: 100, Y: 250},
		{ID: "H1", Label: "H1", X: 300, Y: 250},
		{ID: "H2", Label: "H2", X: 500, Y: 250},
		{ID: "H3", Label: "H3", X: 700, Y: 250},
		{ID: "B5", Label: "B5", X: 900, Y: 250},
		{ID: "C1", Label: "C1", X: 100, Y: 400},
		{ID: "H4", Label: "H4", X: 300, Y: 400},
		{ID: "H5", Label: "H5", X: 500, Y: 400},
		{ID: "H6", Label: "H6", X: 700, Y: 400},
		{ID: "C5", Label: "C5", X: 900, Y: 400},
		{ID: "E1", Label: "E1", X: 100, Y: 600, Exit: true},
		{ID: "E2", Label: "E2", X: 500, Y: 600, Exit: true},
		{ID: "E3", Label: "E3", X: 900, Y: 600, Exit: true},
	}

	edges := []EdgeSpec{
		// Corridor rows, left to right.
		{From: "A1", To: "A2", Weight: 2},
		{From: "A2", To: "A3", Weight: 2},
		{From: "A3", To: "A4", Weight: 2},
		{From: "A4", To: "A5", Weight: 2},
		{From: "B1", To: "H1", Weight: 2},
		{From: "H1", To: "H2", Weight: 2},
		{From: "H2", To: "H3", Weight: 2},
		{From: "H3", To: "B5", Weight: 2},
		{From: "C1", To: "H4", Weight: 2},
		{From: "H4", To: "H5", Weight: 2},
		{From: "H5", To: "H6", Weight: 2},
		{From: "H6", To: "C5", Weight: 2},
		// Row-to-row connections.
		{From: "A1", To: "B1", Weight: 3},
		{From: "B1", To: "C1", Weight: 3},
		{From: "A2", To: "H1", Weight: 3},
		{From: "H1", To: "H4", Weight: 3},
		{From: "A3", To: "H2", Weight: 3},
		{From: "H2", To: "H5", Weight: 3},
		{From: "A4", To: "H3", Weight: 3},
		{From: "H3", To: "H6", Weight: 3},
		{From: "A5", To: "B5", Weight: 3},
		{From: "B5", To: "C5", Weight: 3},
		// Long drops to the exit row.
		{From: "C1", To: "E1", Weight: 4},
		{From: "H5", To: "E2", Weight: 4},
		{From: "C5", To: "E3", Weight: 4},
		// Diagonal shortcuts through the hall.
		{From: "H1", To: "H5", Weight: 4},
		{From: "H3", To: "H5", Weight: 4},
		{From: "H4", To: "E2", Weight: 4},
		{From: "H6", To: "E2", Weight: 4},
	}

	return Layout{Name: "default", Nodes: nodes, Edges: edges}
}
