// Package layout: programmatic corridor-grid generator.
package layout

import "fmt"

// gridSpacing is the drawing distance between adjacent grid nodes.
const gridSpacing = 100.0

// Grid returns a rows×cols 4-neighborhood corridor grid with node IDs "r,c"
// (row-major, zero-based). Horizontal edges carry the horizontal weight,
// vertical edges the vertical weight. Degenerate dimensions yield an empty
// layout.
//
// Mostly useful as a deterministic fixture for tests and benchmarks.
// Complexity: O(rows·cols) nodes and O(rows·cols) edges.
func Grid(rows, cols int, horizontal, vertical int64) Layout {
	l := Layout{Name: fmt.Sprintf("grid-%dx%d", rows, cols)}
	if rows <= 0 || cols <= 0 {
		return l
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			id := gridID(r, c)
			l.Nodes = append(l.Nodes, NodeSpec{
				ID:    id,
				Label: id,
				X:     float64(c) * gridSpacing,
				Y:     float64(r) * gridSpacing,
			})
		}
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				l.Edges = append(l.Edges, EdgeSpec{From: gridID(r, c), To: gridID(r, c+1), Weight: horizontal})
			}
			if r+1 < rows {
				l.Edges = append(l.Edges, EdgeSpec{From: gridID(r, c), To: gridID(r+1, c), Weight: vertical})
			}
		}
	}

	return l
}

// gridID formats the "r,c" node identifier.
func gridID(r, c int) string {
	return fmt.Sprintf("%d,%d", r, c)
}
