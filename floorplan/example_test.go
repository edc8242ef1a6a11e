package floorplan_test

import (
	"fmt"

	"github.com/dkorbut/evacroute/floorplan"
)

// ExampleGraph builds a two-room floor with one exit and inspects it.
func ExampleGraph() {
	g := floorplan.NewGraph()
	_ = g.AddNode("hall", "Hall", floorplan.WithPosition(0, 0))
	_ = g.AddNode("door", "Fire door", floorplan.WithExit(), floorplan.WithPosition(10, 0))
	_ = g.AddEdge("hall", "door", 4)

	fmt.Println(g.NodeCount(), g.EdgeCount(), g.Exits())
	// Output: 2 1 [door]
}

// ExampleGraph_ToggleBlockedEdge shows that a blockade survives which way
// round the corridor is named.
func ExampleGraph_ToggleBlockedEdge() {
	g := floorplan.NewGraph()
	_ = g.AddNode("a", "a")
	_ = g.AddNode("b", "b")
	_ = g.AddEdge("a", "b", 1)

	_ = g.ToggleBlockedEdge("b", "a")
	fmt.Println(g.IsBlocked("a", "b"))

	_ = g.ToggleBlockedEdge("a", "b")
	fmt.Println(g.IsBlocked("b", "a"))
	// Output:
	// true
	// false
}
