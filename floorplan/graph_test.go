// Package floorplan_test verifies the mutation contracts of the store:
// atomic apply-or-fail semantics, edge canonicalization, exclusion-set
// upkeep, and the structural invariants (no dangling edges, no stale
// blocked entries).
package floorplan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkorbut/evacroute/floorplan"
)

// line builds the A-B-C-D fixture with unit weights.
func line(t *testing.T) *floorplan.Graph {
	t.Helper()
	g := floorplan.NewGraph()
	for _, id := range []string{"A", "B", "C", "D"} {
		require.NoError(t, g.AddNode(id, id))
	}
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 1))
	require.NoError(t, g.AddEdge("C", "D", 1))

	return g
}

func TestAddNode_Errors(t *testing.T) {
	g := floorplan.NewGraph()
	require.NoError(t, g.AddNode("A", "A1"))

	cases := []struct {
		name string
		call func() error
		want error
	}{
		{"EmptyID", func() error { return g.AddNode("", "x") }, floorplan.ErrEmptyNodeID},
		{"Duplicate", func() error { return g.AddNode("A", "again") }, floorplan.ErrDuplicateNode},
		{"NegativeDelay", func() error { return g.AddNode("B", "B1", floorplan.WithDelay(-1)) }, floorplan.ErrBadDelay},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.call(), tc.want)
		})
	}

	// Failed calls must not have left partial state behind.
	assert.Equal(t, 1, g.NodeCount())
}

func TestAddNode_Options(t *testing.T) {
	g := floorplan.NewGraph()
	require.NoError(t, g.AddNode("E1", "East exit",
		floorplan.WithExit(),
		floorplan.WithPosition(100, 600),
		floorplan.WithDelay(7),
	))

	n, err := g.Node("E1")
	require.NoError(t, err)
	assert.Equal(t, floorplan.RoleExit, n.Role)
	assert.True(t, n.IsExit())
	assert.Equal(t, 100.0, n.Pos.X())
	assert.Equal(t, 600.0, n.Pos.Y())
	assert.Equal(t, int64(7), n.Delay)
	assert.Equal(t, []string{"E1"}, g.Exits())
}

func TestRemoveNode_RemovesExactlyIncidentEdges(t *testing.T) {
	g := line(t)
	require.NoError(t, g.AddEdge("A", "C", 5)) // extra edge not touching B

	before := g.EdgeCount()
	require.NoError(t, g.RemoveNode("B"))

	// B had two incident edges (A-B, B-C); nothing else may disappear.
	assert.Equal(t, before-2, g.EdgeCount())
	assert.False(t, g.HasNode("B"))
	assert.True(t, g.HasEdge("A", "C"))
	assert.True(t, g.HasEdge("C", "D"))
	for _, e := range g.Edges() {
		assert.NotEqual(t, "B", e.U)
		assert.NotEqual(t, "B", e.V)
	}

	assert.ErrorIs(t, g.RemoveNode("B"), floorplan.ErrNodeNotFound)
}

func TestRemoveNode_ClearsExclusionState(t *testing.T) {
	g := line(t)
	require.NoError(t, g.ToggleObstacle("B"))
	require.NoError(t, g.ToggleBlockedEdge("B", "C"))

	require.NoError(t, g.RemoveNode("B"))
	assert.Empty(t, g.Obstacles())
	assert.Empty(t, g.BlockedEdges())

	// A later node reusing the ID must not resurrect the old block.
	require.NoError(t, g.AddNode("B", "B-new"))
	require.NoError(t, g.AddEdge("B", "C", 1))
	assert.False(t, g.IsBlocked("B", "C"))
}

func TestAddEdge_Errors(t *testing.T) {
	g := floorplan.NewGraph()
	require.NoError(t, g.AddNode("A", "A"))
	require.NoError(t, g.AddNode("B", "B"))

	cases := []struct {
		name string
		u, v string
		w    int64
		want error
	}{
		{"MissingFrom", "X", "B", 1, floorplan.ErrNodeNotFound},
		{"MissingTo", "A", "X", 1, floorplan.ErrNodeNotFound},
		{"SelfLoop", "A", "A", 1, floorplan.ErrSelfLoop},
		{"ZeroWeight", "A", "B", 0, floorplan.ErrBadWeight},
		{"NegativeWeight", "A", "B", -3, floorplan.ErrBadWeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, g.AddEdge(tc.u, tc.v, tc.w), tc.want)
		})
	}
	assert.Equal(t, 0, g.EdgeCount())
}

func TestAddEdge_ReplacesWeight(t *testing.T) {
	g := floorplan.NewGraph()
	require.NoError(t, g.AddNode("A", "A"))
	require.NoError(t, g.AddNode("B", "B"))

	require.NoError(t, g.AddEdge("A", "B", 2))
	require.NoError(t, g.AddEdge("B", "A", 9)) // same edge, reversed orientation

	assert.Equal(t, 1, g.EdgeCount())
	w, ok := g.EdgeWeight("A", "B")
	require.True(t, ok)
	assert.Equal(t, int64(9), w)
}

func TestRemoveEdge_NoopAndPurge(t *testing.T) {
	g := line(t)

	// Removing an absent edge is not an error.
	require.NoError(t, g.RemoveEdge("A", "D"))
	require.NoError(t, g.RemoveEdge("A", "nope"))

	require.NoError(t, g.ToggleBlockedEdge("B", "C"))
	require.NoError(t, g.RemoveEdge("C", "B")) // reversed orientation
	assert.False(t, g.HasEdge("B", "C"))
	assert.False(t, g.IsBlocked("B", "C"))
}

func TestRemoveEdge_NoopKeepsPreBlock(t *testing.T) {
	g := line(t)

	// Mark the not-yet-realized A-D connection as blocked, then remove the
	// nonexistent edge. The no-op must not erase the pre-block.
	require.NoError(t, g.ToggleBlockedEdge("A", "D"))
	require.NoError(t, g.RemoveEdge("A", "D"))
	assert.True(t, g.IsBlocked("A", "D"))
	assert.Len(t, g.BlockedEdges(), 1)

	// Only removing an actually existing edge purges its entry.
	require.NoError(t, g.AddEdge("A", "D", 1))
	require.NoError(t, g.RemoveEdge("D", "A"))
	assert.False(t, g.IsBlocked("A", "D"))
}

func TestToggleObstacle(t *testing.T) {
	g := line(t)
	assert.ErrorIs(t, g.ToggleObstacle("zzz"), floorplan.ErrNodeNotFound)

	require.NoError(t, g.ToggleObstacle("C"))
	assert.True(t, g.IsObstacle("C"))
	assert.Equal(t, []string{"C"}, g.Obstacles())

	// Flipping twice restores the original state.
	require.NoError(t, g.ToggleObstacle("C"))
	assert.False(t, g.IsObstacle("C"))
	assert.Empty(t, g.Obstacles())
}

func TestToggleBlockedEdge_OrientationIndependent(t *testing.T) {
	g := line(t)

	assert.ErrorIs(t, g.ToggleBlockedEdge("A", "zzz"), floorplan.ErrNodeNotFound)
	assert.ErrorIs(t, g.ToggleBlockedEdge("A", "A"), floorplan.ErrSelfLoop)

	require.NoError(t, g.ToggleBlockedEdge("B", "C"))
	assert.True(t, g.IsBlocked("B", "C"))
	assert.True(t, g.IsBlocked("C", "B"))
	assert.Len(t, g.BlockedEdges(), 1)

	// Toggling with swapped endpoints is a no-op relative to the original.
	require.NoError(t, g.ToggleBlockedEdge("C", "B"))
	assert.False(t, g.IsBlocked("B", "C"))
	assert.Empty(t, g.BlockedEdges())
}

func TestToggleBlockedEdge_WithoutExistingEdge(t *testing.T) {
	g := line(t)

	// A and D are not connected, but the connection can still be marked.
	require.NoError(t, g.ToggleBlockedEdge("A", "D"))
	assert.True(t, g.IsBlocked("D", "A"))
	assert.False(t, g.HasEdge("A", "D"))
}

func TestAdjustDelay_FloorsAtZero(t *testing.T) {
	g := line(t)
	assert.ErrorIs(t, g.AdjustDelay("zzz", 1), floorplan.ErrNodeNotFound)

	require.NoError(t, g.AdjustDelay("C", 5))
	n, err := g.Node("C")
	require.NoError(t, err)
	assert.Equal(t, int64(5), n.Delay)

	require.NoError(t, g.AdjustDelay("C", -99))
	n, err = g.Node("C")
	require.NoError(t, err)
	assert.Equal(t, int64(0), n.Delay)
}

func TestMoveNodeAndSetLabel(t *testing.T) {
	g := line(t)
	require.NoError(t, g.MoveNode("A", 40, 50))
	require.NoError(t, g.SetLabel("A", "Atrium"))
	assert.ErrorIs(t, g.MoveNode("zzz", 0, 0), floorplan.ErrNodeNotFound)
	assert.ErrorIs(t, g.SetLabel("zzz", "x"), floorplan.ErrNodeNotFound)

	n, err := g.Node("A")
	require.NoError(t, err)
	assert.Equal(t, 40.0, n.Pos.X())
	assert.Equal(t, 50.0, n.Pos.Y())
	assert.Equal(t, "Atrium", n.Label)

	// Repositioning must not disturb identity or adjacency.
	assert.True(t, g.HasEdge("A", "B"))
}

func TestEdgeKeyCanonicalization(t *testing.T) {
	k1 := floorplan.NewEdgeKey("B", "A")
	k2 := floorplan.NewEdgeKey("A", "B")
	assert.Equal(t, k1, k2)
	assert.Equal(t, "A", k1.U)
	assert.Equal(t, "B", k1.Other("A"))
	assert.Equal(t, "A", k1.Other("B"))
	assert.Equal(t, "", k1.Other("C"))
}
