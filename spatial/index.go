// Package spatial: R-tree node index and segment hit-testing.
package spatial

import (
	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/dkorbut/evacroute/floorplan"
)

// rtree tuning: 2-D, branch factor bounds.
const (
	treeDim       = 2
	treeMinBranch = 25
	treeMaxBranch = 50

	// entryExtent pads point entries into tiny boxes; R-tree rectangles
	// need positive extents. Queries still compare exact point distances.
	entryExtent = 0.001
)

// nodeEntry wraps one node position for R-tree storage.
type nodeEntry struct {
	id   string
	pt   orb.Point
	bbox rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *nodeEntry) Bounds() rtreego.Rect { return e.bbox }

// segment is one edge with its endpoint geometry.
type segment struct {
	key  floorplan.EdgeKey
	line orb.LineString
}

// Index is an immutable spatial snapshot of a floorplan. Build with
// NewIndex; rebuild after graph mutations.
type Index struct {
	tree     *rtreego.Rtree
	hasNodes bool
	segments []segment
}

// NewIndex builds an index over the graph's current nodes and edges.
// Complexity: O(V log V + E).
func NewIndex(g *floorplan.Graph) *Index {
	idx := &Index{tree: rtreego.NewTree(treeDim, treeMinBranch, treeMaxBranch)}

	pos := make(map[string]orb.Point)
	for _, n := range g.Nodes() {
		pos[n.ID] = n.Pos
		bbox, err := rtreego.NewRect(
			rtreego.Point{n.Pos.X() - entryExtent, n.Pos.Y() - entryExtent},
			[]float64{2 * entryExtent, 2 * entryExtent},
		)
		if err != nil {
			continue
		}
		idx.tree.Insert(&nodeEntry{id: n.ID, pt: n.Pos, bbox: bbox})
		idx.hasNodes = true
	}
	for _, e := range g.Edges() {
		idx.segments = append(idx.segments, segment{
			key:  e.EdgeKey,
			line: orb.LineString{pos[e.U], pos[e.V]},
		})
	}

	return idx
}

// NearestNode returns the ID of the node closest to p, provided it lies
// within radius. The second result is false when no node qualifies.
// Complexity: O(log V).
func (idx *Index) NearestNode(p orb.Point, radius float64) (string, bool) {
	if !idx.hasNodes {
		return "", false
	}
	item := idx.tree.NearestNeighbor(rtreego.Point{p.X(), p.Y()})
	if item == nil {
		return "", false
	}
	entry := item.(*nodeEntry)
	if planar.Distance(entry.pt, p) > radius {
		return "", false
	}

	return entry.id, true
}

// NearestEdge returns the canonical key of the edge whose segment is
// closest to p, provided it lies within tolerance. The second result is
// false when no edge qualifies.
// Complexity: O(E).
func (idx *Index) NearestEdge(p orb.Point, tolerance float64) (floorplan.EdgeKey, bool) {
	var (
		best     floorplan.EdgeKey
		bestDist float64
		found    bool
	)
	for _, s := range idx.segments {
		d := planar.DistanceFrom(s.line, p)
		if d > tolerance {
			continue
		}
		if !found || d < bestDist {
			best, bestDist, found = s.key, d, true
		}
	}

	return best, found
}
