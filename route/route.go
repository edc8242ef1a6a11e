// Package route: the engine implementation.
//
// FindPath runs a single-pair Dijkstra with early exit over a frozen
// floorplan.Snapshot; FindAllRoutes shares one snapshot across every exit
// so a whole recomputation batch observes the same graph state.
package route

import (
	"container/heap"
	"fmt"

	"github.com/dkorbut/evacroute/floorplan"
)

// FindPath computes the lowest-cost route from start to end over the
// current state of g.
//
// Validation order: options, nil graph, empty IDs, node existence. After
// validation the graph is snapshotted once, so a concurrent mutation can
// never be observed mid-computation.
//
// Returns Route{nil, 0} with a nil error when end is unreachable.
// Complexity: O((V + E) log V).
func FindPath(g *floorplan.Graph, start, end string, opts ...Option) (Route, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.MaxCost < 0 {
		return Route{}, ErrBadMaxCost
	}
	if g == nil {
		return Route{}, ErrNilGraph
	}
	if start == "" || end == "" {
		return Route{}, ErrEmptyNodeID
	}
	if !g.HasNode(start) {
		return Route{}, fmt.Errorf("%w: start %q", ErrNodeNotFound, start)
	}
	if !g.HasNode(end) {
		return Route{}, fmt.Errorf("%w: destination %q", ErrNodeNotFound, end)
	}

	return findPath(g.Snapshot(), start, end, cfg), nil
}

// FindAllRoutes computes one route per exit from the same start, preserving
// exit order in the result. All routes are computed over a single snapshot,
// so the batch reflects one consistent graph state.
//
// Returns ErrNodeNotFound if the start or any exit is absent; unreachable
// exits simply produce empty routes at their position.
// Complexity: O(len(exits) · (V + E) log V).
func FindAllRoutes(g *floorplan.Graph, start string, exits []string, opts ...Option) ([]Route, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.MaxCost < 0 {
		return nil, ErrBadMaxCost
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if start == "" {
		return nil, ErrEmptyNodeID
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: start %q", ErrNodeNotFound, start)
	}

	snap := g.Snapshot()
	out := make([]Route, 0, len(exits))
	for _, exit := range exits {
		if exit == "" {
			return nil, ErrEmptyNodeID
		}
		if !snap.HasNode(exit) {
			return nil, fmt.Errorf("%w: exit %q", ErrNodeNotFound, exit)
		}
		out = append(out, findPath(snap, start, exit, cfg))
	}

	return out, nil
}

// findPath is the core single-pair search over a frozen snapshot.
// Precondition: start and end exist in the snapshot.
func findPath(s *floorplan.Snapshot, start, end string, cfg Options) Route {
	// The trivial pair is "already found" before exploration begins, even
	// when start is currently an obstacle: obstacle status only blocks
	// traversal INTO a node.
	if start == end {
		return Route{Path: []string{start}, Cost: 0}
	}

	r := &runner{
		snap:    s,
		options: cfg,
		dist:    make(map[string]int64, s.NodeCount()),
		prev:    make(map[string]string, s.NodeCount()),
		visited: make(map[string]bool, s.NodeCount()),
	}
	r.dist[start] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, frontierItem{id: start, cost: 0})

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(frontierItem)
		if r.visited[item.id] {
			continue // stale lazy-decrease-key entry
		}
		if item.id == end {
			return Route{Path: r.reconstruct(start, end), Cost: item.cost}
		}
		r.visited[item.id] = true
		r.relax(item.id)
	}

	// end was never popped: no predecessor chain connects it to start.
	return Route{}
}

// runner holds the mutable state of one findPath execution.
type runner struct {
	snap    *floorplan.Snapshot
	options Options
	dist    map[string]int64  // best known cost per discovered node
	prev    map[string]string // predecessor on the best known route
	visited map[string]bool   // finalized nodes
	pq      frontierPQ
}

// relax attempts to improve the cost of every traversable neighbor of u.
// Neighbors arrive in ID order from the snapshot, which together with the
// (cost, ID) heap ordering fixes the documented tie-break.
func (r *runner) relax(u string) {
	for _, nb := range r.snap.Neighbors(u) {
		if r.snap.IsObstacle(nb.ID) {
			continue
		}
		if r.snap.IsBlocked(u, nb.ID) {
			continue
		}

		// Arrival delay is charged once per traversal into nb.
		next := r.dist[u] + nb.Weight + r.snap.Delay(nb.ID)
		if next > r.options.MaxCost {
			continue
		}
		if best, seen := r.dist[nb.ID]; seen && next >= best {
			continue
		}
		r.dist[nb.ID] = next
		r.prev[nb.ID] = u
		heap.Push(&r.pq, frontierItem{id: nb.ID, cost: next})
	}
}

// reconstruct traces predecessor links from end back to start and reverses.
func (r *runner) reconstruct(start, end string) []string {
	var rev []string
	for at := end; at != start; at = r.prev[at] {
		rev = append(rev, at)
	}
	rev = append(rev, start)

	path := make([]string, 0, len(rev))
	for i := len(rev) - 1; i >= 0; i-- {
		path = append(path, rev[i])
	}

	return path
}

// frontierItem is one (node, accumulated cost) frontier entry.
type frontierItem struct {
	id   string
	cost int64
}

// frontierPQ is a min-heap of frontier entries ordered by cost, then node
// ID. Stale entries left behind by lazy decrease-key are skipped on pop via
// the visited map.
type frontierPQ []frontierItem

func (pq frontierPQ) Len() int { return len(pq) }

func (pq frontierPQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}

	return pq[i].id < pq[j].id
}

func (pq frontierPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *frontierPQ) Push(x interface{}) { *pq = append(*pq, x.(frontierItem)) }

func (pq *frontierPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
