// Package floorplan: non-mutating views of a Graph.
//
// Snapshot freezes everything the route engine needs for one computation so
// it never observes a concurrent mutation mid-run. Clone produces a fully
// independent Graph for callers that need their own mutable copy.
package floorplan

import "sort"

// Snapshot is an immutable view of a Graph taken at a single point in time:
// adjacency with weights, per-node delays, and the obstacle / blocked sets.
// It is safe for concurrent use and stays coherent regardless of later
// mutations to the source Graph.
type Snapshot struct {
	adj       map[string][]Neighbor
	delays    map[string]int64
	obstacles map[string]struct{}
	blocked   map[EdgeKey]struct{}
}

// Snapshot captures the current routing-relevant state under one read lock.
// Complexity: O(V + E + B) plus sorting of each adjacency bucket.
func (g *Graph) Snapshot() *Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := &Snapshot{
		adj:       make(map[string][]Neighbor, len(g.adj)),
		delays:    make(map[string]int64, len(g.nodes)),
		obstacles: make(map[string]struct{}, len(g.obstacles)),
		blocked:   make(map[EdgeKey]struct{}, len(g.blocked)),
	}
	for id, n := range g.nodes {
		s.delays[id] = n.Delay
	}
	for u, m := range g.adj {
		bucket := make([]Neighbor, 0, len(m))
		for v, w := range m {
			bucket = append(bucket, Neighbor{ID: v, Weight: w})
		}
		// Sorted buckets keep route exploration order deterministic.
		sort.Slice(bucket, func(i, j int) bool { return bucket[i].ID < bucket[j].ID })
		s.adj[u] = bucket
	}
	for id := range g.obstacles {
		s.obstacles[id] = struct{}{}
	}
	for k := range g.blocked {
		s.blocked[k] = struct{}{}
	}

	return s
}

// HasNode reports whether the snapshot contains the node.
func (s *Snapshot) HasNode(id string) bool {
	_, exists := s.delays[id]

	return exists
}

// NodeCount returns the number of nodes in the snapshot.
func (s *Snapshot) NodeCount() int { return len(s.delays) }

// Neighbors returns the frozen, ID-sorted adjacency of the node. The slice
// is shared; callers must not modify it.
func (s *Snapshot) Neighbors(id string) []Neighbor { return s.adj[id] }

// Delay returns the node's arrival penalty at snapshot time.
func (s *Snapshot) Delay(id string) int64 { return s.delays[id] }

// IsObstacle reports whether the node was flagged impassable.
func (s *Snapshot) IsObstacle(id string) bool {
	_, on := s.obstacles[id]

	return on
}

// IsBlocked reports whether the connection was flagged blocked, in either
// orientation.
func (s *Snapshot) IsBlocked(u, v string) bool {
	_, on := s.blocked[NewEdgeKey(u, v)]

	return on
}

// Clone returns a deep copy of the Graph: nodes, edges, and both exclusion
// sets. The copy shares no state with the original.
// Complexity: O(V + E + B).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := NewGraph()
	for id, n := range g.nodes {
		cp := *n
		out.nodes[id] = &cp
		out.adj[id] = make(map[string]int64, len(g.adj[id]))
	}
	for u, m := range g.adj {
		for v, w := range m {
			out.adj[u][v] = w
		}
	}
	for id := range g.obstacles {
		out.obstacles[id] = struct{}{}
	}
	for k := range g.blocked {
		out.blocked[k] = struct{}{}
	}

	return out
}
