// Package floorplan: read-only queries over the Graph.
//
// All methods here take the read lock and return copies or fresh slices;
// nothing hands out interior mutable state.
package floorplan

import "sort"

// HasNode reports whether a node with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, exists := g.nodes[id]

	return exists
}

// Node returns a value copy of the node with the given ID.
// Returns ErrNodeNotFound if absent.
// Complexity: O(1).
func (g *Graph) Node(id string) (Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, exists := g.nodes[id]
	if !exists {
		return Node{}, ErrNodeNotFound
	}

	return *n, nil
}

// Nodes returns value copies of all nodes, sorted by ID for determinism.
// Complexity: O(V log V).
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, *n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// NodeCount returns the number of nodes. Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// HasEdge reports whether an edge between u and v exists, in either
// orientation.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, exists := g.adj[u][v]

	return exists
}

// EdgeWeight returns the weight of the edge between u and v and whether the
// edge exists.
// Complexity: O(1).
func (g *Graph) EdgeWeight(u, v string) (int64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	w, exists := g.adj[u][v]

	return w, exists
}

// Edges returns every edge exactly once as its canonical pair, sorted by
// (U, V) for determinism.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := g.edgesLocked()

	return out
}

// edgesLocked collects canonical edges; caller must hold at least the read lock.
func (g *Graph) edgesLocked() []Edge {
	seen := make(map[EdgeKey]struct{})
	var out []Edge
	for u, m := range g.adj {
		for v, w := range m {
			k := NewEdgeKey(u, v)
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, Edge{EdgeKey: k, Weight: w})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}

		return out[i].V < out[j].V
	})

	return out
}

// EdgeCount returns the number of edges. Complexity: O(V) over adjacency buckets.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	total := 0
	for _, m := range g.adj {
		total += len(m)
	}

	// Every edge is mirrored once in each endpoint's bucket.
	return total / 2
}

// Neighbors returns the adjacency of the node sorted by neighbor ID.
// Returns ErrNodeNotFound if the node does not exist.
// Complexity: O(d log d) where d is the node's degree.
func (g *Graph) Neighbors(id string) ([]Neighbor, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, exists := g.nodes[id]; !exists {
		return nil, ErrNodeNotFound
	}
	out := make([]Neighbor, 0, len(g.adj[id]))
	for v, w := range g.adj[id] {
		out = append(out, Neighbor{ID: v, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// IsObstacle reports whether the node is currently flagged impassable.
// Absent nodes report false.
// Complexity: O(1).
func (g *Graph) IsObstacle(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, on := g.obstacles[id]

	return on
}

// Obstacles returns a sorted snapshot of the obstacle node IDs.
// Complexity: O(B log B).
func (g *Graph) Obstacles() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, 0, len(g.obstacles))
	for id := range g.obstacles {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// IsBlocked reports whether the connection between u and v is flagged
// blocked, in either orientation.
// Complexity: O(1).
func (g *Graph) IsBlocked(u, v string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, on := g.blocked[NewEdgeKey(u, v)]

	return on
}

// BlockedEdges returns a snapshot of the blocked canonical pairs, sorted by
// (U, V).
// Complexity: O(B log B).
func (g *Graph) BlockedEdges() []EdgeKey {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]EdgeKey, 0, len(g.blocked))
	for k := range g.blocked {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}

		return out[i].V < out[j].V
	})

	return out
}

// Exits returns the IDs of all RoleExit nodes, sorted.
// Complexity: O(V log V).
func (g *Graph) Exits() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []string
	for id, n := range g.nodes {
		if n.Role == RoleExit {
			out = append(out, id)
		}
	}
	sort.Strings(out)

	return out
}
