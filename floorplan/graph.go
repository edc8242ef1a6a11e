// Package floorplan: mutation operations on the Graph.
//
// Every method here takes the write lock for its full duration, validates
// first, and only then touches state, so a failed call leaves the graph
// exactly as it was.
package floorplan

// AddNode inserts a new node with the given ID and display label.
// The node starts with no incident edges, RoleRegular and zero delay unless
// overridden by options.
// Returns ErrEmptyNodeID, ErrDuplicateNode, or ErrBadDelay.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id, label string, opts ...NodeOption) error {
	if id == "" {
		return ErrEmptyNodeID
	}

	n := &Node{ID: id, Label: label}
	for _, opt := range opts {
		opt(n)
	}
	if n.Delay < 0 {
		return ErrBadDelay
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.nodes[id]; exists {
		return ErrDuplicateNode
	}
	g.nodes[id] = n
	g.adj[id] = make(map[string]int64)

	return nil
}

// RemoveNode deletes the node, every edge incident to it, its obstacle flag,
// and any blocked-edge entry referencing it. Purging blocked entries at
// removal time guarantees a later node reusing the same ID does not
// resurrect stale blocks.
// Returns ErrNodeNotFound if the node does not exist.
// Complexity: O(deg(v) + B) where B is the blocked-set size.
func (g *Graph) RemoveNode(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.nodes[id]; !exists {
		return ErrNodeNotFound
	}

	// Drop the mirrored adjacency entries of every incident edge.
	for other := range g.adj[id] {
		delete(g.adj[other], id)
	}
	delete(g.adj, id)
	delete(g.nodes, id)
	delete(g.obstacles, id)

	// Purge orphaned blocked-edge entries.
	for k := range g.blocked {
		if k.U == id || k.V == id {
			delete(g.blocked, k)
		}
	}

	return nil
}

// AddEdge connects u and v with the given strictly positive weight.
// If the edge already exists its weight is overwritten; the store never
// holds parallel edges.
// Returns ErrNodeNotFound if either endpoint is absent, ErrSelfLoop if
// u == v, ErrBadWeight if weight <= 0.
// Complexity: O(1).
func (g *Graph) AddEdge(u, v string, weight int64) error {
	if u == v {
		return ErrSelfLoop
	}
	if weight <= 0 {
		return ErrBadWeight
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[u]; !ok {
		return ErrNodeNotFound
	}
	if _, ok := g.nodes[v]; !ok {
		return ErrNodeNotFound
	}

	// Mirror the weight both ways; the canonical identity is EdgeKey.
	g.adj[u][v] = weight
	g.adj[v][u] = weight

	return nil
}

// RemoveEdge deletes the edge between u and v and, if an edge was actually
// removed, purges its blocked-edge entry. Removing an absent edge is a
// no-op, not an error, and must leave a pre-blocked connection intact.
// Complexity: O(1).
func (g *Graph) RemoveEdge(u, v string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.adj[u][v]; !exists {
		return nil
	}
	delete(g.adj[u], v)
	delete(g.adj[v], u)
	delete(g.blocked, NewEdgeKey(u, v))

	return nil
}

// ToggleObstacle flips the node's membership in the obstacle set. An
// obstacle node keeps its edges but is excluded from traversal.
// Returns ErrNodeNotFound if the node does not exist.
// Complexity: O(1).
func (g *Graph) ToggleObstacle(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.nodes[id]; !exists {
		return ErrNodeNotFound
	}
	if _, on := g.obstacles[id]; on {
		delete(g.obstacles, id)
	} else {
		g.obstacles[id] = struct{}{}
	}

	return nil
}

// ToggleBlockedEdge flips membership of the canonical (u,v) pair in the
// blocked-edge set, independent of whether the edge currently exists;
// a connection may be marked blocked while the layout is still being
// edited. Toggling with swapped endpoints clears the same entry.
// Returns ErrNodeNotFound if either endpoint is absent, ErrSelfLoop if
// u == v.
// Complexity: O(1).
func (g *Graph) ToggleBlockedEdge(u, v string) error {
	if u == v {
		return ErrSelfLoop
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[u]; !ok {
		return ErrNodeNotFound
	}
	if _, ok := g.nodes[v]; !ok {
		return ErrNodeNotFound
	}

	k := NewEdgeKey(u, v)
	if _, on := g.blocked[k]; on {
		delete(g.blocked, k)
	} else {
		g.blocked[k] = struct{}{}
	}

	return nil
}

// AdjustDelay adds delta to the node's delay, flooring at zero so the delay
// never goes negative.
// Returns ErrNodeNotFound if the node does not exist.
// Complexity: O(1).
func (g *Graph) AdjustDelay(id string, delta int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	n, exists := g.nodes[id]
	if !exists {
		return ErrNodeNotFound
	}
	n.Delay += delta
	if n.Delay < 0 {
		n.Delay = 0
	}

	return nil
}

// MoveNode repositions the node without changing its identity, edges or
// exclusion flags.
// Returns ErrNodeNotFound if the node does not exist.
// Complexity: O(1).
func (g *Graph) MoveNode(id string, x, y float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	n, exists := g.nodes[id]
	if !exists {
		return ErrNodeNotFound
	}
	n.Pos[0], n.Pos[1] = x, y

	return nil
}

// SetLabel replaces the node's display label. The role is untouched: labels
// are presentation only.
// Returns ErrNodeNotFound if the node does not exist.
// Complexity: O(1).
func (g *Graph) SetLabel(id, label string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	n, exists := g.nodes[id]
	if !exists {
		return ErrNodeNotFound
	}
	n.Label = label

	return nil
}
