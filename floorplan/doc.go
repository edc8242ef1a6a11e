// Package floorplan provides the graph store for an evacuation layout:
// labeled nodes with positions and per-node delay penalties, undirected
// positively-weighted edges, and two exclusion sets (impassable "obstacle"
// nodes and blocked connections) that routing must honor without the
// underlying topology changing.
//
// Design points:
//
//   - Node identity is an explicit caller-supplied string ID; the drawing
//     position is a separate attribute, so nodes can be repositioned
//     without identity churn.
//   - A node's role (RoleRegular or RoleExit) is a tagged attribute set at
//     creation time, never inferred from its label text.
//   - Edges are canonical unordered pairs: (u,v) and (v,u) name the same
//     edge for every insertion, lookup and membership test. Re-adding an
//     existing edge replaces its weight; parallel edges and self-loops are
//     rejected.
//   - The obstacle and blocked-edge sets are owned by the Graph, so
//     multiple independent floors can coexist and be tested in isolation.
//   - Every mutation either fully applies or fails with a sentinel error
//     and leaves no visible intermediate state.
//
// Concurrency: a single sync.RWMutex guards all state. Mutations take the
// write lock, queries the read lock. Callers that must expose a mutation
// together with freshly recomputed routes as one atomic step should hold
// their own outer lock for the mutate-then-recompute transaction; the
// route engine itself only reads through Snapshot, which freezes a
// consistent view.
//
// Errors (sentinel):
//
//	ErrEmptyNodeID   - node ID is the empty string.
//	ErrDuplicateNode - AddNode on an existing ID.
//	ErrNodeNotFound  - operation referenced a non-existent node.
//	ErrSelfLoop      - edge endpoints are equal.
//	ErrBadWeight     - edge weight is zero or negative.
//	ErrBadDelay      - creation-time delay is negative.
package floorplan
