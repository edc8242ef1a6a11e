// Package floorplan: central types, sentinel errors and node options.
//
// This file declares Node, Role, EdgeKey, Edge, Neighbor, NodeOption,
// the sentinel errors, and the NewGraph constructor.
package floorplan

import (
	"errors"
	"sync"

	"github.com/paulmach/orb"
)

// Sentinel errors for floorplan operations.
var (
	// ErrEmptyNodeID indicates that the provided node ID is the empty string.
	ErrEmptyNodeID = errors.New("floorplan: node ID is empty")

	// ErrDuplicateNode indicates AddNode was called with an ID already present.
	ErrDuplicateNode = errors.New("floorplan: node already exists")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("floorplan: node not found")

	// ErrSelfLoop indicates an edge operation with equal endpoints.
	ErrSelfLoop = errors.New("floorplan: self-loop not allowed")

	// ErrBadWeight indicates a zero or negative edge weight.
	ErrBadWeight = errors.New("floorplan: edge weight must be positive")

	// ErrBadDelay indicates a negative delay passed at node creation.
	ErrBadDelay = errors.New("floorplan: delay must be non-negative")
)

// Role tags what a node is for routing purposes. It is assigned at creation
// and is independent of the display label.
type Role int

const (
	// RoleRegular marks an ordinary walkable location.
	RoleRegular Role = iota

	// RoleExit marks an evacuation exit; route.FindAllRoutes targets these.
	RoleExit
)

// String returns a human-readable role name.
func (r Role) String() string {
	if r == RoleExit {
		return "exit"
	}

	return "regular"
}

// Node represents a location in the evacuation graph.
//
// ID uniquely identifies the node within its Graph. Label is a free-form
// display string (conventionally prefixed A/B/C/E/H/N by role). Delay is a
// non-negative penalty in seconds charged once per traversal into the node.
// Pos is the drawing position; it carries no identity.
type Node struct {
	// ID is the unique identifier for this node.
	ID string

	// Label is the display string shown by presentation layers.
	Label string

	// Role distinguishes exits from regular nodes.
	Role Role

	// Delay is the arrival penalty in seconds (never negative).
	Delay int64

	// Pos is the 2-D drawing position.
	Pos orb.Point
}

// IsExit reports whether the node is an evacuation exit.
func (n Node) IsExit() bool { return n.Role == RoleExit }

// EdgeKey is the canonical unordered pair naming an undirected edge.
// U is always the lexicographically smaller endpoint, so (u,v) and (v,u)
// map to the same key everywhere.
type EdgeKey struct {
	U, V string
}

// NewEdgeKey canonicalizes the endpoint pair.
func NewEdgeKey(u, v string) EdgeKey {
	if v < u {
		u, v = v, u
	}

	return EdgeKey{U: u, V: v}
}

// Other returns the endpoint opposite to id, or "" if id is not an endpoint.
func (k EdgeKey) Other(id string) string {
	switch id {
	case k.U:
		return k.V
	case k.V:
		return k.U
	}

	return ""
}

// Edge is a realized connection together with its traversal weight.
type Edge struct {
	EdgeKey

	// Weight is the strictly positive traversal cost, independent of any
	// endpoint delay.
	Weight int64
}

// Neighbor is one adjacency entry as seen from a particular node.
type Neighbor struct {
	// ID is the adjacent node.
	ID string

	// Weight is the weight of the connecting edge.
	Weight int64
}

// NodeOption configures attributes of a node at creation time.
type NodeOption func(*Node)

// WithPosition sets the node's drawing position.
func WithPosition(x, y float64) NodeOption {
	return func(n *Node) { n.Pos = orb.Point{x, y} }
}

// WithRole sets the node's role. Defaults to RoleRegular.
func WithRole(r Role) NodeOption {
	return func(n *Node) { n.Role = r }
}

// WithExit is shorthand for WithRole(RoleExit).
func WithExit() NodeOption {
	return func(n *Node) { n.Role = RoleExit }
}

// WithDelay sets the creation-time delay in seconds. Negative values are
// rejected by AddNode with ErrBadDelay.
func WithDelay(d int64) NodeOption {
	return func(n *Node) { n.Delay = d }
}

// Graph is the in-memory evacuation floor store.
//
// All state lives here: the node catalog, the mirrored adjacency with
// per-edge weights, and the obstacle/blocked exclusion sets. A single
// RWMutex guards everything so each mutation is observed atomically.
type Graph struct {
	mu sync.RWMutex

	nodes     map[string]*Node            // node ID → node
	adj       map[string]map[string]int64 // adj[u][v] = weight, mirrored both ways
	obstacles map[string]struct{}         // node IDs excluded from traversal
	blocked   map[EdgeKey]struct{}        // canonical pairs excluded from traversal
}

// NewGraph creates an empty floor graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		nodes:     make(map[string]*Node),
		adj:       make(map[string]map[string]int64),
		obstacles: make(map[string]struct{}),
		blocked:   make(map[EdgeKey]struct{}),
	}
}
