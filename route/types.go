// Package route: result type, sentinel errors and functional options.
package route

import (
	"errors"
	"math"
)

// Sentinel errors returned by the route engine.
var (
	// ErrNilGraph indicates a nil *floorplan.Graph was passed in.
	ErrNilGraph = errors.New("route: graph is nil")

	// ErrEmptyNodeID indicates the start or destination ID is empty.
	ErrEmptyNodeID = errors.New("route: node ID is empty")

	// ErrNodeNotFound indicates the start or destination node is not in
	// the graph. An unreachable-but-present destination is NOT an error;
	// it yields an empty Route.
	ErrNodeNotFound = errors.New("route: node not found in graph")

	// ErrBadMaxCost indicates WithMaxCost was given a negative budget.
	ErrBadMaxCost = errors.New("route: MaxCost must be non-negative")
)

// Route is one computed evacuation path.
//
// Path is the ordered node-ID sequence from start to destination inclusive.
// An empty Path means the destination is unreachable (Cost is then 0); a
// single-element Path means start == destination.
type Route struct {
	Path []string
	Cost int64
}

// Reachable reports whether the route actually connects start to its
// destination. Callers must branch on this, never on Cost == 0, because
// the trivial start==destination route also has zero cost.
func (r Route) Reachable() bool { return len(r.Path) > 0 }

// Options configures one route computation.
//
// MaxCost caps the accumulated cost the engine will explore; nodes beyond
// the cap are treated as unreachable. Must be >= 0. Default is
// math.MaxInt64 (no cap).
type Options struct {
	MaxCost int64
}

// Option is a functional option for FindPath and FindAllRoutes.
type Option func(*Options)

// WithMaxCost sets an evacuation-cost budget. Routes whose total cost would
// exceed the budget report as unreachable. Negative budgets are rejected by
// the engine with ErrBadMaxCost.
func WithMaxCost(c int64) Option {
	return func(o *Options) { o.MaxCost = c }
}

// defaultOptions returns the zero-configuration defaults.
func defaultOptions() Options {
	return Options{MaxCost: math.MaxInt64}
}
