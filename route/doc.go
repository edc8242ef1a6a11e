// Package route computes lowest-cost evacuation routes over a floorplan
// snapshot using cost-prioritized exploration (Dijkstra) with a binary
// min-heap frontier and lazy decrease-key.
//
// Cost model:
//
//   - Stepping from current to next costs edgeWeight(current, next) plus
//     Delay(next); the delay is charged on arrival, once per traversal
//     into a node, never for the start node.
//   - Exploration skips any next node in the obstacle set and any edge
//     whose canonical pair is in the blocked-edge set; the start node is
//     exempt from the obstacle check.
//   - All costs are non-negative, so exploration stops the moment the
//     destination is popped from the frontier with its minimal cost.
//
// Results:
//
//   - FindPath(g, s, s) returns Route{[s], 0} for any s, including an s
//     currently flagged as an obstacle.
//   - An unreachable destination yields Route{nil, 0} with a nil error:
//     "no route" is an expected runtime condition (obstacles can isolate
//     an exit), not a failure. Test Route.Reachable, not the error.
//
// Determinism: the frontier orders entries by (cost, node ID) and
// relaxation walks neighbors in ID order with strict improvement, so among
// several minimum-cost routes the one through the intermediate node
// finalized first wins. Note this is pop order, not a lexicographic
// comparison of whole paths: a cheaper first hop can finalize a larger-ID
// intermediate earlier. The same graph and endpoints always yield the same
// route, and that stability is part of the contract and covered by tests.
//
// Options:
//
//   - WithMaxCost(c): an evacuation-time budget. Nodes whose accumulated
//     cost would exceed c are not explored, so a destination beyond the
//     budget reports as unreachable.
//
// Errors (sentinel, all caller-correctable):
//
//	ErrNilGraph     - the graph pointer is nil.
//	ErrEmptyNodeID  - start or destination ID is empty.
//	ErrNodeNotFound - start or destination is not in the graph.
//	ErrBadMaxCost   - a negative MaxCost was configured.
//
// Complexity: O((V + E) log V) time and O(V + E) space per FindPath call.
// Nothing is cached between calls: any mutation of the floorplan (or a new
// start node) invalidates earlier routes, and the intended policy is to
// recompute every exit route afterwards via FindAllRoutes.
package route
