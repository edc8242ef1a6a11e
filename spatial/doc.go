// Package spatial answers the proximity questions an interactive input
// layer asks of a floorplan: "which node is under this point?" and "which
// connection is under this point?".
//
// An Index is an immutable snapshot built from a floorplan.Graph: node
// positions go into a 2-D R-tree, edge segments into a flat list. The
// store never interprets pixels itself; callers pick the radius and
// tolerance that match their display scale. After mutating the graph,
// rebuild the index; that is the same cadence on which routes are recomputed.
//
// Complexity: NewIndex is O(V log V + E); NearestNode is O(log V);
// NearestEdge is a linear scan over segments, which is the right trade-off
// at interactive floor sizes.
package spatial
