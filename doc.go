// Package evacroute is an in-memory engine for building a weighted graph of
// a building layout and computing, for each exit, the lowest-cost evacuation
// route from a chosen start point, accounting for impassable nodes, blocked
// connections and per-node delay penalties.
//
// The module is split into four small packages:
//
//	floorplan/ - the graph store: nodes, undirected weighted edges, obstacle
//	             and blocked-edge sets, with atomic mutation operations
//	route/     - the route engine: cost-prioritized shortest path over a
//	             floorplan snapshot, one route per exit
//	spatial/   - proximity lookups (nearest node / nearest edge) backing an
//	             interactive editor or input layer
//	layout/    - declarative seed topologies: the built-in reference floor,
//	             a corridor-grid generator, and YAML loading
//
// Quick ASCII sketch of the built-in reference floor:
//
//	A1──A2──A3──A4──A5
//	│   │   │   │   │
//	B1──H1──H2──H3──B5
//	│   │   │   │   │
//	C1──H4──H5──H6──C5
//	│       │       │
//	E1──────E2──────E3   (exits)
//
// Every mutation invalidates previously computed routes; the intended usage
// is mutate, then recompute all exit routes via route.FindAllRoutes.
package evacroute
