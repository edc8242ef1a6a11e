// Package layout supplies seed topologies for the floorplan store:
// a declarative Layout value (nodes with positions, labels, roles and
// delays, plus a weighted edge list) that builds into a *floorplan.Graph,
// the built-in reference floor, a corridor-grid generator, and YAML
// load/parse helpers.
//
// A Layout is construction input, not graph persistence: it describes the
// static starting topology and carries none of the live obstacle or
// blocked-edge state.
//
// Errors: Build delegates validation to the store and wraps its sentinel
// errors (floorplan.ErrDuplicateNode, floorplan.ErrNodeNotFound, ...) with
// the offending node or edge, so callers can still branch with errors.Is.
package layout
