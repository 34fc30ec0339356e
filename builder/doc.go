// SPDX-License-Identifier: MIT

// Package builder assembles deterministic road-graph fixtures on top of
// core.Graph: paths, cycles, grids, complete graphs and random sparse graphs.
//
// Design contract:
//   - One orchestrator: BuildGraph(opts, cons...) creates the graph, resolves the
//     configuration and runs constructors in order.
//   - Constructors validate parameters and return sentinel errors; they never panic.
//   - Option constructors panic on meaningless literal inputs (nil functions,
//     inverted weight ranges).
//   - Determinism: identical options, seed and constructor order ⇒ identical graphs.
//
// Vertices receive display coordinates that follow the topology (a path along
// the X axis, a cycle on a circle, a grid on integer lattice points) so fixtures
// can be rendered the same way as real networks.
package builder
