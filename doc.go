// Package arcon is an in-memory engine for finite-domain constraint
// satisfaction problems — model variables, domains and binary constraints,
// then solve with arc-consistency propagation and heuristic backtracking.
//
// 🚀 What is arcon?
//
//	A small, focused library that brings together:
//		• Problem modeling: opaque variable IDs, generic value domains,
//		  binary predicate constraints stored as directed arcs
//		• Domain store: trail-based snapshot/restore for cheap backtracking
//		• AC-3: worklist arc-consistency propagation, full or incremental
//		• Search: MRV + degree variable selection, LCV value ordering,
//		  depth-first backtracking with first-solution or full enumeration
//		• Parallel mode: root value splitting across goroutines
//
// ✨ Why choose arcon?
//
//   - One engine, many puzzles – N-Queens, Sudoku, map coloring and
//     cryptarithmetic are all the same few calls with different predicates
//   - Deterministic – documented tie-breaks, reproducible runs
//   - Pure Go – generic over the value type, no cgo
//
// Everything is organized under three subpackages:
//
//	csp/    — Problem builder, constraint graph, Store with snapshot/restore
//	ac3/    — arc-consistency propagator over a Problem and Store
//	solver/ — ordering heuristics and the backtracking search controller
//
// Quick ASCII example (map coloring — adjacent regions must differ):
//
//	    WA────NT
//	     │  ╲  │
//	     │   ╲ │
//	    SA────Q
//
// Dive into the examples/ directory for runnable puzzle front ends.
//
//	go get github.com/katalvlaran/arcon
package arcon
