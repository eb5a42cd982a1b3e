// Package gograph is a generic in-memory graph container: a finite set
// of nodes of any comparable type, connected by optionally weighted
// edges, in either a directed or an undirected topology.
//
// What gograph is:
//
//   - Core primitives: add nodes & edges, query adjacency, degrees and
//     weights through a small, explicit API
//   - Generic: node labels are any comparable Go type (int, string,
//     custom key types), fixed per graph instance
//   - Deterministic: nodes, edges and adjacency are kept in insertion
//     order; every snapshot query reproduces the same sequence
//   - Pure Go: no cgo, a single test-only dependency
//
// What gograph is not:
//
//   - Not an algorithm suite. Shortest path, traversal and friends are
//     external consumers of the container; see examples/ for runnable
//     demonstrations built on the query surface alone.
//   - Not a concurrent structure. A Graph is single-owner; wrap it in
//     your own synchronization if you must share it.
//
// Everything lives in one subpackage:
//
//	core/ — the Graph, Edge and Kind types, mutation and query methods
//
// Quick ASCII example:
//
//	    1───2
//	    │   │
//	    3───4
//
//	an undirected square: four nodes, four edges, Degree(n) == 2 for all n.
//
//	go get github.com/jailop/gograph/core
package gograph
