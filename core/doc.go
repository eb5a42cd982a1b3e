// Package core provides a generic, deterministic in-memory Graph
// container with a minimal, explicit API surface.
//
// The Graph G = (V,E) is parameterized by the node-label type:
//
//   - Generic node labels — any comparable Go type (int, string, custom
//     key types); the label is an immutable identity, never mutated.
//   - Directed vs. undirected — fixed at construction via Kind; every
//     orientation-specific query is gated by ErrIncorrectGraphType.
//   - Optionally weighted edges — an Edge carries an explicit Weighted
//     presence flag instead of a sentinel weight value.
//   - Insertion-ordered storage — Nodes(), Edges(), Neighbors(),
//     Successors() and Predecessors() all enumerate in insertion order,
//     so every run over the same build sequence reproduces the same output.
//   - Snapshot queries — every returned slice is an independent copy;
//     callers may mutate or discard it without touching the graph.
//
// Core methods:
//
//	// Node lifecycle
//	AddNode(label T) error               // O(1) amortized
//	HasNode(label T) bool                // O(1)
//	NodeCount() int                      // O(1)
//	Nodes() []T                          // O(V)
//
//	// Edge lifecycle
//	AddEdge(from, to T) error                        // O(deg(from))
//	AddWeightedEdge(from, to T, w float64) error     // O(deg(from))
//	AddEdges(edges ...Edge[T]) []error               // per-item results
//	HasEdge(from, to T) bool                         // O(deg(from))
//	Weight(from, to T) (float64, bool, error)        // O(deg(from))
//	EdgeCount() int                                  // O(V)
//	Edges() []Edge[T]                                // O(V+E)
//
//	// Adjacency & degrees (orientation-gated)
//	Neighbors(label T) ([]T, error)      // undirected only, O(deg)
//	Degree(label T) (int, error)         // undirected only, O(1)+lookup
//	Successors(label T) ([]T, error)     // directed only, O(deg)
//	Predecessors(label T) ([]T, error)   // directed only, O(V+E)
//	OutDegree(label T) (int, error)      // directed only, O(1)+lookup
//	InDegree(label T) (int, error)       // directed only, O(V+E)
//
//	// Maintenance & cloning
//	Clear()                              // reset storage, preserve Kind
//	CloneEmpty() *Graph[T]               // O(V): nodes + kind, no edges
//	Clone() *Graph[T]                    // O(V+E): deep copy
//
// Edge struct fields:
//
//	From     T        // source node label
//	To       T        // destination node label
//	Weight   float64  // edge weight; meaningful only when Weighted
//	Weighted bool     // false for edges added via AddEdge
//
// Errors:
//
//	ErrNodeAlreadyExists  – duplicate AddNode
//	ErrNodeNotExists      – query referencing an unknown node
//	ErrEdgeAlreadyExists  – duplicate edge insertion
//	ErrEdgeNotExists      – Weight lookup on a missing edge
//	ErrPathNotExists      – reserved for path-query consumers
//	ErrIncorrectGraphType – orientation-specific call on the wrong Kind
//	ErrInvalidEdge        – self-loop on an undirected graph
//
// Concurrency model: none. A Graph is a single-owner structure; all
// operations are synchronous and non-blocking, and no internal locking
// is performed. Concurrent use requires external synchronization.
package core
