// Package core: central types and constructors.
//
// This file declares Kind, Edge, Graph, the sentinel errors, and the
// NewGraph / NewDirected / NewUndirected constructors. Method
// implementations live in the methods_*.go files.

package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrNodeAlreadyExists indicates AddNode received a label that is already present.
	ErrNodeAlreadyExists = errors.New("core: node already exists")

	// ErrNodeNotExists indicates an operation referenced a non-existent node.
	ErrNodeNotExists = errors.New("core: node does not exist")

	// ErrEdgeAlreadyExists indicates an edge between the given endpoints is already present.
	ErrEdgeAlreadyExists = errors.New("core: edge already exists")

	// ErrEdgeNotExists indicates a weight lookup referenced a non-existent edge.
	ErrEdgeNotExists = errors.New("core: edge does not exist")

	// ErrPathNotExists is reserved for path-query consumers built on top of
	// the container (e.g. shortest-path routines); the core never returns it.
	ErrPathNotExists = errors.New("core: path does not exist")

	// ErrIncorrectGraphType indicates an orientation-specific operation was
	// called on a graph of the other Kind.
	ErrIncorrectGraphType = errors.New("core: operation not supported by this graph kind")

	// ErrInvalidEdge indicates a self-loop was requested on an undirected graph.
	ErrInvalidEdge = errors.New("core: invalid edge")
)

// Kind selects the orientation of a Graph at construction time.
// It is immutable for the lifetime of the instance.
type Kind uint8

const (
	// Directed edges have a single direction; Successors, Predecessors,
	// OutDegree and InDegree apply.
	Directed Kind = iota

	// Undirected edges are symmetric; Neighbors and Degree apply, and
	// self-loops are rejected with ErrInvalidEdge.
	Undirected
)

// String returns a human-readable name for the Kind.
func (k Kind) String() string {
	switch k {
	case Directed:
		return "directed"
	case Undirected:
		return "undirected"
	default:
		return "unknown"
	}
}

// Edge is the query-time projection of a single adjacency entry.
//
// For directed graphs one Edge corresponds to one stored entry; for
// undirected graphs every logical edge surfaces as two Edges (a→b and
// b→a) carrying the same weight. Weighted reports whether Weight is
// meaningful: edges added via AddEdge have Weighted == false.
type Edge[T comparable] struct {
	// From is the source node label.
	From T

	// To is the destination node label.
	To T

	// Weight is the cost of the edge; meaningful only when Weighted is true.
	Weight float64

	// Weighted reports whether Weight was supplied at insertion time.
	Weighted bool
}

// halfEdge is one stored adjacency entry: the out-neighbor plus its weight.
type halfEdge[T comparable] struct {
	to       T
	weight   float64
	weighted bool
}

// Graph is the core in-memory graph container.
//
// Nodes are kept in insertion order in nodes; index maps a label to its
// slot in nodes, and adj runs parallel to nodes, holding each node's
// out-edges in insertion order. For undirected graphs every logical
// edge is materialized as two mirrored adjacency entries.
//
// A Graph is not safe for concurrent use.
type Graph[T comparable] struct {
	kind Kind

	nodes []T             // insertion-ordered node labels, no duplicates
	index map[T]int       // label → slot in nodes
	adj   [][]halfEdge[T] // adj[slot] = out-edges of nodes[slot]
}

// NewGraph creates an empty Graph of the given Kind.
// Complexity: O(1).
func NewGraph[T comparable](kind Kind) *Graph[T] {
	return &Graph[T]{
		kind:  kind,
		index: make(map[T]int),
	}
}

// NewDirected creates an empty directed Graph.
func NewDirected[T comparable]() *Graph[T] { return NewGraph[T](Directed) }

// NewUndirected creates an empty undirected Graph.
func NewUndirected[T comparable]() *Graph[T] { return NewGraph[T](Undirected) }

// Kind reports the orientation fixed at construction time.
func (g *Graph[T]) Kind() Kind { return g.kind }

// Directed reports whether the graph stores one-way edges.
func (g *Graph[T]) Directed() bool { return g.kind == Directed }
