// Package core: node lifecycle & queries.
//
// Determinism:
//   - Nodes() returns labels in insertion order.
//
// Atomicity:
//   - A failed AddNode leaves the graph exactly as before the call.

package core

// AddNode inserts a new node with the given label and an empty
// adjacency list, appending it after all previously known nodes.
// Returns ErrNodeAlreadyExists if the label is already present; the
// graph is unchanged on failure.
// Complexity: O(1) amortized.
func (g *Graph[T]) AddNode(label T) error {
	// Duplicate check against the label index.
	if _, exists := g.index[label]; exists {
		return ErrNodeAlreadyExists
	}
	g.addNode(label)

	return nil
}

// HasNode reports whether a node with the given label exists.
// Complexity: O(1).
func (g *Graph[T]) HasNode(label T) bool {
	_, exists := g.index[label]

	return exists
}

// NodeCount returns the number of nodes currently in the graph,
// including nodes created implicitly by edge insertion.
// Complexity: O(1).
func (g *Graph[T]) NodeCount() int {
	return len(g.nodes)
}

// Nodes returns a snapshot of all node labels in insertion order.
// The returned slice is an independent copy owned by the caller.
// Complexity: O(V).
func (g *Graph[T]) Nodes() []T {
	out := make([]T, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// addNode appends a label unconditionally; callers guarantee absence.
func (g *Graph[T]) addNode(label T) {
	g.index[label] = len(g.nodes)
	g.nodes = append(g.nodes, label)
	g.adj = append(g.adj, nil)
}

// ensureNode auto-vivifies a missing endpoint and returns its slot.
// Vivified nodes persist even if the edge insertion that triggered
// them subsequently fails.
func (g *Graph[T]) ensureNode(label T) int {
	if slot, exists := g.index[label]; exists {
		return slot
	}
	g.addNode(label)

	return len(g.nodes) - 1
}
