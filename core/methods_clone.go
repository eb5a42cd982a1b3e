// Package core: maintenance and cloning.

package core

// Clear resets the graph to its empty state, dropping all nodes and
// edges while preserving the Kind. The instance remains usable.
// Complexity: O(1) (old storage is released to the collector).
func (g *Graph[T]) Clear() {
	g.nodes = nil
	g.adj = nil
	g.index = make(map[T]int)
}

// CloneEmpty returns a new Graph with the same Kind and the same nodes
// in the same insertion order, but no edges.
// Complexity: O(V).
func (g *Graph[T]) CloneEmpty() *Graph[T] {
	clone := NewGraph[T](g.kind)
	for _, label := range g.nodes {
		clone.addNode(label)
	}

	return clone
}

// Clone returns a deep copy of the graph: Kind, nodes, and every
// adjacency entry. The clone shares no storage with the original.
// Complexity: O(V+E).
func (g *Graph[T]) Clone() *Graph[T] {
	clone := g.CloneEmpty()
	for slot, entries := range g.adj {
		if len(entries) == 0 {
			continue
		}
		dup := make([]halfEdge[T], len(entries))
		copy(dup, entries)
		clone.adj[slot] = dup
	}

	return clone
}
