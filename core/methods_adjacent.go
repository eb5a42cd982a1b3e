// Package core: adjacency & degree queries, gated by orientation.
//
// Gating policy:
//   - Neighbors and Degree apply to undirected graphs only; Successors,
//     Predecessors, OutDegree and InDegree apply to directed graphs only.
//   - The ErrIncorrectGraphType guard is total: it covers every call on
//     the wrong Kind, before any node lookup happens.
//
// Determinism:
//   - All returned sequences follow insertion order (adjacency order for
//     out-edges, node order for predecessor scans).

package core

// Neighbors returns the nodes connected to 'label' in an undirected
// graph, in edge-insertion order. The returned slice is an independent
// copy owned by the caller.
//
// Returns ErrIncorrectGraphType on a directed graph and ErrNodeNotExists
// for an unknown label.
// Complexity: O(deg(label)).
func (g *Graph[T]) Neighbors(label T) ([]T, error) {
	if g.kind != Undirected {
		return nil, ErrIncorrectGraphType
	}

	return g.outNeighbors(label)
}

// Successors returns the direct out-neighbors of 'label' in a directed
// graph, in edge-insertion order. The returned slice is an independent
// copy owned by the caller.
//
// Returns ErrIncorrectGraphType on an undirected graph and
// ErrNodeNotExists for an unknown label.
// Complexity: O(outDeg(label)).
func (g *Graph[T]) Successors(label T) ([]T, error) {
	if g.kind != Directed {
		return nil, ErrIncorrectGraphType
	}

	return g.outNeighbors(label)
}

// Predecessors returns every node with an out-edge pointing at 'label'
// in a directed graph, in node-insertion order. The lookup is a full
// scan over all adjacency lists; the container keeps no reverse index.
//
// Returns ErrIncorrectGraphType on an undirected graph and
// ErrNodeNotExists for an unknown label.
// Complexity: O(V+E).
func (g *Graph[T]) Predecessors(label T) ([]T, error) {
	if g.kind != Directed {
		return nil, ErrIncorrectGraphType
	}
	if !g.HasNode(label) {
		return nil, ErrNodeNotExists
	}

	var preds []T
	for slot, entries := range g.adj {
		for _, he := range entries {
			if he.to == label {
				preds = append(preds, g.nodes[slot])
				break // at most one entry per neighbor (no multi-edges)
			}
		}
	}

	return preds, nil
}

// Degree returns the number of edges incident to 'label' in an
// undirected graph.
//
// Returns ErrIncorrectGraphType on a directed graph and ErrNodeNotExists
// for an unknown label.
// Complexity: O(1) after the label lookup.
func (g *Graph[T]) Degree(label T) (int, error) {
	if g.kind != Undirected {
		return 0, ErrIncorrectGraphType
	}

	return g.outLen(label)
}

// OutDegree returns the number of out-edges of 'label' in a directed
// graph. A self-loop contributes one.
//
// Returns ErrIncorrectGraphType on an undirected graph and
// ErrNodeNotExists for an unknown label.
// Complexity: O(1) after the label lookup.
func (g *Graph[T]) OutDegree(label T) (int, error) {
	if g.kind != Directed {
		return 0, ErrIncorrectGraphType
	}

	return g.outLen(label)
}

// InDegree returns the number of edges pointing at 'label' in a
// directed graph, counted by a full scan over all adjacency lists.
// A self-loop contributes one.
//
// Returns ErrIncorrectGraphType on an undirected graph and
// ErrNodeNotExists for an unknown label.
// Complexity: O(V+E).
func (g *Graph[T]) InDegree(label T) (int, error) {
	if g.kind != Directed {
		return 0, ErrIncorrectGraphType
	}
	if !g.HasNode(label) {
		return 0, ErrNodeNotExists
	}

	count := 0
	for _, entries := range g.adj {
		for _, he := range entries {
			if he.to == label {
				count++
			}
		}
	}

	return count, nil
}

// outNeighbors copies the out-adjacency of 'label' into a fresh slice.
func (g *Graph[T]) outNeighbors(label T) ([]T, error) {
	slot, exists := g.index[label]
	if !exists {
		return nil, ErrNodeNotExists
	}

	out := make([]T, len(g.adj[slot]))
	for i, he := range g.adj[slot] {
		out[i] = he.to
	}

	return out, nil
}

// outLen returns the out-adjacency length of 'label'.
func (g *Graph[T]) outLen(label T) (int, error) {
	slot, exists := g.index[label]
	if !exists {
		return 0, ErrNodeNotExists
	}

	return len(g.adj[slot]), nil
}
