// Package core: edge lifecycle & queries.
//
// Storage model:
//   - Each logical edge of a directed graph is one adjacency entry.
//   - Each logical edge of an undirected graph is two mirrored entries
//     (from→to and to→from) carrying the same weight, so EdgeCount
//     halves the raw entry total for undirected graphs.
//
// Atomicity:
//   - A failed insertion performs no adjacency mutation; only endpoint
//     nodes auto-vivified before the failure persist.

package core

// AddEdge inserts an unweighted edge from 'from' to 'to', creating
// missing endpoints implicitly. On undirected graphs the mirror entry
// to→from is inserted as well.
//
// Returns ErrInvalidEdge for a self-loop on an undirected graph, and
// ErrEdgeAlreadyExists if 'to' is already adjacent to 'from'.
// Complexity: O(deg(from)).
func (g *Graph[T]) AddEdge(from, to T) error {
	return g.addEdge(from, to, 0, false)
}

// AddWeightedEdge inserts an edge from 'from' to 'to' carrying weight w,
// creating missing endpoints implicitly. On undirected graphs the mirror
// entry to→from is inserted with the same weight.
//
// Returns ErrInvalidEdge for a self-loop on an undirected graph, and
// ErrEdgeAlreadyExists if 'to' is already adjacent to 'from'.
// Complexity: O(deg(from)).
func (g *Graph[T]) AddWeightedEdge(from, to T, w float64) error {
	return g.addEdge(from, to, w, true)
}

// AddEdges inserts a batch of edges, dispatching each entry to AddEdge
// or AddWeightedEdge according to its Weighted flag. Insertion is
// best-effort: a failed entry does not stop the batch. The returned
// slice is aligned with the input; result[i] is nil when edges[i] was
// inserted and the sentinel failure otherwise.
// Complexity: O(Σ deg(from_i)).
func (g *Graph[T]) AddEdges(edges ...Edge[T]) []error {
	if len(edges) == 0 {
		return nil
	}
	results := make([]error, len(edges))
	for i, e := range edges {
		if e.Weighted {
			results[i] = g.AddWeightedEdge(e.From, e.To, e.Weight)
		} else {
			results[i] = g.AddEdge(e.From, e.To)
		}
	}

	return results
}

// HasEdge reports whether 'to' appears in the adjacency list of 'from'.
// Unknown endpoints simply report false.
// Complexity: O(deg(from)).
func (g *Graph[T]) HasEdge(from, to T) bool {
	slot, exists := g.index[from]
	if !exists {
		return false
	}
	for _, he := range g.adj[slot] {
		if he.to == to {
			return true
		}
	}

	return false
}

// Weight returns the weight stored on the edge from→to. The second
// result reports whether the edge carries a weight at all (false for
// edges added via AddEdge). Returns ErrEdgeNotExists when 'from' is
// unknown or 'to' is not adjacent to it.
// Complexity: O(deg(from)).
func (g *Graph[T]) Weight(from, to T) (float64, bool, error) {
	slot, exists := g.index[from]
	if !exists {
		return 0, false, ErrEdgeNotExists
	}
	for _, he := range g.adj[slot] {
		if he.to == to {
			return he.weight, he.weighted, nil
		}
	}

	return 0, false, ErrEdgeNotExists
}

// EdgeCount returns the number of logical edges. For undirected graphs
// each mirrored pair counts once; the count relies on the mirroring
// invariant holding exactly and is never re-verified here.
// Complexity: O(V).
func (g *Graph[T]) EdgeCount() int {
	total := g.entryCount()
	if g.kind == Undirected {
		total /= 2
	}

	return total
}

// Edges returns a snapshot of every adjacency entry as an Edge triple,
// in node-insertion order and, per node, adjacency-insertion order.
// For undirected graphs both directions of each logical edge appear as
// separate entries; callers wanting canonical undirected edges must
// dedupe themselves. The returned slice is owned by the caller.
// Complexity: O(V+E).
func (g *Graph[T]) Edges() []Edge[T] {
	out := make([]Edge[T], 0, g.entryCount())
	for slot, entries := range g.adj {
		from := g.nodes[slot]
		for _, he := range entries {
			out = append(out, Edge[T]{From: from, To: he.to, Weight: he.weight, Weighted: he.weighted})
		}
	}

	return out
}

// addEdge is the single insertion path shared by AddEdge and AddWeightedEdge.
func (g *Graph[T]) addEdge(from, to T, w float64, weighted bool) error {
	// 1) Self-loop constraint: undirected graphs reject from == to.
	//    Directed self-loops are permitted.
	if g.kind == Undirected && from == to {
		return ErrInvalidEdge
	}

	// 2) Ensure both endpoints exist. Vivified nodes persist even when
	//    the insertion below fails.
	fromSlot := g.ensureNode(from)
	toSlot := g.ensureNode(to)

	// 3) Duplicate check on the from-side list. For undirected graphs
	//    the mirroring invariant makes this check sufficient for both sides.
	for _, he := range g.adj[fromSlot] {
		if he.to == to {
			return ErrEdgeAlreadyExists
		}
	}

	// 4) Append the entry, plus the mirror for undirected graphs.
	g.adj[fromSlot] = append(g.adj[fromSlot], halfEdge[T]{to: to, weight: w, weighted: weighted})
	if g.kind == Undirected {
		g.adj[toSlot] = append(g.adj[toSlot], halfEdge[T]{to: from, weight: w, weighted: weighted})
	}

	return nil
}

// entryCount returns the raw adjacency-entry total (mirrors included).
func (g *Graph[T]) entryCount() int {
	total := 0
	for _, entries := range g.adj {
		total += len(entries)
	}

	return total
}
