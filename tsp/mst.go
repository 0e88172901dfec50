package tsp

import "math"

// MinimumSpanningTree computes a minimum spanning tree of the complete metric
// graph represented by the n×n distance matrix dist using Prim's algorithm
// with array-based key tracking (the natural fit for a dense matrix).
// It returns:
//
//	total — the sum of the n-1 tree edge weights;
//	adj   — adjacency lists of the tree, adj[v] holding the neighbors of v.
//
// Ties between equal-weight candidate edges are broken by the smallest vertex
// index, so the tree is deterministic for any input.
//
// Errors: ErrNonSquare on a ragged matrix, ErrDisconnected when some vertex is
// unreachable (impossible for finite matrices, kept as a guard).
//
// Time:  O(n²).
// Space: O(n) beyond the output.
func MinimumSpanningTree(dist [][]float64) (total float64, adj [][]int, err error) {
	n := len(dist)
	for i := 0; i < n; i++ {
		if len(dist[i]) != n {
			return 0, nil, ErrNonSquare
		}
	}
	adj = make([][]int, n)
	if n <= 1 {
		return 0, adj, nil
	}

	var (
		inTree  = make([]bool, n)    // vertices already connected
		best    = make([]float64, n) // cheapest edge into the growing tree
		parent  = make([]int, n)     // endpoint of that edge inside the tree
		u, v    int
		minW    float64
		it      int
		invalid = math.Inf(1)
	)
	for v = range best {
		best[v] = invalid
		parent[v] = -1
	}
	best[0] = 0

	for it = 0; it < n; it++ {
		// Pick the cheapest frontier vertex; strict < keeps the smallest
		// index on ties.
		u, minW = -1, invalid
		for v = 0; v < n; v++ {
			if !inTree[v] && best[v] < minW {
				minW, u = best[v], v
			}
		}
		if u < 0 {
			return 0, nil, ErrDisconnected
		}
		inTree[u] = true
		if parent[u] >= 0 {
			adj[u] = append(adj[u], parent[u])
			adj[parent[u]] = append(adj[parent[u]], u)
			total += dist[u][parent[u]]
		}
		for v = 0; v < n; v++ {
			if !inTree[v] && dist[u][v] < best[v] {
				best[v] = dist[u][v]
				parent[v] = u
			}
		}
	}

	return round1e9(total), adj, nil
}

// oddVertices returns the vertices of odd degree in the multigraph adjacency
// adj, in ascending order. For any graph their count is even (handshake
// lemma), which MinWeightPerfectMatching relies on.
//
// Time: O(n).
func oddVertices(adj [][]int) []int {
	odd := make([]int, 0, len(adj)/2+1)
	for v := range adj {
		if len(adj[v])&1 == 1 {
			odd = append(odd, v)
		}
	}

	return odd
}
