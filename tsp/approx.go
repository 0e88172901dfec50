// Package tsp - polynomial-time approximations.
//
// Both pipelines here share the same skeleton: build a spanning structure
// whose every vertex has even degree, extract an Eulerian circuit, shortcut
// revisits into a Hamiltonian cycle. They differ only in how even degrees are
// reached: TwiceAroundTree doubles every MST edge, Christofides repairs the
// odd-degree vertices with a minimum-weight perfect matching.
//
// Guarantees (metric instances only — NewDistanceMatrix always qualifies):
//   - TwiceAroundTree: cost ≤ 2·MST ≤ 2·OPT.
//   - Christofides:    cost ≤ 1.5·OPT, provided the matching is exactly
//     minimal (see MinWeightPerfectMatching for when it is).
package tsp

// TwiceAroundTree computes the tree-doubling 2-approximation of the optimal
// tour. Degenerate instances (n ≤ 3) return the ring tour directly.
//
// Time:  O(n²), dominated by Prim.
// Space: O(n).
func TwiceAroundTree(dist [][]float64) ([]int, float64, error) {
	n := len(dist)
	if n <= 3 {
		return trivialSolve(dist, n)
	}

	// 1) Minimum spanning tree of the metric graph.
	_, adj, err := MinimumSpanningTree(dist)
	if err != nil {
		return nil, 0, err
	}

	// 2) Double every tree edge: each adjacency list duplicated in place
	//    makes all degrees even by construction.
	for v := range adj {
		adj[v] = append(adj[v], adj[v]...)
	}

	// 3) Eulerian circuit over the doubled multigraph, 4) shortcut.
	return circuitToTour(dist, adj, n)
}

// Christofides computes the 1.5-approximation: MST, minimum-weight perfect
// matching on the MST's odd-degree vertices, Eulerian circuit over the union,
// shortcut. The matching touches exactly the odd vertices, flipping their
// parity, so the union multigraph is even-degree everywhere.
//
// Time:  O(n²) + matching (see MinWeightPerfectMatching).
// Space: O(n).
func Christofides(dist [][]float64) ([]int, float64, error) {
	n := len(dist)
	if n <= 3 {
		return trivialSolve(dist, n)
	}

	// 1) Minimum spanning tree.
	_, adj, err := MinimumSpanningTree(dist)
	if err != nil {
		return nil, 0, err
	}

	// 2) Odd-degree vertices; even cardinality by the handshake lemma.
	odd := oddVertices(adj)

	// 3) Minimum-weight perfect matching on the odd set.
	pairs, err := MinWeightPerfectMatching(dist, odd)
	if err != nil {
		return nil, 0, err
	}

	// 4) Union MST ∪ matching into one multigraph.
	for _, p := range pairs {
		adj[p[0]] = append(adj[p[0]], p[1])
		adj[p[1]] = append(adj[p[1]], p[0])
	}

	// 5) Eulerian circuit, 6) shortcut.
	return circuitToTour(dist, adj, n)
}

// circuitToTour extracts the Eulerian circuit of an even-degree multigraph,
// shortcuts it to a Hamiltonian tour and prices it. Shared tail of both
// approximation pipelines.
func circuitToTour(dist [][]float64, adj [][]int, n int) ([]int, float64, error) {
	walk, err := EulerianCircuit(adj, 0)
	if err != nil {
		return nil, 0, err
	}
	tour, err := ShortcutCircuit(walk, n)
	if err != nil {
		return nil, 0, err
	}
	if err = ValidateTour(tour, n); err != nil {
		return nil, 0, err
	}
	cost, err := TourCost(dist, tour)
	if err != nil {
		return nil, 0, err
	}

	return tour, cost, nil
}

// trivialSolve handles n ≤ 3, where the ring tour is optimal. It still
// validates the matrix shape so malformed inputs fail the same way on every
// path.
func trivialSolve(dist [][]float64, n int) ([]int, float64, error) {
	if n == 0 {
		return nil, 0, ErrDimensionMismatch
	}
	for i := 0; i < n; i++ {
		if len(dist[i]) != n {
			return nil, 0, ErrNonSquare
		}
	}
	tour := ringTour(n)
	cost, err := TourCost(dist, tour)
	if err != nil {
		return nil, 0, err
	}

	return tour, cost, nil
}
