package tsp

// EulerianCircuit returns a closed walk traversing every edge of the
// undirected multigraph adj exactly once, starting and ending at start.
// It implements Hierholzer's algorithm: extend the walk by following unused
// edges, splicing in sub-circuits found at revisited vertices.
//
// Preconditions — checked, not assumed: every vertex has even degree and all
// edges are reachable from start. A violation means a bug in the caller's
// degree bookkeeping (the pipelines double the MST or union it with a perfect
// matching before calling), so it fails fast with ErrOddDegree or
// ErrDisconnected instead of silently truncating the walk.
//
// The returned walk has length E+1 where E is the number of multigraph edges
// (E = Σ len(adj[v]) / 2); for an edgeless graph it is the single-vertex walk
// [start].
//
// Time:  O(V + E).
// Space: O(V + E).
func EulerianCircuit(adj [][]int, start int) ([]int, error) {
	n := len(adj)
	if start < 0 || start >= n {
		return nil, ErrDimensionMismatch
	}

	var (
		edges int // total multigraph edge count
		v     int
	)
	for v = 0; v < n; v++ {
		if len(adj[v])&1 == 1 {
			return nil, ErrOddDegree
		}
		edges += len(adj[v])
	}
	edges /= 2

	// Work on a private copy of the edge lists so the caller's multigraph
	// survives the traversal.
	local := make([][]int, n)
	for v = 0; v < n; v++ {
		local[v] = append([]int(nil), adj[v]...)
	}

	var (
		circuit = make([]int, 0, edges+1)
		stack   = append(make([]int, 0, edges+1), start)
		u, w, i int
	)
	for len(stack) > 0 {
		u = stack[len(stack)-1]
		if len(local[u]) == 0 {
			// All edges at u consumed: emit and backtrack.
			circuit = append(circuit, u)
			stack = stack[:len(stack)-1]
			continue
		}
		// Follow one unused edge u–w and drop both directions.
		w = local[u][len(local[u])-1]
		local[u] = local[u][:len(local[u])-1]
		for i = range local[w] {
			if local[w][i] == u {
				local[w] = append(local[w][:i], local[w][i+1:]...)
				break
			}
		}
		stack = append(stack, w)
	}

	// A shorter walk means some edges were never reached from start.
	if len(circuit) != edges+1 {
		return nil, ErrDisconnected
	}

	return circuit, nil
}
