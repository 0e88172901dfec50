package tsp

import (
	"math"
	"math/bits"
)

// dpMatchMaxSize bounds the subset size handled by the exact subset-mask DP.
// 20 vertices ⇒ 2²⁰ table entries (8 MiB of float64), well within reach;
// 22 would already quadruple that for no practical gain on this corpus.
const dpMatchMaxSize = 20

// matchEps is the improvement threshold for the pair-swap refinement; swaps
// must strictly beat it so FP noise cannot cycle the loop.
const matchEps = 1e-12

// MinWeightPerfectMatching computes a minimum-weight perfect matching on the
// complete subgraph induced by subset, using dist as edge weights. Every
// subset vertex is covered by exactly one returned pair.
//
// For |subset| ≤ dpMatchMaxSize the matching is exactly minimal (subset-mask
// dynamic programming, O(2^k·k)). Beyond that the matcher switches to a
// deterministic greedy pairing refined by pair swaps to a local optimum;
// the result is then a valid perfect matching but not certifiably minimal,
// and the Christofides 1.5·OPT factor is no longer formally guaranteed.
// Odd-degree sets on the benchmark corpus routinely exceed the DP range, so
// this trade-off is inherent to running without a blossom solver.
//
// Errors: ErrOddSubset on odd cardinality, ErrDimensionMismatch on
// out-of-range or duplicated subset indices.
//
// Time:  O(2^k·k) exact path, O(k³) heuristic path (k = |subset|).
// Space: O(2^k) exact path, O(k) heuristic path.
func MinWeightPerfectMatching(dist [][]float64, subset []int) ([][2]int, error) {
	k := len(subset)
	if k&1 == 1 {
		return nil, ErrOddSubset
	}
	if k == 0 {
		return nil, nil
	}

	n := len(dist)
	seen := make([]bool, n)
	for _, v := range subset {
		if v < 0 || v >= n || seen[v] {
			return nil, ErrDimensionMismatch
		}
		seen[v] = true
	}

	if k <= dpMatchMaxSize {
		return dpMatch(dist, subset), nil
	}
	pairs := greedyPairs(dist, subset)
	refinePairs(dist, pairs)

	return pairs, nil
}

// dpMatch solves minimum-weight perfect matching exactly by dynamic
// programming over vertex subsets: f[mask] is the cheapest matching of the
// vertices selected by mask. Fixing the lowest set bit as one endpoint of a
// pair keeps the recurrence O(k) per mask.
func dpMatch(dist [][]float64, subset []int) [][2]int {
	var (
		k      = len(subset)
		full   = (1 << k) - 1
		f      = make([]float64, full+1)
		choice = make([]int8, full+1) // partner index chosen for the lowest bit
		mask   int
		i, j   int
		rest   int
		cand   float64
	)
	for mask = 1; mask <= full; mask++ {
		f[mask] = math.Inf(1)
		choice[mask] = -1
	}
	f[0] = 0

	for mask = 1; mask <= full; mask++ {
		// Only even-population masks are reachable from f[0].
		if bits.OnesCount(uint(mask))&1 == 1 {
			continue
		}
		i = bits.TrailingZeros(uint(mask))
		for j = i + 1; j < k; j++ {
			if mask&(1<<j) == 0 {
				continue
			}
			rest = mask &^ (1<<i | 1<<j)
			cand = f[rest] + dist[subset[i]][subset[j]]
			if cand < f[mask] {
				f[mask] = cand
				choice[mask] = int8(j)
			}
		}
	}

	// Reconstruct pairs from the choice table.
	pairs := make([][2]int, 0, k/2)
	mask = full
	for mask != 0 {
		i = bits.TrailingZeros(uint(mask))
		j = int(choice[mask])
		pairs = append(pairs, [2]int{subset[i], subset[j]})
		mask &^= 1<<i | 1<<j
	}

	return pairs
}

// greedyPairs pairs each remaining vertex, in subset order, with its nearest
// unmatched partner (smallest index on ties). Deterministic O(k²) seed for
// refinePairs.
func greedyPairs(dist [][]float64, subset []int) [][2]int {
	var (
		remaining = append([]int(nil), subset...)
		pairs     = make([][2]int, 0, len(subset)/2)
		u, v      int
		bestIdx   int
		bestD     float64
		i         int
	)
	for len(remaining) > 1 {
		u = remaining[0]
		remaining = remaining[1:]
		bestIdx, bestD = 0, math.Inf(1)
		for i, v = range remaining {
			if dist[u][v] < bestD {
				bestD, bestIdx = dist[u][v], i
			}
		}
		v = remaining[bestIdx]
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
		pairs = append(pairs, [2]int{u, v})
	}

	return pairs
}

// refinePairs improves a matching in place by 2-swaps: for every two pairs
// (a,b),(c,d) it re-pairs to (a,c),(b,d) or (a,d),(b,c) whenever that strictly
// lowers the total weight, until a full pass finds no improvement. Total
// weight decreases monotonically, so the loop terminates.
func refinePairs(dist [][]float64, pairs [][2]int) {
	var (
		improved       = true
		p, q           int
		a, b, c, d     float64
		va, vb, vc, vd int
	)
	for improved {
		improved = false
		for p = 0; p < len(pairs); p++ {
			for q = p + 1; q < len(pairs); q++ {
				va, vb = pairs[p][0], pairs[p][1]
				vc, vd = pairs[q][0], pairs[q][1]
				a = dist[va][vb] + dist[vc][vd] // current
				b = dist[va][vc] + dist[vb][vd]
				c = dist[va][vd] + dist[vb][vc]
				d = math.Min(b, c)
				if d >= a-matchEps {
					continue
				}
				if b <= c {
					pairs[p][1], pairs[q][0] = vc, vb
				} else {
					pairs[p][1], pairs[q] = vd, [2]int{vb, vc}
				}
				improved = true
			}
		}
	}
}

// MatchingWeight sums the edge weights of a matching; handy for callers that
// report or compare matchings.
func MatchingWeight(dist [][]float64, pairs [][2]int) float64 {
	var total float64
	for _, p := range pairs {
		total += dist[p[0]][p[1]]
	}

	return round1e9(total)
}
