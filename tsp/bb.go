// Package tsp - exact Branch-and-Bound solver.
//
// BranchAndBound enumerates Hamiltonian cycles with a best-first search over
// a priority frontier ordered by an admissible lower bound. The frontier is a
// value owned by one invocation — no state survives or is shared across
// calls, so solvers can be rerun across instances without cross-talk.
//
// Search outline:
//  1. Root node: path [0], accumulated cost 0, bound from lowerBound.
//  2. Pop the node with the smallest bound (ties: insertion order, keeping
//     expansion fully deterministic). A complete path is closed back to 0 and
//     recorded when it beats the incumbent; otherwise one child per unvisited
//     vertex is generated and pushed unless its bound already reaches the
//     incumbent (pruning — the informal memory bound of the search).
//  3. Terminal states: frontier exhausted (the incumbent is the proven
//     optimum) or deadline exceeded (stop immediately, no frontier drain).
//
// Lower bound (degree-based relaxation): any completion of a partial path
// must leave `last` once, enter 0 once, and pass through every unvisited
// vertex twice. Charging each vertex half of its cheapest feasible incident
// edges therefore never overestimates the completion cost:
//
//	LB = cost + ( min d(last,U) + min d(0,U) + Σ_{v∈U} two-min d(v, U∪{0,last}) ) / 2
//
// with U the unvisited set; LB = cost + d(last,0) once U is empty. The bound
// is admissible, so exhausting the frontier proves optimality.
//
// Deadline: a wall-clock timestamp captured at search start, polled once per
// node expansion — a bounded-interval comparison, not a cancellation signal.
package tsp

import (
	"container/heap"
	"time"
)

// searchNode is a frontier entry. Owned exclusively by the frontier; dropped
// as soon as it is expanded or pruned.
type searchNode struct {
	path  []int    // visited vertices in order, path[0] == 0
	mask  []uint64 // visited bitset over 0..n-1
	cost  float64  // accumulated edge cost along path
	bound float64  // admissible lower bound on any completion
	seq   uint64   // insertion sequence, the deterministic tie-break
}

// frontier is a min-heap over (bound, seq).
type frontier []*searchNode

func (f frontier) Len() int { return len(f) }
func (f frontier) Less(i, j int) bool {
	if f[i].bound != f[j].bound {
		return f[i].bound < f[j].bound
	}

	return f[i].seq < f[j].seq
}
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }
func (f *frontier) Push(x any)   { *f = append(*f, x.(*searchNode)) }
func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]

	return node
}

// bbEngine bundles the search state so the hot path carries no closures.
type bbEngine struct {
	n    int
	dist [][]float64

	useDeadline bool
	deadline    time.Time

	front    frontier
	seq      uint64
	expanded int

	bestTour []int
	bestCost float64
	found    bool
}

func (e *bbEngine) visited(mask []uint64, v int) bool {
	return mask[v>>6]&(1<<(uint(v)&63)) != 0
}

// lowerBound evaluates the degree-based relaxation for a node ending at last
// with visited set mask and accumulated cost.
//
// Time: O(|U|·n) per call.
func (e *bbEngine) lowerBound(mask []uint64, last int, cost float64) float64 {
	var (
		minLast = -1.0 // cheapest exit from last into U (<0 ⇒ unset)
		minHome = -1.0 // cheapest entry into 0 from U
		sum     float64
		u, v    int
		w       float64
		m1, m2  float64
		empty   = true
	)
	for v = 0; v < e.n; v++ {
		if e.visited(mask, v) {
			continue
		}
		empty = false
		if w = e.dist[last][v]; minLast < 0 || w < minLast {
			minLast = w
		}
		if w = e.dist[0][v]; minHome < 0 || w < minHome {
			minHome = w
		}
		// Two smallest edges from v into U ∪ {0, last}.
		m1, m2 = -1, -1
		for u = 0; u < e.n; u++ {
			if u == v {
				continue
			}
			if u != 0 && u != last && e.visited(mask, u) {
				continue
			}
			w = e.dist[v][u]
			switch {
			case m1 < 0 || w < m1:
				m1, m2 = w, m1
			case m2 < 0 || w < m2:
				m2 = w
			}
		}
		if m2 < 0 {
			m2 = m1 // n == 2 corner: a single feasible neighbor
		}
		sum += m1 + m2
	}
	if empty {
		return cost + e.dist[last][0]
	}

	return cost + (minLast+minHome+sum)/2
}

// push wraps heap insertion with the monotone sequence counter.
func (e *bbEngine) push(node *searchNode) {
	node.seq = e.seq
	e.seq++
	heap.Push(&e.front, node)
}

// record commits a completed tour as the new incumbent.
func (e *bbEngine) record(path []int, total float64) {
	tour := make([]int, e.n+1)
	copy(tour, path)
	tour[e.n] = 0
	e.bestTour = tour
	e.bestCost = round1e9(total)
	e.found = true
}

// child extends node by vertex v.
func (e *bbEngine) child(node *searchNode, v int) *searchNode {
	var (
		path = make([]int, len(node.path)+1)
		mask = make([]uint64, len(node.mask))
		last = node.path[len(node.path)-1]
	)
	copy(path, node.path)
	path[len(node.path)] = v
	copy(mask, node.mask)
	mask[v>>6] |= 1 << (uint(v) & 63)

	c := &searchNode{path: path, mask: mask, cost: node.cost + e.dist[last][v]}
	c.bound = e.lowerBound(mask, v, c.cost)

	return c
}

// run drives the pop/expand loop until exhaustion or deadline.
// It reports whether the frontier was exhausted.
func (e *bbEngine) run() bool {
	var (
		node *searchNode
		last int
		v    int
	)
	for e.front.Len() > 0 {
		if e.useDeadline && time.Now().After(e.deadline) {
			return false // stop immediately; the frontier is abandoned
		}
		node = heap.Pop(&e.front).(*searchNode)

		// The heap is ordered by bound, so the first non-improving node
		// proves everything remaining is non-improving too.
		if e.found && node.bound >= e.bestCost {
			return true
		}
		e.expanded++
		last = node.path[len(node.path)-1]

		if len(node.path) == e.n {
			total := node.cost + e.dist[last][0]
			if !e.found || total < e.bestCost {
				e.record(node.path, total)
			}
			continue
		}
		for v = 0; v < e.n; v++ {
			if e.visited(node.mask, v) {
				continue
			}
			c := e.child(node, v)
			if e.found && c.bound >= e.bestCost {
				continue // pruned before it ever occupies frontier memory
			}
			e.push(c)
		}
	}

	return true
}

// BranchAndBound solves the instance exactly within opts.TimeLimit.
//
// Outcomes (never conflated with numeric sentinels):
//   - Optimal == true: the frontier was exhausted and Cost is the global
//     minimum; this may happen well before the budget.
//   - Optimal == false: the deadline expired first; Tour/Cost expose the best
//     incumbent, or Tour == nil when none was found.
//
// Errors: matrix validation sentinels (ErrNonSquare, ErrNegativeWeight,
// ErrAsymmetry, …) and ErrNegativeTimeLimit. DeadlineExceeded is not an
// error path.
//
// Degenerate n ≤ 3 instances return the ring tour without searching.
func BranchAndBound(dist [][]float64, opts Options) (ExactResult, error) {
	n, err := ValidateDistanceMatrix(dist)
	if err != nil {
		return ExactResult{}, err
	}
	if n == 0 {
		return ExactResult{}, ErrDimensionMismatch
	}
	if opts.TimeLimit < 0 && opts.TimeLimit != NoTimeLimit {
		return ExactResult{}, ErrNegativeTimeLimit
	}

	if n <= 3 {
		tour := ringTour(n)
		cost, cerr := TourCost(dist, tour)
		if cerr != nil {
			return ExactResult{}, cerr
		}

		return ExactResult{Tour: tour, Cost: cost, Optimal: true}, nil
	}

	e := &bbEngine{n: n, dist: dist}
	if opts.TimeLimit != NoTimeLimit {
		e.useDeadline = true
		e.deadline = time.Now().Add(opts.TimeLimit)
	}

	// Root: path [0], visited {0}, cost 0.
	root := &searchNode{
		path: []int{0},
		mask: make([]uint64, (n+63)/64),
	}
	root.mask[0] = 1
	root.bound = e.lowerBound(root.mask, 0, 0)
	e.push(root)

	exhausted := e.run()

	res := ExactResult{Expanded: e.expanded, Optimal: exhausted && e.found}
	if e.found {
		res.Tour = e.bestTour
		res.Cost = e.bestCost
	}

	return res, nil
}
