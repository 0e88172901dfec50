// Package tspbench benchmarks Euclidean Travelling Salesman solvers over
// TSPLIB-style instance corpora.
//
// The repository is organized as:
//
//	tsp/          — solvers and graph primitives: Prim MST, Hierholzer
//	                Eulerian circuits, minimum-weight perfect matching,
//	                the twice-around-the-tree and Christofides
//	                approximations, and a time-bounded exact
//	                Branch-and-Bound search
//	tsplib/       — TSPLIB text-format instance parser
//	bench/        — batch runner, tagged results (numeric cost or NA),
//	                CSV result table and per-algorithm statistics
//	internal/cli/ — the tspbench command (run, solve)
//	cmd/tspbench/ — main
//
// See tsp's package documentation for the algorithmic contracts and bench's
// for the result protocol.
package tspbench
