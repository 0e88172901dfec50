// Package bench drives TSP instances through the three solvers and packages
// the outcomes for reporting.
//
// One instance at a time, one algorithm at a time — the runner is strictly
// sequential (the measured wall-clock times are the product, and parallel
// solves would contaminate them). Solver failures are isolated per instance:
// a malformed file or an internal invariant violation is recorded on that
// instance's Report and the batch moves on.
//
// Costs are a tagged sum type (Cost): either a numeric tour length or the NA
// sentinel meaning "the exact search did not prove an optimum in time". NA
// never degrades to an infinity or a negative placeholder — downstream CSV
// consumers receive the literal string NA.
package bench
