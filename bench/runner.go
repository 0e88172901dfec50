package bench

import (
	"io"
	"path/filepath"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/lcrocha/tspbench/tsp"
	"github.com/lcrocha/tspbench/tsplib"
)

// Runner executes the benchmark protocol on instances. The zero value is not
// usable; construct with NewRunner.
type Runner struct {
	// TimeLimit is the Branch-and-Bound budget. tsp.NoTimeLimit disables it.
	TimeLimit time.Duration

	// Algorithms to run, in order. Defaults to all three.
	Algorithms []Algorithm

	// RunID tags every Report produced by this runner, so result files from
	// repeated runs over the same corpus can be told apart.
	RunID uuid.UUID

	log *charmlog.Logger
}

// NewRunner builds a Runner with a fresh RunID. A nil logger silences the
// progress output.
func NewRunner(timeLimit time.Duration, logger *charmlog.Logger) *Runner {
	if logger == nil {
		logger = charmlog.New(io.Discard)
	}

	return &Runner{
		TimeLimit:  timeLimit,
		Algorithms: Algorithms,
		RunID:      uuid.New(),
		log:        logger,
	}
}

// Run drives one instance through the configured solvers, timing each with
// the monotonic clock. Solver errors abort only this instance's report.
func (r *Runner) Run(inst *tsplib.Instance) Report {
	report := Report{Instance: inst.Name, Dimension: inst.Dimension, RunID: r.RunID}
	dist := tsp.NewDistanceMatrix(inst.Coords)

	r.log.Info("solving instance", "instance", inst.Name, "n", inst.Dimension)

	var (
		start   time.Time
		elapsed time.Duration
	)
	for _, algo := range r.Algorithms {
		start = time.Now()
		cost, err := r.solve(algo, dist)
		elapsed = time.Since(start)
		if err != nil {
			// Invariant-violation class: record and stop this instance, the
			// partial results would not be comparable anyway.
			r.log.Error("solver failed", "instance", inst.Name, "algorithm", algo, "err", err)
			report.Err = err

			return report
		}
		report.Results = append(report.Results, Result{Algorithm: algo, Cost: cost, Elapsed: elapsed})
		r.log.Info("solver finished",
			"instance", inst.Name, "algorithm", algo,
			"cost", cost.String(), "elapsed", elapsed.Round(time.Millisecond))
	}

	return report
}

// RunBatch parses and runs every path, isolating per-instance failures: a
// file that fails to parse yields a Report with Err set and the batch
// continues.
func (r *Runner) RunBatch(paths []string) []Report {
	reports := make([]Report, 0, len(paths))
	for _, path := range paths {
		inst, err := tsplib.ParseFile(path)
		if err != nil {
			r.log.Error("skipping instance", "path", path, "err", err)
			name := filepath.Base(path)
			reports = append(reports, Report{Instance: name, RunID: r.RunID, Err: err})
			continue
		}
		reports = append(reports, r.Run(inst))
	}

	return reports
}

// solve runs one algorithm and maps its outcome to a Cost. Only the exact
// solver can yield NA: hitting the deadline without a proven optimum is a
// recognized outcome, not an error.
func (r *Runner) solve(algo Algorithm, dist [][]float64) (Cost, error) {
	switch algo {
	case BranchAndBound:
		res, err := tsp.BranchAndBound(dist, tsp.Options{TimeLimit: r.TimeLimit})
		if err != nil {
			return Cost{}, err
		}
		if !res.Optimal {
			return CostNA(), nil
		}

		return CostOf(res.Cost), nil
	case TwiceAroundTree:
		_, cost, err := tsp.TwiceAroundTree(dist)
		if err != nil {
			return Cost{}, err
		}

		return CostOf(cost), nil
	case Christofides:
		_, cost, err := tsp.Christofides(dist)
		if err != nil {
			return Cost{}, err
		}

		return CostOf(cost), nil
	default:
		return Cost{}, ErrUnknownAlgorithm
	}
}
