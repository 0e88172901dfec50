package bench

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// AlgorithmSummary aggregates one algorithm's behavior over a batch.
type AlgorithmSummary struct {
	Algorithm Algorithm

	// Solved counts instances with a numeric cost (for the exact solver that
	// means a proven optimum; NA rows are excluded from the statistics).
	Solved int

	// MeanSeconds / StdDevSeconds describe the elapsed wall-clock times of
	// the solved instances.
	MeanSeconds   float64
	StdDevSeconds float64

	// MeanRatio is the mean cost ratio against the proven optimum, over the
	// instances where Branch-and-Bound finished. 1.0 for the exact solver
	// itself; NaN when no instance had a proven optimum.
	MeanRatio float64
}

// Summarize computes per-algorithm statistics over a batch. Reports with Err
// set contribute nothing.
func Summarize(reports []Report) []AlgorithmSummary {
	summaries := make([]AlgorithmSummary, 0, len(Algorithms))

	for _, algo := range Algorithms {
		var (
			times  []float64
			ratios []float64
		)
		for _, rep := range reports {
			if rep.Err != nil {
				continue
			}
			res, ok := rep.resultFor(algo)
			if !ok || !res.Cost.Known() {
				continue
			}
			times = append(times, res.Elapsed.Seconds())

			opt, okOpt := rep.resultFor(BranchAndBound)
			if okOpt && opt.Cost.Known() && opt.Cost.Value() > 0 {
				ratios = append(ratios, res.Cost.Value()/opt.Cost.Value())
			}
		}

		s := AlgorithmSummary{Algorithm: algo, Solved: len(times)}
		if len(times) > 0 {
			s.MeanSeconds = stat.Mean(times, nil)
			s.StdDevSeconds = stat.StdDev(times, nil)
		}
		s.MeanRatio = stat.Mean(ratios, nil) // NaN when ratios is empty
		summaries = append(summaries, s)
	}

	return summaries
}

// FormatSummaries renders summaries as an aligned text table for the CLI.
func FormatSummaries(summaries []AlgorithmSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-18s %7s %12s %12s %10s\n",
		"algorithm", "solved", "mean_s", "stddev_s", "ratio")
	for _, s := range summaries {
		fmt.Fprintf(&b, "%-18s %7d %12.4f %12.4f %10.4f\n",
			s.Algorithm, s.Solved, s.MeanSeconds, s.StdDevSeconds, s.MeanRatio)
	}

	return b.String()
}
