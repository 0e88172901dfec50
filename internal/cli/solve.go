package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lcrocha/tspbench/bench"
	"github.com/lcrocha/tspbench/tsp"
	"github.com/lcrocha/tspbench/tsplib"
)

// newSolveCmd builds the single-instance command.
func newSolveCmd() *cobra.Command {
	var (
		algoName     string
		timeLimitSec int
		printTour    bool
	)

	cmd := &cobra.Command{
		Use:   "solve <instance.tsp>",
		Short: "Solve one instance with one algorithm",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			algo, ok := bench.ParseAlgorithm(algoName)
			if !ok {
				return fmt.Errorf("unknown algorithm %q (want bb, tree or christofides)", algoName)
			}

			inst, err := tsplib.ParseFile(args[0])
			if err != nil {
				return err
			}
			logger.Debug("parsed instance", "name", inst.Name, "n", inst.Dimension)

			dist := tsp.NewDistanceMatrix(inst.Coords)
			limit := tsp.NoTimeLimit
			if timeLimitSec >= 0 {
				limit = time.Duration(timeLimitSec) * time.Second
			}

			var (
				tour    []int
				cost    bench.Cost
				start   = time.Now()
				optimal = true
			)
			switch algo {
			case bench.BranchAndBound:
				res, serr := tsp.BranchAndBound(dist, tsp.Options{TimeLimit: limit})
				if serr != nil {
					return serr
				}
				tour, optimal = res.Tour, res.Optimal
				if res.Optimal {
					cost = bench.CostOf(res.Cost)
				} else {
					cost = bench.CostNA()
				}
			case bench.TwiceAroundTree:
				var c float64
				if tour, c, err = tsp.TwiceAroundTree(dist); err != nil {
					return err
				}
				cost = bench.CostOf(c)
			case bench.Christofides:
				var c float64
				if tour, c, err = tsp.Christofides(dist); err != nil {
					return err
				}
				cost = bench.CostOf(c)
			}
			elapsed := time.Since(start)

			fmt.Fprintf(cmd.OutOrStdout(), "instance: %s (n=%d)\nalgorithm: %s\ncost: %s\nelapsed: %s\n",
				inst.Name, inst.Dimension, algo, cost, elapsed.Round(time.Microsecond))
			if !optimal && tour != nil {
				fmt.Fprintln(cmd.OutOrStdout(), "note: deadline hit; best incumbent, optimum unproven")
			}
			if printTour && tour != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "tour: %v\n", tour)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&algoName, "algo", "a", "christofides", "solver: bb, tree or christofides")
	cmd.Flags().IntVarP(&timeLimitSec, "time-limit", "t", -1,
		"Branch-and-Bound budget in seconds (-1 disables the deadline)")
	cmd.Flags().BoolVar(&printTour, "tour", false, "print the full tour")

	return cmd
}
