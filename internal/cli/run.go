package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lcrocha/tspbench/bench"
	"github.com/lcrocha/tspbench/tsplib"
)

// newRunCmd builds the batch benchmark command.
func newRunCmd() *cobra.Command {
	var (
		configPath   string
		output       string
		timeLimitSec int
		showSummary  bool
	)

	cmd := &cobra.Command{
		Use:   "run [instances-dir]",
		Short: "Benchmark every *.tsp instance in a directory",
		Long: `Run parses every *.tsp file in the given directory (sorted by name), solves
each instance with the configured algorithms, and writes the result table as
CSV. Branch-and-Bound runs that exhaust the time budget without a proven
optimum are recorded as NA. A malformed instance is logged, recorded as an NA
row and does not abort the batch.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg := DefaultConfig()
			if configPath != "" {
				var err error
				if cfg, err = LoadConfig(configPath); err != nil {
					return err
				}
			}
			// Flags override the file.
			if len(args) == 1 {
				cfg.InstancesDir = args[0]
			}
			if cmd.Flags().Changed("output") {
				cfg.Output = output
			}
			if cmd.Flags().Changed("time-limit") {
				cfg.TimeLimitSeconds = timeLimitSec
			}
			if cfg.InstancesDir == "" {
				return fmt.Errorf("no instances directory (argument or instances_dir in config)")
			}

			algos, err := cfg.algorithms()
			if err != nil {
				return err
			}
			paths, err := tsplib.Instances(cfg.InstancesDir)
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				return fmt.Errorf("no *.tsp instances under %s", cfg.InstancesDir)
			}

			runner := bench.NewRunner(cfg.timeLimit(), logger)
			runner.Algorithms = algos
			logger.Info("starting batch",
				"run_id", runner.RunID, "instances", len(paths),
				"time_limit_s", cfg.TimeLimitSeconds)

			reports := runner.RunBatch(paths)

			out, err := os.Create(cfg.Output)
			if err != nil {
				return err
			}
			defer out.Close()
			if err := bench.WriteCSV(out, reports); err != nil {
				return err
			}
			logger.Info("results written", "path", cfg.Output)

			if showSummary {
				fmt.Fprint(cmd.OutOrStdout(), bench.FormatSummaries(bench.Summarize(reports)))
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML config file")
	cmd.Flags().StringVarP(&output, "output", "o", "resultados.csv", "CSV output path")
	cmd.Flags().IntVarP(&timeLimitSec, "time-limit", "t", 1800,
		"Branch-and-Bound budget in seconds (-1 disables the deadline)")
	cmd.Flags().BoolVar(&showSummary, "summary", false, "print per-algorithm statistics after the batch")

	return cmd
}
