package cli

import (
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev" // overridden via ldflags at release time
)

// SetVersion sets the string displayed by --version.
func SetVersion(v string) { version = v }

// Execute runs the tspbench CLI and returns an error if any command fails.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:   "tspbench",
		Short: "tspbench benchmarks Euclidean TSP solvers over TSPLIB instances",
		Long: `tspbench solves TSPLIB-format Euclidean TSP instances with three solvers -
a time-bounded exact Branch-and-Bound, the twice-around-the-tree 2-approximation
and Christofides' 1.5-approximation - and records cost and wall-clock time per
instance/algorithm pair.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRunCmd())
	root.AddCommand(newSolveCmd())

	return root.Execute()
}
