package cli

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lcrocha/tspbench/bench"
	"github.com/lcrocha/tspbench/tsp"
)

// Config is the TOML-configurable subset of the benchmark protocol. Flags
// override file values; the file overrides the defaults.
type Config struct {
	// InstancesDir is the corpus directory scanned for *.tsp files.
	InstancesDir string `toml:"instances_dir"`

	// Output is the CSV result path.
	Output string `toml:"output"`

	// TimeLimitSeconds is the Branch-and-Bound budget; 0 is a zero budget,
	// -1 disables the deadline.
	TimeLimitSeconds int `toml:"time_limit_seconds"`

	// Algorithms restricts which solvers run (names as in `solve --algo`).
	// Empty means all three.
	Algorithms []string `toml:"algorithms"`
}

// DefaultConfig mirrors the original benchmark protocol: 1800 s budget,
// resultados.csv in the working directory.
func DefaultConfig() Config {
	return Config{
		Output:           "resultados.csv",
		TimeLimitSeconds: 1800,
	}
}

// LoadConfig overlays the TOML file at path onto DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config %s: unknown key %s", path, undecoded[0])
	}

	return cfg, nil
}

// timeLimit converts the configured seconds to the solver's duration
// convention.
func (c Config) timeLimit() time.Duration {
	if c.TimeLimitSeconds < 0 {
		return tsp.NoTimeLimit
	}

	return time.Duration(c.TimeLimitSeconds) * time.Second
}

// algorithms resolves the configured names; empty means all.
func (c Config) algorithms() ([]bench.Algorithm, error) {
	if len(c.Algorithms) == 0 {
		return bench.Algorithms, nil
	}
	algos := make([]bench.Algorithm, 0, len(c.Algorithms))
	for _, name := range c.Algorithms {
		a, ok := bench.ParseAlgorithm(name)
		if !ok {
			return nil, fmt.Errorf("unknown algorithm %q", name)
		}
		algos = append(algos, a)
	}

	return algos, nil
}
