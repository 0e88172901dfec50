// Package tsplib reads planar TSP instances in the TSPLIB text format.
//
// Only the subset of the format the benchmark corpus uses is recognized:
// NAME, DIMENSION, EDGE_WEIGHT_TYPE (EUC_2D when present), NODE_COORD_SECTION
// with "index x y" lines, and EOF. Anything inconsistent — a missing
// dimension, a coordinate count that disagrees with it, non-numeric fields —
// surfaces as ErrMalformed before any solver runs.
package tsplib

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/lcrocha/tspbench/tsp"
)

// ErrMalformed is wrapped by every parse failure; test with errors.Is.
var ErrMalformed = errors.New("tsplib: malformed instance")

// ErrUnsupportedEdgeWeight is returned when EDGE_WEIGHT_TYPE names anything
// but EUC_2D; the solvers only understand planar Euclidean instances.
var ErrUnsupportedEdgeWeight = errors.New("tsplib: unsupported edge weight type")

// Instance is one parsed TSP instance. Immutable once returned.
type Instance struct {
	// Name is the NAME header field, or the file basename when absent.
	Name string

	// Dimension is the declared node count; always len(Coords).
	Dimension int

	// Coords holds one planar point per node, in file order.
	Coords []tsp.Point
}

// Parse reads one instance from r.
func Parse(r io.Reader) (*Instance, error) {
	var (
		inst     Instance
		inCoords bool
		sc       = bufio.NewScanner(r)
		line     string
	)
	inst.Dimension = -1

	for sc.Scan() {
		line = strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "EOF"):
			goto done
		case inCoords:
			if err := parseCoordLine(line, &inst); err != nil {
				return nil, err
			}
			if inst.Dimension >= 0 && len(inst.Coords) == inst.Dimension {
				goto done
			}
		case strings.HasPrefix(line, "NAME"):
			inst.Name = headerValue(line)
		case strings.HasPrefix(line, "DIMENSION"):
			d, err := strconv.Atoi(headerValue(line))
			if err != nil || d < 1 {
				return nil, fmt.Errorf("%w: bad DIMENSION %q", ErrMalformed, headerValue(line))
			}
			inst.Dimension = d
		case strings.HasPrefix(line, "EDGE_WEIGHT_TYPE"):
			if v := headerValue(line); v != "EUC_2D" {
				return nil, fmt.Errorf("%w: %s", ErrUnsupportedEdgeWeight, v)
			}
		case strings.HasPrefix(line, "NODE_COORD_SECTION"):
			inCoords = true
		}
		// Other header fields (COMMENT, TYPE, …) carry nothing the solvers need.
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

done:
	if inst.Dimension < 0 {
		return nil, fmt.Errorf("%w: missing DIMENSION", ErrMalformed)
	}
	if len(inst.Coords) != inst.Dimension {
		return nil, fmt.Errorf("%w: DIMENSION %d but %d coordinates",
			ErrMalformed, inst.Dimension, len(inst.Coords))
	}

	return &inst, nil
}

// ParseFile reads one instance from path; a missing NAME header falls back to
// the file basename without extension.
func ParseFile(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	inst, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if inst.Name == "" {
		base := filepath.Base(path)
		inst.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	return inst, nil
}

// Instances lists the *.tsp files under dir, sorted by name — the batch order
// is part of the benchmark contract, so it must not depend on readdir order.
func Instances(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".tsp") {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)

	return paths, nil
}

// headerValue extracts the value of a "KEY : value" header line; TSPLIB files
// are inconsistent about spacing around the colon.
func headerValue(line string) string {
	if i := strings.Index(line, ":"); i >= 0 {
		return strings.TrimSpace(line[i+1:])
	}
	parts := strings.Fields(line)
	if len(parts) > 1 {
		return parts[len(parts)-1]
	}

	return ""
}

// parseCoordLine appends one "index x y" node line to inst.Coords.
func parseCoordLine(line string, inst *Instance) error {
	parts := strings.Fields(line)
	if len(parts) != 3 {
		return fmt.Errorf("%w: bad coordinate line %q", ErrMalformed, line)
	}
	x, errX := strconv.ParseFloat(parts[1], 64)
	y, errY := strconv.ParseFloat(parts[2], 64)
	if errX != nil || errY != nil {
		return fmt.Errorf("%w: bad coordinate line %q", ErrMalformed, line)
	}
	inst.Coords = append(inst.Coords, tsp.Point{X: x, Y: y})

	return nil
}
