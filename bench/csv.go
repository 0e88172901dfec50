package bench

import (
	"encoding/csv"
	"io"
	"strconv"
)

// csvHeader is the column contract consumed by the downstream report
// tooling; the names are part of the protocol and must not be translated.
var csvHeader = []string{
	"id_instancia",
	"tempo_branch_and_bound", "custo_branch_and_bound",
	"tempo_2_tree", "custo_2_tree",
	"tempo_christofides", "custo_christofides",
}

// WriteCSV serializes reports as the benchmark result table, one row per
// instance keyed by instance id. For a Branch-and-Bound run that ended
// without a proven optimum both its tempo and custo cells carry the literal
// NA; a failed instance carries NA in every cell.
func WriteCSV(w io.Writer, reports []Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, rep := range reports {
		row := make([]string, 0, len(csvHeader))
		row = append(row, rep.Instance)
		for _, algo := range Algorithms {
			res, ok := rep.resultFor(algo)
			if !ok || !res.Cost.Known() {
				row = append(row, "NA", "NA")
				continue
			}
			row = append(row,
				strconv.FormatFloat(res.Elapsed.Seconds(), 'f', 6, 64),
				res.Cost.String(),
			)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
