package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/kilianp07/planpath/core/plan"
)

// WriteJSON writes the plan to w in JSON format.
func WriteJSON(w io.Writer, p *plan.Plan) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

// WriteCSV writes the per-activity rows to w in CSV format.
func WriteCSV(w io.Writer, p *plan.Plan) error {
	cw := csv.NewWriter(w)
	header := []string{
		"activity", "predecessors", "optimistic", "most_likely", "pessimistic",
		"expected", "variance", "std_dev", "es", "ef", "ls", "lf", "slack",
		"critical", "z_score", "probability",
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, r := range p.Rows {
		rec := []string{
			r.Name,
			strings.Join(r.Predecessors, ";"),
			fl(r.Optimistic), fl(r.MostLikely), fl(r.Pessimistic),
			fl(r.Expected), fl(r.Variance), fl(r.StdDev),
			fl(r.ES), fl(r.EF), fl(r.LS), fl(r.LF), fl(r.Slack),
			strconv.FormatBool(r.Critical),
			fl(r.Z), fl(r.Probability),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func fl(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
