// Package plan assembles the outputs of the graph, schedule and pert engines
// into one report-ready value.
package plan

import (
	"time"

	"github.com/kilianp07/planpath/core/graph"
	"github.com/kilianp07/planpath/core/model"
	"github.com/kilianp07/planpath/core/pert"
	"github.com/kilianp07/planpath/core/schedule"
)

// Row is the full per-activity output: input estimates, derived statistics,
// timing window and completion probability.
type Row struct {
	Name         string   `json:"name"`
	Predecessors []string `json:"predecessors"`
	Optimistic   float64  `json:"optimistic"`
	MostLikely   float64  `json:"most_likely"`
	Pessimistic  float64  `json:"pessimistic"`
	Expected     float64  `json:"expected"`
	Variance     float64  `json:"variance"`
	StdDev       float64  `json:"std_dev"`
	ES           float64  `json:"es"`
	EF           float64  `json:"ef"`
	LS           float64  `json:"ls"`
	LF           float64  `json:"lf"`
	Slack        float64  `json:"slack"`
	Critical     bool     `json:"critical"`
	Z            float64  `json:"z_score"`
	Probability  float64  `json:"probability"`
}

// Subset reports dispersion statistics over a caller-chosen activity group.
type Subset struct {
	Activities []string `json:"activities"`
	Variance   float64  `json:"variance"`
	StdDev     float64  `json:"std_dev"`
}

// Plan is one complete scheduling analysis.
type Plan struct {
	RunID         string    `json:"run_id"`
	GeneratedAt   time.Time `json:"generated_at"`
	TotalDuration float64   `json:"total_duration"`
	ProjectStdDev float64   `json:"project_std_dev"`
	CriticalSet   []string  `json:"critical_set"`
	CriticalPath  []string  `json:"critical_path"`
	Rows          []Row     `json:"rows"`
	Subset        *Subset   `json:"subset,omitempty"`
}

// Assemble merges per-engine results into a Plan. Rows follow the
// deterministic topological order of the graph.
func Assemble(g *graph.Graph, res *schedule.Result, an *pert.Analysis) *Plan {
	p := &Plan{
		TotalDuration: res.TotalDuration,
		ProjectStdDev: an.ProjectStdDev,
		CriticalSet:   res.CriticalSet,
		CriticalPath:  res.CriticalPath,
		Rows:          make([]Row, 0, len(res.TopoOrder)),
	}
	for _, name := range res.TopoOrder {
		a, ok := g.Activity(name)
		if !ok {
			a = model.Activity{Name: name}
		}
		w := res.Windows[name]
		rec := an.Records[name]
		p.Rows = append(p.Rows, Row{
			Name:         a.Name,
			Predecessors: a.Predecessors,
			Optimistic:   a.Optimistic,
			MostLikely:   a.MostLikely,
			Pessimistic:  a.Pessimistic,
			Expected:     a.Expected,
			Variance:     a.Variance,
			StdDev:       a.StdDev,
			ES:           w.ES,
			EF:           w.EF,
			LS:           w.LS,
			LF:           w.LF,
			Slack:        w.Slack,
			Critical:     w.Critical,
			Z:            rec.Z,
			Probability:  rec.Probability,
		})
	}
	return p
}
