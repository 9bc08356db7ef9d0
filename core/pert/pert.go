// Package pert propagates three-point estimate uncertainty along the
// critical path and reports per-activity completion probabilities under a
// normal approximation.
package pert

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/kilianp07/planpath/core/graph"
	"github.com/kilianp07/planpath/core/model"
	"github.com/kilianp07/planpath/core/schedule"
)

// Record holds the PERT statistics of a single activity.
type Record struct {
	Z           float64 `json:"z_score"`
	Probability float64 `json:"probability"`
}

// Analysis is the outcome of propagating variance along the critical path.
type Analysis struct {
	Records map[string]Record
	// ProjectStdDev is the square root of the summed variances of the
	// critical activities. Zero means the critical path carries no
	// estimate uncertainty.
	ProjectStdDev float64
}

var stdNormal = distuv.Normal{Mu: 0, Sigma: 1}

// Analyze computes per-activity z-scores and completion probabilities
// against the project finish. When the critical set is empty or carries no
// variance, every record is reported as zero rather than dividing by zero.
func Analyze(g *graph.Graph, res *schedule.Result) *Analysis {
	sigma := 0.0
	for _, name := range res.CriticalSet {
		if a, ok := g.Activity(name); ok {
			sigma += a.Variance
		}
	}
	sigma = math.Sqrt(sigma)

	out := &Analysis{
		Records:       make(map[string]Record, len(res.Windows)),
		ProjectStdDev: sigma,
	}
	for name, w := range res.Windows {
		var rec Record
		if sigma > 0 {
			rec.Z = (res.TotalDuration - w.EF) / sigma
			rec.Probability = stdNormal.CDF(rec.Z)
		}
		out.Records[name] = rec
	}
	return out
}

// SubsetResult holds dispersion statistics over a chosen group of
// activities' expected times.
type SubsetResult struct {
	Variance float64 `json:"variance"`
	StdDev   float64 `json:"std_dev"`
}

// SubsetStats computes the sample variance and standard deviation of the
// expected times of the named activities. Unknown names are skipped; fewer
// than two samples yield zeros, since dispersion is undefined there.
func SubsetStats(store *model.Store, names []string) SubsetResult {
	tes := store.ExpectedTimes(names)
	if len(tes) < 2 {
		return SubsetResult{}
	}
	return SubsetResult{
		Variance: stat.Variance(tes, nil),
		StdDev:   stat.StdDev(tes, nil),
	}
}
