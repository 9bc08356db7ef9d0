package plan

import (
	"math"
	"testing"

	"github.com/kilianp07/planpath/core/graph"
	"github.com/kilianp07/planpath/core/model"
	"github.com/kilianp07/planpath/core/pert"
	"github.com/kilianp07/planpath/core/schedule"
)

func TestAssemble(t *testing.T) {
	var acts []model.Activity
	for _, c := range []struct {
		name    string
		o, m, p float64
		preds   []string
	}{
		{"A", 1, 2, 3, nil},
		{"B", 2, 4, 6, []string{"A"}},
		{"C", 1, 1, 1, []string{"A"}},
	} {
		a, err := model.NewActivity(c.name, c.o, c.m, c.p, c.preds)
		if err != nil {
			t.Fatalf("activity %s: %v", c.name, err)
		}
		acts = append(acts, a)
	}
	g, err := graph.Build(acts)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	res, err := schedule.Compute(g)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	p := Assemble(g, res, pert.Analyze(g, res))

	if len(p.Rows) != 3 {
		t.Fatalf("rows: %d", len(p.Rows))
	}
	// Rows follow topological order.
	if p.Rows[0].Name != "A" || p.Rows[1].Name != "B" || p.Rows[2].Name != "C" {
		t.Fatalf("row order: %s %s %s", p.Rows[0].Name, p.Rows[1].Name, p.Rows[2].Name)
	}
	if p.TotalDuration != 6 {
		t.Fatalf("total %g", p.TotalDuration)
	}
	b := p.Rows[1]
	if !b.Critical || math.Abs(b.Probability-0.5) > 1e-12 {
		t.Fatalf("B row %+v", b)
	}
	c := p.Rows[2]
	if c.Critical || math.Abs(c.Slack-3) > 1e-9 {
		t.Fatalf("C row %+v", c)
	}
}
