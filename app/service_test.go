package app

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/kilianp07/planpath/config"
	"github.com/kilianp07/planpath/core/graph"
	"github.com/kilianp07/planpath/core/logger"
	coremetrics "github.com/kilianp07/planpath/core/metrics"
	"github.com/kilianp07/planpath/core/model"
	"github.com/kilianp07/planpath/infra/loader"
)

type recordingSink struct {
	mu     sync.Mutex
	events []coremetrics.PlanEvent
}

func (r *recordingSink) RecordPlan(ev coremetrics.PlanEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	return nil
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Report.SetDefaults()
	cfg.API.SetDefaults()
	cfg.Logging.SetDefaults()
	return cfg
}

func testRecords() []loader.Record {
	return []loader.Record{
		{Name: "A", Optimistic: 1, MostLikely: 2, Pessimistic: 3},
		{Name: "B", Optimistic: 2, MostLikely: 4, Pessimistic: 6, Predecessors: []string{"A"}},
		{Name: "C", Optimistic: 1, MostLikely: 1, Pessimistic: 1, Predecessors: []string{"A"}},
	}
}

func TestComputePlan(t *testing.T) {
	sink := &recordingSink{}
	svc := newService(testConfig(), logger.NopLogger{}, sink)

	p, err := svc.ComputePlan(testRecords())
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if p.RunID == "" {
		t.Fatal("missing run id")
	}
	if p.TotalDuration != 6 || len(p.CriticalSet) != 2 {
		t.Fatalf("plan summary: %+v", p)
	}

	svc.Close()
	sink.mu.Lock()
	defer sink.mu.Unlock()
	if len(sink.events) != 1 {
		t.Fatalf("expected 1 metrics event, got %d", len(sink.events))
	}
	if ev := sink.events[0]; ev.RunID != p.RunID || ev.TotalDuration != 6 || ev.CriticalCount != 2 {
		t.Fatalf("event: %+v", ev)
	}
}

func TestComputePlanSubset(t *testing.T) {
	cfg := testConfig()
	cfg.Report.SubsetActivities = []string{"A", "B", "C"}
	svc := newService(cfg, logger.NopLogger{}, coremetrics.NopSink{})
	defer svc.Close()

	p, err := svc.ComputePlan(testRecords())
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if p.Subset == nil || p.Subset.Variance == 0 {
		t.Fatalf("subset missing: %+v", p.Subset)
	}
}

func TestComputePlanPropagatesErrors(t *testing.T) {
	svc := newService(testConfig(), logger.NopLogger{}, coremetrics.NopSink{})
	defer svc.Close()

	_, err := svc.ComputePlan([]loader.Record{{Name: "A", Optimistic: 3, MostLikely: 2, Pessimistic: 3}})
	var verr *model.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError got %v", err)
	}

	_, err = svc.ComputePlan([]loader.Record{
		{Name: "X", Optimistic: 1, MostLikely: 1, Pessimistic: 1, Predecessors: []string{"Y"}},
		{Name: "Y", Optimistic: 1, MostLikely: 1, Pessimistic: 1, Predecessors: []string{"X"}},
	})
	var cerr *graph.CycleError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected CycleError got %v", err)
	}
}

func TestRunBatchJSONOutput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "acts.csv")
	data := "activity,optimistic,most_likely,pessimistic,predecessors\nA,1,2,3,\nB,2,4,6,A\n"
	if err := os.WriteFile(input, []byte(data), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	out := filepath.Join(dir, "plan.json")

	cfg := testConfig()
	cfg.Input.Path = input
	cfg.Report.Format = "json"
	cfg.Report.Output = out

	svc := newService(cfg, logger.NopLogger{}, coremetrics.NopSink{})
	defer svc.Close()
	if err := svc.RunBatch(); err != nil {
		t.Fatalf("run: %v", err)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if len(b) == 0 {
		t.Fatal("empty output")
	}
}
