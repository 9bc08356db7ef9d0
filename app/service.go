// Package app wires the loader, the scheduling engines and the observers
// into one service.
package app

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kilianp07/planpath/config"
	"github.com/kilianp07/planpath/core/graph"
	coremetrics "github.com/kilianp07/planpath/core/metrics"
	"github.com/kilianp07/planpath/core/model"
	"github.com/kilianp07/planpath/core/pert"
	"github.com/kilianp07/planpath/core/plan"
	"github.com/kilianp07/planpath/core/schedule"
	"github.com/kilianp07/planpath/infra/loader"
	"github.com/kilianp07/planpath/infra/logger"
	"github.com/kilianp07/planpath/infra/metrics"
	"github.com/kilianp07/planpath/internal/eventbus"
	"github.com/kilianp07/planpath/pkg/export"
	"github.com/kilianp07/planpath/pkg/report"
)

// Service computes schedules from activity records and feeds observers.
type Service struct {
	cfg  *config.Config
	log  logger.Logger
	sink coremetrics.Sink
	bus  eventbus.EventBus
	wg   sync.WaitGroup
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	log := logger.NewWithLevel("service", cfg.Logging.Level)
	var sink coremetrics.Sink = coremetrics.NopSink{}
	if cfg.Metrics.PrometheusEnabled {
		s, err := metrics.NewPromSink()
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sink = s
	}
	return newService(cfg, log, sink), nil
}

// newService lets tests inject the logger and sink.
func newService(cfg *config.Config, log logger.Logger, sink coremetrics.Sink) *Service {
	svc := &Service{
		cfg:  cfg,
		log:  log,
		sink: sink,
		bus:  eventbus.New(),
	}
	sub := svc.bus.Subscribe()
	svc.wg.Add(1)
	go func() {
		defer svc.wg.Done()
		for e := range sub {
			ev, ok := e.(coremetrics.PlanEvent)
			if !ok {
				continue
			}
			if err := svc.sink.RecordPlan(ev); err != nil {
				svc.log.Warnf("record plan metrics: %v", err)
			}
		}
	}()
	return svc
}

// Close shuts down the event bus and waits for observers to drain.
func (s *Service) Close() {
	s.bus.Close()
	s.wg.Wait()
}

// ComputePlan runs the full pipeline over raw records: validation, graph
// build, timing passes, PERT analysis and optional subset statistics.
func (s *Service) ComputePlan(records []loader.Record) (*plan.Plan, error) {
	start := time.Now()
	store := model.NewStore()
	for _, r := range records {
		if _, err := store.Ingest(r.Name, r.Optimistic, r.MostLikely, r.Pessimistic, r.Predecessors); err != nil {
			return nil, err
		}
	}
	g, err := graph.Build(store.List())
	if err != nil {
		return nil, err
	}
	res, err := schedule.Compute(g)
	if err != nil {
		return nil, err
	}
	an := pert.Analyze(g, res)

	p := plan.Assemble(g, res, an)
	p.RunID = uuid.NewString()
	p.GeneratedAt = time.Now().UTC()
	if names := s.cfg.Report.SubsetActivities; len(names) > 0 {
		sub := pert.SubsetStats(store, names)
		p.Subset = &plan.Subset{Activities: names, Variance: sub.Variance, StdDev: sub.StdDev}
	}

	elapsed := time.Since(start)
	s.log.Infof("plan %s computed: %d activities, total duration %.3f, %d critical",
		p.RunID, len(p.Rows), p.TotalDuration, len(p.CriticalSet))
	s.bus.Publish(coremetrics.PlanEvent{
		RunID:         p.RunID,
		Activities:    len(p.Rows),
		CriticalCount: len(p.CriticalSet),
		TotalDuration: p.TotalDuration,
		ProjectStdDev: p.ProjectStdDev,
		ComputeTime:   elapsed,
		Time:          p.GeneratedAt,
	})
	return p, nil
}

// RunBatch loads the configured activity file, computes one plan and renders
// it according to the report settings.
func (s *Service) RunBatch() error {
	records, err := loader.Load(s.cfg.Input.Path)
	if err != nil {
		return fmt.Errorf("load activities: %w", err)
	}
	p, err := s.ComputePlan(records)
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	if dst := s.cfg.Report.Output; dst != "" && dst != "-" {
		f, err := os.Create(dst)
		if err != nil {
			return fmt.Errorf("open output: %w", err)
		}
		defer f.Close()
		out = f
	}
	switch s.cfg.Report.Format {
	case "json":
		return export.WriteJSON(out, p)
	case "csv":
		return export.WriteCSV(out, p)
	default:
		return report.WriteText(out, p)
	}
}
