// Package metrics defines the observability contract for schedule runs.
// Adapters live under infra/metrics.
package metrics

import "time"

// PlanEvent summarizes one completed schedule computation.
type PlanEvent struct {
	RunID         string
	Activities    int
	CriticalCount int
	TotalDuration float64
	ProjectStdDev float64
	ComputeTime   time.Duration
	Time          time.Time
}

// Sink records plan events for observability purposes.
type Sink interface {
	RecordPlan(ev PlanEvent) error
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) RecordPlan(PlanEvent) error { return nil }

// Config holds metrics adapter settings.
type Config struct {
	PrometheusEnabled bool   `json:"prometheus_enabled"`
	PrometheusPort    string `json:"prometheus_port"`
}
