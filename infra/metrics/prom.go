package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	coremetrics "github.com/kilianp07/planpath/core/metrics"
)

// PromSink records schedule runs in Prometheus metrics.
type PromSink struct {
	runs          prometheus.Counter
	computeTime   prometheus.Histogram
	totalDuration prometheus.Gauge
	criticalLen   prometheus.Gauge
}

// NewPromSink registers schedule metrics on the default Prometheus
// registerer. The Prometheus server should be started separately using
// StartPromServer.
func NewPromSink() (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	runs := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "planpath_schedule_runs_total",
		Help: "Total number of schedule computations",
	})
	computeTime := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "planpath_schedule_compute_seconds",
		Help:    "Wall time of one schedule computation",
		Buckets: prometheus.DefBuckets,
	})
	totalDuration := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "planpath_project_duration",
		Help: "Total project duration of the last computed schedule",
	})
	criticalLen := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "planpath_critical_activities",
		Help: "Number of critical activities in the last computed schedule",
	})

	if err := reg.Register(runs); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			runs = are.ExistingCollector.(prometheus.Counter)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(computeTime); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			computeTime = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(totalDuration); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			totalDuration = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(criticalLen); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			criticalLen = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}

	return &PromSink{
		runs:          runs,
		computeTime:   computeTime,
		totalDuration: totalDuration,
		criticalLen:   criticalLen,
	}, nil
}

// RecordPlan updates counters and gauges for one schedule run.
func (s *PromSink) RecordPlan(ev coremetrics.PlanEvent) error {
	s.runs.Inc()
	s.computeTime.Observe(ev.ComputeTime.Seconds())
	s.totalDuration.Set(ev.TotalDuration)
	s.criticalLen.Set(float64(ev.CriticalCount))
	return nil
}

// StartPromServer exposes /metrics on the given port. It blocks until the
// server fails.
func StartPromServer(port string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(":"+port, mux)
}
