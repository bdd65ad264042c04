// Package telemetry exposes gameplay metrics over HTTP and logs notable
// simulation events without flooding the log.
package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vovakirdan/fishrun/internal/core"
)

// Recorder holds the fishrun metrics. A nil *Recorder is valid and records
// nothing, so the platform can run without metrics.
//
// Labels are bounded: event kinds come from core.EventKinds.
type Recorder struct {
	events       *prometheus.CounterVec
	stepDuration prometheus.Histogram
	enemies      prometheus.Gauge
	sessions     prometheus.Gauge
}

// NewRecorder registers the metrics on reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)

	r := &Recorder{
		events: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "fishrun_events_total",
			Help: "Simulation events by kind",
		}, []string{"kind"}),

		stepDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "fishrun_step_duration_seconds",
			Help:    "Wall time spent in one simulation step",
			Buckets: []float64{0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		}),

		enemies: factory.NewGauge(prometheus.GaugeOpts{
			Name: "fishrun_enemies_alive",
			Help: "Enemies in the most recently stepped world",
		}),

		sessions: factory.NewGauge(prometheus.GaugeOpts{
			Name: "fishrun_sessions_active",
			Help: "Connected SSH sessions",
		}),
	}

	// Pre-create every series so dashboards see zeros
	for _, kind := range core.EventKinds {
		r.events.WithLabelValues(string(kind))
	}
	return r
}

// ObserveStep records one step's duration, events and enemy count.
func (r *Recorder) ObserveStep(d time.Duration, events []core.Event, enemies int) {
	if r == nil {
		return
	}
	r.stepDuration.Observe(d.Seconds())
	for _, e := range events {
		r.events.WithLabelValues(string(e.Kind)).Inc()
	}
	r.enemies.Set(float64(enemies))
}

// SessionStarted increments the active session gauge.
func (r *Recorder) SessionStarted() {
	if r == nil {
		return
	}
	r.sessions.Inc()
}

// SessionEnded decrements the active session gauge.
func (r *Recorder) SessionEnded() {
	if r == nil {
		return
	}
	r.sessions.Dec()
}
