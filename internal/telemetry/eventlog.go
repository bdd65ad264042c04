package telemetry

import (
	"sync/atomic"

	"github.com/charmbracelet/log"
	"golang.org/x/time/rate"

	"github.com/vovakirdan/fishrun/internal/core"
)

// Default event logging budget.
const (
	DefaultEventsPerSecond = 20
	DefaultEventBurst      = 40
)

// EventLogger writes simulation events to a charm logger through a token
// bucket. Events over budget are counted and dropped.
type EventLogger struct {
	logger  *log.Logger
	limiter *rate.Limiter
	dropped atomic.Uint64
}

// NewEventLogger creates an event logger. Non-positive limits use the defaults.
func NewEventLogger(logger *log.Logger, perSecond float64, burst int) *EventLogger {
	if perSecond <= 0 {
		perSecond = DefaultEventsPerSecond
	}
	if burst <= 0 {
		burst = DefaultEventBurst
	}
	return &EventLogger{
		logger:  logger,
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
	}
}

// Log writes each event unless the budget is exhausted.
func (l *EventLogger) Log(events []core.Event) {
	if l == nil {
		return
	}
	for _, e := range events {
		if !l.limiter.Allow() {
			l.dropped.Add(1)
			continue
		}
		switch e.Kind {
		case core.EventPlacementFallback:
			l.logger.Warn("Platform placement gave up", "platform", e.Index, "kind", e.Tag)
		case core.EventHit:
			l.logger.Info("Player hit", "enemy", e.Index, "species", e.Tag)
		case core.EventGameOver:
			l.logger.Info("Game over")
		default:
			l.logger.Debug(string(e.Kind), "index", e.Index, "tag", e.Tag)
		}
	}
}

// Dropped returns how many events were discarded.
func (l *EventLogger) Dropped() uint64 {
	if l == nil {
		return 0
	}
	return l.dropped.Load()
}
