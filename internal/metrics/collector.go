package metrics

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/angeloszaimis/typesafe-env/env"
)

type EventType string

const (
	EventRequestReceived   EventType = "request_received"
	EventResponseCompleted EventType = "response_completed"
	EventEnvResolved       EventType = "env_resolved"
)

// Outcomes of resolving an environment domain.
const (
	OutcomeValid   = "valid"
	OutcomeInvalid = "invalid"
	OutcomeRefused = "refused"
	OutcomeError   = "error"
)

type MetricEvent struct {
	Type       EventType
	Timestamp  time.Time
	Route      string
	Duration   time.Duration
	StatusCode int
	Domain     string
	Outcome    string
}

// Collector aggregates events sent on its channel in a single goroutine.
type Collector struct {
	eventCh chan MetricEvent
	metrics *Metrics
	logger  *slog.Logger
}

func NewCollector(bufferSize int, logger *slog.Logger) *Collector {
	return &Collector{
		eventCh: make(chan MetricEvent, bufferSize),
		metrics: NewMetrics(),
		logger:  logger,
	}
}

// Emit sends an event without blocking; it is dropped when the buffer is full.
func (c *Collector) Emit(event MetricEvent) {
	select {
	case c.eventCh <- event:
	default:
		c.logger.Debug("metrics event dropped", slog.String("type", string(event.Type)))
	}
}

// ObserveEnv records the outcome of a domain parse or a refused server read.
// It has the shape of env.Observer.
func (c *Collector) ObserveEnv(domain env.Context, err error) {
	c.Emit(MetricEvent{
		Type:      EventEnvResolved,
		Timestamp: time.Now(),
		Domain:    string(domain),
		Outcome:   outcomeOf(err),
	})
}

func outcomeOf(err error) string {
	var (
		verr      *env.ValidationError
		violation *env.AccessViolationError
	)

	switch {
	case err == nil:
		return OutcomeValid
	case errors.As(err, &verr):
		return OutcomeInvalid
	case errors.As(err, &violation), errors.Is(err, env.ErrServerOnClient):
		return OutcomeRefused
	default:
		return OutcomeError
	}
}

func (c *Collector) Start(ctx context.Context) {
	go c.run(ctx)
}

func (c *Collector) run(ctx context.Context) {
	c.logger.Info("metrics collector started")
	defer c.logger.Info("metrics collector stopped")

	for {
		select {
		case event := <-c.eventCh:
			c.processEvent(event)
		case <-ctx.Done():
			c.drain()
			return
		}
	}
}

func (c *Collector) processEvent(event MetricEvent) {
	switch event.Type {
	case EventRequestReceived:
		c.metrics.IncrementRequests(event.Route)
	case EventResponseCompleted:
		c.metrics.RecordResponse(event.Route, event.Duration, event.StatusCode)
	case EventEnvResolved:
		c.metrics.RecordEnvOutcome(event.Domain, event.Outcome)
	}
}

func (c *Collector) drain() {
	for {
		select {
		case event := <-c.eventCh:
			c.processEvent(event)
		default:
			return
		}
	}
}

func (c *Collector) Snapshot(service string) Snapshot {
	return c.metrics.Snapshot(service)
}
