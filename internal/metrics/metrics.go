package metrics

import (
	"context"
	"fmt"

	"github.com/alexanderramin/streakmind/internal/llm"
	"github.com/alexanderramin/streakmind/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "streakmind"

// Metrics holds the prometheus collectors for the tracker. It observes
// service use cases and text-generation calls.
type Metrics struct {
	useCases       *prometheus.CounterVec
	useCaseLatency *prometheus.HistogramVec
	ingested       *prometheus.CounterVec
	pointsAwarded  prometheus.Counter
	llmCalls       *prometheus.CounterVec
	llmLatency     *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		useCases: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "service",
			Name:      "use_cases_total",
			Help:      "Number of service use cases executed, by name and outcome.",
		}, []string{"use_case", "outcome"}),
		useCaseLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "service",
			Name:      "use_case_duration_seconds",
			Help:      "Duration of service use cases.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"use_case"}),
		ingested: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "messages_total",
			Help:      "Number of ingested messages, by interpretation.",
		}, []string{"kind"}),
		pointsAwarded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "points_awarded_total",
			Help:      "Points awarded across all accepted log entries.",
		}),
		llmCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "llm",
			Name:      "calls_total",
			Help:      "Number of text-generation calls, by provider, task and error code.",
		}, []string{"provider", "task", "code"}),
		llmLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "llm",
			Name:      "call_duration_seconds",
			Help:      "Latency of text-generation calls.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"provider"}),
	}

	for _, c := range []prometheus.Collector{
		m.useCases, m.useCaseLatency, m.ingested, m.pointsAwarded, m.llmCalls, m.llmLatency,
	} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("registering collector: %w", err)
		}
	}
	return m, nil
}

// ObserveUseCase implements service.UseCaseObserver.
func (m *Metrics) ObserveUseCase(_ context.Context, event service.UseCaseEvent) {
	outcome := "success"
	if !event.Success {
		outcome = "error"
	}
	m.useCases.WithLabelValues(event.Name, outcome).Inc()
	m.useCaseLatency.WithLabelValues(event.Name).Observe(event.Duration.Seconds())

	if event.Name != service.UseCaseIngest || !event.Success {
		return
	}
	if kind, ok := event.Fields["kind"].(string); ok {
		m.ingested.WithLabelValues(kind).Inc()
	}
	if points, ok := event.Fields["points"].(int); ok && points > 0 {
		m.pointsAwarded.Add(float64(points))
	}
}

// OnCallComplete implements llm.Observer.
func (m *Metrics) OnCallComplete(event llm.LLMCallEvent) {
	code := event.ErrorCode
	if event.Success {
		code = "OK"
	}
	m.llmCalls.WithLabelValues(string(event.Provider), string(event.Task), code).Inc()
	m.llmLatency.WithLabelValues(string(event.Provider)).Observe(float64(event.LatencyMs) / 1000)
}
