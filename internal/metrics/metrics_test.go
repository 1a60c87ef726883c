package metrics

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/streakmind/internal/llm"
	"github.com/alexanderramin/streakmind/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ObserveIngest(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := New(reg)
	require.NoError(t, err)

	m.ObserveUseCase(context.Background(), service.UseCaseEvent{
		Name:     service.UseCaseIngest,
		Duration: 3 * time.Millisecond,
		Success:  true,
		Fields:   map[string]any{"kind": "log", "points": 15},
	})
	m.ObserveUseCase(context.Background(), service.UseCaseEvent{
		Name:    service.UseCaseIngest,
		Success: false,
		Fields:  map[string]any{"kind": "log"},
	})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ingested.WithLabelValues("log")))
	assert.Equal(t, 15.0, testutil.ToFloat64(m.pointsAwarded))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.useCases.WithLabelValues(service.UseCaseIngest, "error")))
}

func TestMetrics_LLMCalls(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := New(reg)
	require.NoError(t, err)

	m.OnCallComplete(llm.LLMCallEvent{Provider: llm.ProviderOllama, Task: llm.TaskReply, Success: true, LatencyMs: 120})
	m.OnCallComplete(llm.LLMCallEvent{Provider: llm.ProviderOllama, Task: llm.TaskReply, ErrorCode: "TIMEOUT"})

	expected := `
# HELP streakmind_llm_calls_total Number of text-generation calls, by provider, task and error code.
# TYPE streakmind_llm_calls_total counter
streakmind_llm_calls_total{code="OK",provider="ollama",task="reply"} 1
streakmind_llm_calls_total{code="TIMEOUT",provider="ollama",task="reply"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "streakmind_llm_calls_total"))
}

func TestNew_DoubleRegistrationFails(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := New(reg)
	require.NoError(t, err)

	_, err = New(reg)
	assert.Error(t, err)
}
