package testutil

import (
	"context"
	"sync"

	"github.com/alexanderramin/streakmind/internal/llm"
)

// FakeLLM is a scripted llm.LLMClient. Each Generate call consumes the next
// scripted step; once the script runs out the last step repeats. Requests are
// recorded for assertions.
type FakeLLM struct {
	mu       sync.Mutex
	steps    []FakeStep
	requests []llm.GenerateRequest
	Down     bool
}

// FakeStep is one scripted outcome. Block waits for ctx to end and then
// fails with llm.ErrTimeout. An empty Text with no Err yields
// llm.ErrEmptyOutput.
type FakeStep struct {
	Text  string
	Err   error
	Block bool
}

// NewFakeLLM returns a fake that answers every call with text.
func NewFakeLLM(text string) *FakeLLM {
	return &FakeLLM{steps: []FakeStep{{Text: text}}}
}

// NewScriptedLLM returns a fake that plays steps in order.
func NewScriptedLLM(steps ...FakeStep) *FakeLLM {
	return &FakeLLM{steps: steps}
}

func (f *FakeLLM) Generate(ctx context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	var step FakeStep
	if n := len(f.steps); n > 0 {
		idx := len(f.requests) - 1
		if idx >= n {
			idx = n - 1
		}
		step = f.steps[idx]
	}
	f.mu.Unlock()

	if step.Block {
		<-ctx.Done()
		return nil, llm.ErrTimeout
	}
	if step.Err != nil {
		return nil, step.Err
	}
	if step.Text == "" {
		return nil, llm.ErrEmptyOutput
	}
	return &llm.GenerateResponse{Text: step.Text, Model: "fake"}, nil
}

func (f *FakeLLM) Available(context.Context) bool {
	return !f.Down
}

// Requests returns a copy of every request seen so far.
func (f *FakeLLM) Requests() []llm.GenerateRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]llm.GenerateRequest, len(f.requests))
	copy(out, f.requests)
	return out
}

// Calls returns the number of Generate calls.
func (f *FakeLLM) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}
