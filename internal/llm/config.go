package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of generation being performed.
type TaskType string

const (
	// TaskReply phrases the acknowledgement for a log, a new activity or a command.
	TaskReply TaskType = "reply"
	// TaskChat answers conversational and general messages.
	TaskChat TaskType = "chat"
)

// Provider selects the text-generation backend.
type Provider string

const (
	ProviderOllama Provider = "ollama"
	ProviderGemini Provider = "gemini"
)

// TaskConfig holds per-task generation parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// LLMConfig holds all configuration for the text-generation collaborator.
type LLMConfig struct {
	Enabled      bool
	LogCalls     bool
	Provider     Provider
	Endpoint     string
	Model        string
	GeminiAPIKey string
	GeminiModel  string
	TimeoutMs    int
	MaxRetries   int
	Tasks        map[TaskType]TaskConfig
}

// DefaultConfig returns an LLMConfig with sensible defaults.
// Generation is disabled by default; replies then use templates.
func DefaultConfig() LLMConfig {
	return LLMConfig{
		Enabled:     false,
		LogCalls:    false,
		Provider:    ProviderOllama,
		Endpoint:    "http://localhost:11434",
		Model:       "llama3.2",
		GeminiModel: "gemini-1.5-flash",
		TimeoutMs:   10000,
		MaxRetries:  1,
		Tasks: map[TaskType]TaskConfig{
			TaskReply: {Temperature: 0.7, MaxTokens: 256, TimeoutMs: 10000},
			TaskChat:  {Temperature: 0.7, MaxTokens: 1024, TimeoutMs: 10000},
		},
	}
}

// LoadConfig reads configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() LLMConfig {
	cfg := DefaultConfig()

	if v := os.Getenv("STREAKMIND_LLM_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("STREAKMIND_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("STREAKMIND_LLM_PROVIDER"); v != "" {
		cfg.Provider = Provider(v)
	}
	if v := os.Getenv("STREAKMIND_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("STREAKMIND_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.GeminiAPIKey = v
	}
	if v := os.Getenv("GEMINI_MODEL"); v != "" {
		cfg.GeminiModel = v
	}
	if v := os.Getenv("STREAKMIND_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
			// The global timeout applies to every task unless a task
			// override follows.
			for task, tc := range cfg.Tasks {
				tc.TimeoutMs = 0
				cfg.Tasks[task] = tc
			}
		}
	}
	if v := os.Getenv("STREAKMIND_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	applyTaskTimeoutEnv(&cfg, TaskReply, "STREAKMIND_LLM_REPLY_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskChat, "STREAKMIND_LLM_CHAT_TIMEOUT_MS")

	return cfg
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c LLMConfig) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func applyTaskTimeoutEnv(cfg *LLMConfig, task TaskType, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = n
	cfg.Tasks[task] = tc
}
