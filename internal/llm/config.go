package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of completion task being performed.
type TaskType string

const (
	TaskPlan     TaskType = "plan"
	TaskEstimate TaskType = "estimate"
	TaskChat     TaskType = "chat"
)

// TaskConfig holds per-task completion parameters.
type TaskConfig struct {
	Temperature float64
	TimeoutMs   int // overrides the global timeout if > 0
}

// Config holds all configuration for the completion-service client.
// APIKey is the single required secret; everything else has a default.
type Config struct {
	APIKey     string
	BaseURL    string
	Model      string
	ChatModel  string // model for the chat task; defaults to Model
	LogCalls   bool
	TimeoutMs  int
	MaxRetries int
	Tasks      map[TaskType]TaskConfig
}

// DefaultConfig returns a Config with defaults for everything but the API key.
func DefaultConfig() Config {
	return Config{
		BaseURL:    "https://api.openai.com",
		Model:      "gpt-4o-mini",
		LogCalls:   false,
		TimeoutMs:  30000,
		MaxRetries: 1,
		Tasks: map[TaskType]TaskConfig{
			TaskPlan:     {Temperature: 0.2, TimeoutMs: 30000},
			TaskEstimate: {Temperature: 0.3, TimeoutMs: 30000},
			TaskChat:     {Temperature: 0.7, TimeoutMs: 45000},
		},
	}
}

// LoadConfig reads configuration from environment variables, falling back to
// defaults for any unset values. The API key comes from OPENAI_API_KEY.
func LoadConfig() Config {
	cfg := DefaultConfig()

	cfg.APIKey = os.Getenv("OPENAI_API_KEY")
	if v := os.Getenv("KARADA_OPENAI_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("KARADA_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("KARADA_CHAT_MODEL"); v != "" {
		cfg.ChatModel = v
	}
	if v := os.Getenv("KARADA_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("KARADA_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("KARADA_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	applyTaskTimeoutEnv(&cfg, TaskPlan, "KARADA_LLM_PLAN_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskEstimate, "KARADA_LLM_ESTIMATE_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskChat, "KARADA_LLM_CHAT_TIMEOUT_MS")

	return cfg
}

// Validate reports whether the config is usable at all. A missing API key is
// a startup-blocking error; no flow may run without it.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

// ModelFor returns the model identifier for a task. The chat task may use a
// dedicated (e.g. fine-tuned) model.
func (c Config) ModelFor(task TaskType) string {
	if task == TaskChat && c.ChatModel != "" {
		return c.ChatModel
	}
	return c.Model
}

// TaskTimeout returns the effective timeout for a task in milliseconds.
func (c Config) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func applyTaskTimeoutEnv(cfg *Config, task TaskType, envName string) {
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
