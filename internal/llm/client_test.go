package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(baseURL string) Config {
	cfg := DefaultConfig()
	cfg.APIKey = "test-key"
	cfg.BaseURL = baseURL
	return cfg
}

func completionBody(content string) map[string]any {
	return map[string]any{
		"model": "gpt-4o-mini",
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	}
}

func TestChatClient_Complete_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o-mini", req.Model)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "user prompt", req.Messages[1].Content)
		assert.Nil(t, req.ResponseFormat)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(completionBody("hello"))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), NoopObserver{})
	resp, err := client.Complete(context.Background(), CompleteRequest{
		Task: TaskChat,
		Messages: []Message{
			{Role: "system", Content: "system prompt"},
			{Role: "user", Content: "user prompt"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "hello", resp.Text)
	assert.Equal(t, "gpt-4o-mini", resp.Model)
	assert.GreaterOrEqual(t, resp.LatencyMs, int64(0))
}

func TestChatClient_Complete_JSONOnlySetsResponseFormat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, map[string]string{"type": "json_object"}, req.ResponseFormat)
		json.NewEncoder(w).Encode(completionBody(`{"ok":true}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), NoopObserver{})
	resp, err := client.Complete(context.Background(), CompleteRequest{
		Task:     TaskPlan,
		Messages: []Message{{Role: "user", Content: "plan"}},
		JSONOnly: true,
	})

	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, resp.Text)
}

func TestChatClient_Complete_ChatModelOverride(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ft:gpt-4o-mini:personal", req.Model)
		json.NewEncoder(w).Encode(completionBody("ok"))
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.ChatModel = "ft:gpt-4o-mini:personal"

	client := NewClient(cfg, NoopObserver{})
	_, err := client.Complete(context.Background(), CompleteRequest{
		Task:     TaskChat,
		Messages: []Message{{Role: "user", Content: "hi"}},
	})
	require.NoError(t, err)
}

func TestChatClient_Complete_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.Tasks = map[TaskType]TaskConfig{
		TaskPlan: {Temperature: 0.2, TimeoutMs: 50},
	}

	client := NewClient(cfg, NoopObserver{})
	_, err := client.Complete(context.Background(), CompleteRequest{
		Task:     TaskPlan,
		Messages: []Message{{Role: "user", Content: "plan"}},
	})

	assert.ErrorIs(t, err, ErrTimeout)
}

func TestChatClient_Complete_Unavailable(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:1") // nothing listening
	cfg.MaxRetries = 0

	client := NewClient(cfg, NoopObserver{})
	_, err := client.Complete(context.Background(), CompleteRequest{
		Task:     TaskChat,
		Messages: []Message{{Role: "user", Content: "hi"}},
	})

	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestChatClient_Complete_RetryOnTransientError(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("internal error"))
			return
		}
		json.NewEncoder(w).Encode(completionBody("ok"))
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 1

	client := NewClient(cfg, NoopObserver{})
	resp, err := client.Complete(context.Background(), CompleteRequest{
		Task:     TaskChat,
		Messages: []Message{{Role: "user", Content: "hi"}},
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Text)
	assert.Equal(t, 2, attempts)
}

func TestChatClient_Complete_RetryExhausted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("bad request"))
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 0

	client := NewClient(cfg, NoopObserver{})
	_, err := client.Complete(context.Background(), CompleteRequest{
		Task:     TaskChat,
		Messages: []Message{{Role: "user", Content: "hi"}},
	})

	assert.ErrorIs(t, err, ErrRetryExhausted)
}

func TestChatClient_Complete_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"model": "gpt-4o-mini", "choices": []any{}})
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 0

	client := NewClient(cfg, NoopObserver{})
	_, err := client.Complete(context.Background(), CompleteRequest{
		Task:     TaskChat,
		Messages: []Message{{Role: "user", Content: "hi"}},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

func TestChatClient_ObserverCalled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(completionBody("ok"))
	}))
	defer srv.Close()

	var captured CallEvent
	obs := &captureObserver{fn: func(e CallEvent) { captured = e }}

	client := NewClient(testConfig(srv.URL), obs)
	_, err := client.Complete(context.Background(), CompleteRequest{
		Task:     TaskEstimate,
		Messages: []Message{{Role: "user", Content: "estimate"}},
	})

	require.NoError(t, err)
	assert.Equal(t, TaskEstimate, captured.Task)
	assert.Equal(t, "gpt-4o-mini", captured.Model)
	assert.True(t, captured.Success)
	assert.GreaterOrEqual(t, captured.LatencyMs, int64(0))
}

func TestChatClient_ObserverTimeoutErrorCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 0
	cfg.Tasks = map[TaskType]TaskConfig{
		TaskPlan: {Temperature: 0.2, TimeoutMs: 50},
	}

	var captured CallEvent
	obs := &captureObserver{fn: func(e CallEvent) { captured = e }}
	client := NewClient(cfg, obs)

	_, err := client.Complete(context.Background(), CompleteRequest{
		Task:     TaskPlan,
		Messages: []Message{{Role: "user", Content: "plan"}},
	})

	assert.ErrorIs(t, err, ErrTimeout)
	assert.False(t, captured.Success)
	assert.Equal(t, "TIMEOUT", captured.ErrorCode)
}

type captureObserver struct {
	fn func(CallEvent)
}

func (o *captureObserver) OnCallComplete(e CallEvent) { o.fn(e) }
