package nutrition

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ysaeki/karada/internal/llm"
)

// End-to-end over real HTTP: httptest server -> chat client -> planner parse
// and repair. Guards against drift between the wire format and the planner's
// expectations.
func TestPlanner_Plan_WithHTTPTestServer(t *testing.T) {
	planJSON := `{"grams": {"rice": 180, "chicken breast": 30, "broccoli": 90},
		"total_kcal": 595,
		"pfc": {"protein_pct": 29, "fat_pct": 21, "carb_pct": 50}}`

	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)

		var req struct {
			ResponseFormat map[string]string `json:"response_format"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "json_object", req.ResponseFormat["type"])

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"model": "gpt-4o-mini",
			"choices": []map[string]any{
				{"message": map[string]any{"content": planJSON}},
			},
		})
	}))
	defer srv.Close()

	cfg := llm.DefaultConfig()
	cfg.APIKey = "test-key"
	cfg.BaseURL = srv.URL
	cfg.MaxRetries = 0

	p := NewPlanner(llm.NewClient(cfg, llm.NoopObserver{}))

	plan, err := p.Plan(context.Background(), planRequest())
	require.NoError(t, err)

	assert.Equal(t, 595.0, plan.TotalKcal)
	assert.True(t, plan.Repaired, "30g chicken breast is below the 50g floor")
	assert.Equal(t, 50.0, plan.Foods[1].Grams)

	// Memoization short-circuits the second identical request.
	_, err = p.Plan(context.Background(), planRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, requests)
}

func TestAdvisor_Ask_WithHTTPTestServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Messages []llm.Message `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotEmpty(t, req.Messages)
		assert.Equal(t, "system", req.Messages[0].Role)

		json.NewEncoder(w).Encode(map[string]any{
			"model": "gpt-4o-mini",
			"choices": []map[string]any{
				{"message": map[string]any{"content": "Rest 48 hours between sessions."}},
			},
		})
	}))
	defer srv.Close()

	cfg := llm.DefaultConfig()
	cfg.APIKey = "test-key"
	cfg.BaseURL = srv.URL
	cfg.MaxRetries = 0

	a := NewAdvisor(llm.NewClient(cfg, llm.NoopObserver{}))

	answer, err := a.Ask(context.Background(), "how often should I train legs?")
	require.NoError(t, err)
	assert.Equal(t, "Rest 48 hours between sessions.", answer)
	assert.Equal(t, 3, len(a.History()))
}
