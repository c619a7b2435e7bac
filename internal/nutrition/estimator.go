package nutrition

import (
	"context"
	"fmt"
	"strings"

	"github.com/ysaeki/karada/internal/domain"
	"github.com/ysaeki/karada/internal/llm"
)

// Estimator produces a free-text calorie/PFC breakdown for a dish list.
// Unlike the planner, the response is rendered verbatim, not parsed.
type Estimator interface {
	Estimate(ctx context.Context, dishes []domain.Dish) (string, error)
}

type estimator struct {
	client llm.Client
}

// NewEstimator creates an Estimator backed by a completion-service client.
func NewEstimator(client llm.Client) Estimator {
	return &estimator{client: client}
}

func (e *estimator) Estimate(ctx context.Context, dishes []domain.Dish) (string, error) {
	if err := domain.ValidateDishes(dishes); err != nil {
		return "", err
	}

	lines := make([]string, len(dishes))
	for i, d := range dishes {
		lines[i] = d.Describe()
	}
	userPrompt := fmt.Sprintf(estimatorInstructions, strings.Join(lines, "\n"))

	resp, err := e.client.Complete(ctx, llm.CompleteRequest{
		Task: llm.TaskEstimate,
		Messages: []llm.Message{
			{Role: string(domain.RoleSystem), Content: estimatorSystemPrompt},
			{Role: string(domain.RoleUser), Content: userPrompt},
		},
	})
	if err != nil {
		return "", err
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return "", fmt.Errorf("%w: empty estimate", llm.ErrInvalidOutput)
	}
	return text, nil
}
