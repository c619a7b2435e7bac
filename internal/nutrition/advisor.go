package nutrition

import (
	"context"

	"github.com/ysaeki/karada/internal/domain"
	"github.com/ysaeki/karada/internal/llm"
)

// Advisor runs the multi-turn training/nutrition Q&A. It owns an append-only
// conversation seeded with the coach persona; every turn forwards the entire
// history to the completion service.
type Advisor struct {
	client llm.Client
	conv   *domain.Conversation
}

// NewAdvisor creates an Advisor with a fresh conversation.
func NewAdvisor(client llm.Client) *Advisor {
	return &Advisor{
		client: client,
		conv:   domain.NewConversation(advisorSystemPrompt),
	}
}

// Ask appends the user's question, forwards the full history, and appends the
// assistant's reply. The user turn is appended before the call: on failure
// the history keeps the unanswered question and nothing else changes.
func (a *Advisor) Ask(ctx context.Context, question string) (string, error) {
	a.conv.Append(domain.RoleUser, question)

	resp, err := a.client.Complete(ctx, llm.CompleteRequest{
		Task:     llm.TaskChat,
		Messages: toWire(a.conv.Messages()),
	})
	if err != nil {
		return "", err
	}

	a.conv.Append(domain.RoleAssistant, resp.Text)
	return resp.Text, nil
}

// History returns the full conversation, system seed included.
func (a *Advisor) History() []domain.Message {
	return a.conv.Messages()
}

// LastExchange exposes the most recent completed (user, assistant) pair.
func (a *Advisor) LastExchange() (user, assistant domain.Message, ok bool) {
	return a.conv.LastExchange()
}

func toWire(msgs []domain.Message) []llm.Message {
	wire := make([]llm.Message, len(msgs))
	for i, m := range msgs {
		wire[i] = llm.Message{Role: string(m.Role), Content: m.Content}
	}
	return wire
}
