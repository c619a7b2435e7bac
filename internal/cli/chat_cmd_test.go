package cli

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ysaeki/karada/internal/llm"
)

func TestChatModel_TurnAppendsBothMessages(t *testing.T) {
	client := &stubClient{byTask: map[llm.TaskType]string{
		llm.TaskChat: "Sleep more.",
	}}
	app := testApp(t, client)
	m := newChatModel(app)

	model, _ := m.handleInput("why am I always tired?")
	cm := model.(*chatModel)

	require.Len(t, cm.messages, 3)
	assert.Contains(t, cm.messages[1], "why am I always tired?")
	assert.Contains(t, cm.messages[2], "Sleep more.")
}

func TestChatModel_FailedTurnShowsWarningAndKeepsChatting(t *testing.T) {
	client := &stubClient{err: llm.ErrUnavailable}
	app := testApp(t, client)
	m := newChatModel(app)

	model, cmd := m.handleInput("hello?")
	cm := model.(*chatModel)

	assert.Nil(t, cmd, "a failed turn should not quit the chat")
	require.Len(t, cm.messages, 3)
	assert.Contains(t, cm.messages[2], "coach unavailable")

	// The failed user turn still lands in the advisor history.
	assert.Len(t, app.Advisor.History(), 2)
}

func TestChatModel_QuitCommands(t *testing.T) {
	app := testApp(t, &stubClient{})

	for _, input := range []string{"/quit", "/exit", "/q", "quit", "exit"} {
		m := newChatModel(app)
		model, cmd := m.handleInput(input)
		assert.True(t, model.(*chatModel).quitting, "%q should quit", input)
		assert.NotNil(t, cmd)
	}
}

func TestChatModel_EscQuits(t *testing.T) {
	app := testApp(t, &stubClient{})
	m := newChatModel(app)

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, model.(*chatModel).quitting)
	assert.NotNil(t, cmd)
}

func TestChatModel_ViewShowsPrompt(t *testing.T) {
	app := testApp(t, &stubClient{})
	m := newChatModel(app)

	view := m.View()
	assert.Contains(t, view, "coach")
}
