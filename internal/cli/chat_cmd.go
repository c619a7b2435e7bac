package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ysaeki/karada/internal/cli/formatter"
)

func newChatCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "chat [question]",
		Short: "Talk to the nutrition and training coach",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return runChatOnce(app, strings.Join(args, " "))
			}
			return runChatTUI(app)
		},
	}
}

// runChatOnce answers a single question without entering the TUI.
func runChatOnce(app *App, question string) error {
	stop := formatter.StartSpinner("Thinking...")
	answer, err := app.Advisor.Ask(context.Background(), question)
	stop()
	if err != nil {
		return err
	}
	fmt.Println(formatter.RenderBox("Coach", answer))
	return nil
}

func runChatTUI(app *App) error {
	_, err := tea.NewProgram(newChatModel(app)).Run()
	return err
}

// chatModel is the bubbletea model for the multi-turn coach chat. The
// advisor keeps the conversation history; the model only renders it.
type chatModel struct {
	app   *App
	input textinput.Model

	messages []string
	quitting bool
}

func newChatModel(app *App) *chatModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.CharLimit = 500

	return &chatModel{
		app: app,
		messages: []string{
			formatter.Dim("Ask about training, food, or recovery. Esc or /quit to leave."),
		},
		input: ti,
	}
}

func (m *chatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			input := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if input == "" {
				return m, nil
			}
			return m.handleInput(input)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *chatModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	for _, msg := range m.messages {
		b.WriteString(msg)
		b.WriteString("\n")
	}

	prompt := formatter.StylePurple.Render("coach") + formatter.Dim("> ")
	b.WriteString(prompt)
	b.WriteString(m.input.View())

	return b.String()
}

func (m *chatModel) handleInput(input string) (tea.Model, tea.Cmd) {
	switch strings.ToLower(input) {
	case "/quit", "/exit", "/q", "quit", "exit":
		m.quitting = true
		return m, tea.Quit
	}

	m.messages = append(m.messages, formatter.Dim("You: ")+input)

	answer, err := m.app.Advisor.Ask(context.Background(), input)
	if err != nil {
		m.messages = append(m.messages,
			formatter.Warn(fmt.Sprintf("coach unavailable: %v", err)))
		return m, nil
	}

	m.messages = append(m.messages, formatter.StyleGreen.Render("Coach: ")+answer)
	return m, nil
}
