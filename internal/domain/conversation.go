package domain

// Role tags a conversation message for the completion service.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single role-tagged entry in a conversation.
type Message struct {
	Role    Role
	Content string
}

// Conversation is the advisor's append-only message history, seeded with a
// system instruction. It grows unbounded within a session; there is no
// trimming or summarization.
type Conversation struct {
	messages []Message
}

// NewConversation seeds a conversation with the given system instruction.
func NewConversation(systemPrompt string) *Conversation {
	return &Conversation{
		messages: []Message{{Role: RoleSystem, Content: systemPrompt}},
	}
}

// Append adds a message to the end of the history.
func (c *Conversation) Append(role Role, content string) {
	c.messages = append(c.messages, Message{Role: role, Content: content})
}

// Messages returns the full ordered history. Callers must not mutate it.
func (c *Conversation) Messages() []Message {
	return c.messages
}

// Len reports the number of messages, including the system seed.
func (c *Conversation) Len() int {
	return len(c.messages)
}

// LastExchange returns the most recent (user, assistant) pair for display.
// ok is false until at least one full exchange has completed.
func (c *Conversation) LastExchange() (user, assistant Message, ok bool) {
	for i := len(c.messages) - 1; i >= 1; i-- {
		if c.messages[i].Role == RoleAssistant && c.messages[i-1].Role == RoleUser {
			return c.messages[i-1], c.messages[i], true
		}
	}
	return Message{}, Message{}, false
}
