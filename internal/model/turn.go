package model

// Role identifies who produced a turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one message unit of a conversation.
type Turn struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}
