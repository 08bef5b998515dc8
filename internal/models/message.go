package models

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ConversationTurn is one prior exchange in an interactive session. Turns
// are append-only and owned by a single session; they are passed verbatim
// to the explanation model.
type ConversationTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
