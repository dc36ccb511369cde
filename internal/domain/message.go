package domain

// Message roles accepted in a conversation transcript.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single turn of a conversation. Transcripts are supplied by
// the caller on every request; the server does not persist them.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
