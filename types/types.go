package types

const (
	ROLE_USER      = "user"
	ROLE_ASSISTANT = "assistant"
)

const (
	MEDIA_TYPE_PDF = "application/pdf"
)

// Message represents a single message in the conversation
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
