package types

type ChatRequest struct {
	Messages []ChatMessage `json:"messages" binding:"required,min=1,dive"`
}

// ChatMessage is a message as received on the wire. Pointer fields let
// validation tell a missing field apart from an empty string.
type ChatMessage struct {
	Role    *string `json:"role" binding:"required"`
	Content *string `json:"content" binding:"required"`
}

func NewChatRequest(messages ...Message) ChatRequest {
	req := ChatRequest{Messages: make([]ChatMessage, len(messages))}
	for i := range messages {
		req.Messages[i] = ChatMessage{Role: &messages[i].Role, Content: &messages[i].Content}
	}
	return req
}

// ToMessages converts a validated request into conversation messages.
func (r ChatRequest) ToMessages() []Message {
	messages := make([]Message, 0, len(r.Messages))
	for _, m := range r.Messages {
		var msg Message
		if m.Role != nil {
			msg.Role = *m.Role
		}
		if m.Content != nil {
			msg.Content = *m.Content
		}
		messages = append(messages, msg)
	}
	return messages
}

type ChatResponse struct {
	Response string `json:"response"`
}
