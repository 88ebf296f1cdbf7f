package service

import (
	"context"

	"github.com/tieubaoca/pdfchat/logger"
	"github.com/tieubaoca/pdfchat/repository"
	"github.com/tieubaoca/pdfchat/types"
)

type ChatService struct {
	documents repository.DocumentRepo
	aiService AIService
}

func NewChatService(documents repository.DocumentRepo, aiService AIService) *ChatService {
	return &ChatService{
		documents: documents,
		aiService: aiService,
	}
}

// Reply answers the last message of the conversation using the current
// document as context. The reply is returned as plain text.
func (s *ChatService) Reply(ctx context.Context, messages []types.Message) (string, error) {
	doc := s.documents.GetDocument()
	if !doc.HasText() {
		return "", ErrNoDocument
	}

	prompt := BuildPrompt(doc.Text, messages)
	if logger.DebugEnabled() {
		logger.Debug("chat_prompt_built",
			"messages", len(messages),
			"first_turn", IsFirstTurn(messages),
			"prompt_chars", len(prompt),
			"document", doc.Filename,
		)
	}

	raw, err := s.aiService.Generate(ctx, prompt)
	if err != nil {
		return "", &GenerationError{Err: err}
	}

	return StripMarkdown(raw), nil
}
