package service

import (
	"fmt"
	"strings"

	"github.com/tieubaoca/pdfchat/types"
)

const persona = `You are the user's fabulous, smart bestie who always explains things in a fun and easy-to-understand way. You just read the whole PDF for them because you're iconic like that 💁‍♀️ Now you're gonna break it down — no boring details, just the juicy tea.`

const firstTurnTemplate = persona + `

Here's the PDF:'%s'

And here's the question:
'%s'`

const continuationTemplate = persona + `

Here's the PDF:'%s'

Now continue the conversation:
%s

Answer as if you're replying to the last user message.`

// IsFirstTurn reports whether the conversation is a single opening user message.
func IsFirstTurn(messages []types.Message) bool {
	return len(messages) == 1 && messages[0].Role == types.ROLE_USER
}

// BuildPrompt embeds the document text and the conversation into the prompt
// sent to the model.
func BuildPrompt(documentText string, messages []types.Message) string {
	if IsFirstTurn(messages) {
		return fmt.Sprintf(firstTurnTemplate, documentText, messages[0].Content)
	}
	return fmt.Sprintf(continuationTemplate, documentText, Transcript(messages))
}

// Transcript renders the conversation one line per message, user turns as
// "You" and everything else as "Me".
func Transcript(messages []types.Message) string {
	var b strings.Builder
	for _, msg := range messages {
		prefix := "Me"
		if msg.Role == types.ROLE_USER {
			prefix = "You"
		}
		fmt.Fprintf(&b, "%s: %s\n", prefix, msg.Content)
	}
	return b.String()
}
