package usecase

import (
	"rev-chat-relay/internal/chat"
	"rev-chat-relay/internal/model"
	"rev-chat-relay/pkg/gemini"
)

// buildRequest lays out the outbound contents: the persona as a user turn,
// then history, then the new message.
func (uc *implUseCase) buildRequest(history []model.Turn, message string) gemini.GenerateRequest {
	contents := make([]gemini.Content, 0, len(history)+2)
	contents = append(contents, textContent(gemini.RoleUser, uc.systemInstruction))
	for _, t := range history {
		contents = append(contents, textContent(wireRole(t.Role), t.Text))
	}
	contents = append(contents, textContent(gemini.RoleUser, message))

	return gemini.GenerateRequest{
		Contents: contents,
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:     chat.Temperature,
			TopK:            chat.TopK,
			TopP:            chat.TopP,
			MaxOutputTokens: chat.MaxOutputTokens,
		},
	}
}

func textContent(role, text string) gemini.Content {
	return gemini.Content{Role: role, Parts: []gemini.Part{{Text: text}}}
}

func wireRole(r model.Role) string {
	if r == model.RoleAssistant {
		return gemini.RoleModel
	}
	return gemini.RoleUser
}
