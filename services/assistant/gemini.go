package assistant

import (
	"context"
	"fmt"
	"strings"

	"movebot/models"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiChatModel is an alternate chat backend selected via CHAT_PROVIDER.
type GeminiChatModel struct {
	model *genai.GenerativeModel
}

func NewGeminiChatModel(ctx context.Context, apiKey string) (*GeminiChatModel, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiChatModel{model: client.GenerativeModel("models/gemini-1.5-pro")}, nil
}

func (g *GeminiChatModel) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String(), nil
}

// Complete flattens the transcript into a single prompt. Gemini keeps system
// guidance inline rather than as a dedicated role.
func (g *GeminiChatModel) Complete(ctx context.Context, messages []models.Message) (string, error) {
	var sb strings.Builder
	for _, msg := range messages {
		switch msg.Role {
		case models.RoleSystem:
			sb.WriteString(msg.Content)
			sb.WriteString("\n\n")
		case models.RoleUser:
			sb.WriteString("Customer: " + msg.Content + "\n")
		case models.RoleAssistant:
			sb.WriteString("Assistant: " + msg.Content + "\n")
		}
	}
	sb.WriteString("Assistant:")
	return g.generate(ctx, sb.String())
}

func (g *GeminiChatModel) extract(ctx context.Context, prompt string) (string, error) {
	return g.generate(ctx, prompt)
}
