package transcribe

import (
	"context"
	"fmt"
	"strings"

	"movebot/utils"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// WhisperTranscriber uses the OpenAI audio transcription API.
type WhisperTranscriber struct {
	client *openai.Client
	model  string
}

// NewWhisperTranscriber builds a transcriber. model defaults to
// gpt-4o-mini-transcribe with a whisper-1 fallback when the preferred model is
// unavailable.
func NewWhisperTranscriber(apiKey, model string) (*WhisperTranscriber, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	if model == "" {
		model = "gpt-4o-mini-transcribe"
	}
	return &WhisperTranscriber{
		client: openai.NewClient(apiKey),
		model:  model,
	}, nil
}

func (t *WhisperTranscriber) Transcribe(ctx context.Context, path string, mimeType string) (string, error) {
	if !AllowedMIME[mimeType] {
		return "", fmt.Errorf("unsupported audio MIME type: %s", mimeType)
	}

	models := []string{t.model}
	if t.model != string(openai.Whisper1) {
		models = append(models, string(openai.Whisper1))
	}

	var lastErr error
	for _, model := range models {
		resp, err := t.client.CreateTranscription(ctx, openai.AudioRequest{
			Model:    model,
			FilePath: path,
		})
		if err != nil {
			lastErr = err
			utils.GetLogger().Warn("Transcription model failed",
				zap.String("model", model), zap.Error(err))
			continue
		}
		text := strings.TrimSpace(resp.Text)
		if text == "" {
			lastErr = fmt.Errorf("empty transcription result")
			continue
		}
		return text, nil
	}
	return "", fmt.Errorf("transcription failed: %w", lastErr)
}
