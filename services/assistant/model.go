package assistant

import (
	"context"
	"strings"
	"sync"
	"time"

	"movebot/models"

	openai "github.com/sashabaranov/go-openai"
)

// ChatModel produces the next assistant turn for a transcript.
type ChatModel interface {
	Complete(ctx context.Context, messages []models.Message) (string, error)
}

// cooldownState tracks a shared backoff window after quota or rate-limit
// failures so subsequent requests skip the model entirely.
type cooldownState struct {
	mu    sync.Mutex
	until time.Time
}

// Remaining returns the seconds left in the window, zero when inactive.
func (c *cooldownState) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if remaining := time.Until(c.until); remaining > 0 {
		return int(remaining.Seconds())
	}
	return 0
}

// Trip opens a cooldown window sized by the failure kind: 60s for exhausted
// quota, 30s for rate limiting, none otherwise.
func (c *cooldownState) Trip(err error) {
	if err == nil {
		return
	}
	text := strings.ToLower(err.Error())
	var window time.Duration
	switch {
	case strings.Contains(text, "quota"):
		window = 60 * time.Second
	case strings.Contains(text, "rate limit"):
		window = 30 * time.Second
	default:
		return
	}
	c.mu.Lock()
	c.until = time.Now().Add(window)
	c.mu.Unlock()
}

func isThrottleErr(err error) bool {
	if err == nil {
		return false
	}
	text := strings.ToLower(err.Error())
	return strings.Contains(text, "rate limit") || strings.Contains(text, "quota")
}

// OpenAIChatModel calls the chat completions API, trying the configured model
// first and falling back to cheaper ones on failure.
type OpenAIChatModel struct {
	client    *openai.Client
	preferred string
}

func NewOpenAIChatModel(apiKey, preferredModel string) *OpenAIChatModel {
	return &OpenAIChatModel{
		client:    openai.NewClient(apiKey),
		preferred: preferredModel,
	}
}

const completionTimeout = 25 * time.Second

func (m *OpenAIChatModel) candidates() []string {
	candidates := []string{openai.GPT4oMini, openai.GPT3Dot5Turbo}
	if m.preferred != "" {
		candidates = append([]string{m.preferred}, candidates...)
	}
	return candidates
}

func (m *OpenAIChatModel) Complete(ctx context.Context, messages []models.Message) (string, error) {
	wire := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, msg := range messages {
		wire = append(wire, openai.ChatCompletionMessage{Role: msg.Role, Content: msg.Content})
	}

	var lastErr error
	for _, model := range m.candidates() {
		callCtx, cancel := context.WithTimeout(ctx, completionTimeout)
		resp, err := m.client.CreateChatCompletion(callCtx, openai.ChatCompletionRequest{
			Model:       model,
			Messages:    wire,
			Temperature: 0.7,
			MaxTokens:   180,
		})
		cancel()
		if err != nil {
			lastErr = err
			if isThrottleErr(err) {
				// Short backoff before trying the next candidate.
				time.Sleep(1200 * time.Millisecond)
			}
			continue
		}
		if len(resp.Choices) > 0 {
			return resp.Choices[0].Message.Content, nil
		}
	}
	return "", lastErr
}

// extract runs a one-shot low-temperature completion, used for structured
// extraction rather than conversation.
func (m *OpenAIChatModel) extract(ctx context.Context, prompt string) (string, error) {
	model := m.preferred
	if model == "" {
		model = openai.GPT4oMini
	}
	callCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	resp, err := m.client.CreateChatCompletion(callCtx, openai.ChatCompletionRequest{
		Model:       model,
		Messages:    []openai.ChatCompletionMessage{{Role: openai.ChatMessageRoleUser, Content: prompt}},
		Temperature: 0.1,
		MaxTokens:   500,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
