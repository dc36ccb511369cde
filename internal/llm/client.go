// Package llm wraps the hosted chat-completion API that generates
// assistant replies.
package llm

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/swiftherb/swiftherb-server/internal/domain"
)

// Generation parameters fixed by the product: creative but bounded
// replies, long enough for a full wellness stack.
const (
	temperature = 0.8
	maxTokens   = 2000
)

// DefaultTimeout bounds a single completion call so upstream stalls
// cannot hold a request open indefinitely.
const DefaultTimeout = 10 * time.Second

// Completer is the completion collaborator the orchestrator depends on.
type Completer interface {
	// Complete generates a reply to userMessage given the system
	// instruction and prior conversation turns.
	Complete(ctx context.Context, system string, history []domain.Message, userMessage string) (string, error)
}

// Client calls an OpenAI-compatible chat-completion endpoint (DeepSeek
// in production).
type Client struct {
	llm   *openai.LLM
	model string
}

// Compile-time check that Client implements Completer.
var _ Completer = (*Client)(nil)

// NewClient creates a completion client. baseURL points at the
// provider's OpenAI-compatible API root. A non-positive timeout falls
// back to DefaultTimeout.
func NewClient(apiKey, baseURL, model string, timeout time.Duration) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("completion API key required")
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	model2, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithModel(model),
		openai.WithBaseURL(baseURL),
		openai.WithHTTPClient(&http.Client{Timeout: timeout}),
	)
	if err != nil {
		return nil, fmt.Errorf("create completion client: %w", err)
	}

	return &Client{llm: model2, model: model}, nil
}

// Model returns the configured model name.
func (c *Client) Model() string {
	return c.model
}

// Complete sends the transcript to the completion API and returns the
// generated text. A response without content is an error; the caller
// decides whether to retry.
func (c *Client) Complete(ctx context.Context, system string, history []domain.Message, userMessage string) (string, error) {
	content := make([]llms.MessageContent, 0, len(history)+2)
	content = append(content, llms.TextParts(llms.ChatMessageTypeSystem, system))
	for _, msg := range history {
		role := llms.ChatMessageTypeHuman
		if msg.Role == domain.RoleAssistant {
			role = llms.ChatMessageTypeAI
		}
		content = append(content, llms.TextParts(role, msg.Content))
	}
	content = append(content, llms.TextParts(llms.ChatMessageTypeHuman, userMessage))

	resp, err := c.llm.GenerateContent(ctx, content,
		llms.WithTemperature(temperature),
		llms.WithMaxTokens(maxTokens),
	)
	if err != nil {
		return "", fmt.Errorf("completion call: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Content == "" {
		return "", fmt.Errorf("empty completion response")
	}

	return resp.Choices[0].Content, nil
}
