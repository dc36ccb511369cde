// Package assistant orchestrates chat responses: safety checks, response
// caching, the completion call with retries, and product resolution.
package assistant

import "github.com/swiftherb/swiftherb-server/internal/domain"

// ChatRequest is the caller-facing chat input.
type ChatRequest struct {
	Messages    []domain.Message `json:"messages"`
	UserMessage string           `json:"userMessage"`
}

// ChatResponse is the assembled reply. Products are the catalog records
// behind the reply's bracketed mentions; BundleSuggestions are
// complementary products attached when the user asks to complete a
// stack.
type ChatResponse struct {
	Content           string           `json:"content"`
	Products          []domain.Product `json:"products,omitempty"`
	BundleSuggestions []domain.Product `json:"bundleSuggestions,omitempty"`
}
