package llm

import (
	"context"

	"github.com/swiftherb/swiftherb-server/internal/domain"
)

// devFallback is served when no API key is configured so the rest of
// the pipeline stays exercisable in development.
const devFallback = "I understand you're asking about health concerns. To provide accurate recommendations, please configure the DEEPSEEK_API_KEY environment variable. Get your API key at https://platform.deepseek.com. For now, I'd suggest looking into [[Magnesium Glycinate]] for general wellness support."

// Unconfigured is the Completer used when no API key is set. It always
// returns a fixed development reply.
type Unconfigured struct{}

var _ Completer = Unconfigured{}

// Complete returns the development fallback reply.
func (Unconfigured) Complete(ctx context.Context, system string, history []domain.Message, userMessage string) (string, error) {
	return devFallback, nil
}
