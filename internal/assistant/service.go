package assistant

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/swiftherb/swiftherb-server/internal/affiliate"
	"github.com/swiftherb/swiftherb-server/internal/bundle"
	"github.com/swiftherb/swiftherb-server/internal/cache"
	"github.com/swiftherb/swiftherb-server/internal/catalog"
	"github.com/swiftherb/swiftherb-server/internal/domain"
	"github.com/swiftherb/swiftherb-server/internal/llm"
	"github.com/swiftherb/swiftherb-server/internal/store"
)

const maxAttempts = 3

// DefaultResponseTTL is how long assembled responses stay cached.
const DefaultResponseTTL = 5 * time.Minute

// Service assembles chat responses. It owns the safety short-circuit,
// the response cache, retries around the completion call, and the
// product resolution pipeline.
type Service struct {
	completer llm.Completer
	cache     *cache.Cache[ChatResponse]
	resolver  *catalog.Resolver
	catalog   *catalog.Catalog
	bundles   *bundle.Catalog
	repo      store.Repository
	links     *affiliate.LinkBuilder
	logger    *slog.Logger
	ttl       time.Duration

	// backoffBase scales the retry delays. Tests shrink it.
	backoffBase time.Duration
}

// NewService creates the orchestrator. repo may be nil; product records
// then come from the in-memory catalog alone.
func NewService(
	completer llm.Completer,
	responseCache *cache.Cache[ChatResponse],
	resolver *catalog.Resolver,
	products *catalog.Catalog,
	bundles *bundle.Catalog,
	repo store.Repository,
	links *affiliate.LinkBuilder,
	logger *slog.Logger,
) *Service {
	return &Service{
		completer:   completer,
		cache:       responseCache,
		resolver:    resolver,
		catalog:     products,
		bundles:     bundles,
		repo:        repo,
		links:       links,
		logger:      logger,
		ttl:         DefaultResponseTTL,
		backoffBase: time.Second,
	}
}

// SetResponseTTL overrides how long responses stay cached. Non-positive
// values are ignored.
func (s *Service) SetResponseTTL(ttl time.Duration) {
	if ttl > 0 {
		s.ttl = ttl
	}
}

// Respond produces the reply for a user message given the prior
// conversation. Failures of the completion API degrade into a fixed
// user-facing message; Respond itself only errors when the context is
// done.
func (s *Service) Respond(ctx context.Context, messages []domain.Message, userMessage string) (ChatResponse, error) {
	if isEmergency(userMessage) {
		s.logger.Warn("emergency keyword detected, short-circuiting")
		return ChatResponse{Content: emergencyMessage}, nil
	}

	key := cache.Key(messages, userMessage)
	if cached, ok := s.cache.Get(key); ok {
		s.logger.Debug("cache hit", "key", key)
		return cached, nil
	}

	content, err := s.complete(ctx, messages, userMessage)
	if err != nil {
		if ctx.Err() != nil {
			return ChatResponse{}, ctx.Err()
		}
		s.logger.Error("completion failed after retries", "error", err)
		return ChatResponse{Content: degradedMessage(err)}, nil
	}

	products := s.decorate(s.resolveProducts(ctx, content))

	// Records are fully assembled, affiliate links included, before the
	// cache store; the cached value is never written to afterwards.
	resp := ChatResponse{Content: content, Products: products}

	// Bundle suggestions are derived per request and never cached.
	s.cache.Set(key, resp, s.ttl)

	if len(products) > 0 && hasBundleIntent(userMessage) {
		resp.BundleSuggestions = s.decorate(s.suggestComplementary(products))
	}

	return resp, nil
}

// decorate fills each record's affiliate URL from its title, as the
// storefront does when rendering a product card.
func (s *Service) decorate(products []domain.Product) []domain.Product {
	if s.links == nil {
		return products
	}
	for i := range products {
		products[i].URL = s.links.Link(products[i].Title)
	}
	return products
}

// complete calls the completion API with bounded retries. Transient
// failures back off 1s then 2s; authentication failures are permanent
// and stop immediately.
func (s *Service) complete(ctx context.Context, messages []domain.Message, userMessage string) (string, error) {
	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		content, err := s.completer.Complete(ctx, systemPrompt, messages, userMessage)
		if err == nil {
			return content, nil
		}
		lastErr = err

		if llm.IsAuthError(err) {
			return "", err
		}
		if attempt == maxAttempts-1 {
			break
		}

		delay := s.backoffBase << attempt
		s.logger.Warn("completion attempt failed, retrying",
			"attempt", attempt+1, "delay", delay, "error", err)
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return "", lastErr
}

// resolveProducts extracts bracketed mentions from generated text and
// resolves them to catalog records, preferring the product store's copy
// of each record when available.
func (s *Service) resolveProducts(ctx context.Context, content string) []domain.Product {
	names := ExtractProductNames(content)
	if len(names) == 0 {
		return nil
	}

	products := s.resolver.Resolve(names)
	if len(products) == 0 || s.repo == nil {
		return products
	}

	slugs := make([]string, len(products))
	for i, p := range products {
		slugs[i] = p.Slug
	}

	stored, err := s.repo.BatchGetProducts(ctx, slugs)
	if err != nil {
		s.logger.Warn("product store lookup failed, using catalog records", "error", err)
		return products
	}

	bySlug := make(map[string]domain.Product, len(stored))
	for _, p := range stored {
		bySlug[p.Slug] = p
	}
	for i, p := range products {
		if fresh, ok := bySlug[p.Slug]; ok {
			products[i] = fresh
		}
	}
	return products
}

// suggestComplementary maps resolved products to complementary bundle
// members and resolves those back to catalog records. Bundle members
// referencing unknown slugs are skipped.
func (s *Service) suggestComplementary(products []domain.Product) []domain.Product {
	slugs := make([]string, len(products))
	for i, p := range products {
		slugs[i] = p.Slug
	}

	var out []domain.Product
	for _, slug := range s.bundles.SuggestComplementary(slugs) {
		if p, ok := s.catalog.Get(slug); ok {
			out = append(out, p)
		}
	}
	return out
}

func isEmergency(userMessage string) bool {
	lower := strings.ToLower(userMessage)
	for _, kw := range emergencyKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func hasBundleIntent(userMessage string) bool {
	lower := strings.ToLower(userMessage)
	for _, phrase := range bundleIntentPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// degradedMessage picks the user-facing reply for an exhausted or
// non-retryable completion failure.
func degradedMessage(err error) string {
	switch {
	case llm.IsAuthError(err):
		return degradedAuthMessage
	case llm.IsRateLimitError(err):
		return degradedRateLimitMessage
	default:
		return degradedGenericMessage
	}
}
