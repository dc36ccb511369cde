// Package bundle holds the curated wellness bundles and the
// complementary product suggester.
package bundle

import (
	"encoding/json"
	"fmt"

	"github.com/swiftherb/swiftherb-server/data"
	"github.com/swiftherb/swiftherb-server/internal/domain"
)

// maxSuggestions caps how many complementary slugs a single suggestion
// pass returns.
const maxSuggestions = 5

// Catalog is the read-only bundle table. Bundles keep their curated
// order from the dataset; suggestion walks depend on it. Loaded once at
// startup, never mutated.
type Catalog struct {
	bundles []domain.Bundle
	byID    map[string]domain.Bundle
}

// Load parses the embedded bundle dataset.
func Load() (*Catalog, error) {
	raw, err := data.FS.ReadFile("bundles.json")
	if err != nil {
		return nil, fmt.Errorf("read bundles data: %w", err)
	}

	var records []domain.Bundle
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse bundles data: %w", err)
	}

	c := &Catalog{
		bundles: records,
		byID:    make(map[string]domain.Bundle, len(records)),
	}
	for _, b := range records {
		c.byID[b.ID] = b
	}

	return c, nil
}

// ByID returns the bundle with the given id, if present.
func (c *Catalog) ByID(id string) (domain.Bundle, bool) {
	b, ok := c.byID[id]
	return b, ok
}

// All returns every bundle in curated order.
func (c *Catalog) All() []domain.Bundle {
	out := make([]domain.Bundle, len(c.bundles))
	copy(out, c.bundles)
	return out
}

// ByCategory returns bundles in the given category.
func (c *Catalog) ByCategory(category string) []domain.Bundle {
	var out []domain.Bundle
	for _, b := range c.bundles {
		if b.Category == category {
			out = append(out, b)
		}
	}
	return out
}

// FindWithProducts returns every bundle containing at least one of the
// given product slugs, in curated order.
func (c *Catalog) FindWithProducts(slugs []string) []domain.Bundle {
	want := make(map[string]bool, len(slugs))
	for _, s := range slugs {
		want[s] = true
	}

	var out []domain.Bundle
	for _, b := range c.bundles {
		for _, member := range b.Products {
			if want[member] {
				out = append(out, b)
				break
			}
		}
	}
	return out
}

// SuggestComplementary returns up to five slugs that co-occur with the
// given products in a bundle but are not among them. Walks matching
// bundles in curated order and their members in display order; first
// seen wins, no scoring. A bundle member may reference a slug that is
// not in the product catalog; callers must tolerate lookup misses.
func (c *Catalog) SuggestComplementary(currentSlugs []string) []string {
	seen := make(map[string]bool, len(currentSlugs))
	for _, s := range currentSlugs {
		seen[s] = true
	}

	var suggestions []string
	for _, b := range c.FindWithProducts(currentSlugs) {
		for _, member := range b.Products {
			if seen[member] {
				continue
			}
			seen[member] = true
			suggestions = append(suggestions, member)
			if len(suggestions) == maxSuggestions {
				return suggestions
			}
		}
	}
	return suggestions
}
