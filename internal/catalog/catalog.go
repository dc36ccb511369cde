// Package catalog holds the static product catalog and the free-text
// product name resolver.
package catalog

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/swiftherb/swiftherb-server/data"
	"github.com/swiftherb/swiftherb-server/internal/domain"
)

// Catalog is the read-only product table, keyed by slug. It is loaded
// once at startup and never mutated afterwards, so lookups need no
// locking.
type Catalog struct {
	products map[string]domain.Product
	slugs    []string
}

// Load parses the embedded product dataset.
func Load() (*Catalog, error) {
	raw, err := data.FS.ReadFile("products.json")
	if err != nil {
		return nil, fmt.Errorf("read products data: %w", err)
	}

	var records map[string]domain.Product
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse products data: %w", err)
	}

	c := &Catalog{
		products: make(map[string]domain.Product, len(records)),
		slugs:    make([]string, 0, len(records)),
	}
	for slug, p := range records {
		p.Slug = slug
		c.products[slug] = p
		c.slugs = append(c.slugs, slug)
	}
	// Keep scan order deterministic across restarts.
	sort.Strings(c.slugs)

	return c, nil
}

// Get returns the product for a slug, if present.
func (c *Catalog) Get(slug string) (domain.Product, bool) {
	p, ok := c.products[slug]
	return p, ok
}

// All returns every product in slug order.
func (c *Catalog) All() []domain.Product {
	out := make([]domain.Product, 0, len(c.slugs))
	for _, slug := range c.slugs {
		out = append(out, c.products[slug])
	}
	return out
}

// Len returns the number of catalog records.
func (c *Catalog) Len() int {
	return len(c.products)
}

// Search returns products whose title or description contains the query,
// case-insensitively. Used by the catalog search endpoint; the chat flow
// goes through the Resolver instead.
func (c *Catalog) Search(query string) []domain.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []domain.Product
	for _, slug := range c.slugs {
		p := c.products[slug]
		if strings.Contains(strings.ToLower(p.Title), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			out = append(out, p)
		}
	}
	return out
}

var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9\s]+`)
	whitespace   = regexp.MustCompile(`\s+`)
)

// Normalize converts a free-text product name into slug form: lowercase,
// punctuation stripped, whitespace runs collapsed to single underscores.
// "Vitamin D3" and "vitamin_d3" normalize to the same slug.
func Normalize(name string) string {
	s := strings.ToLower(name)
	s = nonSlugChars.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	return whitespace.ReplaceAllString(s, "_")
}
