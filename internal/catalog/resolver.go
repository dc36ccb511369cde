package catalog

import (
	"sort"
	"strings"

	"github.com/swiftherb/swiftherb-server/internal/domain"
)

// Resolver matches free-text product names (as extracted from assistant
// output) against the catalog.
type Resolver struct {
	catalog *Catalog
}

// NewResolver creates a resolver over the given catalog.
func NewResolver(c *Catalog) *Resolver {
	return &Resolver{catalog: c}
}

// minScore is the cutoff below which a fuzzy match is discarded.
const minScore = 0.5

type scoredProduct struct {
	product domain.Product
	score   float64
}

// Resolve matches each name against the catalog and returns the matched
// products ordered by match score, highest first. Each product id is
// emitted at most once; ties keep discovery order. Unknown names simply
// produce no results.
//
// Per name, the strategies are tried in order:
//   - exact slug match of the normalized name (score 1.0, stops there);
//   - name is a substring of the title (0.9);
//   - any whitespace token of the name appears in the title (0.7);
//   - token-overlap similarity against title and slug, keeping matches
//     above the cutoff.
func (r *Resolver) Resolve(names []string) []domain.Product {
	var found []scoredProduct
	seen := make(map[string]bool)

	for _, name := range names {
		nameLower := strings.ToLower(name)

		if p, ok := r.catalog.Get(Normalize(name)); ok {
			if !seen[p.ID] {
				found = append(found, scoredProduct{product: p, score: 1.0})
				seen[p.ID] = true
			}
			continue
		}

		for _, p := range r.catalog.All() {
			if seen[p.ID] {
				continue
			}

			titleLower := strings.ToLower(p.Title)
			var score float64
			switch {
			case strings.Contains(titleLower, nameLower):
				score = 0.9
			case anyTokenMatches(nameLower, titleLower):
				score = 0.7
			default:
				score = max(similarity(nameLower, titleLower), similarity(nameLower, p.Slug))
			}

			if score > minScore {
				found = append(found, scoredProduct{product: p, score: score})
				seen[p.ID] = true
			}
		}
	}

	sort.SliceStable(found, func(i, j int) bool {
		return found[i].score > found[j].score
	})

	out := make([]domain.Product, len(found))
	for i, f := range found {
		out[i] = f.product
	}
	return out
}

// anyTokenMatches reports whether any whitespace-delimited token of name
// appears as a substring of title.
func anyTokenMatches(name, title string) bool {
	for _, tok := range strings.Fields(name) {
		if strings.Contains(title, tok) {
			return true
		}
	}
	return false
}

// similarity scores two strings in [0, 1]. Containment of the shorter
// string in the longer one scores 0.8; otherwise the score is the share
// of the shorter string's tokens that overlap a token of the longer one.
func similarity(a, b string) float64 {
	longer, shorter := a, b
	if len(b) > len(a) {
		longer, shorter = b, a
	}
	if len(longer) == 0 {
		return 1.0
	}

	if strings.Contains(strings.ToLower(longer), strings.ToLower(shorter)) {
		return 0.8
	}

	longerWords := strings.Fields(strings.ToLower(longer))
	shorterWords := strings.Fields(strings.ToLower(shorter))

	matches := 0
	for _, word := range shorterWords {
		for _, lw := range longerWords {
			if strings.Contains(lw, word) || strings.Contains(word, lw) {
				matches++
				break
			}
		}
	}

	denom := len(shorterWords)
	if denom < 1 {
		denom = 1
	}
	return float64(matches) / float64(denom)
}
