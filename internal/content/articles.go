// Package content serves the static editorial pages: the article
// library and the about/privacy/terms pages.
package content

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/swiftherb/swiftherb-server/data"
	"github.com/swiftherb/swiftherb-server/internal/domain"
)

// Articles is the in-memory article library, loaded once at startup.
type Articles struct {
	bySlug map[string]domain.Article
	slugs  []string
}

// LoadArticles parses the embedded article dataset.
func LoadArticles() (*Articles, error) {
	raw, err := data.FS.ReadFile("articles.json")
	if err != nil {
		return nil, fmt.Errorf("read articles data: %w", err)
	}

	var records map[string]domain.Article
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse articles data: %w", err)
	}

	a := &Articles{
		bySlug: make(map[string]domain.Article, len(records)),
		slugs:  make([]string, 0, len(records)),
	}
	for slug, article := range records {
		article.Slug = slug
		a.bySlug[slug] = article
		a.slugs = append(a.slugs, slug)
	}
	sort.Strings(a.slugs)

	return a, nil
}

// All returns every article in slug order.
func (a *Articles) All() []domain.Article {
	out := make([]domain.Article, 0, len(a.slugs))
	for _, slug := range a.slugs {
		out = append(out, a.bySlug[slug])
	}
	return out
}

// BySlug returns the article for a slug, if present.
func (a *Articles) BySlug(slug string) (domain.Article, bool) {
	article, ok := a.bySlug[slug]
	return article, ok
}

// ByCategory returns all articles in a category.
func (a *Articles) ByCategory(category string) []domain.Article {
	var out []domain.Article
	for _, article := range a.All() {
		if article.Category == category {
			out = append(out, article)
		}
	}
	return out
}

// ByTag returns all articles carrying a tag.
func (a *Articles) ByTag(tag string) []domain.Article {
	var out []domain.Article
	for _, article := range a.All() {
		for _, t := range article.Tags {
			if t == tag {
				out = append(out, article)
				break
			}
		}
	}
	return out
}

// Featured returns the most recently published articles, up to limit.
func (a *Articles) Featured(limit int) []domain.Article {
	all := a.All()
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].PublishedDate > all[j].PublishedDate
	})
	if len(all) > limit {
		all = all[:limit]
	}
	return all
}

// Related returns the articles an article links to, up to limit. An
// unknown slug yields nothing.
func (a *Articles) Related(slug string, limit int) []domain.Article {
	current, ok := a.bySlug[slug]
	if !ok {
		return nil
	}
	var out []domain.Article
	for _, related := range current.RelatedArticles {
		if related == slug {
			continue
		}
		if article, ok := a.bySlug[related]; ok {
			out = append(out, article)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}

// Categories returns the distinct article categories, sorted.
func (a *Articles) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, article := range a.All() {
		if !seen[article.Category] {
			seen[article.Category] = true
			out = append(out, article.Category)
		}
	}
	sort.Strings(out)
	return out
}

// Tags returns the distinct article tags, sorted.
func (a *Articles) Tags() []string {
	seen := make(map[string]bool)
	var out []string
	for _, article := range a.All() {
		for _, tag := range article.Tags {
			if !seen[tag] {
				seen[tag] = true
				out = append(out, tag)
			}
		}
	}
	sort.Strings(out)
	return out
}
