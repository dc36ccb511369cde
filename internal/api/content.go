package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/swiftherb/swiftherb-server/internal/domain"
)

// ListArticles returns article summaries, optionally filtered by
// category or tag. Filters compose narrowest-first: tag wins over
// category when both are given.
func (h *Handler) ListArticles(w http.ResponseWriter, r *http.Request) {
	var articles []domain.Article
	switch {
	case r.URL.Query().Get("tag") != "":
		articles = h.articles.ByTag(r.URL.Query().Get("tag"))
	case r.URL.Query().Get("category") != "":
		articles = h.articles.ByCategory(r.URL.Query().Get("category"))
	default:
		articles = h.articles.All()
	}
	if articles == nil {
		articles = []domain.Article{}
	}
	JSON(w, http.StatusOK, map[string]interface{}{"articles": articles})
}

// GetArticle returns one article by slug, with its related articles and
// the catalog records for its related products.
func (h *Handler) GetArticle(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	article, ok := h.articles.BySlug(slug)
	if !ok {
		Error(w, http.StatusNotFound, "article not found")
		return
	}

	related := h.articles.Related(slug, 3)
	if related == nil {
		related = []domain.Article{}
	}

	products := []domain.Product{}
	for _, ps := range article.RelatedProducts {
		if p, ok := h.catalog.Get(ps); ok {
			products = append(products, p)
		}
	}

	JSON(w, http.StatusOK, map[string]interface{}{
		"article":         article,
		"relatedArticles": related,
		"relatedProducts": h.withLinks(products),
	})
}

// ListArticleCategories returns the distinct article categories.
func (h *Handler) ListArticleCategories(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, map[string]interface{}{"categories": h.articles.Categories()})
}

// GetPage returns a static site page (about, privacy, terms).
func (h *Handler) GetPage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	page, ok := h.pages.Get(id)
	if !ok {
		Error(w, http.StatusNotFound, "page not found")
		return
	}
	JSON(w, http.StatusOK, page)
}
