// Package api provides HTTP handlers for the SwiftHerb API.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/swiftherb/swiftherb-server/internal/affiliate"
	"github.com/swiftherb/swiftherb-server/internal/assistant"
	"github.com/swiftherb/swiftherb-server/internal/bundle"
	"github.com/swiftherb/swiftherb-server/internal/catalog"
	"github.com/swiftherb/swiftherb-server/internal/content"
	"github.com/swiftherb/swiftherb-server/internal/domain"
	"github.com/swiftherb/swiftherb-server/internal/store"
)

// Handler bundles the shared dependencies of the API endpoints.
type Handler struct {
	repo     store.Repository
	catalog  *catalog.Catalog
	bundles  *bundle.Catalog
	articles *content.Articles
	pages    *content.Pages
	links    *affiliate.LinkBuilder
	svc      *assistant.Service
}

// NewHandler creates a new Handler with common dependencies.
func NewHandler(
	repo store.Repository,
	products *catalog.Catalog,
	bundles *bundle.Catalog,
	articles *content.Articles,
	pages *content.Pages,
	links *affiliate.LinkBuilder,
	svc *assistant.Service,
) *Handler {
	return &Handler{
		repo:     repo,
		catalog:  products,
		bundles:  bundles,
		articles: articles,
		pages:    pages,
		links:    links,
		svc:      svc,
	}
}

// withLinks returns a copy of the records with each affiliate URL
// filled from its title. The input slice is left untouched; callers may
// be handing over shared catalog or cache state.
func (h *Handler) withLinks(products []domain.Product) []domain.Product {
	if products == nil {
		return nil
	}
	out := make([]domain.Product, len(products))
	copy(out, products)
	for i := range out {
		out[i].URL = h.links.Link(out[i].Title)
	}
	return out
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}
