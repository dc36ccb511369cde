package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/swiftherb/swiftherb-server/internal/domain"
)

// ListBundles returns all bundles, optionally filtered by category.
func (h *Handler) ListBundles(w http.ResponseWriter, r *http.Request) {
	if category := r.URL.Query().Get("category"); category != "" {
		bundles := h.bundles.ByCategory(category)
		if bundles == nil {
			bundles = []domain.Bundle{}
		}
		JSON(w, http.StatusOK, map[string]interface{}{"bundles": bundles})
		return
	}
	JSON(w, http.StatusOK, map[string]interface{}{"bundles": h.bundles.All()})
}

// GetBundle returns one bundle by id.
func (h *Handler) GetBundle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	b, ok := h.bundles.ByID(id)
	if !ok {
		Error(w, http.StatusNotFound, "bundle not found")
		return
	}
	JSON(w, http.StatusOK, b)
}

type suggestRequest struct {
	Slugs []string `json:"slugs"`
}

// SuggestComplementary returns complementary products for a set of
// already-chosen product slugs. Suggested slugs missing from the
// catalog are dropped.
func (h *Handler) SuggestComplementary(w http.ResponseWriter, r *http.Request) {
	var req suggestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Slugs) == 0 {
		Error(w, http.StatusBadRequest, "slugs required")
		return
	}

	suggestions := []domain.Product{}
	for _, slug := range h.bundles.SuggestComplementary(req.Slugs) {
		if p, ok := h.catalog.Get(slug); ok {
			suggestions = append(suggestions, p)
		}
	}
	JSON(w, http.StatusOK, map[string]interface{}{"suggestions": h.withLinks(suggestions)})
}
