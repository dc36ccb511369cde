package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/swiftherb/swiftherb-server/internal/domain"
)

// GetProduct returns one product by slug. The store is consulted first;
// the embedded catalog backfills when the store has no record.
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	if h.repo != nil {
		p, err := h.repo.GetProduct(r.Context(), slug)
		if err != nil {
			slog.Error("Product lookup failed", "error", err, "slug", slug)
			Error(w, http.StatusInternalServerError, "product lookup failed")
			return
		}
		if p != nil {
			p.URL = h.links.Link(p.Title)
			JSON(w, http.StatusOK, p)
			return
		}
	}

	if p, ok := h.catalog.Get(slug); ok {
		p.URL = h.links.Link(p.Title)
		JSON(w, http.StatusOK, p)
		return
	}
	Error(w, http.StatusNotFound, "product not found")
}

type batchRequest struct {
	Slugs []string `json:"slugs"`
}

// BatchGetProducts returns products for a list of slugs. Misses are
// omitted and the response preserves request order.
func (h *Handler) BatchGetProducts(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if h.repo != nil {
		products, err := h.repo.BatchGetProducts(r.Context(), req.Slugs)
		if err == nil {
			JSON(w, http.StatusOK, map[string]interface{}{"products": h.withLinks(products)})
			return
		}
		slog.Warn("Batch store lookup failed, using catalog", "error", err)
	}

	products := make([]domain.Product, 0, len(req.Slugs))
	for _, slug := range req.Slugs {
		if p, ok := h.catalog.Get(slug); ok {
			products = append(products, p)
		}
	}
	JSON(w, http.StatusOK, map[string]interface{}{"products": h.withLinks(products)})
}

// SearchProducts returns catalog records matching a free-text query.
func (h *Handler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		Error(w, http.StatusBadRequest, "missing query parameter q")
		return
	}

	products := h.catalog.Search(q)
	if products == nil {
		products = []domain.Product{}
	}
	JSON(w, http.StatusOK, map[string]interface{}{"products": h.withLinks(products)})
}

// ProductLink returns the affiliate deep link for a search keyword.
func (h *Handler) ProductLink(w http.ResponseWriter, r *http.Request) {
	kw := r.URL.Query().Get("kw")
	if kw == "" {
		Error(w, http.StatusBadRequest, "missing query parameter kw")
		return
	}
	JSON(w, http.StatusOK, map[string]string{"url": h.links.Link(kw)})
}
