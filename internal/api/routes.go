package api

import "github.com/go-chi/chi/v5"

// RegisterRoutes registers all API routes on the router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/chat", h.Chat)

		r.Get("/products/search", h.SearchProducts)
		r.Get("/products/link", h.ProductLink)
		r.Get("/products/{slug}", h.GetProduct)
		r.Post("/products/batch", h.BatchGetProducts)

		r.Get("/bundles", h.ListBundles)
		r.Get("/bundles/{id}", h.GetBundle)
		r.Post("/bundles/suggest", h.SuggestComplementary)

		r.Get("/articles", h.ListArticles)
		r.Get("/articles/categories", h.ListArticleCategories)
		r.Get("/articles/{slug}", h.GetArticle)

		r.Get("/pages/{id}", h.GetPage)
	})
}
