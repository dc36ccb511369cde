// Package domain contains the core value types shared across the server.
package domain

// Product is a single catalog record. Records are loaded once at process
// start and treated as immutable; the resolver and handlers work with
// copies, never with pointers into the catalog.
type Product struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Price       string `json:"price"`
	Image       string `json:"image"`
	Description string `json:"description"`
	Category    string `json:"category"`
	// URL is the affiliate deep link, filled in at response time.
	URL string `json:"url,omitempty"`
}
