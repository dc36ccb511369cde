package domain

// Bundle is a curated group of products marketed as working together for
// one health goal. Products holds member slugs in display order; a slug
// may reference a product that is not in the catalog, and lookups must
// tolerate that.
type Bundle struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Products    []string `json:"products"`
	Benefits    []string `json:"benefits"`
}
