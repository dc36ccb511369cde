package domain

// PageSection is one heading + body block of a static page.
type PageSection struct {
	Heading string `json:"heading"`
	Content string `json:"content"`
}

// PageContent holds a static page (about, privacy, terms).
type PageContent struct {
	Title       string        `json:"title"`
	LastUpdated string        `json:"lastUpdated,omitempty"`
	Sections    []PageSection `json:"sections"`
}
