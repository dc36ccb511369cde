package domain

// ArticleAuthor describes who wrote an article.
type ArticleAuthor struct {
	Name   string `json:"name"`
	Bio    string `json:"bio"`
	Avatar string `json:"avatar"`
}

// ArticleSection is one heading + body block of an article.
type ArticleSection struct {
	Heading string `json:"heading"`
	Content string `json:"content"`
}

// Article is a static content page loaded from the embedded article data.
type Article struct {
	ID              string           `json:"id"`
	Title           string           `json:"title"`
	Slug            string           `json:"slug"`
	Excerpt         string           `json:"excerpt"`
	Author          ArticleAuthor    `json:"author"`
	PublishedDate   string           `json:"publishedDate"`
	LastUpdated     string           `json:"lastUpdated,omitempty"`
	Category        string           `json:"category"`
	Tags            []string         `json:"tags"`
	ReadTime        string           `json:"readTime"`
	FeaturedImage   string           `json:"featuredImage"`
	Sections        []ArticleSection `json:"sections"`
	RelatedProducts []string         `json:"relatedProducts"`
	RelatedArticles []string         `json:"relatedArticles"`
}
