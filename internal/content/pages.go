package content

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/swiftherb/swiftherb-server/data"
	"github.com/swiftherb/swiftherb-server/internal/domain"
)

// Pages holds the static site pages (about, privacy, terms) keyed by id.
type Pages struct {
	byID map[string]domain.PageContent
}

// LoadPages parses the embedded page dataset.
func LoadPages() (*Pages, error) {
	raw, err := data.FS.ReadFile("pages.json")
	if err != nil {
		return nil, fmt.Errorf("read pages data: %w", err)
	}

	var records map[string]domain.PageContent
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse pages data: %w", err)
	}

	return &Pages{byID: records}, nil
}

// Get returns the page for an id, if present.
func (p *Pages) Get(id string) (domain.PageContent, bool) {
	page, ok := p.byID[id]
	return page, ok
}

// FormatContent splits section text on newlines into non-empty
// paragraphs for rendering.
func FormatContent(content string) []string {
	var out []string
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}
