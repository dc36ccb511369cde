// Package affiliate builds Partnerize deep links for outbound product
// traffic.
package affiliate

import (
	"fmt"
	"net/url"
)

const destination = "https://www.iherb.com/search?kw="

// LinkBuilder generates Partnerize click-through links scoped to a
// campaign reference.
type LinkBuilder struct {
	camref string
}

// NewLinkBuilder creates a LinkBuilder. An empty camref falls back to a
// placeholder so links stay well-formed in development.
func NewLinkBuilder(camref string) *LinkBuilder {
	if camref == "" {
		camref = "YOUR_CAMREF"
	}
	return &LinkBuilder{camref: camref}
}

// Link returns the affiliate deep link for a search keyword.
func (b *LinkBuilder) Link(keyword string) string {
	return fmt.Sprintf("https://prf.hn/click/camref:%s/destination:%s%s",
		b.camref, destination, url.QueryEscape(keyword))
}
