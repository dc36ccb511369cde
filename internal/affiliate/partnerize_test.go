package affiliate

import (
	"strings"
	"testing"
)

func TestLink(t *testing.T) {
	b := NewLinkBuilder("1100l999")

	got := b.Link("magnesium glycinate")
	want := "https://prf.hn/click/camref:1100l999/destination:https://www.iherb.com/search?kw=magnesium+glycinate"
	if got != want {
		t.Errorf("Link() = %q, want %q", got, want)
	}
}

func TestLinkEscapesKeyword(t *testing.T) {
	b := NewLinkBuilder("1100l999")

	got := b.Link("st. john's wort")
	if strings.Contains(got, "'") || strings.Contains(got, " ") {
		t.Errorf("Expected escaped keyword, got %q", got)
	}
	if !strings.HasPrefix(got, "https://prf.hn/click/camref:1100l999/") {
		t.Errorf("Unexpected link prefix: %q", got)
	}
}

func TestLinkDefaultCamref(t *testing.T) {
	b := NewLinkBuilder("")

	got := b.Link("zinc")
	if !strings.Contains(got, "camref:YOUR_CAMREF") {
		t.Errorf("Expected placeholder camref, got %q", got)
	}
}
