package catalog

import "testing"

func TestLoad(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if c.Len() == 0 {
		t.Fatal("Expected non-empty catalog")
	}

	p, ok := c.Get("magnesium_glycinate")
	if !ok {
		t.Fatal("Expected magnesium_glycinate in catalog")
	}
	if p.Slug != "magnesium_glycinate" {
		t.Errorf("Expected slug to be filled from key, got %q", p.Slug)
	}
	if p.ID != "MAG001" {
		t.Errorf("Expected id MAG001, got %q", p.ID)
	}
}

func TestGetMissingSlug(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if _, ok := c.Get("does_not_exist"); ok {
		t.Error("Expected miss for unknown slug")
	}
}

func TestSearch(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	results := c.Search("magnesium")
	if len(results) == 0 {
		t.Fatal("Expected results for magnesium")
	}
	for _, p := range results {
		if p.Slug != "magnesium_glycinate" && p.Slug != "magnesium_citrate" {
			t.Errorf("Unexpected result %q for magnesium query", p.Slug)
		}
	}

	if got := c.Search(""); got != nil {
		t.Errorf("Expected nil for empty query, got %d results", len(got))
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Magnesium Glycinate", "magnesium_glycinate"},
		{"digits", "Vitamin D3", "vitamin_d3"},
		{"punctuation stripped", "Magnesium Glycinate!!!", "magnesium_glycinate"},
		{"apostrophe", "St. John's Wort", "st_johns_wort"},
		{"whitespace collapsed", "  Vitamin   C  ", "vitamin_c"},
		{"already lowercase", "melatonin", "melatonin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
