package bundle

import "testing"

func newTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return c
}

func TestLoad(t *testing.T) {
	c := newTestCatalog(t)

	if len(c.All()) == 0 {
		t.Fatal("Expected non-empty bundle catalog")
	}

	b, ok := c.ByID("sleep-support")
	if !ok {
		t.Fatal("Expected sleep-support bundle")
	}
	if b.Name != "Sleep Support Stack" {
		t.Errorf("Unexpected bundle name %q", b.Name)
	}
	if len(b.Products) != 5 {
		t.Errorf("Expected 5 member slugs, got %d", len(b.Products))
	}
}

func TestByIDMiss(t *testing.T) {
	c := newTestCatalog(t)

	if _, ok := c.ByID("no-such-bundle"); ok {
		t.Error("Expected miss for unknown bundle id")
	}
}

func TestFindWithProducts(t *testing.T) {
	c := newTestCatalog(t)

	found := c.FindWithProducts([]string{"magnesium_glycinate"})
	if len(found) == 0 {
		t.Fatal("Expected bundles containing magnesium_glycinate")
	}
	// Curated order puts sleep-support first.
	if found[0].ID != "sleep-support" {
		t.Errorf("Expected sleep-support first, got %s", found[0].ID)
	}
	for _, b := range found {
		has := false
		for _, member := range b.Products {
			if member == "magnesium_glycinate" {
				has = true
				break
			}
		}
		if !has {
			t.Errorf("Bundle %s does not contain magnesium_glycinate", b.ID)
		}
	}
}

func TestFindWithProductsNoMatch(t *testing.T) {
	c := newTestCatalog(t)

	if found := c.FindWithProducts([]string{"unknown_slug"}); len(found) != 0 {
		t.Errorf("Expected no bundles, got %d", len(found))
	}
}

func TestSuggestComplementary(t *testing.T) {
	c := newTestCatalog(t)

	got := c.SuggestComplementary([]string{"magnesium_glycinate"})
	if len(got) == 0 {
		t.Fatal("Expected suggestions")
	}
	if len(got) > 5 {
		t.Errorf("Expected at most 5 suggestions, got %d", len(got))
	}

	hasTheanine := false
	for _, slug := range got {
		if slug == "magnesium_glycinate" {
			t.Error("Suggestions must not echo an input slug")
		}
		if slug == "l_theanine" {
			hasTheanine = true
		}
	}
	if !hasTheanine {
		t.Errorf("Expected l_theanine among suggestions, got %v", got)
	}
}

func TestSuggestComplementaryDeduplicates(t *testing.T) {
	c := newTestCatalog(t)

	// vitamin_d3 appears in several bundles; each suggestion must still
	// appear only once.
	got := c.SuggestComplementary([]string{"vitamin_d3"})
	seen := make(map[string]bool)
	for _, slug := range got {
		if seen[slug] {
			t.Errorf("Duplicate suggestion %q", slug)
		}
		seen[slug] = true
	}
}

func TestSuggestComplementaryNoMatch(t *testing.T) {
	c := newTestCatalog(t)

	if got := c.SuggestComplementary([]string{"unknown_slug"}); len(got) != 0 {
		t.Errorf("Expected no suggestions, got %v", got)
	}
}

func TestByCategory(t *testing.T) {
	c := newTestCatalog(t)

	got := c.ByCategory("Immune Health")
	if len(got) != 1 || got[0].ID != "immune-support" {
		t.Errorf("Expected exactly the immune-support bundle, got %v", got)
	}
}
