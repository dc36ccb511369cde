package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/swiftherb/swiftherb-server/internal/domain"
)

func newTestStore(t *testing.T) Repository {
	t.Helper()
	repo, err := NewSQLite(filepath.Join(t.TempDir(), "products.db"))
	if err != nil {
		t.Fatalf("NewSQLite failed: %v", err)
	}
	t.Cleanup(func() {
		if err := repo.Close(); err != nil {
			t.Errorf("Close failed: %v", err)
		}
	})
	return repo
}

func testProduct(slug, id string) domain.Product {
	return domain.Product{
		Slug:        slug,
		ID:          id,
		Title:       "Test " + slug,
		Price:       "$9.99",
		Image:       "https://example.com/" + slug + ".jpg",
		Description: "Test product",
		Category:    "Test",
	}
}

func TestGetProductMiss(t *testing.T) {
	repo := newTestStore(t)

	p, err := repo.GetProduct(context.Background(), "missing")
	if err != nil {
		t.Fatalf("GetProduct failed: %v", err)
	}
	if p != nil {
		t.Errorf("Expected nil for unknown slug, got %+v", p)
	}
}

func TestUpsertAndGet(t *testing.T) {
	repo := newTestStore(t)
	ctx := context.Background()

	if err := repo.UpsertProduct(ctx, testProduct("zinc", "ZIN001")); err != nil {
		t.Fatalf("UpsertProduct failed: %v", err)
	}

	p, err := repo.GetProduct(ctx, "zinc")
	if err != nil {
		t.Fatalf("GetProduct failed: %v", err)
	}
	if p == nil || p.ID != "ZIN001" {
		t.Fatalf("Expected ZIN001, got %+v", p)
	}

	// Upsert of the same slug replaces the record.
	updated := testProduct("zinc", "ZIN001")
	updated.Price = "$12.99"
	if err := repo.UpsertProduct(ctx, updated); err != nil {
		t.Fatalf("UpsertProduct update failed: %v", err)
	}
	p, err = repo.GetProduct(ctx, "zinc")
	if err != nil {
		t.Fatalf("GetProduct failed: %v", err)
	}
	if p.Price != "$12.99" {
		t.Errorf("Expected updated price, got %s", p.Price)
	}

	n, err := repo.CountProducts(ctx)
	if err != nil {
		t.Fatalf("CountProducts failed: %v", err)
	}
	if n != 1 {
		t.Errorf("Expected 1 product, got %d", n)
	}
}

func TestBatchGetProducts(t *testing.T) {
	repo := newTestStore(t)
	ctx := context.Background()

	seed := []domain.Product{
		testProduct("zinc", "ZIN001"),
		testProduct("iron", "IRO001"),
		testProduct("calcium", "CAL001"),
	}
	written, err := repo.SeedProducts(ctx, seed)
	if err != nil {
		t.Fatalf("SeedProducts failed: %v", err)
	}
	if written != 3 {
		t.Fatalf("Expected 3 written, got %d", written)
	}

	// Misses are omitted; request order of hits is preserved.
	got, err := repo.BatchGetProducts(ctx, []string{"calcium", "missing", "zinc"})
	if err != nil {
		t.Fatalf("BatchGetProducts failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 products, got %d", len(got))
	}
	if got[0].Slug != "calcium" || got[1].Slug != "zinc" {
		t.Errorf("Expected [calcium zinc], got [%s %s]", got[0].Slug, got[1].Slug)
	}
}

func TestBatchGetProductsEmpty(t *testing.T) {
	repo := newTestStore(t)

	got, err := repo.BatchGetProducts(context.Background(), nil)
	if err != nil {
		t.Fatalf("BatchGetProducts failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Expected no products, got %d", len(got))
	}
}
