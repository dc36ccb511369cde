// Package store provides the product key-value store interface and its
// SQLite implementation.
package store

import (
	"context"

	"github.com/swiftherb/swiftherb-server/internal/domain"
)

// Repository defines the key-value product store the server fans out to
// when assembling recommendations. It is a flat slug -> record mapping:
// no search capability, and a miss is never an error.
type Repository interface {
	// GetProduct retrieves a product by slug. Returns (nil, nil) when
	// the slug is unknown.
	GetProduct(ctx context.Context, slug string) (*domain.Product, error)

	// BatchGetProducts retrieves products for the given slugs, omitting
	// misses and preserving the request order of the hits.
	BatchGetProducts(ctx context.Context, slugs []string) ([]domain.Product, error)

	// UpsertProduct creates or replaces a product record.
	UpsertProduct(ctx context.Context, p domain.Product) error

	// SeedProducts upserts a batch of records in one transaction and
	// returns how many were written.
	SeedProducts(ctx context.Context, products []domain.Product) (int, error)

	// CountProducts returns the number of stored records.
	CountProducts(ctx context.Context) (int, error)

	// Ping verifies store connectivity.
	Ping(ctx context.Context) error

	// Close closes the underlying database.
	Close() error
}
