package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/swiftherb/swiftherb-server/internal/domain"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements Repository using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite creates a new SQLite-backed product store.
func NewSQLite(dbPath string) (Repository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	// Open database with WAL mode for better concurrency.
	dsn := dbPath + "?_journal=WAL&_sync=NORMAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	query := `
	PRAGMA busy_timeout = 5000;
	CREATE TABLE IF NOT EXISTS products (
		slug TEXT PRIMARY KEY,
		id TEXT NOT NULL,
		title TEXT NOT NULL,
		price TEXT NOT NULL,
		image TEXT NOT NULL,
		description TEXT NOT NULL,
		category TEXT NOT NULL,
		updated_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_products_category ON products(category);
	`
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Ping verifies database connectivity.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// GetProduct retrieves a product by slug. A miss returns (nil, nil).
func (s *SQLiteStore) GetProduct(ctx context.Context, slug string) (*domain.Product, error) {
	query := `
		SELECT slug, id, title, price, image, description, category
		FROM products WHERE slug = ?`

	row := s.db.QueryRowContext(ctx, query, slug)

	var p domain.Product
	err := row.Scan(&p.Slug, &p.ID, &p.Title, &p.Price, &p.Image, &p.Description, &p.Category)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan product row: %w", err)
	}

	return &p, nil
}

// BatchGetProducts retrieves products for the given slugs in one query,
// omitting misses and preserving request order.
func (s *SQLiteStore) BatchGetProducts(ctx context.Context, slugs []string) ([]domain.Product, error) {
	if len(slugs) == 0 {
		return nil, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(slugs)), ",")
	query := fmt.Sprintf(`
		SELECT slug, id, title, price, image, description, category
		FROM products WHERE slug IN (%s)`, placeholders)

	args := make([]interface{}, len(slugs))
	for i, slug := range slugs {
		args[i] = slug
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("batch get products: %w", err)
	}
	defer rows.Close()

	bySlug := make(map[string]domain.Product, len(slugs))
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.Slug, &p.ID, &p.Title, &p.Price, &p.Image, &p.Description, &p.Category); err != nil {
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		bySlug[p.Slug] = p
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate product rows: %w", err)
	}

	out := make([]domain.Product, 0, len(bySlug))
	for _, slug := range slugs {
		if p, ok := bySlug[slug]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

// UpsertProduct creates or replaces a product record.
func (s *SQLiteStore) UpsertProduct(ctx context.Context, p domain.Product) error {
	query := `
	INSERT INTO products (slug, id, title, price, image, description, category, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(slug) DO UPDATE SET
		id = excluded.id,
		title = excluded.title,
		price = excluded.price,
		image = excluded.image,
		description = excluded.description,
		category = excluded.category,
		updated_at = excluded.updated_at`

	_, err := s.db.ExecContext(ctx, query,
		p.Slug, p.ID, p.Title, p.Price, p.Image, p.Description, p.Category,
		time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("upsert product: %w", err)
	}
	return nil
}

// SeedProducts upserts a batch of records in one transaction.
func (s *SQLiteStore) SeedProducts(ctx context.Context, products []domain.Product) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO products (slug, id, title, price, image, description, category, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(slug) DO UPDATE SET
			id = excluded.id,
			title = excluded.title,
			price = excluded.price,
			image = excluded.image,
			description = excluded.description,
			category = excluded.category,
			updated_at = excluded.updated_at`)
	if err != nil {
		return 0, fmt.Errorf("prepare seed statement: %w", err)
	}
	defer stmt.Close()

	now := time.Now().Unix()
	written := 0
	for _, p := range products {
		if _, err := stmt.ExecContext(ctx,
			p.Slug, p.ID, p.Title, p.Price, p.Image, p.Description, p.Category, now,
		); err != nil {
			return 0, fmt.Errorf("seed product %s: %w", p.Slug, err)
		}
		written++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit seed transaction: %w", err)
	}
	return written, nil
}

// CountProducts returns the number of stored records.
func (s *SQLiteStore) CountProducts(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
