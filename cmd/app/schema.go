package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/wichananm65/food-order-backend/internal/seed"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		id SERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		image_url TEXT,
		ord INT
	)`,
	`CREATE TABLE IF NOT EXISTS foods (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		price numeric(12,2) NOT NULL DEFAULT 0,
		category_id INT NOT NULL REFERENCES categories(id),
		image_url TEXT,
		thumbnail_url TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS food_extras (
		id INT NOT NULL,
		food_id INT NOT NULL REFERENCES foods(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		value numeric(12,2) NOT NULL DEFAULT 0,
		PRIMARY KEY (food_id, id)
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id SERIAL PRIMARY KEY,
		reference TEXT NOT NULL UNIQUE,
		user_id INT NOT NULL,
		food_id INT NOT NULL,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		price numeric(12,2) NOT NULL,
		category_id INT NOT NULL DEFAULT 0,
		quantity INT NOT NULL,
		extras jsonb NOT NULL DEFAULT '[]',
		total numeric(12,2) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS orders_user_id_idx ON orders (user_id)`,
	`CREATE TABLE IF NOT EXISTS favorites (
		user_id INT NOT NULL,
		food_id INT NOT NULL,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		price numeric(12,2) NOT NULL,
		category_id INT NOT NULL DEFAULT 0,
		thumbnail_url TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		PRIMARY KEY (user_id, food_id)
	)`,
}

// ensureSchema creates the tables the repositories read and write.
func ensureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// seedCatalog fills an empty catalog from the seed file.
func seedCatalog(ctx context.Context, db *sql.DB, cat seed.Catalog) (bool, error) {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories`).Scan(&count); err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	for i, c := range cat.Categories {
		if _, err := tx.ExecContext(ctx, `INSERT INTO categories (id, title, image_url, ord) VALUES ($1,$2,$3,$4)`,
			c.ID, c.Title, c.ImageURL, len(cat.Categories)-i); err != nil {
			return false, err
		}
	}
	for _, f := range cat.Foods {
		if _, err := tx.ExecContext(ctx, `INSERT INTO foods (id, name, description, price, category_id, image_url, thumbnail_url) VALUES ($1,$2,$3,$4,$5,$6,$7)`,
			f.ID, f.Name, f.Description, f.Price, f.CategoryID, f.ImageURL, f.ThumbnailURL); err != nil {
			return false, err
		}
		for _, e := range f.Extras {
			if _, err := tx.ExecContext(ctx, `INSERT INTO food_extras (id, food_id, name, value) VALUES ($1,$2,$3,$4)`,
				e.ID, f.ID, e.Name, e.Value); err != nil {
				return false, err
			}
		}
	}
	// keep SERIAL sequences ahead of the explicit ids
	for _, table := range []string{"categories", "foods"} {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf(`SELECT setval(pg_get_serial_sequence('%s', 'id'), COALESCE(MAX(id), 1)) FROM %s`, table, table)); err != nil {
			return false, err
		}
	}
	return true, tx.Commit()
}
