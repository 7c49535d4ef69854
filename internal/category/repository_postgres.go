package category

import (
	"context"
	"database/sql"
)

// PostgresRepository implements Repository using Postgres.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List returns categories ordered by `ord` then id.
func (r *PostgresRepository) List(ctx context.Context) ([]Category, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, title, image_url FROM categories ORDER BY COALESCE(ord, 0) DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Category, 0)
	for rows.Next() {
		var (
			item Category
			img  sql.NullString
		)
		if err := rows.Scan(&item.ID, &item.Title, &img); err != nil {
			return nil, err
		}
		item.ImageURL = img.String
		out = append(out, item)
	}
	return out, rows.Err()
}
