package favorite

import (
	"context"
	"database/sql"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	existsFavoriteQuery = `
		SELECT EXISTS (SELECT 1 FROM favorites WHERE user_id = $1 AND food_id = $2)
	`
	addFavoriteQuery = `
		INSERT INTO favorites (user_id, food_id, name, description, price, category_id, thumbnail_url, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT (user_id, food_id) DO NOTHING
	`
	removeFavoriteQuery = `
		DELETE FROM favorites WHERE user_id = $1 AND food_id = $2
	`
	listFavoritesQuery = `
		SELECT food_id, name, description, price, category_id, COALESCE(thumbnail_url, ''), created_at
		FROM favorites
		WHERE user_id = $1
		ORDER BY created_at DESC, food_id
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Exists(ctx context.Context, userID, foodID int) (bool, error) {
	var ok bool
	if err := r.db.QueryRowContext(ctx, existsFavoriteQuery, userID, foodID).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

func (r *PostgresRepository) Add(ctx context.Context, userID int, fav Saved) error {
	_, err := r.db.ExecContext(ctx, addFavoriteQuery,
		userID, fav.FoodID, fav.Name, fav.Description, fav.Price, fav.CategoryID, fav.ThumbnailURL, fav.CreatedAt)
	return err
}

func (r *PostgresRepository) Remove(ctx context.Context, userID, foodID int) error {
	_, err := r.db.ExecContext(ctx, removeFavoriteQuery, userID, foodID)
	return err
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID int) ([]Saved, error) {
	rows, err := r.db.QueryContext(ctx, listFavoritesQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Saved, 0)
	for rows.Next() {
		var f Saved
		if err := rows.Scan(&f.FoodID, &f.Name, &f.Description, &f.Price, &f.CategoryID, &f.ThumbnailURL, &f.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}
