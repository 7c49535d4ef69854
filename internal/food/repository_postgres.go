package food

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listFoodsQuery = `
		SELECT id, name, description, price, category_id, image_url, thumbnail_url
		FROM foods
		ORDER BY id
	`
	getFoodByIDQuery = `
		SELECT id, name, description, price, category_id, image_url, thumbnail_url
		FROM foods
		WHERE id = $1
	`
	listExtrasQuery = `
		SELECT id, name, value
		FROM food_extras
		WHERE food_id = $1
		ORDER BY id
	`
	listFoodsByIDsQuery = `
		SELECT id, name, description, price, category_id, image_url, thumbnail_url
		FROM foods
		WHERE id = ANY($1::int[])
		ORDER BY array_position($1::int[], id)
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]Food, error) {
	rows, err := r.db.QueryContext(ctx, listFoodsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanFoods(rows)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int) (Food, error) {
	f, err := scanFood(r.db.QueryRowContext(ctx, getFoodByIDQuery, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Food{}, ErrNotFound
		}
		return Food{}, err
	}

	rows, err := r.db.QueryContext(ctx, listExtrasQuery, id)
	if err != nil {
		return Food{}, err
	}
	defer rows.Close()

	f.Extras = make([]Extra, 0)
	for rows.Next() {
		var e Extra
		if err := rows.Scan(&e.ID, &e.Name, &e.Value); err != nil {
			return Food{}, err
		}
		f.Extras = append(f.Extras, e)
	}
	return f, rows.Err()
}

// ListByIDs keeps the order of ids, the same way favourites and carts were
// resolved against the products table.
func (r *PostgresRepository) ListByIDs(ctx context.Context, ids []int) ([]Food, error) {
	if len(ids) == 0 {
		return []Food{}, nil
	}
	rows, err := r.db.QueryContext(ctx, listFoodsByIDsQuery, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanFoods(rows)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanFood(row rowScanner) (Food, error) {
	var (
		f         Food
		image     sql.NullString
		thumbnail sql.NullString
	)
	if err := row.Scan(&f.ID, &f.Name, &f.Description, &f.Price, &f.CategoryID, &image, &thumbnail); err != nil {
		return Food{}, err
	}
	f.ImageURL = image.String
	f.ThumbnailURL = thumbnail.String
	return f, nil
}

func scanFoods(rows *sql.Rows) ([]Food, error) {
	out := make([]Food, 0)
	for rows.Next() {
		f, err := scanFood(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}
