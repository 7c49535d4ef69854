package order

import (
	"context"
	"database/sql"
	"encoding/json"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	insertOrderQuery = `
		INSERT INTO orders (reference, user_id, food_id, name, description, price, category_id, quantity, extras, total, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		RETURNING id
	`
	listOrdersByUserQuery = `
		SELECT id, reference, user_id, food_id, name, description, price, category_id, quantity, extras, total, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY id DESC
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, ord Order) (Order, error) {
	extrasJSON, err := json.Marshal(ord.Extras)
	if err != nil {
		return Order{}, err
	}

	err = r.db.QueryRowContext(ctx, insertOrderQuery,
		ord.Reference, ord.UserID, ord.FoodID, ord.Name, ord.Description, ord.Price,
		ord.CategoryID, ord.Quantity, extrasJSON, ord.Total, ord.CreatedAt,
	).Scan(&ord.ID)
	if err != nil {
		return Order{}, err
	}
	return ord, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID int) ([]Order, error) {
	rows, err := r.db.QueryContext(ctx, listOrdersByUserQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]Order, 0)
	for rows.Next() {
		var (
			ord        Order
			extrasJSON []byte
		)
		if err := rows.Scan(&ord.ID, &ord.Reference, &ord.UserID, &ord.FoodID, &ord.Name, &ord.Description,
			&ord.Price, &ord.CategoryID, &ord.Quantity, &extrasJSON, &ord.Total, &ord.CreatedAt); err != nil {
			return nil, err
		}
		if len(extrasJSON) > 0 {
			if err := json.Unmarshal(extrasJSON, &ord.Extras); err != nil {
				return nil, err
			}
		}
		orders = append(orders, ord)
	}
	return orders, rows.Err()
}
