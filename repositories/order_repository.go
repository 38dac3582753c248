package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"pizza-delivery/config"
	"pizza-delivery/models"
)

// OrderStore is the order persistence surface consumed by the order
// controller. Lookups and mutations on a missing id return (nil, nil).
type OrderStore interface {
	Create(ctx context.Context, order *models.Order) error
	FindAll(ctx context.Context) ([]models.Order, error)
	FindByID(ctx context.Context, id int) (*models.Order, error)
	FindByUser(ctx context.Context, userID int) ([]models.Order, error)
	Update(ctx context.Context, id, quantity int, size models.PizzaSize) (*models.Order, error)
	UpdateStatus(ctx context.Context, id int, status models.OrderStatus) (*models.Order, error)
	Delete(ctx context.Context, id int) (*models.Order, error)
}

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

const orderColumns = "id, quantity, order_status, pizza_size, user_id, created_at, updated_at"

func scanOrder(row pgx.Row) (*models.Order, error) {
	order := &models.Order{}
	err := row.Scan(
		&order.ID,
		&order.Quantity,
		&order.OrderStatus,
		&order.PizzaSize,
		&order.UserID,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	query := `
		INSERT INTO orders (quantity, order_status, pizza_size, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	return config.DB.QueryRow(
		ctx,
		query,
		order.Quantity,
		order.OrderStatus,
		order.PizzaSize,
		order.UserID,
		now,
		now,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
}

func (r *OrderRepository) FindAll(ctx context.Context) ([]models.Order, error) {
	rows, err := config.DB.Query(ctx,
		"SELECT "+orderColumns+" FROM orders ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectOrders(rows)
}

func (r *OrderRepository) FindByID(ctx context.Context, id int) (*models.Order, error) {
	order, err := scanOrder(config.DB.QueryRow(ctx,
		"SELECT "+orderColumns+" FROM orders WHERE id = $1", id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return order, err
}

func (r *OrderRepository) FindByUser(ctx context.Context, userID int) ([]models.Order, error) {
	rows, err := config.DB.Query(ctx,
		"SELECT "+orderColumns+" FROM orders WHERE user_id = $1 ORDER BY id", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectOrders(rows)
}

// Update overwrites quantity and pizza_size inside a single transaction.
// order_status is left untouched.
func (r *OrderRepository) Update(ctx context.Context, id, quantity int, size models.PizzaSize) (*models.Order, error) {
	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	order, err := scanOrder(tx.QueryRow(ctx,
		"SELECT "+orderColumns+" FROM orders WHERE id = $1 FOR UPDATE", id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	order.Quantity = quantity
	order.PizzaSize = size
	order.UpdatedAt = time.Now()

	_, err = tx.Exec(ctx,
		"UPDATE orders SET quantity = $1, pizza_size = $2, updated_at = $3 WHERE id = $4",
		order.Quantity, order.PizzaSize, order.UpdatedAt, id)
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateStatus overwrites order_status only.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id int, status models.OrderStatus) (*models.Order, error) {
	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	order, err := scanOrder(tx.QueryRow(ctx,
		"SELECT "+orderColumns+" FROM orders WHERE id = $1 FOR UPDATE", id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	order.OrderStatus = status
	order.UpdatedAt = time.Now()

	_, err = tx.Exec(ctx,
		"UPDATE orders SET order_status = $1, updated_at = $2 WHERE id = $3",
		order.OrderStatus, order.UpdatedAt, id)
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}
	return order, nil
}

// Delete removes the order and returns the deleted record, or (nil, nil)
// when no such order exists.
func (r *OrderRepository) Delete(ctx context.Context, id int) (*models.Order, error) {
	order, err := scanOrder(config.DB.QueryRow(ctx,
		"DELETE FROM orders WHERE id = $1 RETURNING "+orderColumns, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return order, nil
}

func collectOrders(rows pgx.Rows) ([]models.Order, error) {
	orders := []models.Order{}
	for rows.Next() {
		var order models.Order
		err := rows.Scan(
			&order.ID,
			&order.Quantity,
			&order.OrderStatus,
			&order.PizzaSize,
			&order.UserID,
			&order.CreatedAt,
			&order.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}
