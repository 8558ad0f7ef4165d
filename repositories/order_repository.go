package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/resenaros/Ecommerce-API/models"
)

type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id int) (*models.Order, error)
	FindByUser(ctx context.Context, userID int) ([]models.Order, error)
	Delete(ctx context.Context, id int) error

	AddProduct(ctx context.Context, orderID, productID int) error
	RemoveProduct(ctx context.Context, orderID, productID int) error
	FindProducts(ctx context.Context, orderID int) ([]models.Product, error)
}

type orderRepository struct {
	db *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *models.Order) error {
	query := `
		INSERT INTO orders (order_date, user_id)
		VALUES ($1, $2)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, order.OrderDate.Time, order.UserID).Scan(&order.ID)
	return translateError(err)
}

func (r *orderRepository) FindByID(ctx context.Context, id int) (*models.Order, error) {
	query := `SELECT id, order_date, user_id FROM orders WHERE id = $1`

	order := &models.Order{}
	err := r.db.QueryRow(ctx, query, id).Scan(&order.ID, &order.OrderDate, &order.UserID)
	if err != nil {
		return nil, translateError(err)
	}
	return order, nil
}

func (r *orderRepository) FindByUser(ctx context.Context, userID int) ([]models.Order, error) {
	query := `SELECT id, order_date, user_id FROM orders WHERE user_id = $1 ORDER BY id`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var order models.Order
		if err := rows.Scan(&order.ID, &order.OrderDate, &order.UserID); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

// Delete removes the order; its order_products rows go with it via
// ON DELETE CASCADE.
func (r *orderRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return translateError(err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// AddProduct links a product to an order. The composite primary key on
// (order_id, product_id) makes a duplicate link surface as ErrDuplicateKey,
// including when two requests race on the same pair.
func (r *orderRepository) AddProduct(ctx context.Context, orderID, productID int) error {
	query := `INSERT INTO order_products (order_id, product_id) VALUES ($1, $2)`
	_, err := r.db.Exec(ctx, query, orderID, productID)
	return translateError(err)
}

func (r *orderRepository) RemoveProduct(ctx context.Context, orderID, productID int) error {
	query := `DELETE FROM order_products WHERE order_id = $1 AND product_id = $2`

	result, err := r.db.Exec(ctx, query, orderID, productID)
	if err != nil {
		return translateError(err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *orderRepository) FindProducts(ctx context.Context, orderID int) ([]models.Product, error) {
	query := `
		SELECT p.id, p.product_name, p.price
		FROM order_products op
		JOIN products p ON p.id = op.product_id
		WHERE op.order_id = $1
		ORDER BY op.created_at, p.id
	`

	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.ProductName, &p.Price); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
