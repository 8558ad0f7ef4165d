package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/resenaros/Ecommerce-API/models"
)

type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	FindAll(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id int) (*models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id int) error
}

type productRepository struct {
	db *pgxpool.Pool
}

func NewProductRepository(db *pgxpool.Pool) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *models.Product) error {
	query := `
		INSERT INTO products (product_name, price)
		VALUES ($1, $2)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, product.ProductName, product.Price).Scan(&product.ID)
	return translateError(err)
}

func (r *productRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	query := `SELECT id, product_name, price FROM products ORDER BY id`

	rows, err := r.db.Query(ctx, query)
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

func (r *productRepository) FindByID(ctx context.Context, id int) (*models.Product, error) {
	query := `SELECT id, product_name, price FROM products WHERE id = $1`

	p := &models.Product{}
	err := r.db.QueryRow(ctx, query, id).Scan(&p.ID, &p.ProductName, &p.Price)
	if err != nil {
		return nil, translateError(err)
	}
	return p, nil
}

func (r *productRepository) Update(ctx context.Context, product *models.Product) error {
	query := `UPDATE products SET product_name = $1, price = $2 WHERE id = $3`

	result, err := r.db.Exec(ctx, query, product.ProductName, product.Price, product.ID)
	if err != nil {
		return translateError(err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *productRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return translateError(err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
