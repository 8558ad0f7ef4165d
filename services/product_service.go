package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/resenaros/Ecommerce-API/models"
	"github.com/resenaros/Ecommerce-API/repositories"
)

type ProductService struct {
	productRepo repositories.ProductRepository
}

func NewProductService(productRepo repositories.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

func (s *ProductService) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	return s.productRepo.FindAll(ctx)
}

func (s *ProductService) GetProductByID(ctx context.Context, id int) (*models.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	return product, err
}

func (s *ProductService) CreateProduct(ctx context.Context, req models.CreateProductRequest) (*models.Product, error) {
	product := &models.Product{
		ProductName: req.ProductName,
		Price:       *req.Price,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, id int, req models.UpdateProductRequest) (*models.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("product %d: %w", id, ErrNotFound)
		}
		return nil, err
	}

	if req.ProductName != "" {
		product.ProductName = req.ProductName
	}
	if req.Price != nil {
		product.Price = *req.Price
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct follows the same restrict policy as users: a product linked
// to any order stays until the link is removed.
func (s *ProductService) DeleteProduct(ctx context.Context, id int) error {
	err := s.productRepo.Delete(ctx, id)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return fmt.Errorf("product %d: %w", id, ErrNotFound)
	case errors.Is(err, repositories.ErrForeignKeyViolation):
		return fmt.Errorf("product %d is referenced by an order: %w", id, ErrConflict)
	}
	return err
}
