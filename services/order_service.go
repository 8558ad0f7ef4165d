package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/resenaros/Ecommerce-API/models"
	"github.com/resenaros/Ecommerce-API/repositories"
)

type OrderService struct {
	orderRepo   repositories.OrderRepository
	userRepo    repositories.UserRepository
	productRepo repositories.ProductRepository
	mailer      *EmailService
}

// NewOrderService wires the order workflow. mailer may be nil, in which case
// no confirmation emails are sent.
func NewOrderService(
	orderRepo repositories.OrderRepository,
	userRepo repositories.UserRepository,
	productRepo repositories.ProductRepository,
	mailer *EmailService,
) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		userRepo:    userRepo,
		productRepo: productRepo,
		mailer:      mailer,
	}
}

func (s *OrderService) CreateOrder(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error) {
	user, err := s.userRepo.FindByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("user %d: %w", req.UserID, ErrNotFound)
		}
		return nil, err
	}

	order := &models.Order{
		OrderDate: req.OrderDate,
		UserID:    req.UserID,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	if s.mailer != nil {
		go func(email string, orderID int, date models.OrderDate) {
			if err := s.mailer.SendOrderConfirmation(email, orderID, date); err != nil {
				log.Printf("Failed to send order confirmation for order %d: %v", orderID, err)
			}
		}(user.Email, order.ID, order.OrderDate)
	}

	return order, nil
}

func (s *OrderService) GetOrderByID(ctx context.Context, id int) (*models.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("order %d: %w", id, ErrNotFound)
	}
	return order, err
}

func (s *OrderService) DeleteOrder(ctx context.Context, id int) error {
	err := s.orderRepo.Delete(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return fmt.Errorf("order %d: %w", id, ErrNotFound)
	}
	return err
}

// AddProduct links a product to an order, at most once per pair.
func (s *OrderService) AddProduct(ctx context.Context, orderID, productID int) error {
	if _, err := s.orderRepo.FindByID(ctx, orderID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("order %d: %w", orderID, ErrNotFound)
		}
		return err
	}
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("product %d: %w", productID, ErrNotFound)
		}
		return err
	}

	err := s.orderRepo.AddProduct(ctx, orderID, productID)
	switch {
	case errors.Is(err, repositories.ErrDuplicateKey):
		return fmt.Errorf("product %d already in order %d: %w", productID, orderID, ErrConflict)
	case errors.Is(err, repositories.ErrForeignKeyViolation):
		// Order or product vanished between the existence checks and the
		// insert; report it the same way as the checks would have.
		return fmt.Errorf("order %d or product %d: %w", orderID, productID, ErrNotFound)
	}
	return err
}

func (s *OrderService) RemoveProduct(ctx context.Context, orderID, productID int) error {
	err := s.orderRepo.RemoveProduct(ctx, orderID, productID)
	if errors.Is(err, repositories.ErrNotFound) {
		return fmt.Errorf("product %d is not in order %d: %w", productID, orderID, ErrNotFound)
	}
	return err
}

// GetOrdersByUser returns the user's orders, oldest first. An existing user
// with no orders yields an empty list; an unknown user is an error.
func (s *OrderService) GetOrdersByUser(ctx context.Context, userID int) ([]models.Order, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("user %d: %w", userID, ErrNotFound)
		}
		return nil, err
	}
	return s.orderRepo.FindByUser(ctx, userID)
}

func (s *OrderService) GetOrderProducts(ctx context.Context, orderID int) ([]models.Product, error) {
	if _, err := s.orderRepo.FindByID(ctx, orderID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("order %d: %w", orderID, ErrNotFound)
		}
		return nil, err
	}
	return s.orderRepo.FindProducts(ctx, orderID)
}
