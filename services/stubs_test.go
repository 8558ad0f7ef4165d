package services_test

import (
	"context"

	"github.com/resenaros/Ecommerce-API/models"
	"github.com/resenaros/Ecommerce-API/repositories"
)

// Stub repositories: lookups return the canned structs (not-found when nil),
// write calls record their argument or fail with the configured error.

type stubUserRepo struct {
	user    *models.User // FindByID result
	byEmail *models.User // FindByEmail result
	users   []models.User

	findErr   error
	createErr error
	updateErr error
	deleteErr error

	created *models.User
	updated *models.User
	deleted []int
}

func (s *stubUserRepo) Create(_ context.Context, user *models.User) error {
	if s.createErr != nil {
		return s.createErr
	}
	user.ID = 1
	cp := *user
	s.created = &cp
	return nil
}

func (s *stubUserRepo) FindAll(_ context.Context) ([]models.User, error) {
	return s.users, s.findErr
}

func (s *stubUserRepo) FindByID(_ context.Context, id int) (*models.User, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	if s.user == nil {
		return nil, repositories.ErrNotFound
	}
	cp := *s.user
	cp.ID = id
	return &cp, nil
}

func (s *stubUserRepo) FindByEmail(_ context.Context, _ string) (*models.User, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	if s.byEmail == nil {
		return nil, repositories.ErrNotFound
	}
	cp := *s.byEmail
	return &cp, nil
}

func (s *stubUserRepo) Update(_ context.Context, user *models.User) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	cp := *user
	s.updated = &cp
	return nil
}

func (s *stubUserRepo) Delete(_ context.Context, id int) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deleted = append(s.deleted, id)
	return nil
}

type stubProductRepo struct {
	product  *models.Product
	products []models.Product

	findErr   error
	createErr error
	updateErr error
	deleteErr error

	created *models.Product
	updated *models.Product
	deleted []int
}

func (s *stubProductRepo) Create(_ context.Context, product *models.Product) error {
	if s.createErr != nil {
		return s.createErr
	}
	product.ID = 1
	cp := *product
	s.created = &cp
	return nil
}

func (s *stubProductRepo) FindAll(_ context.Context) ([]models.Product, error) {
	return s.products, s.findErr
}

func (s *stubProductRepo) FindByID(_ context.Context, id int) (*models.Product, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	if s.product == nil {
		return nil, repositories.ErrNotFound
	}
	cp := *s.product
	cp.ID = id
	return &cp, nil
}

func (s *stubProductRepo) Update(_ context.Context, product *models.Product) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	cp := *product
	s.updated = &cp
	return nil
}

func (s *stubProductRepo) Delete(_ context.Context, id int) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deleted = append(s.deleted, id)
	return nil
}

type stubOrderRepo struct {
	order  *models.Order
	orders []models.Order
	items  []models.Product

	findErr   error
	createErr error
	deleteErr error
	addErr    error
	removeErr error

	created    *models.Order
	addedPairs [][2]int
}

func (s *stubOrderRepo) Create(_ context.Context, order *models.Order) error {
	if s.createErr != nil {
		return s.createErr
	}
	order.ID = 1
	cp := *order
	s.created = &cp
	return nil
}

func (s *stubOrderRepo) FindByID(_ context.Context, id int) (*models.Order, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	if s.order == nil {
		return nil, repositories.ErrNotFound
	}
	cp := *s.order
	cp.ID = id
	return &cp, nil
}

func (s *stubOrderRepo) FindByUser(_ context.Context, _ int) ([]models.Order, error) {
	return s.orders, s.findErr
}

func (s *stubOrderRepo) Delete(_ context.Context, _ int) error {
	return s.deleteErr
}

func (s *stubOrderRepo) AddProduct(_ context.Context, orderID, productID int) error {
	if s.addErr != nil {
		return s.addErr
	}
	s.addedPairs = append(s.addedPairs, [2]int{orderID, productID})
	return nil
}

func (s *stubOrderRepo) RemoveProduct(_ context.Context, _, _ int) error {
	return s.removeErr
}

func (s *stubOrderRepo) FindProducts(_ context.Context, _ int) ([]models.Product, error) {
	return s.items, nil
}
