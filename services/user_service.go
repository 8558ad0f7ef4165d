package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/resenaros/Ecommerce-API/models"
	"github.com/resenaros/Ecommerce-API/repositories"
)

type UserService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.FindAll(ctx)
}

func (s *UserService) GetUserByID(ctx context.Context, id int) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	return user, err
}

func (s *UserService) CreateUser(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	if err := s.checkEmailFree(ctx, req.Email); err != nil {
		return nil, err
	}

	user := &models.User{
		Name:    req.Name,
		Address: req.Address,
		Email:   req.Email,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// The pre-check can lose a race; the unique constraint is the
		// authority either way.
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, fmt.Errorf("email %s already registered: %w", req.Email, ErrConflict)
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) checkEmailFree(ctx context.Context, email string) error {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil
		}
		return err
	}
	if existing != nil {
		return fmt.Errorf("email %s already registered: %w", email, ErrConflict)
	}
	return nil
}

func (s *UserService) UpdateUser(ctx context.Context, id int, req models.UpdateUserRequest) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
		}
		return nil, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Address != "" {
		user.Address = req.Address
	}
	if req.Email != "" && req.Email != user.Email {
		if err := s.checkEmailFree(ctx, req.Email); err != nil {
			return nil, err
		}
		user.Email = req.Email
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, fmt.Errorf("email %s already registered: %w", req.Email, ErrConflict)
		}
		return nil, err
	}
	return user, nil
}

// DeleteUser enforces the restrict policy: a user with existing orders
// cannot be removed until those orders are deleted first.
func (s *UserService) DeleteUser(ctx context.Context, id int) error {
	err := s.userRepo.Delete(ctx, id)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return fmt.Errorf("user %d: %w", id, ErrNotFound)
	case errors.Is(err, repositories.ErrForeignKeyViolation):
		return fmt.Errorf("user %d still has orders: %w", id, ErrConflict)
	}
	return err
}
