package services

import (
	"errors"

	"katalog/internal/apperrors"
	"katalog/internal/models"
	"katalog/internal/repositories"
	"katalog/internal/validation"
)

// CreateUserInput is the request body for creating a user.
type CreateUserInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// UpdateUserInput is the request body for a partial user update. Nil fields
// are left untouched.
type UpdateUserInput struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

// UserService handles business logic for users.
type UserService struct {
	userRepo    repositories.UserRepository
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repositories.UserRepository, orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository) *UserService {
	return &UserService{
		userRepo:    userRepo,
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

// CreateUser validates the input and creates a user. A duplicate email or
// phone is a conflict, detected by the store's unique indexes rather than a
// racy pre-check.
func (s *UserService) CreateUser(in CreateUserInput) (*models.User, error) {
	if err := validation.PersonName(in.Name); err != nil {
		return nil, apperrors.Invalid(err.Error())
	}
	if err := validation.Email(in.Email); err != nil {
		return nil, apperrors.Invalid(err.Error())
	}
	if err := validation.Phone(in.Phone); err != nil {
		return nil, apperrors.Invalid(err.Error())
	}

	user := &models.User{
		Name:  in.Name,
		Email: in.Email,
		Phone: in.Phone,
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, apperrors.Conflict("User already exists.")
		}
		return nil, apperrors.Internal("Failed to create user.", err)
	}
	return user, nil
}

// UpdateUser applies a partial update. Every present field is validated
// before anything is written; absent fields are skipped entirely.
func (s *UserService) UpdateUser(id string, in UpdateUserInput) (*models.User, error) {
	if !validation.IsHexID(id) {
		return nil, apperrors.Invalid("Invalid user ID format.")
	}
	if in.Name != nil {
		if err := validation.PersonName(*in.Name); err != nil {
			return nil, apperrors.Invalid(err.Error())
		}
	}
	if in.Email != nil {
		if err := validation.Email(*in.Email); err != nil {
			return nil, apperrors.Invalid(err.Error())
		}
	}
	if in.Phone != nil {
		if err := validation.Phone(*in.Phone); err != nil {
			return nil, apperrors.Invalid(err.Error())
		}
	}

	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("User not found.")
		}
		return nil, apperrors.Internal("Failed to load user.", err)
	}

	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}

	if err := s.userRepo.Update(user); err != nil {
		switch {
		case errors.Is(err, repositories.ErrDuplicate):
			return nil, apperrors.Conflict("Email or phone already in use.")
		case errors.Is(err, repositories.ErrNotFound):
			return nil, apperrors.NotFound("User not found.")
		}
		return nil, apperrors.Internal("Failed to update user.", err)
	}
	return user, nil
}

// GetUserByID retrieves a single user.
func (s *UserService) GetUserByID(id string) (*models.User, error) {
	if !validation.IsHexID(id) {
		return nil, apperrors.Invalid("Invalid user ID format.")
	}
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("User not found.")
		}
		return nil, apperrors.Internal("Failed to load user.", err)
	}
	return user, nil
}

// GetUserOrders returns the user's orders, each expanded with its product.
// A user with no orders at all is reported as not found, not as an empty
// list.
func (s *UserService) GetUserOrders(userID string) ([]models.OrderDetail, error) {
	if !validation.IsHexID(userID) {
		return nil, apperrors.Invalid("Invalid user ID format.")
	}

	orders, err := s.orderRepo.FindByUser(userID)
	if err != nil {
		return nil, apperrors.Internal("Failed to load orders.", err)
	}
	if len(orders) == 0 {
		return nil, apperrors.NotFound("No orders found for this user.")
	}

	details := make([]models.OrderDetail, 0, len(orders))
	for _, order := range orders {
		detail := models.OrderDetail{Order: order}
		product, err := s.productRepo.GetByID(order.ProductID)
		if err != nil && !errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.Internal("Failed to load product.", err)
		}
		detail.Product = product
		details = append(details, detail)
	}
	return details, nil
}
