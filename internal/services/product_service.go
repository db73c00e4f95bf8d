package services

import (
	"errors"

	"katalog/internal/apperrors"
	"katalog/internal/models"
	"katalog/internal/repositories"
	"katalog/internal/validation"
)

// CreateProductInput is the request body for creating a product.
type CreateProductInput struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
}

// UpdateProductInput is the request body for a partial product update. Nil
// fields are left untouched.
type UpdateProductInput struct {
	Name     *string  `json:"name"`
	Category *string  `json:"category"`
	Price    *float64 `json:"price"`
	Stock    *int     `json:"stock"`
}

// ProductService handles business logic for products.
type ProductService struct {
	productRepo repositories.ProductRepository
	orderRepo   repositories.OrderRepository
	userRepo    repositories.UserRepository
}

// NewProductService creates a new ProductService.
func NewProductService(productRepo repositories.ProductRepository, orderRepo repositories.OrderRepository, userRepo repositories.UserRepository) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		orderRepo:   orderRepo,
		userRepo:    userRepo,
	}
}

// CreateProduct validates the input and creates a product.
func (s *ProductService) CreateProduct(in CreateProductInput) (*models.Product, error) {
	if err := validation.ProductName(in.Name); err != nil {
		return nil, apperrors.Invalid(err.Error())
	}
	if err := validation.Category(in.Category); err != nil {
		return nil, apperrors.Invalid(err.Error())
	}
	if err := validation.PositivePrice(in.Price); err != nil {
		return nil, apperrors.Invalid(err.Error())
	}
	if err := validation.NonNegativeStock(in.Stock); err != nil {
		return nil, apperrors.Invalid(err.Error())
	}

	product := &models.Product{
		Name:     in.Name,
		Category: in.Category,
		Price:    in.Price,
		Stock:    in.Stock,
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, apperrors.Internal("Failed to create product.", err)
	}
	return product, nil
}

// UpdateProduct applies a partial update. Every present field is validated
// before anything is written; absent fields are skipped entirely.
func (s *ProductService) UpdateProduct(id string, in UpdateProductInput) (*models.Product, error) {
	if !validation.IsHexID(id) {
		return nil, apperrors.Invalid("Invalid product ID format.")
	}
	if in.Name != nil {
		if err := validation.ProductName(*in.Name); err != nil {
			return nil, apperrors.Invalid(err.Error())
		}
	}
	if in.Category != nil {
		if err := validation.Category(*in.Category); err != nil {
			return nil, apperrors.Invalid(err.Error())
		}
	}
	if in.Price != nil {
		if err := validation.PositivePrice(*in.Price); err != nil {
			return nil, apperrors.Invalid(err.Error())
		}
	}
	if in.Stock != nil {
		if err := validation.NonNegativeStock(*in.Stock); err != nil {
			return nil, apperrors.Invalid(err.Error())
		}
	}

	product, err := s.productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("Product not found.")
		}
		return nil, apperrors.Internal("Failed to load product.", err)
	}

	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Stock != nil {
		product.Stock = *in.Stock
	}

	if err := s.productRepo.Update(product); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("Product not found.")
		}
		return nil, apperrors.Internal("Failed to update product.", err)
	}
	return product, nil
}

// GetProductByID retrieves a single product.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	if !validation.IsHexID(id) {
		return nil, apperrors.Invalid("Invalid product ID format.")
	}
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("Product not found.")
		}
		return nil, apperrors.Internal("Failed to load product.", err)
	}
	return product, nil
}

// GetUsersByProduct returns the distinct set of users who ordered the
// product. A product with no orders at all is reported as not found, not as
// an empty list.
func (s *ProductService) GetUsersByProduct(productID string) ([]models.User, error) {
	if !validation.IsHexID(productID) {
		return nil, apperrors.Invalid("Invalid product ID format.")
	}

	orders, err := s.orderRepo.FindByProduct(productID)
	if err != nil {
		return nil, apperrors.Internal("Failed to load orders.", err)
	}
	if len(orders) == 0 {
		return nil, apperrors.NotFound("No orders found for this product.")
	}

	seen := make(map[string]bool, len(orders))
	userIDs := make([]string, 0, len(orders))
	for _, order := range orders {
		if !seen[order.UserID] {
			seen[order.UserID] = true
			userIDs = append(userIDs, order.UserID)
		}
	}

	users, err := s.userRepo.GetByIDs(userIDs)
	if err != nil {
		return nil, apperrors.Internal("Failed to load users.", err)
	}
	return users, nil
}

// TotalStock sums the stock across all products.
func (s *ProductService) TotalStock() (int, error) {
	total, err := s.productRepo.TotalStock()
	if err != nil {
		return 0, apperrors.Internal("Failed to sum stock.", err)
	}
	return total, nil
}
