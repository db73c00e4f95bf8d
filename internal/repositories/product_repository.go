package repositories

import "katalog/internal/models"

// ProductRepository defines the interface for product data access.
//
// AdjustStock is the store-level contract the stock reconciliation logic
// relies on: a single conditional update that adds delta to the product's
// stock only if the result stays non-negative. A violation is reported with
// ErrInsufficientStock, a missing product with ErrNotFound. Implementations
// must make the check-and-write atomic with respect to concurrent callers.
type ProductRepository interface {
	Create(product *models.Product) error
	GetByID(id string) (*models.Product, error)
	Update(product *models.Product) error
	AdjustStock(id string, delta int) error
	TotalStock() (int, error)
}
