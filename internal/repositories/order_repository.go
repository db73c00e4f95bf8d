package repositories

import (
	"time"

	"katalog/internal/models"
)

// OrderRepository defines the interface for order data access. The filter
// queries impose no ordering on their results.
type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id string) (*models.Order, error)
	Update(order *models.Order) error
	FindByProduct(productID string) ([]models.Order, error)
	FindByUser(userID string) ([]models.Order, error)
	FindSince(t time.Time) ([]models.Order, error)
}
