package repositories

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"katalog/internal/models"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// Create creates a new order, generating an id when none is set.
func (r *GORMOrderRepository) Create(order *models.Order) error {
	if order.ID == "" {
		order.ID = models.NewID()
	}
	if err := r.db.Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// GetByID retrieves a single order by its ID.
func (r *GORMOrderRepository) GetByID(id string) (*models.Order, error) {
	var order models.Order
	if err := r.db.First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get order by ID %s: %w", id, err)
	}
	return &order, nil
}

// Update saves all fields of an existing order.
func (r *GORMOrderRepository) Update(order *models.Order) error {
	res := r.db.Save(order)
	if res.Error != nil {
		return fmt.Errorf("failed to update order: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("order with ID %s: %w", order.ID, ErrNotFound)
	}
	return nil
}

// FindByProduct returns every order referencing the product.
func (r *GORMOrderRepository) FindByProduct(productID string) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Where("product_id = ?", productID).Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to find orders for product %s: %w", productID, err)
	}
	return orders, nil
}

// FindByUser returns every order referencing the user.
func (r *GORMOrderRepository) FindByUser(userID string) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Where("user_id = ?", userID).Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to find orders for user %s: %w", userID, err)
	}
	return orders, nil
}

// FindSince returns every order placed at or after t.
func (r *GORMOrderRepository) FindSince(t time.Time) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Where("order_date >= ?", t).Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to find orders since %s: %w", t, err)
	}
	return orders, nil
}
