package services

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"katalog/internal/apperrors"
	"katalog/internal/models"
	"katalog/internal/repositories"
	"katalog/internal/validation"
)

// recentOrderWindow is how far back the recent-orders query reaches.
const recentOrderWindow = 7 * 24 * time.Hour

// CreateOrderInput is the request body for creating an order.
type CreateOrderInput struct {
	UserID    string `json:"userId"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// UpdateOrderInput is the request body for updating an order's quantity.
type UpdateOrderInput struct {
	Quantity int `json:"quantity"`
}

// EventPublisher publishes order events to a message broker. The RabbitMQ
// client satisfies it; the service runs fine without one.
type EventPublisher interface {
	Publish(body []byte) error
}

// OrderService owns the stock reconciliation logic: the only place where a
// product's stock and an order's quantity change together. Stock moves
// through ProductRepository.AdjustStock, whose conditional update keeps the
// count non-negative even under concurrent callers.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	userRepo    repositories.UserRepository
	publisher   EventPublisher
}

// NewOrderService creates a new OrderService. publisher may be nil, in which
// case no events are published.
func NewOrderService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository, userRepo repositories.UserRepository, publisher EventPublisher) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		publisher:   publisher,
	}
}

// CreateOrder validates the input, reserves stock and records the order.
// The reservation happens first, through a single conditional decrement, so
// a concurrent order for the last units loses cleanly with insufficient
// stock instead of driving the count negative. If recording the order then
// fails, the reservation is released.
func (s *OrderService) CreateOrder(in CreateOrderInput) (*models.Order, error) {
	if !validation.IsHexID(in.UserID) {
		return nil, apperrors.Invalid("Invalid user ID format.")
	}
	if !validation.IsHexID(in.ProductID) {
		return nil, apperrors.Invalid("Invalid product ID format.")
	}
	if err := validation.PositiveQuantity(in.Quantity); err != nil {
		return nil, apperrors.Invalid(err.Error())
	}

	product, err := s.productRepo.GetByID(in.ProductID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("Product not found.")
		}
		return nil, apperrors.Internal("Failed to load product.", err)
	}
	if product.Stock < in.Quantity {
		return nil, apperrors.InsufficientStock("Insufficient stock for the product.")
	}

	if err := s.productRepo.AdjustStock(in.ProductID, -in.Quantity); err != nil {
		switch {
		case errors.Is(err, repositories.ErrInsufficientStock):
			return nil, apperrors.InsufficientStock("Insufficient stock for the product.")
		case errors.Is(err, repositories.ErrNotFound):
			return nil, apperrors.NotFound("Product not found.")
		}
		return nil, apperrors.Internal("Failed to reserve stock.", err)
	}

	order := &models.Order{
		UserID:    in.UserID,
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		OrderDate: time.Now(),
	}
	if err := s.orderRepo.Create(order); err != nil {
		// The reservation is useless without the order; put the stock back.
		if restockErr := s.productRepo.AdjustStock(in.ProductID, in.Quantity); restockErr != nil {
			log.Printf("Failed to release reserved stock for product %s: %v", in.ProductID, restockErr)
		}
		return nil, apperrors.Internal("Failed to create order.", err)
	}

	s.publishEvent("order.created", order)
	return order, nil
}

// UpdateOrder changes an order's quantity and moves the difference through
// the product's stock. Growing the order reserves the delta conditionally;
// shrinking it restocks unconditionally; an unchanged quantity touches no
// stock at all.
func (s *OrderService) UpdateOrder(id string, in UpdateOrderInput) (*models.Order, error) {
	if !validation.IsHexID(id) {
		return nil, apperrors.Invalid("Invalid order ID format.")
	}
	if err := validation.PositiveQuantity(in.Quantity); err != nil {
		return nil, apperrors.Invalid(err.Error())
	}

	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("Order not found.")
		}
		return nil, apperrors.Internal("Failed to load order.", err)
	}

	// An orphaned product reference is reported like any other missing
	// product.
	if _, err := s.productRepo.GetByID(order.ProductID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("Product not found.")
		}
		return nil, apperrors.Internal("Failed to load product.", err)
	}

	delta := in.Quantity - order.Quantity
	if delta != 0 {
		if err := s.productRepo.AdjustStock(order.ProductID, -delta); err != nil {
			switch {
			case errors.Is(err, repositories.ErrInsufficientStock):
				return nil, apperrors.InsufficientStock("Insufficient stock for the product.")
			case errors.Is(err, repositories.ErrNotFound):
				return nil, apperrors.NotFound("Product not found.")
			}
			return nil, apperrors.Internal("Failed to adjust stock.", err)
		}
	}

	order.Quantity = in.Quantity
	if err := s.orderRepo.Update(order); err != nil {
		if delta != 0 {
			if restockErr := s.productRepo.AdjustStock(order.ProductID, delta); restockErr != nil {
				log.Printf("Failed to revert stock adjustment for product %s: %v", order.ProductID, restockErr)
			}
		}
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("Order not found.")
		}
		return nil, apperrors.Internal("Failed to update order.", err)
	}

	s.publishEvent("order.updated", order)
	return order, nil
}

// GetOrderByID retrieves a single order.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	if !validation.IsHexID(id) {
		return nil, apperrors.Invalid("Invalid order ID format.")
	}
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("Order not found.")
		}
		return nil, apperrors.Internal("Failed to load order.", err)
	}
	return order, nil
}

// GetRecentOrders returns every order from the last seven days, each
// expanded with its user and product. No orders in the window is an empty
// list, not an error.
func (s *OrderService) GetRecentOrders() ([]models.OrderDetail, error) {
	since := time.Now().Add(-recentOrderWindow)
	orders, err := s.orderRepo.FindSince(since)
	if err != nil {
		return nil, apperrors.Internal("Failed to load orders.", err)
	}

	details := make([]models.OrderDetail, 0, len(orders))
	for _, order := range orders {
		detail := models.OrderDetail{Order: order}

		user, err := s.userRepo.GetByID(order.UserID)
		if err != nil && !errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.Internal("Failed to load user.", err)
		}
		detail.User = user

		product, err := s.productRepo.GetByID(order.ProductID)
		if err != nil && !errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.Internal("Failed to load product.", err)
		}
		detail.Product = product

		details = append(details, detail)
	}
	return details, nil
}

func (s *OrderService) publishEvent(eventType string, order *models.Order) {
	if s.publisher == nil {
		return
	}
	body, err := json.Marshal(map[string]interface{}{
		"eventId":   uuid.NewString(),
		"eventType": eventType,
		"orderId":   order.ID,
		"userId":    order.UserID,
		"productId": order.ProductID,
		"quantity":  order.Quantity,
	})
	if err != nil {
		log.Printf("Failed to marshal %s event for order %s: %v", eventType, order.ID, err)
		return
	}
	if err := s.publisher.Publish(body); err != nil {
		log.Printf("Warning: failed to publish %s event for order %s: %v", eventType, order.ID, err)
	}
}
