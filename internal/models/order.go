package models

import "time"

// Order references its user and product by id only. UserID and ProductID are
// fixed at creation; only Quantity may change afterwards.
type Order struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(24)"`
	UserID    string    `json:"userId" gorm:"type:varchar(24);index"`
	ProductID string    `json:"productId" gorm:"type:varchar(24);index"`
	Quantity  int       `json:"quantity"`
	OrderDate time.Time `json:"orderDate" gorm:"index"`
}

// OrderDetail is an order expanded with the records it references. Queries
// that join orders with users or products return this shape; a reference
// that cannot be resolved is left nil and omitted from the JSON.
type OrderDetail struct {
	Order
	User    *User    `json:"user,omitempty"`
	Product *Product `json:"product,omitempty"`
}
