package models

// Product represents an item in the catalog. Stock is the single source of
// truth for availability: orders hold a quantity but never track a reserved
// amount of their own.
type Product struct {
	ID       string  `json:"id" gorm:"primaryKey;type:varchar(24)"`
	Name     string  `json:"name" gorm:"type:varchar(50);index"`
	Category string  `json:"category" gorm:"type:varchar(50);index"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
}
