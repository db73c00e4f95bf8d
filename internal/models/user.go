package models

// User represents a customer of the catalog. Email and phone are unique
// across all users; the constraint lives on the store, not in application
// pre-checks.
type User struct {
	ID    string `json:"id" gorm:"primaryKey;type:varchar(24)"`
	Name  string `json:"name" gorm:"type:varchar(50)"`
	Email string `json:"email" gorm:"uniqueIndex;type:varchar(255)"`
	Phone string `json:"phone" gorm:"uniqueIndex;type:varchar(10)"`
}
