package repositories

import "katalog/internal/models"

// UserRepository defines the interface for user data access. Implementations
// enforce the uniqueness of email and phone and report violations with
// ErrDuplicate.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByIDs(ids []string) ([]models.User, error)
	Update(user *models.User) error
}
