package repositories

import (
	"fmt"
	"sync"

	"katalog/internal/models"
)

// MockUserRepository is an in-memory implementation of UserRepository. It
// enforces the same email/phone uniqueness contract as the GORM
// implementation.
type MockUserRepository struct {
	users   map[string]models.User
	byEmail map[string]string
	byPhone map[string]string
	mu      sync.RWMutex
}

// NewMockUserRepository creates a new instance of MockUserRepository.
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users:   make(map[string]models.User),
		byEmail: make(map[string]string),
		byPhone: make(map[string]string),
	}
}

// Create adds a new user, rejecting duplicate email or phone.
func (r *MockUserRepository) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byEmail[user.Email]; taken {
		return fmt.Errorf("user with email %s: %w", user.Email, ErrDuplicate)
	}
	if _, taken := r.byPhone[user.Phone]; taken {
		return fmt.Errorf("user with phone %s: %w", user.Phone, ErrDuplicate)
	}

	if user.ID == "" {
		user.ID = models.NewID()
	}
	r.users[user.ID] = *user
	r.byEmail[user.Email] = user.ID
	r.byPhone[user.Phone] = user.ID
	return nil
}

// GetByID returns a user by their ID.
func (r *MockUserRepository) GetByID(id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user with ID %s: %w", id, ErrNotFound)
	}
	return &user, nil
}

// GetByIDs returns every user whose id appears in ids.
func (r *MockUserRepository) GetByIDs(ids []string) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]models.User, 0, len(ids))
	for _, id := range ids {
		if user, ok := r.users[id]; ok {
			users = append(users, user)
		}
	}
	return users, nil
}

// Update modifies an existing user, keeping the uniqueness indexes in step.
func (r *MockUserRepository) Update(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.users[user.ID]
	if !ok {
		return fmt.Errorf("user with ID %s: %w", user.ID, ErrNotFound)
	}
	if owner, taken := r.byEmail[user.Email]; taken && owner != user.ID {
		return fmt.Errorf("user with email %s: %w", user.Email, ErrDuplicate)
	}
	if owner, taken := r.byPhone[user.Phone]; taken && owner != user.ID {
		return fmt.Errorf("user with phone %s: %w", user.Phone, ErrDuplicate)
	}

	delete(r.byEmail, current.Email)
	delete(r.byPhone, current.Phone)
	r.users[user.ID] = *user
	r.byEmail[user.Email] = user.ID
	r.byPhone[user.Phone] = user.ID
	return nil
}
