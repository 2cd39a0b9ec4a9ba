package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Princessdada/Blogging-API/internal/domain"
)

// userRepository implements domain.UserRepository using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository with the given GORM DB instance.
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user into the database.
func (r *userRepository) Create(user *domain.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByEmail retrieves a user by email.
func (r *userRepository) GetByEmail(email string) (*domain.User, error) {
	var user domain.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// GetByID retrieves a user by ID.
func (r *userRepository) GetByID(id uint) (*domain.User, error) {
	var user domain.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// SearchIDsByName returns ids of users whose first or last name contains the
// fragment, case-insensitively.
func (r *userRepository) SearchIDsByName(name string) ([]uint, error) {
	var ids []uint
	like := "%" + name + "%"
	err := r.db.Model(&domain.User{}).
		Where("first_name ILIKE ? OR last_name ILIKE ?", like, like).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	return ids, nil
}
