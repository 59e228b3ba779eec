package repository

import (
	"context"
	"errors"

	"sendmo/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository exposes the slice of user state this service touches:
// the default shipping address.
type UserRepository interface {
	// FindByID returns (nil, nil) when the user does not exist.
	FindByID(ctx context.Context, id string) (*models.User, error)
	SetDefaultAddress(ctx context.Context, userID string, addressID uuid.UUID) error
}

// GormUserRepository implements UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GormUserRepository.
func NewGormUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *GormUserRepository) SetDefaultAddress(ctx context.Context, userID string, addressID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Update("default_shipping_address_id", addressID).Error
}
