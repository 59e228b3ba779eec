package repository

import (
	"context"
	"errors"

	"sendmo/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AddressRepository defines data-access operations for cached addresses.
type AddressRepository interface {
	// FindVerified looks up a previously verified address matching
	// case-insensitively on street1/city/state and exactly on zip,
	// preferring the most recently used. Returns (nil, nil) on no match.
	FindVerified(ctx context.Context, addr models.AddressInput) (*models.Address, error)
	Create(ctx context.Context, addr *models.Address) error
	// TouchUsage increments the usage counter and refreshes the
	// last-used timestamp of a cache row.
	TouchUsage(ctx context.Context, id uuid.UUID) error
}

// GormAddressRepository implements AddressRepository using GORM.
type GormAddressRepository struct {
	db *gorm.DB
}

// NewGormAddressRepository creates a new GormAddressRepository.
func NewGormAddressRepository(db *gorm.DB) AddressRepository {
	return &GormAddressRepository{db: db}
}

func (r *GormAddressRepository) FindVerified(ctx context.Context, addr models.AddressInput) (*models.Address, error) {
	var a models.Address
	err := r.db.WithContext(ctx).
		Where("LOWER(street1) = LOWER(?)", addr.Street1).
		Where("LOWER(city) = LOWER(?)", addr.City).
		Where("LOWER(state) = LOWER(?)", addr.State).
		Where("zip = ?", addr.Zip).
		Where("verified = ?", true).
		Order("last_used_at DESC").
		First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *GormAddressRepository) Create(ctx context.Context, addr *models.Address) error {
	return r.db.WithContext(ctx).Create(addr).Error
}

func (r *GormAddressRepository) TouchUsage(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&models.Address{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"used_count":   gorm.Expr("used_count + 1"),
			"last_used_at": gorm.Expr("NOW()"),
		}).Error
}
