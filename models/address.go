package models

import (
	"time"

	"github.com/google/uuid"
)

// AddressInput is a structured address as supplied by a caller or returned
// after correction.
type AddressInput struct {
	Street1 string `json:"street1" binding:"required"`
	Street2 string `json:"street2,omitempty"`
	City    string `json:"city" binding:"required"`
	State   string `json:"state"`
	Zip     string `json:"zip" binding:"required"`
	Country string `json:"country"` // defaults to "US"
}

// VerifyAddressRequest accepts either a structured address or a free-text
// block to be parsed first.
type VerifyAddressRequest struct {
	AddressString string        `json:"address_string,omitempty"`
	Address       *AddressInput `json:"address,omitempty"`
	UserID        string        `json:"user_id,omitempty"`
}

// VerificationResult is the outcome of resolving an address: validity,
// the canonical corrected form, and non-blocking correction suggestions.
type VerificationResult struct {
	Valid           bool          `json:"valid"`
	Verified        bool          `json:"verified"`
	Corrected       *AddressInput `json:"corrected,omitempty"`
	EasyPostID      string        `json:"easypost_id,omitempty"`
	Suggestions     []string      `json:"suggestions"`
	Errors          []string      `json:"errors"`
	CachedAddressID string        `json:"cached_address_id,omitempty"`
}

// Address is the GORM model for a cached verified address. Rows are created
// on first verification and only ever updated with usage metadata.
type Address struct {
	ID               uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID           *string    `gorm:"type:varchar(128);index" json:"user_id,omitempty"`
	Street1          string     `gorm:"type:varchar(256);not null;index" json:"street1"`
	Street2          string     `gorm:"type:varchar(256)" json:"street2,omitempty"`
	City             string     `gorm:"type:varchar(128);not null" json:"city"`
	State            string     `gorm:"type:varchar(64)" json:"state"`
	Zip              string     `gorm:"type:varchar(16);not null;index" json:"zip"`
	Country          string     `gorm:"type:varchar(8);not null;default:'US'" json:"country"`
	Verified         bool       `gorm:"not null;default:false;index" json:"verified"`
	VerifiedAt       *time.Time `json:"verified_at,omitempty"`
	EasyPostID       string     `gorm:"type:varchar(256)" json:"easypost_id"`
	VerificationData string     `gorm:"type:jsonb" json:"-"`
	UsedCount        int        `gorm:"not null;default:0" json:"used_count"`
	LastUsedAt       time.Time  `gorm:"index" json:"last_used_at"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// Input returns the address as a structured input value.
func (a *Address) Input() AddressInput {
	return AddressInput{
		Street1: a.Street1,
		Street2: a.Street2,
		City:    a.City,
		State:   a.State,
		Zip:     a.Zip,
		Country: a.Country,
	}
}

// User is the GORM model for an account. Only the default shipping address
// matters to this service; the rest of the profile lives elsewhere.
type User struct {
	ID                       string     `gorm:"type:varchar(128);primaryKey" json:"id"`
	DefaultShippingAddressID *uuid.UUID `gorm:"type:uuid" json:"default_shipping_address_id,omitempty"`
	CreatedAt                time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt                time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}
