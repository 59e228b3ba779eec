package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShipmentStatus constants.
const (
	ShipmentStatusPurchased = "purchased"
	ShipmentStatusFailed    = "failed"
)

// Shipment is the GORM model for a purchased label.
type Shipment struct {
	ID                 uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID             string         `gorm:"type:varchar(128);index" json:"user_id"`
	EasyPostShipmentID string         `gorm:"type:varchar(256);index" json:"easypost_shipment_id"`
	EasyPostRateID     string         `gorm:"type:varchar(256)" json:"easypost_rate_id"`
	Carrier            string         `gorm:"type:varchar(64)" json:"carrier"`
	Service            string         `gorm:"type:varchar(128)" json:"service"`
	DisplayPrice       float64        `json:"display_price"`
	TrackingCode       string         `gorm:"type:varchar(256);index" json:"tracking_code"`
	LabelURL           string         `gorm:"type:varchar(1024)" json:"label_url"`
	Status             string         `gorm:"type:varchar(32);not null;default:'purchased'" json:"status"`
	CreatedAt          time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}

// BuyLabelRequest is the payload for purchasing a previously quoted rate.
type BuyLabelRequest struct {
	RateID       string  `json:"rate_id" binding:"required"`
	UserID       string  `json:"user_id,omitempty"`
	DisplayPrice float64 `json:"display_price,omitempty"`
}

// PurchaseInfo is returned by the aggregator after a successful label buy.
type PurchaseInfo struct {
	TrackingCode  string `json:"tracking_code"`
	LabelURL      string `json:"label_url"`
	Carrier       string `json:"carrier"`
	Service       string `json:"service"`
	TransactionID string `json:"transaction_id"`
}

// LabelPurchasedEvent is published to SNS when a label is bought.
type LabelPurchasedEvent struct {
	EventType    string    `json:"event_type"`
	ShipmentID   string    `json:"shipment_id"`
	UserID       string    `json:"user_id"`
	TrackingCode string    `json:"tracking_code"`
	Carrier      string    `json:"carrier"`
	LabelURL     string    `json:"label_url"`
	Timestamp    time.Time `json:"timestamp"`
}
