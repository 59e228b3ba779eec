package providers

import (
	"context"
	"encoding/json"
	"errors"

	"sendmo/models"
)

// ErrNotConfigured is returned when the carrier aggregator cannot be called
// because no API key is set. Callers surface this as "service unavailable",
// never as an invalid address or missing rates.
var ErrNotConfigured = errors.New("easypost API key not configured")

// VerifiedAddress is the aggregator's answer to an address verification:
// the canonical corrected form plus the delivery-verification outcome.
// Messages carries the human-readable reasons when Success is false.
type VerifiedAddress struct {
	Success    bool
	Address    models.AddressInput
	EasyPostID string
	Messages   []string
	Raw        json.RawMessage
}

// ShipmentQuote is a created shipment and its raw carrier rates.
type ShipmentQuote struct {
	ShipmentID string
	Rates      []models.RawRate
}

// ShippingProvider abstracts the carrier aggregator (EasyPost).
type ShippingProvider interface {
	VerifyAddress(ctx context.Context, addr models.AddressInput) (*VerifiedAddress, error)
	CreateShipment(ctx context.Context, from, to models.AddressInput, parcel models.Parcel) (*ShipmentQuote, error)
	BuyShipment(ctx context.Context, shipmentID, rateID string) (*models.PurchaseInfo, error)
}
