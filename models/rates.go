package models

// PackageSize identifies one of the fixed package-size tiers.
type PackageSize string

const (
	SizeEnvelope PackageSize = "envelope"
	SizeSmall    PackageSize = "small"
	SizeMedium   PackageSize = "medium"
	SizeLarge    PackageSize = "large"
)

// ShippingSpeed identifies one of the fixed delivery-speed tiers.
type ShippingSpeed string

const (
	SpeedOvernight ShippingSpeed = "overnight"
	SpeedFast      ShippingSpeed = "fast"
	SpeedStandard  ShippingSpeed = "standard"
	SpeedEconomy   ShippingSpeed = "economy"
)

// PackageSizeConfig describes a package-size tier. Static reference data.
type PackageSizeConfig struct {
	ID          PackageSize `json:"id"`
	Label       string      `json:"label"`
	MaxWeightOz int         `json:"max_weight_oz"`
	Dimensions  string      `json:"dimensions"` // display only
}

// SpeedConfig describes a delivery-speed tier. Static reference data.
type SpeedConfig struct {
	ID    ShippingSpeed `json:"id"`
	Label string        `json:"label"`
	Days  int           `json:"days"`
}

// RateOffer is one priced catalog option: a carrier service for a given
// size/speed combination. Prices are integer cents.
type RateOffer struct {
	ID            string        `json:"id"`
	Carrier       string        `json:"carrier"` // "USPS", "UPS", "FedEx"
	Service       string        `json:"service"` // "Priority Mail Express", "Ground", etc.
	Size          PackageSize   `json:"size"`
	Speed         ShippingSpeed `json:"speed"`
	PriceCents    int           `json:"price_cents"`
	EstimatedDays int           `json:"estimated_days"`
	WeightLimitOz int           `json:"weight_limit_oz"`
}

// RawRate is a single unprocessed rate from the carrier aggregator. The
// price arrives as a decimal string and delivery estimates may be absent.
type RawRate struct {
	ID              string `json:"id"`
	Carrier         string `json:"carrier"`
	Service         string `json:"service"`
	Rate            string `json:"rate"`
	EstDeliveryDays *int   `json:"est_delivery_days"`
	DeliveryDays    *int   `json:"delivery_days"`
}

// NormalizedRate is a live quote after markup and filtering. DeliveryDays
// is nil when the carrier gave no estimate.
type NormalizedRate struct {
	Carrier            string  `json:"carrier"`
	Service            string  `json:"service"`
	BasePrice          float64 `json:"-"`
	DisplayPrice       float64 `json:"display_price"`
	DeliveryDays       *int    `json:"delivery_days"`
	EasyPostShipmentID string  `json:"easypost_shipment_id"`
	EasyPostRateID     string  `json:"easypost_rate_id"`
}

// Parcel is the package estimate sent to the aggregator. Dimensions in
// inches, weight in ounces.
type Parcel struct {
	Length   float64 `json:"length" binding:"required,gt=0"`
	Width    float64 `json:"width" binding:"required,gt=0"`
	Height   float64 `json:"height" binding:"required,gt=0"`
	WeightOz float64 `json:"weight_oz" binding:"required,gt=0"`
}

// LiveRatesRequest is the payload for fetching live carrier quotes.
type LiveRatesRequest struct {
	From   AddressInput `json:"from_address" binding:"required"`
	To     AddressInput `json:"to_address" binding:"required"`
	Parcel Parcel       `json:"parcel" binding:"required"`
}

// MatrixCell is one size/speed cell of the estimate matrix. Rate is nil
// when no carrier offers the combination for the requested weight.
type MatrixCell struct {
	Size  PackageSize   `json:"size"`
	Speed ShippingSpeed `json:"speed"`
	Rate  *RateOffer    `json:"rate"`
}

// RateEstimates is the catalog view returned for a weight estimate: the
// reduced matrix plus the full list sorted by price.
type RateEstimates struct {
	WeightOz int          `json:"weight_oz"`
	Matrix   []MatrixCell `json:"matrix"`
	List     []RateOffer  `json:"rates"`
}
