package rates

import (
	"math"
	"sort"
	"strconv"

	"sendmo/models"
)

// Pricing defaults applied to live quotes.
const (
	DefaultMarkupMultiplier = 1.15
	DefaultMaxDisplayPrice  = 200.0 // dollars
)

// Normalize converts raw aggregator rates into display quotes: the markup
// multiplier is applied, the result rounded to cents, anything above the
// display-price ceiling dropped, and the remainder sorted ascending by
// display price (stable on ties). Rates with unparseable prices are
// dropped. An empty result means no rates are available; it is not an
// error.
//
// The delivery estimate prefers est_delivery_days over delivery_days and
// stays nil when the carrier reported neither.
func Normalize(raw []models.RawRate, shipmentID string, markup, maxDisplayPrice float64) []models.NormalizedRate {
	out := make([]models.NormalizedRate, 0, len(raw))
	for _, r := range raw {
		base, err := strconv.ParseFloat(r.Rate, 64)
		if err != nil {
			continue
		}
		display := math.Round(base*markup*100) / 100
		if display > maxDisplayPrice {
			continue
		}
		days := r.EstDeliveryDays
		if days == nil {
			days = r.DeliveryDays
		}
		out = append(out, models.NormalizedRate{
			Carrier:            r.Carrier,
			Service:            r.Service,
			BasePrice:          base,
			DisplayPrice:       display,
			DeliveryDays:       days,
			EasyPostShipmentID: shipmentID,
			EasyPostRateID:     r.ID,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DisplayPrice < out[j].DisplayPrice
	})
	return out
}
