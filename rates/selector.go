package rates

import (
	"errors"
	"sort"

	"sendmo/models"
)

// ErrInvalidWeight is returned when a caller passes a non-positive target
// weight. Weight filtering never silently clamps.
var ErrInvalidWeight = errors.New("target weight must be a positive number of ounces")

// AvailableRates returns the offers whose weight ceiling accommodates the
// target weight, sorted ascending by price. Equal prices keep their input
// order. An empty result is valid: it means no tier fits the weight.
func AvailableRates(offers []models.RateOffer, weightOz int) ([]models.RateOffer, error) {
	if weightOz <= 0 {
		return nil, ErrInvalidWeight
	}
	filtered := make([]models.RateOffer, 0, len(offers))
	for _, o := range offers {
		if o.WeightLimitOz >= weightOz {
			filtered = append(filtered, o)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].PriceCents < filtered[j].PriceCents
	})
	return filtered, nil
}

// BestForCell reduces a rate set to the single cheapest offer matching the
// given size and speed, after weight filtering. Ties go to the first
// occurrence in input order. Returns (nil, nil) when the cell is
// unavailable for the target weight.
func BestForCell(offers []models.RateOffer, size models.PackageSize, speed models.ShippingSpeed, weightOz int) (*models.RateOffer, error) {
	if weightOz <= 0 {
		return nil, ErrInvalidWeight
	}
	var best *models.RateOffer
	for i := range offers {
		o := &offers[i]
		if o.Size != size || o.Speed != speed || o.WeightLimitOz < weightOz {
			continue
		}
		if best == nil || o.PriceCents < best.PriceCents {
			best = o
		}
	}
	if best == nil {
		return nil, nil
	}
	out := *best
	return &out, nil
}
