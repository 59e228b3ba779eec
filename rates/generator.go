package rates

import (
	"fmt"
	"math"
	"strings"

	"sendmo/models"
)

type sizeSpeed struct {
	size  models.PackageSize
	speed models.ShippingSpeed
}

// carrierSpec is the declarative pricing rule set for one carrier. A
// combination is offered when the speed has a service name and the pair is
// not explicitly excluded; adding a carrier is a data change.
type carrierSpec struct {
	name       string
	multiplier float64
	services   map[models.ShippingSpeed]string
	excluded   map[sizeSpeed]bool
}

var carriers = []carrierSpec{
	{
		name:       "USPS",
		multiplier: 1.0,
		services: map[models.ShippingSpeed]string{
			models.SpeedOvernight: "Priority Mail Express",
			models.SpeedFast:      "Priority Mail",
			models.SpeedStandard:  "Ground Advantage",
			models.SpeedEconomy:   "Parcel Select",
		},
	},
	{
		name:       "UPS",
		multiplier: 1.15,
		services: map[models.ShippingSpeed]string{
			models.SpeedOvernight: "Next Day Air",
			models.SpeedFast:      "2nd Day Air",
			models.SpeedStandard:  "Ground",
			models.SpeedEconomy:   "SurePost",
		},
		// No SurePost for envelopes.
		excluded: map[sizeSpeed]bool{
			{models.SizeEnvelope, models.SpeedEconomy}: true,
		},
	},
	{
		// Premium pricing, no economy tier at all.
		name:       "FedEx",
		multiplier: 1.25,
		services: map[models.ShippingSpeed]string{
			models.SpeedOvernight: "Priority Overnight",
			models.SpeedFast:      "2Day",
			models.SpeedStandard:  "Home Delivery",
		},
	},
}

// Generate produces the full catalog of carrier rate offers: for every
// (size, speed) pair each carrier either prices the base rate through its
// multiplier or declines the combination entirely. Output order is sizes x
// speeds x carriers as declared; callers sort as needed.
func Generate() []models.RateOffer {
	var offers []models.RateOffer
	for _, size := range PackageSizes {
		for _, speed := range SpeedOptions {
			base := baseRateCents[size.ID][speed.ID]
			for _, c := range carriers {
				service, ok := c.services[speed.ID]
				if !ok || c.excluded[sizeSpeed{size.ID, speed.ID}] {
					continue
				}
				offers = append(offers, models.RateOffer{
					ID:            fmt.Sprintf("%s-%s-%s", strings.ToLower(c.name), size.ID, speed.ID),
					Carrier:       c.name,
					Service:       service,
					Size:          size.ID,
					Speed:         speed.ID,
					PriceCents:    int(math.Round(float64(base) * c.multiplier)),
					EstimatedDays: speed.Days,
					WeightLimitOz: size.MaxWeightOz,
				})
			}
		}
	}
	return offers
}
