// Package rates owns the shipping-rate catalog: static size/speed tiers,
// per-carrier offer generation, matrix reduction, and live-quote
// normalization. Everything here is pure computation; callers own I/O.
package rates

import "sendmo/models"

// PackageSizes lists the supported size tiers, smallest first.
var PackageSizes = []models.PackageSizeConfig{
	{ID: models.SizeEnvelope, Label: "Envelope", MaxWeightOz: 16, Dimensions: `Up to 12" x 9"`},
	{ID: models.SizeSmall, Label: "Small Box", MaxWeightOz: 32, Dimensions: `8" x 6" x 4"`},
	{ID: models.SizeMedium, Label: "Medium Box", MaxWeightOz: 96, Dimensions: `12" x 9" x 6"`},
	{ID: models.SizeLarge, Label: "Large Box", MaxWeightOz: 160, Dimensions: `18" x 12" x 10"`},
}

// SpeedOptions lists the supported delivery speeds, fastest first.
var SpeedOptions = []models.SpeedConfig{
	{ID: models.SpeedOvernight, Label: "Overnight", Days: 1},
	{ID: models.SpeedFast, Label: "2-3 Days", Days: 3},
	{ID: models.SpeedStandard, Label: "3-5 Days", Days: 5},
	{ID: models.SpeedEconomy, Label: "5-7 Days", Days: 7},
}

// baseRateCents is the carrier-agnostic base price per (size, speed), in
// cents. Carrier multipliers are applied on top of these.
var baseRateCents = map[models.PackageSize]map[models.ShippingSpeed]int{
	models.SizeEnvelope: {
		models.SpeedOvernight: 2500,
		models.SpeedFast:      800,
		models.SpeedStandard:  500,
		models.SpeedEconomy:   350,
	},
	models.SizeSmall: {
		models.SpeedOvernight: 3500,
		models.SpeedFast:      1200,
		models.SpeedStandard:  850,
		models.SpeedEconomy:   600,
	},
	models.SizeMedium: {
		models.SpeedOvernight: 4500,
		models.SpeedFast:      1800,
		models.SpeedStandard:  1250,
		models.SpeedEconomy:   900,
	},
	models.SizeLarge: {
		models.SpeedOvernight: 6500,
		models.SpeedFast:      2500,
		models.SpeedStandard:  1800,
		models.SpeedEconomy:   1300,
	},
}

// SizeConfig returns the config for a size tier.
func SizeConfig(id models.PackageSize) (models.PackageSizeConfig, bool) {
	for _, s := range PackageSizes {
		if s.ID == id {
			return s, true
		}
	}
	return models.PackageSizeConfig{}, false
}

// SpeedConfigFor returns the config for a speed tier.
func SpeedConfigFor(id models.ShippingSpeed) (models.SpeedConfig, bool) {
	for _, s := range SpeedOptions {
		if s.ID == id {
			return s, true
		}
	}
	return models.SpeedConfig{}, false
}

// MaxWeightOz is the heaviest parcel any size tier accepts.
func MaxWeightOz() int {
	max := 0
	for _, s := range PackageSizes {
		if s.MaxWeightOz > max {
			max = s.MaxWeightOz
		}
	}
	return max
}
