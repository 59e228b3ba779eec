package rates_test

import (
	"testing"

	"sendmo/models"
	"sendmo/rates"

	"github.com/stretchr/testify/assert"
)

func offersByID(t *testing.T) map[string]models.RateOffer {
	t.Helper()
	out := map[string]models.RateOffer{}
	for _, o := range rates.Generate() {
		_, dup := out[o.ID]
		assert.False(t, dup, "duplicate offer id %s", o.ID)
		out[o.ID] = o
	}
	return out
}

func TestGenerate_OfferCount(t *testing.T) {
	offers := rates.Generate()

	// USPS covers all 16 combinations, UPS all but envelope+economy,
	// FedEx only the three non-economy speeds.
	assert.Len(t, offers, 16+15+12)
}

func TestGenerate_CarrierMultipliers(t *testing.T) {
	byID := offersByID(t)

	// envelope/overnight base is 2500 cents
	assert.Equal(t, 2500, byID["usps-envelope-overnight"].PriceCents)
	assert.Equal(t, 2875, byID["ups-envelope-overnight"].PriceCents)
	assert.Equal(t, 3125, byID["fedex-envelope-overnight"].PriceCents)
}

func TestGenerate_Exclusions(t *testing.T) {
	byID := offersByID(t)

	_, upsEnvelopeEconomy := byID["ups-envelope-economy"]
	assert.False(t, upsEnvelopeEconomy)
	// UPS offers economy for every other size
	_, upsSmallEconomy := byID["ups-small-economy"]
	assert.True(t, upsSmallEconomy)

	for _, size := range rates.PackageSizes {
		_, ok := byID["fedex-"+string(size.ID)+"-economy"]
		assert.False(t, ok, "FedEx should not offer economy for %s", size.ID)
	}
}

func TestGenerate_ServiceNames(t *testing.T) {
	byID := offersByID(t)

	assert.Equal(t, "Priority Mail Express", byID["usps-small-overnight"].Service)
	assert.Equal(t, "Ground Advantage", byID["usps-large-standard"].Service)
	assert.Equal(t, "2nd Day Air", byID["ups-medium-fast"].Service)
	assert.Equal(t, "Home Delivery", byID["fedex-medium-standard"].Service)
}

func TestGenerate_WeightLimitMatchesSizeTier(t *testing.T) {
	for _, o := range rates.Generate() {
		size, ok := rates.SizeConfig(o.Size)
		assert.True(t, ok)
		assert.Equal(t, size.MaxWeightOz, o.WeightLimitOz, "offer %s", o.ID)
		assert.Positive(t, o.PriceCents, "offer %s", o.ID)
	}
}

func TestGenerate_EstimatedDaysFromSpeedTier(t *testing.T) {
	for _, o := range rates.Generate() {
		speed, ok := rates.SpeedConfigFor(o.Speed)
		assert.True(t, ok)
		assert.Equal(t, speed.Days, o.EstimatedDays, "offer %s", o.ID)
	}
}
