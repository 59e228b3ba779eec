package providers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sendmo/models"
	"sendmo/providers"

	"github.com/stretchr/testify/assert"
)

func testAddress() models.AddressInput {
	return models.AddressInput{Street1: "123 Main St", City: "New York", State: "NY", Zip: "10001"}
}

func TestVerifyAddress_NotConfigured(t *testing.T) {
	p := providers.NewEasyPostProvider("")

	_, err := p.VerifyAddress(context.Background(), testAddress())
	assert.ErrorIs(t, err, providers.ErrNotConfigured)

	_, err = p.CreateShipment(context.Background(), testAddress(), testAddress(), models.Parcel{})
	assert.ErrorIs(t, err, providers.ErrNotConfigured)

	_, err = p.BuyShipment(context.Background(), "shp_1", "rate_1")
	assert.ErrorIs(t, err, providers.ErrNotConfigured)
}

func TestVerifyAddress_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/addresses", r.URL.Path)
		user, _, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "test_key", user)

		var req map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Contains(t, req, "address")
		assert.Contains(t, req, "verify")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "adr_123",
			"street1": "123 MAIN ST",
			"city": "NEW YORK",
			"state": "NY",
			"zip": "10001-0001",
			"country": "US",
			"verifications": {"delivery": {"success": true, "errors": []}}
		}`))
	}))
	defer srv.Close()

	p := providers.NewEasyPostProviderWithBaseURL("test_key", srv.URL)
	verified, err := p.VerifyAddress(context.Background(), testAddress())

	assert.NoError(t, err)
	assert.True(t, verified.Success)
	assert.Equal(t, "adr_123", verified.EasyPostID)
	assert.Equal(t, "123 MAIN ST", verified.Address.Street1)
	assert.Equal(t, "10001-0001", verified.Address.Zip)
	assert.Empty(t, verified.Messages)
	assert.NotEmpty(t, verified.Raw)
}

func TestVerifyAddress_DeliveryFailureIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "adr_bad",
			"street1": "999 Nowhere Ln",
			"city": "Nowhere",
			"state": "XX",
			"zip": "00000",
			"country": "US",
			"verifications": {"delivery": {"success": false, "errors": [{"message": "Address not found"}]}}
		}`))
	}))
	defer srv.Close()

	p := providers.NewEasyPostProviderWithBaseURL("test_key", srv.URL)
	verified, err := p.VerifyAddress(context.Background(), testAddress())

	assert.NoError(t, err)
	assert.False(t, verified.Success)
	assert.Equal(t, []string{"Address not found"}, verified.Messages)
}

func TestVerifyAddress_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"error": {"message": "invalid address"}}`))
	}))
	defer srv.Close()

	p := providers.NewEasyPostProviderWithBaseURL("test_key", srv.URL)
	_, err := p.VerifyAddress(context.Background(), testAddress())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "422")
}

func TestCreateShipment_ReturnsRawRates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/shipments", r.URL.Path)

		var req map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		shipment, ok := req["shipment"].(map[string]interface{})
		assert.True(t, ok)
		assert.Contains(t, shipment, "from_address")
		assert.Contains(t, shipment, "to_address")
		assert.Contains(t, shipment, "parcel")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "shp_1",
			"rates": [
				{"id": "rate_1", "carrier": "USPS", "service": "Priority", "rate": "8.00", "est_delivery_days": 2},
				{"id": "rate_2", "carrier": "UPS", "service": "Ground", "rate": "10.50", "delivery_days": 4}
			]
		}`))
	}))
	defer srv.Close()

	p := providers.NewEasyPostProviderWithBaseURL("test_key", srv.URL)
	quote, err := p.CreateShipment(context.Background(), testAddress(), testAddress(),
		models.Parcel{Length: 10, Width: 8, Height: 4, WeightOz: 16})

	assert.NoError(t, err)
	assert.Equal(t, "shp_1", quote.ShipmentID)
	assert.Len(t, quote.Rates, 2)
	assert.Equal(t, "8.00", quote.Rates[0].Rate)
	assert.Equal(t, 2, *quote.Rates[0].EstDeliveryDays)
	assert.Nil(t, quote.Rates[0].DeliveryDays)
	assert.Equal(t, 4, *quote.Rates[1].DeliveryDays)
}

func TestBuyShipment_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/shipments/shp_1/buy", r.URL.Path)

		var req map[string]map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "rate_1", req["rate"]["id"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"tracking_code": "9400100000000000000000",
			"selected_rate": {"carrier": "USPS", "service": "Priority"},
			"postage_label": {"id": "pl_1", "label_url": "https://labels.example/1.png"}
		}`))
	}))
	defer srv.Close()

	p := providers.NewEasyPostProviderWithBaseURL("test_key", srv.URL)
	info, err := p.BuyShipment(context.Background(), "shp_1", "rate_1")

	assert.NoError(t, err)
	assert.Equal(t, "9400100000000000000000", info.TrackingCode)
	assert.Equal(t, "USPS", info.Carrier)
	assert.Equal(t, "Priority", info.Service)
	assert.Equal(t, "https://labels.example/1.png", info.LabelURL)
	assert.Equal(t, "pl_1", info.TransactionID)
}
