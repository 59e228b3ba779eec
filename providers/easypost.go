package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"sendmo/models"
)

const easypostBaseURL = "https://api.easypost.com/v2"

// EasyPostProvider implements ShippingProvider using the EasyPost API.
type EasyPostProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewEasyPostProvider creates a new EasyPostProvider.
func NewEasyPostProvider(apiKey string) *EasyPostProvider {
	return &EasyPostProvider{
		apiKey:  apiKey,
		baseURL: easypostBaseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// NewEasyPostProviderWithBaseURL is used by tests to point at a stub server.
func NewEasyPostProviderWithBaseURL(apiKey, baseURL string) *EasyPostProvider {
	p := NewEasyPostProvider(apiKey)
	p.baseURL = baseURL
	return p
}

// ---- EasyPost API request/response structs ----

type easypostAddress struct {
	Street1 string `json:"street1"`
	Street2 string `json:"street2,omitempty"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

type easypostVerifyRequest struct {
	Address easypostAddress `json:"address"`
	Verify  []string        `json:"verify"`
}

type easypostVerificationError struct {
	Message string `json:"message"`
}

type easypostAddressResponse struct {
	ID            string `json:"id"`
	Street1       string `json:"street1"`
	Street2       string `json:"street2"`
	City          string `json:"city"`
	State         string `json:"state"`
	Zip           string `json:"zip"`
	Country       string `json:"country"`
	Verifications struct {
		Delivery struct {
			Success bool                        `json:"success"`
			Errors  []easypostVerificationError `json:"errors"`
		} `json:"delivery"`
	} `json:"verifications"`
}

type easypostParcel struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Weight float64 `json:"weight"` // ounces
}

type easypostShipmentRequest struct {
	Shipment struct {
		FromAddress easypostAddress `json:"from_address"`
		ToAddress   easypostAddress `json:"to_address"`
		Parcel      easypostParcel  `json:"parcel"`
	} `json:"shipment"`
}

type easypostShipmentResponse struct {
	ID    string           `json:"id"`
	Rates []models.RawRate `json:"rates"`
}

type easypostBuyRequest struct {
	Rate struct {
		ID string `json:"id"`
	} `json:"rate"`
}

type easypostBuyResponse struct {
	TrackingCode string `json:"tracking_code"`
	SelectedRate struct {
		Carrier string `json:"carrier"`
		Service string `json:"service"`
	} `json:"selected_rate"`
	PostageLabel struct {
		ID       string `json:"id"`
		LabelURL string `json:"label_url"`
	} `json:"postage_label"`
}

// ---- ShippingProvider implementation ----

// VerifyAddress asks EasyPost to create-and-verify the address. A failed
// delivery verification is a normal response, not an error; errors are
// reserved for transport/API failures.
func (p *EasyPostProvider) VerifyAddress(ctx context.Context, addr models.AddressInput) (*VerifiedAddress, error) {
	if p.apiKey == "" {
		return nil, ErrNotConfigured
	}

	reqBody := easypostVerifyRequest{
		Address: toEasyPostAddress(addr),
		Verify:  []string{"delivery"},
	}

	var resp easypostAddressResponse
	raw, err := p.doRequest(ctx, http.MethodPost, "/addresses", reqBody, &resp)
	if err != nil {
		return nil, fmt.Errorf("easypost VerifyAddress: %w", err)
	}

	messages := make([]string, 0, len(resp.Verifications.Delivery.Errors))
	for _, e := range resp.Verifications.Delivery.Errors {
		messages = append(messages, e.Message)
	}

	return &VerifiedAddress{
		Success: resp.Verifications.Delivery.Success,
		Address: models.AddressInput{
			Street1: resp.Street1,
			Street2: resp.Street2,
			City:    resp.City,
			State:   resp.State,
			Zip:     resp.Zip,
			Country: resp.Country,
		},
		EasyPostID: resp.ID,
		Messages:   messages,
		Raw:        raw,
	}, nil
}

// CreateShipment creates an EasyPost shipment and returns its raw rates.
func (p *EasyPostProvider) CreateShipment(ctx context.Context, from, to models.AddressInput, parcel models.Parcel) (*ShipmentQuote, error) {
	if p.apiKey == "" {
		return nil, ErrNotConfigured
	}

	var reqBody easypostShipmentRequest
	reqBody.Shipment.FromAddress = toEasyPostAddress(from)
	reqBody.Shipment.ToAddress = toEasyPostAddress(to)
	reqBody.Shipment.Parcel = easypostParcel{
		Length: parcel.Length,
		Width:  parcel.Width,
		Height: parcel.Height,
		Weight: parcel.WeightOz,
	}

	var resp easypostShipmentResponse
	if _, err := p.doRequest(ctx, http.MethodPost, "/shipments", reqBody, &resp); err != nil {
		return nil, fmt.Errorf("easypost CreateShipment: %w", err)
	}

	return &ShipmentQuote{ShipmentID: resp.ID, Rates: resp.Rates}, nil
}

// BuyShipment purchases the chosen rate and returns the label artifacts.
func (p *EasyPostProvider) BuyShipment(ctx context.Context, shipmentID, rateID string) (*models.PurchaseInfo, error) {
	if p.apiKey == "" {
		return nil, ErrNotConfigured
	}

	var reqBody easypostBuyRequest
	reqBody.Rate.ID = rateID

	var resp easypostBuyResponse
	path := fmt.Sprintf("/shipments/%s/buy", shipmentID)
	if _, err := p.doRequest(ctx, http.MethodPost, path, reqBody, &resp); err != nil {
		return nil, fmt.Errorf("easypost BuyShipment: %w", err)
	}

	return &models.PurchaseInfo{
		TrackingCode:  resp.TrackingCode,
		LabelURL:      resp.PostageLabel.LabelURL,
		Carrier:       resp.SelectedRate.Carrier,
		Service:       resp.SelectedRate.Service,
		TransactionID: resp.PostageLabel.ID,
	}, nil
}

// ---- HTTP helper ----

func (p *EasyPostProvider) doRequest(ctx context.Context, method, path string, body interface{}, out interface{}) (json.RawMessage, error) {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, p.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.SetBasicAuth(p.apiKey, "")
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http do: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("easypost API error (status %d): %s", resp.StatusCode, string(respBytes))
	}

	if out != nil {
		if err := json.Unmarshal(respBytes, out); err != nil {
			return nil, fmt.Errorf("decode response: %w", err)
		}
	}
	return respBytes, nil
}

// ---- Conversion helper ----

func toEasyPostAddress(a models.AddressInput) easypostAddress {
	country := a.Country
	if country == "" {
		country = "US"
	}
	return easypostAddress{
		Street1: a.Street1,
		Street2: a.Street2,
		City:    a.City,
		State:   a.State,
		Zip:     a.Zip,
		Country: country,
	}
}
