package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"sendmo/models"
	"sendmo/providers"
	"sendmo/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// ---- mock shipment repository ----

type mockShipmentRepo struct {
	createErr      error
	findByEPResult *models.Shipment
	findByEPErr    error
	findAllResult  []models.Shipment
	findAllTotal   int64
	findAllErr     error

	created *models.Shipment
}

func (m *mockShipmentRepo) Create(_ context.Context, s *models.Shipment) error {
	if m.createErr != nil {
		return m.createErr
	}
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	m.created = s
	return nil
}
func (m *mockShipmentRepo) FindByID(_ context.Context, _ uuid.UUID) (*models.Shipment, error) {
	return nil, nil
}
func (m *mockShipmentRepo) FindByEasyPostShipmentID(_ context.Context, _ string) (*models.Shipment, error) {
	return m.findByEPResult, m.findByEPErr
}
func (m *mockShipmentRepo) FindAll(_ context.Context, _, _ int) ([]models.Shipment, int64, error) {
	return m.findAllResult, m.findAllTotal, m.findAllErr
}

// ---- mock label provider ----

type mockLabelProvider struct {
	info      *models.PurchaseInfo
	buyErr    error
	buyCalled bool
}

func (m *mockLabelProvider) VerifyAddress(_ context.Context, _ models.AddressInput) (*providers.VerifiedAddress, error) {
	return nil, nil
}
func (m *mockLabelProvider) CreateShipment(_ context.Context, _, _ models.AddressInput, _ models.Parcel) (*providers.ShipmentQuote, error) {
	return nil, nil
}
func (m *mockLabelProvider) BuyShipment(_ context.Context, _, _ string) (*models.PurchaseInfo, error) {
	m.buyCalled = true
	return m.info, m.buyErr
}

// ---- mock SNS publisher ----

type mockSNS struct {
	publishErr error
	published  [][]byte
	topics     []string
}

func (m *mockSNS) Publish(_ context.Context, topicArn string, message []byte) error {
	m.topics = append(m.topics, topicArn)
	m.published = append(m.published, message)
	return m.publishErr
}

// ---- helpers ----

func newLabelService(repo *mockShipmentRepo, provider *mockLabelProvider, sns *mockSNS) services.LabelService {
	logger, _ := zap.NewDevelopment()
	return services.NewLabelService(repo, provider, sns, "arn:aws:sns:us-east-1:000000000000:labels", logger)
}

func buyRequest() *models.BuyLabelRequest {
	return &models.BuyLabelRequest{RateID: "rate_1", UserID: "user-1", DisplayPrice: 9.2}
}

// ---- tests ----

func TestBuyLabel_Success(t *testing.T) {
	repo := &mockShipmentRepo{}
	provider := &mockLabelProvider{info: &models.PurchaseInfo{
		TrackingCode: "9400100000000000000000",
		LabelURL:     "https://labels.example/1.png",
		Carrier:      "USPS",
		Service:      "Priority",
	}}
	sns := &mockSNS{}
	svc := newLabelService(repo, provider, sns)

	shipment, svcErr := svc.BuyLabel(context.Background(), "shp_1", buyRequest())

	assert.Nil(t, svcErr)
	assert.Equal(t, "shp_1", shipment.EasyPostShipmentID)
	assert.Equal(t, "rate_1", shipment.EasyPostRateID)
	assert.Equal(t, "9400100000000000000000", shipment.TrackingCode)
	assert.Equal(t, models.ShipmentStatusPurchased, shipment.Status)
	assert.Equal(t, 9.2, shipment.DisplayPrice)
	assert.NotNil(t, repo.created)
}

func TestBuyLabel_PublishesEvent(t *testing.T) {
	repo := &mockShipmentRepo{}
	provider := &mockLabelProvider{info: &models.PurchaseInfo{TrackingCode: "TRACK1", Carrier: "UPS"}}
	sns := &mockSNS{}
	svc := newLabelService(repo, provider, sns)

	_, svcErr := svc.BuyLabel(context.Background(), "shp_1", buyRequest())

	assert.Nil(t, svcErr)
	assert.Len(t, sns.published, 1)

	var event models.LabelPurchasedEvent
	assert.NoError(t, json.Unmarshal(sns.published[0], &event))
	assert.Equal(t, "label_purchased", event.EventType)
	assert.Equal(t, "TRACK1", event.TrackingCode)
	assert.Equal(t, "UPS", event.Carrier)
	assert.Equal(t, "user-1", event.UserID)
}

func TestBuyLabel_PublishFailureIsNonFatal(t *testing.T) {
	repo := &mockShipmentRepo{}
	provider := &mockLabelProvider{info: &models.PurchaseInfo{TrackingCode: "TRACK1"}}
	sns := &mockSNS{publishErr: errors.New("sns down")}
	svc := newLabelService(repo, provider, sns)

	shipment, svcErr := svc.BuyLabel(context.Background(), "shp_1", buyRequest())

	assert.Nil(t, svcErr)
	assert.NotNil(t, shipment)
}

func TestBuyLabel_DuplicateReturnsExisting(t *testing.T) {
	existing := &models.Shipment{
		ID:                 uuid.New(),
		EasyPostShipmentID: "shp_1",
		TrackingCode:       "ALREADY",
		Status:             models.ShipmentStatusPurchased,
	}
	repo := &mockShipmentRepo{findByEPResult: existing}
	provider := &mockLabelProvider{}
	svc := newLabelService(repo, provider, &mockSNS{})

	shipment, svcErr := svc.BuyLabel(context.Background(), "shp_1", buyRequest())

	assert.Nil(t, svcErr)
	assert.False(t, provider.buyCalled)
	assert.Equal(t, existing.ID, shipment.ID)
	assert.Equal(t, "ALREADY", shipment.TrackingCode)
}

func TestBuyLabel_EmptyShipmentID(t *testing.T) {
	svc := newLabelService(&mockShipmentRepo{}, &mockLabelProvider{}, &mockSNS{})

	_, svcErr := svc.BuyLabel(context.Background(), "", buyRequest())
	assert.NotNil(t, svcErr)
	assert.Equal(t, 400, svcErr.StatusCode)
}

func TestBuyLabel_NotConfigured(t *testing.T) {
	provider := &mockLabelProvider{buyErr: providers.ErrNotConfigured}
	svc := newLabelService(&mockShipmentRepo{}, provider, &mockSNS{})

	_, svcErr := svc.BuyLabel(context.Background(), "shp_1", buyRequest())
	assert.NotNil(t, svcErr)
	assert.Equal(t, 503, svcErr.StatusCode)
}

func TestBuyLabel_UpstreamFailure(t *testing.T) {
	provider := &mockLabelProvider{buyErr: errors.New("card declined")}
	svc := newLabelService(&mockShipmentRepo{}, provider, &mockSNS{})

	_, svcErr := svc.BuyLabel(context.Background(), "shp_1", buyRequest())
	assert.NotNil(t, svcErr)
	assert.Equal(t, 502, svcErr.StatusCode)
}

func TestBuyLabel_PersistFailure(t *testing.T) {
	repo := &mockShipmentRepo{createErr: errors.New("insert failed")}
	provider := &mockLabelProvider{info: &models.PurchaseInfo{TrackingCode: "TRACK1"}}
	svc := newLabelService(repo, provider, &mockSNS{})

	_, svcErr := svc.BuyLabel(context.Background(), "shp_1", buyRequest())
	assert.NotNil(t, svcErr)
	assert.Equal(t, 500, svcErr.StatusCode)
}

func TestGetShipments(t *testing.T) {
	repo := &mockShipmentRepo{
		findAllResult: []models.Shipment{{TrackingCode: "A"}, {TrackingCode: "B"}},
		findAllTotal:  2,
	}
	svc := newLabelService(repo, &mockLabelProvider{}, &mockSNS{})

	shipments, total, svcErr := svc.GetShipments(context.Background(), 1, 10)

	assert.Nil(t, svcErr)
	assert.Len(t, shipments, 2)
	assert.Equal(t, int64(2), total)
}

func TestGetShipments_RepoError(t *testing.T) {
	repo := &mockShipmentRepo{findAllErr: errors.New("db down")}
	svc := newLabelService(repo, &mockLabelProvider{}, &mockSNS{})

	_, _, svcErr := svc.GetShipments(context.Background(), 1, 10)
	assert.NotNil(t, svcErr)
	assert.Equal(t, 500, svcErr.StatusCode)
}
