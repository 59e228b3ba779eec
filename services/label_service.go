package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"sendmo/events"
	"sendmo/models"
	"sendmo/providers"
	"sendmo/repository"

	"go.uber.org/zap"
)

// LabelService purchases labels for previously quoted shipments and records
// the result.
type LabelService interface {
	BuyLabel(ctx context.Context, easypostShipmentID string, req *models.BuyLabelRequest) (*models.Shipment, *ServiceError)
	GetShipments(ctx context.Context, page, limit int) ([]models.Shipment, int64, *ServiceError)
}

type labelServiceImpl struct {
	shipments   repository.ShipmentRepository
	provider    providers.ShippingProvider
	snsClient   events.Publisher
	snsTopicArn string
	logger      *zap.Logger
}

// NewLabelService creates a new LabelService.
func NewLabelService(
	shipments repository.ShipmentRepository,
	provider providers.ShippingProvider,
	snsClient events.Publisher,
	snsTopicArn string,
	logger *zap.Logger,
) LabelService {
	return &labelServiceImpl{
		shipments:   shipments,
		provider:    provider,
		snsClient:   snsClient,
		snsTopicArn: snsTopicArn,
		logger:      logger,
	}
}

// BuyLabel purchases the selected rate. Buying the same shipment twice
// returns the original purchase instead of paying again.
func (s *labelServiceImpl) BuyLabel(ctx context.Context, easypostShipmentID string, req *models.BuyLabelRequest) (*models.Shipment, *ServiceError) {
	if easypostShipmentID == "" {
		return nil, &ServiceError{StatusCode: 400, Message: "Shipment ID is required"}
	}

	if existing, err := s.shipments.FindByEasyPostShipmentID(ctx, easypostShipmentID); err == nil && existing != nil {
		return existing, nil
	}

	info, err := s.provider.BuyShipment(ctx, easypostShipmentID, req.RateID)
	if err != nil {
		if errors.Is(err, providers.ErrNotConfigured) {
			return nil, &ServiceError{StatusCode: 503, Message: "Shipping service is not configured"}
		}
		s.logger.Error("BuyShipment failed", zap.Error(err))
		return nil, &ServiceError{StatusCode: 502, Message: "Failed to purchase shipping label: " + err.Error()}
	}

	shipment := &models.Shipment{
		UserID:             req.UserID,
		EasyPostShipmentID: easypostShipmentID,
		EasyPostRateID:     req.RateID,
		Carrier:            info.Carrier,
		Service:            info.Service,
		DisplayPrice:       req.DisplayPrice,
		TrackingCode:       info.TrackingCode,
		LabelURL:           info.LabelURL,
		Status:             models.ShipmentStatusPurchased,
	}

	if err := s.shipments.Create(ctx, shipment); err != nil {
		s.logger.Error("Failed to persist shipment", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to save shipment record"}
	}

	s.logger.Info("Label purchased",
		zap.String("easypost_shipment_id", easypostShipmentID),
		zap.String("tracking_code", info.TrackingCode),
	)

	s.publishEvent(ctx, models.LabelPurchasedEvent{
		EventType:    "label_purchased",
		ShipmentID:   shipment.ID.String(),
		UserID:       shipment.UserID,
		TrackingCode: shipment.TrackingCode,
		Carrier:      shipment.Carrier,
		LabelURL:     shipment.LabelURL,
		Timestamp:    time.Now(),
	})

	return shipment, nil
}

// GetShipments lists purchased labels, newest first.
func (s *labelServiceImpl) GetShipments(ctx context.Context, page, limit int) ([]models.Shipment, int64, *ServiceError) {
	shipments, total, err := s.shipments.FindAll(ctx, page, limit)
	if err != nil {
		s.logger.Error("Failed to list shipments", zap.Error(err))
		return nil, 0, &ServiceError{StatusCode: 500, Message: "Failed to list shipments"}
	}
	return shipments, total, nil
}

// publishEvent marshals an event and publishes it to SNS (non-fatal on error).
func (s *labelServiceImpl) publishEvent(ctx context.Context, event interface{}) {
	if s.snsClient == nil || s.snsTopicArn == "" {
		s.logger.Warn("SNS not configured, skipping event publish")
		return
	}
	b, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("Failed to marshal SNS event", zap.Error(err))
		return
	}
	if err := s.snsClient.Publish(ctx, s.snsTopicArn, b); err != nil {
		s.logger.Error("Failed to publish SNS event", zap.Error(err))
		return
	}
	s.logger.Info("Published SNS event", zap.String("topic", s.snsTopicArn))
}
