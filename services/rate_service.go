package services

import (
	"context"
	"errors"

	"sendmo/models"
	"sendmo/providers"
	"sendmo/rates"
	"sendmo/repository"

	"go.uber.org/zap"
)

// RateService produces shipping-rate options: catalog-based estimates for
// the receiver's size/speed chooser, and live aggregator quotes for the
// sender's actual purchase.
type RateService interface {
	GetEstimates(ctx context.Context, weightOz int) (*models.RateEstimates, *ServiceError)
	GetLiveRates(ctx context.Context, req *models.LiveRatesRequest) ([]models.NormalizedRate, *ServiceError)
}

type rateServiceImpl struct {
	provider        providers.ShippingProvider
	quotes          *repository.QuoteCache // nil disables quote caching
	markup          float64
	maxDisplayPrice float64
	catalog         []models.RateOffer
	logger          *zap.Logger
}

// NewRateService creates a new RateService. The catalog is generated once;
// it is static reference data.
func NewRateService(
	provider providers.ShippingProvider,
	quotes *repository.QuoteCache,
	markup, maxDisplayPrice float64,
	logger *zap.Logger,
) RateService {
	return &rateServiceImpl{
		provider:        provider,
		quotes:          quotes,
		markup:          markup,
		maxDisplayPrice: maxDisplayPrice,
		catalog:         rates.Generate(),
		logger:          logger,
	}
}

// GetEstimates returns the reduced size/speed matrix plus the full filtered
// list for a weight estimate. Every matrix cell may be unavailable and the
// list may be empty when the weight exceeds all tiers; that is a valid
// answer, not an error.
func (s *rateServiceImpl) GetEstimates(ctx context.Context, weightOz int) (*models.RateEstimates, *ServiceError) {
	list, err := rates.AvailableRates(s.catalog, weightOz)
	if err != nil {
		return nil, &ServiceError{StatusCode: 400, Message: err.Error()}
	}

	matrix := make([]models.MatrixCell, 0, len(rates.PackageSizes)*len(rates.SpeedOptions))
	for _, size := range rates.PackageSizes {
		for _, speed := range rates.SpeedOptions {
			best, err := rates.BestForCell(s.catalog, size.ID, speed.ID, weightOz)
			if err != nil {
				return nil, &ServiceError{StatusCode: 400, Message: err.Error()}
			}
			matrix = append(matrix, models.MatrixCell{Size: size.ID, Speed: speed.ID, Rate: best})
		}
	}

	return &models.RateEstimates{WeightOz: weightOz, Matrix: matrix, List: list}, nil
}

// GetLiveRates quotes a shipment through the aggregator, normalizes the
// result and caches it. An empty slice means no rates were available after
// filtering, which is distinct from a quoting failure.
func (s *rateServiceImpl) GetLiveRates(ctx context.Context, req *models.LiveRatesRequest) ([]models.NormalizedRate, *ServiceError) {
	if s.quotes != nil {
		if cached, err := s.quotes.Get(ctx, req); err != nil {
			s.logger.Warn("Quote cache read failed", zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	quote, err := s.provider.CreateShipment(ctx, req.From, req.To, req.Parcel)
	if err != nil {
		if errors.Is(err, providers.ErrNotConfigured) {
			return nil, &ServiceError{StatusCode: 503, Message: "Shipping service is not configured"}
		}
		s.logger.Error("CreateShipment failed", zap.Error(err))
		return nil, &ServiceError{StatusCode: 502, Message: "Failed to retrieve shipping rates: " + err.Error()}
	}

	normalized := rates.Normalize(quote.Rates, quote.ShipmentID, s.markup, s.maxDisplayPrice)

	if s.quotes != nil {
		if err := s.quotes.Set(ctx, req, normalized); err != nil {
			s.logger.Warn("Quote cache write failed", zap.Error(err))
		}
	}

	return normalized, nil
}
