package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sendmo/models"
	"sendmo/providers"
	"sendmo/repository"

	"go.uber.org/zap"
)

// AddressService resolves addresses: cached lookup first, external
// verification on a miss, correction suggestions on the way out.
type AddressService interface {
	Resolve(ctx context.Context, addr models.AddressInput, userID string) (*models.VerificationResult, *ServiceError)
	ResolveString(ctx context.Context, raw, userID string) (*models.VerificationResult, *ServiceError)
}

type addressServiceImpl struct {
	addresses repository.AddressRepository
	users     repository.UserRepository
	provider  providers.ShippingProvider
	logger    *zap.Logger
}

// NewAddressService creates a new AddressService.
func NewAddressService(
	addresses repository.AddressRepository,
	users repository.UserRepository,
	provider providers.ShippingProvider,
	logger *zap.Logger,
) AddressService {
	return &addressServiceImpl{
		addresses: addresses,
		users:     users,
		provider:  provider,
		logger:    logger,
	}
}

// ResolveString parses a free-text address block and resolves the result.
func (s *addressServiceImpl) ResolveString(ctx context.Context, raw, userID string) (*models.VerificationResult, *ServiceError) {
	parsed := ParseAddressString(raw)
	if parsed == nil {
		return nil, &ServiceError{StatusCode: 400, Message: "Could not parse address: need at least a street line and a ZIP code"}
	}
	return s.Resolve(ctx, *parsed, userID)
}

// Resolve returns the canonical form of an address. A previously verified
// match short-circuits external verification entirely; otherwise the
// address is verified, persisted for future lookups, and per-field
// correction suggestions are generated.
func (s *addressServiceImpl) Resolve(ctx context.Context, addr models.AddressInput, userID string) (*models.VerificationResult, *ServiceError) {
	if addr.Street1 == "" || addr.Zip == "" {
		return nil, &ServiceError{StatusCode: 400, Message: "Missing required fields: street1, zip"}
	}
	if addr.Country == "" {
		addr.Country = "US"
	}

	cached, err := s.addresses.FindVerified(ctx, addr)
	if err != nil {
		s.logger.Error("Address cache lookup failed", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to look up address"}
	}
	if cached != nil {
		if err := s.addresses.TouchUsage(ctx, cached.ID); err != nil {
			s.logger.Warn("Failed to update address usage", zap.Error(err))
		}
		corrected := cached.Input()
		return &models.VerificationResult{
			Valid:           cached.Verified,
			Verified:        cached.Verified,
			Corrected:       &corrected,
			EasyPostID:      cached.EasyPostID,
			Suggestions:     []string{},
			Errors:          []string{},
			CachedAddressID: cached.ID.String(),
		}, nil
	}

	verified, err := s.provider.VerifyAddress(ctx, addr)
	if err != nil {
		if errors.Is(err, providers.ErrNotConfigured) {
			return nil, &ServiceError{StatusCode: 503, Message: "Address verification is not configured"}
		}
		s.logger.Error("Address verification failed", zap.Error(err))
		return nil, &ServiceError{StatusCode: 502, Message: "Address verification service unavailable: " + err.Error()}
	}

	suggestions := correctionSuggestions(addr, verified.Address)

	now := time.Now()
	row := &models.Address{
		Street1:          verified.Address.Street1,
		Street2:          verified.Address.Street2,
		City:             verified.Address.City,
		State:            verified.Address.State,
		Zip:              verified.Address.Zip,
		Country:          defaultCountry(verified.Address.Country),
		Verified:         verified.Success,
		EasyPostID:       verified.EasyPostID,
		VerificationData: string(verified.Raw),
		UsedCount:        1,
		LastUsedAt:       now,
	}
	if verified.Success {
		row.VerifiedAt = &now
	}
	if userID != "" {
		row.UserID = &userID
	}

	if err := s.addresses.Create(ctx, row); err != nil {
		s.logger.Error("Failed to persist verified address", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to save address"}
	}

	s.logger.Info("Address verified and cached",
		zap.String("address_id", row.ID.String()),
		zap.Bool("valid", verified.Success),
	)

	if userID != "" && verified.Success {
		s.maybeSetDefaultAddress(ctx, userID, row)
	}

	errs := []string{}
	if !verified.Success {
		errs = append(errs, verified.Messages...)
	}
	corrected := verified.Address
	return &models.VerificationResult{
		Valid:           verified.Success,
		Verified:        verified.Success,
		Corrected:       &corrected,
		EasyPostID:      verified.EasyPostID,
		Suggestions:     suggestions,
		Errors:          errs,
		CachedAddressID: row.ID.String(),
	}, nil
}

// maybeSetDefaultAddress makes this the user's default shipping address if
// they have none yet. First verified address wins; an existing default is
// never overwritten.
func (s *addressServiceImpl) maybeSetDefaultAddress(ctx context.Context, userID string, row *models.Address) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		s.logger.Warn("Failed to load user for default address", zap.Error(err))
		return
	}
	if user == nil || user.DefaultShippingAddressID != nil {
		return
	}
	if err := s.users.SetDefaultAddress(ctx, userID, row.ID); err != nil {
		s.logger.Warn("Failed to set default shipping address", zap.Error(err))
	}
}

// correctionSuggestions compares each field of the corrected address with
// the caller's input and emits one human-readable hint per changed field.
func correctionSuggestions(input, corrected models.AddressInput) []string {
	suggestions := []string{}
	if corrected.Street1 != "" && corrected.Street1 != input.Street1 {
		suggestions = append(suggestions, fmt.Sprintf("Street corrected to: %s", corrected.Street1))
	}
	if corrected.City != "" && corrected.City != input.City {
		suggestions = append(suggestions, fmt.Sprintf("City corrected to: %s", corrected.City))
	}
	if corrected.State != "" && corrected.State != input.State {
		suggestions = append(suggestions, fmt.Sprintf("State corrected to: %s", corrected.State))
	}
	if corrected.Zip != "" && corrected.Zip != input.Zip {
		suggestions = append(suggestions, fmt.Sprintf("ZIP corrected to: %s", corrected.Zip))
	}
	return suggestions
}

func defaultCountry(c string) string {
	if c == "" {
		return "US"
	}
	return c
}
