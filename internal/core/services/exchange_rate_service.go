package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/storefront_currency/internal/apperrors"
	"github.com/SscSPs/storefront_currency/internal/core/domain"
	portsrepo "github.com/SscSPs/storefront_currency/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/storefront_currency/internal/core/ports/services"
	"github.com/SscSPs/storefront_currency/internal/dto"
	"github.com/SscSPs/storefront_currency/internal/utils/pricing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const defaultRateSource = "manual"

type exchangeRateService struct {
	BaseService
	rateRepo    portsrepo.ExchangeRateRepositoryFacade
	currencySvc portssvc.CurrencyReaderSvc
	invalidator SnapshotInvalidator
}

// NewExchangeRateService creates the exchange rate service. invalidator may be nil.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateRepositoryFacade, currencySvc portssvc.CurrencyReaderSvc, invalidator SnapshotInvalidator) portssvc.ExchangeRateSvcFacade {
	if invalidator == nil {
		invalidator = noopInvalidator{}
	}
	return &exchangeRateService{
		rateRepo:    rateRepo,
		currencySvc: currencySvc,
		invalidator: invalidator,
	}
}

var _ portssvc.ExchangeRateSvcFacade = (*exchangeRateService)(nil)

// CreateExchangeRate stores a rate, replacing any rate already stored for the same pair.
func (s *exchangeRateService) CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest, creatorUserID string) (*domain.ExchangeRate, error) {
	from := pricing.NormalizeCode(req.FromCurrencyCode)
	to := pricing.NormalizeCode(req.ToCurrencyCode)

	if req.Rate.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
	}
	isIdentity := from == to
	if isIdentity && !req.Rate.Equal(decimal.NewFromInt(1)) {
		return nil, fmt.Errorf("%w: the rate from %s to itself must be 1", apperrors.ErrValidation, from)
	}

	if err := s.ensureCurrencyExists(ctx, "from", from); err != nil {
		return nil, err
	}
	if !isIdentity {
		if err := s.ensureCurrencyExists(ctx, "to", to); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	rate := domain.ExchangeRate{
		ExchangeRateID:   uuid.NewString(),
		FromCurrencyCode: from,
		ToCurrencyCode:   to,
		Rate:             req.Rate,
		IsBase:           isIdentity,
		IsActive:         true,
		Source:           req.Source,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if req.IsActive != nil {
		rate.IsActive = *req.IsActive
	}
	if isIdentity {
		rate.IsActive = true
	}
	if rate.Source == "" {
		rate.Source = defaultRateSource
	}

	saved, err := s.rateRepo.SaveExchangeRate(ctx, rate)
	if err != nil {
		return nil, fmt.Errorf("failed to create exchange rate in service: %w", err)
	}
	s.invalidator.Invalidate()

	s.LogInfo(ctx, "Exchange rate stored",
		slog.String("from", saved.FromCurrencyCode),
		slog.String("to", saved.ToCurrencyCode),
		slog.String("rate", saved.Rate.String()))
	return saved, nil
}

// GetExchangeRate returns the active rate for a pair, derived from the inverse pair when only that one is stored.
func (s *exchangeRateService) GetExchangeRate(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error) {
	fromCode = pricing.NormalizeCode(fromCode)
	toCode = pricing.NormalizeCode(toCode)
	if len(fromCode) != 3 || len(toCode) != 3 {
		return nil, fmt.Errorf("%w: currency codes must be 3 letters", apperrors.ErrValidation)
	}

	if fromCode == toCode {
		identity := domain.IdentityRate(fromCode)
		return &identity, nil
	}

	rate, err := s.rateRepo.FindExchangeRate(ctx, fromCode, toCode)
	if err == nil {
		return rate, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to get exchange rate in service: %w", err)
	}

	inverse, err := s.rateRepo.FindExchangeRate(ctx, toCode, fromCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: no rate stored between %s and %s", apperrors.ErrRateNotFound, fromCode, toCode)
		}
		return nil, fmt.Errorf("failed to get exchange rate in service: %w", err)
	}

	derived := *inverse
	derived.FromCurrencyCode = fromCode
	derived.ToCurrencyCode = toCode
	derived.Rate = decimal.NewFromInt(1).DivRound(inverse.Rate, int32(decimal.DivisionPrecision))
	return &derived, nil
}

func (s *exchangeRateService) ListExchangeRates(ctx context.Context, activeOnly bool) ([]domain.ExchangeRate, error) {
	rates, err := s.rateRepo.ListExchangeRates(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list exchange rates in service: %w", err)
	}
	if rates == nil {
		return []domain.ExchangeRate{}, nil
	}
	return rates, nil
}

func (s *exchangeRateService) DeactivateExchangeRate(ctx context.Context, rateID string, userID string) error {
	if _, err := uuid.Parse(rateID); err != nil {
		return fmt.Errorf("%w: invalid exchange rate id", apperrors.ErrValidation)
	}

	rate, err := s.rateRepo.FindExchangeRateByID(ctx, rateID)
	if err != nil {
		return fmt.Errorf("failed to find exchange rate in service: %w", err)
	}
	if rate.IsIdentity() {
		return fmt.Errorf("%w: identity rates cannot be deactivated", apperrors.ErrValidation)
	}

	if err := s.rateRepo.DeactivateExchangeRate(ctx, rateID, userID); err != nil {
		return fmt.Errorf("failed to deactivate exchange rate in service: %w", err)
	}
	s.invalidator.Invalidate()

	s.LogInfo(ctx, "Exchange rate deactivated", slog.String("exchange_rate_id", rateID))
	return nil
}

func (s *exchangeRateService) ensureCurrencyExists(ctx context.Context, side, code string) error {
	if _, err := s.currencySvc.GetCurrencyByCode(ctx, code); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: '%s' currency code '%s' not found", apperrors.ErrValidation, side, code)
		}
		return fmt.Errorf("failed to validate '%s' currency '%s': %w", side, code, err)
	}
	return nil
}
