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
)

type baseCurrencyService struct {
	BaseService
	businessRepo portsrepo.BusinessConfigRepositoryFacade
	currencySvc  portssvc.CurrencyReaderSvc
	businessID   string
	invalidator  SnapshotInvalidator
}

// NewBaseCurrencyService creates the service that manages the base currency of businessID.
func NewBaseCurrencyService(
	businessRepo portsrepo.BusinessConfigRepositoryFacade,
	currencySvc portssvc.CurrencyReaderSvc,
	businessID string,
	invalidator SnapshotInvalidator,
) portssvc.BaseCurrencySvc {
	if invalidator == nil {
		invalidator = noopInvalidator{}
	}
	return &baseCurrencyService{
		businessRepo: businessRepo,
		currencySvc:  currencySvc,
		businessID:   businessID,
		invalidator:  invalidator,
	}
}

var _ portssvc.BaseCurrencySvc = (*baseCurrencyService)(nil)

func (s *baseCurrencyService) GetBaseCurrency(ctx context.Context) (*domain.BusinessConfig, error) {
	cfg, err := s.businessRepo.FindBusinessConfig(ctx, s.businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to get base currency in service: %w", err)
	}
	return cfg, nil
}

// SetBaseCurrency anchors all conversions to currencyCode. Stored rates are not rebased.
func (s *baseCurrencyService) SetBaseCurrency(ctx context.Context, currencyCode string, userID string) (*domain.BusinessConfig, error) {
	currency, err := s.currencySvc.GetCurrencyByCode(ctx, currencyCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: currency code '%s' not found", apperrors.ErrValidation, currencyCode)
		}
		return nil, fmt.Errorf("failed to validate base currency '%s': %w", currencyCode, err)
	}
	if !currency.IsActive {
		return nil, fmt.Errorf("%w: inactive currency %s cannot be the base currency", apperrors.ErrValidation, currency.CurrencyCode)
	}

	now := time.Now()
	cfg := domain.BusinessConfig{
		BusinessID:   s.businessID,
		BaseCurrency: currency.CurrencyCode,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	previous, err := s.businessRepo.FindBusinessConfig(ctx, s.businessID)
	switch {
	case err == nil:
		cfg.CreatedAt = previous.CreatedAt
		cfg.CreatedBy = previous.CreatedBy
		if previous.BaseCurrency != cfg.BaseCurrency {
			s.LogWarn(ctx, "Base currency changed, stored rates are not rebased",
				slog.String("previous", previous.BaseCurrency),
				slog.String("current", cfg.BaseCurrency))
		}
	case errors.Is(err, apperrors.ErrNotFound):
	default:
		return nil, fmt.Errorf("failed to read current base currency: %w", err)
	}

	if err := s.businessRepo.SaveBusinessConfig(ctx, cfg); err != nil {
		return nil, fmt.Errorf("failed to set base currency in service: %w", err)
	}
	s.invalidator.Invalidate()

	s.LogInfo(ctx, "Base currency set", slog.String("business_id", s.businessID), slog.String("currency_code", cfg.BaseCurrency))
	return &cfg, nil
}
