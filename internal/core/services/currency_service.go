package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/storefront_currency/internal/apperrors"
	"github.com/SscSPs/storefront_currency/internal/core/domain"
	portsrepo "github.com/SscSPs/storefront_currency/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/storefront_currency/internal/core/ports/services"
	"github.com/SscSPs/storefront_currency/internal/dto"
	"github.com/SscSPs/storefront_currency/internal/utils/pricing"
	"github.com/shopspring/decimal"
)

const defaultDecimalPrecision = 2

type currencyService struct {
	BaseService
	currencyRepo portsrepo.CurrencyRepositoryFacade
	invalidator  SnapshotInvalidator
}

// NewCurrencyService creates the currency configuration service. invalidator may be nil.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade, invalidator SnapshotInvalidator) portssvc.CurrencySvcFacade {
	if invalidator == nil {
		invalidator = noopInvalidator{}
	}
	return &currencyService{currencyRepo: currencyRepo, invalidator: invalidator}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

func (s *currencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID string) (*domain.CurrencyConfig, error) {
	now := time.Now()

	currency := domain.CurrencyConfig{
		CurrencyCode:     pricing.NormalizeCode(req.CurrencyCode),
		Symbol:           req.Symbol,
		Name:             req.Name,
		ExchangeRate:     req.ExchangeRate,
		IsActive:         true,
		IsDefault:        req.IsDefault,
		DecimalPrecision: defaultDecimalPrecision,
		SymbolPosition:   domain.SymbolBefore,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if req.IsActive != nil {
		currency.IsActive = *req.IsActive
	}
	if req.DecimalPrecision != nil {
		currency.DecimalPrecision = *req.DecimalPrecision
	}
	if req.SymbolPosition != "" {
		currency.SymbolPosition = domain.SymbolPosition(req.SymbolPosition)
	}

	if err := validateCurrency(currency); err != nil {
		return nil, err
	}
	if currency.IsDefault {
		if err := s.ensureNoOtherDefault(ctx, currency.CurrencyCode); err != nil {
			return nil, err
		}
	}

	if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
		return nil, fmt.Errorf("failed to create currency in service: %w", err)
	}
	s.invalidator.Invalidate()

	s.LogInfo(ctx, "Currency created", slog.String("currency_code", currency.CurrencyCode), slog.Bool("is_default", currency.IsDefault))
	return &currency, nil
}

func (s *currencyService) UpdateCurrency(ctx context.Context, currencyCode string, req dto.UpdateCurrencyRequest, userID string) (*domain.CurrencyConfig, error) {
	existing, err := s.GetCurrencyByCode(ctx, currencyCode)
	if err != nil {
		return nil, err
	}
	currency := *existing

	if req.Symbol != nil {
		currency.Symbol = *req.Symbol
	}
	if req.Name != nil {
		currency.Name = *req.Name
	}
	if req.ExchangeRate != nil {
		currency.ExchangeRate = *req.ExchangeRate
	}
	if req.IsActive != nil {
		currency.IsActive = *req.IsActive
	}
	if req.IsDefault != nil {
		currency.IsDefault = *req.IsDefault
	}
	if req.DecimalPrecision != nil {
		currency.DecimalPrecision = *req.DecimalPrecision
	}
	if req.SymbolPosition != nil {
		currency.SymbolPosition = domain.SymbolPosition(*req.SymbolPosition)
	}
	currency.LastUpdatedAt = time.Now()
	currency.LastUpdatedBy = userID

	if err := validateCurrency(currency); err != nil {
		return nil, err
	}
	if currency.IsDefault && !existing.IsDefault {
		if err := s.ensureNoOtherDefault(ctx, currency.CurrencyCode); err != nil {
			return nil, err
		}
	}

	if err := s.currencyRepo.UpdateCurrency(ctx, currency); err != nil {
		return nil, fmt.Errorf("failed to update currency in service: %w", err)
	}
	s.invalidator.Invalidate()

	s.LogInfo(ctx, "Currency updated", slog.String("currency_code", currency.CurrencyCode))
	return &currency, nil
}

func (s *currencyService) SetDefaultCurrency(ctx context.Context, currencyCode string, userID string) (*domain.CurrencyConfig, error) {
	currency, err := s.GetCurrencyByCode(ctx, currencyCode)
	if err != nil {
		return nil, err
	}
	if !currency.IsActive {
		return nil, fmt.Errorf("%w: inactive currency %s cannot be the default", apperrors.ErrValidation, currency.CurrencyCode)
	}

	if err := s.currencyRepo.SetDefaultCurrency(ctx, currency.CurrencyCode, userID); err != nil {
		return nil, fmt.Errorf("failed to set default currency in service: %w", err)
	}
	s.invalidator.Invalidate()

	s.LogInfo(ctx, "Default currency changed", slog.String("currency_code", currency.CurrencyCode))
	return s.GetCurrencyByCode(ctx, currency.CurrencyCode)
}

func (s *currencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.CurrencyConfig, error) {
	code := pricing.NormalizeCode(currencyCode)
	if len(code) != 3 {
		return nil, fmt.Errorf("%w: currency code must be 3 letters", apperrors.ErrValidation)
	}

	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency by code in service: %w", err)
	}
	return currency, nil
}

func (s *currencyService) ListCurrencies(ctx context.Context, activeOnly bool) ([]domain.CurrencyConfig, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies in service: %w", err)
	}
	// Return empty slice if no currencies found, not nil
	if currencies == nil {
		return []domain.CurrencyConfig{}, nil
	}
	return currencies, nil
}

// ensureNoOtherDefault rejects a write that would leave two default currencies.
func (s *currencyService) ensureNoOtherDefault(ctx context.Context, currencyCode string) error {
	currencies, err := s.currencyRepo.ListCurrencies(ctx, false)
	if err != nil {
		return fmt.Errorf("failed to check default currency: %w", err)
	}
	for _, c := range currencies {
		if c.IsDefault && c.CurrencyCode != currencyCode {
			return fmt.Errorf("%w: %s is already the default currency", apperrors.ErrConfiguration, c.CurrencyCode)
		}
	}
	return nil
}

func validateCurrency(c domain.CurrencyConfig) error {
	if len(c.CurrencyCode) != 3 {
		return fmt.Errorf("%w: currency code must be 3 letters", apperrors.ErrValidation)
	}
	if c.Symbol == "" {
		return fmt.Errorf("%w: symbol is required", apperrors.ErrValidation)
	}
	if c.ExchangeRate.LessThan(decimal.Zero) {
		return fmt.Errorf("%w: exchange rate must not be negative", apperrors.ErrValidation)
	}
	if c.DecimalPrecision < 0 || c.DecimalPrecision > domain.MaxDecimalPrecision {
		return fmt.Errorf("%w: decimal precision must be between 0 and %d", apperrors.ErrValidation, domain.MaxDecimalPrecision)
	}
	if !c.SymbolPosition.IsValid() {
		return fmt.Errorf("%w: symbol position must be %q or %q", apperrors.ErrValidation, domain.SymbolBefore, domain.SymbolAfter)
	}
	if c.IsDefault && !c.IsActive {
		return fmt.Errorf("%w: the default currency must be active", apperrors.ErrValidation)
	}
	return nil
}
