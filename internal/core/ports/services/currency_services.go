package services

import (
	"context"

	"github.com/SscSPs/storefront_currency/internal/core/domain"
	"github.com/SscSPs/storefront_currency/internal/dto"
)

// CurrencyReaderSvc defines read operations for currency data
type CurrencyReaderSvc interface {
	// GetCurrencyByCode retrieves a specific currency by its code.
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.CurrencyConfig, error)

	// ListCurrencies retrieves configured currencies, optionally only the active ones.
	ListCurrencies(ctx context.Context, activeOnly bool) ([]domain.CurrencyConfig, error)
}

// CurrencyWriterSvc defines write operations for currency data
type CurrencyWriterSvc interface {
	// CreateCurrency persists a new currency.
	CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID string) (*domain.CurrencyConfig, error)

	// UpdateCurrency applies the non-nil fields of req to an existing currency.
	UpdateCurrency(ctx context.Context, currencyCode string, req dto.UpdateCurrencyRequest, userID string) (*domain.CurrencyConfig, error)

	// SetDefaultCurrency makes currencyCode the one default currency.
	SetDefaultCurrency(ctx context.Context, currencyCode string, userID string) (*domain.CurrencyConfig, error)
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyWriterSvc
}

// ExchangeRateReaderSvc defines read operations for exchange rate data
type ExchangeRateReaderSvc interface {
	// GetExchangeRate retrieves an exchange rate between two currencies.
	GetExchangeRate(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error)

	// ListExchangeRates retrieves stored rates, optionally only the active ones.
	ListExchangeRates(ctx context.Context, activeOnly bool) ([]domain.ExchangeRate, error)
}

// ExchangeRateWriterSvc defines write operations for exchange rate data
type ExchangeRateWriterSvc interface {
	// CreateExchangeRate persists a new exchange rate.
	CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest, creatorUserID string) (*domain.ExchangeRate, error)

	// DeactivateExchangeRate stops a rate from being used for conversions.
	DeactivateExchangeRate(ctx context.Context, rateID string, userID string) error
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateWriterSvc
}

// BaseCurrencySvc reads and changes the business base currency.
type BaseCurrencySvc interface {
	GetBaseCurrency(ctx context.Context) (*domain.BusinessConfig, error)
	SetBaseCurrency(ctx context.Context, currencyCode string, userID string) (*domain.BusinessConfig, error)
}
