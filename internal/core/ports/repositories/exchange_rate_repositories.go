package repositories

import (
	"context"

	"github.com/SscSPs/storefront_currency/internal/core/domain"
)

// ExchangeRateReader defines read operations for exchange rate data
type ExchangeRateReader interface {
	// FindExchangeRate retrieves the active rate stored for exactly this pair.
	FindExchangeRate(ctx context.Context, fromCurrencyCode, toCurrencyCode string) (*domain.ExchangeRate, error)

	// FindExchangeRateByID retrieves an exchange rate by its ID.
	FindExchangeRateByID(ctx context.Context, rateID string) (*domain.ExchangeRate, error)

	// ListExchangeRates retrieves stored rates, optionally only the active ones.
	ListExchangeRates(ctx context.Context, activeOnly bool) ([]domain.ExchangeRate, error)
}

// ExchangeRateWriter defines write operations for exchange rate data
type ExchangeRateWriter interface {
	// SaveExchangeRate inserts a rate or replaces the one stored for the same pair and
	// returns the stored row.
	SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) (*domain.ExchangeRate, error)

	// DeactivateExchangeRate clears the active flag of a rate.
	DeactivateExchangeRate(ctx context.Context, rateID string, updatedBy string) error
}

// ExchangeRateRepositoryFacade combines all exchange rate-related repository interfaces
// This is a facade for clients that need access to all operations
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}

// ExchangeRateRepositoryWithTx extends ExchangeRateRepositoryFacade with transaction capabilities
type ExchangeRateRepositoryWithTx interface {
	ExchangeRateRepositoryFacade
	TransactionManager
}
