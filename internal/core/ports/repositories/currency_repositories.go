package repositories

import (
	"context"

	"github.com/SscSPs/storefront_currency/internal/core/domain"
)

// CurrencyReader defines read operations for currency configuration data
type CurrencyReader interface {
	// FindCurrencyByCode retrieves a specific currency by its code.
	FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.CurrencyConfig, error)

	// ListCurrencies retrieves all configured currencies, optionally only the active ones.
	ListCurrencies(ctx context.Context, activeOnly bool) ([]domain.CurrencyConfig, error)
}

// CurrencyWriter defines write operations for currency configuration data
type CurrencyWriter interface {
	// SaveCurrency persists a new currency. Returns apperrors.ErrDuplicate if the code exists
	// and apperrors.ErrConfiguration if it would introduce a second default.
	SaveCurrency(ctx context.Context, currency domain.CurrencyConfig) error

	// UpdateCurrency overwrites an existing currency.
	UpdateCurrency(ctx context.Context, currency domain.CurrencyConfig) error

	// SetDefaultCurrency moves the default flag to currencyCode in a single transaction.
	SetDefaultCurrency(ctx context.Context, currencyCode string, updatedBy string) error
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces
// This is a facade for clients that need access to all operations
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}

// CurrencyRepositoryWithTx extends CurrencyRepositoryFacade with transaction capabilities
type CurrencyRepositoryWithTx interface {
	CurrencyRepositoryFacade
	TransactionManager
}
