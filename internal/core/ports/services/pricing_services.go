package services

import (
	"context"

	"github.com/SscSPs/storefront_currency/internal/core/domain"
	"github.com/SscSPs/storefront_currency/internal/utils/pricing"
	"github.com/shopspring/decimal"
)

// PricingSvc converts and formats amounts for order, catalog and checkout flows.
// Each call works on one consistent snapshot of the currency configuration.
type PricingSvc interface {
	Snapshot(ctx context.Context) (*pricing.Snapshot, error)
	Convert(ctx context.Context, amount decimal.Decimal, from, to string) (decimal.Decimal, error)
	ConvertMany(ctx context.Context, amounts []decimal.Decimal, from, to string) ([]decimal.Decimal, error)
	Format(ctx context.Context, amount decimal.Decimal, currencyCode string) (string, error)
	ConvertAndFormat(ctx context.Context, amount decimal.Decimal, from, to string) (decimal.Decimal, string, error)
	GetDefaultCurrency(ctx context.Context) (*domain.CurrencyConfig, error)
}
