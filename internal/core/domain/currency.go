package domain

import (
	"github.com/shopspring/decimal"
)

// SymbolPosition controls where a currency symbol is placed when formatting an amount.
type SymbolPosition string

const (
	SymbolBefore SymbolPosition = "before"
	SymbolAfter  SymbolPosition = "after"
)

// MaxDecimalPrecision is the largest number of fractional digits a currency may display.
const MaxDecimalPrecision = 4

// IsValid reports whether p is one of the known symbol positions.
func (p SymbolPosition) IsValid() bool {
	return p == SymbolBefore || p == SymbolAfter
}

// CurrencyConfig represents a currency the storefront can price and display in.
type CurrencyConfig struct {
	CurrencyCode     string          `json:"currencyCode"` // Primary Key (ISO 4217, e.g. "USD")
	Symbol           string          `json:"symbol"`       // e.g. "$"
	Name             string          `json:"name"`         // e.g. "US Dollar"
	ExchangeRate     decimal.Decimal `json:"exchangeRate"` // units of this currency per one unit of base
	IsActive         bool            `json:"isActive"`
	IsDefault        bool            `json:"isDefault"`
	DecimalPrecision int             `json:"decimalPrecision"` // 0..MaxDecimalPrecision
	SymbolPosition   SymbolPosition  `json:"symbolPosition"`
	AuditFields
}

// BusinessConfig holds the per-business base currency all exchange rates are anchored to.
type BusinessConfig struct {
	BusinessID   string `json:"businessID"`
	BaseCurrency string `json:"baseCurrency"`
	AuditFields
}
