package models

import "github.com/shopspring/decimal"

// CurrencyConfig is a row of the currency_configs table.
type CurrencyConfig struct {
	CurrencyCode     string          `db:"currency_code"` // Primary Key (e.g., "USD")
	Symbol           string          `db:"symbol"`
	Name             string          `db:"name"`
	ExchangeRate     decimal.Decimal `db:"exchange_rate"`
	IsActive         bool            `db:"is_active"`
	IsDefault        bool            `db:"is_default"` // partial unique index: at most one true
	DecimalPrecision int             `db:"decimal_precision"`
	SymbolPosition   string          `db:"symbol_position"`
	AuditFields
}

// BusinessConfig is a row of the business_configs table.
type BusinessConfig struct {
	BusinessID   string `db:"business_id"`
	BaseCurrency string `db:"base_currency_code"`
	AuditFields
}
