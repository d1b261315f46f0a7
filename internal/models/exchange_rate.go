package models

import "github.com/shopspring/decimal"

// ExchangeRate is a row of the exchange_rates table, unique per (from, to) pair.
type ExchangeRate struct {
	ExchangeRateID   string          `db:"exchange_rate_id"` // Primary Key (UUID)
	FromCurrencyCode string          `db:"from_currency_code"`
	ToCurrencyCode   string          `db:"to_currency_code"`
	Rate             decimal.Decimal `db:"rate"`
	IsBase           bool            `db:"is_base"`
	IsActive         bool            `db:"is_active"`
	Source           string          `db:"source"`
	AuditFields
}
