package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ExchangeRate stores the conversion rate from one currency to another:
// one unit of FromCurrencyCode buys Rate units of ToCurrencyCode.
type ExchangeRate struct {
	ExchangeRateID   string          `json:"exchangeRateID"`
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	Rate             decimal.Decimal `json:"rate"`
	IsBase           bool            `json:"isBase"`
	IsActive         bool            `json:"isActive"`
	Source           string          `json:"source"`
	AuditFields
}

// IsIdentity reports whether the rate converts a currency into itself.
func (r ExchangeRate) IsIdentity() bool {
	return strings.EqualFold(r.FromCurrencyCode, r.ToCurrencyCode)
}

// IdentityRate builds the (code, code) record every currency implicitly has.
func IdentityRate(code string) ExchangeRate {
	return ExchangeRate{
		FromCurrencyCode: code,
		ToCurrencyCode:   code,
		Rate:             decimal.NewFromInt(1),
		IsBase:           true,
		IsActive:         true,
		Source:           "identity",
	}
}
