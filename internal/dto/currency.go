package dto

import (
	"time"

	"github.com/SscSPs/storefront_currency/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCurrencyRequest defines the data needed to configure a new currency.
type CreateCurrencyRequest struct {
	CurrencyCode     string          `json:"currencyCode" binding:"required,uppercase,len=3,iso4217"`
	Symbol           string          `json:"symbol" binding:"required,max=8"`
	Name             string          `json:"name" binding:"required"`
	ExchangeRate     decimal.Decimal `json:"exchangeRate"`
	IsActive         *bool           `json:"isActive"`
	IsDefault        bool            `json:"isDefault"`
	DecimalPrecision *int            `json:"decimalPrecision" binding:"omitempty,min=0,max=4"`
	SymbolPosition   string          `json:"symbolPosition" binding:"omitempty,symbolposition"`
}

// UpdateCurrencyRequest carries optional changes to an existing currency.
type UpdateCurrencyRequest struct {
	Symbol           *string          `json:"symbol" binding:"omitempty,max=8"`
	Name             *string          `json:"name"`
	ExchangeRate     *decimal.Decimal `json:"exchangeRate"`
	IsActive         *bool            `json:"isActive"`
	IsDefault        *bool            `json:"isDefault"`
	DecimalPrecision *int             `json:"decimalPrecision" binding:"omitempty,min=0,max=4"`
	SymbolPosition   *string          `json:"symbolPosition" binding:"omitempty,symbolposition"`
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	CurrencyCode     string          `json:"currencyCode"`
	Symbol           string          `json:"symbol"`
	Name             string          `json:"name"`
	ExchangeRate     decimal.Decimal `json:"exchangeRate"`
	IsActive         bool            `json:"isActive"`
	IsDefault        bool            `json:"isDefault"`
	DecimalPrecision int             `json:"decimalPrecision"`
	SymbolPosition   string          `json:"symbolPosition"`
	CreatedAt        time.Time       `json:"createdAt"`
	CreatedBy        string          `json:"createdBy"`
	LastUpdatedAt    time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy    string          `json:"lastUpdatedBy"`
}

// ToCurrencyResponse converts a domain.CurrencyConfig to CurrencyResponse DTO
func ToCurrencyResponse(curr *domain.CurrencyConfig) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode:     curr.CurrencyCode,
		Symbol:           curr.Symbol,
		Name:             curr.Name,
		ExchangeRate:     curr.ExchangeRate,
		IsActive:         curr.IsActive,
		IsDefault:        curr.IsDefault,
		DecimalPrecision: curr.DecimalPrecision,
		SymbolPosition:   string(curr.SymbolPosition),
		CreatedAt:        curr.CreatedAt,
		CreatedBy:        curr.CreatedBy,
		LastUpdatedAt:    curr.LastUpdatedAt,
		LastUpdatedBy:    curr.LastUpdatedBy,
	}
}

// ToListCurrencyResponse converts a slice of domain.CurrencyConfig to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []domain.CurrencyConfig) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		res[i] = ToCurrencyResponse(&currencies[i])
	}
	return res
}
