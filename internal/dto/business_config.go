package dto

import (
	"time"

	"github.com/SscSPs/storefront_currency/internal/core/domain"
)

// SetBaseCurrencyRequest selects the currency all rates are anchored to.
type SetBaseCurrencyRequest struct {
	CurrencyCode string `json:"currencyCode" binding:"required,len=3,uppercase"`
}

// BaseCurrencyResponse describes the business base currency.
type BaseCurrencyResponse struct {
	BusinessID    string    `json:"businessID"`
	BaseCurrency  string    `json:"baseCurrency"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// ToBaseCurrencyResponse converts a domain.BusinessConfig to BaseCurrencyResponse DTO
func ToBaseCurrencyResponse(cfg *domain.BusinessConfig) BaseCurrencyResponse {
	return BaseCurrencyResponse{
		BusinessID:    cfg.BusinessID,
		BaseCurrency:  cfg.BaseCurrency,
		LastUpdatedAt: cfg.LastUpdatedAt,
		LastUpdatedBy: cfg.LastUpdatedBy,
	}
}
