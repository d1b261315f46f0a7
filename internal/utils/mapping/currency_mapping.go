package mapping

import (
	"github.com/SscSPs/storefront_currency/internal/core/domain"
	"github.com/SscSPs/storefront_currency/internal/models"
)

// ToModelCurrency converts a domain CurrencyConfig to a model CurrencyConfig
func ToModelCurrency(d domain.CurrencyConfig) models.CurrencyConfig {
	return models.CurrencyConfig{
		CurrencyCode:     d.CurrencyCode,
		Symbol:           d.Symbol,
		Name:             d.Name,
		ExchangeRate:     d.ExchangeRate,
		IsActive:         d.IsActive,
		IsDefault:        d.IsDefault,
		DecimalPrecision: d.DecimalPrecision,
		SymbolPosition:   string(d.SymbolPosition),
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCurrency converts a model CurrencyConfig to a domain CurrencyConfig
func ToDomainCurrency(m models.CurrencyConfig) domain.CurrencyConfig {
	return domain.CurrencyConfig{
		CurrencyCode:     m.CurrencyCode,
		Symbol:           m.Symbol,
		Name:             m.Name,
		ExchangeRate:     m.ExchangeRate,
		IsActive:         m.IsActive,
		IsDefault:        m.IsDefault,
		DecimalPrecision: m.DecimalPrecision,
		SymbolPosition:   domain.SymbolPosition(m.SymbolPosition),
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCurrencySlice converts a slice of model currencies to a slice of domain currencies
func ToDomainCurrencySlice(ms []models.CurrencyConfig) []domain.CurrencyConfig {
	ds := make([]domain.CurrencyConfig, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCurrency(m)
	}
	return ds
}

// ToModelBusinessConfig converts a domain BusinessConfig to a model BusinessConfig
func ToModelBusinessConfig(d domain.BusinessConfig) models.BusinessConfig {
	return models.BusinessConfig{
		BusinessID:   d.BusinessID,
		BaseCurrency: d.BaseCurrency,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBusinessConfig converts a model BusinessConfig to a domain BusinessConfig
func ToDomainBusinessConfig(m models.BusinessConfig) domain.BusinessConfig {
	return domain.BusinessConfig{
		BusinessID:   m.BusinessID,
		BaseCurrency: m.BaseCurrency,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
