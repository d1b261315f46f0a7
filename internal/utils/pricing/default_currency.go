package pricing

import (
	"fmt"
	"strings"

	"github.com/SscSPs/storefront_currency/internal/apperrors"
	"github.com/SscSPs/storefront_currency/internal/core/domain"
)

// DefaultCurrency returns the single currency flagged as default.
func (s *Snapshot) DefaultCurrency() (domain.CurrencyConfig, error) {
	return FindDefaultCurrency(s.currencies)
}

// FindDefaultCurrency returns the one currency with IsDefault set. Zero or several defaults
// mean the stored configuration is broken and yield ErrConfiguration.
func FindDefaultCurrency(currencies []domain.CurrencyConfig) (domain.CurrencyConfig, error) {
	var defaults []domain.CurrencyConfig
	for _, c := range currencies {
		if c.IsDefault {
			defaults = append(defaults, c)
		}
	}

	switch len(defaults) {
	case 1:
		return defaults[0], nil
	case 0:
		return domain.CurrencyConfig{}, fmt.Errorf("%w: no default currency configured", apperrors.ErrConfiguration)
	default:
		codes := make([]string, len(defaults))
		for i, c := range defaults {
			codes[i] = c.CurrencyCode
		}
		return domain.CurrencyConfig{}, fmt.Errorf("%w: %d default currencies configured (%s)",
			apperrors.ErrConfiguration, len(defaults), strings.Join(codes, ", "))
	}
}
