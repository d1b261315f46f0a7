// Package pricing converts and formats storefront amounts over an immutable snapshot of
// currency configuration and exchange rates. Nothing in this package mutates a Snapshot after
// NewSnapshot returns, so a Snapshot can be shared between goroutines without locking.
package pricing

import (
	"strings"

	"github.com/SscSPs/storefront_currency/internal/core/domain"
	"github.com/shopspring/decimal"
)

type ratePair struct {
	from string
	to   string
}

// Snapshot is a read-only view of the pricing configuration at one point in time.
type Snapshot struct {
	baseCurrency string
	currencies   []domain.CurrencyConfig
	byCode       map[string]domain.CurrencyConfig
	rates        map[ratePair]decimal.Decimal
}

// NewSnapshot builds a Snapshot anchored to baseCurrency. Inactive rates and rates that are not
// strictly positive are dropped; identity pairs are ignored since they always convert 1:1.
func NewSnapshot(baseCurrency string, currencies []domain.CurrencyConfig, rates []domain.ExchangeRate) *Snapshot {
	s := &Snapshot{
		baseCurrency: NormalizeCode(baseCurrency),
		currencies:   make([]domain.CurrencyConfig, len(currencies)),
		byCode:       make(map[string]domain.CurrencyConfig, len(currencies)),
		rates:        make(map[ratePair]decimal.Decimal, len(rates)),
	}

	for i, c := range currencies {
		c.CurrencyCode = NormalizeCode(c.CurrencyCode)
		s.currencies[i] = c
		s.byCode[c.CurrencyCode] = c
	}

	for _, r := range rates {
		if !r.IsActive || !r.Rate.IsPositive() || r.IsIdentity() {
			continue
		}
		key := ratePair{from: NormalizeCode(r.FromCurrencyCode), to: NormalizeCode(r.ToCurrencyCode)}
		s.rates[key] = r.Rate
	}

	return s
}

// BaseCurrency returns the code every rate in the snapshot is anchored to.
func (s *Snapshot) BaseCurrency() string {
	return s.baseCurrency
}

// Currencies returns a copy of the currency configurations in the snapshot.
func (s *Snapshot) Currencies() []domain.CurrencyConfig {
	out := make([]domain.CurrencyConfig, len(s.currencies))
	copy(out, s.currencies)
	return out
}

// ActiveCurrency returns the configuration for code if it exists and is active.
func (s *Snapshot) ActiveCurrency(code string) (domain.CurrencyConfig, bool) {
	c, ok := s.byCode[NormalizeCode(code)]
	if !ok || !c.IsActive {
		return domain.CurrencyConfig{}, false
	}
	return c, true
}

func (s *Snapshot) directRate(from, to string) (decimal.Decimal, bool) {
	r, ok := s.rates[ratePair{from: from, to: to}]
	return r, ok
}

// NormalizeCode upper-cases and trims a currency code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
