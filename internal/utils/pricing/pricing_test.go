package pricing_test

import (
	"sync"
	"testing"

	"github.com/SscSPs/storefront_currency/internal/apperrors"
	"github.com/SscSPs/storefront_currency/internal/core/domain"
	"github.com/SscSPs/storefront_currency/internal/utils/pricing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testCurrencies() []domain.CurrencyConfig {
	return []domain.CurrencyConfig{
		{CurrencyCode: "USD", Symbol: "$", ExchangeRate: dec("1"), IsActive: true, IsDefault: true, DecimalPrecision: 2, SymbolPosition: domain.SymbolBefore},
		{CurrencyCode: "EUR", Symbol: "€", ExchangeRate: dec("0.92"), IsActive: true, DecimalPrecision: 2, SymbolPosition: domain.SymbolAfter},
		{CurrencyCode: "JPY", Symbol: "¥", ExchangeRate: dec("150"), IsActive: true, DecimalPrecision: 0, SymbolPosition: domain.SymbolBefore},
		{CurrencyCode: "GBP", Symbol: "£", IsActive: true, DecimalPrecision: 2, SymbolPosition: domain.SymbolBefore},
		{CurrencyCode: "KWD", Symbol: "KD", ExchangeRate: dec("0.3075"), IsActive: true, DecimalPrecision: 3, SymbolPosition: domain.SymbolAfter},
		{CurrencyCode: "CHF", Symbol: "Fr", ExchangeRate: dec("0.88"), IsActive: false, DecimalPrecision: 2, SymbolPosition: domain.SymbolBefore},
	}
}

func testRates() []domain.ExchangeRate {
	return []domain.ExchangeRate{
		domain.IdentityRate("USD"),
		{FromCurrencyCode: "USD", ToCurrencyCode: "EUR", Rate: dec("0.85"), IsActive: true, Source: "manual"},
		{FromCurrencyCode: "GBP", ToCurrencyCode: "USD", Rate: dec("1.25"), IsActive: true, Source: "manual"},
		{FromCurrencyCode: "EUR", ToCurrencyCode: "JPY", Rate: dec("160"), IsActive: true, Source: "manual"},
		{FromCurrencyCode: "USD", ToCurrencyCode: "CHF", Rate: dec("0.9"), IsActive: false, Source: "stale"},
	}
}

func newTestSnapshot() *pricing.Snapshot {
	return pricing.NewSnapshot("usd", testCurrencies(), testRates())
}

func TestConvert_Identity(t *testing.T) {
	s := newTestSnapshot()
	for _, code := range []string{"USD", "EUR", "JPY", "GBP", "XYZ"} {
		got, err := s.Convert(dec("123.456"), code, code)
		require.NoError(t, err, code)
		assert.True(t, dec("123.456").Equal(got), "%s: got %s", code, got)
	}
}

func TestConvert_Paths(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		from   string
		to     string
		want   string
	}{
		{name: "direct rate", amount: "100", from: "USD", to: "EUR", want: "85"},
		{name: "inverse of direct rate", amount: "85", from: "EUR", to: "USD", want: "100"},
		{name: "direct rate between non-base currencies", amount: "2", from: "EUR", to: "JPY", want: "320"},
		{name: "to base via inverse stored pair", amount: "10", from: "GBP", to: "USD", want: "12.5"},
		{name: "via base using config rate", amount: "150", from: "JPY", to: "USD", want: "1"},
		{name: "via base on both legs", amount: "10", from: "GBP", to: "KWD", want: "3.84375"},
		{name: "lower case codes", amount: "100", from: "usd", to: " eur ", want: "85"},
		{name: "zero amount", amount: "0", from: "USD", to: "EUR", want: "0"},
	}

	s := newTestSnapshot()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Convert(dec(tt.amount), tt.from, tt.to)
			require.NoError(t, err)
			assert.True(t, dec(tt.want).Equal(got.Round(10)), "want %s, got %s", tt.want, got)
		})
	}
}

func TestConvert_RoundTrip(t *testing.T) {
	s := newTestSnapshot()
	codes := []string{"USD", "EUR", "JPY", "GBP", "KWD"}
	x := dec("1234.56")
	tolerance := dec("0.0000001")

	for _, a := range codes {
		for _, b := range codes {
			there, err := s.Convert(x, a, b)
			require.NoError(t, err, "%s->%s", a, b)
			back, err := s.Convert(there, b, a)
			require.NoError(t, err, "%s->%s", b, a)
			assert.True(t, back.Sub(x).Abs().LessThan(tolerance), "%s->%s->%s: got %s", a, b, a, back)
		}
	}
}

func TestConvert_Errors(t *testing.T) {
	s := newTestSnapshot()

	_, err := s.Convert(dec("-5"), "USD", "EUR")
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)

	_, err = s.Convert(dec("5"), "USD", "CHF")
	assert.ErrorIs(t, err, apperrors.ErrRateNotFound, "inactive rate and inactive config must not be used")

	_, err = s.Convert(dec("5"), "XYZ", "USD")
	assert.ErrorIs(t, err, apperrors.ErrRateNotFound)

	_, err = s.Convert(dec("5"), "", "USD")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestConvert_NoBaseCurrency(t *testing.T) {
	s := pricing.NewSnapshot("", testCurrencies(), testRates())

	got, err := s.Convert(dec("100"), "USD", "EUR")
	require.NoError(t, err)
	assert.True(t, dec("85").Equal(got))

	_, err = s.Convert(dec("100"), "JPY", "KWD")
	assert.ErrorIs(t, err, apperrors.ErrRateNotFound)
}

func TestConvertMany(t *testing.T) {
	s := newTestSnapshot()

	got, err := s.ConvertMany([]decimal.Decimal{dec("1"), dec("10"), dec("100")}, "USD", "EUR")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.True(t, dec("8.5").Equal(got[1]))

	_, err = s.ConvertMany([]decimal.Decimal{dec("1"), dec("-1")}, "USD", "EUR")
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
	assert.Contains(t, err.Error(), "amount #1")
}

func TestParseAmount(t *testing.T) {
	got, err := pricing.ParseAmount("1234.50")
	require.NoError(t, err)
	assert.True(t, dec("1234.5").Equal(got))

	got, err = pricing.ParseAmount("1.5e3")
	require.NoError(t, err)
	assert.True(t, dec("1500").Equal(got))

	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"not a number", "abc"},
		{"negative", "-5"},
		{"nan", "NaN"},
		{"inf", "Inf"},
		{"grouped", "1,000"},
		{"huge exponent", "1e1000000"},
		{"tiny exponent", "1e-1000000"},
		{"exponent just over", "1e33"},
		{"too many digits", "1234567890123456789012345678901"},
		{"too many fractional digits", "0.000000000000000000000000000000001"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := pricing.ParseAmount(tt.raw)
			assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
		})
	}
}

func TestParseSignedAmount(t *testing.T) {
	got, err := pricing.ParseSignedAmount("-12.5")
	require.NoError(t, err)
	assert.True(t, dec("-12.5").Equal(got))

	for _, raw := range []string{"abc", "-1e1000000", "1e-40"} {
		_, err := pricing.ParseSignedAmount(raw)
		assert.ErrorIs(t, err, apperrors.ErrInvalidAmount, raw)
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		code   string
		want   string
	}{
		{name: "symbol before with grouping", amount: "1234.5", code: "USD", want: "$1,234.50"},
		{name: "symbol after", amount: "1234.5", code: "EUR", want: "1,234.50€"},
		{name: "zero precision rounds half up", amount: "1234.5", code: "JPY", want: "¥1,235"},
		{name: "three decimals", amount: "0.0005", code: "KWD", want: "0.001KD"},
		{name: "half up at precision", amount: "2.345", code: "USD", want: "$2.35"},
		{name: "below half rounds down", amount: "2.344", code: "USD", want: "$2.34"},
		{name: "millions", amount: "1234567.891", code: "USD", want: "$1,234,567.89"},
		{name: "exact thousand", amount: "1000", code: "USD", want: "$1,000.00"},
		{name: "small amount", amount: "5", code: "USD", want: "$5.00"},
		{name: "negative refund", amount: "-1234.5", code: "USD", want: "-$1,234.50"},
		{name: "negative rounding to zero", amount: "-0.001", code: "USD", want: "$0.00"},
		{name: "case insensitive code", amount: "1", code: "usd", want: "$1.00"},
	}

	s := newTestSnapshot()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Format(dec(tt.amount), tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_UnknownCurrency(t *testing.T) {
	s := newTestSnapshot()

	_, err := s.Format(dec("1"), "CHF")
	assert.ErrorIs(t, err, apperrors.ErrUnknownCurrency, "inactive currency")

	_, err = s.Format(dec("1"), "XYZ")
	assert.ErrorIs(t, err, apperrors.ErrUnknownCurrency, "nonexistent currency")
}

func TestFormatWithConfig_BrokenConfig(t *testing.T) {
	_, err := pricing.FormatWithConfig(dec("1"), domain.CurrencyConfig{CurrencyCode: "BAD", DecimalPrecision: 7})
	assert.ErrorIs(t, err, apperrors.ErrConfiguration)

	_, err = pricing.FormatWithConfig(dec("1"), domain.CurrencyConfig{CurrencyCode: "BAD", DecimalPrecision: 2, SymbolPosition: "middle"})
	assert.ErrorIs(t, err, apperrors.ErrConfiguration)
}

func TestConvertAndFormat(t *testing.T) {
	s := newTestSnapshot()

	converted, got, err := s.ConvertAndFormat(dec("1000"), "USD", "EUR")
	require.NoError(t, err)
	assert.True(t, dec("850").Equal(converted))
	assert.Equal(t, "850.00€", got)

	_, _, err = s.ConvertAndFormat(dec("1"), "USD", "XYZ")
	assert.ErrorIs(t, err, apperrors.ErrRateNotFound)
}

func TestDefaultCurrency(t *testing.T) {
	s := newTestSnapshot()
	def, err := s.DefaultCurrency()
	require.NoError(t, err)
	assert.Equal(t, "USD", def.CurrencyCode)

	none := testCurrencies()
	none[0].IsDefault = false
	_, err = pricing.FindDefaultCurrency(none)
	assert.ErrorIs(t, err, apperrors.ErrConfiguration)

	two := testCurrencies()
	two[1].IsDefault = true
	_, err = pricing.FindDefaultCurrency(two)
	assert.ErrorIs(t, err, apperrors.ErrConfiguration)
	assert.Contains(t, err.Error(), "USD, EUR")
}

func TestSnapshot_ConcurrentReads(t *testing.T) {
	s := newTestSnapshot()
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := s.ConvertAndFormat(dec("19.99"), "GBP", "JPY")
			assert.NoError(t, err)
			_, err = s.DefaultCurrency()
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
}
