package pricing

import (
	"fmt"
	"strings"

	"github.com/SscSPs/storefront_currency/internal/apperrors"
	"github.com/SscSPs/storefront_currency/internal/core/domain"
	"github.com/shopspring/decimal"
)

const (
	thousandsSeparator = ","
	decimalSeparator   = "."
)

// Format renders amount for display in the given currency, e.g. "$1,234.50".
// Halves round away from zero.
func (s *Snapshot) Format(amount decimal.Decimal, code string) (string, error) {
	currency, ok := s.ActiveCurrency(code)
	if !ok {
		return "", fmt.Errorf("%w: %s has no active configuration", apperrors.ErrUnknownCurrency, NormalizeCode(code))
	}
	return FormatWithConfig(amount, currency)
}

// ConvertAndFormat converts amount into the target currency and formats it there.
// It returns the converted amount alongside its display string.
func (s *Snapshot) ConvertAndFormat(amount decimal.Decimal, from, to string) (decimal.Decimal, string, error) {
	converted, err := s.Convert(amount, from, to)
	if err != nil {
		return decimal.Zero, "", err
	}
	formatted, err := s.Format(converted, to)
	if err != nil {
		return decimal.Zero, "", err
	}
	return converted, formatted, nil
}

// FormatWithConfig formats amount using the precision and symbol placement of currency.
func FormatWithConfig(amount decimal.Decimal, currency domain.CurrencyConfig) (string, error) {
	precision := currency.DecimalPrecision
	if precision < 0 || precision > domain.MaxDecimalPrecision {
		return "", fmt.Errorf("%w: %s has decimal precision %d", apperrors.ErrConfiguration, currency.CurrencyCode, precision)
	}

	rounded := amount.Round(int32(precision))
	number := groupThousands(rounded.Abs().StringFixed(int32(precision)))

	var b strings.Builder
	if rounded.IsNegative() {
		b.WriteString("-")
	}
	switch currency.SymbolPosition {
	case domain.SymbolAfter:
		b.WriteString(number)
		b.WriteString(currency.Symbol)
	case domain.SymbolBefore, "":
		b.WriteString(currency.Symbol)
		b.WriteString(number)
	default:
		return "", fmt.Errorf("%w: %s has symbol position %q", apperrors.ErrConfiguration, currency.CurrencyCode, currency.SymbolPosition)
	}
	return b.String(), nil
}

// groupThousands inserts separators into the integer part of an unsigned fixed-point string.
func groupThousands(fixed string) string {
	intPart, fracPart, hasFrac := strings.Cut(fixed, ".")

	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteString(thousandsSeparator)
		}
		b.WriteString(intPart[i : i+3])
	}

	if hasFrac {
		b.WriteString(decimalSeparator)
		b.WriteString(fracPart)
	}
	return b.String()
}
