package pricing

import (
	"fmt"

	"github.com/SscSPs/storefront_currency/internal/apperrors"
	"github.com/shopspring/decimal"
)

const (
	// maxAmountExponent bounds the decimal exponent of parsed amounts in both directions.
	maxAmountExponent = 32
	// maxAmountDigits bounds the significant digits of parsed amounts.
	maxAmountDigits = 30
)

// ParseAmount parses a decimal string amount, rejecting malformed, oversized and negative values.
func ParseAmount(raw string) (decimal.Decimal, error) {
	amount, err := ParseSignedAmount(raw)
	if err != nil {
		return decimal.Zero, err
	}
	if err := validateAmount(amount); err != nil {
		return decimal.Zero, err
	}
	return amount, nil
}

// ParseSignedAmount is ParseAmount for display inputs, where negative values are allowed.
func ParseSignedAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a decimal number", apperrors.ErrInvalidAmount, raw)
	}
	exp := amount.Exponent()
	if exp > maxAmountExponent || exp < -maxAmountExponent || amount.NumDigits() > maxAmountDigits {
		return decimal.Zero, fmt.Errorf("%w: amount is out of range", apperrors.ErrInvalidAmount)
	}
	return amount, nil
}

func validateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: amount %s is negative", apperrors.ErrInvalidAmount, amount.String())
	}
	return nil
}

// Convert converts amount from one currency to another.
//
// A direct rate (from, to) wins, then the inverse of (to, from). Otherwise the amount is taken
// to the base currency and from there to the target currency.
func (s *Snapshot) Convert(amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	if err := validateAmount(amount); err != nil {
		return decimal.Zero, err
	}
	from, to = NormalizeCode(from), NormalizeCode(to)
	if from == "" || to == "" {
		return decimal.Zero, fmt.Errorf("%w: currency codes are required", apperrors.ErrValidation)
	}

	if from == to {
		return amount, nil
	}

	if rate, ok := s.directRate(from, to); ok {
		return amount.Mul(rate), nil
	}
	if rate, ok := s.directRate(to, from); ok {
		return amount.Div(rate), nil
	}

	fromRate, ok := s.rateFromBase(from)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: no path from %s to %s via base %s", apperrors.ErrRateNotFound, from, to, s.baseCurrency)
	}
	toRate, ok := s.rateFromBase(to)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: no path from %s to %s via base %s", apperrors.ErrRateNotFound, from, to, s.baseCurrency)
	}

	inBase := amount.Div(fromRate)
	return inBase.Mul(toRate), nil
}

// ConvertMany converts every amount with the same pair. It stops at the first failure.
func (s *Snapshot) ConvertMany(amounts []decimal.Decimal, from, to string) ([]decimal.Decimal, error) {
	out := make([]decimal.Decimal, len(amounts))
	for i, amount := range amounts {
		converted, err := s.Convert(amount, from, to)
		if err != nil {
			return nil, fmt.Errorf("amount #%d: %w", i, err)
		}
		out[i] = converted
	}
	return out, nil
}

// rateFromBase returns how many units of code one unit of the base currency buys.
func (s *Snapshot) rateFromBase(code string) (decimal.Decimal, bool) {
	if s.baseCurrency == "" {
		return decimal.Zero, false
	}
	if code == s.baseCurrency {
		return decimal.NewFromInt(1), true
	}
	if rate, ok := s.directRate(s.baseCurrency, code); ok {
		return rate, true
	}
	if rate, ok := s.directRate(code, s.baseCurrency); ok {
		return decimal.NewFromInt(1).Div(rate), true
	}
	if c, ok := s.ActiveCurrency(code); ok && c.ExchangeRate.IsPositive() {
		return c.ExchangeRate, true
	}
	return decimal.Zero, false
}
