package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/storefront_currency/internal/apperrors"
	"github.com/SscSPs/storefront_currency/internal/core/domain"
	portssvc "github.com/SscSPs/storefront_currency/internal/core/ports/services"
	"github.com/SscSPs/storefront_currency/internal/utils/pricing"
	"github.com/shopspring/decimal"
)

type pricingService struct {
	BaseService
	loader SnapshotLoader
}

// NewPricingService creates the conversion and formatting service on top of loader.
func NewPricingService(loader SnapshotLoader) portssvc.PricingSvc {
	return &pricingService{loader: loader}
}

var _ portssvc.PricingSvc = (*pricingService)(nil)

func (s *pricingService) Snapshot(ctx context.Context) (*pricing.Snapshot, error) {
	snapshot, err := s.loader.Load(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load pricing snapshot")
		return nil, fmt.Errorf("failed to load pricing snapshot: %w", err)
	}
	return snapshot, nil
}

func (s *pricingService) Convert(ctx context.Context, amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	snapshot, err := s.Snapshot(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	converted, err := snapshot.Convert(amount, from, to)
	if err != nil {
		s.logRateGap(ctx, err, from, to)
		return decimal.Zero, err
	}
	return converted, nil
}

func (s *pricingService) ConvertMany(ctx context.Context, amounts []decimal.Decimal, from, to string) ([]decimal.Decimal, error) {
	snapshot, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	converted, err := snapshot.ConvertMany(amounts, from, to)
	if err != nil {
		s.logRateGap(ctx, err, from, to)
		return nil, err
	}
	return converted, nil
}

func (s *pricingService) Format(ctx context.Context, amount decimal.Decimal, currencyCode string) (string, error) {
	snapshot, err := s.Snapshot(ctx)
	if err != nil {
		return "", err
	}
	return snapshot.Format(amount, currencyCode)
}

func (s *pricingService) ConvertAndFormat(ctx context.Context, amount decimal.Decimal, from, to string) (decimal.Decimal, string, error) {
	snapshot, err := s.Snapshot(ctx)
	if err != nil {
		return decimal.Zero, "", err
	}
	converted, formatted, err := snapshot.ConvertAndFormat(amount, from, to)
	if err != nil {
		s.logRateGap(ctx, err, from, to)
		return decimal.Zero, "", err
	}
	return converted, formatted, nil
}

func (s *pricingService) GetDefaultCurrency(ctx context.Context) (*domain.CurrencyConfig, error) {
	snapshot, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	currency, err := snapshot.DefaultCurrency()
	if err != nil {
		s.LogError(ctx, err, "Default currency misconfigured")
		return nil, err
	}
	return &currency, nil
}

// logRateGap records missing rates so operators can fill them in.
func (s *pricingService) logRateGap(ctx context.Context, err error, from, to string) {
	if errors.Is(err, apperrors.ErrRateNotFound) {
		s.LogWarn(ctx, "No exchange path between currencies", slog.String("from", from), slog.String("to", to))
	}
}
