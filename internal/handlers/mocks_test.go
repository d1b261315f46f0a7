package handlers_test

import (
	"context"

	"github.com/SscSPs/storefront_currency/internal/core/domain"
	portssvc "github.com/SscSPs/storefront_currency/internal/core/ports/services"
	"github.com/SscSPs/storefront_currency/internal/dto"
	"github.com/SscSPs/storefront_currency/internal/utils/pricing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock CurrencyService ---
type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) GetCurrencyByCode(ctx context.Context, code string) (*domain.CurrencyConfig, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyConfig), args.Error(1)
}

func (m *MockCurrencyService) ListCurrencies(ctx context.Context, activeOnly bool) ([]domain.CurrencyConfig, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyConfig), args.Error(1)
}

func (m *MockCurrencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID string) (*domain.CurrencyConfig, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyConfig), args.Error(1)
}

func (m *MockCurrencyService) UpdateCurrency(ctx context.Context, code string, req dto.UpdateCurrencyRequest, userID string) (*domain.CurrencyConfig, error) {
	args := m.Called(ctx, code, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyConfig), args.Error(1)
}

func (m *MockCurrencyService) SetDefaultCurrency(ctx context.Context, code string, userID string) (*domain.CurrencyConfig, error) {
	args := m.Called(ctx, code, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyConfig), args.Error(1)
}

var _ portssvc.CurrencySvcFacade = (*MockCurrencyService)(nil)

// --- Mock ExchangeRateService ---
type MockExchangeRateService struct {
	mock.Mock
}

func (m *MockExchangeRateService) GetExchangeRate(ctx context.Context, from, to string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateService) ListExchangeRates(ctx context.Context, activeOnly bool) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateService) CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest, creatorUserID string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateService) DeactivateExchangeRate(ctx context.Context, rateID string, userID string) error {
	return m.Called(ctx, rateID, userID).Error(0)
}

var _ portssvc.ExchangeRateSvcFacade = (*MockExchangeRateService)(nil)

// --- Mock BaseCurrencyService ---
type MockBaseCurrencyService struct {
	mock.Mock
}

func (m *MockBaseCurrencyService) GetBaseCurrency(ctx context.Context) (*domain.BusinessConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BusinessConfig), args.Error(1)
}

func (m *MockBaseCurrencyService) SetBaseCurrency(ctx context.Context, code string, userID string) (*domain.BusinessConfig, error) {
	args := m.Called(ctx, code, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BusinessConfig), args.Error(1)
}

var _ portssvc.BaseCurrencySvc = (*MockBaseCurrencyService)(nil)

// --- Mock PricingService ---
type MockPricingService struct {
	mock.Mock
}

func (m *MockPricingService) Snapshot(ctx context.Context) (*pricing.Snapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.Snapshot), args.Error(1)
}

func (m *MockPricingService) Convert(ctx context.Context, amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	args := m.Called(ctx, amount, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockPricingService) ConvertMany(ctx context.Context, amounts []decimal.Decimal, from, to string) ([]decimal.Decimal, error) {
	args := m.Called(ctx, amounts, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]decimal.Decimal), args.Error(1)
}

func (m *MockPricingService) Format(ctx context.Context, amount decimal.Decimal, code string) (string, error) {
	args := m.Called(ctx, amount, code)
	return args.String(0), args.Error(1)
}

func (m *MockPricingService) ConvertAndFormat(ctx context.Context, amount decimal.Decimal, from, to string) (decimal.Decimal, string, error) {
	args := m.Called(ctx, amount, from, to)
	return args.Get(0).(decimal.Decimal), args.String(1), args.Error(2)
}

func (m *MockPricingService) GetDefaultCurrency(ctx context.Context) (*domain.CurrencyConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyConfig), args.Error(1)
}

var _ portssvc.PricingSvc = (*MockPricingService)(nil)
