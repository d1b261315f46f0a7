package services_test

import (
	"context"
	"sync/atomic"

	"github.com/SscSPs/storefront_currency/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.CurrencyConfig) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

func (m *MockCurrencyRepository) UpdateCurrency(ctx context.Context, currency domain.CurrencyConfig) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

func (m *MockCurrencyRepository) SetDefaultCurrency(ctx context.Context, currencyCode string, updatedBy string) error {
	args := m.Called(ctx, currencyCode, updatedBy)
	return args.Error(0)
}

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.CurrencyConfig, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyConfig), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context, activeOnly bool) ([]domain.CurrencyConfig, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyConfig), args.Error(1)
}

func (m *MockCurrencyRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockCurrencyRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockCurrencyRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

// --- Mock ExchangeRateRepository ---
type MockExchangeRateRepository struct {
	mock.Mock
}

func (m *MockExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, rate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) FindExchangeRate(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, fromCode, toCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) FindExchangeRateByID(ctx context.Context, rateID string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, rateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) ListExchangeRates(ctx context.Context, activeOnly bool) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) DeactivateExchangeRate(ctx context.Context, rateID string, updatedBy string) error {
	return m.Called(ctx, rateID, updatedBy).Error(0)
}

// --- Mock BusinessConfigRepository ---
type MockBusinessConfigRepository struct {
	mock.Mock
}

func (m *MockBusinessConfigRepository) FindBusinessConfig(ctx context.Context, businessID string) (*domain.BusinessConfig, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BusinessConfig), args.Error(1)
}

func (m *MockBusinessConfigRepository) SaveBusinessConfig(ctx context.Context, cfg domain.BusinessConfig) error {
	return m.Called(ctx, cfg).Error(0)
}

// --- Mock CurrencyReaderSvc ---
type MockCurrencyReaderSvc struct {
	mock.Mock
}

func (m *MockCurrencyReaderSvc) GetCurrencyByCode(ctx context.Context, code string) (*domain.CurrencyConfig, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyConfig), args.Error(1)
}

func (m *MockCurrencyReaderSvc) ListCurrencies(ctx context.Context, activeOnly bool) ([]domain.CurrencyConfig, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyConfig), args.Error(1)
}

// countingInvalidator records how often a write asked for the snapshot to be dropped.
type countingInvalidator struct {
	calls atomic.Int32
}

func (c *countingInvalidator) Invalidate() { c.calls.Add(1) }

func (c *countingInvalidator) Count() int { return int(c.calls.Load()) }
