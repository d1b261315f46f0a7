package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/storefront_currency/internal/apperrors"
	"github.com/SscSPs/storefront_currency/internal/core/domain"
	portssvc "github.com/SscSPs/storefront_currency/internal/core/ports/services"
	"github.com/SscSPs/storefront_currency/internal/core/services"
	"github.com/SscSPs/storefront_currency/internal/utils/pricing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type staticLoader struct {
	snapshot *pricing.Snapshot
	err      error
}

func (l staticLoader) Load(context.Context) (*pricing.Snapshot, error) {
	return l.snapshot, l.err
}

type PricingServiceTestSuite struct {
	suite.Suite
	service portssvc.PricingSvc
}

func storefrontSnapshot() *pricing.Snapshot {
	currencies := []domain.CurrencyConfig{*usdConfig(), *eurConfig(), {
		CurrencyCode:     "JPY",
		Symbol:           "¥",
		Name:             "Yen",
		ExchangeRate:     decimal.NewFromInt(150),
		IsActive:         true,
		DecimalPrecision: 0,
		SymbolPosition:   domain.SymbolBefore,
	}}
	rates := []domain.ExchangeRate{
		{FromCurrencyCode: "USD", ToCurrencyCode: "EUR", Rate: decimal.RequireFromString("0.85"), IsActive: true},
	}
	return pricing.NewSnapshot("USD", currencies, rates)
}

func (suite *PricingServiceTestSuite) SetupTest() {
	suite.service = services.NewPricingService(staticLoader{snapshot: storefrontSnapshot()})
}

func (suite *PricingServiceTestSuite) TestConvert() {
	converted, err := suite.service.Convert(context.Background(), decimal.NewFromInt(100), "USD", "EUR")

	suite.Require().NoError(err)
	suite.True(converted.Equal(decimal.NewFromInt(85)), converted.String())
}

func (suite *PricingServiceTestSuite) TestConvert_ThroughBase() {
	// EUR -> JPY has no stored rate: 85 EUR is 100 USD is 15000 JPY.
	converted, err := suite.service.Convert(context.Background(), decimal.NewFromInt(85), "EUR", "JPY")

	suite.Require().NoError(err)
	suite.True(converted.Equal(decimal.NewFromInt(15000)), converted.String())
}

func (suite *PricingServiceTestSuite) TestConvert_Errors() {
	ctx := context.Background()

	_, err := suite.service.Convert(ctx, decimal.NewFromInt(-5), "USD", "EUR")
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)

	_, err = suite.service.Convert(ctx, decimal.NewFromInt(5), "USD", "CHF")
	suite.ErrorIs(err, apperrors.ErrRateNotFound)
}

func (suite *PricingServiceTestSuite) TestConvertMany() {
	amounts := []decimal.Decimal{decimal.NewFromInt(10), decimal.NewFromInt(20)}

	converted, err := suite.service.ConvertMany(context.Background(), amounts, "USD", "EUR")

	suite.Require().NoError(err)
	suite.Require().Len(converted, 2)
	suite.True(converted[0].Equal(decimal.RequireFromString("8.5")))
	suite.True(converted[1].Equal(decimal.NewFromInt(17)))
}

func (suite *PricingServiceTestSuite) TestFormat() {
	formatted, err := suite.service.Format(context.Background(), decimal.RequireFromString("1234.5"), "USD")

	suite.Require().NoError(err)
	suite.Equal("$1,234.50", formatted)

	_, err = suite.service.Format(context.Background(), decimal.NewFromInt(1), "CHF")
	suite.ErrorIs(err, apperrors.ErrUnknownCurrency)
}

func (suite *PricingServiceTestSuite) TestConvertAndFormat() {
	converted, formatted, err := suite.service.ConvertAndFormat(context.Background(), decimal.NewFromInt(1000), "USD", "EUR")

	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(850).Equal(converted))
	suite.Equal("850.00€", formatted)
}

func (suite *PricingServiceTestSuite) TestGetDefaultCurrency() {
	currency, err := suite.service.GetDefaultCurrency(context.Background())

	suite.Require().NoError(err)
	suite.Equal("USD", currency.CurrencyCode)
}

func (suite *PricingServiceTestSuite) TestGetDefaultCurrency_TwoDefaults() {
	eur := eurConfig()
	eur.IsDefault = true
	svc := services.NewPricingService(staticLoader{snapshot: pricing.NewSnapshot("USD", []domain.CurrencyConfig{*usdConfig(), *eur}, nil)})

	currency, err := svc.GetDefaultCurrency(context.Background())

	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrConfiguration)
}

func (suite *PricingServiceTestSuite) TestLoaderFailure() {
	svc := services.NewPricingService(staticLoader{err: assert.AnError})
	ctx := context.Background()

	_, err := svc.Convert(ctx, decimal.NewFromInt(1), "USD", "EUR")
	suite.ErrorIs(err, assert.AnError)

	_, err = svc.Format(ctx, decimal.NewFromInt(1), "USD")
	suite.ErrorIs(err, assert.AnError)

	_, err = svc.GetDefaultCurrency(ctx)
	suite.ErrorIs(err, assert.AnError)
}

func TestPricingService(t *testing.T) {
	suite.Run(t, new(PricingServiceTestSuite))
}
