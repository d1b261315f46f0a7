package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/storefront_currency/internal/apperrors"
	"github.com/SscSPs/storefront_currency/internal/core/domain"
	portssvc "github.com/SscSPs/storefront_currency/internal/core/ports/services"
	"github.com/SscSPs/storefront_currency/internal/core/services"
	"github.com/SscSPs/storefront_currency/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type ExchangeRateServiceTestSuite struct {
	suite.Suite
	mockRateRepo    *MockExchangeRateRepository
	mockCurrencySvc *MockCurrencyReaderSvc
	invalidator     *countingInvalidator
	service         portssvc.ExchangeRateSvcFacade
}

func (suite *ExchangeRateServiceTestSuite) SetupTest() {
	suite.mockRateRepo = new(MockExchangeRateRepository)
	suite.mockCurrencySvc = new(MockCurrencyReaderSvc)
	suite.invalidator = new(countingInvalidator)
	suite.service = services.NewExchangeRateService(suite.mockRateRepo, suite.mockCurrencySvc, suite.invalidator)
}

// returnSaved makes SaveExchangeRate echo its argument back.
func returnSaved(args mock.Arguments) *domain.ExchangeRate {
	rate := args.Get(1).(domain.ExchangeRate)
	return &rate
}

// --- Test Cases ---

func (suite *ExchangeRateServiceTestSuite) TestCreateExchangeRate_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.CreateExchangeRateRequest{
		FromCurrencyCode: "USD",
		ToCurrencyCode:   "EUR",
		Rate:             decimal.RequireFromString("0.85"),
	}

	suite.mockCurrencySvc.On("GetCurrencyByCode", ctx, "USD").Return(usdConfig(), nil).Once()
	suite.mockCurrencySvc.On("GetCurrencyByCode", ctx, "EUR").Return(eurConfig(), nil).Once()

	var saved domain.ExchangeRate
	suite.mockRateRepo.On("SaveExchangeRate", ctx, mock.AnythingOfType("domain.ExchangeRate")).
		Run(func(args mock.Arguments) { saved = *returnSaved(args) }).
		Return(&domain.ExchangeRate{}, nil).Once()

	rate, err := suite.service.CreateExchangeRate(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(rate)
	suite.NotEmpty(saved.ExchangeRateID)
	suite.Equal("USD", saved.FromCurrencyCode)
	suite.Equal("EUR", saved.ToCurrencyCode)
	suite.True(saved.Rate.Equal(req.Rate))
	suite.True(saved.IsActive)
	suite.False(saved.IsBase)
	suite.Equal("manual", saved.Source)
	suite.Equal(creatorUserID, saved.CreatedBy)
	suite.Equal(1, suite.invalidator.Count())
	suite.mockCurrencySvc.AssertExpectations(suite.T())
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *ExchangeRateServiceTestSuite) TestCreateExchangeRate_IdentityIsBase() {
	ctx := context.Background()
	req := dto.CreateExchangeRateRequest{
		FromCurrencyCode: "USD",
		ToCurrencyCode:   "USD",
		Rate:             decimal.NewFromInt(1),
		IsActive:         boolPtr(false),
	}

	suite.mockCurrencySvc.On("GetCurrencyByCode", ctx, "USD").Return(usdConfig(), nil).Once()
	suite.mockRateRepo.On("SaveExchangeRate", ctx, mock.MatchedBy(func(r domain.ExchangeRate) bool {
		return r.IsBase && r.IsActive && r.Rate.Equal(decimal.NewFromInt(1))
	})).Return(&domain.ExchangeRate{IsBase: true, IsActive: true, Rate: decimal.NewFromInt(1)}, nil).Once()

	rate, err := suite.service.CreateExchangeRate(ctx, req, "admin")

	suite.Require().NoError(err)
	suite.True(rate.IsBase)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *ExchangeRateServiceTestSuite) TestCreateExchangeRate_IdentityMustBeOne() {
	req := dto.CreateExchangeRateRequest{
		FromCurrencyCode: "USD",
		ToCurrencyCode:   "USD",
		Rate:             decimal.RequireFromString("1.1"),
	}

	rate, err := suite.service.CreateExchangeRate(context.Background(), req, "admin")

	suite.Nil(rate)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRateRepo.AssertNotCalled(suite.T(), "SaveExchangeRate", mock.Anything, mock.Anything)
}

func (suite *ExchangeRateServiceTestSuite) TestCreateExchangeRate_NonPositiveRate() {
	for _, raw := range []string{"0", "-0.5"} {
		req := dto.CreateExchangeRateRequest{
			FromCurrencyCode: "USD",
			ToCurrencyCode:   "EUR",
			Rate:             decimal.RequireFromString(raw),
		}

		rate, err := suite.service.CreateExchangeRate(context.Background(), req, "admin")

		suite.Nil(rate)
		suite.ErrorIs(err, apperrors.ErrValidation, raw)
	}
	suite.mockRateRepo.AssertNotCalled(suite.T(), "SaveExchangeRate", mock.Anything, mock.Anything)
}

func (suite *ExchangeRateServiceTestSuite) TestCreateExchangeRate_UnknownCurrency() {
	ctx := context.Background()
	req := dto.CreateExchangeRateRequest{
		FromCurrencyCode: "USD",
		ToCurrencyCode:   "XYZ",
		Rate:             decimal.NewFromInt(2),
	}

	suite.mockCurrencySvc.On("GetCurrencyByCode", ctx, "USD").Return(usdConfig(), nil).Once()
	suite.mockCurrencySvc.On("GetCurrencyByCode", ctx, "XYZ").Return(nil, apperrors.NewNotFoundError("currency XYZ not found")).Once()

	rate, err := suite.service.CreateExchangeRate(ctx, req, "admin")

	suite.Nil(rate)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "XYZ")
	suite.Equal(0, suite.invalidator.Count())
}

func (suite *ExchangeRateServiceTestSuite) TestCreateExchangeRate_SaveError() {
	ctx := context.Background()
	req := dto.CreateExchangeRateRequest{FromCurrencyCode: "USD", ToCurrencyCode: "EUR", Rate: decimal.NewFromInt(1)}

	suite.mockCurrencySvc.On("GetCurrencyByCode", ctx, mock.Anything).Return(usdConfig(), nil)
	suite.mockRateRepo.On("SaveExchangeRate", ctx, mock.Anything).Return(nil, assert.AnError).Once()

	rate, err := suite.service.CreateExchangeRate(ctx, req, "admin")

	suite.Nil(rate)
	suite.ErrorIs(err, assert.AnError)
	suite.Equal(0, suite.invalidator.Count())
}

func (suite *ExchangeRateServiceTestSuite) TestGetExchangeRate_Direct() {
	ctx := context.Background()
	expected := &domain.ExchangeRate{FromCurrencyCode: "USD", ToCurrencyCode: "EUR", Rate: decimal.RequireFromString("0.85"), IsActive: true}

	suite.mockRateRepo.On("FindExchangeRate", ctx, "USD", "EUR").Return(expected, nil).Once()

	rate, err := suite.service.GetExchangeRate(ctx, "usd", "eur")

	suite.Require().NoError(err)
	suite.Equal(expected, rate)
}

func (suite *ExchangeRateServiceTestSuite) TestGetExchangeRate_Inverse() {
	ctx := context.Background()
	stored := &domain.ExchangeRate{FromCurrencyCode: "EUR", ToCurrencyCode: "USD", Rate: decimal.RequireFromString("1.25"), IsActive: true}

	suite.mockRateRepo.On("FindExchangeRate", ctx, "USD", "EUR").Return(nil, apperrors.NewNotFoundError("rate not found")).Once()
	suite.mockRateRepo.On("FindExchangeRate", ctx, "EUR", "USD").Return(stored, nil).Once()

	rate, err := suite.service.GetExchangeRate(ctx, "USD", "EUR")

	suite.Require().NoError(err)
	suite.Equal("USD", rate.FromCurrencyCode)
	suite.Equal("EUR", rate.ToCurrencyCode)
	suite.True(rate.Rate.Equal(decimal.RequireFromString("0.8")), rate.Rate.String())
	suite.Equal("EUR", stored.FromCurrencyCode, "stored rate must not be modified")
}

func (suite *ExchangeRateServiceTestSuite) TestGetExchangeRate_Identity() {
	rate, err := suite.service.GetExchangeRate(context.Background(), "JPY", "jpy")

	suite.Require().NoError(err)
	suite.True(rate.IsBase)
	suite.True(rate.Rate.Equal(decimal.NewFromInt(1)))
	suite.mockRateRepo.AssertNotCalled(suite.T(), "FindExchangeRate", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ExchangeRateServiceTestSuite) TestGetExchangeRate_NotFound() {
	ctx := context.Background()
	suite.mockRateRepo.On("FindExchangeRate", ctx, mock.Anything, mock.Anything).Return(nil, apperrors.NewNotFoundError("rate not found")).Twice()

	rate, err := suite.service.GetExchangeRate(ctx, "USD", "JPY")

	suite.Nil(rate)
	suite.ErrorIs(err, apperrors.ErrRateNotFound)
}

func (suite *ExchangeRateServiceTestSuite) TestGetExchangeRate_InvalidCodes() {
	rate, err := suite.service.GetExchangeRate(context.Background(), "US", "EUR")

	suite.Nil(rate)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ExchangeRateServiceTestSuite) TestListExchangeRates() {
	ctx := context.Background()
	suite.mockRateRepo.On("ListExchangeRates", ctx, true).Return([]domain.ExchangeRate(nil), nil).Once()

	rates, err := suite.service.ListExchangeRates(ctx, true)

	suite.Require().NoError(err)
	suite.NotNil(rates)
	suite.Empty(rates)
}

func (suite *ExchangeRateServiceTestSuite) TestDeactivateExchangeRate_Success() {
	ctx := context.Background()
	id := uuid.NewString()
	suite.mockRateRepo.On("FindExchangeRateByID", ctx, id).Return(&domain.ExchangeRate{ExchangeRateID: id, FromCurrencyCode: "USD", ToCurrencyCode: "EUR"}, nil).Once()
	suite.mockRateRepo.On("DeactivateExchangeRate", ctx, id, "admin").Return(nil).Once()

	err := suite.service.DeactivateExchangeRate(ctx, id, "admin")

	suite.Require().NoError(err)
	suite.Equal(1, suite.invalidator.Count())
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *ExchangeRateServiceTestSuite) TestDeactivateExchangeRate_IdentityRejected() {
	ctx := context.Background()
	id := uuid.NewString()
	suite.mockRateRepo.On("FindExchangeRateByID", ctx, id).Return(&domain.ExchangeRate{ExchangeRateID: id, FromCurrencyCode: "USD", ToCurrencyCode: "USD"}, nil).Once()

	err := suite.service.DeactivateExchangeRate(ctx, id, "admin")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRateRepo.AssertNotCalled(suite.T(), "DeactivateExchangeRate", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ExchangeRateServiceTestSuite) TestDeactivateExchangeRate_InvalidID() {
	err := suite.service.DeactivateExchangeRate(context.Background(), "not-a-uuid", "admin")

	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- Run Suite ---
func TestExchangeRateService(t *testing.T) {
	suite.Run(t, new(ExchangeRateServiceTestSuite))
}
