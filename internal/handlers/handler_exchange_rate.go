package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	portssvc "github.com/SscSPs/storefront_currency/internal/core/ports/services"
	"github.com/SscSPs/storefront_currency/internal/dto"
	"github.com/SscSPs/storefront_currency/internal/middleware"
	"github.com/gin-gonic/gin"
)

// exchangeRateHandler handles HTTP requests related to exchange rates.
type exchangeRateHandler struct {
	exchangeRateService portssvc.ExchangeRateSvcFacade
}

// newExchangeRateHandler creates a new exchangeRateHandler.
func newExchangeRateHandler(ers portssvc.ExchangeRateSvcFacade) *exchangeRateHandler {
	return &exchangeRateHandler{
		exchangeRateService: ers,
	}
}

// registerExchangeRateRoutes registers routes related to exchange rates.
func registerExchangeRateRoutes(public, admin *gin.RouterGroup, exchangeRateService portssvc.ExchangeRateSvcFacade) {
	h := newExchangeRateHandler(exchangeRateService)

	exchangeRates := public.Group("/exchange-rates")
	{
		exchangeRates.GET("", h.listExchangeRates)
		exchangeRates.GET("/:from/:to", h.getExchangeRate)
	}

	adminRates := admin.Group("/exchange-rates")
	{
		adminRates.POST("", h.createExchangeRate)
		adminRates.POST("/:id/deactivate", h.deactivateExchangeRate)
	}
}

// createExchangeRate godoc
// @Summary Create or replace an exchange rate
// @Description Stores the rate for a currency pair, replacing the rate already stored for that pair
// @Tags exchange rates
// @Accept  json
// @Produce  json
// @Param   rate body dto.CreateExchangeRateRequest true "Exchange Rate details"
// @Success 201 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create exchange rate"
// @Security BearerAuth
// @Router /exchange-rates [post]
func (h *exchangeRateHandler) createExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateExchangeRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	logger = logger.With(
		slog.String("creator_user_id", creatorUserID),
		slog.String("from_currency", req.FromCurrencyCode),
		slog.String("to_currency", req.ToCurrencyCode),
	)
	logger.Info("Received request to create exchange rate")

	rate, err := h.exchangeRateService.CreateExchangeRate(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondWithServiceError(c, logger, err, true, "Failed to create exchange rate")
		return
	}

	logger.Info("Exchange rate created successfully", slog.String("exchange_rate_id", rate.ExchangeRateID))
	c.JSON(http.StatusCreated, dto.ToExchangeRateResponse(rate))
}

// getExchangeRate godoc
// @Summary Get an exchange rate
// @Description Retrieves the active rate for a pair; when only the opposite pair is stored its inverse is returned
// @Tags exchange rates
// @Produce  json
// @Param   from path string true "From Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Param   to path string true "To Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid currency codes"
// @Failure 404 {object} map[string]string "Exchange rate not found"
// @Failure 500 {object} map[string]string "Failed to retrieve exchange rate"
// @Router /exchange-rates/{from}/{to} [get]
func (h *exchangeRateHandler) getExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fromCode := c.Param("from")
	toCode := c.Param("to")

	logger = logger.With(slog.String("from_currency", fromCode), slog.String("to_currency", toCode))

	rate, err := h.exchangeRateService.GetExchangeRate(c.Request.Context(), fromCode, toCode)
	if err != nil {
		respondWithServiceError(c, logger, err, false, "Failed to retrieve exchange rate")
		return
	}

	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate))
}

// listExchangeRates godoc
// @Summary List exchange rates
// @Description Retrieves stored exchange rates
// @Tags exchange rates
// @Produce  json
// @Param   active query bool false "Only active rates"
// @Success 200 {array} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 500 {object} map[string]string "Failed to list exchange rates"
// @Router /exchange-rates [get]
func (h *exchangeRateHandler) listExchangeRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	activeOnly, err := strconv.ParseBool(c.DefaultQuery("active", "false"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'active' must be a boolean"})
		return
	}

	rates, err := h.exchangeRateService.ListExchangeRates(c.Request.Context(), activeOnly)
	if err != nil {
		respondWithServiceError(c, logger, err, false, "Failed to list exchange rates")
		return
	}

	c.JSON(http.StatusOK, dto.ToListExchangeRateResponse(rates))
}

// deactivateExchangeRate godoc
// @Summary Deactivate an exchange rate
// @Description Stops a stored rate from being used for conversions. Identity rates cannot be deactivated.
// @Tags exchange rates
// @Param   id path string true "Exchange Rate ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid ID or identity rate"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Exchange rate not found"
// @Failure 500 {object} map[string]string "Failed to deactivate exchange rate"
// @Security BearerAuth
// @Router /exchange-rates/{id}/deactivate [post]
func (h *exchangeRateHandler) deactivateExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	rateID := c.Param("id")

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("exchange_rate_id", rateID), slog.String("user_id", userID))
	if err := h.exchangeRateService.DeactivateExchangeRate(c.Request.Context(), rateID, userID); err != nil {
		respondWithServiceError(c, logger, err, true, "Failed to deactivate exchange rate")
		return
	}

	logger.Info("Exchange rate deactivated")
	c.Status(http.StatusNoContent)
}
