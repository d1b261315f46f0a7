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

// currencyHandler handles HTTP requests related to currency configuration.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
	}
}

// registerCurrencyRoutes registers public reads on public and admin writes on admin.
func registerCurrencyRoutes(public, admin *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(currencyService)

	currencies := public.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
		currencies.GET("/:code", h.getCurrencyByCode)
	}

	adminCurrencies := admin.Group("/currencies")
	{
		adminCurrencies.POST("", h.createCurrency)
		adminCurrencies.PATCH("/:code", h.updateCurrency)
		adminCurrencies.PUT("/:code/default", h.setDefaultCurrency)
	}
}

// createCurrency godoc
// @Summary Create a new currency
// @Description Configures a new currency with its display settings and rate relative to the base currency
// @Tags currencies
// @Accept  json
// @Produce  json
// @Param   currency body dto.CreateCurrencyRequest true "Currency details"
// @Success 201 {object} dto.CurrencyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Currency code exists or a default currency is already set"
// @Failure 500 {object} map[string]string "Failed to create currency"
// @Security BearerAuth
// @Router /currencies [post]
func (h *currencyHandler) createCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCurrency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("creator_user_id", creatorUserID))
	logger.Info("Received request to create currency", slog.String("currency_code", req.CurrencyCode))

	createdCurrency, err := h.currencyService.CreateCurrency(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondWithServiceError(c, logger, err, true, "Failed to create currency")
		return
	}

	logger.Info("Currency created successfully", slog.String("currency_code", createdCurrency.CurrencyCode))
	c.JSON(http.StatusCreated, dto.ToCurrencyResponse(createdCurrency))
}

// updateCurrency godoc
// @Summary Update a currency
// @Description Changes the display settings, rate or flags of a configured currency
// @Tags currencies
// @Accept  json
// @Produce  json
// @Param   code path string true "Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Param   currency body dto.UpdateCurrencyRequest true "Fields to change"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Currency not found"
// @Failure 409 {object} map[string]string "A default currency is already set"
// @Failure 500 {object} map[string]string "Failed to update currency"
// @Security BearerAuth
// @Router /currencies/{code} [patch]
func (h *currencyHandler) updateCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	currencyCode := c.Param("code")

	var req dto.UpdateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateCurrency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("currency_code", currencyCode), slog.String("user_id", userID))
	updated, err := h.currencyService.UpdateCurrency(c.Request.Context(), currencyCode, req, userID)
	if err != nil {
		respondWithServiceError(c, logger, err, true, "Failed to update currency")
		return
	}

	logger.Info("Currency updated successfully")
	c.JSON(http.StatusOK, dto.ToCurrencyResponse(updated))
}

// setDefaultCurrency godoc
// @Summary Make a currency the default
// @Description Moves the default flag to this currency, clearing it on the previous default
// @Tags currencies
// @Produce  json
// @Param   code path string true "Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Success 200 {object} dto.CurrencyResponse
// @Failure 400 {object} map[string]string "Currency is inactive"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Currency not found"
// @Failure 500 {object} map[string]string "Failed to set default currency"
// @Security BearerAuth
// @Router /currencies/{code}/default [put]
func (h *currencyHandler) setDefaultCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	currencyCode := c.Param("code")

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("currency_code", currencyCode), slog.String("user_id", userID))
	currency, err := h.currencyService.SetDefaultCurrency(c.Request.Context(), currencyCode, userID)
	if err != nil {
		respondWithServiceError(c, logger, err, true, "Failed to set default currency")
		return
	}

	logger.Info("Default currency changed")
	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}

// getCurrencyByCode godoc
// @Summary Get a currency by code
// @Description Retrieves details for a specific currency by its 3-letter code
// @Tags currencies
// @Produce  json
// @Param   code path string true "Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Success 200 {object} dto.CurrencyResponse
// @Failure 400 {object} map[string]string "Invalid currency code"
// @Failure 404 {object} map[string]string "Currency not found"
// @Failure 500 {object} map[string]string "Failed to retrieve currency"
// @Router /currencies/{code} [get]
func (h *currencyHandler) getCurrencyByCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	currencyCode := c.Param("code")

	if len(currencyCode) != 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Currency code must be 3 letters"})
		return
	}

	logger = logger.With(slog.String("currency_code", currencyCode))
	currency, err := h.currencyService.GetCurrencyByCode(c.Request.Context(), currencyCode)
	if err != nil {
		respondWithServiceError(c, logger, err, false, "Failed to retrieve currency")
		return
	}

	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}

// listCurrencies godoc
// @Summary List currencies
// @Description Retrieves configured currencies; the storefront currency switcher passes active=true
// @Tags currencies
// @Produce  json
// @Param   active query bool false "Only active currencies"
// @Success 200 {array} dto.CurrencyResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 500 {object} map[string]string "Failed to list currencies"
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	activeOnly, err := strconv.ParseBool(c.DefaultQuery("active", "false"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'active' must be a boolean"})
		return
	}

	currencies, err := h.currencyService.ListCurrencies(c.Request.Context(), activeOnly)
	if err != nil {
		respondWithServiceError(c, logger, err, false, "Failed to list currencies")
		return
	}

	logger.Info("Currencies listed successfully", slog.Int("count", len(currencies)))
	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currencies))
}
