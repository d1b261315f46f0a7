package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/storefront_currency/internal/core/ports/services"
	"github.com/SscSPs/storefront_currency/internal/dto"
	"github.com/SscSPs/storefront_currency/internal/middleware"
	"github.com/gin-gonic/gin"
)

type baseCurrencyHandler struct {
	baseCurrencyService portssvc.BaseCurrencySvc
}

func registerBaseCurrencyRoutes(public, admin *gin.RouterGroup, baseCurrencyService portssvc.BaseCurrencySvc) {
	h := &baseCurrencyHandler{baseCurrencyService: baseCurrencyService}

	public.GET("/base-currency", h.getBaseCurrency)
	admin.PUT("/base-currency", h.setBaseCurrency)
}

// getBaseCurrency godoc
// @Summary Get the base currency
// @Description Returns the currency all exchange rates are anchored to
// @Tags base currency
// @Produce  json
// @Success 200 {object} dto.BaseCurrencyResponse
// @Failure 404 {object} map[string]string "No base currency configured"
// @Failure 500 {object} map[string]string "Failed to retrieve base currency"
// @Router /base-currency [get]
func (h *baseCurrencyHandler) getBaseCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	cfg, err := h.baseCurrencyService.GetBaseCurrency(c.Request.Context())
	if err != nil {
		respondWithServiceError(c, logger, err, false, "Failed to retrieve base currency")
		return
	}

	c.JSON(http.StatusOK, dto.ToBaseCurrencyResponse(cfg))
}

// setBaseCurrency godoc
// @Summary Set the base currency
// @Description Anchors all conversions to a configured, active currency. Stored rates are not rebased.
// @Tags base currency
// @Accept  json
// @Produce  json
// @Param   request body dto.SetBaseCurrencyRequest true "Base currency"
// @Success 200 {object} dto.BaseCurrencyResponse
// @Failure 400 {object} map[string]string "Unknown or inactive currency"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to set base currency"
// @Security BearerAuth
// @Router /base-currency [put]
func (h *baseCurrencyHandler) setBaseCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SetBaseCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetBaseCurrency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	cfg, err := h.baseCurrencyService.SetBaseCurrency(c.Request.Context(), req.CurrencyCode, userID)
	if err != nil {
		respondWithServiceError(c, logger, err, true, "Failed to set base currency")
		return
	}

	logger.Info("Base currency set", slog.String("currency_code", cfg.BaseCurrency), slog.String("user_id", userID))
	c.JSON(http.StatusOK, dto.ToBaseCurrencyResponse(cfg))
}
