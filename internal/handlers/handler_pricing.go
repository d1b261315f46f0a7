package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/storefront_currency/internal/core/ports/services"
	"github.com/SscSPs/storefront_currency/internal/dto"
	"github.com/SscSPs/storefront_currency/internal/middleware"
	"github.com/SscSPs/storefront_currency/internal/utils/pricing"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// pricingHandler serves conversion and display formatting to the storefront.
type pricingHandler struct {
	pricingService portssvc.PricingSvc
}

func newPricingHandler(ps portssvc.PricingSvc) *pricingHandler {
	return &pricingHandler{pricingService: ps}
}

func registerPricingRoutes(rg *gin.RouterGroup, pricingService portssvc.PricingSvc) {
	h := newPricingHandler(pricingService)

	p := rg.Group("/pricing")
	{
		p.POST("/convert", h.convert)
		p.POST("/convert/batch", h.convertBatch)
		p.POST("/format", h.format)
		p.GET("/default-currency", h.getDefaultCurrency)
	}
}

// convert godoc
// @Summary Convert an amount
// @Description Converts a non-negative amount between two currencies, optionally with the display string of the target currency
// @Tags pricing
// @Accept  json
// @Produce  json
// @Param   request body dto.ConvertRequest true "Amount and currency pair"
// @Success 200 {object} dto.ConvertResponse
// @Failure 400 {object} map[string]string "Invalid amount or request"
// @Failure 404 {object} map[string]string "No exchange rate or unknown currency"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} map[string]string "Failed to convert amount"
// @Router /pricing/convert [post]
func (h *pricingHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Convert", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	amount, err := pricing.ParseAmount(req.Amount)
	if err != nil {
		respondWithServiceError(c, logger, err, false, "Failed to convert amount")
		return
	}

	ctx := c.Request.Context()
	var (
		converted decimal.Decimal
		formatted string
	)
	if req.Format {
		converted, formatted, err = h.pricingService.ConvertAndFormat(ctx, amount, req.From, req.To)
	} else {
		converted, err = h.pricingService.Convert(ctx, amount, req.From, req.To)
	}
	if err != nil {
		respondWithServiceError(c, logger, err, false, "Failed to convert amount")
		return
	}

	c.JSON(http.StatusOK, dto.ConvertResponse{
		Amount:    amount.String(),
		From:      pricing.NormalizeCode(req.From),
		To:        pricing.NormalizeCode(req.To),
		Converted: converted.String(),
		Formatted: formatted,
	})
}

// convertBatch godoc
// @Summary Convert several amounts
// @Description Converts order lines with one currency pair against a single configuration snapshot
// @Tags pricing
// @Accept  json
// @Produce  json
// @Param   request body dto.ConvertBatchRequest true "Amounts and currency pair"
// @Success 200 {object} dto.ConvertBatchResponse
// @Failure 400 {object} map[string]string "Invalid amount or request"
// @Failure 404 {object} map[string]string "No exchange rate"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} map[string]string "Failed to convert amounts"
// @Router /pricing/convert/batch [post]
func (h *pricingHandler) convertBatch(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ConvertBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ConvertBatch", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	amounts := make([]decimal.Decimal, len(req.Amounts))
	for i, raw := range req.Amounts {
		amount, err := pricing.ParseAmount(raw)
		if err != nil {
			respondWithServiceError(c, logger, fmt.Errorf("amount #%d: %w", i, err), false, "Failed to convert amounts")
			return
		}
		amounts[i] = amount
	}

	converted, err := h.pricingService.ConvertMany(c.Request.Context(), amounts, req.From, req.To)
	if err != nil {
		respondWithServiceError(c, logger, err, false, "Failed to convert amounts")
		return
	}

	out := make([]string, len(converted))
	for i, amount := range converted {
		out[i] = amount.String()
	}

	c.JSON(http.StatusOK, dto.ConvertBatchResponse{
		From:      pricing.NormalizeCode(req.From),
		To:        pricing.NormalizeCode(req.To),
		Converted: out,
	})
}

// format godoc
// @Summary Format an amount
// @Description Renders an amount with the symbol, precision and grouping of an active currency
// @Tags pricing
// @Accept  json
// @Produce  json
// @Param   request body dto.FormatRequest true "Amount and currency"
// @Success 200 {object} dto.FormatResponse
// @Failure 400 {object} map[string]string "Invalid amount or request"
// @Failure 404 {object} map[string]string "Unknown or inactive currency"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} map[string]string "Failed to format amount"
// @Router /pricing/format [post]
func (h *pricingHandler) format(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.FormatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Format", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	amount, err := pricing.ParseSignedAmount(req.Amount)
	if err != nil {
		respondWithServiceError(c, logger, err, false, "Failed to format amount")
		return
	}

	formatted, err := h.pricingService.Format(c.Request.Context(), amount, req.CurrencyCode)
	if err != nil {
		respondWithServiceError(c, logger, err, false, "Failed to format amount")
		return
	}

	c.JSON(http.StatusOK, dto.FormatResponse{
		Amount:       amount.String(),
		CurrencyCode: pricing.NormalizeCode(req.CurrencyCode),
		Formatted:    formatted,
	})
}

// getDefaultCurrency godoc
// @Summary Get the default currency
// @Description Returns the currency shown to shoppers before they pick one
// @Tags pricing
// @Produce  json
// @Success 200 {object} dto.CurrencyResponse
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} map[string]string "Default currency misconfigured"
// @Router /pricing/default-currency [get]
func (h *pricingHandler) getDefaultCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currency, err := h.pricingService.GetDefaultCurrency(c.Request.Context())
	if err != nil {
		respondWithServiceError(c, logger, err, false, "Default currency misconfigured")
		return
	}

	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}
