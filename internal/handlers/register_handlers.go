package handlers

import (
	"fmt"
	"net/http"

	"github.com/SscSPs/storefront_currency/cmd/docs"
	portssvc "github.com/SscSPs/storefront_currency/internal/core/ports/services"
	"github.com/SscSPs/storefront_currency/internal/dto"
	"github.com/SscSPs/storefront_currency/internal/middleware"
	"github.com/SscSPs/storefront_currency/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// pricingLimiter may be nil to disable rate limiting of the storefront routes.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	pricingLimiter *limiter.Limiter,
) error {
	if err := dto.RegisterValidators(); err != nil {
		return fmt.Errorf("failed to register request validators: %w", err)
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	setupAPIV1Routes(r, cfg, services, pricingLimiter)

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the /api/v1 group. Reads and pricing are public; writes need a bearer token.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
	pricingLimiter *limiter.Limiter,
) {
	public := r.Group("/api/v1")
	if pricingLimiter != nil {
		public.Use(middleware.RateLimit(pricingLimiter))
	}
	admin := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerCurrencyRoutes(public, admin, service.Currency)
	registerExchangeRateRoutes(public, admin, service.ExchangeRate)
	registerBaseCurrencyRoutes(public, admin, service.BaseCurrency)
	registerPricingRoutes(public, service.Pricing)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
