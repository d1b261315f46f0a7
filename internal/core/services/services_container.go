package services

import (
	portsrepo "github.com/SscSPs/storefront_currency/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/storefront_currency/internal/core/ports/services"
	"github.com/SscSPs/storefront_currency/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	var (
		loader      SnapshotLoader      = NewRepoSnapshotLoader(repos.CurrencyRepo, repos.ExchangeRateRepo, repos.BusinessConfigRepo, cfg.BusinessID)
		invalidator SnapshotInvalidator = noopInvalidator{}
	)
	// Admin writes invalidate the cache so they are visible to the next conversion.
	if cfg.SnapshotCacheTTL > 0 {
		cached := NewCachingSnapshotLoader(loader, cfg.SnapshotCacheTTL)
		loader, invalidator = cached, cached
	}

	container := &portssvc.ServiceContainer{}
	container.Currency = NewCurrencyService(repos.CurrencyRepo, invalidator)
	container.ExchangeRate = NewExchangeRateService(repos.ExchangeRateRepo, container.Currency, invalidator)
	container.BaseCurrency = NewBaseCurrencyService(repos.BusinessConfigRepo, container.Currency, cfg.BusinessID, invalidator)
	container.Pricing = NewPricingService(loader)

	return container
}
