package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/storefront_currency/internal/apperrors"
	portsrepo "github.com/SscSPs/storefront_currency/internal/core/ports/repositories"
	"github.com/SscSPs/storefront_currency/internal/utils/pricing"
)

// SnapshotLoader produces the pricing snapshot a conversion or formatting call works on.
type SnapshotLoader interface {
	Load(ctx context.Context) (*pricing.Snapshot, error)
}

// SnapshotInvalidator is told when admin writes make the current snapshot stale.
type SnapshotInvalidator interface {
	Invalidate()
}

type noopInvalidator struct{}

func (noopInvalidator) Invalidate() {}

// repoSnapshotLoader reads a fresh snapshot from the repositories on every call.
type repoSnapshotLoader struct {
	BaseService
	currencyRepo portsrepo.CurrencyReader
	rateRepo     portsrepo.ExchangeRateReader
	businessRepo portsrepo.BusinessConfigRepositoryFacade
	businessID   string
}

// NewRepoSnapshotLoader creates a SnapshotLoader backed by the repositories.
func NewRepoSnapshotLoader(
	currencyRepo portsrepo.CurrencyReader,
	rateRepo portsrepo.ExchangeRateReader,
	businessRepo portsrepo.BusinessConfigRepositoryFacade,
	businessID string,
) SnapshotLoader {
	return &repoSnapshotLoader{
		currencyRepo: currencyRepo,
		rateRepo:     rateRepo,
		businessRepo: businessRepo,
		businessID:   businessID,
	}
}

func (l *repoSnapshotLoader) Load(ctx context.Context) (*pricing.Snapshot, error) {
	// Inactive currencies are kept: default detection counts every record.
	currencies, err := l.currencyRepo.ListCurrencies(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to load currencies for snapshot: %w", err)
	}

	rates, err := l.rateRepo.ListExchangeRates(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to load exchange rates for snapshot: %w", err)
	}

	var baseCurrency string
	business, err := l.businessRepo.FindBusinessConfig(ctx, l.businessID)
	switch {
	case err == nil:
		baseCurrency = business.BaseCurrency
	case errors.Is(err, apperrors.ErrNotFound):
		l.LogWarn(ctx, "No base currency configured, only direct rates can be used",
			slog.String("business_id", l.businessID))
	default:
		return nil, fmt.Errorf("failed to load business config for snapshot: %w", err)
	}

	return pricing.NewSnapshot(baseCurrency, currencies, rates), nil
}

// CachingSnapshotLoader decorates a SnapshotLoader and reuses its last snapshot for ttl.
// It is safe for concurrent use. Invalidate drops the cached snapshot immediately.
type CachingSnapshotLoader struct {
	next SnapshotLoader
	ttl  time.Duration
	now  func() time.Time

	mu         sync.RWMutex
	snapshot   *pricing.Snapshot
	loadedAt   time.Time
	generation uint64
}

// NewCachingSnapshotLoader returns a caching SnapshotLoader
func NewCachingSnapshotLoader(next SnapshotLoader, ttl time.Duration) *CachingSnapshotLoader {
	return &CachingSnapshotLoader{
		next: next,
		ttl:  ttl,
		now:  time.Now,
	}
}

func (c *CachingSnapshotLoader) Load(ctx context.Context) (*pricing.Snapshot, error) {
	c.mu.RLock()
	snapshot, loadedAt, generation := c.snapshot, c.loadedAt, c.generation
	c.mu.RUnlock()

	if snapshot != nil && c.now().Sub(loadedAt) < c.ttl {
		return snapshot, nil
	}

	// Concurrent misses may each hit the repositories; the last one to finish wins.
	fresh, err := c.next.Load(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	// Don't store a snapshot that was read before an Invalidate.
	if c.generation == generation {
		c.snapshot = fresh
		c.loadedAt = c.now()
	}
	return fresh, nil
}

func (c *CachingSnapshotLoader) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snapshot = nil
	c.generation++
}
