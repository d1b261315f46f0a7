package repositories

import (
	"context"

	"github.com/SscSPs/storefront_currency/internal/core/domain"
)

// BusinessConfigRepositoryFacade reads and writes the per-business base currency record.
type BusinessConfigRepositoryFacade interface {
	// FindBusinessConfig returns apperrors.ErrNotFound when the business has no record yet.
	FindBusinessConfig(ctx context.Context, businessID string) (*domain.BusinessConfig, error)

	// SaveBusinessConfig upserts the record and the base identity rate in one transaction.
	SaveBusinessConfig(ctx context.Context, cfg domain.BusinessConfig) error
}
