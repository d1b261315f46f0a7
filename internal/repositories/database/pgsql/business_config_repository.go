package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/storefront_currency/internal/apperrors"
	"github.com/SscSPs/storefront_currency/internal/core/domain"
	portsrepo "github.com/SscSPs/storefront_currency/internal/core/ports/repositories"
	"github.com/SscSPs/storefront_currency/internal/models"
	"github.com/SscSPs/storefront_currency/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxBusinessConfigRepository stores the per-business base currency.
type PgxBusinessConfigRepository struct {
	BaseRepository
}

func newPgxBusinessConfigRepository(pool *pgxpool.Pool) portsrepo.BusinessConfigRepositoryFacade {
	return &PgxBusinessConfigRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.BusinessConfigRepositoryFacade = (*PgxBusinessConfigRepository)(nil)

// FindBusinessConfig retrieves the configuration of one business.
func (r *PgxBusinessConfigRepository) FindBusinessConfig(ctx context.Context, businessID string) (*domain.BusinessConfig, error) {
	query := `
		SELECT business_id, base_currency_code, created_at, created_by, last_updated_at, last_updated_by
		FROM business_configs
		WHERE business_id = $1;
	`
	rows, err := r.Pool.Query(ctx, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to find business config %s: %w", businessID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.BusinessConfig])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("business config " + businessID + " not found")
		}
		return nil, fmt.Errorf("failed to scan business config %s: %w", businessID, err)
	}

	d := mapping.ToDomainBusinessConfig(m)
	return &d, nil
}

// SaveBusinessConfig upserts the business record and makes sure the base currency has
// its (base, base) identity rate, in one transaction.
func (r *PgxBusinessConfigRepository) SaveBusinessConfig(ctx context.Context, cfg domain.BusinessConfig) error {
	m := mapping.ToModelBusinessConfig(cfg)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO business_configs (business_id, base_currency_code, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (business_id) DO UPDATE SET
			base_currency_code = EXCLUDED.base_currency_code,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;`,
		m.BusinessID, m.BaseCurrency, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save business config %s: %w", m.BusinessID, err)
	}

	identity := domain.IdentityRate(m.BaseCurrency)
	_, err = tx.Exec(ctx, `
		INSERT INTO exchange_rates (exchange_rate_id, from_currency_code, to_currency_code, rate, is_base, is_active, source,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $2, $3, TRUE, TRUE, $4, $5, $6, $5, $6)
		ON CONFLICT (from_currency_code, to_currency_code) DO UPDATE SET
			rate = EXCLUDED.rate, is_base = TRUE, is_active = TRUE,
			last_updated_at = EXCLUDED.last_updated_at, last_updated_by = EXCLUDED.last_updated_by;`,
		uuid.NewString(), m.BaseCurrency, identity.Rate, identity.Source, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save identity rate for %s: %w", m.BaseCurrency, err)
	}

	return r.Commit(ctx, tx)
}
