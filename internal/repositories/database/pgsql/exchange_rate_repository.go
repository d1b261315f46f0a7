package pgsql

import (
	"context"
	"errors"
	"strings"

	"github.com/SscSPs/storefront_currency/internal/apperrors"
	"github.com/SscSPs/storefront_currency/internal/core/domain"
	portsrepo "github.com/SscSPs/storefront_currency/internal/core/ports/repositories"
	"github.com/SscSPs/storefront_currency/internal/models"
	"github.com/SscSPs/storefront_currency/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const exchangeRateColumns = `exchange_rate_id, from_currency_code, to_currency_code, rate, is_base, is_active, source,
	created_at, created_by, last_updated_at, last_updated_by`

// PgxExchangeRateRepository implements portsrepo.ExchangeRateRepositoryWithTx using pgxpool.
type PgxExchangeRateRepository struct {
	BaseRepository
}

// newPgxExchangeRateRepository creates a new PgxExchangeRateRepository.
func newPgxExchangeRateRepository(db *pgxpool.Pool) portsrepo.ExchangeRateRepositoryWithTx {
	return &PgxExchangeRateRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.ExchangeRateRepositoryWithTx = (*PgxExchangeRateRepository)(nil)

// SaveExchangeRate inserts a rate or replaces the one stored for the same pair.
// The ID and creation audit fields of an existing row are kept.
func (r *PgxExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) (*domain.ExchangeRate, error) {
	m := mapping.ToModelExchangeRate(rate)
	m.FromCurrencyCode = strings.ToUpper(m.FromCurrencyCode)
	m.ToCurrencyCode = strings.ToUpper(m.ToCurrencyCode)

	query := `
		INSERT INTO exchange_rates (` + exchangeRateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (from_currency_code, to_currency_code) DO UPDATE SET
			rate = EXCLUDED.rate,
			is_base = EXCLUDED.is_base,
			is_active = EXCLUDED.is_active,
			source = EXCLUDED.source,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by
		RETURNING ` + exchangeRateColumns + `;`

	rows, err := r.Pool.Query(ctx, query,
		m.ExchangeRateID, m.FromCurrencyCode, m.ToCurrencyCode, m.Rate, m.IsBase, m.IsActive, m.Source,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to save exchange rate", err)
	}
	saved, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.ExchangeRate])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to save exchange rate", err)
	}

	d := mapping.ToDomainExchangeRate(saved)
	return &d, nil
}

// FindExchangeRate retrieves the active rate stored for exactly this pair.
func (r *PgxExchangeRateRepository) FindExchangeRate(ctx context.Context, fromCurrencyCode, toCurrencyCode string) (*domain.ExchangeRate, error) {
	from := strings.ToUpper(fromCurrencyCode)
	to := strings.ToUpper(toCurrencyCode)

	query := `SELECT ` + exchangeRateColumns + ` FROM exchange_rates
		WHERE from_currency_code = $1 AND to_currency_code = $2 AND is_active;`

	return r.findOne(ctx, "no exchange rate found for currency pair "+from+" to "+to, query, from, to)
}

// FindExchangeRateByID retrieves an exchange rate by its ID.
func (r *PgxExchangeRateRepository) FindExchangeRateByID(ctx context.Context, rateID string) (*domain.ExchangeRate, error) {
	query := `SELECT ` + exchangeRateColumns + ` FROM exchange_rates WHERE exchange_rate_id = $1;`
	return r.findOne(ctx, "exchange rate with ID "+rateID+" not found", query, rateID)
}

func (r *PgxExchangeRateRepository) findOne(ctx context.Context, notFoundMsg, query string, args ...any) (*domain.ExchangeRate, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to find exchange rate", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.ExchangeRate])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(notFoundMsg)
		}
		return nil, apperrors.NewAppError(500, "failed to scan exchange rate", err)
	}

	d := mapping.ToDomainExchangeRate(m)
	return &d, nil
}

// ListExchangeRates retrieves all stored rates ordered by pair.
func (r *PgxExchangeRateRepository) ListExchangeRates(ctx context.Context, activeOnly bool) ([]domain.ExchangeRate, error) {
	query := `SELECT ` + exchangeRateColumns + ` FROM exchange_rates
		WHERE ($1::boolean = FALSE OR is_active)
		ORDER BY from_currency_code, to_currency_code;`

	rows, err := r.Pool.Query(ctx, query, activeOnly)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list exchange rates", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.ExchangeRate])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan exchange rates", err)
	}
	return mapping.ToDomainExchangeRateSlice(ms), nil
}

// DeactivateExchangeRate clears the active flag of a non-identity rate.
func (r *PgxExchangeRateRepository) DeactivateExchangeRate(ctx context.Context, rateID string, updatedBy string) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE exchange_rates SET is_active = FALSE, last_updated_at = NOW(), last_updated_by = $2
		WHERE exchange_rate_id = $1 AND from_currency_code <> to_currency_code;`, rateID, updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to deactivate exchange rate", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("exchange rate with ID " + rateID + " not found")
	}
	return nil
}
