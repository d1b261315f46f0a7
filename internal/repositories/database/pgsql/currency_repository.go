package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/storefront_currency/internal/apperrors"
	"github.com/SscSPs/storefront_currency/internal/core/domain"
	portsrepo "github.com/SscSPs/storefront_currency/internal/core/ports/repositories"
	"github.com/SscSPs/storefront_currency/internal/models"
	"github.com/SscSPs/storefront_currency/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// singleDefaultIndex is the partial unique index allowing one is_default row.
const singleDefaultIndex = "currency_configs_single_default"

const currencyColumns = `currency_code, symbol, name, exchange_rate, is_active, is_default, decimal_precision,
	symbol_position, created_at, created_by, last_updated_at, last_updated_by`

type PgxCurrencyRepository struct {
	BaseRepository
}

// newPgxCurrencyRepository creates a new repository for currency data.
func newPgxCurrencyRepository(pool *pgxpool.Pool) portsrepo.CurrencyRepositoryWithTx {
	return &PgxCurrencyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyRepositoryWithTx = (*PgxCurrencyRepository)(nil)

// SaveCurrency inserts a new currency configuration.
func (r *PgxCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.CurrencyConfig) error {
	m := mapping.ToModelCurrency(currency)

	query := `INSERT INTO currency_configs (` + currencyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);`

	_, err := r.Pool.Exec(ctx, query,
		m.CurrencyCode, m.Symbol, m.Name, m.ExchangeRate, m.IsActive, m.IsDefault, m.DecimalPrecision,
		m.SymbolPosition, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return mapCurrencyWriteError(err, m.CurrencyCode)
	}
	return nil
}

// UpdateCurrency overwrites the mutable columns of an existing currency.
func (r *PgxCurrencyRepository) UpdateCurrency(ctx context.Context, currency domain.CurrencyConfig) error {
	m := mapping.ToModelCurrency(currency)

	query := `
		UPDATE currency_configs SET
			symbol = $2, name = $3, exchange_rate = $4, is_active = $5, is_default = $6,
			decimal_precision = $7, symbol_position = $8, last_updated_at = $9, last_updated_by = $10
		WHERE currency_code = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.CurrencyCode, m.Symbol, m.Name, m.ExchangeRate, m.IsActive, m.IsDefault,
		m.DecimalPrecision, m.SymbolPosition, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return mapCurrencyWriteError(err, m.CurrencyCode)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("currency " + m.CurrencyCode + " not found")
	}
	return nil
}

// SetDefaultCurrency clears the previous default and flags currencyCode, in one transaction.
func (r *PgxCurrencyRepository) SetDefaultCurrency(ctx context.Context, currencyCode string, updatedBy string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	var code string
	err = tx.QueryRow(ctx, `SELECT currency_code FROM currency_configs WHERE currency_code = $1 FOR UPDATE;`, currencyCode).Scan(&code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFoundError("currency " + currencyCode + " not found")
		}
		return fmt.Errorf("failed to lock currency %s: %w", currencyCode, err)
	}

	now := time.Now()
	_, err = tx.Exec(ctx, `
		UPDATE currency_configs SET is_default = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE is_default AND currency_code <> $1;`, currencyCode, now, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to clear previous default currency: %w", err)
	}

	_, err = tx.Exec(ctx, `
		UPDATE currency_configs SET is_default = TRUE, last_updated_at = $2, last_updated_by = $3
		WHERE currency_code = $1;`, currencyCode, now, updatedBy)
	if err != nil {
		return mapCurrencyWriteError(err, currencyCode)
	}

	return r.Commit(ctx, tx)
}

// FindCurrencyByCode retrieves a currency by its 3-letter code.
func (r *PgxCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.CurrencyConfig, error) {
	query := `SELECT ` + currencyColumns + ` FROM currency_configs WHERE currency_code = $1;`

	rows, err := r.Pool.Query(ctx, query, currencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to find currency by code %s: %w", currencyCode, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.CurrencyConfig])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("currency " + currencyCode + " not found")
		}
		return nil, fmt.Errorf("failed to scan currency %s: %w", currencyCode, err)
	}

	d := mapping.ToDomainCurrency(m)
	return &d, nil
}

// ListCurrencies retrieves all currencies ordered by code.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context, activeOnly bool) ([]domain.CurrencyConfig, error) {
	query := `SELECT ` + currencyColumns + ` FROM currency_configs WHERE ($1::boolean = FALSE OR is_active) ORDER BY currency_code;`

	rows, err := r.Pool.Query(ctx, query, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to query currencies: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.CurrencyConfig])
	if err != nil {
		return nil, fmt.Errorf("failed to scan currencies: %w", err)
	}
	return mapping.ToDomainCurrencySlice(ms), nil
}

func mapCurrencyWriteError(err error, currencyCode string) error {
	if constraint, ok := uniqueViolation(err); ok {
		if constraint == singleDefaultIndex {
			return fmt.Errorf("%w: another currency is already the default", apperrors.ErrConfiguration)
		}
		return fmt.Errorf("%w: currency %s", apperrors.ErrDuplicate, currencyCode)
	}
	return fmt.Errorf("failed to save currency %s: %w", currencyCode, err)
}
