package pgsql

import (
	"context"

	"github.com/famstack/family_account_app/internal/apperrors"
	"github.com/famstack/family_account_app/internal/core/domain"
	portsrepo "github.com/famstack/family_account_app/internal/core/ports/repositories"
	"github.com/famstack/family_account_app/internal/models"
	"github.com/famstack/family_account_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxExchangeRepository implements the currency exchange repository ports using pgxpool.
type PgxExchangeRepository struct {
	BaseRepository
}

// NewPgxExchangeRepository creates a new PgxExchangeRepository.
func NewPgxExchangeRepository(db *pgxpool.Pool) *PgxExchangeRepository {
	return &PgxExchangeRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.ExchangeRepositoryFacade = (*PgxExchangeRepository)(nil)

const exchangeSelectColumns = `
	exchange_id, from_currency, to_currency, from_amount, to_amount,
	exchange_rate, exchange_date, member, description, created_at
`

func (r *PgxExchangeRepository) queryExchanges(ctx context.Context, query string, args ...any) ([]domain.CurrencyExchange, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query exchanges", err)
	}
	defer rows.Close()

	var modelExchanges []models.CurrencyExchange
	for rows.Next() {
		m, err := scanExchangeRow(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan exchange", err)
		}
		modelExchanges = append(modelExchanges, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate exchanges", err)
	}
	return mapping.ToDomainCurrencyExchanges(modelExchanges), nil
}

func scanExchangeRow(rows pgx.Rows) (models.CurrencyExchange, error) {
	var m models.CurrencyExchange
	err := rows.Scan(
		&m.ExchangeID, &m.FromCurrency, &m.ToCurrency, &m.FromAmount, &m.ToAmount,
		&m.ExchangeRate, &m.ExchangeDate, &m.Member, &m.Description, &m.CreatedAt,
	)
	return m, err
}

// ListExchanges retrieves the most recent exchange records, newest first.
func (r *PgxExchangeRepository) ListExchanges(ctx context.Context, limit int) ([]domain.CurrencyExchange, error) {
	query := `
		SELECT ` + exchangeSelectColumns + `
		FROM currency_exchanges
		ORDER BY exchange_date DESC, created_at DESC
		LIMIT $1;
	`
	return r.queryExchanges(ctx, query, limit)
}

// ListAllExchanges retrieves every exchange record.
func (r *PgxExchangeRepository) ListAllExchanges(ctx context.Context) ([]domain.CurrencyExchange, error) {
	query := `
		SELECT ` + exchangeSelectColumns + `
		FROM currency_exchanges
		ORDER BY exchange_date;
	`
	return r.queryExchanges(ctx, query)
}

// SaveExchange persists a new exchange record.
func (r *PgxExchangeRepository) SaveExchange(ctx context.Context, exchange domain.CurrencyExchange) error {
	m := mapping.ToModelCurrencyExchange(exchange)

	query := `
		INSERT INTO currency_exchanges (
			exchange_id, from_currency, to_currency, from_amount, to_amount,
			exchange_rate, exchange_date, member, description, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`

	if _, err := r.Pool.Exec(ctx, query,
		m.ExchangeID, m.FromCurrency, m.ToCurrency, m.FromAmount, m.ToAmount,
		m.ExchangeRate, m.ExchangeDate, m.Member, m.Description, m.CreatedAt,
	); err != nil {
		return apperrors.NewAppError(500, "failed to save exchange", err)
	}
	return nil
}
