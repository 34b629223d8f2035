package pgsql

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/famstack/family_account_app/internal/apperrors"
	"github.com/famstack/family_account_app/internal/core/domain"
	portsrepo "github.com/famstack/family_account_app/internal/core/ports/repositories"
	"github.com/famstack/family_account_app/internal/models"
	"github.com/famstack/family_account_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxRateRepository implements the rate repository ports using pgxpool.
// Current rates live in exchange_rates (one row per currency) and the
// history in exchange_rate_history (one row per currency and date).
type PgxRateRepository struct {
	BaseRepository
}

// NewPgxRateRepository creates a new PgxRateRepository.
func NewPgxRateRepository(db *pgxpool.Pool) *PgxRateRepository {
	return &PgxRateRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.RateRepositoryWithTx = (*PgxRateRepository)(nil)

// FindRate retrieves the current rate for a currency.
func (r *PgxRateRepository) FindRate(ctx context.Context, currencyCode string) (*domain.ExchangeRate, error) {
	query := `
		SELECT currency_code, rate, updated_at
		FROM exchange_rates
		WHERE currency_code = $1;
	`

	var modelRate models.ExchangeRate
	err := r.Pool.QueryRow(ctx, query, strings.ToUpper(currencyCode)).Scan(
		&modelRate.CurrencyCode, &modelRate.Rate, &modelRate.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("no rate found for currency " + strings.ToUpper(currencyCode))
		}
		return nil, apperrors.NewAppError(500, "failed to find exchange rate", err)
	}

	domainRate := mapping.ToDomainExchangeRate(modelRate)
	return &domainRate, nil
}

// ListRates retrieves the current rate of every known currency.
func (r *PgxRateRepository) ListRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	query := `
		SELECT currency_code, rate, updated_at
		FROM exchange_rates
		ORDER BY currency_code;
	`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list exchange rates", err)
	}
	defer rows.Close()

	var domainRates []domain.ExchangeRate
	for rows.Next() {
		var modelRate models.ExchangeRate
		if err := rows.Scan(&modelRate.CurrencyCode, &modelRate.Rate, &modelRate.UpdatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan exchange rate", err)
		}
		domainRates = append(domainRates, mapping.ToDomainExchangeRate(modelRate))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate exchange rates", err)
	}
	return domainRates, nil
}

// FindHistoryPointOnOrBefore retrieves the most recent history point for a
// currency effective on or before the given date.
func (r *PgxRateRepository) FindHistoryPointOnOrBefore(ctx context.Context, currencyCode string, date time.Time) (*domain.RateHistoryPoint, error) {
	query := `
		SELECT currency_code, rate, effective_date
		FROM exchange_rate_history
		WHERE currency_code = $1 AND effective_date <= $2
		ORDER BY effective_date DESC
		LIMIT 1;
	`

	var modelPoint models.RateHistoryPoint
	err := r.Pool.QueryRow(ctx, query, strings.ToUpper(currencyCode), date).Scan(
		&modelPoint.CurrencyCode, &modelPoint.Rate, &modelPoint.EffectiveDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("no rate history for currency " + strings.ToUpper(currencyCode))
		}
		return nil, apperrors.NewAppError(500, "failed to find rate history point", err)
	}

	domainPoint := mapping.ToDomainRateHistoryPoint(modelPoint)
	return &domainPoint, nil
}

// ListHistoryPointsUpTo retrieves every history point effective on or before end.
func (r *PgxRateRepository) ListHistoryPointsUpTo(ctx context.Context, end time.Time) ([]domain.RateHistoryPoint, error) {
	query := `
		SELECT currency_code, rate, effective_date
		FROM exchange_rate_history
		WHERE effective_date <= $1
		ORDER BY currency_code, effective_date;
	`

	rows, err := r.Pool.Query(ctx, query, end)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list rate history", err)
	}
	defer rows.Close()

	var modelPoints []models.RateHistoryPoint
	for rows.Next() {
		var modelPoint models.RateHistoryPoint
		if err := rows.Scan(&modelPoint.CurrencyCode, &modelPoint.Rate, &modelPoint.EffectiveDate); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan rate history point", err)
		}
		modelPoints = append(modelPoints, modelPoint)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate rate history", err)
	}
	return mapping.ToDomainRateHistoryPoints(modelPoints), nil
}

// UpsertRateWithHistory replaces the current-rate row of a currency and the
// history point for (currency, effective_date) in one transaction, so the
// current table and the history never disagree after a rate update.
func (r *PgxRateRepository) UpsertRateWithHistory(ctx context.Context, rate domain.ExchangeRate, point domain.RateHistoryPoint) error {
	modelRate := mapping.ToModelExchangeRate(rate)
	modelRate.CurrencyCode = strings.ToUpper(modelRate.CurrencyCode)
	modelPoint := mapping.ToModelRateHistoryPoint(point)
	modelPoint.CurrencyCode = strings.ToUpper(modelPoint.CurrencyCode)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	rateQuery := `
		INSERT INTO exchange_rates (currency_code, rate, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (currency_code)
		DO UPDATE SET rate = EXCLUDED.rate, updated_at = EXCLUDED.updated_at;
	`
	if _, err := tx.Exec(ctx, rateQuery, modelRate.CurrencyCode, modelRate.Rate, modelRate.UpdatedAt); err != nil {
		return apperrors.NewAppError(500, "failed to upsert exchange rate", err)
	}

	historyQuery := `
		INSERT INTO exchange_rate_history (currency_code, rate, effective_date)
		VALUES ($1, $2, $3)
		ON CONFLICT (currency_code, effective_date)
		DO UPDATE SET rate = EXCLUDED.rate;
	`
	if _, err := tx.Exec(ctx, historyQuery, modelPoint.CurrencyCode, modelPoint.Rate, modelPoint.EffectiveDate); err != nil {
		return apperrors.NewAppError(500, "failed to upsert rate history point", err)
	}

	return r.Commit(ctx, tx)
}
