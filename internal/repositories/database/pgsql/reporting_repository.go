package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/famstack/family_account_app/internal/core/domain"
	portsrepo "github.com/famstack/family_account_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxReportingRepository implements the ReportingRepository interface.
// Reports sum amounts as recorded and leave currency conversion to callers.
type PgxReportingRepository struct {
	BaseRepository
}

// NewPgxReportingRepository creates a new reporting repository.
func NewPgxReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// GetMonthlyTotals aggregates transaction amounts per month and category type
// for one calendar year.
func (r *PgxReportingRepository) GetMonthlyTotals(ctx context.Context, year int) ([]portsrepo.MonthlyTotalRow, error) {
	query := `
		SELECT
			to_char(t.transaction_date, 'MM') AS month,
			c.type,
			SUM(t.amount) AS total
		FROM transactions t
		JOIN categories c ON t.category_id = c.category_id
		WHERE EXTRACT(YEAR FROM t.transaction_date) = $1
		GROUP BY month, c.type
		ORDER BY month;
	`

	rows, err := r.Pool.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("error querying monthly totals: %w", err)
	}
	defer rows.Close()

	var result []portsrepo.MonthlyTotalRow
	for rows.Next() {
		var row portsrepo.MonthlyTotalRow
		var categoryType string
		if err := rows.Scan(&row.Month, &categoryType, &row.Total); err != nil {
			return nil, fmt.Errorf("error scanning monthly total row: %w", err)
		}
		row.Type = domain.CategoryType(categoryType)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating monthly total rows: %w", err)
	}
	return result, nil
}

// GetCategoryTotals aggregates per category of the given type over a period,
// largest total first.
func (r *PgxReportingRepository) GetCategoryTotals(ctx context.Context, categoryType domain.CategoryType, start, end time.Time) ([]domain.CategoryTotalRow, error) {
	query := `
		SELECT
			c.category_id,
			c.name,
			c.icon,
			c.color,
			SUM(t.amount) AS total,
			COUNT(*) AS txn_count
		FROM transactions t
		JOIN categories c ON t.category_id = c.category_id
		WHERE c.type = $1
			AND t.transaction_date >= $2
			AND t.transaction_date <= $3
		GROUP BY c.category_id, c.name, c.icon, c.color
		ORDER BY total DESC;
	`

	rows, err := r.Pool.Query(ctx, query, string(categoryType), start, end)
	if err != nil {
		return nil, fmt.Errorf("error querying category totals: %w", err)
	}
	defer rows.Close()

	var result []domain.CategoryTotalRow
	for rows.Next() {
		var row domain.CategoryTotalRow
		if err := rows.Scan(&row.CategoryID, &row.Name, &row.Icon, &row.Color, &row.Total, &row.Count); err != nil {
			return nil, fmt.Errorf("error scanning category total row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category total rows: %w", err)
	}

	if len(result) == 0 {
		return []domain.CategoryTotalRow{}, nil
	}
	return result, nil
}

// GetMemberTotals aggregates per member and category type over a period.
// Transactions without a member land in the Unassigned bucket.
func (r *PgxReportingRepository) GetMemberTotals(ctx context.Context, start, end time.Time) ([]portsrepo.MemberTotalRow, error) {
	query := `
		SELECT
			COALESCE(NULLIF(t.member, ''), 'Unassigned') AS member,
			c.type,
			SUM(t.amount) AS total,
			COUNT(*) AS txn_count
		FROM transactions t
		JOIN categories c ON t.category_id = c.category_id
		WHERE t.transaction_date >= $1 AND t.transaction_date <= $2
		GROUP BY member, c.type;
	`

	rows, err := r.Pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("error querying member totals: %w", err)
	}
	defer rows.Close()

	var result []portsrepo.MemberTotalRow
	for rows.Next() {
		var row portsrepo.MemberTotalRow
		var categoryType string
		if err := rows.Scan(&row.Member, &categoryType, &row.Total, &row.Count); err != nil {
			return nil, fmt.Errorf("error scanning member total row: %w", err)
		}
		row.Type = domain.CategoryType(categoryType)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating member total rows: %w", err)
	}
	return result, nil
}

// GetDailyTotals aggregates per day and category type over a period.
func (r *PgxReportingRepository) GetDailyTotals(ctx context.Context, start, end time.Time) ([]portsrepo.DailyTotalRow, error) {
	query := `
		SELECT
			t.transaction_date,
			c.type,
			SUM(t.amount) AS total
		FROM transactions t
		JOIN categories c ON t.category_id = c.category_id
		WHERE t.transaction_date >= $1 AND t.transaction_date <= $2
		GROUP BY t.transaction_date, c.type
		ORDER BY t.transaction_date;
	`

	rows, err := r.Pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("error querying daily totals: %w", err)
	}
	defer rows.Close()

	var result []portsrepo.DailyTotalRow
	for rows.Next() {
		var row portsrepo.DailyTotalRow
		var categoryType string
		if err := rows.Scan(&row.Date, &categoryType, &row.Total); err != nil {
			return nil, fmt.Errorf("error scanning daily total row: %w", err)
		}
		row.Type = domain.CategoryType(categoryType)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating daily total rows: %w", err)
	}
	return result, nil
}
