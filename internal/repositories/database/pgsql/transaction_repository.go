package pgsql

import (
	"context"
	"errors"
	"fmt"
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

const transactionSelectColumns = `
	t.transaction_id, t.category_id, t.amount, t.currency_code, t.description,
	t.transaction_date, t.member, t.created_at, t.last_updated_at,
	c.name AS category_name, c.type AS category_type, c.icon AS category_icon, c.color AS category_color
`

// PgxTransactionRepository implements the transaction repository ports using pgxpool.
type PgxTransactionRepository struct {
	BaseRepository
}

// NewPgxTransactionRepository creates a new PgxTransactionRepository.
func NewPgxTransactionRepository(db *pgxpool.Pool) *PgxTransactionRepository {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func scanTransactionRow(rows pgx.Rows) (models.Transaction, error) {
	var m models.Transaction
	err := rows.Scan(
		&m.TransactionID, &m.CategoryID, &m.Amount, &m.CurrencyCode, &m.Description,
		&m.TransactionDate, &m.Member, &m.CreatedAt, &m.LastUpdatedAt,
		&m.CategoryName, &m.CategoryType, &m.CategoryIcon, &m.CategoryColor,
	)
	return m, err
}

func (r *PgxTransactionRepository) queryTransactions(ctx context.Context, query string, args ...any) ([]domain.Transaction, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transactions", err)
	}
	defer rows.Close()

	var modelTxns []models.Transaction
	for rows.Next() {
		m, err := scanTransactionRow(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan transaction", err)
		}
		modelTxns = append(modelTxns, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate transactions", err)
	}
	return mapping.ToDomainTransactions(modelTxns), nil
}

// FindTransactionByID retrieves a transaction with its category details joined.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT ` + transactionSelectColumns + `
		FROM transactions t
		JOIN categories c ON t.category_id = c.category_id
		WHERE t.transaction_id = $1;
	`

	var m models.Transaction
	err := r.Pool.QueryRow(ctx, query, transactionID).Scan(
		&m.TransactionID, &m.CategoryID, &m.Amount, &m.CurrencyCode, &m.Description,
		&m.TransactionDate, &m.Member, &m.CreatedAt, &m.LastUpdatedAt,
		&m.CategoryName, &m.CategoryType, &m.CategoryIcon, &m.CategoryColor,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("transaction not found: " + transactionID)
		}
		return nil, apperrors.NewAppError(500, "failed to find transaction", err)
	}

	domainTxn := mapping.ToDomainTransaction(m)
	return &domainTxn, nil
}

// ListTransactions retrieves transactions matching the filter, newest first.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	var conditions []string
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.StartDate != nil {
		conditions = append(conditions, "t.transaction_date >= "+arg(*filter.StartDate))
	}
	if filter.EndDate != nil {
		conditions = append(conditions, "t.transaction_date <= "+arg(*filter.EndDate))
	}
	if filter.Type != "" {
		conditions = append(conditions, "c.type = "+arg(string(filter.Type)))
	}
	if filter.CategoryID != "" {
		conditions = append(conditions, "t.category_id = "+arg(filter.CategoryID))
	}
	if filter.Member != "" {
		conditions = append(conditions, "t.member = "+arg(filter.Member))
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	query := `
		SELECT ` + transactionSelectColumns + `
		FROM transactions t
		JOIN categories c ON t.category_id = c.category_id
		` + where + `
		ORDER BY t.transaction_date DESC, t.created_at DESC
		LIMIT ` + arg(filter.Limit) + ` OFFSET ` + arg(filter.Offset) + `;`

	return r.queryTransactions(ctx, query, args...)
}

// ListTransactionsInRange retrieves every transaction dated within [start, end].
func (r *PgxTransactionRepository) ListTransactionsInRange(ctx context.Context, start, end time.Time) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionSelectColumns + `
		FROM transactions t
		JOIN categories c ON t.category_id = c.category_id
		WHERE t.transaction_date >= $1 AND t.transaction_date <= $2
		ORDER BY t.transaction_date;
	`
	return r.queryTransactions(ctx, query, start, end)
}

// ListAllTransactions retrieves the whole ledger.
func (r *PgxTransactionRepository) ListAllTransactions(ctx context.Context) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionSelectColumns + `
		FROM transactions t
		JOIN categories c ON t.category_id = c.category_id
		ORDER BY t.transaction_date;
	`
	return r.queryTransactions(ctx, query)
}

// SaveTransaction persists a new transaction.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)

	query := `
		INSERT INTO transactions (
			transaction_id, category_id, amount, currency_code, description,
			transaction_date, member, created_at, last_updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`

	if _, err := r.Pool.Exec(ctx, query,
		m.TransactionID, m.CategoryID, m.Amount, m.CurrencyCode, m.Description,
		m.TransactionDate, m.Member, m.CreatedAt, m.LastUpdatedAt,
	); err != nil {
		return apperrors.NewAppError(500, "failed to save transaction", err)
	}
	return nil
}

// UpdateTransaction updates an existing transaction.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)

	query := `
		UPDATE transactions
		SET category_id = $1, amount = $2, currency_code = $3, description = $4,
			transaction_date = $5, member = $6, last_updated_at = $7
		WHERE transaction_id = $8;
	`

	tag, err := r.Pool.Exec(ctx, query,
		m.CategoryID, m.Amount, m.CurrencyCode, m.Description,
		m.TransactionDate, m.Member, m.LastUpdatedAt, m.TransactionID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update transaction", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("transaction not found: " + m.TransactionID)
	}
	return nil
}

// DeleteTransaction removes a transaction.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete transaction", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("transaction not found: " + transactionID)
	}
	return nil
}
