package repositories

import (
	"context"
	"time"

	"github.com/famstack/family_account_app/internal/core/domain"
)

// TransactionReader defines read operations for ledger transactions
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction with its category details joined.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves transactions matching the filter, newest first.
	ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error)

	// ListTransactionsInRange retrieves every transaction with
	// transaction_date in [start, end], no pagination.
	ListTransactionsInRange(ctx context.Context, start, end time.Time) ([]domain.Transaction, error)

	// ListAllTransactions retrieves the whole ledger, no pagination.
	ListAllTransactions(ctx context.Context) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for ledger transactions
type TransactionWriter interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransaction updates an existing transaction.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes a transaction.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
