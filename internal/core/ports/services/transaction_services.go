package services

import (
	"context"

	"github.com/famstack/family_account_app/internal/core/domain"
	"github.com/famstack/family_account_app/internal/dto"
)

// TransactionSvcFacade defines CRUD operations for ledger transactions.
type TransactionSvcFacade interface {
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, req dto.ListTransactionsRequest) ([]domain.Transaction, error)
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, transactionID string) error
}
