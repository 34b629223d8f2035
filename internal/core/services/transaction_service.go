package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/famstack/family_account_app/internal/apperrors"
	"github.com/famstack/family_account_app/internal/core/domain"
	portsrepo "github.com/famstack/family_account_app/internal/core/ports/repositories"
	portssvc "github.com/famstack/family_account_app/internal/core/ports/services"
	"github.com/famstack/family_account_app/internal/dto"
	"github.com/famstack/family_account_app/internal/utils/fx"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const defaultTransactionListLimit = 100

// transactionService implements the TransactionSvcFacade interface.
type transactionService struct {
	BaseService
	txnRepo      portsrepo.TransactionRepositoryFacade
	categoryRepo portsrepo.CategoryReader
	baseCurrency string
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(
	txnRepo portsrepo.TransactionRepositoryFacade,
	categoryRepo portsrepo.CategoryReader,
	baseCurrency string,
) portssvc.TransactionSvcFacade {
	return &transactionService{
		txnRepo:      txnRepo,
		categoryRepo: categoryRepo,
		baseCurrency: baseCurrency,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// CreateTransaction validates and persists a new transaction.
func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	txn, err := s.transactionFromRequest(ctx, req.CategoryID, req.Amount, req.CurrencyCode, req.Description, req.TransactionDate, req.Member)
	if err != nil {
		return nil, err
	}
	txn.TransactionID = uuid.NewString()
	now := time.Now()
	txn.CreatedAt = now
	txn.LastUpdatedAt = now

	if err := s.txnRepo.SaveTransaction(ctx, *txn); err != nil {
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("category_id", txn.CategoryID),
		slog.String("amount", txn.Amount.String()),
		slog.String("currency", txn.CurrencyCode),
	)
	// Re-read to pick up the joined category details.
	return s.txnRepo.FindTransactionByID(ctx, txn.TransactionID)
}

// GetTransactionByID retrieves one transaction with category details.
func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	return txn, nil
}

// ListTransactions lists transactions matching the request filters.
func (s *transactionService) ListTransactions(ctx context.Context, req dto.ListTransactionsRequest) ([]domain.Transaction, error) {
	filter := domain.TransactionFilter{
		Type:       domain.CategoryType(req.Type),
		CategoryID: req.CategoryID,
		Member:     req.Member,
		Limit:      req.Limit,
		Offset:     req.Offset,
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultTransactionListLimit
	}
	if req.StartDate != "" {
		start, err := dto.ParseDate(req.StartDate)
		if err != nil {
			return nil, apperrors.NewValidationError("start date must be YYYY-MM-DD")
		}
		filter.StartDate = &start
	}
	if req.EndDate != "" {
		end, err := dto.ParseDate(req.EndDate)
		if err != nil {
			return nil, apperrors.NewValidationError("end date must be YYYY-MM-DD")
		}
		filter.EndDate = &end
	}

	txns, err := s.txnRepo.ListTransactions(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}

// UpdateTransaction validates and updates an existing transaction.
func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	existing, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	txn, err := s.transactionFromRequest(ctx, req.CategoryID, req.Amount, req.CurrencyCode, req.Description, req.TransactionDate, req.Member)
	if err != nil {
		return nil, err
	}
	txn.TransactionID = existing.TransactionID
	txn.CreatedAt = existing.CreatedAt
	txn.LastUpdatedAt = time.Now()

	if err := s.txnRepo.UpdateTransaction(ctx, *txn); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction updated", slog.String("transaction_id", transactionID))
	return s.txnRepo.FindTransactionByID(ctx, transactionID)
}

// DeleteTransaction removes a transaction.
func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	if _, err := s.txnRepo.FindTransactionByID(ctx, transactionID); err != nil {
		return err
	}
	if err := s.txnRepo.DeleteTransaction(ctx, transactionID); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}

// transactionFromRequest validates shared create/update fields and builds the
// domain transaction. The referenced category must exist; the currency
// defaults to the base currency.
func (s *transactionService) transactionFromRequest(ctx context.Context, categoryID string, amount decimal.Decimal, currencyCode, description, transactionDate, member string) (*domain.Transaction, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, apperrors.NewValidationError("amount must be positive")
	}

	date, err := dto.ParseDate(transactionDate)
	if err != nil {
		return nil, apperrors.NewValidationError("transaction date must be YYYY-MM-DD")
	}

	currency := strings.ToUpper(currencyCode)
	if currency == "" {
		currency = s.baseCurrency
	}

	if _, err := s.categoryRepo.FindCategoryByID(ctx, categoryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationError(fmt.Sprintf("category %q not found", categoryID))
		}
		return nil, fmt.Errorf("failed to validate category %q: %w", categoryID, err)
	}

	return &domain.Transaction{
		CategoryID:      categoryID,
		Amount:          amount,
		CurrencyCode:    currency,
		Description:     description,
		TransactionDate: fx.DateOnly(date),
		Member:          member,
	}, nil
}
