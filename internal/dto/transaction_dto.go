package dto

import (
	"github.com/famstack/family_account_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the structure for creating a transaction.
// CurrencyCode defaults to the base currency when absent.
type CreateTransactionRequest struct {
	CategoryID      string          `json:"categoryID" binding:"required"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	CurrencyCode    string          `json:"currency" binding:"omitempty,len=3,alpha"`
	Description     string          `json:"description,omitempty"`
	TransactionDate string          `json:"transactionDate" binding:"required,datetime=2006-01-02"`
	Member          string          `json:"member,omitempty"`
}

// UpdateTransactionRequest defines the structure for updating a transaction.
type UpdateTransactionRequest struct {
	CategoryID      string          `json:"categoryID" binding:"required"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	CurrencyCode    string          `json:"currency" binding:"omitempty,len=3,alpha"`
	Description     string          `json:"description,omitempty"`
	TransactionDate string          `json:"transactionDate" binding:"required,datetime=2006-01-02"`
	Member          string          `json:"member,omitempty"`
}

// ListTransactionsRequest defines the query parameters for transaction listings.
type ListTransactionsRequest struct {
	StartDate  string `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate    string `form:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Type       string `form:"type" binding:"omitempty,oneof=income expense"`
	CategoryID string `form:"category_id"`
	Member     string `form:"member"`
	Limit      int    `form:"limit" binding:"omitempty,min=1,max=1000"`
	Offset     int    `form:"offset" binding:"omitempty,min=0"`
}

// TransactionResponse is a transaction with its category details joined.
type TransactionResponse struct {
	TransactionID   string          `json:"transactionID"`
	CategoryID      string          `json:"categoryID"`
	Amount          decimal.Decimal `json:"amount"`
	CurrencyCode    string          `json:"currency"`
	Description     string          `json:"description"`
	TransactionDate string          `json:"transactionDate"`
	Member          string          `json:"member,omitempty"`
	CategoryName    string          `json:"categoryName"`
	CategoryType    string          `json:"categoryType"`
	CategoryIcon    string          `json:"categoryIcon"`
	CategoryColor   string          `json:"categoryColor"`
	CreatedAt       string          `json:"createdAt"`
	LastUpdatedAt   string          `json:"lastUpdatedAt"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   t.TransactionID,
		CategoryID:      t.CategoryID,
		Amount:          t.Amount.Round(2),
		CurrencyCode:    t.CurrencyCode,
		Description:     t.Description,
		TransactionDate: FormatDate(t.TransactionDate),
		Member:          t.Member,
		CategoryName:    t.CategoryName,
		CategoryType:    string(t.CategoryType),
		CategoryIcon:    t.CategoryIcon,
		CategoryColor:   t.CategoryColor,
		CreatedAt:       t.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		LastUpdatedAt:   t.LastUpdatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

// ToListTransactionResponse converts a slice of transactions to response DTOs.
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(txns))
	for i := range txns {
		out[i] = ToTransactionResponse(&txns[i])
	}
	return out
}
