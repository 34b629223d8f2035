package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single income or expense entry. Amount is always positive;
// the category's type decides the direction. The Category* fields are
// populated from the category join on reads.
type Transaction struct {
	TransactionID   string          `json:"transactionID"`
	CategoryID      string          `json:"categoryID"`
	Amount          decimal.Decimal `json:"amount"`
	CurrencyCode    string          `json:"currencyCode"`
	Description     string          `json:"description"`
	TransactionDate time.Time       `json:"transactionDate"` // date precision
	Member          string          `json:"member"`          // empty means unassigned

	CategoryName  string       `json:"categoryName"`
	CategoryType  CategoryType `json:"categoryType"`
	CategoryIcon  string       `json:"categoryIcon"`
	CategoryColor string       `json:"categoryColor"`

	AuditFields
}

// TransactionFilter narrows transaction listings.
type TransactionFilter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	Type       CategoryType // empty means both
	CategoryID string
	Member     string
	Limit      int
	Offset     int
}
