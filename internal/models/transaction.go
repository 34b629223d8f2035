package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a row of the transactions table. The Category* fields are
// only filled by queries that join categories.
type Transaction struct {
	TransactionID   string          `db:"transaction_id"`
	CategoryID      string          `db:"category_id"`
	Amount          decimal.Decimal `db:"amount"`
	CurrencyCode    string          `db:"currency_code"`
	Description     string          `db:"description"`
	TransactionDate time.Time       `db:"transaction_date"`
	Member          string          `db:"member"`

	CategoryName  string `db:"category_name"`
	CategoryType  string `db:"category_type"`
	CategoryIcon  string `db:"category_icon"`
	CategoryColor string `db:"category_color"`

	AuditFields
}
