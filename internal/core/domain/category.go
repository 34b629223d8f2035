package domain

// CategoryType distinguishes income categories from expense categories.
type CategoryType string

const (
	Income  CategoryType = "income"
	Expense CategoryType = "expense"
)

// Category groups transactions for reporting. Its type decides whether the
// amounts of its transactions count as income or expense.
type Category struct {
	CategoryID string       `json:"categoryID"`
	Name       string       `json:"name"`
	Type       CategoryType `json:"type"`
	Icon       string       `json:"icon"`
	Color      string       `json:"color"`
	AuditFields
}
