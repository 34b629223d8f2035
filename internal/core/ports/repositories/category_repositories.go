package repositories

import (
	"context"

	"github.com/famstack/family_account_app/internal/core/domain"
)

// CategoryReader defines read operations for categories
type CategoryReader interface {
	// FindCategoryByID retrieves a category by its ID.
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)

	// ListCategories retrieves categories, optionally filtered by type
	// (empty categoryType means all).
	ListCategories(ctx context.Context, categoryType domain.CategoryType) ([]domain.Category, error)

	// CountTransactionsForCategory returns how many transactions reference the category.
	CountTransactionsForCategory(ctx context.Context, categoryID string) (int64, error)
}

// CategoryWriter defines write operations for categories
type CategoryWriter interface {
	// SaveCategory persists a new category.
	SaveCategory(ctx context.Context, category domain.Category) error

	// UpdateCategory updates an existing category.
	UpdateCategory(ctx context.Context, category domain.Category) error

	// DeleteCategory removes a category. Callers must reject the delete while
	// transactions still reference it.
	DeleteCategory(ctx context.Context, categoryID string) error
}

// CategoryRepositoryFacade combines all category-related repository interfaces
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}
