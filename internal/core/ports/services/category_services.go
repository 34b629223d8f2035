package services

import (
	"context"

	"github.com/famstack/family_account_app/internal/core/domain"
	"github.com/famstack/family_account_app/internal/dto"
)

// CategorySvcFacade defines CRUD operations for categories.
type CategorySvcFacade interface {
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error)
	GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)
	ListCategories(ctx context.Context, categoryType domain.CategoryType) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error)

	// DeleteCategory removes a category. It fails with a conflict error while
	// any transaction still references the category.
	DeleteCategory(ctx context.Context, categoryID string) error
}
