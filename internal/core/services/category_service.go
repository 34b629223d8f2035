package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/famstack/family_account_app/internal/apperrors"
	"github.com/famstack/family_account_app/internal/core/domain"
	portsrepo "github.com/famstack/family_account_app/internal/core/ports/repositories"
	portssvc "github.com/famstack/family_account_app/internal/core/ports/services"
	"github.com/famstack/family_account_app/internal/dto"
	"github.com/google/uuid"
)

// Defaults matching the seeded categories.
const (
	defaultCategoryIcon  = "📁"
	defaultCategoryColor = "#6366f1"
)

// categoryService implements the CategorySvcFacade interface.
type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates a new category service.
func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: categoryRepo}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

// CreateCategory persists a new category.
func (s *categoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error) {
	now := time.Now()
	category := domain.Category{
		CategoryID: uuid.NewString(),
		Name:       req.Name,
		Type:       domain.CategoryType(req.Type),
		Icon:       req.Icon,
		Color:      req.Color,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if category.Icon == "" {
		category.Icon = defaultCategoryIcon
	}
	if category.Color == "" {
		category.Color = defaultCategoryColor
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to save category: %w", err)
	}

	s.LogInfo(ctx, "Category created",
		slog.String("category_id", category.CategoryID),
		slog.String("name", category.Name),
		slog.String("type", string(category.Type)),
	)
	return &category, nil
}

// GetCategoryByID retrieves a category by its ID.
func (s *categoryService) GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	return s.categoryRepo.FindCategoryByID(ctx, categoryID)
}

// ListCategories lists categories, optionally filtered by type.
func (s *categoryService) ListCategories(ctx context.Context, categoryType domain.CategoryType) ([]domain.Category, error) {
	categories, err := s.categoryRepo.ListCategories(ctx, categoryType)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// UpdateCategory updates an existing category.
func (s *categoryService) UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	existing, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	existing.Name = req.Name
	existing.Type = domain.CategoryType(req.Type)
	if req.Icon != "" {
		existing.Icon = req.Icon
	}
	if req.Color != "" {
		existing.Color = req.Color
	}
	existing.LastUpdatedAt = time.Now()

	if err := s.categoryRepo.UpdateCategory(ctx, *existing); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	s.LogInfo(ctx, "Category updated", slog.String("category_id", categoryID))
	return existing, nil
}

// DeleteCategory removes a category, rejecting the delete while transactions
// still reference it. References are never cascaded.
func (s *categoryService) DeleteCategory(ctx context.Context, categoryID string) error {
	if _, err := s.categoryRepo.FindCategoryByID(ctx, categoryID); err != nil {
		return err
	}

	count, err := s.categoryRepo.CountTransactionsForCategory(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("failed to count transactions for category: %w", err)
	}
	if count > 0 {
		return apperrors.NewConflictError(fmt.Sprintf("category is used by %d transaction(s)", count))
	}

	if err := s.categoryRepo.DeleteCategory(ctx, categoryID); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	s.LogInfo(ctx, "Category deleted", slog.String("category_id", categoryID))
	return nil
}
