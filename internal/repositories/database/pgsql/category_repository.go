package pgsql

import (
	"context"
	"errors"

	"github.com/famstack/family_account_app/internal/apperrors"
	"github.com/famstack/family_account_app/internal/core/domain"
	portsrepo "github.com/famstack/family_account_app/internal/core/ports/repositories"
	"github.com/famstack/family_account_app/internal/models"
	"github.com/famstack/family_account_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxCategoryRepository implements the category repository ports using pgxpool.
type PgxCategoryRepository struct {
	BaseRepository
}

// NewPgxCategoryRepository creates a new PgxCategoryRepository.
func NewPgxCategoryRepository(db *pgxpool.Pool) *PgxCategoryRepository {
	return &PgxCategoryRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

// FindCategoryByID retrieves a category by its ID.
func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	query := `
		SELECT category_id, name, type, icon, color, created_at, last_updated_at
		FROM categories
		WHERE category_id = $1;
	`

	var m models.Category
	err := r.Pool.QueryRow(ctx, query, categoryID).Scan(
		&m.CategoryID, &m.Name, &m.Type, &m.Icon, &m.Color, &m.CreatedAt, &m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("category not found: " + categoryID)
		}
		return nil, apperrors.NewAppError(500, "failed to find category", err)
	}

	domainCategory := mapping.ToDomainCategory(m)
	return &domainCategory, nil
}

// ListCategories retrieves categories, optionally filtered by type.
func (r *PgxCategoryRepository) ListCategories(ctx context.Context, categoryType domain.CategoryType) ([]domain.Category, error) {
	query := `
		SELECT category_id, name, type, icon, color, created_at, last_updated_at
		FROM categories
	`
	var args []any
	if categoryType != "" {
		query += ` WHERE type = $1`
		args = append(args, string(categoryType))
	}
	query += ` ORDER BY type, name;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list categories", err)
	}
	defer rows.Close()

	var modelCategories []models.Category
	for rows.Next() {
		var m models.Category
		if err := rows.Scan(&m.CategoryID, &m.Name, &m.Type, &m.Icon, &m.Color, &m.CreatedAt, &m.LastUpdatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan category", err)
		}
		modelCategories = append(modelCategories, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate categories", err)
	}
	return mapping.ToDomainCategories(modelCategories), nil
}

// CountTransactionsForCategory returns how many transactions reference the category.
func (r *PgxCategoryRepository) CountTransactionsForCategory(ctx context.Context, categoryID string) (int64, error) {
	var count int64
	err := r.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM transactions WHERE category_id = $1;`, categoryID,
	).Scan(&count)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to count transactions for category", err)
	}
	return count, nil
}

// SaveCategory persists a new category.
func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	m := mapping.ToModelCategory(category)

	query := `
		INSERT INTO categories (category_id, name, type, icon, color, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`

	if _, err := r.Pool.Exec(ctx, query,
		m.CategoryID, m.Name, m.Type, m.Icon, m.Color, m.CreatedAt, m.LastUpdatedAt,
	); err != nil {
		return apperrors.NewAppError(500, "failed to save category", err)
	}
	return nil
}

// UpdateCategory updates an existing category.
func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	m := mapping.ToModelCategory(category)

	query := `
		UPDATE categories
		SET name = $1, type = $2, icon = $3, color = $4, last_updated_at = $5
		WHERE category_id = $6;
	`

	tag, err := r.Pool.Exec(ctx, query, m.Name, m.Type, m.Icon, m.Color, m.LastUpdatedAt, m.CategoryID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update category", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("category not found: " + m.CategoryID)
	}
	return nil
}

// DeleteCategory removes a category.
func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM categories WHERE category_id = $1;`, categoryID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete category", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("category not found: " + categoryID)
	}
	return nil
}
