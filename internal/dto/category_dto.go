package dto

import (
	"github.com/famstack/family_account_app/internal/core/domain"
)

// CreateCategoryRequest defines the structure for creating a category.
type CreateCategoryRequest struct {
	Name  string `json:"name" binding:"required,max=100"`
	Type  string `json:"type" binding:"required,oneof=income expense"`
	Icon  string `json:"icon,omitempty" binding:"omitempty,max=50"`
	Color string `json:"color,omitempty" binding:"omitempty,max=20"`
}

// UpdateCategoryRequest defines the structure for updating a category.
type UpdateCategoryRequest struct {
	Name  string `json:"name" binding:"required,max=100"`
	Type  string `json:"type" binding:"required,oneof=income expense"`
	Icon  string `json:"icon,omitempty" binding:"omitempty,max=50"`
	Color string `json:"color,omitempty" binding:"omitempty,max=20"`
}

// CategoryResponse is a category in API responses.
type CategoryResponse struct {
	CategoryID string `json:"categoryID"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	Icon       string `json:"icon"`
	Color      string `json:"color"`
	CreatedAt  string `json:"createdAt"`
}

// ToCategoryResponse converts a domain.Category to its response DTO.
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID: c.CategoryID,
		Name:       c.Name,
		Type:       string(c.Type),
		Icon:       c.Icon,
		Color:      c.Color,
		CreatedAt:  c.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

// ToListCategoryResponse converts a slice of categories to response DTOs.
func ToListCategoryResponse(categories []domain.Category) []CategoryResponse {
	out := make([]CategoryResponse, len(categories))
	for i := range categories {
		out[i] = ToCategoryResponse(&categories[i])
	}
	return out
}
