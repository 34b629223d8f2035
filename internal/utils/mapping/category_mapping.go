package mapping

import (
	"github.com/famstack/family_account_app/internal/core/domain"
	"github.com/famstack/family_account_app/internal/models"
)

// ToModelCategory converts a domain Category to a model Category
func ToModelCategory(d domain.Category) models.Category {
	return models.Category{
		CategoryID:  d.CategoryID,
		Name:        d.Name,
		Type:        string(d.Type),
		Icon:        d.Icon,
		Color:       d.Color,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCategory converts a model Category to a domain Category
func ToDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		CategoryID:  m.CategoryID,
		Name:        m.Name,
		Type:        domain.CategoryType(m.Type),
		Icon:        m.Icon,
		Color:       m.Color,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCategories converts a slice of model Category to domain
func ToDomainCategories(ms []models.Category) []domain.Category {
	out := make([]domain.Category, len(ms))
	for i, m := range ms {
		out[i] = ToDomainCategory(m)
	}
	return out
}
