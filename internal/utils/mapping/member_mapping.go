package mapping

import (
	"github.com/famstack/family_account_app/internal/core/domain"
	"github.com/famstack/family_account_app/internal/models"
)

// ToModelMember converts a domain Member to a model Member
func ToModelMember(d domain.Member) models.Member {
	return models.Member{
		MemberID:    d.MemberID,
		Name:        d.Name,
		Avatar:      d.Avatar,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainMember converts a model Member to a domain Member
func ToDomainMember(m models.Member) domain.Member {
	return domain.Member{
		MemberID:    m.MemberID,
		Name:        m.Name,
		Avatar:      m.Avatar,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainMembers converts a slice of model Member to domain
func ToDomainMembers(ms []models.Member) []domain.Member {
	out := make([]domain.Member, len(ms))
	for i, m := range ms {
		out[i] = ToDomainMember(m)
	}
	return out
}
