package dto

import (
	"github.com/famstack/family_account_app/internal/core/domain"
)

// CreateMemberRequest defines the structure for creating a family member.
type CreateMemberRequest struct {
	Name   string `json:"name" binding:"required,max=100"`
	Avatar string `json:"avatar,omitempty" binding:"omitempty,max=10"`
}

// UpdateMemberRequest defines the structure for updating a family member.
type UpdateMemberRequest struct {
	Name   string `json:"name" binding:"required,max=100"`
	Avatar string `json:"avatar,omitempty" binding:"omitempty,max=10"`
}

// MemberResponse is a family member in API responses.
type MemberResponse struct {
	MemberID  string `json:"memberID"`
	Name      string `json:"name"`
	Avatar    string `json:"avatar"`
	CreatedAt string `json:"createdAt"`
}

// ToMemberResponse converts a domain.Member to its response DTO.
func ToMemberResponse(m *domain.Member) MemberResponse {
	return MemberResponse{
		MemberID:  m.MemberID,
		Name:      m.Name,
		Avatar:    m.Avatar,
		CreatedAt: m.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

// ToListMemberResponse converts a slice of members to response DTOs.
func ToListMemberResponse(members []domain.Member) []MemberResponse {
	out := make([]MemberResponse, len(members))
	for i := range members {
		out[i] = ToMemberResponse(&members[i])
	}
	return out
}
