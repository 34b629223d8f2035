package services

import (
	"context"

	"github.com/famstack/family_account_app/internal/core/domain"
	"github.com/famstack/family_account_app/internal/dto"
)

// MemberSvcFacade defines CRUD operations for family members.
type MemberSvcFacade interface {
	CreateMember(ctx context.Context, req dto.CreateMemberRequest) (*domain.Member, error)
	GetMemberByID(ctx context.Context, memberID string) (*domain.Member, error)
	ListMembers(ctx context.Context) ([]domain.Member, error)
	UpdateMember(ctx context.Context, memberID string, req dto.UpdateMemberRequest) (*domain.Member, error)
	DeleteMember(ctx context.Context, memberID string) error
}
