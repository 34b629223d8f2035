package repositories

import (
	"context"

	"github.com/famstack/family_account_app/internal/core/domain"
)

// MemberReader defines read operations for family members
type MemberReader interface {
	// FindMemberByID retrieves a member by their ID.
	FindMemberByID(ctx context.Context, memberID string) (*domain.Member, error)

	// ListMembers retrieves all members, ordered by name.
	ListMembers(ctx context.Context) ([]domain.Member, error)
}

// MemberWriter defines write operations for family members
type MemberWriter interface {
	// SaveMember persists a new member.
	SaveMember(ctx context.Context, member domain.Member) error

	// UpdateMember updates an existing member.
	UpdateMember(ctx context.Context, member domain.Member) error

	// DeleteMember removes a member.
	DeleteMember(ctx context.Context, memberID string) error
}

// MemberRepositoryFacade combines all member-related repository interfaces
type MemberRepositoryFacade interface {
	MemberReader
	MemberWriter
}
