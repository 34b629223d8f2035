package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/famstack/family_account_app/internal/core/domain"
	portsrepo "github.com/famstack/family_account_app/internal/core/ports/repositories"
	portssvc "github.com/famstack/family_account_app/internal/core/ports/services"
	"github.com/famstack/family_account_app/internal/dto"
	"github.com/google/uuid"
)

const defaultMemberAvatar = "👤"

// memberService implements the MemberSvcFacade interface.
type memberService struct {
	BaseService
	memberRepo portsrepo.MemberRepositoryFacade
}

// NewMemberService creates a new member service.
func NewMemberService(memberRepo portsrepo.MemberRepositoryFacade) portssvc.MemberSvcFacade {
	return &memberService{memberRepo: memberRepo}
}

var _ portssvc.MemberSvcFacade = (*memberService)(nil)

// CreateMember persists a new family member.
func (s *memberService) CreateMember(ctx context.Context, req dto.CreateMemberRequest) (*domain.Member, error) {
	now := time.Now()
	member := domain.Member{
		MemberID: uuid.NewString(),
		Name:     req.Name,
		Avatar:   req.Avatar,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if member.Avatar == "" {
		member.Avatar = defaultMemberAvatar
	}

	if err := s.memberRepo.SaveMember(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to save member: %w", err)
	}

	s.LogInfo(ctx, "Member created",
		slog.String("member_id", member.MemberID),
		slog.String("name", member.Name),
	)
	return &member, nil
}

// GetMemberByID retrieves a member by their ID.
func (s *memberService) GetMemberByID(ctx context.Context, memberID string) (*domain.Member, error) {
	return s.memberRepo.FindMemberByID(ctx, memberID)
}

// ListMembers lists all family members.
func (s *memberService) ListMembers(ctx context.Context) ([]domain.Member, error) {
	members, err := s.memberRepo.ListMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	return members, nil
}

// UpdateMember updates an existing member.
func (s *memberService) UpdateMember(ctx context.Context, memberID string, req dto.UpdateMemberRequest) (*domain.Member, error) {
	existing, err := s.memberRepo.FindMemberByID(ctx, memberID)
	if err != nil {
		return nil, err
	}

	existing.Name = req.Name
	if req.Avatar != "" {
		existing.Avatar = req.Avatar
	}
	existing.LastUpdatedAt = time.Now()

	if err := s.memberRepo.UpdateMember(ctx, *existing); err != nil {
		return nil, fmt.Errorf("failed to update member: %w", err)
	}

	s.LogInfo(ctx, "Member updated", slog.String("member_id", memberID))
	return existing, nil
}

// DeleteMember removes a member. Transactions keep their recorded member
// name, so no reference check is needed.
func (s *memberService) DeleteMember(ctx context.Context, memberID string) error {
	if _, err := s.memberRepo.FindMemberByID(ctx, memberID); err != nil {
		return err
	}
	if err := s.memberRepo.DeleteMember(ctx, memberID); err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}
	s.LogInfo(ctx, "Member deleted", slog.String("member_id", memberID))
	return nil
}
