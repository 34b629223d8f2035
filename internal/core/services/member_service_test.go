package services_test

import (
	"context"
	"testing"

	"github.com/famstack/family_account_app/internal/apperrors"
	"github.com/famstack/family_account_app/internal/core/domain"
	portssvc "github.com/famstack/family_account_app/internal/core/ports/services"
	"github.com/famstack/family_account_app/internal/core/services"
	"github.com/famstack/family_account_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MemberServiceTestSuite struct {
	suite.Suite
	mockMemberRepo *MockMemberRepository
	service        portssvc.MemberSvcFacade
}

func (s *MemberServiceTestSuite) SetupTest() {
	s.mockMemberRepo = new(MockMemberRepository)
	s.service = services.NewMemberService(s.mockMemberRepo)
}

func TestMemberServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MemberServiceTestSuite))
}

func (s *MemberServiceTestSuite) TestCreateMember_DefaultsAvatar() {
	ctx := context.Background()

	s.mockMemberRepo.On("SaveMember", ctx, mock.MatchedBy(func(m domain.Member) bool {
		return m.Name == "Grandma" && m.Avatar == "👤" && m.MemberID != ""
	})).Return(nil).Once()

	created, err := s.service.CreateMember(ctx, dto.CreateMemberRequest{Name: "Grandma"})

	s.Require().NoError(err)
	s.Equal("👤", created.Avatar)
	s.mockMemberRepo.AssertExpectations(s.T())
}

func (s *MemberServiceTestSuite) TestUpdateMember_KeepsAvatarWhenOmitted() {
	ctx := context.Background()

	s.mockMemberRepo.On("FindMemberByID", ctx, "member-dad").Return(&domain.Member{
		MemberID: "member-dad",
		Name:     "Dad",
		Avatar:   "👨",
	}, nil).Once()
	s.mockMemberRepo.On("UpdateMember", ctx, mock.MatchedBy(func(m domain.Member) bool {
		return m.Name == "Father" && m.Avatar == "👨"
	})).Return(nil).Once()

	updated, err := s.service.UpdateMember(ctx, "member-dad", dto.UpdateMemberRequest{Name: "Father"})

	s.Require().NoError(err)
	s.Equal("👨", updated.Avatar)
	s.mockMemberRepo.AssertExpectations(s.T())
}

// Deleting a member never touches transactions, which keep their recorded
// member name.
func (s *MemberServiceTestSuite) TestDeleteMember() {
	ctx := context.Background()

	s.mockMemberRepo.On("FindMemberByID", ctx, "member-dad").
		Return(&domain.Member{MemberID: "member-dad"}, nil).Once()
	s.mockMemberRepo.On("DeleteMember", ctx, "member-dad").Return(nil).Once()

	err := s.service.DeleteMember(ctx, "member-dad")

	s.Require().NoError(err)
	s.mockMemberRepo.AssertExpectations(s.T())
}

func (s *MemberServiceTestSuite) TestDeleteMember_NotFound() {
	ctx := context.Background()

	s.mockMemberRepo.On("FindMemberByID", ctx, "member-missing").
		Return(nil, apperrors.NewNotFoundError("member not found")).Once()

	err := s.service.DeleteMember(ctx, "member-missing")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.mockMemberRepo.AssertNotCalled(s.T(), "DeleteMember", mock.Anything, mock.Anything)
}
