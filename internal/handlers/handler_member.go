package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/famstack/family_account_app/internal/apperrors"
	portssvc "github.com/famstack/family_account_app/internal/core/ports/services"
	"github.com/famstack/family_account_app/internal/dto"
	"github.com/famstack/family_account_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// memberHandler handles HTTP requests for family members.
type memberHandler struct {
	memberService portssvc.MemberSvcFacade
}

func newMemberHandler(ms portssvc.MemberSvcFacade) *memberHandler {
	return &memberHandler{memberService: ms}
}

// registerMemberRoutes registers routes related to family members.
func registerMemberRoutes(rg *gin.RouterGroup, memberService portssvc.MemberSvcFacade) {
	h := newMemberHandler(memberService)

	members := rg.Group("/members")
	{
		members.POST("", h.createMember)
		members.GET("", h.listMembers)
		members.GET("/:id", h.getMember)
		members.PUT("/:id", h.updateMember)
		members.DELETE("/:id", h.deleteMember)
	}
}

func (h *memberHandler) createMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateMember", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	created, err := h.memberService.CreateMember(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create member", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create member"})
		}
		return
	}

	logger.Info("Member created", slog.String("member_id", created.MemberID))
	c.JSON(http.StatusCreated, dto.ToMemberResponse(created))
}

func (h *memberHandler) listMembers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	members, err := h.memberService.ListMembers(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list members", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve members"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListMemberResponse(members))
}

func (h *memberHandler) getMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	memberID := c.Param("id")

	member, err := h.memberService.GetMemberByID(c.Request.Context(), memberID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		} else {
			logger.Error("Failed to get member", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve member"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToMemberResponse(member))
}

func (h *memberHandler) updateMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	memberID := c.Param("id")

	var req dto.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateMember", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	updated, err := h.memberService.UpdateMember(c.Request.Context(), memberID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update member", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update member"})
		}
		return
	}

	logger.Info("Member updated", slog.String("member_id", memberID))
	c.JSON(http.StatusOK, dto.ToMemberResponse(updated))
}

func (h *memberHandler) deleteMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	memberID := c.Param("id")

	if err := h.memberService.DeleteMember(c.Request.Context(), memberID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		} else {
			logger.Error("Failed to delete member", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete member"})
		}
		return
	}

	logger.Info("Member deleted", slog.String("member_id", memberID))
	c.Status(http.StatusNoContent)
}
