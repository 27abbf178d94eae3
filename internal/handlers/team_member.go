package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/legalpro/case-management-api/internal/dto"
	apierrors "github.com/legalpro/case-management-api/internal/errors"
	"github.com/legalpro/case-management-api/internal/services"
)

type TeamMemberHandler struct {
	memberService *services.TeamMemberService
}

func NewTeamMemberHandler(memberService *services.TeamMemberService) *TeamMemberHandler {
	return &TeamMemberHandler{memberService: memberService}
}

// CreateTeamMember creates a new team member
func (h *TeamMemberHandler) CreateTeamMember(c *gin.Context) {
	var req dto.CreateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	member, err := h.memberService.CreateTeamMember(req.ToInput())
	if err != nil {
		apierrors.InternalError(c, "Failed to create team member")
		return
	}

	c.JSON(http.StatusCreated, member)
}

// ListTeamMembers returns all team members, most recent first
func (h *TeamMemberHandler) ListTeamMembers(c *gin.Context) {
	members, err := h.memberService.ListTeamMembers()
	if err != nil {
		apierrors.InternalError(c, "Failed to list team members")
		return
	}

	c.JSON(http.StatusOK, members)
}
