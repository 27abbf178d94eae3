package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/legalpro/case-management-api/internal/dto"
	apierrors "github.com/legalpro/case-management-api/internal/errors"
	"github.com/legalpro/case-management-api/internal/services"
)

type DeadlineHandler struct {
	deadlineService *services.DeadlineService
}

func NewDeadlineHandler(deadlineService *services.DeadlineService) *DeadlineHandler {
	return &DeadlineHandler{deadlineService: deadlineService}
}

// CreateDeadline creates a new deadline for an existing case
func (h *DeadlineHandler) CreateDeadline(c *gin.Context) {
	var req dto.CreateDeadlineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	deadline, err := h.deadlineService.CreateDeadline(req.ToInput())
	if err != nil {
		if errors.Is(err, services.ErrCaseNotExists) {
			apierrors.InvalidReference(c, "Invalid case_id: case does not exist")
			return
		}
		apierrors.InternalError(c, "Failed to create deadline")
		return
	}

	c.JSON(http.StatusCreated, deadline)
}

// ListDeadlines returns deadlines ordered by due date, optionally filtered
// by case_id
func (h *DeadlineHandler) ListDeadlines(c *gin.Context) {
	caseID, ok := uintQuery(c, "case_id")
	if !ok {
		return
	}

	deadlines, err := h.deadlineService.ListDeadlines(caseID)
	if err != nil {
		apierrors.InternalError(c, "Failed to list deadlines")
		return
	}

	c.JSON(http.StatusOK, deadlines)
}
