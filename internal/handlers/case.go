package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/legalpro/case-management-api/internal/dto"
	apierrors "github.com/legalpro/case-management-api/internal/errors"
	"github.com/legalpro/case-management-api/internal/models"
	"github.com/legalpro/case-management-api/internal/services"
)

type CaseHandler struct {
	caseService *services.CaseService
}

func NewCaseHandler(caseService *services.CaseService) *CaseHandler {
	return &CaseHandler{caseService: caseService}
}

// CreateCase creates a new case. Duplicate case numbers yield 409, an
// unknown client_id yields 400.
func (h *CaseHandler) CreateCase(c *gin.Context) {
	var req dto.CreateCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	created, err := h.caseService.CreateCase(req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDuplicateCaseNumber):
			apierrors.Conflict(c, "A case with this case_number already exists")
		case errors.Is(err, services.ErrClientNotExists):
			apierrors.InvalidReference(c, "Invalid client_id: client does not exist")
		default:
			apierrors.InternalError(c, "Failed to create case")
		}
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListCases returns cases, optionally filtered by client_id and status
func (h *CaseHandler) ListCases(c *gin.Context) {
	clientID, ok := uintQuery(c, "client_id")
	if !ok {
		return
	}

	var status *models.CaseStatus
	if raw := c.Query("status"); raw != "" {
		s := models.CaseStatus(raw)
		if !s.IsValid() {
			apierrors.InvalidEnumValue(c, "Invalid status. Use: ABIERTO, EN_PROCESO, CERRADO")
			return
		}
		status = &s
	}

	cases, err := h.caseService.ListCases(services.ListCasesInput{
		ClientID: clientID,
		Status:   status,
	})
	if err != nil {
		apierrors.InternalError(c, "Failed to list cases")
		return
	}

	c.JSON(http.StatusOK, cases)
}

// GetCaseDetail returns a case with its deadlines and tasks
func (h *CaseHandler) GetCaseDetail(c *gin.Context) {
	caseID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	caseRow, deadlines, tasks, err := h.caseService.GetCaseDetail(caseID)
	if err != nil {
		if errors.Is(err, services.ErrCaseNotFound) {
			apierrors.NotFound(c, "Case not found")
			return
		}
		apierrors.InternalError(c, "Failed to load case detail")
		return
	}

	c.JSON(http.StatusOK, dto.NewCaseDetailResponse(caseRow, deadlines, tasks))
}
