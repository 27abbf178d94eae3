package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/legalpro/case-management-api/internal/dto"
	apierrors "github.com/legalpro/case-management-api/internal/errors"
	"github.com/legalpro/case-management-api/internal/services"
)

// PortalHandler serves the read-only client portal views. They reuse the
// same queries as the internal endpoints; only the framing differs.
type PortalHandler struct {
	caseService *services.CaseService
}

func NewPortalHandler(caseService *services.CaseService) *PortalHandler {
	return &PortalHandler{caseService: caseService}
}

// ClientCases returns a client together with all of their cases
func (h *PortalHandler) ClientCases(c *gin.Context) {
	clientID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	client, cases, err := h.caseService.PortalCasesForClient(clientID)
	if err != nil {
		if errors.Is(err, services.ErrClientNotFound) {
			apierrors.NotFound(c, "Client not found")
			return
		}
		apierrors.InternalError(c, "Failed to load client cases")
		return
	}

	c.JSON(http.StatusOK, dto.PortalClientCasesResponse{
		Client: *client,
		Cases:  cases,
	})
}

// CaseDetail returns the same combined view as GET /cases/:id
func (h *PortalHandler) CaseDetail(c *gin.Context) {
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
