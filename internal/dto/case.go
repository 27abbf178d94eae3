package dto

import (
	"github.com/legalpro/case-management-api/internal/models"
	"github.com/legalpro/case-management-api/internal/services"
)

// CreateCaseRequest is the payload for POST /cases. Status defaults to
// ABIERTO when omitted; the enum is validated here, at the binding
// boundary, not again downstream.
type CreateCaseRequest struct {
	CaseNumber string            `json:"case_number" binding:"required"`
	ClientID   uint64            `json:"client_id" binding:"required"`
	CaseType   string            `json:"case_type" binding:"required"`
	StartDate  string            `json:"start_date" binding:"required,isodate"`
	Details    *string           `json:"details"`
	Status     models.CaseStatus `json:"status" binding:"omitempty,oneof=ABIERTO EN_PROCESO CERRADO"`
}

// ToInput converts the request to a service input
func (r CreateCaseRequest) ToInput() services.CreateCaseInput {
	return services.CreateCaseInput{
		CaseNumber: r.CaseNumber,
		ClientID:   r.ClientID,
		CaseType:   r.CaseType,
		StartDate:  r.StartDate,
		Details:    r.Details,
		Status:     r.Status,
	}
}

// CaseDetailResponse combines a case with its deadlines and tasks
type CaseDetailResponse struct {
	Case      models.Case       `json:"case"`
	Deadlines []models.Deadline `json:"deadlines"`
	Tasks     []models.Task     `json:"tasks"`
}

// NewCaseDetailResponse builds a CaseDetailResponse, normalizing nil slices
// so the JSON always carries arrays
func NewCaseDetailResponse(c *models.Case, deadlines []models.Deadline, tasks []models.Task) CaseDetailResponse {
	if deadlines == nil {
		deadlines = []models.Deadline{}
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	return CaseDetailResponse{
		Case:      *c,
		Deadlines: deadlines,
		Tasks:     tasks,
	}
}
