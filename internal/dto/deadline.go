package dto

import (
	"github.com/legalpro/case-management-api/internal/models"
	"github.com/legalpro/case-management-api/internal/services"
)

// CreateDeadlineRequest is the payload for POST /deadlines.
// remind_days_before defaults to 3 and must not be negative.
type CreateDeadlineRequest struct {
	CaseID           uint64                `json:"case_id" binding:"required"`
	Title            string                `json:"title" binding:"required"`
	DueDate          string                `json:"due_date" binding:"required,isodate"`
	Kind             string                `json:"kind" binding:"required"`
	Notes            *string               `json:"notes"`
	RemindDaysBefore *int                  `json:"remind_days_before" binding:"omitempty,gte=0"`
	Status           models.DeadlineStatus `json:"status" binding:"omitempty,oneof=PENDIENTE CUMPLIDO VENCIDO"`
}

// ToInput converts the request to a service input
func (r CreateDeadlineRequest) ToInput() services.CreateDeadlineInput {
	return services.CreateDeadlineInput{
		CaseID:           r.CaseID,
		Title:            r.Title,
		DueDate:          r.DueDate,
		Kind:             r.Kind,
		Notes:            r.Notes,
		RemindDaysBefore: r.RemindDaysBefore,
		Status:           r.Status,
	}
}
