package dto

import (
	"github.com/legalpro/case-management-api/internal/models"
	"github.com/legalpro/case-management-api/internal/services"
)

// CreateTaskRequest is the payload for POST /tasks. Priority defaults to 2
// (medium), status to PENDIENTE.
type CreateTaskRequest struct {
	CaseID       uint64            `json:"case_id" binding:"required"`
	AssignedToID *uint64           `json:"assigned_to_id"`
	Title        string            `json:"title" binding:"required"`
	Description  *string           `json:"description"`
	Priority     *int              `json:"priority" binding:"omitempty,oneof=1 2 3"`
	DueDate      string            `json:"due_date" binding:"required,isodate"`
	Status       models.TaskStatus `json:"status" binding:"omitempty,oneof=PENDIENTE EN_PROCESO COMPLETADA"`
}

// ToInput converts the request to a service input
func (r CreateTaskRequest) ToInput() services.CreateTaskInput {
	return services.CreateTaskInput{
		CaseID:       r.CaseID,
		AssignedToID: r.AssignedToID,
		Title:        r.Title,
		Description:  r.Description,
		Priority:     r.Priority,
		DueDate:      r.DueDate,
		Status:       r.Status,
	}
}

// CreateTaskEvidenceRequest is the payload for POST /task-evidences.
// created_at is always server-assigned.
type CreateTaskEvidenceRequest struct {
	TaskID   uint64  `json:"task_id" binding:"required"`
	Filename *string `json:"filename"`
	URL      *string `json:"url"`
	Notes    *string `json:"notes"`
}

// ToInput converts the request to a service input
func (r CreateTaskEvidenceRequest) ToInput() services.AddTaskEvidenceInput {
	return services.AddTaskEvidenceInput{
		TaskID:   r.TaskID,
		Filename: r.Filename,
		URL:      r.URL,
		Notes:    r.Notes,
	}
}

// TaskDetailResponse combines a task with its evidence records
type TaskDetailResponse struct {
	Task      models.Task           `json:"task"`
	Evidences []models.TaskEvidence `json:"evidences"`
}

// NewTaskDetailResponse builds a TaskDetailResponse, normalizing nil slices
// so the JSON always carries arrays
func NewTaskDetailResponse(task *models.Task, evidences []models.TaskEvidence) TaskDetailResponse {
	if evidences == nil {
		evidences = []models.TaskEvidence{}
	}
	return TaskDetailResponse{
		Task:      *task,
		Evidences: evidences,
	}
}
