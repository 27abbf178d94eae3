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

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// CreateTask creates a new task. The case must exist; when an assignee is
// given, the team member must exist too.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	task, err := h.taskService.CreateTask(req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCaseNotExists):
			apierrors.InvalidReference(c, "Invalid case_id: case does not exist")
		case errors.Is(err, services.ErrMemberNotExists):
			apierrors.InvalidReference(c, "Invalid assigned_to_id: team member does not exist")
		default:
			apierrors.InternalError(c, "Failed to create task")
		}
		return
	}

	c.JSON(http.StatusCreated, task)
}

// ListTasks returns tasks ordered by due date, optionally filtered by
// case_id and status
func (h *TaskHandler) ListTasks(c *gin.Context) {
	caseID, ok := uintQuery(c, "case_id")
	if !ok {
		return
	}

	var status *models.TaskStatus
	if raw := c.Query("status"); raw != "" {
		s := models.TaskStatus(raw)
		if !s.IsValid() {
			apierrors.InvalidEnumValue(c, "Invalid status. Use: PENDIENTE, EN_PROCESO, COMPLETADA")
			return
		}
		status = &s
	}

	tasks, err := h.taskService.ListTasks(services.ListTasksInput{
		CaseID: caseID,
		Status: status,
	})
	if err != nil {
		apierrors.InternalError(c, "Failed to list tasks")
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// UpdateTaskStatus transitions a task to a new status. The status literal
// is validated here; the transition to COMPLETADA stamps completed_at.
func (h *TaskHandler) UpdateTaskStatus(c *gin.Context) {
	taskID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	status := models.TaskStatus(c.Param("new_status"))
	if !status.IsValid() {
		apierrors.InvalidEnumValue(c, "Invalid new_status. Use: PENDIENTE, EN_PROCESO, COMPLETADA")
		return
	}

	task, err := h.taskService.UpdateTaskStatus(taskID, status)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			apierrors.NotFound(c, "Task not found")
			return
		}
		apierrors.InternalError(c, "Failed to update task status")
		return
	}

	c.JSON(http.StatusOK, task)
}

// GetTaskDetail returns a task with its evidence records
func (h *TaskHandler) GetTaskDetail(c *gin.Context) {
	taskID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	task, evidences, err := h.taskService.GetTaskDetail(taskID)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			apierrors.NotFound(c, "Task not found")
			return
		}
		apierrors.InternalError(c, "Failed to load task detail")
		return
	}

	c.JSON(http.StatusOK, dto.NewTaskDetailResponse(task, evidences))
}

// AddTaskEvidence attaches an evidence record to an existing task
func (h *TaskHandler) AddTaskEvidence(c *gin.Context) {
	var req dto.CreateTaskEvidenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	evidence, err := h.taskService.AddTaskEvidence(req.ToInput())
	if err != nil {
		if errors.Is(err, services.ErrTaskNotExists) {
			apierrors.InvalidReference(c, "Invalid task_id: task does not exist")
			return
		}
		apierrors.InternalError(c, "Failed to add task evidence")
		return
	}

	c.JSON(http.StatusCreated, evidence)
}
