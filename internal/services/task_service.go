package services

import (
	"errors"
	"fmt"

	"github.com/legalpro/case-management-api/internal/models"
	"github.com/legalpro/case-management-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrTaskNotExists   = errors.New("task_id does not reference an existing task")
	ErrMemberNotExists = errors.New("assigned_to_id does not reference an existing team member")
)

// TaskService handles task and task evidence business logic
type TaskService struct {
	taskRepo   repository.TaskRepository
	caseRepo   repository.CaseRepository
	memberRepo repository.TeamMemberRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(
	taskRepo repository.TaskRepository,
	caseRepo repository.CaseRepository,
	memberRepo repository.TeamMemberRepository,
) *TaskService {
	return &TaskService{
		taskRepo:   taskRepo,
		caseRepo:   caseRepo,
		memberRepo: memberRepo,
	}
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	CaseID       uint64
	AssignedToID *uint64
	Title        string
	Description  *string
	Priority     *int
	DueDate      string
	Status       models.TaskStatus
}

// ListTasksInput represents filters for listing tasks
type ListTasksInput struct {
	CaseID *uint64
	Status *models.TaskStatus
}

// AddTaskEvidenceInput represents input for attaching evidence to a task
type AddTaskEvidenceInput struct {
	TaskID   uint64
	Filename *string
	URL      *string
	Notes    *string
}

// CreateTask creates a new task. The case must exist, and so must the
// assignee when one is given. Tasks always start with a null completed_at.
func (s *TaskService) CreateTask(input CreateTaskInput) (*models.Task, error) {
	if _, err := s.caseRepo.FindByID(input.CaseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCaseNotExists
		}
		return nil, fmt.Errorf("failed to verify case: %w", err)
	}

	if input.AssignedToID != nil {
		if _, err := s.memberRepo.FindByID(*input.AssignedToID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrMemberNotExists
			}
			return nil, fmt.Errorf("failed to verify team member: %w", err)
		}
	}

	if input.Status == "" {
		input.Status = models.TaskStatusPending
	}

	priority := 2
	if input.Priority != nil {
		priority = *input.Priority
	}

	task := &models.Task{
		CaseID:       input.CaseID,
		AssignedToID: input.AssignedToID,
		Title:        input.Title,
		Description:  input.Description,
		Priority:     priority,
		DueDate:      input.DueDate,
		Status:       input.Status,
		CompletedAt:  nil,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// ListTasks returns tasks matching the filters, ordered by due date
func (s *TaskService) ListTasks(input ListTasksInput) ([]models.Task, error) {
	tasks, err := s.taskRepo.List(repository.TaskFilter{
		CaseID: input.CaseID,
		Status: input.Status,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// UpdateTaskStatus sets a task's status. Moving to COMPLETADA stamps
// completed_at with the current time; moving away from it leaves the
// existing stamp untouched. The caller validates the status literal.
func (s *TaskService) UpdateTaskStatus(taskID uint64, status models.TaskStatus) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	task.Status = status
	if status == models.TaskStatusCompleted {
		now := models.Now()
		task.CompletedAt = &now
	}

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task status: %w", err)
	}

	return task, nil
}

// GetTaskDetail returns a task together with its evidences, most recent first
func (s *TaskService) GetTaskDetail(taskID uint64) (*models.Task, []models.TaskEvidence, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrTaskNotFound
		}
		return nil, nil, fmt.Errorf("failed to find task: %w", err)
	}

	evidences, err := s.taskRepo.ListEvidences(taskID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list task evidences: %w", err)
	}

	return task, evidences, nil
}

// AddTaskEvidence attaches an evidence record to a task, stamping
// created_at server-side
func (s *TaskService) AddTaskEvidence(input AddTaskEvidenceInput) (*models.TaskEvidence, error) {
	if _, err := s.taskRepo.FindByID(input.TaskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotExists
		}
		return nil, fmt.Errorf("failed to verify task: %w", err)
	}

	evidence := &models.TaskEvidence{
		TaskID:    input.TaskID,
		Filename:  input.Filename,
		URL:       input.URL,
		Notes:     input.Notes,
		CreatedAt: models.Now(),
	}

	if err := s.taskRepo.AddEvidence(evidence); err != nil {
		return nil, fmt.Errorf("failed to add task evidence: %w", err)
	}

	return evidence, nil
}
