package services

import (
	"errors"
	"fmt"

	"github.com/legalpro/case-management-api/internal/models"
	"github.com/legalpro/case-management-api/internal/repository"
	"gorm.io/gorm"
)

// ErrCaseNotExists is returned when a payload's case_id does not resolve to
// an existing case.
var ErrCaseNotExists = errors.New("case_id does not reference an existing case")

// DeadlineService handles deadline business logic
type DeadlineService struct {
	deadlineRepo repository.DeadlineRepository
	caseRepo     repository.CaseRepository
}

// NewDeadlineService creates a new DeadlineService
func NewDeadlineService(deadlineRepo repository.DeadlineRepository, caseRepo repository.CaseRepository) *DeadlineService {
	return &DeadlineService{
		deadlineRepo: deadlineRepo,
		caseRepo:     caseRepo,
	}
}

// CreateDeadlineInput represents input for creating a deadline
type CreateDeadlineInput struct {
	CaseID           uint64
	Title            string
	DueDate          string
	Kind             string
	Notes            *string
	RemindDaysBefore *int
	Status           models.DeadlineStatus
}

// CreateDeadline creates a new deadline after verifying the case exists
func (s *DeadlineService) CreateDeadline(input CreateDeadlineInput) (*models.Deadline, error) {
	if _, err := s.caseRepo.FindByID(input.CaseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCaseNotExists
		}
		return nil, fmt.Errorf("failed to verify case: %w", err)
	}

	if input.Status == "" {
		input.Status = models.DeadlineStatusPending
	}

	remindDaysBefore := 3
	if input.RemindDaysBefore != nil {
		remindDaysBefore = *input.RemindDaysBefore
	}

	deadline := &models.Deadline{
		CaseID:           input.CaseID,
		Title:            input.Title,
		DueDate:          input.DueDate,
		Kind:             input.Kind,
		Notes:            input.Notes,
		RemindDaysBefore: remindDaysBefore,
		Status:           input.Status,
	}

	if err := s.deadlineRepo.Create(deadline); err != nil {
		return nil, fmt.Errorf("failed to create deadline: %w", err)
	}

	return deadline, nil
}

// ListDeadlines returns deadlines ordered by due date, optionally
// restricted to one case
func (s *DeadlineService) ListDeadlines(caseID *uint64) ([]models.Deadline, error) {
	deadlines, err := s.deadlineRepo.List(caseID)
	if err != nil {
		return nil, fmt.Errorf("failed to list deadlines: %w", err)
	}
	return deadlines, nil
}
