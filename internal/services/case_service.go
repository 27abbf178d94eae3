package services

import (
	"errors"
	"fmt"

	"github.com/legalpro/case-management-api/internal/models"
	"github.com/legalpro/case-management-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrDuplicateCaseNumber = errors.New("a case with this case number already exists")
	ErrClientNotExists     = errors.New("client_id does not reference an existing client")
	ErrCaseNotFound        = errors.New("case not found")
	ErrClientNotFound      = errors.New("client not found")
)

// CaseService handles case business logic, including the combined detail
// view and the read-only portal aggregates.
type CaseService struct {
	caseRepo     repository.CaseRepository
	clientRepo   repository.ClientRepository
	deadlineRepo repository.DeadlineRepository
	taskRepo     repository.TaskRepository
}

// NewCaseService creates a new CaseService
func NewCaseService(
	caseRepo repository.CaseRepository,
	clientRepo repository.ClientRepository,
	deadlineRepo repository.DeadlineRepository,
	taskRepo repository.TaskRepository,
) *CaseService {
	return &CaseService{
		caseRepo:     caseRepo,
		clientRepo:   clientRepo,
		deadlineRepo: deadlineRepo,
		taskRepo:     taskRepo,
	}
}

// CreateCaseInput represents input for creating a case
type CreateCaseInput struct {
	CaseNumber string
	ClientID   uint64
	CaseType   string
	StartDate  string
	Details    *string
	Status     models.CaseStatus
}

// ListCasesInput represents filters for listing cases
type ListCasesInput struct {
	ClientID *uint64
	Status   *models.CaseStatus
}

// CreateCase creates a new case. The case number must be unique and the
// client must exist; both are checked before the insert so callers get a
// typed error instead of a constraint failure.
func (s *CaseService) CreateCase(input CreateCaseInput) (*models.Case, error) {
	_, err := s.caseRepo.FindByCaseNumber(input.CaseNumber)
	if err == nil {
		return nil, ErrDuplicateCaseNumber
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check case number: %w", err)
	}

	if _, err := s.clientRepo.FindByID(input.ClientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotExists
		}
		return nil, fmt.Errorf("failed to verify client: %w", err)
	}

	if input.Status == "" {
		input.Status = models.CaseStatusOpen
	}

	c := &models.Case{
		CaseNumber: input.CaseNumber,
		ClientID:   input.ClientID,
		CaseType:   input.CaseType,
		StartDate:  input.StartDate,
		Details:    input.Details,
		Status:     input.Status,
	}

	if err := s.caseRepo.Create(c); err != nil {
		return nil, fmt.Errorf("failed to create case: %w", err)
	}

	return c, nil
}

// ListCases returns cases matching the filters, most recently created first
func (s *CaseService) ListCases(input ListCasesInput) ([]models.Case, error) {
	cases, err := s.caseRepo.List(repository.CaseFilter{
		ClientID: input.ClientID,
		Status:   input.Status,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list cases: %w", err)
	}
	return cases, nil
}

// GetCaseDetail returns a case together with its deadlines and tasks, both
// ordered by due date ascending
func (s *CaseService) GetCaseDetail(caseID uint64) (*models.Case, []models.Deadline, []models.Task, error) {
	c, err := s.caseRepo.FindByID(caseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil, ErrCaseNotFound
		}
		return nil, nil, nil, fmt.Errorf("failed to find case: %w", err)
	}

	deadlines, err := s.deadlineRepo.List(&caseID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to list case deadlines: %w", err)
	}

	tasks, err := s.taskRepo.List(repository.TaskFilter{CaseID: &caseID})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to list case tasks: %w", err)
	}

	return c, deadlines, tasks, nil
}

// PortalCasesForClient returns a client together with all of their cases.
// Same data as ListClients + ListCases, exposed as one aggregate for the
// read-only client portal.
func (s *CaseService) PortalCasesForClient(clientID uint64) (*models.Client, []models.Case, error) {
	client, err := s.clientRepo.FindByID(clientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrClientNotFound
		}
		return nil, nil, fmt.Errorf("failed to find client: %w", err)
	}

	cases, err := s.ListCases(ListCasesInput{ClientID: &clientID})
	if err != nil {
		return nil, nil, err
	}

	return client, cases, nil
}
