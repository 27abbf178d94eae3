package repository

import (
	"github.com/legalpro/case-management-api/internal/models"
)

// ClientRepository defines the interface for client data access
type ClientRepository interface {
	// Create creates a new client
	Create(client *models.Client) error

	// FindByID finds a client by ID
	FindByID(id uint64) (*models.Client, error)

	// List retrieves all clients, most recently created first
	List() ([]models.Client, error)

	// Delete deletes a client; it fails while any case references the client
	Delete(id uint64) error
}

// TeamMemberRepository defines the interface for team member data access
type TeamMemberRepository interface {
	// Create creates a new team member
	Create(member *models.TeamMember) error

	// FindByID finds a team member by ID
	FindByID(id uint64) (*models.TeamMember, error)

	// List retrieves all team members, most recently created first
	List() ([]models.TeamMember, error)

	// Delete deletes a team member, clearing the assignment of any task
	// that referenced them
	Delete(id uint64) error
}

// CaseFilter holds filtering options for listing cases
type CaseFilter struct {
	ClientID *uint64
	Status   *models.CaseStatus
}

// CaseRepository defines the interface for case data access
type CaseRepository interface {
	// Create creates a new case
	Create(c *models.Case) error

	// FindByID finds a case by ID
	FindByID(id uint64) (*models.Case, error)

	// FindByCaseNumber finds a case by its unique case number
	FindByCaseNumber(caseNumber string) (*models.Case, error)

	// List retrieves cases matching the filter, most recently created first
	List(filter CaseFilter) ([]models.Case, error)

	// Delete deletes a case together with its deadlines, tasks and task
	// evidences in one transaction
	Delete(id uint64) error
}

// DeadlineRepository defines the interface for deadline data access
type DeadlineRepository interface {
	// Create creates a new deadline
	Create(deadline *models.Deadline) error

	// List retrieves deadlines ordered by due date, optionally restricted
	// to one case
	List(caseID *uint64) ([]models.Deadline, error)
}

// TaskFilter holds filtering options for listing tasks
type TaskFilter struct {
	CaseID *uint64
	Status *models.TaskStatus
}

// TaskRepository defines the interface for task and task evidence data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID
	FindByID(id uint64) (*models.Task, error)

	// List retrieves tasks matching the filter, ordered by due date
	List(filter TaskFilter) ([]models.Task, error)

	// Update updates a task
	Update(task *models.Task) error

	// Delete deletes a task together with its evidences in one transaction
	Delete(id uint64) error

	// AddEvidence attaches an evidence record to a task
	AddEvidence(evidence *models.TaskEvidence) error

	// ListEvidences retrieves a task's evidences, most recent first
	ListEvidences(taskID uint64) ([]models.TaskEvidence, error)
}
