package repository

import (
	"github.com/legalpro/case-management-api/internal/models"
	"gorm.io/gorm"
)

// GormDeadlineRepository is a GORM implementation of DeadlineRepository
type GormDeadlineRepository struct {
	db *gorm.DB
}

// NewDeadlineRepository creates a new DeadlineRepository
func NewDeadlineRepository(db *gorm.DB) DeadlineRepository {
	return &GormDeadlineRepository{db: db}
}

// Create creates a new deadline
func (r *GormDeadlineRepository) Create(deadline *models.Deadline) error {
	return r.db.Create(deadline).Error
}

// List retrieves deadlines ordered by due date ascending, optionally
// restricted to one case. Due dates are ISO strings, so lexicographic
// order is chronological order.
func (r *GormDeadlineRepository) List(caseID *uint64) ([]models.Deadline, error) {
	deadlines := make([]models.Deadline, 0)

	query := r.db.Model(&models.Deadline{})
	if caseID != nil {
		query = query.Where("case_id = ?", *caseID)
	}

	if err := query.Order("due_date ASC").Find(&deadlines).Error; err != nil {
		return nil, err
	}
	return deadlines, nil
}
