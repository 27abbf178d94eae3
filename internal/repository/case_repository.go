package repository

import (
	"github.com/legalpro/case-management-api/internal/models"
	"gorm.io/gorm"
)

// GormCaseRepository is a GORM implementation of CaseRepository
type GormCaseRepository struct {
	db *gorm.DB
}

// NewCaseRepository creates a new CaseRepository
func NewCaseRepository(db *gorm.DB) CaseRepository {
	return &GormCaseRepository{db: db}
}

// Create creates a new case
func (r *GormCaseRepository) Create(c *models.Case) error {
	return r.db.Create(c).Error
}

// FindByID finds a case by ID
func (r *GormCaseRepository) FindByID(id uint64) (*models.Case, error) {
	var c models.Case
	if err := r.db.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// FindByCaseNumber finds a case by its unique case number
func (r *GormCaseRepository) FindByCaseNumber(caseNumber string) (*models.Case, error) {
	var c models.Case
	if err := r.db.Where("case_number = ?", caseNumber).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// List retrieves cases matching the filter, most recently created first
func (r *GormCaseRepository) List(filter CaseFilter) ([]models.Case, error) {
	cases := make([]models.Case, 0)

	query := r.db.Model(&models.Case{})
	if filter.ClientID != nil {
		query = query.Where("client_id = ?", *filter.ClientID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	if err := query.Order("id DESC").Find(&cases).Error; err != nil {
		return nil, err
	}
	return cases, nil
}

// Delete deletes a case and all dependent rows in a transaction: evidences
// of the case's tasks first, then tasks, then deadlines, then the case.
func (r *GormCaseRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		taskIDs := tx.Model(&models.Task{}).Select("id").Where("case_id = ?", id)

		if err := tx.Where("task_id IN (?)", taskIDs).Delete(&models.TaskEvidence{}).Error; err != nil {
			return err
		}

		if err := tx.Where("case_id = ?", id).Delete(&models.Task{}).Error; err != nil {
			return err
		}

		if err := tx.Where("case_id = ?", id).Delete(&models.Deadline{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Case{}, id).Error
	})
}
