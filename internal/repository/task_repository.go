package repository

import (
	"github.com/legalpro/case-management-api/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// FindByID finds a task by ID
func (r *GormTaskRepository) FindByID(id uint64) (*models.Task, error) {
	var task models.Task
	if err := r.db.First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// List retrieves tasks matching the filter, ordered by due date ascending
func (r *GormTaskRepository) List(filter TaskFilter) ([]models.Task, error) {
	tasks := make([]models.Task, 0)

	query := r.db.Model(&models.Task{})
	if filter.CaseID != nil {
		query = query.Where("case_id = ?", *filter.CaseID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	if err := query.Order("due_date ASC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update updates a task
func (r *GormTaskRepository) Update(task *models.Task) error {
	return r.db.Save(task).Error
}

// Delete deletes a task and its evidences in a transaction
func (r *GormTaskRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", id).Delete(&models.TaskEvidence{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Task{}, id).Error
	})
}

// AddEvidence attaches an evidence record to a task
func (r *GormTaskRepository) AddEvidence(evidence *models.TaskEvidence) error {
	return r.db.Create(evidence).Error
}

// ListEvidences retrieves a task's evidences, most recent first
func (r *GormTaskRepository) ListEvidences(taskID uint64) ([]models.TaskEvidence, error) {
	evidences := make([]models.TaskEvidence, 0)
	if err := r.db.Where("task_id = ?", taskID).
		Order("id DESC").
		Find(&evidences).Error; err != nil {
		return nil, err
	}
	return evidences, nil
}
