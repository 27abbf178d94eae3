package repository

import (
	"github.com/legalpro/case-management-api/internal/models"
	"gorm.io/gorm"
)

// GormTeamMemberRepository is a GORM implementation of TeamMemberRepository
type GormTeamMemberRepository struct {
	db *gorm.DB
}

// NewTeamMemberRepository creates a new TeamMemberRepository
func NewTeamMemberRepository(db *gorm.DB) TeamMemberRepository {
	return &GormTeamMemberRepository{db: db}
}

// Create creates a new team member
func (r *GormTeamMemberRepository) Create(member *models.TeamMember) error {
	return r.db.Create(member).Error
}

// FindByID finds a team member by ID
func (r *GormTeamMemberRepository) FindByID(id uint64) (*models.TeamMember, error) {
	var member models.TeamMember
	if err := r.db.First(&member, id).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// List retrieves all team members, most recently created first
func (r *GormTeamMemberRepository) List() ([]models.TeamMember, error) {
	members := make([]models.TeamMember, 0)
	if err := r.db.Order("id DESC").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// Delete deletes a team member. Tasks assigned to the member keep existing
// with their assignment cleared.
func (r *GormTeamMemberRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Task{}).
			Where("assigned_to_id = ?", id).
			Update("assigned_to_id", nil).Error; err != nil {
			return err
		}

		return tx.Delete(&models.TeamMember{}, id).Error
	})
}
