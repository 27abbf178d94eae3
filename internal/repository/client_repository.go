package repository

import (
	"errors"

	"github.com/legalpro/case-management-api/internal/models"
	"gorm.io/gorm"
)

// ErrClientHasCases is returned when deleting a client that still owns cases.
var ErrClientHasCases = errors.New("client repository: client has referencing cases")

// GormClientRepository is a GORM implementation of ClientRepository
type GormClientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new ClientRepository
func NewClientRepository(db *gorm.DB) ClientRepository {
	return &GormClientRepository{db: db}
}

// Create creates a new client
func (r *GormClientRepository) Create(client *models.Client) error {
	return r.db.Create(client).Error
}

// FindByID finds a client by ID
func (r *GormClientRepository) FindByID(id uint64) (*models.Client, error) {
	var client models.Client
	if err := r.db.First(&client, id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

// List retrieves all clients, most recently created first
func (r *GormClientRepository) List() ([]models.Client, error) {
	clients := make([]models.Client, 0)
	if err := r.db.Order("id DESC").Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

// Delete deletes a client. Cases restrict deletion: the delete is refused
// while any case references the client.
func (r *GormClientRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Case{}).Where("client_id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrClientHasCases
		}

		return tx.Delete(&models.Client{}, id).Error
	})
}
