package services

import (
	"fmt"

	"github.com/legalpro/case-management-api/internal/models"
	"github.com/legalpro/case-management-api/internal/repository"
)

// ClientService handles client business logic
type ClientService struct {
	clientRepo repository.ClientRepository
}

// NewClientService creates a new ClientService
func NewClientService(clientRepo repository.ClientRepository) *ClientService {
	return &ClientService{clientRepo: clientRepo}
}

// CreateClientInput represents input for creating a client
type CreateClientInput struct {
	FullName string
	Email    *string
	Phone    *string
}

// CreateClient creates a new client
func (s *ClientService) CreateClient(input CreateClientInput) (*models.Client, error) {
	client := &models.Client{
		FullName: input.FullName,
		Email:    input.Email,
		Phone:    input.Phone,
	}

	if err := s.clientRepo.Create(client); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// ListClients returns all clients, most recently created first
func (s *ClientService) ListClients() ([]models.Client, error) {
	clients, err := s.clientRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}
