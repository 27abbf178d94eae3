package dto

import (
	"github.com/legalpro/case-management-api/internal/models"
	"github.com/legalpro/case-management-api/internal/services"
)

// CreateClientRequest is the payload for POST /clients
type CreateClientRequest struct {
	FullName string  `json:"full_name" binding:"required"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
}

// ToInput converts the request to a service input
func (r CreateClientRequest) ToInput() services.CreateClientInput {
	return services.CreateClientInput{
		FullName: r.FullName,
		Email:    r.Email,
		Phone:    r.Phone,
	}
}

// CreateTeamMemberRequest is the payload for POST /team-members
type CreateTeamMemberRequest struct {
	FullName string  `json:"full_name" binding:"required"`
	Role     *string `json:"role"`
}

// ToInput converts the request to a service input
func (r CreateTeamMemberRequest) ToInput() services.CreateTeamMemberInput {
	return services.CreateTeamMemberInput{
		FullName: r.FullName,
		Role:     r.Role,
	}
}

// PortalClientCasesResponse is the read-only portal view of a client and
// their cases
type PortalClientCasesResponse struct {
	Client models.Client `json:"client"`
	Cases  []models.Case `json:"cases"`
}
