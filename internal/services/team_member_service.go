package services

import (
	"fmt"

	"github.com/legalpro/case-management-api/internal/models"
	"github.com/legalpro/case-management-api/internal/repository"
)

// TeamMemberService handles team member business logic
type TeamMemberService struct {
	memberRepo repository.TeamMemberRepository
}

// NewTeamMemberService creates a new TeamMemberService
func NewTeamMemberService(memberRepo repository.TeamMemberRepository) *TeamMemberService {
	return &TeamMemberService{memberRepo: memberRepo}
}

// CreateTeamMemberInput represents input for creating a team member
type CreateTeamMemberInput struct {
	FullName string
	Role     *string
}

// CreateTeamMember creates a new team member
func (s *TeamMemberService) CreateTeamMember(input CreateTeamMemberInput) (*models.TeamMember, error) {
	member := &models.TeamMember{
		FullName: input.FullName,
		Role:     input.Role,
	}

	if err := s.memberRepo.Create(member); err != nil {
		return nil, fmt.Errorf("failed to create team member: %w", err)
	}

	return member, nil
}

// ListTeamMembers returns all team members, most recently created first
func (s *TeamMemberService) ListTeamMembers() ([]models.TeamMember, error) {
	members, err := s.memberRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}
	return members, nil
}
