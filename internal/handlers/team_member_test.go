package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/legalpro/case-management-api/internal/models"
)

type TeamMemberHandlerTestSuite struct {
	HandlerTestSuite
}

func (suite *TeamMemberHandlerTestSuite) TestCreateTeamMember_RoundTrip() {
	role := "Paralegal"
	w := suite.post("/team-members", map[string]interface{}{
		"full_name": "Luis Soto",
		"role":      role,
	})

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var member models.TeamMember
	suite.decode(w, &member)
	assert.Equal(suite.T(), uint64(1), member.ID)
	assert.Equal(suite.T(), "Luis Soto", member.FullName)
	suite.Require().NotNil(member.Role)
	assert.Equal(suite.T(), role, *member.Role)
}

func (suite *TeamMemberHandlerTestSuite) TestCreateTeamMember_MissingFullName() {
	w := suite.post("/team-members", map[string]interface{}{"role": "Paralegal"})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *TeamMemberHandlerTestSuite) TestListTeamMembers_MostRecentFirst() {
	suite.createTestMember("First")
	suite.createTestMember("Second")

	w := suite.get("/team-members")
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var members []models.TeamMember
	suite.decode(w, &members)
	suite.Require().Len(members, 2)
	assert.Equal(suite.T(), "Second", members[0].FullName)
	assert.Equal(suite.T(), "First", members[1].FullName)
}

func (suite *TeamMemberHandlerTestSuite) TestListTeamMembers_Empty() {
	w := suite.get("/team-members")
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Equal(suite.T(), "[]", w.Body.String())
}

func TestTeamMemberHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TeamMemberHandlerTestSuite))
}
