package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/legalpro/case-management-api/internal/models"
)

type ClientHandlerTestSuite struct {
	HandlerTestSuite
}

func (suite *ClientHandlerTestSuite) TestCreateClient_RoundTrip() {
	email := "ana@example.com"
	w := suite.post("/clients", map[string]interface{}{
		"full_name": "Ana Ruiz",
		"email":     email,
	})

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var client models.Client
	suite.decode(w, &client)
	assert.Equal(suite.T(), uint64(1), client.ID)
	assert.Equal(suite.T(), "Ana Ruiz", client.FullName)
	suite.Require().NotNil(client.Email)
	assert.Equal(suite.T(), email, *client.Email)
	assert.Nil(suite.T(), client.Phone)
}

func (suite *ClientHandlerTestSuite) TestCreateClient_MissingFullName() {
	w := suite.post("/clients", map[string]interface{}{"email": "x@example.com"})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ClientHandlerTestSuite) TestListClients_MostRecentFirst() {
	suite.createTestClient("First")
	suite.createTestClient("Second")
	suite.createTestClient("Third")

	w := suite.get("/clients")
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var clients []models.Client
	suite.decode(w, &clients)
	suite.Require().Len(clients, 3)
	assert.Equal(suite.T(), "Third", clients[0].FullName)
	assert.Equal(suite.T(), "Second", clients[1].FullName)
	assert.Equal(suite.T(), "First", clients[2].FullName)
}

func (suite *ClientHandlerTestSuite) TestListClients_Empty() {
	w := suite.get("/clients")
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Equal(suite.T(), "[]", w.Body.String())
}

func TestClientHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ClientHandlerTestSuite))
}
