package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/legalpro/case-management-api/internal/models"
)

type DeadlineHandlerTestSuite struct {
	HandlerTestSuite
}

func (suite *DeadlineHandlerTestSuite) TestCreateDeadline_Defaults() {
	client := suite.createTestClient("Ana Ruiz")
	c := suite.createTestCase("C-001", client.ID, models.CaseStatusOpen)

	w := suite.post("/deadlines", map[string]interface{}{
		"case_id":  c.ID,
		"title":    "Filing deadline",
		"due_date": "2024-02-01",
		"kind":     "Presentación",
	})

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var deadline models.Deadline
	suite.decode(w, &deadline)
	assert.Equal(suite.T(), uint64(1), deadline.ID)
	assert.Equal(suite.T(), c.ID, deadline.CaseID)
	assert.Equal(suite.T(), "Filing deadline", deadline.Title)
	assert.Equal(suite.T(), "2024-02-01", deadline.DueDate)
	assert.Equal(suite.T(), 3, deadline.RemindDaysBefore)
	assert.Equal(suite.T(), models.DeadlineStatusPending, deadline.Status)
	assert.Nil(suite.T(), deadline.Notes)
}

func (suite *DeadlineHandlerTestSuite) TestCreateDeadline_ExplicitFields() {
	client := suite.createTestClient("Ana Ruiz")
	c := suite.createTestCase("C-001", client.ID, models.CaseStatusOpen)

	notes := "Bring originals"
	w := suite.post("/deadlines", map[string]interface{}{
		"case_id":            c.ID,
		"title":              "Hearing",
		"due_date":           "2024-03-15",
		"kind":               "Audiencia",
		"notes":              notes,
		"remind_days_before": 0,
		"status":             "CUMPLIDO",
	})

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var deadline models.Deadline
	suite.decode(w, &deadline)
	assert.Equal(suite.T(), 0, deadline.RemindDaysBefore)
	assert.Equal(suite.T(), models.DeadlineStatusMet, deadline.Status)
	suite.Require().NotNil(deadline.Notes)
	assert.Equal(suite.T(), notes, *deadline.Notes)
}

func (suite *DeadlineHandlerTestSuite) TestCreateDeadline_UnknownCase() {
	w := suite.post("/deadlines", map[string]interface{}{
		"case_id":  99,
		"title":    "Filing deadline",
		"due_date": "2024-02-01",
		"kind":     "Presentación",
	})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "INVALID_REFERENCE")
}

func (suite *DeadlineHandlerTestSuite) TestCreateDeadline_NegativeRemindDays() {
	client := suite.createTestClient("Ana Ruiz")
	c := suite.createTestCase("C-001", client.ID, models.CaseStatusOpen)

	w := suite.post("/deadlines", map[string]interface{}{
		"case_id":            c.ID,
		"title":              "Filing deadline",
		"due_date":           "2024-02-01",
		"kind":               "Presentación",
		"remind_days_before": -1,
	})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *DeadlineHandlerTestSuite) TestCreateDeadline_InvalidStatus() {
	client := suite.createTestClient("Ana Ruiz")
	c := suite.createTestCase("C-001", client.ID, models.CaseStatusOpen)

	w := suite.post("/deadlines", map[string]interface{}{
		"case_id":  c.ID,
		"title":    "Filing deadline",
		"due_date": "2024-02-01",
		"kind":     "Presentación",
		"status":   "BOGUS",
	})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "INVALID_ENUM_VALUE")
}

func (suite *DeadlineHandlerTestSuite) TestListDeadlines_FilterAndOrdering() {
	client := suite.createTestClient("Ana Ruiz")
	c1 := suite.createTestCase("C-001", client.ID, models.CaseStatusOpen)
	c2 := suite.createTestCase("C-002", client.ID, models.CaseStatusOpen)
	suite.createTestDeadline(c1.ID, "Late", "2024-05-01")
	suite.createTestDeadline(c1.ID, "Early", "2024-01-15")
	suite.createTestDeadline(c2.ID, "Other case", "2024-03-01")

	// No filter: all rows, due date ascending
	w := suite.get("/deadlines")
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	var deadlines []models.Deadline
	suite.decode(w, &deadlines)
	suite.Require().Len(deadlines, 3)
	assert.Equal(suite.T(), "Early", deadlines[0].Title)
	assert.Equal(suite.T(), "Other case", deadlines[1].Title)
	assert.Equal(suite.T(), "Late", deadlines[2].Title)

	// Filter: strict subset of one case
	w = suite.get(fmt.Sprintf("/deadlines?case_id=%d", c1.ID))
	suite.decode(w, &deadlines)
	suite.Require().Len(deadlines, 2)
	assert.Equal(suite.T(), "Early", deadlines[0].Title)
	assert.Equal(suite.T(), "Late", deadlines[1].Title)
}

func (suite *DeadlineHandlerTestSuite) TestListDeadlines_InvalidCaseID() {
	w := suite.get("/deadlines?case_id=abc")
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func TestDeadlineHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DeadlineHandlerTestSuite))
}
