package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/legalpro/case-management-api/internal/database"
	"github.com/legalpro/case-management-api/internal/models"
	"github.com/legalpro/case-management-api/internal/validation"
)

// HandlerTestSuite spins up the full router against an in-memory SQLite
// database for each test.
type HandlerTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
}

// SetupTest runs before each test
func (suite *HandlerTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	suite.Require().NoError(err)

	suite.Require().NoError(database.Migrate(suite.db))

	gin.SetMode(gin.TestMode)
	suite.Require().NoError(validation.Register())

	suite.router = gin.New()
	NewHandlers(suite.db).Register(suite.router)
}

// TearDownTest runs after each test
func (suite *HandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

// request performs an HTTP request against the test router
func (suite *HandlerTestSuite) request(method, url string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, url, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) get(url string) *httptest.ResponseRecorder {
	return suite.request(http.MethodGet, url, nil)
}

func (suite *HandlerTestSuite) post(url string, body interface{}) *httptest.ResponseRecorder {
	return suite.request(http.MethodPost, url, body)
}

func (suite *HandlerTestSuite) put(url string) *httptest.ResponseRecorder {
	return suite.request(http.MethodPut, url, nil)
}

// decode unmarshals a response body into out
func (suite *HandlerTestSuite) decode(w *httptest.ResponseRecorder, out interface{}) {
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), out))
}

// Seed helpers

func (suite *HandlerTestSuite) createTestClient(fullName string) *models.Client {
	client := &models.Client{FullName: fullName}
	suite.Require().NoError(suite.db.Create(client).Error)
	return client
}

func (suite *HandlerTestSuite) createTestMember(fullName string) *models.TeamMember {
	member := &models.TeamMember{FullName: fullName}
	suite.Require().NoError(suite.db.Create(member).Error)
	return member
}

func (suite *HandlerTestSuite) createTestCase(caseNumber string, clientID uint64, status models.CaseStatus) *models.Case {
	c := &models.Case{
		CaseNumber: caseNumber,
		ClientID:   clientID,
		CaseType:   "Civil",
		StartDate:  "2024-01-10",
		Status:     status,
	}
	suite.Require().NoError(suite.db.Create(c).Error)
	return c
}

func (suite *HandlerTestSuite) createTestTask(caseID uint64, title, dueDate string, status models.TaskStatus) *models.Task {
	task := &models.Task{
		CaseID:   caseID,
		Title:    title,
		Priority: 2,
		DueDate:  dueDate,
		Status:   status,
	}
	suite.Require().NoError(suite.db.Create(task).Error)
	return task
}

func (suite *HandlerTestSuite) createTestDeadline(caseID uint64, title, dueDate string) *models.Deadline {
	deadline := &models.Deadline{
		CaseID:           caseID,
		Title:            title,
		DueDate:          dueDate,
		Kind:             "Audiencia",
		RemindDaysBefore: 3,
		Status:           models.DeadlineStatusPending,
	}
	suite.Require().NoError(suite.db.Create(deadline).Error)
	return deadline
}
