package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/legalpro/case-management-api/internal/repository"
	"github.com/legalpro/case-management-api/internal/services"
)

// Handlers bundles all HTTP handlers of the API
type Handlers struct {
	Clients     *ClientHandler
	TeamMembers *TeamMemberHandler
	Cases       *CaseHandler
	Deadlines   *DeadlineHandler
	Tasks       *TaskHandler
	Portal      *PortalHandler
}

// NewHandlers wires repositories, services and handlers around the given
// database handle
func NewHandlers(db *gorm.DB) Handlers {
	clientRepo := repository.NewClientRepository(db)
	memberRepo := repository.NewTeamMemberRepository(db)
	caseRepo := repository.NewCaseRepository(db)
	deadlineRepo := repository.NewDeadlineRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	caseService := services.NewCaseService(caseRepo, clientRepo, deadlineRepo, taskRepo)

	return Handlers{
		Clients:     NewClientHandler(services.NewClientService(clientRepo)),
		TeamMembers: NewTeamMemberHandler(services.NewTeamMemberService(memberRepo)),
		Cases:       NewCaseHandler(caseService),
		Deadlines:   NewDeadlineHandler(services.NewDeadlineService(deadlineRepo, caseRepo)),
		Tasks:       NewTaskHandler(services.NewTaskService(taskRepo, caseRepo, memberRepo)),
		Portal:      NewPortalHandler(caseService),
	}
}

// Register mounts all routes on the router
func (h Handlers) Register(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.POST("/clients", h.Clients.CreateClient)
	r.GET("/clients", h.Clients.ListClients)

	r.POST("/team-members", h.TeamMembers.CreateTeamMember)
	r.GET("/team-members", h.TeamMembers.ListTeamMembers)

	r.POST("/cases", h.Cases.CreateCase)
	r.GET("/cases", h.Cases.ListCases)
	r.GET("/cases/:id", h.Cases.GetCaseDetail)

	r.POST("/deadlines", h.Deadlines.CreateDeadline)
	r.GET("/deadlines", h.Deadlines.ListDeadlines)

	r.POST("/tasks", h.Tasks.CreateTask)
	r.GET("/tasks", h.Tasks.ListTasks)
	r.GET("/tasks/:id", h.Tasks.GetTaskDetail)
	r.PUT("/tasks/:id/status/:new_status", h.Tasks.UpdateTaskStatus)

	r.POST("/task-evidences", h.Tasks.AddTaskEvidence)

	portal := r.Group("/portal")
	{
		portal.GET("/clients/:id/cases", h.Portal.ClientCases)
		portal.GET("/cases/:id", h.Portal.CaseDetail)
	}
}
