package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/legalpro/case-management-api/internal/dto"
	apierrors "github.com/legalpro/case-management-api/internal/errors"
	"github.com/legalpro/case-management-api/internal/services"
)

type ClientHandler struct {
	clientService *services.ClientService
}

func NewClientHandler(clientService *services.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// CreateClient creates a new client
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	client, err := h.clientService.CreateClient(req.ToInput())
	if err != nil {
		apierrors.InternalError(c, "Failed to create client")
		return
	}

	c.JSON(http.StatusCreated, client)
}

// ListClients returns all clients, most recent first
func (h *ClientHandler) ListClients(c *gin.Context) {
	clients, err := h.clientService.ListClients()
	if err != nil {
		apierrors.InternalError(c, "Failed to list clients")
		return
	}

	c.JSON(http.StatusOK, clients)
}
