package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/iinterntechnologies-oss/crm-tool/internal/models"
	"github.com/iinterntechnologies-oss/crm-tool/internal/services"
)

// ClientHandler handles HTTP requests for clients
type ClientHandler struct {
	service *services.ClientService
	logger  *logrus.Logger
}

// NewClientHandler creates a new client handler
func NewClientHandler(service *services.ClientService, logger *logrus.Logger) *ClientHandler {
	return &ClientHandler{service: service, logger: logger}
}

// List returns all clients
// GET /clients
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.service.List(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to list clients")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, clients)
}

// Get returns a client by id
// GET /clients/:id
func (h *ClientHandler) Get(c *gin.Context) {
	client, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

// Create adds a new client
// POST /clients
func (h *ClientHandler) Create(c *gin.Context) {
	var req models.ClientCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	client, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.logger.WithError(err).Error("Failed to create client")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, client)
}

// Update applies a partial update to a client
// PATCH /clients/:id
func (h *ClientHandler) Update(c *gin.Context) {
	var req models.ClientUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	client, err := h.service.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

// Delete removes a client and its dependents
// DELETE /clients/:id
func (h *ClientHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Client deleted"})
}

// Complete marks a client's project done and snapshots it as a customer
// POST /clients/:id/complete
func (h *ClientHandler) Complete(c *gin.Context) {
	customer, err := h.service.Complete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.logger.WithError(err).WithField("client_id", c.Param("id")).Error("Failed to complete client")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, customer)
}

// GenerateOnboardingTasks expands the onboarding checklist for a client
// POST /clients/:id/onboarding-tasks
func (h *ClientHandler) GenerateOnboardingTasks(c *gin.Context) {
	var req models.OnboardClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	tasks, err := h.service.GenerateOnboardingTasks(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.logger.WithError(err).WithField("client_id", c.Param("id")).Error("Failed to generate onboarding tasks")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tasks)
}
