package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/iinterntechnologies-oss/crm-tool/internal/models"
	"github.com/iinterntechnologies-oss/crm-tool/internal/services"
)

// GoalHandler handles HTTP requests for revenue goals
type GoalHandler struct {
	service *services.GoalService
	logger  *logrus.Logger
}

// NewGoalHandler creates a new goal handler
func NewGoalHandler(service *services.GoalService, logger *logrus.Logger) *GoalHandler {
	return &GoalHandler{service: service, logger: logger}
}

// List returns all goals
// GET /goals
func (h *GoalHandler) List(c *gin.Context) {
	goals, err := h.service.List(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to list goals")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, goals)
}

// Get returns a goal by id
// GET /goals/:id
func (h *GoalHandler) Get(c *gin.Context) {
	goal, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

// Create adds a new goal
// POST /goals
func (h *GoalHandler) Create(c *gin.Context) {
	var req models.GoalCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	goal, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.logger.WithError(err).Error("Failed to create goal")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, goal)
}

// Update applies a partial update to a goal
// PATCH /goals/:id
func (h *GoalHandler) Update(c *gin.Context) {
	var req models.GoalUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	goal, err := h.service.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

// Delete removes a goal
// DELETE /goals/:id
func (h *GoalHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Goal deleted"})
}
