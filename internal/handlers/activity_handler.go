package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/iinterntechnologies-oss/crm-tool/internal/models"
	"github.com/iinterntechnologies-oss/crm-tool/internal/services"
)

// ActivityHandler handles HTTP requests for the activity feed
type ActivityHandler struct {
	service *services.ActivityService
	logger  *logrus.Logger
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(service *services.ActivityService, logger *logrus.Logger) *ActivityHandler {
	return &ActivityHandler{service: service, logger: logger}
}

// List returns the most recent activities
// GET /activities?limit=50
func (h *ActivityHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	activities, err := h.service.List(c.Request.Context(), limit)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list activities")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, activities)
}

// Create appends an activity supplied by the caller
// POST /activities
func (h *ActivityHandler) Create(c *gin.Context) {
	var req models.ActivityCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	activity, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, activity)
}

// Delete removes an activity
// DELETE /activities/:id
func (h *ActivityHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Activity deleted"})
}
