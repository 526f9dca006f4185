package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/iinterntechnologies-oss/crm-tool/internal/models"
	"github.com/iinterntechnologies-oss/crm-tool/internal/services"
)

// LeadHandler handles HTTP requests for leads
type LeadHandler struct {
	service *services.LeadService
	logger  *logrus.Logger
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(service *services.LeadService, logger *logrus.Logger) *LeadHandler {
	return &LeadHandler{service: service, logger: logger}
}

// List returns all leads
// GET /leads
func (h *LeadHandler) List(c *gin.Context) {
	leads, err := h.service.List(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to list leads")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, leads)
}

// Get returns a lead by id
// GET /leads/:id
func (h *LeadHandler) Get(c *gin.Context) {
	lead, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lead)
}

// Create adds a new lead
// POST /leads
func (h *LeadHandler) Create(c *gin.Context) {
	var req models.LeadCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	lead, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.logger.WithError(err).Error("Failed to create lead")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, lead)
}

// Update applies a partial update to a lead
// PATCH /leads/:id
func (h *LeadHandler) Update(c *gin.Context) {
	var req models.LeadUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	lead, err := h.service.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lead)
}

// Delete removes a lead and its dependents
// DELETE /leads/:id
func (h *LeadHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Lead deleted"})
}

// Convert turns a lead into a client with generated onboarding tasks
// POST /leads/:id/convert
func (h *LeadHandler) Convert(c *gin.Context) {
	var req models.ConvertLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	client, tasks, err := h.service.Convert(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.logger.WithError(err).WithField("lead_id", c.Param("id")).Error("Failed to convert lead")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"client":          client,
		"tasks_generated": len(tasks),
	})
}
