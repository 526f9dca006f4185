package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/iinterntechnologies-oss/crm-tool/internal/models"
	"github.com/iinterntechnologies-oss/crm-tool/internal/services"
)

// CustomerHandler handles HTTP requests for customers
type CustomerHandler struct {
	service *services.CustomerService
	logger  *logrus.Logger
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(service *services.CustomerService, logger *logrus.Logger) *CustomerHandler {
	return &CustomerHandler{service: service, logger: logger}
}

// List returns all customers
// GET /customers
func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.service.List(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to list customers")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

// Get returns a customer by id
// GET /customers/:id
func (h *CustomerHandler) Get(c *gin.Context) {
	customer, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// Create adds a customer directly, outside the client completion flow
// POST /customers
func (h *CustomerHandler) Create(c *gin.Context) {
	var req models.CustomerCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	customer, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.logger.WithError(err).Error("Failed to create customer")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, customer)
}

// Update applies a partial update to a customer
// PATCH /customers/:id
func (h *CustomerHandler) Update(c *gin.Context) {
	var req models.CustomerUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	customer, err := h.service.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// Delete removes a customer
// DELETE /customers/:id
func (h *CustomerHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted"})
}
