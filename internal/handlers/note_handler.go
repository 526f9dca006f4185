package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/iinterntechnologies-oss/crm-tool/internal/models"
	"github.com/iinterntechnologies-oss/crm-tool/internal/services"
)

// NoteHandler handles HTTP requests for notes
type NoteHandler struct {
	service *services.NoteService
	logger  *logrus.Logger
}

// NewNoteHandler creates a new note handler
func NewNoteHandler(service *services.NoteService, logger *logrus.Logger) *NoteHandler {
	return &NoteHandler{service: service, logger: logger}
}

// List returns notes for a parent kind, optionally narrowed to one row
// GET /notes?related_to=client&related_id=...
func (h *NoteHandler) List(c *gin.Context) {
	relatedTo := c.Query("related_to")
	if relatedTo == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "related_to query parameter is required"})
		return
	}

	notes, err := h.service.List(c.Request.Context(), relatedTo, c.Query("related_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, notes)
}

// Get returns a note by id
// GET /notes/:id
func (h *NoteHandler) Get(c *gin.Context) {
	note, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}

// Create adds a new note
// POST /notes
func (h *NoteHandler) Create(c *gin.Context) {
	var req models.NoteCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	note, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, note)
}

// Update applies a partial update to a note
// PATCH /notes/:id
func (h *NoteHandler) Update(c *gin.Context) {
	var req models.NoteUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	note, err := h.service.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}

// Delete removes a note
// DELETE /notes/:id
func (h *NoteHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Note deleted"})
}
