package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/iinterntechnologies-oss/crm-tool/internal/services"
)

// StatsHandler serves the dashboard aggregate
type StatsHandler struct {
	service *services.StatsService
	logger  *logrus.Logger
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(service *services.StatsService, logger *logrus.Logger) *StatsHandler {
	return &StatsHandler{service: service, logger: logger}
}

// Get returns the dashboard stats
// GET /stats
func (h *StatsHandler) Get(c *gin.Context) {
	stats, err := h.service.Get(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to collect stats")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
