package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Informasjonsforvaltning/fdk-organization-bff/internal/services"
)

type StatusHandler struct {
	status services.StatusService
}

func NewStatusHandler(status services.StatusService) *StatusHandler {
	return &StatusHandler{status: status}
}

// GET /ping
func (h *StatusHandler) Ping(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// GET /ready
func (h *StatusHandler) Ready(c *gin.Context) {
	status := h.status.Ready(c.Request.Context())
	if !status.Ready() {
		c.JSON(http.StatusServiceUnavailable, status)
		return
	}
	if !status.Healthy() {
		c.JSON(http.StatusOK, status)
		return
	}
	c.String(http.StatusOK, "OK")
}
