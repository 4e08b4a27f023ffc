package handlers

import (
	"net/http"

	"raisedesk/utils"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	Monitor *utils.HealthMonitor
}

func NewHealthHandler(m *utils.HealthMonitor) *HealthHandler {
	return &HealthHandler{Monitor: m}
}

// HealthHandler reports the last snapshot; 503 when any backing service is down.
func (h *HealthHandler) HealthHandler(c *gin.Context) {
	status := h.Monitor.Status()
	code := http.StatusOK
	state := "ok"
	if !status.Healthy() {
		code = http.StatusServiceUnavailable
		state = "degraded"
	}
	c.JSON(code, gin.H{
		"status":    state,
		"message":   "Hi, I'm raisedesk",
		"services":  status.Services,
		"checkedAt": status.CheckedAt,
	})
}
