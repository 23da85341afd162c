package handlers

import (
	"net/http"

	"tutormatch/utils"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	Monitor *utils.HealthMonitor
}

// StatusHandler handles GET /health with the latest dependency snapshot.
func (h *HealthHandler) StatusHandler(c *gin.Context) {
	if h.Monitor == nil {
		c.JSON(http.StatusOK, utils.HealthStatus{Status: "ok", Dependencies: map[string]bool{}})
		return
	}
	status := h.Monitor.Status()
	code := http.StatusOK
	if status.Status != "ok" {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}

// WrongMethodHandler answers requests whose path exists under another method.
func WrongMethodHandler(c *gin.Context) {
	utils.JSONError(c, utils.MethodNotAllowedError("Wrong request method"))
}

func NotFoundHandler(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
}
