package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthResponse reports process liveness.
type HealthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// GetHealth serves the liveness probe.
func GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "OK",
		Message:   "TubeView API is running",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// GetHome serves the root endpoint directory.
func GetHome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to the TubeView API",
		"endpoints": gin.H{
			"auth":   "/api/v1/auth",
			"videos": "/api/v1/videos",
			"health": "/health",
		},
	})
}
