package handlers

import (
	"net/http"
	"time"

	"majestea-api/store"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	store store.Store
}

func NewHealthHandler(s store.Store) *HealthHandler {
	return &HealthHandler{store: s}
}

// Check probes the database and always answers 200: a degraded body lets
// monitoring tell "up but disconnected" apart from "down".
func (h *HealthHandler) Check(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusOK, gin.H{
			"status":   "unhealthy",
			"database": "disconnected",
			"error":    err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"database":  "connected",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
