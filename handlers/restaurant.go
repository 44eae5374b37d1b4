package handlers

import (
	"errors"
	"net/http"

	"majestea-api/store"

	"github.com/gin-gonic/gin"
)

type RestaurantHandler struct {
	store store.Store
}

func NewRestaurantHandler(s store.Store) *RestaurantHandler {
	return &RestaurantHandler{store: s}
}

// GetInfo returns the restaurant's info document. Seeding guarantees it
// exists, so a 404 here means the database was wiped out from under us.
func (h *RestaurantHandler) GetInfo(c *gin.Context) {
	info, err := h.store.RestaurantInfo(c.Request.Context())
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Restaurant info not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to load restaurant info"})
		return
	}
	c.JSON(http.StatusOK, info)
}
