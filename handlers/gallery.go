package handlers

import (
	"net/http"

	"majestea-api/store"

	"github.com/gin-gonic/gin"
)

type GalleryHandler struct {
	store store.Store
}

func NewGalleryHandler(s store.Store) *GalleryHandler {
	return &GalleryHandler{store: s}
}

// List returns every gallery image.
func (h *GalleryHandler) List(c *gin.Context) {
	images, err := h.store.GalleryImages(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to load gallery"})
		return
	}
	c.JSON(http.StatusOK, images)
}

// ListByCategory filters images on their category field. An unknown category
// is not an error, just an empty array.
func (h *GalleryHandler) ListByCategory(c *gin.Context) {
	images, err := h.store.GalleryImagesByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to load gallery"})
		return
	}
	c.JSON(http.StatusOK, images)
}
