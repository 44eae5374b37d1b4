package handlers

import (
	"errors"
	"net/http"

	"majestea-api/store"

	"github.com/gin-gonic/gin"
)

type MenuHandler struct {
	store store.Store
}

func NewMenuHandler(s store.Store) *MenuHandler {
	return &MenuHandler{store: s}
}

// List returns every menu category with its embedded items, in storage order.
func (h *MenuHandler) List(c *gin.Context) {
	categories, err := h.store.MenuCategories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to load menu"})
		return
	}
	c.JSON(http.StatusOK, categories)
}

// GetCategory returns one category by its hand-assigned id (e.g. "mains").
func (h *MenuHandler) GetCategory(c *gin.Context) {
	category, err := h.store.MenuCategoryByID(c.Request.Context(), c.Param("categoryId"))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Category not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to load category"})
		return
	}
	c.JSON(http.StatusOK, category)
}
