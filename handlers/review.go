package handlers

import (
	"net/http"

	"majestea-api/models"
	"majestea-api/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateReviewRequest allows an empty name: anonymous reviews get a "?"
// avatar instead of being rejected.
type CreateReviewRequest struct {
	Name    string `json:"name"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

type ReviewHandler struct {
	store store.Store
}

func NewReviewHandler(s store.Store) *ReviewHandler {
	return &ReviewHandler{store: s}
}

// List returns every stored review, in storage order.
func (h *ReviewHandler) List(c *gin.Context) {
	reviews, err := h.store.Reviews(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to load reviews"})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// Create stores a customer review. The rating bounds are enforced by the
// binding tags, so an out-of-range rating never reaches the store. The date
// is a display string, not a timestamp; new reviews just say "today".
func (h *ReviewHandler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	review := models.Review{
		ID:      uuid.NewString(),
		Name:    req.Name,
		Rating:  req.Rating,
		Date:    "Aujourd'hui",
		Comment: req.Comment,
		Avatar:  models.AvatarFor(req.Name),
	}

	if err := h.store.CreateReview(c.Request.Context(), &review); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to create review"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"review":  review,
	})
}
