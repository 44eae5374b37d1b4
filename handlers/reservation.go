package handlers

import (
	"errors"
	"net/http"
	"time"

	"majestea-api/models"
	"majestea-api/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email"`
	Phone   string `json:"phone" binding:"required"`
	Date    string `json:"date" binding:"required"`
	Time    string `json:"time" binding:"required"`
	Guests  string `json:"guests" binding:"required"`
	Message string `json:"message"`
}

type ReservationHandler struct {
	store store.Store
}

func NewReservationHandler(s store.Store) *ReservationHandler {
	return &ReservationHandler{store: s}
}

// Create stores a new reservation request. The server owns id, status and
// created_at — anything the client sends for those fields is ignored.
func (h *ReservationHandler) Create(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	reservation := models.Reservation{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Date:      req.Date,
		Time:      req.Time,
		Guests:    req.Guests,
		Message:   req.Message,
		Status:    models.StatusPending,
		CreatedAt: time.Now().UTC(),
	}

	if err := h.store.CreateReservation(c.Request.Context(), &reservation); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to create reservation"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"message":     "Votre demande de réservation a été envoyée avec succès !",
		"reservation": reservation,
	})
}

// List returns every reservation, newest first (admin view).
func (h *ReservationHandler) List(c *gin.Context) {
	reservations, err := h.store.Reservations(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to load reservations"})
		return
	}
	c.JSON(http.StatusOK, reservations)
}

// Get returns a single reservation by id.
func (h *ReservationHandler) Get(c *gin.Context) {
	reservation, err := h.store.ReservationByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Reservation not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to load reservation"})
		return
	}
	c.JSON(http.StatusOK, reservation)
}

// UpdateStatus sets a reservation's status. The new status may arrive as a
// ?status= query parameter or a {"status": ...} body; either way it must be
// pending, confirmed or cancelled. Transitions are not ordered — see
// models.ReservationStatus.
func (h *ReservationHandler) UpdateStatus(c *gin.Context) {
	status := models.ReservationStatus(c.Query("status"))
	if status == "" {
		var req struct {
			Status models.ReservationStatus `json:"status"`
		}
		if err := c.ShouldBindJSON(&req); err == nil {
			status = req.Status
		}
	}

	if !status.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid status"})
		return
	}

	err := h.store.UpdateReservationStatus(c.Request.Context(), c.Param("id"), status)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Reservation not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to update reservation"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Reservation status updated to " + string(status),
	})
}
