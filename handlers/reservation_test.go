package handlers_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"majestea-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReservationForcesPending(t *testing.T) {
	r, s := newTestServer(t)

	// The client-supplied status, id and created_at must all be ignored.
	w := doRequest(t, r, http.MethodPost, "/api/reservations", map[string]any{
		"name":       "Claire Dubois",
		"phone":      "06 12 34 56 78",
		"date":       "2026-09-12",
		"time":       "19:30",
		"guests":     "4",
		"status":     "confirmed",
		"id":         "i-brought-my-own-id",
		"created_at": "1999-01-01T00:00:00Z",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		Success     bool               `json:"success"`
		Message     string             `json:"message"`
		Reservation models.Reservation `json:"reservation"`
	}
	decodeJSON(t, w, &body)
	assert.True(t, body.Success)
	assert.NotEmpty(t, body.Message)
	assert.Equal(t, models.StatusPending, body.Reservation.Status)
	assert.NotEmpty(t, body.Reservation.ID)
	assert.NotEqual(t, "i-brought-my-own-id", body.Reservation.ID)
	assert.WithinDuration(t, time.Now(), body.Reservation.CreatedAt, time.Minute)

	stored, err := s.ReservationByID(context.Background(), body.Reservation.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, stored.Status)
}

func TestCreateReservationMissingFields(t *testing.T) {
	r, s := newTestServer(t)

	w := doRequest(t, r, http.MethodPost, "/api/reservations", map[string]any{
		"name": "Claire Dubois",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	reservations, err := s.Reservations(context.Background())
	require.NoError(t, err)
	assert.Empty(t, reservations)
}

func TestListReservationsNewestFirst(t *testing.T) {
	r, s := newTestServer(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"first", "second", "third"} {
		require.NoError(t, s.CreateReservation(ctx, &models.Reservation{
			ID:        id,
			Name:      "Guest " + id,
			Phone:     "06 00 00 00 00",
			Date:      "2026-09-12",
			Time:      "20:00",
			Guests:    "2",
			Status:    models.StatusPending,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}

	w := doRequest(t, r, http.MethodGet, "/api/reservations", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var reservations []models.Reservation
	decodeJSON(t, w, &reservations)
	require.Len(t, reservations, 3)
	assert.Equal(t, "third", reservations[0].ID)
	assert.Equal(t, "second", reservations[1].ID)
	assert.Equal(t, "first", reservations[2].ID)
}

func TestGetReservation(t *testing.T) {
	r, s := newTestServer(t)

	require.NoError(t, s.CreateReservation(context.Background(), &models.Reservation{
		ID:        "res-1",
		Name:      "Claire Dubois",
		Phone:     "06 12 34 56 78",
		Date:      "2026-09-12",
		Time:      "19:30",
		Guests:    "4",
		Status:    models.StatusPending,
		CreatedAt: time.Now().UTC(),
	}))

	w := doRequest(t, r, http.MethodGet, "/api/reservations/res-1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var reservation models.Reservation
	decodeJSON(t, w, &reservation)
	assert.Equal(t, "Claire Dubois", reservation.Name)

	w = doRequest(t, r, http.MethodGet, "/api/reservations/res-2", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateReservationStatus(t *testing.T) {
	r, s := newTestServer(t)
	ctx := context.Background()

	require.NoError(t, s.CreateReservation(ctx, &models.Reservation{
		ID:        "res-1",
		Name:      "Claire Dubois",
		Phone:     "06 12 34 56 78",
		Date:      "2026-09-12",
		Time:      "19:30",
		Guests:    "4",
		Status:    models.StatusPending,
		CreatedAt: time.Now().UTC(),
	}))

	w := doRequest(t, r, http.MethodPatch, "/api/reservations/res-1/status?status=confirmed", nil)
	require.Equal(t, http.StatusOK, w.Code)

	stored, err := s.ReservationByID(ctx, "res-1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, stored.Status)

	// Also accepted as a JSON body; any valid value may overwrite any other.
	w = doRequest(t, r, http.MethodPatch, "/api/reservations/res-1/status", map[string]string{
		"status": "cancelled",
	})
	require.Equal(t, http.StatusOK, w.Code)

	stored, err = s.ReservationByID(ctx, "res-1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, stored.Status)
}

func TestUpdateReservationStatusInvalid(t *testing.T) {
	r, s := newTestServer(t)
	ctx := context.Background()

	require.NoError(t, s.CreateReservation(ctx, &models.Reservation{
		ID:        "res-1",
		Name:      "Claire Dubois",
		Phone:     "06 12 34 56 78",
		Date:      "2026-09-12",
		Time:      "19:30",
		Guests:    "4",
		Status:    models.StatusPending,
		CreatedAt: time.Now().UTC(),
	}))

	w := doRequest(t, r, http.MethodPatch, "/api/reservations/res-1/status?status=seated", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	stored, err := s.ReservationByID(ctx, "res-1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, stored.Status)
}

func TestUpdateReservationStatusNotFound(t *testing.T) {
	r, _ := newTestServer(t)

	w := doRequest(t, r, http.MethodPatch, "/api/reservations/res-42/status?status=confirmed", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
