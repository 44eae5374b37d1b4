package handlers_test

import (
	"net/http"
	"testing"

	"majestea-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRestaurantInfo(t *testing.T) {
	r, _ := newSeededServer(t)

	w := doRequest(t, r, http.MethodGet, "/api/restaurant", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var info models.RestaurantInfo
	decodeJSON(t, w, &info)
	assert.Equal(t, "Majestea", info.Name)
	assert.Equal(t, 4.7, info.GoogleRating)
	assert.Len(t, info.Hours, 7)
}

func TestGetRestaurantInfoEmptyStore(t *testing.T) {
	r, _ := newTestServer(t)

	w := doRequest(t, r, http.MethodGet, "/api/restaurant", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
