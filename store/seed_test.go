package store

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"majestea-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSeedFillsEmptyStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	Seed(ctx, s, discardLogger())

	info, err := s.RestaurantInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Majestea", info.Name)
	assert.Len(t, info.Features, 3)
	assert.Equal(t, "09:00", info.Hours["monday"].Open)

	categories, err := s.MenuCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 4)

	mains, err := s.MenuCategoryByID(ctx, "mains")
	require.NoError(t, err)
	assert.Len(t, mains.Items, 7)
	for _, item := range mains.Items {
		assert.Equal(t, "mains", item.CategoryID)
	}

	reviews, err := s.Reviews(ctx)
	require.NoError(t, err)
	assert.Len(t, reviews, 5)

	images, err := s.GalleryImages(ctx)
	require.NoError(t, err)
	assert.Len(t, images, 6)
}

func TestSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	Seed(ctx, s, discardLogger())
	Seed(ctx, s, discardLogger())

	categories, err := s.MenuCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 4)

	reviews, err := s.Reviews(ctx)
	require.NoError(t, err)
	assert.Len(t, reviews, 5)

	images, err := s.GalleryImages(ctx)
	require.NoError(t, err)
	assert.Len(t, images, 6)

	info, err := s.RestaurantInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Majestea", info.Name)
}

func TestSeedLeavesExistingDataAlone(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	custom := seedRestaurantInfo
	custom.Name = "Chez Quelqu'un d'Autre"
	require.NoError(t, s.SaveRestaurantInfo(ctx, &custom))

	Seed(ctx, s, discardLogger())

	info, err := s.RestaurantInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Chez Quelqu'un d'Autre", info.Name)

	// Empty collections still get filled.
	categories, err := s.MenuCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 4)
}

type menuInsertFails struct {
	*Memory
}

func (s *menuInsertFails) InsertMenuCategories(ctx context.Context, categories []models.MenuCategory) error {
	return errors.New("write concern error")
}

// One collection failing must not stop the others from being seeded.
func TestSeedContinuesPastFailure(t *testing.T) {
	ctx := context.Background()
	s := &menuInsertFails{Memory: NewMemory()}

	Seed(ctx, s, discardLogger())

	categories, err := s.MenuCategories(ctx)
	require.NoError(t, err)
	assert.Empty(t, categories)

	reviews, err := s.Reviews(ctx)
	require.NoError(t, err)
	assert.Len(t, reviews, 5)

	images, err := s.GalleryImages(ctx)
	require.NoError(t, err)
	assert.Len(t, images, 6)

	info, err := s.RestaurantInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Majestea", info.Name)
}

// Every seeded item must point at the category that embeds it.
func TestSeedDataForeignKeysConsistent(t *testing.T) {
	for _, cat := range seedMenuCategories {
		for _, item := range cat.Items {
			assert.Equal(t, cat.ID, item.CategoryID,
				"item %s (%s) embedded in category %s", item.ID, item.Name, cat.ID)
		}
	}
}

func TestSeedDataRatingsInRange(t *testing.T) {
	for _, r := range seedReviews {
		assert.GreaterOrEqual(t, r.Rating, 1)
		assert.LessOrEqual(t, r.Rating, 5)
	}
}
