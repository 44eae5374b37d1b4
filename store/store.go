// Package store is the document-store boundary: typed operations over the
// collections backing the API, plus the seed routine that fills an empty
// database with the fixed demo content.
package store

import (
	"context"
	"errors"

	"majestea-api/models"
)

// ErrNotFound is returned when a lookup by id matched nothing, or an update
// touched zero documents.
var ErrNotFound = errors.New("not found")

// Store is the set of document operations the handlers need. Handlers receive
// it at construction so they can be tested against an in-memory substitute.
type Store interface {
	Ping(ctx context.Context) error

	RestaurantInfo(ctx context.Context) (*models.RestaurantInfo, error)
	SaveRestaurantInfo(ctx context.Context, info *models.RestaurantInfo) error

	MenuCategories(ctx context.Context) ([]models.MenuCategory, error)
	MenuCategoryByID(ctx context.Context, id string) (*models.MenuCategory, error)
	InsertMenuCategories(ctx context.Context, categories []models.MenuCategory) error

	CreateReservation(ctx context.Context, r *models.Reservation) error
	Reservations(ctx context.Context) ([]models.Reservation, error)
	ReservationByID(ctx context.Context, id string) (*models.Reservation, error)
	UpdateReservationStatus(ctx context.Context, id string, status models.ReservationStatus) error

	Reviews(ctx context.Context) ([]models.Review, error)
	CreateReview(ctx context.Context, review *models.Review) error
	InsertReviews(ctx context.Context, reviews []models.Review) error

	GalleryImages(ctx context.Context) ([]models.GalleryImage, error)
	GalleryImagesByCategory(ctx context.Context, category string) ([]models.GalleryImage, error)
	InsertGalleryImages(ctx context.Context, images []models.GalleryImage) error
}
