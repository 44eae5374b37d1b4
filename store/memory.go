package store

import (
	"context"
	"sort"
	"sync"

	"majestea-api/models"
)

// Memory is an in-process Store used by tests and local development. It
// mirrors the Mongo implementation's contract: storage-order listings with
// the same caps, newest-first reservations, ErrNotFound on missed lookups.
type Memory struct {
	mu           sync.Mutex
	restaurant   *models.RestaurantInfo
	categories   []models.MenuCategory
	reservations []models.Reservation
	reviews      []models.Review
	gallery      []models.GalleryImage
}

var _ Store = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Ping(ctx context.Context) error { return nil }

func (m *Memory) RestaurantInfo(ctx context.Context) (*models.RestaurantInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.restaurant == nil {
		return nil, ErrNotFound
	}
	info := *m.restaurant
	return &info, nil
}

func (m *Memory) SaveRestaurantInfo(ctx context.Context, info *models.RestaurantInfo) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	saved := *info
	m.restaurant = &saved
	return nil
}

func (m *Memory) MenuCategories(ctx context.Context) ([]models.MenuCategory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return capped(m.categories, listCap), nil
}

func (m *Memory) MenuCategoryByID(ctx context.Context, id string) (*models.MenuCategory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.categories {
		if m.categories[i].ID == id {
			category := m.categories[i]
			return &category, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) InsertMenuCategories(ctx context.Context, categories []models.MenuCategory) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.categories = append(m.categories, categories...)
	return nil
}

func (m *Memory) CreateReservation(ctx context.Context, r *models.Reservation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reservations = append(m.reservations, *r)
	return nil
}

func (m *Memory) Reservations(ctx context.Context) ([]models.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Reservation, len(m.reservations))
	copy(out, m.reservations)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return capped(out, reservationCap), nil
}

func (m *Memory) ReservationByID(ctx context.Context, id string) (*models.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.reservations {
		if m.reservations[i].ID == id {
			r := m.reservations[i]
			return &r, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) UpdateReservationStatus(ctx context.Context, id string, status models.ReservationStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.reservations {
		if m.reservations[i].ID == id {
			m.reservations[i].Status = status
			return nil
		}
	}
	return ErrNotFound
}

func (m *Memory) Reviews(ctx context.Context) ([]models.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return capped(m.reviews, listCap), nil
}

func (m *Memory) CreateReview(ctx context.Context, review *models.Review) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reviews = append(m.reviews, *review)
	return nil
}

func (m *Memory) InsertReviews(ctx context.Context, reviews []models.Review) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reviews = append(m.reviews, reviews...)
	return nil
}

func (m *Memory) GalleryImages(ctx context.Context) ([]models.GalleryImage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return capped(m.gallery, listCap), nil
}

func (m *Memory) GalleryImagesByCategory(ctx context.Context, category string) ([]models.GalleryImage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.GalleryImage, 0)
	for _, img := range m.gallery {
		if img.Category == category {
			out = append(out, img)
		}
	}
	return capped(out, listCap), nil
}

func (m *Memory) InsertGalleryImages(ctx context.Context, images []models.GalleryImage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gallery = append(m.gallery, images...)
	return nil
}

func capped[T any](in []T, limit int) []T {
	out := make([]T, 0, len(in))
	out = append(out, in...)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
