package store

import (
	"context"
	"errors"
	"log/slog"
)

// Seed populates every empty seed-backed collection with the fixed demo
// content. Collections that already hold data are left untouched, so running
// it on every boot is safe. A failure on one collection is logged and does
// not stop the others: partial demo data beats a server that refuses to
// start.
func Seed(ctx context.Context, s Store, log *slog.Logger) {
	if _, err := s.RestaurantInfo(ctx); errors.Is(err, ErrNotFound) {
		if err := s.SaveRestaurantInfo(ctx, &seedRestaurantInfo); err != nil {
			log.Error("seeding restaurant info failed", "error", err)
		} else {
			log.Info("restaurant info seeded")
		}
	} else if err != nil {
		log.Error("checking restaurant info failed", "error", err)
	}

	seedIfEmpty(log, "menu categories",
		func() (int, error) { cats, err := s.MenuCategories(ctx); return len(cats), err },
		func() error { return s.InsertMenuCategories(ctx, seedMenuCategories) })

	seedIfEmpty(log, "reviews",
		func() (int, error) { rs, err := s.Reviews(ctx); return len(rs), err },
		func() error { return s.InsertReviews(ctx, seedReviews) })

	seedIfEmpty(log, "gallery images",
		func() (int, error) { imgs, err := s.GalleryImages(ctx); return len(imgs), err },
		func() error { return s.InsertGalleryImages(ctx, seedGalleryImages) })

	log.Info("database initialization complete")
}

func seedIfEmpty(log *slog.Logger, name string, count func() (int, error), insert func() error) {
	n, err := count()
	if err != nil {
		log.Error("checking collection failed", "collection", name, "error", err)
		return
	}
	if n > 0 {
		return
	}
	if err := insert(); err != nil {
		log.Error("seeding collection failed", "collection", name, "error", err)
		return
	}
	log.Info("collection seeded", "collection", name)
}
