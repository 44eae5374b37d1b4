package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"majestea-api/models"
)

// Collection names. The driver creates them lazily on first insert.
const (
	colRestaurant     = "restaurant"
	colMenuCategories = "menu_categories"
	colReservations   = "reservations"
	colReviews        = "reviews"
	colGallery        = "gallery"
)

// Result caps. Listings are bounded, not paginated.
const (
	listCap        = 100
	reservationCap = 1000
)

// Mongo implements Store over a MongoDB database.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect dials MongoDB and returns a Store bound to dbName.
func Connect(ctx context.Context, url, dbName string) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(url))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}
	return &Mongo{client: client, db: client.Database(dbName)}, nil
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// Ping round-trips the server; used by the health probe.
func (m *Mongo) Ping(ctx context.Context) error {
	return m.db.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}

// ── Restaurant ──────────────────────────────────────────────────────────────

func (m *Mongo) RestaurantInfo(ctx context.Context) (*models.RestaurantInfo, error) {
	var info models.RestaurantInfo
	err := m.db.Collection(colRestaurant).FindOne(ctx, bson.M{}).Decode(&info)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (m *Mongo) SaveRestaurantInfo(ctx context.Context, info *models.RestaurantInfo) error {
	_, err := m.db.Collection(colRestaurant).InsertOne(ctx, info)
	return err
}

// ── Menu ────────────────────────────────────────────────────────────────────

func (m *Mongo) MenuCategories(ctx context.Context) ([]models.MenuCategory, error) {
	cur, err := m.db.Collection(colMenuCategories).Find(ctx, bson.M{},
		options.Find().SetLimit(listCap))
	if err != nil {
		return nil, err
	}
	categories := make([]models.MenuCategory, 0)
	if err := cur.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (m *Mongo) MenuCategoryByID(ctx context.Context, id string) (*models.MenuCategory, error) {
	var category models.MenuCategory
	err := m.db.Collection(colMenuCategories).FindOne(ctx, bson.M{"id": id}).Decode(&category)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (m *Mongo) InsertMenuCategories(ctx context.Context, categories []models.MenuCategory) error {
	docs := make([]interface{}, len(categories))
	for i := range categories {
		docs[i] = categories[i]
	}
	_, err := m.db.Collection(colMenuCategories).InsertMany(ctx, docs)
	return err
}

// ── Reservations ────────────────────────────────────────────────────────────

func (m *Mongo) CreateReservation(ctx context.Context, r *models.Reservation) error {
	res, err := m.db.Collection(colReservations).InsertOne(ctx, r)
	if err != nil {
		return err
	}
	if res.InsertedID == nil {
		return errors.New("reservation was not inserted")
	}
	return nil
}

// Reservations returns the newest reservations first, capped at 1000.
func (m *Mongo) Reservations(ctx context.Context) ([]models.Reservation, error) {
	cur, err := m.db.Collection(colReservations).Find(ctx, bson.M{},
		options.Find().
			SetSort(bson.D{{Key: "created_at", Value: -1}}).
			SetLimit(reservationCap))
	if err != nil {
		return nil, err
	}
	reservations := make([]models.Reservation, 0)
	if err := cur.All(ctx, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

func (m *Mongo) ReservationByID(ctx context.Context, id string) (*models.Reservation, error) {
	var r models.Reservation
	err := m.db.Collection(colReservations).FindOne(ctx, bson.M{"id": id}).Decode(&r)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (m *Mongo) UpdateReservationStatus(ctx context.Context, id string, status models.ReservationStatus) error {
	res, err := m.db.Collection(colReservations).UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ── Reviews ─────────────────────────────────────────────────────────────────

func (m *Mongo) Reviews(ctx context.Context) ([]models.Review, error) {
	cur, err := m.db.Collection(colReviews).Find(ctx, bson.M{},
		options.Find().SetLimit(listCap))
	if err != nil {
		return nil, err
	}
	reviews := make([]models.Review, 0)
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (m *Mongo) CreateReview(ctx context.Context, review *models.Review) error {
	res, err := m.db.Collection(colReviews).InsertOne(ctx, review)
	if err != nil {
		return err
	}
	if res.InsertedID == nil {
		return errors.New("review was not inserted")
	}
	return nil
}

func (m *Mongo) InsertReviews(ctx context.Context, reviews []models.Review) error {
	docs := make([]interface{}, len(reviews))
	for i := range reviews {
		docs[i] = reviews[i]
	}
	_, err := m.db.Collection(colReviews).InsertMany(ctx, docs)
	return err
}

// ── Gallery ─────────────────────────────────────────────────────────────────

func (m *Mongo) GalleryImages(ctx context.Context) ([]models.GalleryImage, error) {
	return m.findGallery(ctx, bson.M{})
}

func (m *Mongo) GalleryImagesByCategory(ctx context.Context, category string) ([]models.GalleryImage, error) {
	return m.findGallery(ctx, bson.M{"category": category})
}

func (m *Mongo) findGallery(ctx context.Context, filter bson.M) ([]models.GalleryImage, error) {
	cur, err := m.db.Collection(colGallery).Find(ctx, filter,
		options.Find().SetLimit(listCap))
	if err != nil {
		return nil, err
	}
	images := make([]models.GalleryImage, 0)
	if err := cur.All(ctx, &images); err != nil {
		return nil, err
	}
	return images, nil
}

func (m *Mongo) InsertGalleryImages(ctx context.Context, images []models.GalleryImage) error {
	docs := make([]interface{}, len(images))
	for i := range images {
		docs[i] = images[i]
	}
	_, err := m.db.Collection(colGallery).InsertMany(ctx, docs)
	return err
}
