package models

// RestaurantHours is the opening window for a single weekday.
type RestaurantHours struct {
	Open  string `json:"open" bson:"open"`
	Close string `json:"close" bson:"close"`
}

// RestaurantInfo is the singleton document describing the restaurant itself.
// There is exactly one per deployment, written once by the seeder.
type RestaurantInfo struct {
	Name         string                     `json:"name" bson:"name"`
	Slogan       string                     `json:"slogan" bson:"slogan"`
	Address      string                     `json:"address" bson:"address"`
	Phone        string                     `json:"phone" bson:"phone"`
	Email        string                     `json:"email" bson:"email"`
	Instagram    string                     `json:"instagram" bson:"instagram"`
	GoogleRating float64                    `json:"google_rating" bson:"google_rating"`
	TotalReviews string                     `json:"total_reviews" bson:"total_reviews"`
	Hours        map[string]RestaurantHours `json:"hours" bson:"hours"`
	Features     []string                   `json:"features" bson:"features"`
}
