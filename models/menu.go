package models

type MenuItem struct {
	ID          string  `json:"id" bson:"id"`
	Name        string  `json:"name" bson:"name"`
	Price       float64 `json:"price" bson:"price"`
	Description string  `json:"description" bson:"description"`
	CategoryID  string  `json:"category_id" bson:"category_id"`
}

// MenuCategory embeds its items; the category id ("mains", "desserts", ...)
// is hand-assigned in the seed data, not generated.
type MenuCategory struct {
	ID    string     `json:"id" bson:"id"`
	Name  string     `json:"name" bson:"name"`
	Items []MenuItem `json:"items" bson:"items"`
}
