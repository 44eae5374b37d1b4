package models

type GalleryImage struct {
	ID       string `json:"id" bson:"id"`
	Src      string `json:"src" bson:"src"`
	Alt      string `json:"alt" bson:"alt"`
	Category string `json:"category" bson:"category"`
}
