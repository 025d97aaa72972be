package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GalleryItem's category is a free-text label (e.g. "Saunas", "Residential"),
// not a reference into the categories collection. The storefront derives its
// filter tabs from the distinct set of these strings at read time.
type GalleryItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title       string             `json:"title" bson:"title" validate:"required"`
	Image       string             `json:"image" bson:"image" validate:"required"`
	Category    string             `json:"category" bson:"category" validate:"required"`
	Location    string             `json:"location" bson:"location"`
	Year        string             `json:"year" bson:"year"`
	Description string             `json:"description" bson:"description"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}
