package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Specification struct {
	Key   string `json:"key" bson:"key"`
	Value string `json:"value" bson:"value"`
}

// KeyHighlight's icon is a symbolic name the storefront resolves to a glyph.
type KeyHighlight struct {
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
	Icon        string `json:"icon" bson:"icon"`
}

type Product struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name string             `json:"name" bson:"name" validate:"required"`
	Slug string             `json:"slug" bson:"slug" validate:"required"`

	// Reference to the categories collection, never embedded.
	CategoryID primitive.ObjectID `json:"category" bson:"category" validate:"required"`

	ShortDescription string  `json:"shortDescription" bson:"shortDescription" validate:"required"`
	LongDescription  string  `json:"longDescription" bson:"longDescription" validate:"required"`
	Price            float64 `json:"price" bson:"price" validate:"required,gte=0"`

	Images         []string        `json:"images" bson:"images"`
	Specifications []Specification `json:"specifications" bson:"specifications"`
	Features       []string        `json:"features" bson:"features"`
	KeyHighlights  []KeyHighlight  `json:"keyHighlights" bson:"keyHighlights"`
	IsFeatured     bool            `json:"isFeatured" bson:"isFeatured"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// PopulatedProduct is a Product with its category reference expanded via
// $lookup. Category is nil when the referenced document no longer exists;
// readers must tolerate that.
type PopulatedProduct struct {
	ID               primitive.ObjectID `bson:"_id" json:"_id"`
	Name             string             `json:"name" bson:"name"`
	Slug             string             `json:"slug" bson:"slug"`
	Category         *CategoryRef       `json:"category" bson:"category"`
	ShortDescription string             `json:"shortDescription" bson:"shortDescription"`
	LongDescription  string             `json:"longDescription" bson:"longDescription"`
	Price            float64            `json:"price" bson:"price"`
	Images           []string           `json:"images" bson:"images"`
	Specifications   []Specification    `json:"specifications" bson:"specifications"`
	Features         []string           `json:"features" bson:"features"`
	KeyHighlights    []KeyHighlight     `json:"keyHighlights" bson:"keyHighlights"`
	IsFeatured       bool               `json:"isFeatured" bson:"isFeatured"`
	CreatedAt        time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// UpdateProductInput carries a partial update. Zero-valued fields are skipped
// by the merge, so clearing a string to "" or a price to 0 is not possible
// through this path. IsFeatured is a pointer so an explicit false still lands.
type UpdateProductInput struct {
	Name             string             `json:"name"`
	Slug             string             `json:"slug"`
	CategoryID       primitive.ObjectID `json:"category"`
	ShortDescription string             `json:"shortDescription"`
	LongDescription  string             `json:"longDescription"`
	Price            float64            `json:"price" validate:"gte=0"`
	Images           []string           `json:"images"`
	Specifications   []Specification    `json:"specifications"`
	Features         []string           `json:"features"`
	KeyHighlights    []KeyHighlight     `json:"keyHighlights"`
	IsFeatured       *bool              `json:"isFeatured"`
}
