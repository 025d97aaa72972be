package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Inquiry is the only entity anonymous visitors can write. ProductRef is
// free text: the contact form puts a project-type tag in it, the product page
// a product name.
type Inquiry struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name       string             `json:"name" bson:"name" validate:"required"`
	Email      string             `json:"email" bson:"email" validate:"required,email"`
	Phone      string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Message    string             `json:"message" bson:"message" validate:"required"`
	ProductRef string             `json:"productRef,omitempty" bson:"productRef,omitempty"`
	Date       time.Time          `json:"date" bson:"date"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updatedAt"`
}
