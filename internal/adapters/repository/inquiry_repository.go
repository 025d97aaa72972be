package repository

import (
	"context"
	"time"

	"github.com/havenwellness/catalog-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Inquiries are append-only: visitors create them, admins read them,
// nobody updates them.
type InquiryRepository interface {
	ListInquiries(ctx context.Context) ([]models.Inquiry, error)
	CreateInquiry(ctx context.Context, inquiry models.Inquiry) (models.Inquiry, error)
}

type MongoInquiryRepository struct {
	DB *mongo.Database
}

func NewInquiryRepository(db *mongo.Database) InquiryRepository {
	return &MongoInquiryRepository{DB: db}
}

func (r *MongoInquiryRepository) ListInquiries(ctx context.Context) ([]models.Inquiry, error) {
	collection := r.DB.Collection("inquiries")
	opts := options.Find().SetSort(bson.M{"date": -1})

	cursor, err := collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	inquiries := []models.Inquiry{}
	if err := cursor.All(ctx, &inquiries); err != nil {
		return nil, err
	}
	return inquiries, nil
}

func (r *MongoInquiryRepository) CreateInquiry(ctx context.Context, inquiry models.Inquiry) (models.Inquiry, error) {
	collection := r.DB.Collection("inquiries")
	now := time.Now()
	if inquiry.Date.IsZero() {
		inquiry.Date = now
	}
	inquiry.CreatedAt = now
	inquiry.UpdatedAt = now

	res, err := collection.InsertOne(ctx, inquiry)
	if err != nil {
		return models.Inquiry{}, err
	}
	inquiry.ID = res.InsertedID.(primitive.ObjectID)
	return inquiry, nil
}
