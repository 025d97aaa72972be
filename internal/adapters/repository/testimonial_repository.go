package repository

import (
	"context"
	"time"

	"github.com/havenwellness/catalog-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type TestimonialRepository interface {
	ListTestimonials(ctx context.Context) ([]models.Testimonial, error)
	CreateTestimonial(ctx context.Context, testimonial models.Testimonial) (models.Testimonial, error)
}

type MongoTestimonialRepository struct {
	DB *mongo.Database
}

func NewTestimonialRepository(db *mongo.Database) TestimonialRepository {
	return &MongoTestimonialRepository{DB: db}
}

func (r *MongoTestimonialRepository) ListTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	collection := r.DB.Collection("testimonials")
	cursor, err := collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	testimonials := []models.Testimonial{}
	if err := cursor.All(ctx, &testimonials); err != nil {
		return nil, err
	}
	return testimonials, nil
}

func (r *MongoTestimonialRepository) CreateTestimonial(ctx context.Context, testimonial models.Testimonial) (models.Testimonial, error) {
	collection := r.DB.Collection("testimonials")
	testimonial.CreatedAt = time.Now()
	testimonial.UpdatedAt = time.Now()

	res, err := collection.InsertOne(ctx, testimonial)
	if err != nil {
		return models.Testimonial{}, err
	}
	testimonial.ID = res.InsertedID.(primitive.ObjectID)
	return testimonial, nil
}
