package repository

import (
	"context"
	"time"

	"github.com/havenwellness/catalog-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// The gallery surface is create and list only; items are curated via the
// admin form and never edited in place.
type GalleryRepository interface {
	ListGalleryItems(ctx context.Context) ([]models.GalleryItem, error)
	CreateGalleryItem(ctx context.Context, item models.GalleryItem) (models.GalleryItem, error)
}

type MongoGalleryRepository struct {
	DB *mongo.Database
}

func NewGalleryRepository(db *mongo.Database) GalleryRepository {
	return &MongoGalleryRepository{DB: db}
}

func (r *MongoGalleryRepository) ListGalleryItems(ctx context.Context) ([]models.GalleryItem, error) {
	collection := r.DB.Collection("gallery")
	cursor, err := collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []models.GalleryItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MongoGalleryRepository) CreateGalleryItem(ctx context.Context, item models.GalleryItem) (models.GalleryItem, error) {
	collection := r.DB.Collection("gallery")
	if item.Year == "" {
		item.Year = "2024"
	}
	item.CreatedAt = time.Now()
	item.UpdatedAt = time.Now()

	res, err := collection.InsertOne(ctx, item)
	if err != nil {
		return models.GalleryItem{}, err
	}
	item.ID = res.InsertedID.(primitive.ObjectID)
	return item, nil
}
