package repository

import (
	"context"
	"time"

	"github.com/havenwellness/catalog-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, category models.Category) (models.Category, error)
	CategorySlugExists(ctx context.Context, slug string) (bool, error)
}

type MongoCategoryRepository struct {
	DB *mongo.Database
}

func NewCategoryRepository(db *mongo.Database) CategoryRepository {
	return &MongoCategoryRepository{DB: db}
}

func (r *MongoCategoryRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	collection := r.DB.Collection("categories")
	cursor, err := collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	categories := []models.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *MongoCategoryRepository) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	collection := r.DB.Collection("categories")
	category.CreatedAt = time.Now()
	category.UpdatedAt = time.Now()

	res, err := collection.InsertOne(ctx, category)
	if err != nil {
		return models.Category{}, err
	}
	category.ID = res.InsertedID.(primitive.ObjectID)
	return category, nil
}

func (r *MongoCategoryRepository) CategorySlugExists(ctx context.Context, slug string) (bool, error) {
	collection := r.DB.Collection("categories")
	count, err := collection.CountDocuments(ctx, bson.M{"slug": slug})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
