package repository

import (
	"context"
	"strings"
	"time"

	"github.com/havenwellness/catalog-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ProductRepository interface {
	ListProducts(ctx context.Context) ([]models.PopulatedProduct, error)
	GetProductBySlug(ctx context.Context, slug string) (*models.PopulatedProduct, error)
	CreateProduct(ctx context.Context, product models.Product) (models.Product, error)
	UpdateProduct(ctx context.Context, id primitive.ObjectID, input models.UpdateProductInput) (*models.Product, error)
	DeleteProduct(ctx context.Context, id primitive.ObjectID) error
	SlugExists(ctx context.Context, slug string, exclude primitive.ObjectID) (bool, error)
}

type MongoProductRepository struct {
	DB *mongo.Database
}

func NewProductRepository(db *mongo.Database) ProductRepository {
	return &MongoProductRepository{DB: db}
}

// populatePipeline expands the category reference the way mongoose populate
// does: missing references resolve to null rather than failing. The excluded
// category fields control the {name} vs {name, slug} projection.
func populatePipeline(match bson.M, excludeCategoryFields ...string) mongo.Pipeline {
	pipeline := mongo.Pipeline{}
	if match != nil {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: match}})
	}
	pipeline = append(pipeline,
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "categories",
			"localField":   "category",
			"foreignField": "_id",
			"as":           "category",
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{
			"path":                       "$category",
			"preserveNullAndEmptyArrays": true,
		}}},
	)
	if len(excludeCategoryFields) > 0 {
		projection := bson.M{}
		for _, field := range excludeCategoryFields {
			projection["category."+field] = 0
		}
		pipeline = append(pipeline, bson.D{{Key: "$project", Value: projection}})
	}
	return pipeline
}

func (r *MongoProductRepository) ListProducts(ctx context.Context) ([]models.PopulatedProduct, error) {
	collection := r.DB.Collection("products")
	pipeline := populatePipeline(nil, "slug", "image", "description", "createdAt", "updatedAt")

	cursor, err := collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := []models.PopulatedProduct{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *MongoProductRepository) GetProductBySlug(ctx context.Context, slug string) (*models.PopulatedProduct, error) {
	collection := r.DB.Collection("products")
	pipeline := populatePipeline(bson.M{"slug": slug}, "image", "description", "createdAt", "updatedAt")

	cursor, err := collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []models.PopulatedProduct
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, mongo.ErrNoDocuments
	}
	return &products[0], nil
}

func (r *MongoProductRepository) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	collection := r.DB.Collection("products")

	product.Slug = strings.TrimSpace(product.Slug)
	product.CreatedAt = time.Now()
	product.UpdatedAt = time.Now()

	res, err := collection.InsertOne(ctx, product)
	if err != nil {
		return models.Product{}, err
	}
	product.ID = res.InsertedID.(primitive.ObjectID)
	return product, nil
}

// buildProductUpdate applies the falsy-skip merge contract: a zero-valued
// payload field leaves the stored value untouched. IsFeatured alone
// distinguishes "absent" from "false" via its pointer.
func buildProductUpdate(input models.UpdateProductInput) bson.M {
	set := bson.M{"updatedAt": time.Now()}
	if input.Name != "" {
		set["name"] = input.Name
	}
	if input.Slug != "" {
		set["slug"] = strings.TrimSpace(input.Slug)
	}
	if input.CategoryID != primitive.NilObjectID {
		set["category"] = input.CategoryID
	}
	if input.ShortDescription != "" {
		set["shortDescription"] = input.ShortDescription
	}
	if input.LongDescription != "" {
		set["longDescription"] = input.LongDescription
	}
	if input.Price != 0 {
		set["price"] = input.Price
	}
	if len(input.Images) > 0 {
		set["images"] = input.Images
	}
	if len(input.Specifications) > 0 {
		set["specifications"] = input.Specifications
	}
	if len(input.Features) > 0 {
		set["features"] = input.Features
	}
	if len(input.KeyHighlights) > 0 {
		set["keyHighlights"] = input.KeyHighlights
	}
	if input.IsFeatured != nil {
		set["isFeatured"] = *input.IsFeatured
	}
	return set
}

// UpdateProduct loads the document by id, then overwrites only the fields
// buildProductUpdate selected.
func (r *MongoProductRepository) UpdateProduct(ctx context.Context, id primitive.ObjectID, input models.UpdateProductInput) (*models.Product, error) {
	collection := r.DB.Collection("products")

	var existing models.Product
	if err := collection.FindOne(ctx, bson.M{"_id": id}).Decode(&existing); err != nil {
		return nil, err
	}

	set := buildProductUpdate(input)

	if _, err := collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set}); err != nil {
		return nil, err
	}

	var updated models.Product
	if err := collection.FindOne(ctx, bson.M{"_id": id}).Decode(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *MongoProductRepository) DeleteProduct(ctx context.Context, id primitive.ObjectID) error {
	collection := r.DB.Collection("products")
	res, err := collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MongoProductRepository) SlugExists(ctx context.Context, slug string, exclude primitive.ObjectID) (bool, error) {
	collection := r.DB.Collection("products")
	filter := bson.M{"slug": strings.TrimSpace(slug)}
	if exclude != primitive.NilObjectID {
		filter["_id"] = bson.M{"$ne": exclude}
	}
	count, err := collection.CountDocuments(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
