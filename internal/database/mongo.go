package database

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Connect establishes and verifies a MongoDB connection. The generous
// timeout accounts for cloud clusters being slower than localhost.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(uri).SetServerSelectionTimeout(30 * time.Second)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	return client, nil
}

// EnsureIndexes creates the indexes the catalog relies on. The unique slug
// indexes back the handler-level conflict checks against races; the
// maintenance scripts upsert categories by slug and assume uniqueness.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	products := db.Collection("products")
	if _, err := products.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetName("idx_product_slug").SetUnique(true),
	}); err != nil {
		return err
	}
	logrus.Info("Created unique index: idx_product_slug on products.slug")

	categories := db.Collection("categories")
	if _, err := categories.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetName("idx_category_slug").SetUnique(true),
	}); err != nil {
		return err
	}
	logrus.Info("Created unique index: idx_category_slug on categories.slug")

	inquiries := db.Collection("inquiries")
	if _, err := inquiries.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "date", Value: -1}},
		Options: options.Index().SetName("idx_inquiry_date"),
	}); err != nil {
		return err
	}
	logrus.Info("Created index: idx_inquiry_date on inquiries.date")

	users := db.Collection("users")
	if _, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetName("idx_username").SetUnique(true),
	}); err != nil {
		return err
	}
	logrus.Info("Created unique index: idx_username on users.username")

	return nil
}
