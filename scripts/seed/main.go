// Seeds the catalog database: stock categories (upserted by slug), the
// admin user, and a sample product.
//
// Usage: go run ./scripts/seed        import data
//
//	go run ./scripts/seed -d     destroy data
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/havenwellness/catalog-backend/internal/config"
	"github.com/havenwellness/catalog-backend/internal/database"
	"github.com/havenwellness/catalog-backend/internal/models"
	"github.com/havenwellness/catalog-backend/utils"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	godotenv.Load()
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client, err := database.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)
	db := client.Database(cfg.MongoDB)

	if len(os.Args) > 1 && os.Args[1] == "-d" {
		destroyData(ctx, db)
		return
	}
	importData(ctx, db)
}

func importData(ctx context.Context, db *mongo.Database) {
	// Upsert-by-slug keeps the script re-runnable against a live database.
	categories := []models.Category{
		{Name: "Saunas", Slug: "saunas", Description: "Traditional and Infrared Saunas"},
		{Name: "Steam Rooms", Slug: "steam-rooms", Description: "Luxury Steam Rooms"},
		{Name: "Jacuzzis", Slug: "jacuzzis", Description: "Relaxing Jacuzzis"},
	}

	categoryColl := db.Collection("categories")
	now := time.Now()
	var firstCategoryID interface{}
	for i, cat := range categories {
		update := bson.M{
			"$set": bson.M{
				"name":        cat.Name,
				"description": cat.Description,
				"updatedAt":   now,
			},
			"$setOnInsert": bson.M{"createdAt": now},
		}
		opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
		var upserted models.Category
		if err := categoryColl.FindOneAndUpdate(ctx, bson.M{"slug": cat.Slug}, update, opts).Decode(&upserted); err != nil {
			log.Fatalf("Failed to upsert category %s: %v", cat.Name, err)
		}
		if i == 0 {
			firstCategoryID = upserted.ID
		}
		log.Printf("Ensured category: %s", cat.Name)
	}

	// Admin user
	password := viper.GetString("ADMIN_PASSWORD")
	if password == "" {
		password = "123456"
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}
	userColl := db.Collection("users")
	userUpdate := bson.M{
		"$set":         bson.M{"password": hash, "role": models.RoleAdmin, "updatedAt": now},
		"$setOnInsert": bson.M{"createdAt": now},
	}
	userOpts := options.Update().SetUpsert(true)
	if _, err := userColl.UpdateOne(ctx, bson.M{"username": "admin"}, userUpdate, userOpts); err != nil {
		log.Fatalf("Failed to ensure admin user: %v", err)
	}
	log.Println("Admin user ensured (username: admin)")

	// Sample product
	productColl := db.Collection("products")
	sample := bson.M{
		"name":             "Luxury Barrel Sauna",
		"category":         firstCategoryID,
		"shortDescription": "Outdoor barrel sauna for 4 people.",
		"longDescription":  "Handcrafted from premium cedar wood, this barrel sauna offers exceptional heat distribution and a stunning aesthetic for your backyard.",
		"price":            4500,
		"images":           []string{"https://images.unsplash.com/photo-1543489822-c49534f3271f?auto=format&fit=crop&w=1000&q=80"},
		"features":         []string{"Cedar Wood", "Tempered Glass", "Harvia Heater"},
		"isFeatured":       true,
		"updatedAt":        now,
	}
	productUpdate := bson.M{
		"$set":         sample,
		"$setOnInsert": bson.M{"createdAt": now},
	}
	if _, err := productColl.UpdateOne(ctx, bson.M{"slug": "luxury-barrel-sauna"}, productUpdate, options.Update().SetUpsert(true)); err != nil {
		log.Fatalf("Failed to seed sample product: %v", err)
	}
	log.Println("Sample product imported")
}

func destroyData(ctx context.Context, db *mongo.Database) {
	for _, name := range []string{"users", "products", "categories"} {
		if _, err := db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			log.Fatalf("Failed to clear %s: %v", name, err)
		}
	}
	log.Println("Data destroyed")
}
