// One-shot maintenance: trims surrounding whitespace from stored product
// slugs and normalises backslashes in image paths left by old admin uploads.
//
// Usage: go run ./scripts/cleanupslugs
package main

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/havenwellness/catalog-backend/internal/config"
	"github.com/havenwellness/catalog-backend/internal/database"
	"github.com/havenwellness/catalog-backend/internal/models"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
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

	collection := client.Database(cfg.MongoDB).Collection("products")
	cursor, err := collection.Find(ctx, bson.M{})
	if err != nil {
		log.Fatalf("Failed to fetch products: %v", err)
	}
	defer cursor.Close(ctx)

	fixed := 0
	for cursor.Next(ctx) {
		var product models.Product
		if err := cursor.Decode(&product); err != nil {
			log.Fatalf("Failed to decode product: %v", err)
		}

		set := bson.M{}
		if trimmed := strings.TrimSpace(product.Slug); trimmed != product.Slug {
			log.Printf("Fixing slug for %s: [%s] -> [%s]", product.Name, product.Slug, trimmed)
			set["slug"] = trimmed
		}

		changedImages := false
		images := make([]string, len(product.Images))
		for i, img := range product.Images {
			images[i] = strings.ReplaceAll(img, `\`, "/")
			if images[i] != img {
				changedImages = true
			}
		}
		if changedImages {
			log.Printf("Fixing image paths for %s", product.Name)
			set["images"] = images
		}

		if len(set) == 0 {
			continue
		}
		if _, err := collection.UpdateOne(ctx, bson.M{"_id": product.ID}, bson.M{"$set": set}); err != nil {
			log.Fatalf("Failed to update product %s: %v", product.Name, err)
		}
		fixed++
	}
	if err := cursor.Err(); err != nil {
		log.Fatalf("Cursor error: %v", err)
	}
	log.Printf("Cleanup complete, %d product(s) updated", fixed)
}
