package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/havenwellness/catalog-backend/internal/config"
	"github.com/havenwellness/catalog-backend/internal/database"
	"github.com/havenwellness/catalog-backend/internal/handlers"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using environment variables")
	}
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	ctx := context.Background()

	var db *mongo.Database
	client, err := database.Connect(ctx, cfg.MongoURI)
	if err != nil {
		// The server still boots so /health stays up; /api returns 503.
		logrus.WithError(err).Error("Failed to connect to MongoDB")
	} else {
		logrus.Info("Connected to MongoDB")
		db = client.Database(cfg.MongoDB)

		indexCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		if err := database.EnsureIndexes(indexCtx, db); err != nil {
			logrus.WithError(err).Error("Failed to create indexes")
		}
		cancel()

		defer func() {
			if err := client.Disconnect(ctx); err != nil {
				logrus.WithError(err).Error("Error disconnecting from MongoDB")
			}
		}()
	}

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	handlers.SetupRoutes(router, db, cfg)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logrus.Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("Server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Error during server shutdown")
	}
	logrus.Info("Server gracefully stopped")
}
