package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/havenwellness/catalog-backend/internal/adapters/repository"
	"github.com/havenwellness/catalog-backend/internal/config"
	"github.com/havenwellness/catalog-backend/internal/middleware"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/time/rate"
)

// SetupRoutes wires the public catalog surface and the admin mutations.
// Route paths mirror the storefront client's api module exactly.
func SetupRoutes(router *gin.Engine, db *mongo.Database, cfg *config.Config) {
	logrus.Info("Setting up routes...")

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Server is running!",
			"status":  "ok",
		})
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "wellness-catalog-backend",
		})
	})

	if db == nil {
		logrus.Warn("Database not connected - running with limited functionality")
		router.Any("/api/*path", func(c *gin.Context) {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"message": "The server is running but could not connect to the database. Please check server logs.",
			})
		})
		return
	}

	productHandler := NewProductHandler(repository.NewProductRepository(db))
	categoryHandler := NewCategoryHandler(repository.NewCategoryRepository(db))
	galleryHandler := NewGalleryHandler(repository.NewGalleryRepository(db))
	testimonialHandler := NewTestimonialHandler(repository.NewTestimonialRepository(db))
	inquiryHandler := NewInquiryHandler(repository.NewInquiryRepository(db))
	authHandler := NewAuthHandler(repository.NewUserRepository(db))
	uploadHandler := NewUploadHandler()

	api := router.Group("/api")

	// Public routes
	api.POST("/auth/login", authHandler.Login)
	api.GET("/products", productHandler.GetProducts)
	api.GET("/products/:slug", productHandler.GetProductBySlug)
	api.GET("/categories", categoryHandler.GetCategories)
	api.GET("/gallery", galleryHandler.GetGallery)
	api.GET("/testimonials", testimonialHandler.GetTestimonials)
	api.POST("/inquiries",
		middleware.RateLimit(rate.Limit(cfg.InquiryRate), cfg.InquiryBurst),
		inquiryHandler.CreateInquiry)

	// Admin routes
	admin := api.Group("")
	admin.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware("admin"))
	{
		admin.POST("/products", productHandler.CreateProduct)
		admin.PUT("/products/:id", productHandler.UpdateProduct)
		admin.DELETE("/products/:id", productHandler.DeleteProduct)
		admin.POST("/categories", categoryHandler.CreateCategory)
		admin.POST("/gallery", galleryHandler.CreateGalleryItem)
		admin.POST("/testimonials", testimonialHandler.CreateTestimonial)
		admin.GET("/inquiries", inquiryHandler.GetInquiries)
		admin.POST("/upload", uploadHandler.UploadImage)
	}
}
