package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/havenwellness/catalog-backend/internal/adapters/repository"
	"github.com/havenwellness/catalog-backend/internal/models"
	"github.com/havenwellness/catalog-backend/utils"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var validate = validator.New()

type ProductHandler struct {
	Repo repository.ProductRepository
}

func NewProductHandler(repo repository.ProductRepository) *ProductHandler {
	return &ProductHandler{Repo: repo}
}

// GetProducts returns every product with the category reference expanded
// to {_id, name}. No pagination: the catalog is small by design.
func (h *ProductHandler) GetProducts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	products, err := h.Repo.ListProducts(ctx)
	if err != nil {
		logrus.WithError(err).Error("failed to fetch products")
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("failed to fetch products"))
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProductBySlug is the one lookup that is not by primary id.
func (h *ProductHandler) GetProductBySlug(c *gin.Context) {
	slug := c.Param("slug")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	product, err := h.Repo.GetProductBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, utils.ErrorResponse("Product not found"))
			return
		}
		logrus.WithError(err).Error("failed to fetch product")
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("failed to fetch product"))
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid json body"))
		return
	}
	if err := validate.Struct(product); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid product data: "+err.Error()))
		return
	}
	product.Slug = strings.TrimSpace(product.Slug)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	exists, err := h.Repo.SlugExists(ctx, product.Slug, primitive.NilObjectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("failed to create product"))
		return
	}
	if exists {
		c.JSON(http.StatusConflict, utils.ErrorResponse("A product with this slug already exists"))
		return
	}

	created, err := h.Repo.CreateProduct(ctx, product)
	if err != nil {
		logrus.WithError(err).Error("failed to create product")
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("failed to create product"))
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateProduct loads by id, then merges only truthy payload fields over the
// stored document. See UpdateProductInput for the merge contract.
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("invalid product id"))
		return
	}

	var input models.UpdateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("invalid json format"))
		return
	}
	if err := validate.Struct(&input); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("invalid json format"))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	if input.Slug != "" {
		exists, err := h.Repo.SlugExists(ctx, input.Slug, id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, utils.ErrorResponse("failed to update product"))
			return
		}
		if exists {
			c.JSON(http.StatusConflict, utils.ErrorResponse("A product with this slug already exists"))
			return
		}
	}

	updated, err := h.Repo.UpdateProduct(ctx, id, input)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, utils.ErrorResponse("Product not found"))
			return
		}
		logrus.WithError(err).Error("failed to update product")
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("failed to update product"))
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("invalid product id"))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	if err := h.Repo.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, utils.ErrorResponse("Product not found"))
			return
		}
		logrus.WithError(err).Error("failed to delete product")
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("failed to delete product"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product removed"})
}
