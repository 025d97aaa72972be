package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/havenwellness/catalog-backend/internal/adapters/repository"
	"github.com/havenwellness/catalog-backend/internal/models"
	"github.com/havenwellness/catalog-backend/utils"
	"github.com/sirupsen/logrus"
)

type CategoryHandler struct {
	Repo repository.CategoryRepository
}

func NewCategoryHandler(repo repository.CategoryRepository) *CategoryHandler {
	return &CategoryHandler{Repo: repo}
}

func (h *CategoryHandler) GetCategories(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	categories, err := h.Repo.ListCategories(ctx)
	if err != nil {
		logrus.WithError(err).Error("failed to fetch categories")
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("failed to fetch categories"))
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var category models.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid category data"))
		return
	}
	if err := validate.Struct(category); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid category data"))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	// The seed script upserts by slug, so slug uniqueness is load-bearing.
	exists, err := h.Repo.CategorySlugExists(ctx, category.Slug)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("failed to create category"))
		return
	}
	if exists {
		c.JSON(http.StatusConflict, utils.ErrorResponse("category already exists"))
		return
	}

	created, err := h.Repo.CreateCategory(ctx, category)
	if err != nil {
		logrus.WithError(err).Error("failed to create category")
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("failed to create category"))
		return
	}
	c.JSON(http.StatusCreated, created)
}
