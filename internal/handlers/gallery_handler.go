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

type GalleryHandler struct {
	Repo repository.GalleryRepository
}

func NewGalleryHandler(repo repository.GalleryRepository) *GalleryHandler {
	return &GalleryHandler{Repo: repo}
}

func (h *GalleryHandler) GetGallery(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	items, err := h.Repo.ListGalleryItems(ctx)
	if err != nil {
		logrus.WithError(err).Error("failed to fetch gallery")
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("failed to fetch gallery"))
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *GalleryHandler) CreateGalleryItem(c *gin.Context) {
	var item models.GalleryItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid gallery data"))
		return
	}
	if err := validate.Struct(item); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid gallery data"))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	created, err := h.Repo.CreateGalleryItem(ctx, item)
	if err != nil {
		logrus.WithError(err).Error("failed to create gallery item")
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("failed to create gallery item"))
		return
	}
	c.JSON(http.StatusCreated, created)
}
