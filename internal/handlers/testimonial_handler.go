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

type TestimonialHandler struct {
	Repo repository.TestimonialRepository
}

func NewTestimonialHandler(repo repository.TestimonialRepository) *TestimonialHandler {
	return &TestimonialHandler{Repo: repo}
}

func (h *TestimonialHandler) GetTestimonials(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	testimonials, err := h.Repo.ListTestimonials(ctx)
	if err != nil {
		logrus.WithError(err).Error("failed to fetch testimonials")
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("failed to fetch testimonials"))
		return
	}
	c.JSON(http.StatusOK, testimonials)
}

func (h *TestimonialHandler) CreateTestimonial(c *gin.Context) {
	var testimonial models.Testimonial
	if err := c.ShouldBindJSON(&testimonial); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid testimonial data"))
		return
	}
	// Rating must land in [1,5]; out-of-range values are rejected here.
	if err := validate.Struct(testimonial); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid testimonial data"))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	created, err := h.Repo.CreateTestimonial(ctx, testimonial)
	if err != nil {
		logrus.WithError(err).Error("failed to create testimonial")
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("failed to create testimonial"))
		return
	}
	c.JSON(http.StatusCreated, created)
}
