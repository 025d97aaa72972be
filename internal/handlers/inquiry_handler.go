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

type InquiryHandler struct {
	Repo repository.InquiryRepository
}

func NewInquiryHandler(repo repository.InquiryRepository) *InquiryHandler {
	return &InquiryHandler{Repo: repo}
}

// CreateInquiry is the only unauthenticated write path; the route carries a
// per-IP rate limit in front of it.
func (h *InquiryHandler) CreateInquiry(c *gin.Context) {
	var inquiry models.Inquiry
	if err := c.ShouldBindJSON(&inquiry); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid inquiry data"))
		return
	}
	if err := validate.Struct(inquiry); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid inquiry data"))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	created, err := h.Repo.CreateInquiry(ctx, inquiry)
	if err != nil {
		logrus.WithError(err).Error("failed to create inquiry")
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("failed to create inquiry"))
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetInquiries lists inquiries newest-first for the admin dashboard.
func (h *InquiryHandler) GetInquiries(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	inquiries, err := h.Repo.ListInquiries(ctx)
	if err != nil {
		logrus.WithError(err).Error("failed to fetch inquiries")
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("failed to fetch inquiries"))
		return
	}
	c.JSON(http.StatusOK, inquiries)
}
