package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/havenwellness/catalog-backend/internal/handlers"
	"github.com/havenwellness/catalog-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockTestimonialRepository struct {
	mock.Mock
}

func (m *MockTestimonialRepository) ListTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Testimonial), args.Error(1)
}

func (m *MockTestimonialRepository) CreateTestimonial(ctx context.Context, testimonial models.Testimonial) (models.Testimonial, error) {
	args := m.Called(ctx, testimonial)
	return args.Get(0).(models.Testimonial), args.Error(1)
}

func setupTestimonialRouter(repo *MockTestimonialRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := handlers.NewTestimonialHandler(repo)
	router.GET("/api/testimonials", h.GetTestimonials)
	router.POST("/api/testimonials", h.CreateTestimonial)
	return router
}

func testimonialBody(rating int) map[string]interface{} {
	return map[string]interface{}{
		"name":   "Jordan",
		"review": "The sauna changed our evenings.",
		"rating": rating,
	}
}

func TestCreateTestimonialRatingBounds(t *testing.T) {
	for _, rating := range []int{1, 5} {
		repo := new(MockTestimonialRepository)
		repo.On("CreateTestimonial", mock.Anything, mock.MatchedBy(func(tm models.Testimonial) bool {
			return tm.Rating == rating
		})).Return(models.Testimonial{ID: primitive.NewObjectID(), Rating: rating}, nil).Once()

		w := doJSON(setupTestimonialRouter(repo), http.MethodPost, "/api/testimonials", testimonialBody(rating))

		assert.Equalf(t, http.StatusCreated, w.Code, "rating %d should be accepted", rating)
		repo.AssertExpectations(t)
	}

	for _, rating := range []int{0, 6, -1} {
		repo := new(MockTestimonialRepository)

		w := doJSON(setupTestimonialRouter(repo), http.MethodPost, "/api/testimonials", testimonialBody(rating))

		assert.Equalf(t, http.StatusBadRequest, w.Code, "rating %d should be rejected", rating)
		repo.AssertNotCalled(t, "CreateTestimonial", mock.Anything, mock.Anything)
	}
}

func TestCreateTestimonialMissingReview(t *testing.T) {
	repo := new(MockTestimonialRepository)
	body := testimonialBody(4)
	delete(body, "review")

	w := doJSON(setupTestimonialRouter(repo), http.MethodPost, "/api/testimonials", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetTestimonials(t *testing.T) {
	repo := new(MockTestimonialRepository)
	repo.On("ListTestimonials", mock.Anything).Return([]models.Testimonial{
		{ID: primitive.NewObjectID(), Name: "Jordan", Review: "Great", Rating: 5},
	}, nil).Once()

	w := doJSON(setupTestimonialRouter(repo), http.MethodGet, "/api/testimonials", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	repo.AssertExpectations(t)
}
