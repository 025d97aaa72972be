package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/havenwellness/catalog-backend/internal/handlers"
	"github.com/havenwellness/catalog-backend/internal/middleware"
	"github.com/havenwellness/catalog-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/time/rate"
)

type MockInquiryRepository struct {
	mock.Mock
}

func (m *MockInquiryRepository) ListInquiries(ctx context.Context) ([]models.Inquiry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Inquiry), args.Error(1)
}

func (m *MockInquiryRepository) CreateInquiry(ctx context.Context, inquiry models.Inquiry) (models.Inquiry, error) {
	args := m.Called(ctx, inquiry)
	return args.Get(0).(models.Inquiry), args.Error(1)
}

func setupInquiryRouter(repo *MockInquiryRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := handlers.NewInquiryHandler(repo)
	router.POST("/api/inquiries", h.CreateInquiry)
	router.GET("/api/inquiries", h.GetInquiries)
	return router
}

func TestCreateInquiryWithoutOptionalFields(t *testing.T) {
	repo := new(MockInquiryRepository)
	repo.On("CreateInquiry", mock.Anything, mock.MatchedBy(func(in models.Inquiry) bool {
		return in.Name == "A" && in.Email == "a@x.com" && in.Phone == "" && in.ProductRef == ""
	})).Return(models.Inquiry{ID: primitive.NewObjectID(), Name: "A", Email: "a@x.com", Message: "hi"}, nil).Once()

	w := doJSON(setupInquiryRouter(repo), http.MethodPost, "/api/inquiries",
		map[string]interface{}{"name": "A", "email": "a@x.com", "message": "hi"})

	assert.Equal(t, http.StatusCreated, w.Code)
	var got map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	// phone was never set, so it must not appear in the response
	_, hasPhone := got["phone"]
	assert.False(t, hasPhone)
	repo.AssertExpectations(t)
}

func TestCreateInquiryMissingMessage(t *testing.T) {
	repo := new(MockInquiryRepository)

	w := doJSON(setupInquiryRouter(repo), http.MethodPost, "/api/inquiries",
		map[string]interface{}{"name": "A", "email": "a@x.com"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	repo.AssertNotCalled(t, "CreateInquiry", mock.Anything, mock.Anything)
}

func TestCreateInquiryMalformedEmail(t *testing.T) {
	repo := new(MockInquiryRepository)

	w := doJSON(setupInquiryRouter(repo), http.MethodPost, "/api/inquiries",
		map[string]interface{}{"name": "A", "email": "not-an-email", "message": "hi"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	repo.AssertNotCalled(t, "CreateInquiry", mock.Anything, mock.Anything)
}

func TestGetInquiriesNewestFirst(t *testing.T) {
	repo := new(MockInquiryRepository)
	t1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	t3 := t2.Add(time.Hour)
	// The repository sorts by date descending; the handler must preserve it.
	repo.On("ListInquiries", mock.Anything).Return([]models.Inquiry{
		{Name: "third", Date: t3},
		{Name: "second", Date: t2},
		{Name: "first", Date: t1},
	}, nil).Once()

	w := doJSON(setupInquiryRouter(repo), http.MethodGet, "/api/inquiries", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var got []map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "third", got[0]["name"])
	assert.Equal(t, "second", got[1]["name"])
	assert.Equal(t, "first", got[2]["name"])
}

func TestCreateInquiryRateLimited(t *testing.T) {
	repo := new(MockInquiryRepository)
	repo.On("CreateInquiry", mock.Anything, mock.Anything).
		Return(models.Inquiry{ID: primitive.NewObjectID()}, nil)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := handlers.NewInquiryHandler(repo)
	router.POST("/api/inquiries", middleware.RateLimit(rate.Limit(0.001), 2), h.CreateInquiry)

	body := map[string]interface{}{"name": "A", "email": "a@x.com", "message": "hi"}
	assert.Equal(t, http.StatusCreated, doJSON(router, http.MethodPost, "/api/inquiries", body).Code)
	assert.Equal(t, http.StatusCreated, doJSON(router, http.MethodPost, "/api/inquiries", body).Code)
	assert.Equal(t, http.StatusTooManyRequests, doJSON(router, http.MethodPost, "/api/inquiries", body).Code)
}
