package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/havenwellness/catalog-backend/internal/handlers"
	"github.com/havenwellness/catalog-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryRepository) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	args := m.Called(ctx, category)
	return args.Get(0).(models.Category), args.Error(1)
}

func (m *MockCategoryRepository) CategorySlugExists(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

func setupCategoryRouter(repo *MockCategoryRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := handlers.NewCategoryHandler(repo)
	router.GET("/api/categories", h.GetCategories)
	router.POST("/api/categories", h.CreateCategory)
	return router
}

func TestGetCategories(t *testing.T) {
	repo := new(MockCategoryRepository)
	repo.On("ListCategories", mock.Anything).Return([]models.Category{
		{ID: primitive.NewObjectID(), Name: "Saunas", Slug: "saunas"},
		{ID: primitive.NewObjectID(), Name: "Jacuzzis", Slug: "jacuzzis"},
	}, nil).Once()

	w := doJSON(setupCategoryRouter(repo), http.MethodGet, "/api/categories", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var got []map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 2)
	repo.AssertExpectations(t)
}

func TestCreateCategory(t *testing.T) {
	repo := new(MockCategoryRepository)
	repo.On("CategorySlugExists", mock.Anything, "saunas").Return(false, nil).Once()
	repo.On("CreateCategory", mock.Anything, mock.MatchedBy(func(c models.Category) bool {
		return c.Name == "Saunas" && c.Slug == "saunas"
	})).Return(models.Category{ID: primitive.NewObjectID(), Name: "Saunas", Slug: "saunas"}, nil).Once()

	w := doJSON(setupCategoryRouter(repo), http.MethodPost, "/api/categories",
		map[string]interface{}{"name": "Saunas", "slug": "saunas"})

	assert.Equal(t, http.StatusCreated, w.Code)
	repo.AssertExpectations(t)
}

func TestCreateCategoryMissingName(t *testing.T) {
	repo := new(MockCategoryRepository)

	w := doJSON(setupCategoryRouter(repo), http.MethodPost, "/api/categories",
		map[string]interface{}{"slug": "nameless"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	repo.AssertNotCalled(t, "CreateCategory", mock.Anything, mock.Anything)
}

func TestCreateCategoryDuplicateSlug(t *testing.T) {
	repo := new(MockCategoryRepository)
	repo.On("CategorySlugExists", mock.Anything, "saunas").Return(true, nil).Once()

	w := doJSON(setupCategoryRouter(repo), http.MethodPost, "/api/categories",
		map[string]interface{}{"name": "Saunas", "slug": "saunas"})

	assert.Equal(t, http.StatusConflict, w.Code)
	repo.AssertNotCalled(t, "CreateCategory", mock.Anything, mock.Anything)
}
