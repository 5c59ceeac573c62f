package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"bookify-backend-go/internal/core"
	"bookify-backend-go/internal/models"
)

type stubCatalogService struct {
	service    *models.Service
	services   []*models.Service
	category   *models.Category
	categories []*models.Category
	err        error
}

func (s *stubCatalogService) ListServices(ctx context.Context) ([]*models.Service, error) {
	return s.services, s.err
}

func (s *stubCatalogService) GetService(ctx context.Context, serviceID string) (*models.Service, error) {
	return s.service, s.err
}

func (s *stubCatalogService) CreateService(ctx context.Context, callerID string, req models.CreateServiceRequest) (*models.Service, error) {
	return s.service, s.err
}

func (s *stubCatalogService) UpdateService(ctx context.Context, callerID, serviceID string, req models.UpdateServiceRequest) (*models.Service, error) {
	return s.service, s.err
}

func (s *stubCatalogService) DeleteService(ctx context.Context, callerID, serviceID string) error {
	return s.err
}

func (s *stubCatalogService) ListCategories(ctx context.Context) ([]*models.Category, error) {
	return s.categories, s.err
}

func (s *stubCatalogService) CreateCategory(ctx context.Context, callerID string, req models.CreateCategoryRequest) (*models.Category, error) {
	return s.category, s.err
}

func (s *stubCatalogService) DeleteCategory(ctx context.Context, callerID, categoryID string) error {
	return s.err
}

func newCategoryTestRouter(uid string, stub *stubCatalogService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewCategoryHandler(stub)
	router.GET("/api/categories", handler.ListCategories)
	group := router.Group("/api/categories", identityFor(uid))
	group.POST("", handler.CreateCategory)
	group.DELETE("/:id", handler.DeleteCategory)
	return router
}

func TestCategoryHandler_ListCategories_EmptyIsJSONArray(t *testing.T) {
	router := newCategoryTestRouter("", &stubCatalogService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/categories", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestCategoryHandler_CreateCategory(t *testing.T) {
	stub := &stubCatalogService{category: &models.Category{ID: "cat-1", Name: "Gardening"}}
	router := newCategoryTestRouter("admin-1", stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/categories", strings.NewReader(`{"name":"Gardening"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Gardening"`)
}

func TestCategoryHandler_CreateCategory_AdminRequired(t *testing.T) {
	stub := &stubCatalogService{err: core.ErrAdminRequired}
	router := newCategoryTestRouter("user-1", stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/categories", strings.NewReader(`{"name":"Gardening"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"detail":"Admin privileges required"}`, w.Body.String())
}

func TestCategoryHandler_DeleteCategory(t *testing.T) {
	router := newCategoryTestRouter("admin-1", &stubCatalogService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/categories/cat-1", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
}

func TestCategoryHandler_DeleteCategory_NotFound(t *testing.T) {
	router := newCategoryTestRouter("admin-1", &stubCatalogService{err: core.ErrCategoryNotFound})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/categories/cat-missing", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail":"Not found"}`, w.Body.String())
}
