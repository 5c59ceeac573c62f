package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookify-backend-go/internal/core"
	"bookify-backend-go/internal/models"
)

// CategoryHandler handles API endpoints for service categories.
type CategoryHandler struct {
	catalogService core.CatalogService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(cs core.CatalogService) *CategoryHandler {
	return &CategoryHandler{catalogService: cs}
}

// ListCategories handles GET /categories (public).
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalogService.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if categories == nil {
		categories = []*models.Category{}
	}
	c.JSON(http.StatusOK, categories)
}

// CreateCategory handles POST /categories (admin).
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "Invalid request payload"})
		return
	}

	category, err := h.catalogService.CreateCategory(c.Request.Context(), callerID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

// DeleteCategory handles DELETE /categories/:id (admin).
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	if err := h.catalogService.DeleteCategory(c.Request.Context(), callerID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, DeleteResponse{Success: true})
}
