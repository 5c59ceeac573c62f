package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookify-backend-go/internal/core"
	"bookify-backend-go/internal/models"
)

// ServiceHandler handles API endpoints for the service catalog.
type ServiceHandler struct {
	catalogService core.CatalogService
}

// NewServiceHandler creates a new ServiceHandler.
func NewServiceHandler(cs core.CatalogService) *ServiceHandler {
	return &ServiceHandler{catalogService: cs}
}

// ListServices handles GET /services (public).
func (h *ServiceHandler) ListServices(c *gin.Context) {
	services, err := h.catalogService.ListServices(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if services == nil {
		services = []*models.Service{}
	}
	c.JSON(http.StatusOK, services)
}

// GetService handles GET /services/:id (public).
func (h *ServiceHandler) GetService(c *gin.Context) {
	service, err := h.catalogService.GetService(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, service)
}

// CreateService handles POST /services (admin).
func (h *ServiceHandler) CreateService(c *gin.Context) {
	var req models.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "Invalid request payload"})
		return
	}

	service, err := h.catalogService.CreateService(c.Request.Context(), callerID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, service)
}

// UpdateService handles PUT /services/:id (admin).
func (h *ServiceHandler) UpdateService(c *gin.Context) {
	var req models.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "Invalid request payload"})
		return
	}

	service, err := h.catalogService.UpdateService(c.Request.Context(), callerID(c), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, service)
}

// DeleteService handles DELETE /services/:id (admin).
func (h *ServiceHandler) DeleteService(c *gin.Context) {
	if err := h.catalogService.DeleteService(c.Request.Context(), callerID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, DeleteResponse{Success: true})
}
