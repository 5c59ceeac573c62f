package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookify-backend-go/internal/core"
	"bookify-backend-go/internal/models"
)

// AdminHandler handles the administrative account endpoints.
type AdminHandler struct {
	identityService core.IdentityService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(is core.IdentityService) *AdminHandler {
	return &AdminHandler{identityService: is}
}

// ListUsers handles GET /admin/users: the reconciled account listing merged
// from the identity provider, profiles and role assignments.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	records, err := h.identityService.ReconcileAccounts(c.Request.Context(), callerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// SetUserRole handles POST /admin/users/:id/role with body {"role": "..."}.
func (h *AdminHandler) SetUserRole(c *gin.Context) {
	var req models.SetRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "Invalid request payload"})
		return
	}

	assignment, err := h.identityService.SetRole(c.Request.Context(), callerID(c), c.Param("id"), req.Role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, assignment)
}
