package handlers

import (
	"net/http"

	"org-management-backend/internal/auth"
	apperrors "org-management-backend/internal/errors"
	"org-management-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminHandler handles admin authentication endpoints
type AdminHandler struct {
	service service.AdminAuthServiceInterface
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(service service.AdminAuthServiceInterface) *AdminHandler {
	return &AdminHandler{service: service}
}

// Login handles POST /admin/login
// @Summary Admin login
// @Description Exchange admin credentials for a bearer token scoped to the admin's organization
// @Tags admin
// @Accept json
// @Produce json
// @Param credentials body service.LoginRequest true "Admin credentials"
// @Success 200 {object} service.TokenResponse "Issued token"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 401 {object} ErrorResponse "Invalid credentials"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	token, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, token)
}

// Me handles GET /admin/me
// @Summary Current admin
// @Description Get the profile of the admin the bearer token was issued to
// @Tags admin
// @Produce json
// @Success 200 {object} service.AdminResponse "Admin profile"
// @Failure 401 {object} ErrorResponse "Missing, invalid or stale token"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /admin/me [get]
func (h *AdminHandler) Me(c *gin.Context) {
	claims, ok := auth.GetAuthClaims(c)
	if !ok {
		respondError(c, apperrors.ErrMissingToken)
		return
	}

	admin, err := h.service.CurrentAdmin(c.Request.Context(), claims)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, admin)
}
