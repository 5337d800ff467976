package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"org-management-backend/internal/auth"
	"org-management-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// OrganizationHandler handles HTTP requests for organizations
type OrganizationHandler struct {
	service service.OrganizationServiceInterface
}

// NewOrganizationHandler creates a new organization handler
func NewOrganizationHandler(service service.OrganizationServiceInterface) *OrganizationHandler {
	return &OrganizationHandler{service: service}
}

// OrganizationEnvelope wraps a single organization in responses
type OrganizationEnvelope struct {
	Organization *service.OrganizationResponse `json:"organization"`
}

// DeleteOrganizationRequest is the optional body of DELETE /org/delete
type DeleteOrganizationRequest struct {
	OrganizationName string `json:"organization_name" example:"Acme Inc"`
}

// CreateOrganization handles POST /org/create
// @Summary Create an organization
// @Description Create an organization, its tenant collection and its owner admin
// @Tags organizations
// @Accept json
// @Produce json
// @Param organization body service.CreateOrganizationRequest true "Organization and owner credentials"
// @Success 201 {object} service.CreateOrganizationResponse "Organization created"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 409 {object} ErrorResponse "Organization or admin email already exists"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /org/create [post]
func (h *OrganizationHandler) CreateOrganization(c *gin.Context) {
	var req service.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	response, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// GetOrganization handles GET /org/get
// @Summary Get an organization
// @Description Get organization metadata by name. The name is normalized before lookup.
// @Tags organizations
// @Produce json
// @Param organization_name query string true "Organization name"
// @Success 200 {object} OrganizationEnvelope "Organization metadata"
// @Failure 400 {object} ErrorResponse "Missing organization name"
// @Failure 404 {object} ErrorResponse "Organization not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /org/get [get]
func (h *OrganizationHandler) GetOrganization(c *gin.Context) {
	name := strings.TrimSpace(c.Query("organization_name"))
	if name == "" {
		respondBadRequest(c, "organization_name is required")
		return
	}

	org, err := h.service.Get(c.Request.Context(), name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, OrganizationEnvelope{Organization: org})
}

// UpdateOrganization handles PUT /org/update
// @Summary Rename an organization in place
// @Description Re-apply a name to the organization it designates. Credentials must belong to that organization.
// @Tags organizations
// @Accept json
// @Produce json
// @Param organization body service.RenameOrganizationRequest true "Organization name and admin credentials"
// @Success 200 {object} OrganizationEnvelope "Updated organization"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 401 {object} ErrorResponse "Invalid credentials"
// @Failure 404 {object} ErrorResponse "Organization not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /org/update [put]
func (h *OrganizationHandler) UpdateOrganization(c *gin.Context) {
	var req service.RenameOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	org, err := h.service.Rename(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, OrganizationEnvelope{Organization: org})
}

// UpdateOrganizationExplicit handles PUT /org/update_better
// @Summary Rename an organization
// @Description Move an organization to a new name. Tenant data is copied to the new collection before the old one is dropped.
// @Tags organizations
// @Accept json
// @Produce json
// @Param organization body service.RenameOrganizationExplicitRequest true "Current name, new name and admin credentials"
// @Success 200 {object} OrganizationEnvelope "Renamed organization"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 401 {object} ErrorResponse "Invalid credentials"
// @Failure 404 {object} ErrorResponse "Organization not found"
// @Failure 409 {object} ErrorResponse "New name already taken"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /org/update_better [put]
func (h *OrganizationHandler) UpdateOrganizationExplicit(c *gin.Context) {
	var req service.RenameOrganizationExplicitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	org, err := h.service.RenameExplicit(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, OrganizationEnvelope{Organization: org})
}

// DeleteOrganization handles DELETE /org/delete
// @Summary Delete an organization
// @Description Delete an organization, its tenant collection and all its admins. The token must have been issued for this organization.
// @Tags organizations
// @Accept json
// @Produce json
// @Param organization body DeleteOrganizationRequest false "Organization name (preferred over the query parameter)"
// @Param organization_name query string false "Organization name"
// @Success 200 {object} service.DeleteOrganizationResponse "Organization deleted"
// @Failure 400 {object} ErrorResponse "Missing organization name"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 403 {object} ErrorResponse "Token issued for another organization"
// @Failure 404 {object} ErrorResponse "Organization not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /org/delete [delete]
func (h *OrganizationHandler) DeleteOrganization(c *gin.Context) {
	name, ok := deleteTarget(c)
	if !ok {
		return
	}

	token, _ := auth.GetBearerToken(c)
	response, err := h.service.Delete(c.Request.Context(), name, token)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// deleteTarget reads the organization name from the JSON body, falling back to the query string
func deleteTarget(c *gin.Context) (string, bool) {
	var req DeleteOrganizationRequest
	if c.Request.Body != nil {
		// io.EOF is an empty body, including chunked requests with ContentLength -1
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			respondBadRequest(c, "invalid request body")
			return "", false
		}
	}

	name := strings.TrimSpace(req.OrganizationName)
	if name == "" {
		name = strings.TrimSpace(c.Query("organization_name"))
	}
	if name == "" {
		respondBadRequest(c, "organization_name is required")
		return "", false
	}
	return name, true
}

// GetOrganizationHistory handles GET /org/history
// @Summary Get the lifecycle journal of an organization
// @Description List the recorded create, rename and delete steps of an organization, oldest first
// @Tags organizations
// @Produce json
// @Param organization_name query string true "Organization name"
// @Param limit query int false "Page size (default 100)"
// @Param offset query int false "Page offset"
// @Success 200 {object} service.LifecycleHistoryResponse "Journal entries"
// @Failure 400 {object} ErrorResponse "Invalid query"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 403 {object} ErrorResponse "Token issued for another organization"
// @Failure 404 {object} ErrorResponse "Organization not found"
// @Failure 500 {object} ErrorResponse "Internal server error or journal not configured"
// @Security BearerAuth
// @Router /org/history [get]
func (h *OrganizationHandler) GetOrganizationHistory(c *gin.Context) {
	name := strings.TrimSpace(c.Query("organization_name"))
	if name == "" {
		respondBadRequest(c, "organization_name is required")
		return
	}

	limit, err := queryInt(c, "limit")
	if err != nil {
		respondBadRequest(c, "limit must be an integer")
		return
	}
	offset, err := queryInt(c, "offset")
	if err != nil {
		respondBadRequest(c, "offset must be an integer")
		return
	}

	token, _ := auth.GetBearerToken(c)
	history, err := h.service.History(c.Request.Context(), name, token, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, history)
}

func queryInt(c *gin.Context, key string) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
