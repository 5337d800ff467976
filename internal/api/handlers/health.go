package handlers

import (
	"context"
	"net/http"
	"time"

	"org-management-backend/internal/database"
	"org-management-backend/internal/service"

	"github.com/gin-gonic/gin"
)

const healthCheckTimeout = 3 * time.Second

// HealthHandler handles health check and service info endpoints
type HealthHandler struct {
	organizations service.OrganizationServiceInterface
	checks        []database.HealthCheck
	version       string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(organizations service.OrganizationServiceInterface, version string, checks ...database.HealthCheck) *HealthHandler {
	return &HealthHandler{
		organizations: organizations,
		checks:        checks,
		version:       version,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status" example:"healthy"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version" example:"1.0.0"`
	Services  map[string]string `json:"services"`
}

// MessageResponse represents a plain message
type MessageResponse struct {
	Message string `json:"message" example:"Organization Management Service is running."`
}

// PingResponse represents the ping response
type PingResponse struct {
	Message               string `json:"message" example:"pong"`
	OrganizationsInMaster int64  `json:"organizations_in_master" example:"3"`
}

// runChecks probes every dependency and reports whether all of them answered
func (h *HealthHandler) runChecks(ctx context.Context, ok, failed string) (bool, map[string]string) {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	healthy := true
	services := make(map[string]string, len(h.checks))
	for _, check := range h.checks {
		if err := check.Check(ctx); err != nil {
			healthy = false
			services[check.Name] = failed + ": " + err.Error()
			continue
		}
		services[check.Name] = ok
	}
	return healthy, services
}

// Health returns the health status of the application
// @Summary Health check
// @Description Get the overall health status of the application including database connectivity
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Application is healthy"
// @Failure 503 {object} HealthResponse "Application is unhealthy"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	healthy, services := h.runChecks(c.Request.Context(), "healthy", "error")

	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   h.version,
		Services:  services,
	}

	statusCode := http.StatusOK
	if !healthy {
		response.Status = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}

// Ready returns the readiness status of the application
// @Summary Readiness check
// @Description Check if the application is ready to serve requests
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is ready"
// @Failure 503 {object} map[string]interface{} "Application is not ready"
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	ready, services := h.runChecks(c.Request.Context(), "ready", "not ready")

	statusCode := http.StatusOK
	if !ready {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, gin.H{
		"ready":     ready,
		"timestamp": time.Now(),
		"services":  services,
	})
}

// Live returns the liveness status of the application
// @Summary Liveness check
// @Description Check if the application is alive and responding
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is alive"
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"alive":     true,
		"timestamp": time.Now(),
	})
}

// Help handles GET /help
// @Summary Service banner
// @Tags health
// @Produce json
// @Success 200 {object} MessageResponse "Service is running"
// @Router /help [get]
func (h *HealthHandler) Help(c *gin.Context) {
	c.JSON(http.StatusOK, MessageResponse{Message: "Organization Management Service is running."})
}

// Ping handles GET /ping
// @Summary Ping the master database
// @Description Answer pong together with the number of organizations in the master database
// @Tags health
// @Produce json
// @Success 200 {object} PingResponse "Pong"
// @Failure 500 {object} ErrorResponse "Master database unavailable"
// @Router /ping [get]
func (h *HealthHandler) Ping(c *gin.Context) {
	count, err := h.organizations.Count(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, PingResponse{Message: "pong", OrganizationsInMaster: count})
}
