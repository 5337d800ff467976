package routes

import (
	"fmt"
	"net/http"

	"org-management-backend/internal/api/handlers"
	"org-management-backend/internal/api/middleware"
	"org-management-backend/internal/auth"
	"org-management-backend/internal/config"
	"org-management-backend/internal/database"
	"org-management-backend/internal/repository"
	"org-management-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// Dependencies are the stores the HTTP surface is built on
type Dependencies struct {
	Organizations repository.OrganizationRepositoryInterface
	Admins        repository.AdminRepositoryInterface
	// Events is nil when the lifecycle journal is not configured
	Events       repository.LifecycleEventRepositoryInterface
	HealthChecks []database.HealthCheck
}

// NewDependencies builds the mongo stores and, when journalDB is set, the journal store
func NewDependencies(db *mongo.Database, journalDB *gorm.DB, cfg *config.Config) *Dependencies {
	deps := &Dependencies{
		Organizations: repository.NewOrganizationRepository(db, cfg.MongoTimeout()),
		Admins:        repository.NewAdminRepository(db, cfg.MongoTimeout()),
		HealthChecks:  []database.HealthCheck{database.MongoHealthCheck(db.Client())},
	}
	if journalDB != nil {
		deps.Events = repository.NewLifecycleEventRepository(journalDB)
		deps.HealthChecks = append(deps.HealthChecks, database.JournalHealthCheck(journalDB))
	}
	return deps
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(deps *Dependencies, cfg *config.Config) (*gin.Engine, error) {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	validate := validator.New()

	authConfig := auth.NewAuthConfig(cfg)
	tokenService, err := auth.NewTokenService(authConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}
	hasher := auth.NewPasswordHasher(authConfig.BcryptCost)
	authMiddleware := auth.NewAuthMiddleware(tokenService)

	// Initialize services
	journal := service.NewJournal(deps.Events)
	authorizer := service.NewAuthorizer(deps.Admins, hasher, tokenService)
	organizationService := service.NewOrganizationService(deps.Organizations, deps.Admins, authorizer, hasher, journal, validate)
	adminAuthService := service.NewAdminAuthService(deps.Admins, deps.Organizations, hasher, tokenService, validate)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(organizationService, Version, deps.HealthChecks...)
	organizationHandler := handlers.NewOrganizationHandler(organizationService)
	adminHandler := handlers.NewAdminHandler(adminAuthService)

	router.GET("/help", healthHandler.Help)
	router.GET("/ping", healthHandler.Ping)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	admin := router.Group("/admin")
	{
		admin.POST("/login", adminHandler.Login)
		admin.GET("/me", authMiddleware.RequireAuth(), adminHandler.Me)
	}

	org := router.Group("/org")
	{
		org.POST("/create", organizationHandler.CreateOrganization)
		org.GET("/get", organizationHandler.GetOrganization)
		org.PUT("/update", organizationHandler.UpdateOrganization)
		org.PUT("/update_better", organizationHandler.UpdateOrganizationExplicit)

		// Token verification happens in the service, against the organization being acted on
		org.DELETE("/delete", authMiddleware.RequireBearer(), organizationHandler.DeleteOrganization)
		org.GET("/history", authMiddleware.RequireBearer(), organizationHandler.GetOrganizationHistory)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "endpoint not found",
			"kind":       "not_found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": middleware.GetRequestID(c),
		})
	})

	return router, nil
}
