package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"org-management-backend/internal/api/routes"
	"org-management-backend/internal/config"
	"org-management-backend/internal/database"
	"org-management-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	_ "org-management-backend/docs" // This is needed for swag
)

//	@title			Organization Management Service API
//	@version		1.0
//	@description	Multi-tenant organization management: organizations backed by dedicated MongoDB collections, owner admins and JWT authorization.

//	@host		localhost:8000
//	@BasePath	/

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

const shutdownTimeout = 10 * time.Second

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	logger.Setup(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, db, err := database.Connect(ctx, cfg)
	if err != nil {
		logrus.Fatal("Failed to connect to MongoDB: ", err)
	}
	defer func() {
		if err := database.Disconnect(client, shutdownTimeout); err != nil {
			logrus.WithError(err).Warn("Failed to disconnect from MongoDB")
		}
	}()

	indexCtx, cancel := context.WithTimeout(ctx, cfg.MongoTimeout())
	err = database.EnsureIndexes(indexCtx, db)
	cancel()
	if err != nil {
		logrus.Fatal("Failed to create indexes: ", err)
	}

	var journalDB *gorm.DB
	if cfg.JournalEnabled() {
		journalDB, err = database.InitializeJournal(cfg.JournalDatabaseURL, nil)
		if err != nil {
			logrus.Fatal("Failed to initialize lifecycle journal: ", err)
		}
		logrus.Info("Lifecycle journal enabled")
	} else {
		logrus.Info("Lifecycle journal disabled, JOURNAL_DATABASE_URL is empty")
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router, err := routes.SetupRoutes(routes.NewDependencies(db, journalDB, cfg), cfg)
	if err != nil {
		logrus.Fatal("Failed to set up routes: ", err)
	}

	port := cfg.Port
	if port == "" {
		port = "8000"
	}
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.Infof("Starting server on port %s", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server: ", err)
		}
	}()

	<-ctx.Done()
	logrus.Info("Shutting down server")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Server shutdown failed")
	}
}
