package main

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"org-management-backend/internal/auth"
	"org-management-backend/internal/config"
	"org-management-backend/internal/database"
	apperrors "org-management-backend/internal/errors"
	"org-management-backend/internal/repository"
	"org-management-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OrganizationData is one organization to provision, with its owner and sample tenant documents
type OrganizationData struct {
	Name          string                   `yaml:"name"`
	OwnerEmail    string                   `yaml:"owner_email"`
	OwnerPassword string                   `yaml:"owner_password"`
	Documents     []map[string]interface{} `yaml:"documents,omitempty"`
}

type OrganizationsFile struct {
	Organizations []OrganizationData `yaml:"organizations"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	// Connect with retry (for dockerized MongoDB startup)
	client, db, err := connectWithRetry(ctx, cfg, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() { _ = database.Disconnect(client, cfg.MongoTimeout()) }()

	if err := database.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	var journalDB *gorm.DB
	if cfg.JournalEnabled() {
		// Suppress SQL logging during data loading
		journalDB, err = database.InitializeJournal(cfg.JournalDatabaseURL, &database.Options{LogLevel: logger.Silent})
		if err != nil {
			log.Fatalf("Failed to initialize lifecycle journal: %v", err)
		}
	}

	organizationService, err := buildOrganizationService(db, journalDB, cfg)
	if err != nil {
		log.Fatalf("Failed to build services: %v", err)
	}

	if err := loadDataFromYAMLFiles(ctx, organizationService, db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry waits for MongoDB to accept connections
func connectWithRetry(ctx context.Context, cfg *config.Config, maxAttempts int, delay time.Duration) (*mongo.Client, *mongo.Database, error) {
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		client, db, err := database.Connect(ctx, cfg)
		if err == nil {
			return client, db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("MongoDB not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, nil, fmt.Errorf("mongodb not ready after %d attempts", maxAttempts)
}

func buildOrganizationService(db *mongo.Database, journalDB *gorm.DB, cfg *config.Config) (*service.OrganizationService, error) {
	authConfig := auth.NewAuthConfig(cfg)
	tokens, err := auth.NewTokenService(authConfig)
	if err != nil {
		return nil, err
	}
	hasher := auth.NewPasswordHasher(authConfig.BcryptCost)

	orgs := repository.NewOrganizationRepository(db, cfg.MongoTimeout())
	admins := repository.NewAdminRepository(db, cfg.MongoTimeout())

	var events repository.LifecycleEventRepositoryInterface
	if journalDB != nil {
		events = repository.NewLifecycleEventRepository(journalDB)
	}

	return service.NewOrganizationService(
		orgs,
		admins,
		service.NewAuthorizer(admins, hasher, tokens),
		hasher,
		service.NewJournal(events),
		validator.New(),
	), nil
}

func loadDataFromYAMLFiles(ctx context.Context, organizationService *service.OrganizationService, db *mongo.Database, dataDir string) error {
	organizations, err := loadOrganizations(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load organizations: %w", err)
	}

	created, documents := 0, 0
	for _, orgData := range organizations {
		response, err := organizationService.Create(ctx, &service.CreateOrganizationRequest{
			OrganizationName: orgData.Name,
			Email:            orgData.OwnerEmail,
			Password:         orgData.OwnerPassword,
		})
		if apperrors.IsAlreadyExists(err) {
			log.Printf("⏭️  Organization %q already exists, skipping", orgData.Name)
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to create organization %s: %w", orgData.Name, err)
		}
		created++

		if len(orgData.Documents) == 0 {
			continue
		}
		docs := make([]interface{}, len(orgData.Documents))
		for i, doc := range orgData.Documents {
			docs[i] = doc
		}
		if _, err := db.Collection(response.Organization.CollectionName).InsertMany(ctx, docs); err != nil {
			return fmt.Errorf("failed to seed collection %s: %w", response.Organization.CollectionName, err)
		}
		documents += len(docs)
	}

	log.Printf("📋 Organizations: %d created, %d total", created, len(organizations))
	log.Printf("📄 Tenant documents: %d inserted", documents)
	return nil
}

// loadOrganizations reads every organizations*.yaml file under dataDir
func loadOrganizations(dataDir string) ([]OrganizationData, error) {
	var organizations []OrganizationData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasPrefix(d.Name(), "organizations") || !strings.HasSuffix(d.Name(), ".yaml") {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		var file OrganizationsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
		organizations = append(organizations, file.Organizations...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return organizations, nil
}
