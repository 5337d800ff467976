package database

import (
	"context"
	"fmt"
	"time"

	"org-management-backend/internal/config"
	"org-management-backend/internal/database/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Connect opens the MongoDB client, verifies it with a ping and returns the master database.
func Connect(ctx context.Context, cfg *config.Config) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.MongoTimeout())
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(cfg.MongoURI).
		SetServerSelectionTimeout(cfg.MongoTimeout())
	if cfg.MongoUsername != "" {
		clientOptions.SetAuth(options.Credential{
			Username: cfg.MongoUsername,
			Password: cfg.MongoPassword,
		})
	}

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, nil, fmt.Errorf("connect mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("ping mongodb: %w", err)
	}

	return client, client.Database(cfg.MasterDB), nil
}

// Disconnect closes the client, waiting at most timeout for in-flight operations.
func Disconnect(client *mongo.Client, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return client.Disconnect(ctx)
}

// EnsureIndexes creates the unique indexes the master collections rely on.
// The unique index on organizations.name is what makes slug uniqueness hold under concurrent creates.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	orgIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetName("uniq_name").SetUnique(true),
		},
	}
	if _, err := db.Collection(models.OrganizationsCollection).Indexes().CreateMany(ctx, orgIndexes); err != nil {
		return fmt.Errorf("create organization indexes: %w", err)
	}

	adminIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("uniq_email").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "org_id", Value: 1}},
			Options: options.Index().SetName("idx_org_id"),
		},
	}
	if _, err := db.Collection(models.AdminsCollection).Indexes().CreateMany(ctx, adminIndexes); err != nil {
		return fmt.Errorf("create admin indexes: %w", err)
	}

	return nil
}
