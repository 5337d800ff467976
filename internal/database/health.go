package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"gorm.io/gorm"
)

// HealthCheck is a named dependency probe used by the health endpoints
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// MongoHealthCheck pings the primary of the master database cluster
func MongoHealthCheck(client *mongo.Client) HealthCheck {
	return HealthCheck{
		Name: "mongodb",
		Check: func(ctx context.Context) error {
			return client.Ping(ctx, readpref.Primary())
		},
	}
}

// JournalHealthCheck pings the lifecycle journal database
func JournalHealthCheck(db *gorm.DB) HealthCheck {
	return HealthCheck{
		Name: "journal",
		Check: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return fmt.Errorf("failed to get journal connection: %w", err)
			}
			return sqlDB.PingContext(ctx)
		},
	}
}
