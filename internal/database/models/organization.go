package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	// OrganizationsCollection holds organization metadata in the master database
	OrganizationsCollection = "organizations"
	// CollectionPrefix prefixes every per-tenant collection name
	CollectionPrefix = "org_"
)

// Organization is the metadata record of one tenant
type Organization struct {
	ID             primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name           string              `bson:"name" json:"name"` // slug, unique
	DisplayName    string              `bson:"display_name" json:"display_name"`
	CollectionName string              `bson:"collection_name" json:"collection_name"`
	OwnerAdminID   *primitive.ObjectID `bson:"owner_admin_id" json:"owner_admin_id,omitempty"`
	Status         OrganizationStatus  `bson:"status" json:"status"`
	CreatedAt      time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time           `bson:"updated_at" json:"updated_at"`
}

// CollectionNameFor derives the tenant collection name from a slug
func CollectionNameFor(slug string) string {
	return CollectionPrefix + slug
}
