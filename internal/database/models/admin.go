package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminsCollection holds admin credentials in the master database
const AdminsCollection = "admin_users"

// Admin is a credential holder scoped to exactly one organization
type Admin struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrgID        primitive.ObjectID `bson:"org_id" json:"org_id"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	Role         AdminRole          `bson:"role" json:"role"`
	IsActive     bool               `bson:"is_active" json:"is_active"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}
