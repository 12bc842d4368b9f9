package users

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered account document.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username string             `bson:"username" json:"username"`
	JoinedAt time.Time          `bson:"joined_at" json:"joined_at"`
}

// Global field names for validation and store queries
const (
	FieldID       = "_id"
	FieldUsername = "username"
	FieldJoinedAt = "joined_at"
)
