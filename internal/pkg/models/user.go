package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// UserCredential is the identity record created at signup. The bcrypt hash
// never leaves this collection.
type UserCredential struct {
	UID          primitive.ObjectID `bson:"_id"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"passwordHash"`
	Role         string             `bson:"role"`
	CreatedAt    time.Time          `bson:"createdAt"`
}

// UserProfile holds the profile fields stored once per user at signup.
type UserProfile struct {
	ID        primitive.ObjectID `bson:"_id"`
	UID       string             `bson:"uid"`
	Email     string             `bson:"email"`
	Mobile    string             `bson:"mobile"`
	CreatedAt time.Time          `bson:"createdAt"`
}
