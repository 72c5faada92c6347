package store

import (
	"fmt"
	"time"

	"github.com/arvind1901/GLoan-App/internal/pkg/consts"
	"github.com/arvind1901/GLoan-App/internal/pkg/db"
	"github.com/arvind1901/GLoan-App/internal/pkg/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UsersRepository struct {
	credentials *MongoRepository[models.UserCredential]
	profiles    *MongoRepository[models.UserProfile]
}

func NewUsersRepository() *UsersRepository {
	credentials := db.MDB.Database.Collection(consts.UsersCollection)
	profiles := db.MDB.Database.Collection(consts.ProfilesCollection)
	return &UsersRepository{
		credentials: NewMongoRepository[models.UserCredential](credentials),
		profiles:    NewMongoRepository[models.UserProfile](profiles),
	}
}

func (r *UsersRepository) EmailExists(email string) (bool, error) {
	count, err := r.credentials.CountDocuments(bson.M{"email": email})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateUser writes the identity record and the profile document. Exactly one
// of each exists per signup.
func (r *UsersRepository) CreateUser(email, passwordHash, mobile string) (string, error) {
	uid := primitive.NewObjectID()
	now := time.Now()

	credential := models.UserCredential{
		UID:          uid,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         models.RoleUser,
		CreatedAt:    now,
	}
	if _, err := r.credentials.Create(credential); err != nil {
		return "", fmt.Errorf("failed to insert credential: %w", err)
	}

	profile := models.UserProfile{
		ID:        primitive.NewObjectID(),
		UID:       uid.Hex(),
		Email:     email,
		Mobile:    mobile,
		CreatedAt: now,
	}
	if _, err := r.profiles.Create(profile); err != nil {
		return "", fmt.Errorf("failed to insert profile: %w", err)
	}

	return uid.Hex(), nil
}

func (r *UsersRepository) CredentialByEmail(email string) (*models.UserCredential, error) {
	result, err := r.credentials.Read(bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *UsersRepository) ProfileByUID(uid string) (*models.UserProfile, error) {
	result, err := r.profiles.Read(bson.M{"uid": uid})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// IsDuplicateKey reports whether err is the unique-index violation raised on
// a concurrent signup with the same email.
func IsDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}
