package db

import (
	"context"
	"time"

	"github.com/arvind1901/GLoan-App/internal/pkg/consts"
	"github.com/arvind1901/GLoan-App/internal/pkg/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the handlers rely on: the unique email
// index that backs duplicate-signup rejection and the owner index used by the
// per-user listing.
func EnsureIndexes() {
	if MDB == nil || MDB.Database == nil {
		logger.Info("Skipping index setup: MongoDB is not connected")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	users := MDB.Database.Collection(consts.UsersCollection)
	_, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		logger.Error("Failed to create unique email index: %v", err)
	}

	userApps := MDB.Database.Collection(consts.UserLoanApplicationsCollection)
	_, err = userApps.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "uid", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	if err != nil {
		logger.Error("Failed to create uid index: %v", err)
	}
}
