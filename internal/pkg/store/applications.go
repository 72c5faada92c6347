package store

import (
	"context"
	"time"

	"github.com/arvind1901/GLoan-App/internal/pkg/consts"
	"github.com/arvind1901/GLoan-App/internal/pkg/logger"
	"github.com/arvind1901/GLoan-App/internal/pkg/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ApplicationRecordStore maintains the two-copy LoanApplication invariant:
// every application lives once in the per-user collection and once in the
// global admin collection, and the copies must agree on status and repayment.
// Both writes of each operation run inside a single session transaction, so a
// partial dual write cannot be observed.
type ApplicationRecordStore struct {
	client   *mongo.Client
	userApps *mongo.Collection
	allApps  *mongo.Collection
}

func NewApplicationRecordStore(client *mongo.Client, dbName string) *ApplicationRecordStore {
	database := client.Database(dbName)
	return &ApplicationRecordStore{
		client:   client,
		userApps: database.Collection(consts.UserLoanApplicationsCollection),
		allApps:  database.Collection(consts.AllApplicationsCollection),
	}
}

// Create inserts both copies of a new application and returns the generated
// id. Status is forced to Pending regardless of the input.
func (s *ApplicationRecordStore) Create(ctx context.Context, app *models.LoanApplication) (string, error) {
	app.ID = primitive.NewObjectID()
	app.Status = models.StatusPending
	if app.Repayment == "" {
		app.Repayment = models.RepaymentNone
	}
	app.CreatedAt = time.Now()

	global := models.GlobalApplication{
		LoanApplication: *app,
		ApplicationID:   app.ID.Hex(),
	}

	err := s.inTransaction(ctx, func(sc mongo.SessionContext) error {
		if _, err := s.userApps.InsertOne(sc, app); err != nil {
			return err
		}
		if _, err := s.allApps.InsertOne(sc, global); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		logger.Error(ctx, "Failed to create application for uid %s: %v", app.UID, err)
		return "", err
	}

	return app.ID.Hex(), nil
}

// UpdateStatus reads the global copy to recover the owning uid, then updates
// status and repayment on both copies. An unknown id modifies nothing.
func (s *ApplicationRecordStore) UpdateStatus(ctx context.Context, id, status, repayment string) (*models.GlobalApplication, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrorApplicationNotFound
	}

	var global models.GlobalApplication
	if err := s.allApps.FindOne(ctx, bson.M{"_id": oid}).Decode(&global); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, consts.ErrorApplicationNotFound
		}
		return nil, err
	}

	if repayment == "" {
		repayment = models.RepaymentNone
	}
	update := bson.M{"$set": bson.M{"status": status, "repayment": repayment}}

	err = s.inTransaction(ctx, func(sc mongo.SessionContext) error {
		if _, err := s.allApps.UpdateOne(sc, bson.M{"_id": oid}, update); err != nil {
			return err
		}
		if _, err := s.userApps.UpdateOne(sc, bson.M{"_id": oid, "uid": global.UID}, update); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		logger.Error(ctx, "Failed to update status of application %s: %v", id, err)
		return nil, err
	}

	global.Status = status
	global.Repayment = repayment
	return &global, nil
}

// ListByUser returns the per-user copies owned by uid, store enumeration
// order.
func (s *ApplicationRecordStore) ListByUser(ctx context.Context, uid string) ([]models.LoanApplication, error) {
	cursor, err := s.userApps.Find(ctx, bson.M{"uid": uid})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []models.LoanApplication
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// ListAll returns every global copy, unfiltered.
func (s *ApplicationRecordStore) ListAll(ctx context.Context) ([]models.GlobalApplication, error) {
	cursor, err := s.allApps.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []models.GlobalApplication
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *ApplicationRecordStore) inTransaction(ctx context.Context, fn func(mongo.SessionContext) error) error {
	session, err := s.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}
