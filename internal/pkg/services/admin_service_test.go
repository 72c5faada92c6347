package services

import (
	"context"
	"testing"
	"time"

	"github.com/arvind1901/GLoan-App/internal/pkg/consts"
	"github.com/arvind1901/GLoan-App/internal/pkg/models"
	"github.com/arvind1901/GLoan-App/internal/pkg/utils/worker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAdminService_ListAll(t *testing.T) {
	ctx := context.Background()
	store := new(MockApplicationStore)
	pool := worker.NewWorkerPool(1)
	defer pool.Stop()

	all := []models.GlobalApplication{
		{LoanApplication: models.LoanApplication{UID: "uid-1"}, ApplicationID: "app-1"},
		{LoanApplication: models.LoanApplication{UID: "uid-2"}, ApplicationID: "app-2"},
	}
	store.On("ListAll", ctx).Return(all, nil)

	svc := NewAdminService(store, new(MockEventProducer), new(MockStatusCache), new(MockDecisionNotifier), pool)
	got, err := svc.ListAll(ctx)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestAdminService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	oid := primitive.NewObjectID()

	global := &models.GlobalApplication{
		LoanApplication: models.LoanApplication{
			ID:        oid,
			UID:       "uid-1",
			LoanType:  "Personal",
			Status:    models.StatusApproved,
			Repayment: models.RepaymentPaid,
		},
		ApplicationID: oid.Hex(),
	}

	t.Run("invalid status is rejected before any write", func(t *testing.T) {
		store := new(MockApplicationStore)
		pool := worker.NewWorkerPool(1)
		defer pool.Stop()

		svc := NewAdminService(store, new(MockEventProducer), new(MockStatusCache), new(MockDecisionNotifier), pool)
		err := svc.UpdateStatus(ctx, oid.Hex(), models.StatusUpdateRequest{Status: "Granted"})

		assert.Equal(t, consts.ErrorInvalidStatus, err)
		store.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown application id", func(t *testing.T) {
		store := new(MockApplicationStore)
		pool := worker.NewWorkerPool(1)
		defer pool.Stop()

		store.On("UpdateStatus", ctx, "missing", models.StatusApproved, "").
			Return(nil, consts.ErrorApplicationNotFound)

		svc := NewAdminService(store, new(MockEventProducer), new(MockStatusCache), new(MockDecisionNotifier), pool)
		err := svc.UpdateStatus(ctx, "missing", models.StatusUpdateRequest{Status: models.StatusApproved})

		assert.Equal(t, consts.ErrorApplicationNotFound, err)
	})

	t.Run("approval updates, audits, invalidates and notifies", func(t *testing.T) {
		store := new(MockApplicationStore)
		producer := new(MockEventProducer)
		cache := new(MockStatusCache)
		notifier := new(MockDecisionNotifier)
		pool := worker.NewWorkerPool(1)
		defer pool.Stop()

		notified := make(chan struct{})

		store.On("UpdateStatus", ctx, oid.Hex(), models.StatusApproved, models.RepaymentPaid).
			Return(global, nil)
		producer.On("PublishApplicationEvent", ctx, mock.MatchedBy(func(event models.ApplicationEvent) bool {
			return event.Event == consts.EventApplicationStatusChanged && event.Status == models.StatusApproved
		})).Return(nil)
		cache.On("Delete", ctx, "loanStatus:uid-1").Return(nil)
		notifier.On("NotifyDecision", mock.Anything, *global).Return(nil).Run(func(args mock.Arguments) {
			close(notified)
		})

		svc := NewAdminService(store, producer, cache, notifier, pool)
		err := svc.UpdateStatus(ctx, oid.Hex(), models.StatusUpdateRequest{
			Status:    models.StatusApproved,
			Repayment: models.RepaymentPaid,
		})

		require.NoError(t, err)

		select {
		case <-notified:
		case <-time.After(2 * time.Second):
			t.Fatal("decision notification was never dispatched")
		}

		store.AssertExpectations(t)
		producer.AssertExpectations(t)
		cache.AssertExpectations(t)
		notifier.AssertExpectations(t)
	})

	t.Run("audit or cache failure does not fail the update", func(t *testing.T) {
		store := new(MockApplicationStore)
		producer := new(MockEventProducer)
		cache := new(MockStatusCache)
		notifier := new(MockDecisionNotifier)
		pool := worker.NewWorkerPool(1)
		defer pool.Stop()

		store.On("UpdateStatus", ctx, oid.Hex(), models.StatusRejected, "").
			Return(global, nil)
		producer.On("PublishApplicationEvent", mock.Anything, mock.Anything).Return(assert.AnError)
		cache.On("Delete", mock.Anything, mock.Anything).Return(assert.AnError)
		notifier.On("NotifyDecision", mock.Anything, mock.Anything).Return(nil).Maybe()

		svc := NewAdminService(store, producer, cache, notifier, pool)
		err := svc.UpdateStatus(ctx, oid.Hex(), models.StatusUpdateRequest{Status: models.StatusRejected})

		require.NoError(t, err)
	})
}
