package services

import (
	"context"

	"github.com/arvind1901/GLoan-App/internal/pkg/common"
	"github.com/arvind1901/GLoan-App/internal/pkg/consts"
	"github.com/arvind1901/GLoan-App/internal/pkg/logger"
	"github.com/arvind1901/GLoan-App/internal/pkg/models"
	"github.com/arvind1901/GLoan-App/internal/pkg/utils/worker"
)

type AdminService struct {
	applicationStore ApplicationStore
	eventProducer    EventProducer
	statusCache      StatusCache
	notifier         DecisionNotifier
	workerPool       *worker.WorkerPool
}

func NewAdminService(applicationStore ApplicationStore, eventProducer EventProducer, statusCache StatusCache, notifier DecisionNotifier, workerPool *worker.WorkerPool) *AdminService {
	return &AdminService{
		applicationStore: applicationStore,
		eventProducer:    eventProducer,
		statusCache:      statusCache,
		notifier:         notifier,
		workerPool:       workerPool,
	}
}

// ListAll returns every application in the global collection, no filtering.
func (s *AdminService) ListAll(ctx context.Context) ([]models.GlobalApplication, error) {
	return s.applicationStore.ListAll(ctx)
}

// UpdateStatus moves an application to the requested status. Transitions are
// unrestricted: any status may be set to any other, including back to
// Pending.
func (s *AdminService) UpdateStatus(ctx context.Context, id string, req models.StatusUpdateRequest) error {
	if !models.IsValidStatus(req.Status) {
		return consts.ErrorInvalidStatus
	}

	global, err := s.applicationStore.UpdateStatus(ctx, id, req.Status, req.Repayment)
	if err != nil {
		return err
	}

	logger.Info(ctx, "Application status updated applicationId=%s status=%s repayment=%s",
		id, global.Status, global.Repayment)

	event := common.SerializeApplicationEvent(consts.EventApplicationStatusChanged, global.LoanApplication)
	if err := s.eventProducer.PublishApplicationEvent(ctx, event); err != nil {
		logger.Error(ctx, "Failed to publish status event for %s: %v", id, err)
	}

	if err := s.statusCache.Delete(ctx, StatusCacheKey(global.UID)); err != nil {
		logger.Warn(ctx, "Failed to invalidate status cache for uid %s: %v", global.UID, err)
	}

	// Notify off the request path; a slow SMS gateway must not hold the
	// admin response.
	updated := *global
	s.workerPool.Submit(func() {
		if err := s.notifier.NotifyDecision(context.Background(), updated); err != nil {
			logger.Error("Failed to notify applicant for %s: %v", updated.ApplicationID, err)
		}
	})

	return nil
}
