package services

import (
	"context"
	"fmt"

	"github.com/arvind1901/GLoan-App/configs"
	"github.com/arvind1901/GLoan-App/internal/pkg/common"
	"github.com/arvind1901/GLoan-App/internal/pkg/consts"
	"github.com/arvind1901/GLoan-App/internal/pkg/logger"
	"github.com/arvind1901/GLoan-App/internal/pkg/models"
)

type LoanApplicationService struct {
	applicationStore ApplicationStore
	eventProducer    EventProducer
	statusCache      StatusCache
}

func NewLoanApplicationService(applicationStore ApplicationStore, eventProducer EventProducer, statusCache StatusCache) *LoanApplicationService {
	return &LoanApplicationService{
		applicationStore: applicationStore,
		eventProducer:    eventProducer,
		statusCache:      statusCache,
	}
}

// Apply creates both copies of a new Pending application and returns the
// generated id. Money fields missing from the request are derived from the
// configured flat rate table.
func (s *LoanApplicationService) Apply(ctx context.Context, uid string, req models.ApplyLoanRequest) (string, error) {
	tenure := req.TenureMonths
	if tenure <= 0 {
		tenure = int32(configs.DEFAULT_TENURE_MONTHS)
	}

	rate := configs.AnnualInterestRate(req.LoanType)
	schedule := common.ComputeSchedule(req.RequestedLoanAmount, tenure, rate)
	app := common.SerializeLoanApplication(uid, req, tenure, schedule)

	id, err := s.applicationStore.Create(ctx, &app)
	if err != nil {
		return "", err
	}

	logger.Info(ctx, "Loan application created applicationId=%s uid=%s amount=%.2f", id, uid, app.RequestedLoanAmount)

	event := common.SerializeApplicationEvent(consts.EventApplicationCreated, app)
	if err := s.eventProducer.PublishApplicationEvent(ctx, event); err != nil {
		// The audit stream is best effort; both copies are already durable.
		logger.Error(ctx, "Failed to publish created event for %s: %v", id, err)
	}

	if err := s.statusCache.Delete(ctx, StatusCacheKey(uid)); err != nil {
		logger.Warn(ctx, "Failed to invalidate status cache for uid %s: %v", uid, err)
	}

	return id, nil
}

// StatusCacheKey is the redis key holding a user's cached loan-status
// listing.
func StatusCacheKey(uid string) string {
	return fmt.Sprintf("loanStatus:%s", uid)
}
