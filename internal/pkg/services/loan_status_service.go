package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/arvind1901/GLoan-App/configs"
	"github.com/arvind1901/GLoan-App/internal/pkg/logger"
	"github.com/arvind1901/GLoan-App/internal/pkg/models"
)

type LoanStatusService struct {
	applicationStore ApplicationStore
	statusCache      StatusCache
}

func NewLoanStatusService(applicationStore ApplicationStore, statusCache StatusCache) *LoanStatusService {
	return &LoanStatusService{
		applicationStore: applicationStore,
		statusCache:      statusCache,
	}
}

// ListOwn returns the caller's applications, served from the redis cache when
// fresh. Writers invalidate the key, so a hit is never stale.
func (s *LoanStatusService) ListOwn(ctx context.Context, uid string) ([]models.LoanApplication, error) {
	key := StatusCacheKey(uid)

	if cached, err := s.statusCache.Get(ctx, key); err == nil {
		var apps []models.LoanApplication
		if err := json.Unmarshal(cached, &apps); err == nil {
			return apps, nil
		}
		logger.Warn(ctx, "Discarding undecodable status cache entry for uid %s", uid)
	}

	apps, err := s.applicationStore.ListByUser(ctx, uid)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(apps); err == nil {
		ttl := time.Duration(configs.LOAN_STATUS_CACHE_TTL_MINUTES) * time.Minute
		if err := s.statusCache.Set(ctx, key, payload, ttl); err != nil {
			logger.Warn(ctx, "Failed to cache status listing for uid %s: %v", uid, err)
		}
	}

	return apps, nil
}
