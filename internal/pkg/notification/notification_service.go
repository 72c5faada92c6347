package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/arvind1901/GLoan-App/configs"
	"github.com/arvind1901/GLoan-App/internal/pkg/common"
	"github.com/arvind1901/GLoan-App/internal/pkg/logger"
	"github.com/arvind1901/GLoan-App/internal/pkg/models"
	"github.com/arvind1901/GLoan-App/internal/pkg/pubsub"
)

// ProfilesRepo resolves the applicant's mobile number for the notification
// payload.
type ProfilesRepo interface {
	ProfileByUID(uid string) (*models.UserProfile, error)
}

// NotificationService pushes decision notifications to the Pub/Sub topic the
// SMS gateway consumes.
type NotificationService struct {
	profilesRepo    ProfilesRepo
	pubsubPublisher pubsub.PubSubPublisherInterface
}

func NewNotificationService(profilesRepo ProfilesRepo, pubsubPublisher pubsub.PubSubPublisherInterface) *NotificationService {
	return &NotificationService{
		profilesRepo:    profilesRepo,
		pubsubPublisher: pubsubPublisher,
	}
}

// NotifyDecision tells the applicant the outcome of an admin status update.
func (h *NotificationService) NotifyDecision(ctx context.Context, app models.GlobalApplication) error {
	profile, err := h.profilesRepo.ProfileByUID(app.UID)
	if err != nil {
		logger.Error(ctx, "Failed to resolve profile for uid %s: %v", app.UID, err)
		return err
	}

	payload := common.SerializeDecisionNotification(profile.Mobile, app)

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		logger.Error(ctx, "Failed to marshal decision notification: %v", err)
		return fmt.Errorf("failed to marshal decision notification: %w", err)
	}

	topicName := configs.PUBSUB_TOPIC

	// Separate context so a cancelled request does not drop the notification.
	pubsubCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	messageID, err := h.pubsubPublisher.Publish(pubsubCtx, topicName, payloadBytes, map[string]string{
		"event": "loan.decision",
	})
	if err != nil {
		logger.Error(ctx, "Failed to publish decision notification to topic %s: %v", topicName, err)
		return fmt.Errorf("failed to publish to pubsub: %w", err)
	}

	logger.Info(ctx, "Decision notification published applicationId=%s status=%s messageID=%s",
		app.ApplicationID, app.Status, messageID)
	return nil
}
