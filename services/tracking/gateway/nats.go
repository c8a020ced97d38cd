package gateway

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/paceline/paceline/internal/pkg/apperrors"
	"github.com/paceline/paceline/internal/pkg/constants"
	"github.com/paceline/paceline/internal/pkg/models"
	"github.com/paceline/paceline/internal/pkg/retry"
	"github.com/paceline/paceline/services/tracking"
)

// NATSPublisher interface for publishing messages
type NATSPublisher interface {
	Publish(subject string, data []byte) error
}

// TrackingGW handles NATS publishing for tracking events and notifications
type TrackingGW struct {
	publisher NATSPublisher
	retrier   *retry.Retrier
}

// NewTrackingGW creates a new tracking gateway
func NewTrackingGW(publisher NATSPublisher, retrier *retry.Retrier) tracking.TrackingGW {
	return &TrackingGW{
		publisher: publisher,
		retrier:   retrier,
	}
}

// TrackEvent is the wire payload of tracking lifecycle events
type TrackEvent struct {
	TrackID   string `json:"track_id"`
	TrackerID string `json:"tracker_id"`
	TrackedID string `json:"tracked_id"`
	IsActive  bool   `json:"is_active"`
}

// PublishTrackApproved publishes a track approved event to NATS
func (g *TrackingGW) PublishTrackApproved(ctx context.Context, track *models.ActiveTrack) error {
	return g.publishEvent(ctx, constants.SubjectTrackApproved, track)
}

// PublishTrackRevoked publishes a track revoked event to NATS
func (g *TrackingGW) PublishTrackRevoked(ctx context.Context, track *models.ActiveTrack) error {
	return g.publishEvent(ctx, constants.SubjectTrackRevoked, track)
}

// Notify hands a tracking notification to the notification sink
func (g *TrackingGW) Notify(ctx context.Context, notificationType models.NotificationType, recipientID, actorID, referenceID string) error {
	notification := models.Notification{
		ID:          uuid.New().String(),
		RecipientID: recipientID,
		ActorID:     actorID,
		Type:        notificationType,
		ReferenceID: referenceID,
		CreatedAt:   models.Now(),
	}
	data, err := json.Marshal(notification)
	if err != nil {
		return err
	}
	return g.publish(ctx, constants.SubjectNotificationCreated, data)
}

func (g *TrackingGW) publishEvent(ctx context.Context, subject string, track *models.ActiveTrack) error {
	event := TrackEvent{
		TrackID:   track.ID,
		TrackerID: track.TrackerID,
		TrackedID: track.TrackedID,
		IsActive:  track.IsActive,
	}
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return g.publish(ctx, subject, data)
}

func (g *TrackingGW) publish(ctx context.Context, subject string, data []byte) error {
	if g.retrier == nil {
		return g.publisher.Publish(subject, data)
	}
	return g.retrier.Execute(ctx, func(ctx context.Context) error {
		if err := g.publisher.Publish(subject, data); err != nil {
			return apperrors.Transientf(err, "publish "+subject)
		}
		return nil
	})
}
