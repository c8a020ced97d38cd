package gateway

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/paceline/paceline/internal/pkg/apperrors"
	"github.com/paceline/paceline/internal/pkg/constants"
	"github.com/paceline/paceline/internal/pkg/models"
	"github.com/paceline/paceline/internal/pkg/retry"
	"github.com/paceline/paceline/services/liveride"
)

// NATSPublisher interface for publishing messages
type NATSPublisher interface {
	Publish(subject string, data []byte) error
}

// LiveRideGW handles NATS publishing for live ride events and notifications
type LiveRideGW struct {
	publisher NATSPublisher
	retrier   *retry.Retrier
}

// NewLiveRideGW creates a new live ride gateway
func NewLiveRideGW(publisher NATSPublisher, retrier *retry.Retrier) liveride.LiveRideGW {
	return &LiveRideGW{
		publisher: publisher,
		retrier:   retrier,
	}
}

// RideEvent is the wire payload of liveride lifecycle events
type RideEvent struct {
	SessionID       string            `json:"session_id"`
	RiderID         string            `json:"rider_id"`
	Status          models.RideStatus `json:"status"`
	Geohash         string            `json:"geohash"`
	TotalDistanceKm float64           `json:"total_distance_km"`
	DurationMinutes int               `json:"duration_minutes"`
}

// PublishRideStarted publishes a ride started event to NATS
func (g *LiveRideGW) PublishRideStarted(ctx context.Context, session *models.LiveRideSession) error {
	return g.publishEvent(ctx, constants.SubjectLiveRideStarted, session)
}

// PublishRideEnded publishes a ride ended event to NATS
func (g *LiveRideGW) PublishRideEnded(ctx context.Context, session *models.LiveRideSession) error {
	return g.publishEvent(ctx, constants.SubjectLiveRideEnded, session)
}

// NotifyViewerInvited hands a viewer-invited notification to the
// notification sink
func (g *LiveRideGW) NotifyViewerInvited(ctx context.Context, recipientID, riderID, sessionID string) error {
	notification := models.Notification{
		ID:          uuid.New().String(),
		RecipientID: recipientID,
		ActorID:     riderID,
		Type:        models.NotificationViewerInvited,
		ReferenceID: sessionID,
		CreatedAt:   models.Now(),
	}
	data, err := json.Marshal(notification)
	if err != nil {
		return err
	}
	return g.publish(ctx, constants.SubjectNotificationCreated, data)
}

func (g *LiveRideGW) publishEvent(ctx context.Context, subject string, session *models.LiveRideSession) error {
	event := RideEvent{
		SessionID:       session.ID,
		RiderID:         session.RiderID,
		Status:          session.Status,
		Geohash:         session.Geohash,
		TotalDistanceKm: session.TotalDistanceKm,
		DurationMinutes: session.DurationMinutes,
	}
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return g.publish(ctx, subject, data)
}

func (g *LiveRideGW) publish(ctx context.Context, subject string, data []byte) error {
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
