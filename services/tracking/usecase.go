package tracking

import (
	"context"

	"github.com/paceline/paceline/internal/pkg/models"
)

// TrackingUC defines the interface for the mutual-approval tracking
// coordinator. Request transitions are strict: acting on a non-pending
// request or an inactive track fails with apperrors.ErrInvalidState.
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/paceline/paceline/services/tracking TrackingUC,PublisherUC
type TrackingUC interface {
	SendRequest(ctx context.Context, fromUserID, toUserID string) (*models.TrackRequest, error)
	ApproveRequest(ctx context.Context, callerID, requestID string) (*models.ActiveTrack, error)
	RejectRequest(ctx context.Context, callerID, requestID string) error
	CancelRequest(ctx context.Context, callerID, requestID string) error

	// RevokeTracking: the tracked party withdraws a tracker's access.
	RevokeTracking(ctx context.Context, callerID, trackID string) error
	// RemoveTracker: the tracker walks away from the relationship.
	RemoveTracker(ctx context.Context, callerID, trackID string) error

	ListIncomingRequests(ctx context.Context, userID string) ([]*models.TrackRequest, error)
	ListOutgoingRequests(ctx context.Context, userID string) ([]*models.TrackRequest, error)
	// ListTrackers returns who tracks userID; ListTracked returns who
	// userID tracks. IsMutual is filled in per record.
	ListTrackers(ctx context.Context, userID string) ([]*models.ActiveTrack, error)
	ListTracked(ctx context.Context, userID string) ([]*models.ActiveTrack, error)
}

// PublisherUC defines the interface for the throttled tracked-location
// publisher and its permission-checked reads
type PublisherUC interface {
	// PublishLocation records the user's position. Writes are skipped
	// when nobody tracks the user and throttled to the configured
	// interval; both cases return nil.
	PublishLocation(ctx context.Context, userID string, req *models.PublishLocationRequest) error
	// GetTrackedLocation returns trackedID's last position for an
	// authorised tracker, with IsOnline derived from the freshness window.
	GetTrackedLocation(ctx context.Context, trackerID, trackedID string) (*models.TrackedLocation, error)
}
