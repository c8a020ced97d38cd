package tracking

import (
	"context"

	"github.com/paceline/paceline/internal/pkg/models"
)

// TrackingRepo defines the interface for track request and active track
// data access operations
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/paceline/paceline/services/tracking TrackingRepo,LocationRepo
type TrackingRepo interface {
	CreateRequest(ctx context.Context, request *models.TrackRequest) error
	GetRequest(ctx context.Context, requestID string) (*models.TrackRequest, error)
	UpdateRequestStatus(ctx context.Context, requestID string, status models.TrackRequestStatus) error
	// GetPendingRequest returns the one pending request for the ordered
	// (from, to) pair, or apperrors.ErrNotFound.
	GetPendingRequest(ctx context.Context, fromUserID, toUserID string) (*models.TrackRequest, error)
	ListIncomingRequests(ctx context.Context, userID string) ([]*models.TrackRequest, error)
	ListOutgoingRequests(ctx context.Context, userID string) ([]*models.TrackRequest, error)

	CreateTrack(ctx context.Context, track *models.ActiveTrack) error
	GetTrack(ctx context.Context, trackID string) (*models.ActiveTrack, error)
	DeactivateTrack(ctx context.Context, trackID string) error
	// GetActiveTrack returns the unique active track for the (tracker,
	// tracked) pair, or apperrors.ErrNotFound.
	GetActiveTrack(ctx context.Context, trackerID, trackedID string) (*models.ActiveTrack, error)
	ListTrackers(ctx context.Context, trackedID string) ([]*models.ActiveTrack, error)
	ListTracked(ctx context.Context, trackerID string) ([]*models.ActiveTrack, error)
	HasActiveTrackers(ctx context.Context, trackedID string) (bool, error)
}

// LocationRepo defines the interface for the ephemeral tracked-location
// store
type LocationRepo interface {
	UpsertLocation(ctx context.Context, location *models.TrackedLocation) error
	// GetLocation returns the last published location for userID, or
	// apperrors.ErrNotFound when the user never published.
	GetLocation(ctx context.Context, userID string) (*models.TrackedLocation, error)
}
