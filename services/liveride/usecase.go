package liveride

import (
	"context"

	"github.com/paceline/paceline/internal/pkg/models"
)

// LiveRideUC defines the interface for live ride session operations. All
// mutating operations are owner-gated: riderID must match the session's
// rider or the call fails with apperrors.ErrPermissionDenied.
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/paceline/paceline/services/liveride LiveRideUC,VisibilityUC
type LiveRideUC interface {
	StartRide(ctx context.Context, riderID string, req *models.StartRideRequest) (*models.LiveRideSession, error)
	UpdatePosition(ctx context.Context, riderID, sessionID string, req *models.UpdatePositionRequest) (*models.LiveRideSession, error)
	PauseRide(ctx context.Context, riderID, sessionID string) (*models.LiveRideSession, error)
	ResumeRide(ctx context.Context, riderID, sessionID string) (*models.LiveRideSession, error)
	EndRide(ctx context.Context, riderID, sessionID string) (*models.LiveRideSession, error)
	SetViewers(ctx context.Context, riderID, sessionID string, viewerIDs []string) (*models.LiveRideSession, error)
	SetPublic(ctx context.Context, riderID, sessionID string, isPublic bool) (*models.LiveRideSession, error)

	GetSession(ctx context.Context, callerID, sessionID string) (*models.LiveRideSession, error)
	GetActiveSession(ctx context.Context, riderID string) (*models.LiveRideSession, error)
	ListMySessions(ctx context.Context, riderID string) ([]*models.LiveRideSession, error)
}

// VisibilityUC defines the interface for the merged live feed of sessions
// a viewer may watch
type VisibilityUC interface {
	// StreamVisibleSessions opens the merged live query for viewerID. The
	// returned channel carries the deduplicated, ordered visible set and
	// is closed when stop is called or ctx is cancelled.
	StreamVisibleSessions(ctx context.Context, viewerID string) (<-chan []*models.LiveRideSession, func(), error)
}
