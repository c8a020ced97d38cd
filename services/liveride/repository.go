package liveride

import (
	"context"

	"github.com/paceline/paceline/internal/pkg/models"
	"github.com/paceline/paceline/internal/pkg/store"
)

// SessionRepo defines the interface for live ride session data access operations
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/paceline/paceline/services/liveride SessionRepo
type SessionRepo interface {
	CreateSession(ctx context.Context, session *models.LiveRideSession) error
	GetSession(ctx context.Context, sessionID string) (*models.LiveRideSession, error)
	// GetActiveSessionByRider returns the rider's single non-completed
	// session, or apperrors.ErrNotFound when the rider is not riding.
	GetActiveSessionByRider(ctx context.Context, riderID string) (*models.LiveRideSession, error)
	UpdateSession(ctx context.Context, sessionID string, fields store.Record) error
	// RecordPosition atomically appends one path point and merges the
	// derived position fields, rejecting sessions that are no longer
	// active with apperrors.ErrInvalidState. The status re-check happens
	// inside the mutation so a position fix racing an end() never lands.
	RecordPosition(ctx context.Context, sessionID string, point models.PathPoint, fields store.Record) error
	ListSessionsByRider(ctx context.Context, riderID string) ([]*models.LiveRideSession, error)

	// Live queries used by the visibility aggregator. Each emits the
	// current result set first, then the recomputed set on every change.
	WatchInvitedSessions(ctx context.Context, viewerID string) (*store.Subscription, error)
	WatchPublicSessions(ctx context.Context) (*store.Subscription, error)
	WatchFollowedSessions(ctx context.Context, riderIDs []string) (*store.Subscription, error)
}
