package tracking

import (
	"context"

	"github.com/paceline/paceline/internal/pkg/models"
)

// TrackingGW defines the interface for tracking gateway operations
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/paceline/paceline/services/tracking TrackingGW,SocialGW,ProfileGW
type TrackingGW interface {
	PublishTrackApproved(ctx context.Context, track *models.ActiveTrack) error
	PublishTrackRevoked(ctx context.Context, track *models.ActiveTrack) error
	Notify(ctx context.Context, notificationType models.NotificationType, recipientID, actorID, referenceID string) error
}

// SocialGW defines the interface to the follow graph and block lists
type SocialGW interface {
	IsFollowing(ctx context.Context, followerID, followeeID string) (bool, error)
	// IsBlocked reports whether either user blocks the other
	IsBlocked(ctx context.Context, userID, otherID string) (bool, error)
}

// ProfileGW defines the interface to rider privacy preferences
type ProfileGW interface {
	GetWhoCanTrack(ctx context.Context, userID string) (models.WhoCanTrack, error)
}
