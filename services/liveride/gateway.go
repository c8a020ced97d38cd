package liveride

import (
	"context"

	"github.com/paceline/paceline/internal/pkg/models"
)

// LiveRideGW defines the interface for live ride gateway operations
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/paceline/paceline/services/liveride LiveRideGW,SocialGW
type LiveRideGW interface {
	PublishRideStarted(ctx context.Context, session *models.LiveRideSession) error
	PublishRideEnded(ctx context.Context, session *models.LiveRideSession) error
	NotifyViewerInvited(ctx context.Context, recipientID, riderID, sessionID string) error
}

// SocialGW defines the interface to the follow graph service
type SocialGW interface {
	// GetFollowing returns the ids of the users userID follows
	GetFollowing(ctx context.Context, userID string) ([]string, error)
	// IsFollowing reports whether followerID follows followeeID
	IsFollowing(ctx context.Context, followerID, followeeID string) (bool, error)
}
