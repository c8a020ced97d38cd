package gateway

import (
	"context"
	"fmt"
	"net/url"

	httpclient "github.com/paceline/paceline/internal/pkg/http"
	"github.com/paceline/paceline/internal/pkg/models"
	"github.com/paceline/paceline/services/tracking"
)

// SocialGW calls the social service for follow and block lookups
type SocialGW struct {
	client *httpclient.Client
}

// NewSocialGW creates a new social gateway
func NewSocialGW(client *httpclient.Client) tracking.SocialGW {
	return &SocialGW{client: client}
}

type isFollowingResponse struct {
	IsFollowing bool `json:"is_following"`
}

type isBlockedResponse struct {
	IsBlocked bool `json:"is_blocked"`
}

// IsFollowing reports whether followerID follows followeeID
func (g *SocialGW) IsFollowing(ctx context.Context, followerID, followeeID string) (bool, error) {
	var resp isFollowingResponse
	path := fmt.Sprintf("/internal/users/%s/follows/%s",
		url.PathEscape(followerID), url.PathEscape(followeeID))
	if err := g.client.GetJSON(ctx, path, &resp); err != nil {
		return false, err
	}
	return resp.IsFollowing, nil
}

// IsBlocked reports whether either user blocks the other
func (g *SocialGW) IsBlocked(ctx context.Context, userID, otherID string) (bool, error) {
	var resp isBlockedResponse
	path := fmt.Sprintf("/internal/users/%s/blocked/%s",
		url.PathEscape(userID), url.PathEscape(otherID))
	if err := g.client.GetJSON(ctx, path, &resp); err != nil {
		return false, err
	}
	return resp.IsBlocked, nil
}

// ProfileGW calls the profile service for privacy preferences
type ProfileGW struct {
	client *httpclient.Client
}

// NewProfileGW creates a new profile gateway
func NewProfileGW(client *httpclient.Client) tracking.ProfileGW {
	return &ProfileGW{client: client}
}

type privacyResponse struct {
	WhoCanTrack string `json:"who_can_track"`
}

// GetWhoCanTrack returns userID's tracking privacy preference. Profiles
// without an explicit preference default to everyone.
func (g *ProfileGW) GetWhoCanTrack(ctx context.Context, userID string) (models.WhoCanTrack, error) {
	var resp privacyResponse
	path := fmt.Sprintf("/internal/users/%s/privacy", url.PathEscape(userID))
	if err := g.client.GetJSON(ctx, path, &resp); err != nil {
		return "", err
	}
	if resp.WhoCanTrack == "" {
		return models.WhoCanTrackEveryone, nil
	}
	return models.WhoCanTrack(resp.WhoCanTrack), nil
}
