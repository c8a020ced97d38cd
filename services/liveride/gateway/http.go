package gateway

import (
	"context"
	"fmt"
	"net/url"

	httpclient "github.com/paceline/paceline/internal/pkg/http"
	"github.com/paceline/paceline/services/liveride"
)

// SocialGW calls the social service for follow graph lookups
type SocialGW struct {
	client *httpclient.Client
}

// NewSocialGW creates a new social gateway
func NewSocialGW(client *httpclient.Client) liveride.SocialGW {
	return &SocialGW{client: client}
}

type followingResponse struct {
	FollowingIDs []string `json:"following_ids"`
}

type isFollowingResponse struct {
	IsFollowing bool `json:"is_following"`
}

// GetFollowing returns the ids of the users userID follows
func (g *SocialGW) GetFollowing(ctx context.Context, userID string) ([]string, error) {
	var resp followingResponse
	path := fmt.Sprintf("/internal/users/%s/following", url.PathEscape(userID))
	if err := g.client.GetJSON(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.FollowingIDs, nil
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
