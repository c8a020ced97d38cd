package models

import "time"

// TrackRequestStatus represents the lifecycle state of a track request
type TrackRequestStatus string

const (
	TrackRequestStatusPending   TrackRequestStatus = "pending"
	TrackRequestStatusApproved  TrackRequestStatus = "approved"
	TrackRequestStatusRejected  TrackRequestStatus = "rejected"
	TrackRequestStatusCancelled TrackRequestStatus = "cancelled"
)

// WhoCanTrack is a rider's privacy preference for incoming track requests
type WhoCanTrack string

const (
	WhoCanTrackEveryone  WhoCanTrack = "everyone"
	WhoCanTrackFollowers WhoCanTrack = "followers"
	WhoCanTrackNone      WhoCanTrack = "none"
)

// TrackRequest is the approval-gated ask for continuous access to another
// rider's position. At most one pending request exists per ordered
// (from, to) pair.
type TrackRequest struct {
	ID         string             `json:"id"`
	FromUserID string             `json:"from_user_id"`
	ToUserID   string             `json:"to_user_id"`
	Status     TrackRequestStatus `json:"status"`
	CreatedAt  time.Time          `json:"created_at"`
}

// ActiveTrack is the relationship created from an approved request. It is
// unique per (tracker, tracked) pair while active.
type ActiveTrack struct {
	ID        string    `json:"id"`
	TrackerID string    `json:"tracker_id"`
	TrackedID string    `json:"tracked_id"`
	CreatedAt time.Time `json:"created_at"`
	IsActive  bool      `json:"is_active"`
	// IsMutual is derived, never stored: true iff a reciprocal active
	// record exists. Populated on reads that need it.
	IsMutual bool `json:"is_mutual"`
}

// SendTrackRequestPayload is the HTTP payload for sending a track request
type SendTrackRequestPayload struct {
	ToUserID string `json:"to_user_id"`
}

// PublishLocationRequest is the HTTP payload for a tracked-location publish
type PublishLocationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
