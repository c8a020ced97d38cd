package models

import "time"

// RideStatus represents the lifecycle state of a live ride session
type RideStatus string

const (
	RideStatusActive    RideStatus = "active"
	RideStatusPaused    RideStatus = "paused"
	RideStatusCompleted RideStatus = "completed"
)

// LiveRideSession is a timed session during which a rider's position is
// recorded and selectively broadcast. Exactly one non-completed session may
// exist per rider, and only the owning rider's device mutates it.
type LiveRideSession struct {
	ID               string      `json:"id"`
	RiderID          string      `json:"rider_id"`
	RiderName        string      `json:"rider_name"`
	Status           RideStatus  `json:"status"`
	StartedAt        time.Time   `json:"started_at"`
	EndedAt          *time.Time  `json:"ended_at,omitempty"`
	StartPosition    Location    `json:"start_position"`
	CurrentPosition  Location    `json:"current_position"`
	Geohash          string      `json:"geohash"`
	PathPoints       []PathPoint `json:"path_points"`
	AllowedViewerIDs []string    `json:"allowed_viewer_ids"`
	IsPublic         bool        `json:"is_public"`
	FollowersOnly    bool        `json:"followers_only"`
	TotalDistanceKm  float64     `json:"total_distance_km"`
	DurationMinutes  int         `json:"duration_minutes"`
}

// IsCompleted reports whether the session is sealed and read-only
func (s *LiveRideSession) IsCompleted() bool {
	return s.Status == RideStatusCompleted
}

// StartRideRequest is the payload for starting a live ride session
type StartRideRequest struct {
	RiderName     string   `json:"rider_name"`
	Latitude      float64  `json:"latitude"`
	Longitude     float64  `json:"longitude"`
	ViewerIDs     []string `json:"viewer_ids"`
	IsPublic      bool     `json:"is_public"`
	FollowersOnly bool     `json:"followers_only"`
}

// UpdatePositionRequest is the payload for a ride position update
type UpdatePositionRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// SetViewersRequest replaces the allowed viewer list wholesale
type SetViewersRequest struct {
	ViewerIDs []string `json:"viewer_ids"`
}

// SetPublicRequest toggles the public visibility flag
type SetPublicRequest struct {
	IsPublic bool `json:"is_public"`
}
