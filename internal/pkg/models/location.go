package models

import "time"

// Location represents a geographical coordinate with a capture time
type Location struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
}

// PathPoint is a single recorded point of a live ride trail. Points are
// appended in non-decreasing EpochSeconds order by the owning device.
type PathPoint struct {
	Latitude     float64 `json:"lat"`
	Longitude    float64 `json:"lng"`
	EpochSeconds int64   `json:"epoch_seconds"`
}

// TrackedLocation is the ephemeral last-known position of a tracked rider,
// keyed by the tracked user's id. It is upserted on every publish and never
// deleted; stale entries simply stop counting as online.
type TrackedLocation struct {
	UserID    string    `json:"user_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
	// IsOnline is derived at read time: now - Timestamp < freshness window.
	IsOnline bool `json:"is_online"`
}
