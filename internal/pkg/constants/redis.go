package constants

// Redis key formats
const (
	// Tracking Service
	KeyTrackedLocation = "tracked:location:%s" // Format: tracked:location:{user_id}

	// Generic document store
	KeyDocCollection     = "docs:%s"         // Format: docs:{collection}
	ChannelDocCollection = "docs:%s:changed" // Format: docs:{collection}:changed

	// Rate Limiting
	KeyRateLimit = "rate:limit:%s:%s" // Format: rate:limit:{resource}:{identifier}
)

// Document store collections
const (
	CollectionLiveRideSessions = "liveride_sessions"
	CollectionTrackRequests    = "track_requests"
	CollectionActiveTracks     = "active_tracks"
)

// Redis hash fields
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldTimestamp = "ts"
)
