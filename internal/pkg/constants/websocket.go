package constants

// WebSocket event types
const (
	// Common events
	EventError = "error"
	EventPing  = "ping"
	EventPong  = "pong"

	// Visibility stream events
	EventVisibleSessions = "visible_sessions"

	// Tracking events
	EventTrackedLocation = "tracked_location"
)

// WebSocket error codes
const (
	ErrorInvalidFormat    = "invalid_format"
	ErrorUnauthorized     = "unauthorized"
	ErrorInternalError    = "internal_error"
	ErrorStreamFailure    = "stream_failure"
	ErrorSessionNotFound  = "session_not_found"
	ErrorPermissionDenied = "permission_denied"
)
