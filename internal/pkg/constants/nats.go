package constants

// NATS Subjects
const (
	// Notification sink
	SubjectNotificationCreated = "notification.created"

	// LiveRide events
	SubjectLiveRideStarted = "liveride.started"
	SubjectLiveRideEnded   = "liveride.ended"

	// Tracking events
	SubjectTrackApproved = "tracking.approved"
	SubjectTrackRevoked  = "tracking.revoked"
)
