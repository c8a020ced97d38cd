package models

import "time"

// NotificationType identifies the event a notification describes
type NotificationType string

const (
	NotificationTrackRequested  NotificationType = "track_requested"
	NotificationTrackApproved   NotificationType = "track_approved"
	NotificationTrackRejected   NotificationType = "track_rejected"
	NotificationTrackRevoked    NotificationType = "track_revoked"
	NotificationTrackerRemoved  NotificationType = "tracker_removed"
	NotificationViewerInvited   NotificationType = "liveride_viewer_invited"
)

// Notification is the fire-and-forget event handed to the notification
// sink. Delivery and persistence are the sink's concern.
type Notification struct {
	ID          string           `json:"id"`
	RecipientID string           `json:"recipient_id"`
	ActorID     string           `json:"actor_id"`
	Type        NotificationType `json:"type"`
	ReferenceID string           `json:"reference_id"` // request, track or session id
	CreatedAt   time.Time        `json:"created_at"`
}
