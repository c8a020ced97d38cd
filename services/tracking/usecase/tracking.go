package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/paceline/paceline/internal/pkg/apperrors"
	"github.com/paceline/paceline/internal/pkg/logger"
	"github.com/paceline/paceline/internal/pkg/models"
	"github.com/paceline/paceline/services/tracking"
)

// trackingUC implements the tracking.TrackingUC interface
type trackingUC struct {
	cfg     *models.Config
	repo    tracking.TrackingRepo
	gw      tracking.TrackingGW
	social  tracking.SocialGW
	profile tracking.ProfileGW
}

// NewTrackingUC creates a new tracking use case
func NewTrackingUC(
	cfg *models.Config,
	repo tracking.TrackingRepo,
	gw tracking.TrackingGW,
	social tracking.SocialGW,
	profile tracking.ProfileGW,
) tracking.TrackingUC {
	return &trackingUC{
		cfg:     cfg,
		repo:    repo,
		gw:      gw,
		social:  social,
		profile: profile,
	}
}

// SendRequest asks toUserID for continuous access to their position
func (uc *trackingUC) SendRequest(ctx context.Context, fromUserID, toUserID string) (*models.TrackRequest, error) {
	if fromUserID == toUserID {
		return nil, apperrors.InvalidArgumentf("cannot track yourself")
	}
	if toUserID == "" {
		return nil, apperrors.InvalidArgumentf("target user id is required")
	}

	blocked, err := uc.social.IsBlocked(ctx, fromUserID, toUserID)
	if err != nil {
		return nil, err
	}
	if blocked {
		return nil, apperrors.PermissionDeniedf("tracking between %s and %s is blocked", fromUserID, toUserID)
	}

	if err := uc.checkPrivacy(ctx, fromUserID, toUserID); err != nil {
		return nil, err
	}

	if _, err := uc.repo.GetPendingRequest(ctx, fromUserID, toUserID); err == nil {
		return nil, apperrors.AlreadyExistsf("pending request %s -> %s", fromUserID, toUserID)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if _, err := uc.repo.GetActiveTrack(ctx, fromUserID, toUserID); err == nil {
		return nil, apperrors.AlreadyExistsf("active track %s -> %s", fromUserID, toUserID)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	request := &models.TrackRequest{
		ID:         uuid.New().String(),
		FromUserID: fromUserID,
		ToUserID:   toUserID,
		Status:     models.TrackRequestStatusPending,
		CreatedAt:  models.Now(),
	}
	if err := uc.repo.CreateRequest(ctx, request); err != nil {
		return nil, err
	}

	uc.notify(ctx, models.NotificationTrackRequested, toUserID, fromUserID, request.ID)

	logger.Info("Track request sent",
		logger.String("request_id", request.ID),
		logger.String("from_user_id", fromUserID),
		logger.String("to_user_id", toUserID))
	return request, nil
}

// ApproveRequest accepts a pending request and creates the active track
func (uc *trackingUC) ApproveRequest(ctx context.Context, callerID, requestID string) (*models.ActiveTrack, error) {
	request, err := uc.repo.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.ToUserID != callerID {
		return nil, apperrors.PermissionDeniedf("request %s is not addressed to %s", requestID, callerID)
	}
	if request.Status != models.TrackRequestStatusPending {
		return nil, apperrors.InvalidStatef("request %s is %s", requestID, request.Status)
	}

	if err := uc.repo.UpdateRequestStatus(ctx, requestID, models.TrackRequestStatusApproved); err != nil {
		return nil, err
	}

	track := &models.ActiveTrack{
		ID:        uuid.New().String(),
		TrackerID: request.FromUserID,
		TrackedID: request.ToUserID,
		CreatedAt: models.Now(),
		IsActive:  true,
	}
	if err := uc.repo.CreateTrack(ctx, track); err != nil {
		return nil, err
	}
	track.IsMutual = uc.isMutual(ctx, track)

	if err := uc.gw.PublishTrackApproved(ctx, track); err != nil {
		logger.Warn("Failed to publish track approved event",
			logger.String("track_id", track.ID),
			logger.Err(err))
	}
	uc.notify(ctx, models.NotificationTrackApproved, request.FromUserID, callerID, track.ID)

	logger.Info("Track request approved",
		logger.String("request_id", requestID),
		logger.String("track_id", track.ID))
	return track, nil
}

// RejectRequest declines a pending request
func (uc *trackingUC) RejectRequest(ctx context.Context, callerID, requestID string) error {
	request, err := uc.repo.GetRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if request.ToUserID != callerID {
		return apperrors.PermissionDeniedf("request %s is not addressed to %s", requestID, callerID)
	}
	if request.Status != models.TrackRequestStatusPending {
		return apperrors.InvalidStatef("request %s is %s", requestID, request.Status)
	}

	if err := uc.repo.UpdateRequestStatus(ctx, requestID, models.TrackRequestStatusRejected); err != nil {
		return err
	}
	uc.notify(ctx, models.NotificationTrackRejected, request.FromUserID, callerID, requestID)
	return nil
}

// CancelRequest withdraws the caller's own pending request. No
// notification goes out; the target never learns about it.
func (uc *trackingUC) CancelRequest(ctx context.Context, callerID, requestID string) error {
	request, err := uc.repo.GetRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if request.FromUserID != callerID {
		return apperrors.PermissionDeniedf("request %s was not sent by %s", requestID, callerID)
	}
	if request.Status != models.TrackRequestStatusPending {
		return apperrors.InvalidStatef("request %s is %s", requestID, request.Status)
	}

	return uc.repo.UpdateRequestStatus(ctx, requestID, models.TrackRequestStatusCancelled)
}

// RevokeTracking lets the tracked party withdraw a tracker's access
func (uc *trackingUC) RevokeTracking(ctx context.Context, callerID, trackID string) error {
	track, err := uc.activeTrack(ctx, trackID)
	if err != nil {
		return err
	}
	if track.TrackedID != callerID {
		return apperrors.PermissionDeniedf("track %s does not cover %s", trackID, callerID)
	}

	if err := uc.repo.DeactivateTrack(ctx, trackID); err != nil {
		return err
	}
	if err := uc.gw.PublishTrackRevoked(ctx, track); err != nil {
		logger.Warn("Failed to publish track revoked event",
			logger.String("track_id", trackID),
			logger.Err(err))
	}
	uc.notify(ctx, models.NotificationTrackRevoked, track.TrackerID, callerID, trackID)

	logger.Info("Tracking revoked",
		logger.String("track_id", trackID),
		logger.String("tracked_id", callerID))
	return nil
}

// RemoveTracker lets the tracker end the relationship themselves
func (uc *trackingUC) RemoveTracker(ctx context.Context, callerID, trackID string) error {
	track, err := uc.activeTrack(ctx, trackID)
	if err != nil {
		return err
	}
	if track.TrackerID != callerID {
		return apperrors.PermissionDeniedf("track %s is not held by %s", trackID, callerID)
	}

	if err := uc.repo.DeactivateTrack(ctx, trackID); err != nil {
		return err
	}
	if err := uc.gw.PublishTrackRevoked(ctx, track); err != nil {
		logger.Warn("Failed to publish track revoked event",
			logger.String("track_id", trackID),
			logger.Err(err))
	}
	uc.notify(ctx, models.NotificationTrackerRemoved, track.TrackedID, callerID, trackID)
	return nil
}

// ListIncomingRequests returns the pending requests addressed to userID
func (uc *trackingUC) ListIncomingRequests(ctx context.Context, userID string) ([]*models.TrackRequest, error) {
	return uc.repo.ListIncomingRequests(ctx, userID)
}

// ListOutgoingRequests returns the pending requests userID sent
func (uc *trackingUC) ListOutgoingRequests(ctx context.Context, userID string) ([]*models.TrackRequest, error) {
	return uc.repo.ListOutgoingRequests(ctx, userID)
}

// ListTrackers returns who tracks userID, with IsMutual filled in
func (uc *trackingUC) ListTrackers(ctx context.Context, userID string) ([]*models.ActiveTrack, error) {
	tracks, err := uc.repo.ListTrackers(ctx, userID)
	if err != nil {
		return nil, err
	}
	uc.fillMutual(ctx, tracks)
	return tracks, nil
}

// ListTracked returns who userID tracks, with IsMutual filled in
func (uc *trackingUC) ListTracked(ctx context.Context, userID string) ([]*models.ActiveTrack, error) {
	tracks, err := uc.repo.ListTracked(ctx, userID)
	if err != nil {
		return nil, err
	}
	uc.fillMutual(ctx, tracks)
	return tracks, nil
}

// checkPrivacy enforces the target's whoCanTrack preference
func (uc *trackingUC) checkPrivacy(ctx context.Context, fromUserID, toUserID string) error {
	preference, err := uc.profile.GetWhoCanTrack(ctx, toUserID)
	if err != nil {
		return err
	}
	switch preference {
	case models.WhoCanTrackEveryone:
		return nil
	case models.WhoCanTrackFollowers:
		follows, err := uc.social.IsFollowing(ctx, fromUserID, toUserID)
		if err != nil {
			return err
		}
		if !follows {
			return apperrors.PermissionDeniedf("%s only accepts track requests from followers", toUserID)
		}
		return nil
	case models.WhoCanTrackNone:
		return apperrors.PermissionDeniedf("%s does not accept track requests", toUserID)
	default:
		return apperrors.PermissionDeniedf("%s has an unknown tracking preference", toUserID)
	}
}

// activeTrack loads a track and checks it has not been ended already
func (uc *trackingUC) activeTrack(ctx context.Context, trackID string) (*models.ActiveTrack, error) {
	track, err := uc.repo.GetTrack(ctx, trackID)
	if err != nil {
		return nil, err
	}
	if !track.IsActive {
		return nil, apperrors.InvalidStatef("track %s is no longer active", trackID)
	}
	return track, nil
}

// isMutual checks for the reciprocal active track
func (uc *trackingUC) isMutual(ctx context.Context, track *models.ActiveTrack) bool {
	_, err := uc.repo.GetActiveTrack(ctx, track.TrackedID, track.TrackerID)
	return err == nil
}

func (uc *trackingUC) fillMutual(ctx context.Context, tracks []*models.ActiveTrack) {
	for _, track := range tracks {
		track.IsMutual = uc.isMutual(ctx, track)
	}
}

func (uc *trackingUC) notify(ctx context.Context, notificationType models.NotificationType, recipientID, actorID, referenceID string) {
	if err := uc.gw.Notify(ctx, notificationType, recipientID, actorID, referenceID); err != nil {
		logger.Warn("Failed to send tracking notification",
			logger.String("type", string(notificationType)),
			logger.String("recipient_id", recipientID),
			logger.Err(err))
	}
}
