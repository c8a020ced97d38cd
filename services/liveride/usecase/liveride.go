package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/paceline/paceline/internal/pkg/apperrors"
	"github.com/paceline/paceline/internal/pkg/logger"
	"github.com/paceline/paceline/internal/pkg/models"
	"github.com/paceline/paceline/internal/pkg/ratelimit"
	"github.com/paceline/paceline/internal/pkg/store"
	"github.com/paceline/paceline/internal/utils"
	"github.com/paceline/paceline/services/liveride"
)

// liveRideUC implements the liveride.LiveRideUC interface
type liveRideUC struct {
	cfg     *models.Config
	repo    liveride.SessionRepo
	gw      liveride.LiveRideGW
	social  liveride.SocialGW
	limiter *ratelimit.IntervalLimiter
}

// NewLiveRideUC creates a new live ride use case
func NewLiveRideUC(
	cfg *models.Config,
	repo liveride.SessionRepo,
	gw liveride.LiveRideGW,
	social liveride.SocialGW,
) liveride.LiveRideUC {
	interval := time.Duration(cfg.LiveRide.UpdateIntervalSeconds) * time.Second
	return &liveRideUC{
		cfg:     cfg,
		repo:    repo,
		gw:      gw,
		social:  social,
		limiter: ratelimit.NewIntervalLimiter(interval),
	}
}

// StartRide opens a new session for the rider. A rider can hold at most
// one non-completed session at a time.
func (uc *liveRideUC) StartRide(ctx context.Context, riderID string, req *models.StartRideRequest) (*models.LiveRideSession, error) {
	if !utils.ValidateCoordinates(req.Latitude, req.Longitude) {
		return nil, apperrors.InvalidArgumentf("coordinates out of range: %f, %f", req.Latitude, req.Longitude)
	}

	if _, err := uc.repo.GetActiveSessionByRider(ctx, riderID); err == nil {
		return nil, apperrors.ErrAlreadyActive
	} else if !isNotFound(err) {
		return nil, err
	}

	now := models.Now()
	position := models.Location{Latitude: req.Latitude, Longitude: req.Longitude, Timestamp: now}
	session := &models.LiveRideSession{
		ID:              uuid.New().String(),
		RiderID:         riderID,
		RiderName:       req.RiderName,
		Status:          models.RideStatusActive,
		StartedAt:       now,
		StartPosition:   position,
		CurrentPosition: position,
		Geohash:         utils.EncodeLocation(req.Latitude, req.Longitude, uc.cfg.LiveRide.GeohashPrecision),
		PathPoints: []models.PathPoint{
			{Latitude: req.Latitude, Longitude: req.Longitude, EpochSeconds: now.Unix()},
		},
		AllowedViewerIDs: sanitizeViewers(req.ViewerIDs, riderID),
		IsPublic:         req.IsPublic,
		FollowersOnly:    req.FollowersOnly,
	}

	if err := uc.repo.CreateSession(ctx, session); err != nil {
		return nil, err
	}

	if err := uc.gw.PublishRideStarted(ctx, session); err != nil {
		logger.Warn("Failed to publish ride started event",
			logger.String("session_id", session.ID),
			logger.Err(err))
	}
	uc.notifyInvited(ctx, session, session.AllowedViewerIDs)

	logger.Info("Live ride started",
		logger.String("session_id", session.ID),
		logger.String("rider_id", riderID))
	return session, nil
}

// UpdatePosition records a new position for an active session. Updates
// arriving faster than the configured interval are dropped without error;
// the unchanged session is returned so the device can resync.
func (uc *liveRideUC) UpdatePosition(ctx context.Context, riderID, sessionID string, req *models.UpdatePositionRequest) (*models.LiveRideSession, error) {
	if !utils.ValidateCoordinates(req.Latitude, req.Longitude) {
		return nil, apperrors.InvalidArgumentf("coordinates out of range: %f, %f", req.Latitude, req.Longitude)
	}

	session, err := uc.ownedSession(ctx, riderID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status != models.RideStatusActive {
		return nil, apperrors.InvalidStatef("cannot record position on %s session %s", session.Status, sessionID)
	}

	if !uc.limiter.Allow(sessionID) {
		return session, nil
	}

	now := models.Now()
	point := models.PathPoint{Latitude: req.Latitude, Longitude: req.Longitude, EpochSeconds: now.Unix()}

	// Recompute the trail distance over the full path rather than adding
	// the last leg, so replayed points never accumulate drift.
	points := append(append([]models.PathPoint{}, session.PathPoints...), point)
	distance := utils.PathDistanceKm(points)
	duration := int(now.Sub(session.StartedAt).Minutes())

	position := models.Location{Latitude: req.Latitude, Longitude: req.Longitude, Timestamp: now}
	geoHash := utils.EncodeLocation(req.Latitude, req.Longitude, uc.cfg.LiveRide.GeohashPrecision)
	if err := uc.repo.RecordPosition(ctx, sessionID, point, store.Record{
		"current_position":  position,
		"geohash":           geoHash,
		"total_distance_km": distance,
		"duration_minutes":  duration,
	}); err != nil {
		return nil, err
	}

	session.CurrentPosition = position
	session.Geohash = geoHash
	session.PathPoints = points
	session.TotalDistanceKm = distance
	session.DurationMinutes = duration
	return session, nil
}

// PauseRide suspends position recording without ending the session
func (uc *liveRideUC) PauseRide(ctx context.Context, riderID, sessionID string) (*models.LiveRideSession, error) {
	session, err := uc.ownedSession(ctx, riderID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status != models.RideStatusActive {
		return nil, apperrors.InvalidStatef("cannot pause %s session %s", session.Status, sessionID)
	}

	if err := uc.repo.UpdateSession(ctx, sessionID, store.Record{
		"status": models.RideStatusPaused,
	}); err != nil {
		return nil, err
	}
	session.Status = models.RideStatusPaused
	return session, nil
}

// ResumeRide re-enables position recording on a paused session
func (uc *liveRideUC) ResumeRide(ctx context.Context, riderID, sessionID string) (*models.LiveRideSession, error) {
	session, err := uc.ownedSession(ctx, riderID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status != models.RideStatusPaused {
		return nil, apperrors.InvalidStatef("cannot resume %s session %s", session.Status, sessionID)
	}

	if err := uc.repo.UpdateSession(ctx, sessionID, store.Record{
		"status": models.RideStatusActive,
	}); err != nil {
		return nil, err
	}
	session.Status = models.RideStatusActive
	return session, nil
}

// EndRide seals the session. Completed sessions are read-only summaries.
func (uc *liveRideUC) EndRide(ctx context.Context, riderID, sessionID string) (*models.LiveRideSession, error) {
	session, err := uc.ownedSession(ctx, riderID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.IsCompleted() {
		return nil, apperrors.InvalidStatef("session %s already completed", sessionID)
	}

	now := models.Now()
	duration := int(now.Sub(session.StartedAt).Minutes())
	if err := uc.repo.UpdateSession(ctx, sessionID, store.Record{
		"status":           models.RideStatusCompleted,
		"ended_at":         now,
		"duration_minutes": duration,
	}); err != nil {
		return nil, err
	}
	uc.limiter.Forget(sessionID)

	session.Status = models.RideStatusCompleted
	session.EndedAt = &now
	session.DurationMinutes = duration

	if err := uc.gw.PublishRideEnded(ctx, session); err != nil {
		logger.Warn("Failed to publish ride ended event",
			logger.String("session_id", sessionID),
			logger.Err(err))
	}

	logger.Info("Live ride ended",
		logger.String("session_id", sessionID),
		logger.String("rider_id", riderID),
		logger.Float64("distance_km", session.TotalDistanceKm),
		logger.Int("duration_minutes", duration))
	return session, nil
}

// SetViewers replaces the allowed viewer list wholesale and notifies the
// viewers who were not on the previous list
func (uc *liveRideUC) SetViewers(ctx context.Context, riderID, sessionID string, viewerIDs []string) (*models.LiveRideSession, error) {
	session, err := uc.ownedSession(ctx, riderID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.IsCompleted() {
		return nil, apperrors.InvalidStatef("session %s already completed", sessionID)
	}

	viewers := sanitizeViewers(viewerIDs, riderID)
	if err := uc.repo.UpdateSession(ctx, sessionID, store.Record{
		"allowed_viewer_ids": viewers,
	}); err != nil {
		return nil, err
	}

	added := diffViewers(session.AllowedViewerIDs, viewers)
	session.AllowedViewerIDs = viewers
	uc.notifyInvited(ctx, session, added)
	return session, nil
}

// SetPublic toggles the public visibility flag
func (uc *liveRideUC) SetPublic(ctx context.Context, riderID, sessionID string, isPublic bool) (*models.LiveRideSession, error) {
	session, err := uc.ownedSession(ctx, riderID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.IsCompleted() {
		return nil, apperrors.InvalidStatef("session %s already completed", sessionID)
	}

	if err := uc.repo.UpdateSession(ctx, sessionID, store.Record{
		"is_public": isPublic,
	}); err != nil {
		return nil, err
	}
	session.IsPublic = isPublic
	return session, nil
}

// GetSession returns a session the caller is entitled to see: their own,
// one they are invited to, a public one, or a followers-only one of a
// rider they follow
func (uc *liveRideUC) GetSession(ctx context.Context, callerID, sessionID string) (*models.LiveRideSession, error) {
	session, err := uc.repo.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.RiderID == callerID {
		return session, nil
	}
	if session.IsPublic || containsID(session.AllowedViewerIDs, callerID) {
		return session, nil
	}
	if session.FollowersOnly {
		follows, err := uc.social.IsFollowing(ctx, callerID, session.RiderID)
		if err != nil {
			return nil, err
		}
		if follows {
			return session, nil
		}
	}
	return nil, apperrors.PermissionDeniedf("user %s may not view session %s", callerID, sessionID)
}

// GetActiveSession returns the rider's own non-completed session
func (uc *liveRideUC) GetActiveSession(ctx context.Context, riderID string) (*models.LiveRideSession, error) {
	return uc.repo.GetActiveSessionByRider(ctx, riderID)
}

// ListMySessions returns the rider's full session history
func (uc *liveRideUC) ListMySessions(ctx context.Context, riderID string) ([]*models.LiveRideSession, error) {
	return uc.repo.ListSessionsByRider(ctx, riderID)
}

// ownedSession loads a session and verifies the caller owns it
func (uc *liveRideUC) ownedSession(ctx context.Context, riderID, sessionID string) (*models.LiveRideSession, error) {
	session, err := uc.repo.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.RiderID != riderID {
		return nil, apperrors.PermissionDeniedf("session %s belongs to another rider", sessionID)
	}
	return session, nil
}

func (uc *liveRideUC) notifyInvited(ctx context.Context, session *models.LiveRideSession, viewerIDs []string) {
	for _, viewerID := range viewerIDs {
		if err := uc.gw.NotifyViewerInvited(ctx, viewerID, session.RiderID, session.ID); err != nil {
			logger.Warn("Failed to notify invited viewer",
				logger.String("viewer_id", viewerID),
				logger.String("session_id", session.ID),
				logger.Err(err))
		}
	}
}

// sanitizeViewers deduplicates the viewer list and drops the rider's own id
func sanitizeViewers(viewerIDs []string, riderID string) []string {
	seen := make(map[string]struct{}, len(viewerIDs))
	out := make([]string, 0, len(viewerIDs))
	for _, id := range viewerIDs {
		if id == "" || id == riderID {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// diffViewers returns the ids present in next but not in prev
func diffViewers(prev, next []string) []string {
	known := make(map[string]struct{}, len(prev))
	for _, id := range prev {
		known[id] = struct{}{}
	}
	var added []string
	for _, id := range next {
		if _, ok := known[id]; !ok {
			added = append(added, id)
		}
	}
	return added
}

func containsID(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

func isNotFound(err error) bool {
	return errors.Is(err, apperrors.ErrNotFound)
}
