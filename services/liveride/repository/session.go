package repository

import (
	"context"
	"errors"

	"github.com/paceline/paceline/internal/pkg/apperrors"
	"github.com/paceline/paceline/internal/pkg/constants"
	"github.com/paceline/paceline/internal/pkg/models"
	"github.com/paceline/paceline/internal/pkg/store"
	"github.com/paceline/paceline/services/liveride"
)

// sessionRepo persists live ride sessions as documents in the shared store
type sessionRepo struct {
	db store.Store
}

// NewSessionRepo creates a new session repository
func NewSessionRepo(db store.Store) liveride.SessionRepo {
	return &sessionRepo{db: db}
}

// liveStatuses are the session states a rider or viewer can still act on
var liveStatuses = []string{
	string(models.RideStatusActive),
	string(models.RideStatusPaused),
}

// CreateSession inserts a new session document
func (r *sessionRepo) CreateSession(ctx context.Context, session *models.LiveRideSession) error {
	if err := r.db.Create(ctx, constants.CollectionLiveRideSessions, session.ID, session); err != nil {
		if errors.Is(err, store.ErrExists) {
			return apperrors.AlreadyExistsf("session %s", session.ID)
		}
		return apperrors.Transientf(err, "create session")
	}
	return nil
}

// GetSession fetches a session by id
func (r *sessionRepo) GetSession(ctx context.Context, sessionID string) (*models.LiveRideSession, error) {
	rec, err := r.db.Get(ctx, constants.CollectionLiveRideSessions, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.NotFoundf("session %s", sessionID)
		}
		return nil, apperrors.Transientf(err, "get session")
	}
	return decodeSession(rec)
}

// GetActiveSessionByRider returns the rider's non-completed session
func (r *sessionRepo) GetActiveSessionByRider(ctx context.Context, riderID string) (*models.LiveRideSession, error) {
	recs, err := r.db.Find(ctx, store.Query{
		Collection: constants.CollectionLiveRideSessions,
		Filters: []store.Filter{
			store.Eq("rider_id", riderID),
			store.In("status", liveStatuses...),
		},
	})
	if err != nil {
		return nil, apperrors.Transientf(err, "find active session")
	}
	if len(recs) == 0 {
		return nil, apperrors.NotFoundf("no active session for rider %s", riderID)
	}
	return decodeSession(recs[0])
}

// UpdateSession merges the given fields into a session document
func (r *sessionRepo) UpdateSession(ctx context.Context, sessionID string, fields store.Record) error {
	if err := r.db.Update(ctx, constants.CollectionLiveRideSessions, sessionID, fields); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperrors.NotFoundf("session %s", sessionID)
		}
		return apperrors.Transientf(err, "update session")
	}
	return nil
}

// RecordPosition appends one point to the session trail and merges the
// derived fields in a single optimistic mutation. The status check runs
// inside the mutation, so a position fix that loses a race against end()
// is rejected instead of reviving a sealed session.
func (r *sessionRepo) RecordPosition(ctx context.Context, sessionID string, point models.PathPoint, fields store.Record) error {
	err := r.db.Mutate(ctx, constants.CollectionLiveRideSessions, sessionID, func(rec store.Record) error {
		status, _ := rec["status"].(string)
		if status != string(models.RideStatusActive) {
			return apperrors.InvalidStatef("cannot record position on %s session %s", status, sessionID)
		}

		encoded, encErr := store.Encode(point)
		if encErr != nil {
			return encErr
		}
		existing, _ := rec["path_points"].([]interface{})
		points := make([]interface{}, len(existing), len(existing)+1)
		copy(points, existing)
		rec["path_points"] = append(points, map[string]interface{}(encoded))

		for k, v := range fields {
			rec[k] = v
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperrors.NotFoundf("session %s", sessionID)
		}
		if errors.Is(err, apperrors.ErrInvalidState) {
			return err
		}
		return apperrors.Transientf(err, "record position")
	}
	return nil
}

// ListSessionsByRider returns every session the rider ever recorded
func (r *sessionRepo) ListSessionsByRider(ctx context.Context, riderID string) ([]*models.LiveRideSession, error) {
	recs, err := r.db.Find(ctx, store.Query{
		Collection: constants.CollectionLiveRideSessions,
		Filters:    []store.Filter{store.Eq("rider_id", riderID)},
	})
	if err != nil {
		return nil, apperrors.Transientf(err, "list sessions")
	}
	return decodeSessions(recs)
}

// WatchInvitedSessions follows live sessions whose viewer list names viewerID
func (r *sessionRepo) WatchInvitedSessions(ctx context.Context, viewerID string) (*store.Subscription, error) {
	return r.db.Watch(ctx, store.Query{
		Collection: constants.CollectionLiveRideSessions,
		Filters: []store.Filter{
			store.Contains("allowed_viewer_ids", viewerID),
			store.In("status", liveStatuses...),
		},
	})
}

// WatchPublicSessions follows all live public sessions
func (r *sessionRepo) WatchPublicSessions(ctx context.Context) (*store.Subscription, error) {
	return r.db.Watch(ctx, store.Query{
		Collection: constants.CollectionLiveRideSessions,
		Filters: []store.Filter{
			store.Eq("is_public", true),
			store.In("status", liveStatuses...),
		},
	})
}

// WatchFollowedSessions follows live followers-only sessions of the given
// riders. An empty rider set matches nothing, by store semantics.
func (r *sessionRepo) WatchFollowedSessions(ctx context.Context, riderIDs []string) (*store.Subscription, error) {
	return r.db.Watch(ctx, store.Query{
		Collection: constants.CollectionLiveRideSessions,
		Filters: []store.Filter{
			store.In("rider_id", riderIDs...),
			store.Eq("followers_only", true),
			store.In("status", liveStatuses...),
		},
	})
}

func decodeSession(rec store.Record) (*models.LiveRideSession, error) {
	var session models.LiveRideSession
	if err := store.Decode(rec, &session); err != nil {
		return nil, apperrors.Transientf(err, "decode session")
	}
	return &session, nil
}

func decodeSessions(recs []store.Record) ([]*models.LiveRideSession, error) {
	sessions := make([]*models.LiveRideSession, 0, len(recs))
	for _, rec := range recs {
		session, err := decodeSession(rec)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	return sessions, nil
}
