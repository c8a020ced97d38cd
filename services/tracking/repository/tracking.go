package repository

import (
	"context"
	"errors"

	"github.com/paceline/paceline/internal/pkg/apperrors"
	"github.com/paceline/paceline/internal/pkg/constants"
	"github.com/paceline/paceline/internal/pkg/models"
	"github.com/paceline/paceline/internal/pkg/store"
	"github.com/paceline/paceline/services/tracking"
)

// trackingRepo persists track requests and active tracks as documents in
// the shared store
type trackingRepo struct {
	db store.Store
}

// NewTrackingRepo creates a new tracking repository
func NewTrackingRepo(db store.Store) tracking.TrackingRepo {
	return &trackingRepo{db: db}
}

// CreateRequest inserts a new track request document
func (r *trackingRepo) CreateRequest(ctx context.Context, request *models.TrackRequest) error {
	if err := r.db.Create(ctx, constants.CollectionTrackRequests, request.ID, request); err != nil {
		if errors.Is(err, store.ErrExists) {
			return apperrors.AlreadyExistsf("request %s", request.ID)
		}
		return apperrors.Transientf(err, "create request")
	}
	return nil
}

// GetRequest fetches a track request by id
func (r *trackingRepo) GetRequest(ctx context.Context, requestID string) (*models.TrackRequest, error) {
	rec, err := r.db.Get(ctx, constants.CollectionTrackRequests, requestID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.NotFoundf("request %s", requestID)
		}
		return nil, apperrors.Transientf(err, "get request")
	}
	return decodeRequest(rec)
}

// UpdateRequestStatus moves a request to a new lifecycle state
func (r *trackingRepo) UpdateRequestStatus(ctx context.Context, requestID string, status models.TrackRequestStatus) error {
	err := r.db.Update(ctx, constants.CollectionTrackRequests, requestID, store.Record{
		"status": status,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperrors.NotFoundf("request %s", requestID)
		}
		return apperrors.Transientf(err, "update request status")
	}
	return nil
}

// GetPendingRequest returns the pending request for the ordered pair
func (r *trackingRepo) GetPendingRequest(ctx context.Context, fromUserID, toUserID string) (*models.TrackRequest, error) {
	recs, err := r.db.Find(ctx, store.Query{
		Collection: constants.CollectionTrackRequests,
		Filters: []store.Filter{
			store.Eq("from_user_id", fromUserID),
			store.Eq("to_user_id", toUserID),
			store.Eq("status", models.TrackRequestStatusPending),
		},
	})
	if err != nil {
		return nil, apperrors.Transientf(err, "find pending request")
	}
	if len(recs) == 0 {
		return nil, apperrors.NotFoundf("no pending request %s -> %s", fromUserID, toUserID)
	}
	return decodeRequest(recs[0])
}

// ListIncomingRequests returns the pending requests addressed to userID
func (r *trackingRepo) ListIncomingRequests(ctx context.Context, userID string) ([]*models.TrackRequest, error) {
	return r.findRequests(ctx, store.Eq("to_user_id", userID), store.Eq("status", models.TrackRequestStatusPending))
}

// ListOutgoingRequests returns the pending requests userID sent
func (r *trackingRepo) ListOutgoingRequests(ctx context.Context, userID string) ([]*models.TrackRequest, error) {
	return r.findRequests(ctx, store.Eq("from_user_id", userID), store.Eq("status", models.TrackRequestStatusPending))
}

func (r *trackingRepo) findRequests(ctx context.Context, filters ...store.Filter) ([]*models.TrackRequest, error) {
	recs, err := r.db.Find(ctx, store.Query{
		Collection: constants.CollectionTrackRequests,
		Filters:    filters,
	})
	if err != nil {
		return nil, apperrors.Transientf(err, "list requests")
	}
	requests := make([]*models.TrackRequest, 0, len(recs))
	for _, rec := range recs {
		request, err := decodeRequest(rec)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}
	return requests, nil
}

// CreateTrack inserts a new active track document
func (r *trackingRepo) CreateTrack(ctx context.Context, track *models.ActiveTrack) error {
	if err := r.db.Create(ctx, constants.CollectionActiveTracks, track.ID, track); err != nil {
		if errors.Is(err, store.ErrExists) {
			return apperrors.AlreadyExistsf("track %s", track.ID)
		}
		return apperrors.Transientf(err, "create track")
	}
	return nil
}

// GetTrack fetches an active track by id
func (r *trackingRepo) GetTrack(ctx context.Context, trackID string) (*models.ActiveTrack, error) {
	rec, err := r.db.Get(ctx, constants.CollectionActiveTracks, trackID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.NotFoundf("track %s", trackID)
		}
		return nil, apperrors.Transientf(err, "get track")
	}
	return decodeTrack(rec)
}

// DeactivateTrack ends the tracking relationship. The record stays for
// history; only is_active flips.
func (r *trackingRepo) DeactivateTrack(ctx context.Context, trackID string) error {
	err := r.db.Update(ctx, constants.CollectionActiveTracks, trackID, store.Record{
		"is_active": false,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperrors.NotFoundf("track %s", trackID)
		}
		return apperrors.Transientf(err, "deactivate track")
	}
	return nil
}

// GetActiveTrack returns the unique active track for the pair
func (r *trackingRepo) GetActiveTrack(ctx context.Context, trackerID, trackedID string) (*models.ActiveTrack, error) {
	recs, err := r.db.Find(ctx, store.Query{
		Collection: constants.CollectionActiveTracks,
		Filters: []store.Filter{
			store.Eq("tracker_id", trackerID),
			store.Eq("tracked_id", trackedID),
			store.Eq("is_active", true),
		},
	})
	if err != nil {
		return nil, apperrors.Transientf(err, "find active track")
	}
	if len(recs) == 0 {
		return nil, apperrors.NotFoundf("no active track %s -> %s", trackerID, trackedID)
	}
	return decodeTrack(recs[0])
}

// ListTrackers returns the active tracks pointed at trackedID
func (r *trackingRepo) ListTrackers(ctx context.Context, trackedID string) ([]*models.ActiveTrack, error) {
	return r.findTracks(ctx, store.Eq("tracked_id", trackedID), store.Eq("is_active", true))
}

// ListTracked returns the active tracks held by trackerID
func (r *trackingRepo) ListTracked(ctx context.Context, trackerID string) ([]*models.ActiveTrack, error) {
	return r.findTracks(ctx, store.Eq("tracker_id", trackerID), store.Eq("is_active", true))
}

// HasActiveTrackers reports whether anyone currently tracks trackedID
func (r *trackingRepo) HasActiveTrackers(ctx context.Context, trackedID string) (bool, error) {
	tracks, err := r.ListTrackers(ctx, trackedID)
	if err != nil {
		return false, err
	}
	return len(tracks) > 0, nil
}

func (r *trackingRepo) findTracks(ctx context.Context, filters ...store.Filter) ([]*models.ActiveTrack, error) {
	recs, err := r.db.Find(ctx, store.Query{
		Collection: constants.CollectionActiveTracks,
		Filters:    filters,
	})
	if err != nil {
		return nil, apperrors.Transientf(err, "list tracks")
	}
	tracks := make([]*models.ActiveTrack, 0, len(recs))
	for _, rec := range recs {
		track, err := decodeTrack(rec)
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, track)
	}
	return tracks, nil
}

func decodeRequest(rec store.Record) (*models.TrackRequest, error) {
	var request models.TrackRequest
	if err := store.Decode(rec, &request); err != nil {
		return nil, apperrors.Transientf(err, "decode request")
	}
	return &request, nil
}

func decodeTrack(rec store.Record) (*models.ActiveTrack, error) {
	var track models.ActiveTrack
	if err := store.Decode(rec, &track); err != nil {
		return nil, apperrors.Transientf(err, "decode track")
	}
	return &track, nil
}
