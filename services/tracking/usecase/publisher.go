package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/paceline/paceline/internal/pkg/apperrors"
	"github.com/paceline/paceline/internal/pkg/logger"
	"github.com/paceline/paceline/internal/pkg/models"
	"github.com/paceline/paceline/internal/pkg/ratelimit"
	"github.com/paceline/paceline/internal/utils"
	"github.com/paceline/paceline/services/tracking"
)

// publisherUC implements the tracking.PublisherUC interface
type publisherUC struct {
	cfg       *models.Config
	tracks    tracking.TrackingRepo
	locations tracking.LocationRepo
	limiter   *ratelimit.IntervalLimiter
}

// NewPublisherUC creates a new location publisher use case
func NewPublisherUC(
	cfg *models.Config,
	tracks tracking.TrackingRepo,
	locations tracking.LocationRepo,
) tracking.PublisherUC {
	interval := time.Duration(cfg.Tracking.PublishIntervalSeconds) * time.Second
	return &publisherUC{
		cfg:       cfg,
		tracks:    tracks,
		locations: locations,
		limiter:   ratelimit.NewIntervalLimiter(interval),
	}
}

// PublishLocation upserts the user's last-known position. The write is
// skipped when nobody tracks the user, and throttled to one per interval;
// both are silent successes so devices can publish on a fixed cadence.
func (uc *publisherUC) PublishLocation(ctx context.Context, userID string, req *models.PublishLocationRequest) error {
	if !utils.ValidateCoordinates(req.Latitude, req.Longitude) {
		return apperrors.InvalidArgumentf("coordinates out of range: %f, %f", req.Latitude, req.Longitude)
	}

	tracked, err := uc.tracks.HasActiveTrackers(ctx, userID)
	if err != nil {
		return err
	}
	if !tracked {
		uc.limiter.Forget(userID)
		return nil
	}

	if !uc.limiter.Allow(userID) {
		return nil
	}

	location := &models.TrackedLocation{
		UserID:    userID,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Timestamp: models.Now(),
	}
	if err := uc.locations.UpsertLocation(ctx, location); err != nil {
		return err
	}

	logger.Debug("Tracked location published",
		logger.String("user_id", userID))
	return nil
}

// GetTrackedLocation returns trackedID's last position for trackerID.
// Users may always read their own published position.
func (uc *publisherUC) GetTrackedLocation(ctx context.Context, trackerID, trackedID string) (*models.TrackedLocation, error) {
	if trackerID != trackedID {
		if _, err := uc.tracks.GetActiveTrack(ctx, trackerID, trackedID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.PermissionDeniedf("%s does not track %s", trackerID, trackedID)
			}
			return nil, err
		}
	}

	location, err := uc.locations.GetLocation(ctx, trackedID)
	if err != nil {
		return nil, err
	}

	window := time.Duration(uc.cfg.Tracking.FreshnessWindowMinutes) * time.Minute
	location.IsOnline = models.Now().Sub(location.Timestamp) < window
	return location, nil
}
