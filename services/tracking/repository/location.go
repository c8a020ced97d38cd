package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/paceline/paceline/internal/pkg/apperrors"
	"github.com/paceline/paceline/internal/pkg/constants"
	"github.com/paceline/paceline/internal/pkg/database"
	"github.com/paceline/paceline/internal/pkg/models"
	"github.com/paceline/paceline/services/tracking"
)

// locationTTL keeps abandoned location keys from lingering forever. It is
// far above the freshness window, so expiry never races an online check.
const locationTTL = 24 * time.Hour

// locationRepo keeps the last published position per user in a redis hash
type locationRepo struct {
	redis *database.RedisClient
}

// NewLocationRepo creates a new tracked-location repository
func NewLocationRepo(redis *database.RedisClient) tracking.LocationRepo {
	return &locationRepo{redis: redis}
}

// UpsertLocation stores the user's position, overwriting any earlier one
func (r *locationRepo) UpsertLocation(ctx context.Context, location *models.TrackedLocation) error {
	key := fmt.Sprintf(constants.KeyTrackedLocation, location.UserID)

	err := r.redis.HMSet(ctx, key, map[string]interface{}{
		constants.FieldLatitude:  location.Latitude,
		constants.FieldLongitude: location.Longitude,
		constants.FieldTimestamp: location.Timestamp.Unix(),
	})
	if err != nil {
		return apperrors.Transientf(err, "upsert tracked location")
	}
	if err := r.redis.Expire(ctx, key, locationTTL); err != nil {
		return apperrors.Transientf(err, "expire tracked location")
	}
	return nil
}

// GetLocation returns the last published position for userID
func (r *locationRepo) GetLocation(ctx context.Context, userID string) (*models.TrackedLocation, error) {
	key := fmt.Sprintf(constants.KeyTrackedLocation, userID)

	values, err := r.redis.HMGet(ctx, key, constants.FieldLatitude, constants.FieldLongitude, constants.FieldTimestamp)
	if err != nil {
		return nil, apperrors.Transientf(err, "get tracked location")
	}
	if len(values) != 3 || values[0] == "" || values[1] == "" || values[2] == "" {
		return nil, apperrors.NotFoundf("no location published by %s", userID)
	}

	lat, err := strconv.ParseFloat(values[0], 64)
	if err != nil {
		return nil, fmt.Errorf("malformed latitude for %s: %w", userID, err)
	}
	lng, err := strconv.ParseFloat(values[1], 64)
	if err != nil {
		return nil, fmt.Errorf("malformed longitude for %s: %w", userID, err)
	}
	ts, err := strconv.ParseInt(values[2], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("malformed timestamp for %s: %w", userID, err)
	}

	return &models.TrackedLocation{
		UserID:    userID,
		Latitude:  lat,
		Longitude: lng,
		Timestamp: time.Unix(ts, 0).UTC(),
	}, nil
}
