package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paceline/paceline/internal/pkg/apperrors"
	"github.com/paceline/paceline/internal/pkg/models"
	"github.com/paceline/paceline/internal/pkg/store"
	"github.com/paceline/paceline/services/liveride"
	"github.com/paceline/paceline/services/liveride/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		LiveRide: models.LiveRideConfig{
			GeohashPrecision:      6,
			UpdateIntervalSeconds: 5,
		},
	}
}

func newTestUC(t *testing.T) (liveride.LiveRideUC, *mocks.MockSessionRepo, *mocks.MockLiveRideGW, *mocks.MockSocialGW, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockSessionRepo(ctrl)
	mockGW := mocks.NewMockLiveRideGW(ctrl)
	mockSocial := mocks.NewMockSocialGW(ctrl)
	uc := NewLiveRideUC(testConfig(), mockRepo, mockGW, mockSocial)
	return uc, mockRepo, mockGW, mockSocial, ctrl
}

func TestStartRide_Success(t *testing.T) {
	uc, mockRepo, mockGW, _, ctrl := newTestUC(t)
	defer ctrl.Finish()

	riderID := uuid.New().String()
	viewerID := uuid.New().String()

	mockRepo.EXPECT().
		GetActiveSessionByRider(gomock.Any(), riderID).
		Return(nil, apperrors.NotFoundf("no active session"))
	mockRepo.EXPECT().
		CreateSession(gomock.Any(), gomock.Any()).
		Return(nil)
	mockGW.EXPECT().
		PublishRideStarted(gomock.Any(), gomock.Any()).
		Return(nil)
	mockGW.EXPECT().
		NotifyViewerInvited(gomock.Any(), viewerID, riderID, gomock.Any()).
		Return(nil)

	session, err := uc.StartRide(context.Background(), riderID, &models.StartRideRequest{
		RiderName: "Asep",
		Latitude:  51.5074,
		Longitude: -0.1278,
		ViewerIDs: []string{viewerID, viewerID, riderID},
	})

	require.NoError(t, err)
	assert.Equal(t, riderID, session.RiderID)
	assert.Equal(t, models.RideStatusActive, session.Status)
	assert.Equal(t, "gcpvj0", session.Geohash)
	assert.Len(t, session.PathPoints, 1)
	assert.Equal(t, session.StartPosition, session.CurrentPosition)
	// dedup and dropped self-invite
	assert.Equal(t, []string{viewerID}, session.AllowedViewerIDs)
}

func TestStartRide_AlreadyActive(t *testing.T) {
	uc, mockRepo, _, _, ctrl := newTestUC(t)
	defer ctrl.Finish()

	riderID := uuid.New().String()
	mockRepo.EXPECT().
		GetActiveSessionByRider(gomock.Any(), riderID).
		Return(&models.LiveRideSession{ID: uuid.New().String(), RiderID: riderID}, nil)

	_, err := uc.StartRide(context.Background(), riderID, &models.StartRideRequest{
		Latitude:  51.5074,
		Longitude: -0.1278,
	})
	assert.ErrorIs(t, err, apperrors.ErrAlreadyActive)
}

func TestStartRide_InvalidCoordinates(t *testing.T) {
	uc, _, _, _, ctrl := newTestUC(t)
	defer ctrl.Finish()

	_, err := uc.StartRide(context.Background(), uuid.New().String(), &models.StartRideRequest{
		Latitude:  91.0,
		Longitude: 0,
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
}

func TestUpdatePosition_RecordsAndRecomputes(t *testing.T) {
	uc, mockRepo, _, _, ctrl := newTestUC(t)
	defer ctrl.Finish()

	riderID := uuid.New().String()
	sessionID := uuid.New().String()
	started := models.Now().Add(-10 * time.Minute)
	existing := &models.LiveRideSession{
		ID:        sessionID,
		RiderID:   riderID,
		Status:    models.RideStatusActive,
		StartedAt: started,
		PathPoints: []models.PathPoint{
			{Latitude: 51.5074, Longitude: -0.1278, EpochSeconds: started.Unix()},
		},
	}

	mockRepo.EXPECT().GetSession(gomock.Any(), sessionID).Return(existing, nil)
	var updated store.Record
	mockRepo.EXPECT().
		RecordPosition(gomock.Any(), sessionID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ models.PathPoint, fields store.Record) error {
			updated = fields
			return nil
		})

	session, err := uc.UpdatePosition(context.Background(), riderID, sessionID, &models.UpdatePositionRequest{
		Latitude:  51.5160,
		Longitude: -0.1278,
	})

	require.NoError(t, err)
	assert.Len(t, session.PathPoints, 2)
	// about 0.96 km due north
	assert.InDelta(t, 0.956, session.TotalDistanceKm, 0.01)
	assert.Equal(t, 10, session.DurationMinutes)
	assert.Contains(t, updated, "current_position")
	assert.Contains(t, updated, "geohash")
	assert.Contains(t, updated, "total_distance_km")
	assert.Contains(t, updated, "duration_minutes")
}

func TestUpdatePosition_ThrottledUpdateIsDropped(t *testing.T) {
	uc, mockRepo, _, _, ctrl := newTestUC(t)
	defer ctrl.Finish()

	riderID := uuid.New().String()
	sessionID := uuid.New().String()

	now := models.Now()
	uc.(*liveRideUC).limiter.SetClock(func() time.Time { return now })

	// First update lands, second within the interval only round-trips the
	// session without touching the store.
	mockRepo.EXPECT().GetSession(gomock.Any(), sessionID).
		DoAndReturn(func(context.Context, string) (*models.LiveRideSession, error) {
			return &models.LiveRideSession{
				ID:      sessionID,
				RiderID: riderID,
				Status:  models.RideStatusActive,
				PathPoints: []models.PathPoint{
					{Latitude: 51.5074, Longitude: -0.1278},
				},
			}, nil
		}).Times(2)
	mockRepo.EXPECT().RecordPosition(gomock.Any(), sessionID, gomock.Any(), gomock.Any()).Return(nil).Times(1)

	req := &models.UpdatePositionRequest{Latitude: 51.5160, Longitude: -0.1278}
	_, err := uc.UpdatePosition(context.Background(), riderID, sessionID, req)
	require.NoError(t, err)

	dropped, err := uc.UpdatePosition(context.Background(), riderID, sessionID, req)
	require.NoError(t, err)
	assert.Len(t, dropped.PathPoints, 1)
}

func TestUpdatePosition_PausedSessionRejects(t *testing.T) {
	uc, mockRepo, _, _, ctrl := newTestUC(t)
	defer ctrl.Finish()

	riderID := uuid.New().String()
	sessionID := uuid.New().String()
	mockRepo.EXPECT().GetSession(gomock.Any(), sessionID).Return(&models.LiveRideSession{
		ID:      sessionID,
		RiderID: riderID,
		Status:  models.RideStatusPaused,
	}, nil)

	_, err := uc.UpdatePosition(context.Background(), riderID, sessionID, &models.UpdatePositionRequest{
		Latitude:  51.5160,
		Longitude: -0.1278,
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidState)
}

func TestUpdatePosition_WrongRider(t *testing.T) {
	uc, mockRepo, _, _, ctrl := newTestUC(t)
	defer ctrl.Finish()

	sessionID := uuid.New().String()
	mockRepo.EXPECT().GetSession(gomock.Any(), sessionID).Return(&models.LiveRideSession{
		ID:      sessionID,
		RiderID: uuid.New().String(),
		Status:  models.RideStatusActive,
	}, nil)

	_, err := uc.UpdatePosition(context.Background(), uuid.New().String(), sessionID, &models.UpdatePositionRequest{
		Latitude:  51.5160,
		Longitude: -0.1278,
	})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestPauseResumeTransitions(t *testing.T) {
	riderID := uuid.New().String()
	sessionID := uuid.New().String()

	tests := []struct {
		name    string
		status  models.RideStatus
		op      string
		wantErr error
	}{
		{"pause active", models.RideStatusActive, "pause", nil},
		{"pause paused", models.RideStatusPaused, "pause", apperrors.ErrInvalidState},
		{"pause completed", models.RideStatusCompleted, "pause", apperrors.ErrInvalidState},
		{"resume paused", models.RideStatusPaused, "resume", nil},
		{"resume active", models.RideStatusActive, "resume", apperrors.ErrInvalidState},
		{"resume completed", models.RideStatusCompleted, "resume", apperrors.ErrInvalidState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, mockRepo, _, _, ctrl := newTestUC(t)
			defer ctrl.Finish()

			mockRepo.EXPECT().GetSession(gomock.Any(), sessionID).Return(&models.LiveRideSession{
				ID:      sessionID,
				RiderID: riderID,
				Status:  tt.status,
			}, nil)
			if tt.wantErr == nil {
				mockRepo.EXPECT().UpdateSession(gomock.Any(), sessionID, gomock.Any()).Return(nil)
			}

			var err error
			var session *models.LiveRideSession
			if tt.op == "pause" {
				session, err = uc.PauseRide(context.Background(), riderID, sessionID)
			} else {
				session, err = uc.ResumeRide(context.Background(), riderID, sessionID)
			}

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			if tt.op == "pause" {
				assert.Equal(t, models.RideStatusPaused, session.Status)
			} else {
				assert.Equal(t, models.RideStatusActive, session.Status)
			}
		})
	}
}

func TestEndRide_SealsSession(t *testing.T) {
	uc, mockRepo, mockGW, _, ctrl := newTestUC(t)
	defer ctrl.Finish()

	riderID := uuid.New().String()
	sessionID := uuid.New().String()
	started := models.Now().Add(-42 * time.Minute)

	mockRepo.EXPECT().GetSession(gomock.Any(), sessionID).Return(&models.LiveRideSession{
		ID:        sessionID,
		RiderID:   riderID,
		Status:    models.RideStatusPaused,
		StartedAt: started,
	}, nil)
	mockRepo.EXPECT().UpdateSession(gomock.Any(), sessionID, gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishRideEnded(gomock.Any(), gomock.Any()).Return(nil)

	session, err := uc.EndRide(context.Background(), riderID, sessionID)
	require.NoError(t, err)
	assert.Equal(t, models.RideStatusCompleted, session.Status)
	require.NotNil(t, session.EndedAt)
	assert.GreaterOrEqual(t, session.DurationMinutes, 41)
	assert.LessOrEqual(t, session.DurationMinutes, 42)
}

func TestEndRide_AlreadyCompleted(t *testing.T) {
	uc, mockRepo, _, _, ctrl := newTestUC(t)
	defer ctrl.Finish()

	riderID := uuid.New().String()
	sessionID := uuid.New().String()
	mockRepo.EXPECT().GetSession(gomock.Any(), sessionID).Return(&models.LiveRideSession{
		ID:      sessionID,
		RiderID: riderID,
		Status:  models.RideStatusCompleted,
	}, nil)

	_, err := uc.EndRide(context.Background(), riderID, sessionID)
	assert.ErrorIs(t, err, apperrors.ErrInvalidState)
}

func TestSetViewers_NotifiesOnlyNewlyAdded(t *testing.T) {
	uc, mockRepo, mockGW, _, ctrl := newTestUC(t)
	defer ctrl.Finish()

	riderID := uuid.New().String()
	sessionID := uuid.New().String()
	kept := uuid.New().String()
	removed := uuid.New().String()
	added := uuid.New().String()

	mockRepo.EXPECT().GetSession(gomock.Any(), sessionID).Return(&models.LiveRideSession{
		ID:               sessionID,
		RiderID:          riderID,
		Status:           models.RideStatusActive,
		AllowedViewerIDs: []string{kept, removed},
	}, nil)
	mockRepo.EXPECT().UpdateSession(gomock.Any(), sessionID, gomock.Any()).Return(nil)
	mockGW.EXPECT().NotifyViewerInvited(gomock.Any(), added, riderID, sessionID).Return(nil)

	session, err := uc.SetViewers(context.Background(), riderID, sessionID, []string{kept, added})
	require.NoError(t, err)
	assert.Equal(t, []string{kept, added}, session.AllowedViewerIDs)
}

func TestGetSession_VisibilityRules(t *testing.T) {
	riderID := uuid.New().String()
	viewerID := uuid.New().String()
	sessionID := uuid.New().String()

	base := func() *models.LiveRideSession {
		return &models.LiveRideSession{
			ID:      sessionID,
			RiderID: riderID,
			Status:  models.RideStatusActive,
		}
	}

	t.Run("owner always sees own session", func(t *testing.T) {
		uc, mockRepo, _, _, ctrl := newTestUC(t)
		defer ctrl.Finish()
		mockRepo.EXPECT().GetSession(gomock.Any(), sessionID).Return(base(), nil)

		_, err := uc.GetSession(context.Background(), riderID, sessionID)
		assert.NoError(t, err)
	})

	t.Run("invited viewer sees session", func(t *testing.T) {
		uc, mockRepo, _, _, ctrl := newTestUC(t)
		defer ctrl.Finish()
		session := base()
		session.AllowedViewerIDs = []string{viewerID}
		mockRepo.EXPECT().GetSession(gomock.Any(), sessionID).Return(session, nil)

		_, err := uc.GetSession(context.Background(), viewerID, sessionID)
		assert.NoError(t, err)
	})

	t.Run("anyone sees public session", func(t *testing.T) {
		uc, mockRepo, _, _, ctrl := newTestUC(t)
		defer ctrl.Finish()
		session := base()
		session.IsPublic = true
		mockRepo.EXPECT().GetSession(gomock.Any(), sessionID).Return(session, nil)

		_, err := uc.GetSession(context.Background(), viewerID, sessionID)
		assert.NoError(t, err)
	})

	t.Run("follower sees followers-only session", func(t *testing.T) {
		uc, mockRepo, _, mockSocial, ctrl := newTestUC(t)
		defer ctrl.Finish()
		session := base()
		session.FollowersOnly = true
		mockRepo.EXPECT().GetSession(gomock.Any(), sessionID).Return(session, nil)
		mockSocial.EXPECT().IsFollowing(gomock.Any(), viewerID, riderID).Return(true, nil)

		_, err := uc.GetSession(context.Background(), viewerID, sessionID)
		assert.NoError(t, err)
	})

	t.Run("stranger is denied", func(t *testing.T) {
		uc, mockRepo, _, mockSocial, ctrl := newTestUC(t)
		defer ctrl.Finish()
		session := base()
		session.FollowersOnly = true
		mockRepo.EXPECT().GetSession(gomock.Any(), sessionID).Return(session, nil)
		mockSocial.EXPECT().IsFollowing(gomock.Any(), viewerID, riderID).Return(false, nil)

		_, err := uc.GetSession(context.Background(), viewerID, sessionID)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})

	t.Run("private session is denied", func(t *testing.T) {
		uc, mockRepo, _, _, ctrl := newTestUC(t)
		defer ctrl.Finish()
		mockRepo.EXPECT().GetSession(gomock.Any(), sessionID).Return(base(), nil)

		_, err := uc.GetSession(context.Background(), viewerID, sessionID)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})
}
