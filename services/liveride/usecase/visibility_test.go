package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paceline/paceline/internal/pkg/constants"
	"github.com/paceline/paceline/internal/pkg/models"
	"github.com/paceline/paceline/internal/pkg/store/memory"
	"github.com/paceline/paceline/services/liveride/mocks"
	"github.com/paceline/paceline/services/liveride/repository"
)

// The visibility tests run against the in-memory store so the three live
// queries and their merge behave end to end.

func seedSession(t *testing.T, db *memory.Store, session *models.LiveRideSession) {
	t.Helper()
	require.NoError(t, db.Create(context.Background(), constants.CollectionLiveRideSessions, session.ID, session))
}

func newSession(riderID string, startedAt time.Time) *models.LiveRideSession {
	return &models.LiveRideSession{
		ID:        uuid.New().String(),
		RiderID:   riderID,
		Status:    models.RideStatusActive,
		StartedAt: startedAt,
	}
}

func waitForSessions(t *testing.T, updates <-chan []*models.LiveRideSession) []*models.LiveRideSession {
	t.Helper()
	select {
	case sessions, ok := <-updates:
		require.True(t, ok, "stream closed unexpectedly")
		return sessions
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a visibility emission")
		return nil
	}
}

func TestStreamVisibleSessions_MergesThreeSourcesAndDedups(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db := memory.New()
	repo := repository.NewSessionRepo(db)
	viewerID := uuid.New().String()
	followedRider := uuid.New().String()
	now := models.Now()

	// Invited session.
	invited := newSession(uuid.New().String(), now.Add(-3*time.Minute))
	invited.AllowedViewerIDs = []string{viewerID}
	seedSession(t, db, invited)

	// Public session that ALSO names the viewer: must appear once.
	public := newSession(uuid.New().String(), now.Add(-2*time.Minute))
	public.IsPublic = true
	public.AllowedViewerIDs = []string{viewerID}
	seedSession(t, db, public)

	// Followers-only session of a followed rider.
	followed := newSession(followedRider, now.Add(-1*time.Minute))
	followed.FollowersOnly = true
	seedSession(t, db, followed)

	// Followers-only session of a stranger: invisible.
	stranger := newSession(uuid.New().String(), now)
	stranger.FollowersOnly = true
	seedSession(t, db, stranger)

	mockSocial := mocks.NewMockSocialGW(ctrl)
	mockSocial.EXPECT().GetFollowing(gomock.Any(), viewerID).Return([]string{followedRider}, nil)

	uc := NewVisibilityUC(repo, mockSocial)
	updates, stop, err := uc.StreamVisibleSessions(context.Background(), viewerID)
	require.NoError(t, err)
	defer stop()

	sessions := waitForSessions(t, updates)
	require.Len(t, sessions, 3)
	// Newest first.
	assert.Equal(t, followed.ID, sessions[0].ID)
	assert.Equal(t, public.ID, sessions[1].ID)
	assert.Equal(t, invited.ID, sessions[2].ID)
}

func TestStreamVisibleSessions_ExcludesOwnSessions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db := memory.New()
	repo := repository.NewSessionRepo(db)
	viewerID := uuid.New().String()

	own := newSession(viewerID, models.Now())
	own.IsPublic = true
	seedSession(t, db, own)

	other := newSession(uuid.New().String(), models.Now().Add(-time.Minute))
	other.IsPublic = true
	seedSession(t, db, other)

	mockSocial := mocks.NewMockSocialGW(ctrl)
	mockSocial.EXPECT().GetFollowing(gomock.Any(), viewerID).Return(nil, nil)

	uc := NewVisibilityUC(repo, mockSocial)
	updates, stop, err := uc.StreamVisibleSessions(context.Background(), viewerID)
	require.NoError(t, err)
	defer stop()

	sessions := waitForSessions(t, updates)
	require.Len(t, sessions, 1)
	assert.Equal(t, other.ID, sessions[0].ID)
}

func TestStreamVisibleSessions_ReactsToChanges(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db := memory.New()
	repo := repository.NewSessionRepo(db)
	viewerID := uuid.New().String()

	mockSocial := mocks.NewMockSocialGW(ctrl)
	mockSocial.EXPECT().GetFollowing(gomock.Any(), viewerID).Return(nil, nil)

	uc := NewVisibilityUC(repo, mockSocial)
	updates, stop, err := uc.StreamVisibleSessions(context.Background(), viewerID)
	require.NoError(t, err)
	defer stop()

	assert.Empty(t, waitForSessions(t, updates))

	// A rider goes live publicly: the feed gains the session.
	session := newSession(uuid.New().String(), models.Now())
	session.IsPublic = true
	seedSession(t, db, session)

	sessions := waitForSessions(t, updates)
	require.Len(t, sessions, 1)
	assert.Equal(t, session.ID, sessions[0].ID)

	// The ride ends: completed sessions leave the feed.
	require.NoError(t, db.Update(context.Background(), constants.CollectionLiveRideSessions, session.ID, map[string]interface{}{
		"status": string(models.RideStatusCompleted),
	}))

	assert.Empty(t, waitForSessions(t, updates))
}

func TestStreamVisibleSessions_PausedSessionsRemainVisible(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db := memory.New()
	repo := repository.NewSessionRepo(db)
	viewerID := uuid.New().String()

	session := newSession(uuid.New().String(), models.Now())
	session.Status = models.RideStatusPaused
	session.AllowedViewerIDs = []string{viewerID}
	seedSession(t, db, session)

	mockSocial := mocks.NewMockSocialGW(ctrl)
	mockSocial.EXPECT().GetFollowing(gomock.Any(), viewerID).Return(nil, nil)

	uc := NewVisibilityUC(repo, mockSocial)
	updates, stop, err := uc.StreamVisibleSessions(context.Background(), viewerID)
	require.NoError(t, err)
	defer stop()

	sessions := waitForSessions(t, updates)
	require.Len(t, sessions, 1)
	assert.Equal(t, session.ID, sessions[0].ID)
}

func TestStreamVisibleSessions_SocialOutageDegradesToOtherSources(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db := memory.New()
	repo := repository.NewSessionRepo(db)
	viewerID := uuid.New().String()

	public := newSession(uuid.New().String(), models.Now())
	public.IsPublic = true
	seedSession(t, db, public)

	mockSocial := mocks.NewMockSocialGW(ctrl)
	mockSocial.EXPECT().GetFollowing(gomock.Any(), viewerID).Return(nil, assert.AnError)

	uc := NewVisibilityUC(repo, mockSocial)
	updates, stop, err := uc.StreamVisibleSessions(context.Background(), viewerID)
	require.NoError(t, err)
	defer stop()

	sessions := waitForSessions(t, updates)
	require.Len(t, sessions, 1)
	assert.Equal(t, public.ID, sessions[0].ID)
}
