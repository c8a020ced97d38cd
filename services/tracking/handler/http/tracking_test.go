package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/paceline/paceline/internal/pkg/apperrors"
	"github.com/paceline/paceline/internal/pkg/models"
	"github.com/paceline/paceline/services/tracking/mocks"
)

func newTrackingContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder, uuid.UUID) {
	t.Helper()

	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	callerID := uuid.New()
	c.Set("user_id", callerID)
	return c, rec, callerID
}

func TestSendRequest_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTrackingUC := mocks.NewMockTrackingUC(ctrl)
	mockPublisherUC := mocks.NewMockPublisherUC(ctrl)
	handler := NewTrackingHandler(mockTrackingUC, mockPublisherUC)

	targetID := uuid.NewString()
	c, rec, callerID := newTrackingContext(t, http.MethodPost, "/tracking/requests", `{"to_user_id":"`+targetID+`"}`)

	mockTrackingUC.EXPECT().
		SendRequest(gomock.Any(), callerID.String(), targetID).
		Return(&models.TrackRequest{
			ID:         uuid.NewString(),
			FromUserID: callerID.String(),
			ToUserID:   targetID,
			Status:     models.TrackRequestStatusPending,
			CreatedAt:  time.Now(),
		}, nil)

	// Act
	err := handler.SendRequest(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "Track request sent", response["message"])

	data, ok := response["data"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, callerID.String(), data["from_user_id"])
	assert.Equal(t, targetID, data["to_user_id"])
	assert.Equal(t, string(models.TrackRequestStatusPending), data["status"])
}

func TestSendRequest_PermissionDenied(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTrackingUC := mocks.NewMockTrackingUC(ctrl)
	mockPublisherUC := mocks.NewMockPublisherUC(ctrl)
	handler := NewTrackingHandler(mockTrackingUC, mockPublisherUC)

	targetID := uuid.NewString()
	c, rec, callerID := newTrackingContext(t, http.MethodPost, "/tracking/requests", `{"to_user_id":"`+targetID+`"}`)

	mockTrackingUC.EXPECT().
		SendRequest(gomock.Any(), callerID.String(), targetID).
		Return(nil, apperrors.PermissionDeniedf("user %s does not accept track requests", targetID))

	// Act
	err := handler.SendRequest(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, false, response["success"])
	assert.Contains(t, response["error"], "permission denied")
}

func TestSendRequest_InvalidPayload(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTrackingUC := mocks.NewMockTrackingUC(ctrl)
	mockPublisherUC := mocks.NewMockPublisherUC(ctrl)
	handler := NewTrackingHandler(mockTrackingUC, mockPublisherUC)

	c, rec, _ := newTrackingContext(t, http.MethodPost, "/tracking/requests", `{broken`)

	// Act
	err := handler.SendRequest(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestApproveRequest_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTrackingUC := mocks.NewMockTrackingUC(ctrl)
	mockPublisherUC := mocks.NewMockPublisherUC(ctrl)
	handler := NewTrackingHandler(mockTrackingUC, mockPublisherUC)

	requestID := uuid.NewString()
	trackerID := uuid.NewString()
	c, rec, callerID := newTrackingContext(t, http.MethodPost, "/tracking/requests/"+requestID+"/approve", "")
	c.SetParamNames("requestID")
	c.SetParamValues(requestID)

	mockTrackingUC.EXPECT().
		ApproveRequest(gomock.Any(), callerID.String(), requestID).
		Return(&models.ActiveTrack{
			ID:        uuid.NewString(),
			TrackerID: trackerID,
			TrackedID: callerID.String(),
			IsActive:  true,
			CreatedAt: time.Now(),
		}, nil)

	// Act
	err := handler.ApproveRequest(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "Track request approved", response["message"])

	data, ok := response["data"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, trackerID, data["tracker_id"])
	assert.Equal(t, callerID.String(), data["tracked_id"])
	assert.Equal(t, true, data["is_active"])
}

func TestApproveRequest_NotPending(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTrackingUC := mocks.NewMockTrackingUC(ctrl)
	mockPublisherUC := mocks.NewMockPublisherUC(ctrl)
	handler := NewTrackingHandler(mockTrackingUC, mockPublisherUC)

	requestID := uuid.NewString()
	c, rec, callerID := newTrackingContext(t, http.MethodPost, "/tracking/requests/"+requestID+"/approve", "")
	c.SetParamNames("requestID")
	c.SetParamValues(requestID)

	mockTrackingUC.EXPECT().
		ApproveRequest(gomock.Any(), callerID.String(), requestID).
		Return(nil, apperrors.InvalidStatef("request %s is rejected", requestID))

	// Act
	err := handler.ApproveRequest(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRejectRequest_MissingID(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTrackingUC := mocks.NewMockTrackingUC(ctrl)
	mockPublisherUC := mocks.NewMockPublisherUC(ctrl)
	handler := NewTrackingHandler(mockTrackingUC, mockPublisherUC)

	c, rec, _ := newTrackingContext(t, http.MethodPost, "/tracking/requests//reject", "")

	// Act
	err := handler.RejectRequest(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRevokeTracking_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTrackingUC := mocks.NewMockTrackingUC(ctrl)
	mockPublisherUC := mocks.NewMockPublisherUC(ctrl)
	handler := NewTrackingHandler(mockTrackingUC, mockPublisherUC)

	trackID := uuid.NewString()
	c, rec, callerID := newTrackingContext(t, http.MethodDelete, "/tracking/trackers/"+trackID, "")
	c.SetParamNames("trackID")
	c.SetParamValues(trackID)

	mockTrackingUC.EXPECT().
		RevokeTracking(gomock.Any(), callerID.String(), trackID).
		Return(nil)

	// Act
	err := handler.RevokeTracking(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Tracking revoked", response["message"])
}

func TestListIncomingRequests_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTrackingUC := mocks.NewMockTrackingUC(ctrl)
	mockPublisherUC := mocks.NewMockPublisherUC(ctrl)
	handler := NewTrackingHandler(mockTrackingUC, mockPublisherUC)

	c, rec, callerID := newTrackingContext(t, http.MethodGet, "/tracking/requests/incoming", "")

	mockTrackingUC.EXPECT().
		ListIncomingRequests(gomock.Any(), callerID.String()).
		Return([]*models.TrackRequest{
			{ID: uuid.NewString(), ToUserID: callerID.String(), Status: models.TrackRequestStatusPending},
		}, nil)

	// Act
	err := handler.ListIncomingRequests(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	data, ok := response["data"].([]interface{})
	assert.True(t, ok)
	assert.Len(t, data, 1)
}

func TestPublishLocation_Accepted(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTrackingUC := mocks.NewMockTrackingUC(ctrl)
	mockPublisherUC := mocks.NewMockPublisherUC(ctrl)
	handler := NewTrackingHandler(mockTrackingUC, mockPublisherUC)

	c, rec, callerID := newTrackingContext(t, http.MethodPost, "/tracking/location", `{"latitude":-6.9147,"longitude":107.6098}`)

	mockPublisherUC.EXPECT().
		PublishLocation(gomock.Any(), callerID.String(), gomock.Any()).
		DoAndReturn(func(_ interface{}, _ string, req *models.PublishLocationRequest) error {
			assert.Equal(t, -6.9147, req.Latitude)
			assert.Equal(t, 107.6098, req.Longitude)
			return nil
		})

	// Act
	err := handler.PublishLocation(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "Location accepted", response["message"])
}

func TestGetTrackedLocation_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTrackingUC := mocks.NewMockTrackingUC(ctrl)
	mockPublisherUC := mocks.NewMockPublisherUC(ctrl)
	handler := NewTrackingHandler(mockTrackingUC, mockPublisherUC)

	trackedID := uuid.NewString()
	c, rec, callerID := newTrackingContext(t, http.MethodGet, "/tracking/location/"+trackedID, "")
	c.SetParamNames("userID")
	c.SetParamValues(trackedID)

	mockPublisherUC.EXPECT().
		GetTrackedLocation(gomock.Any(), callerID.String(), trackedID).
		Return(&models.TrackedLocation{
			UserID:    trackedID,
			Latitude:  -6.9147,
			Longitude: 107.6098,
			Timestamp: time.Now(),
			IsOnline:  true,
		}, nil)

	// Act
	err := handler.GetTrackedLocation(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	data, ok := response["data"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, trackedID, data["user_id"])
	assert.Equal(t, true, data["is_online"])
}

func TestGetTrackedLocation_NotAuthorised(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTrackingUC := mocks.NewMockTrackingUC(ctrl)
	mockPublisherUC := mocks.NewMockPublisherUC(ctrl)
	handler := NewTrackingHandler(mockTrackingUC, mockPublisherUC)

	trackedID := uuid.NewString()
	c, rec, callerID := newTrackingContext(t, http.MethodGet, "/tracking/location/"+trackedID, "")
	c.SetParamNames("userID")
	c.SetParamValues(trackedID)

	mockPublisherUC.EXPECT().
		GetTrackedLocation(gomock.Any(), callerID.String(), trackedID).
		Return(nil, apperrors.PermissionDeniedf("no active track for user %s", trackedID))

	// Act
	err := handler.GetTrackedLocation(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
