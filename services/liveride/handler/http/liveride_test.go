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
	"github.com/paceline/paceline/services/liveride/mocks"
)

func newRideContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder, uuid.UUID) {
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

	riderID := uuid.New()
	c.Set("user_id", riderID)
	return c, rec, riderID
}

func TestStartRide_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLiveRideUC(ctrl)
	handler := NewLiveRideHandler(mockUC)

	requestBody := `{
		"rider_name": "Dewi",
		"latitude": -6.2088,
		"longitude": 106.8456,
		"is_public": true
	}`
	c, rec, riderID := newRideContext(t, http.MethodPost, "/rides", requestBody)

	mockUC.EXPECT().
		StartRide(gomock.Any(), riderID.String(), gomock.Any()).
		DoAndReturn(func(_ interface{}, rid string, req *models.StartRideRequest) (*models.LiveRideSession, error) {
			assert.Equal(t, "Dewi", req.RiderName)
			assert.Equal(t, -6.2088, req.Latitude)
			assert.True(t, req.IsPublic)
			return &models.LiveRideSession{
				ID:        uuid.NewString(),
				RiderID:   rid,
				RiderName: req.RiderName,
				Status:    models.RideStatusActive,
				StartedAt: time.Now(),
				IsPublic:  true,
			}, nil
		})

	// Act
	err := handler.StartRide(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "Live ride started", response["message"])

	data, ok := response["data"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, riderID.String(), data["rider_id"])
	assert.Equal(t, string(models.RideStatusActive), data["status"])
}

func TestStartRide_AlreadyActive(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLiveRideUC(ctrl)
	handler := NewLiveRideHandler(mockUC)

	c, rec, riderID := newRideContext(t, http.MethodPost, "/rides", `{"rider_name":"Dewi","latitude":-6.2,"longitude":106.8}`)

	mockUC.EXPECT().
		StartRide(gomock.Any(), riderID.String(), gomock.Any()).
		Return(nil, apperrors.ErrAlreadyActive)

	// Act
	err := handler.StartRide(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, false, response["success"])
	assert.Contains(t, response["error"], "active session")
}

func TestStartRide_InvalidPayload(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLiveRideUC(ctrl)
	handler := NewLiveRideHandler(mockUC)

	c, rec, _ := newRideContext(t, http.MethodPost, "/rides", `{not json`)

	// Act
	err := handler.StartRide(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, false, response["success"])
	assert.Contains(t, response["error"], "Invalid request body")
}

func TestUpdatePosition_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLiveRideUC(ctrl)
	handler := NewLiveRideHandler(mockUC)

	sessionID := uuid.NewString()
	c, rec, riderID := newRideContext(t, http.MethodPost, "/rides/"+sessionID+"/position", `{"latitude":-6.21,"longitude":106.85}`)
	c.SetParamNames("sessionID")
	c.SetParamValues(sessionID)

	mockUC.EXPECT().
		UpdatePosition(gomock.Any(), riderID.String(), sessionID, gomock.Any()).
		DoAndReturn(func(_ interface{}, rid, sid string, req *models.UpdatePositionRequest) (*models.LiveRideSession, error) {
			assert.Equal(t, -6.21, req.Latitude)
			assert.Equal(t, 106.85, req.Longitude)
			return &models.LiveRideSession{
				ID:      sid,
				RiderID: rid,
				Status:  models.RideStatusActive,
			}, nil
		})

	// Act
	err := handler.UpdatePosition(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "Position recorded", response["message"])
}

func TestUpdatePosition_MissingSessionID(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLiveRideUC(ctrl)
	handler := NewLiveRideHandler(mockUC)

	c, rec, _ := newRideContext(t, http.MethodPost, "/rides//position", `{"latitude":-6.21,"longitude":106.85}`)

	// Act
	err := handler.UpdatePosition(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEndRide_SealedSessionConflict(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLiveRideUC(ctrl)
	handler := NewLiveRideHandler(mockUC)

	sessionID := uuid.NewString()
	c, rec, riderID := newRideContext(t, http.MethodPost, "/rides/"+sessionID+"/end", "")
	c.SetParamNames("sessionID")
	c.SetParamValues(sessionID)

	mockUC.EXPECT().
		EndRide(gomock.Any(), riderID.String(), sessionID).
		Return(nil, apperrors.InvalidStatef("session %s is completed", sessionID))

	// Act
	err := handler.EndRide(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, false, response["success"])
}

func TestGetSession_PermissionDenied(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLiveRideUC(ctrl)
	handler := NewLiveRideHandler(mockUC)

	sessionID := uuid.NewString()
	c, rec, callerID := newRideContext(t, http.MethodGet, "/rides/"+sessionID, "")
	c.SetParamNames("sessionID")
	c.SetParamValues(sessionID)

	mockUC.EXPECT().
		GetSession(gomock.Any(), callerID.String(), sessionID).
		Return(nil, apperrors.PermissionDeniedf("caller may not view session %s", sessionID))

	// Act
	err := handler.GetSession(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestSetViewers_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLiveRideUC(ctrl)
	handler := NewLiveRideHandler(mockUC)

	sessionID := uuid.NewString()
	viewerA := uuid.NewString()
	viewerB := uuid.NewString()
	body := `{"viewer_ids":["` + viewerA + `","` + viewerB + `"]}`
	c, rec, riderID := newRideContext(t, http.MethodPut, "/rides/"+sessionID+"/viewers", body)
	c.SetParamNames("sessionID")
	c.SetParamValues(sessionID)

	mockUC.EXPECT().
		SetViewers(gomock.Any(), riderID.String(), sessionID, []string{viewerA, viewerB}).
		Return(&models.LiveRideSession{ID: sessionID, AllowedViewerIDs: []string{viewerA, viewerB}}, nil)

	// Act
	err := handler.SetViewers(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Viewer list updated", response["message"])
}
