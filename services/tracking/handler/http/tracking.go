package http

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/paceline/paceline/internal/pkg/logger"
	"github.com/paceline/paceline/internal/pkg/middleware"
	"github.com/paceline/paceline/internal/pkg/models"
	nrpkg "github.com/paceline/paceline/internal/pkg/newrelic"
	"github.com/paceline/paceline/internal/utils"
	"github.com/paceline/paceline/services/tracking"
)

// TrackingHandler handles HTTP requests for tracking operations
type TrackingHandler struct {
	trackingUC  tracking.TrackingUC
	publisherUC tracking.PublisherUC
}

// NewTrackingHandler creates a new tracking HTTP handler
func NewTrackingHandler(trackingUC tracking.TrackingUC, publisherUC tracking.PublisherUC) *TrackingHandler {
	return &TrackingHandler{
		trackingUC:  trackingUC,
		publisherUC: publisherUC,
	}
}

// SendRequest handles a new track request
func (h *TrackingHandler) SendRequest(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Tracking.SendRequest")

	callerID := middleware.UserIDFromContext(c)

	var req models.SendTrackRequestPayload
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	request, err := h.trackingUC.SendRequest(c.Request().Context(), callerID, req.ToUserID)
	if err != nil {
		logger.Warn("Failed to send track request",
			logger.String("from_user_id", callerID),
			logger.String("to_user_id", req.ToUserID),
			logger.Err(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Track request sent", request)
}

// ApproveRequest handles the approval of a pending request
func (h *TrackingHandler) ApproveRequest(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Tracking.ApproveRequest")

	callerID := middleware.UserIDFromContext(c)
	requestID := c.Param("requestID")
	if requestID == "" {
		return utils.BadRequestResponse(c, "Request ID is required")
	}

	track, err := h.trackingUC.ApproveRequest(c.Request().Context(), callerID, requestID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Track request approved", track)
}

// RejectRequest handles the rejection of a pending request
func (h *TrackingHandler) RejectRequest(c echo.Context) error {
	return h.requestAction(c, "Tracking.RejectRequest", "Track request rejected", h.trackingUC.RejectRequest)
}

// CancelRequest handles the withdrawal of the caller's own request
func (h *TrackingHandler) CancelRequest(c echo.Context) error {
	return h.requestAction(c, "Tracking.CancelRequest", "Track request cancelled", h.trackingUC.CancelRequest)
}

// RevokeTracking handles the tracked party withdrawing a tracker's access
func (h *TrackingHandler) RevokeTracking(c echo.Context) error {
	return h.trackAction(c, "Tracking.RevokeTracking", "Tracking revoked", h.trackingUC.RevokeTracking)
}

// RemoveTracker handles the tracker ending the relationship
func (h *TrackingHandler) RemoveTracker(c echo.Context) error {
	return h.trackAction(c, "Tracking.RemoveTracker", "Tracking removed", h.trackingUC.RemoveTracker)
}

// ListIncomingRequests returns the caller's pending incoming requests
func (h *TrackingHandler) ListIncomingRequests(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Tracking.ListIncomingRequests")

	callerID := middleware.UserIDFromContext(c)
	requests, err := h.trackingUC.ListIncomingRequests(c.Request().Context(), callerID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Incoming requests retrieved", requests)
}

// ListOutgoingRequests returns the caller's pending outgoing requests
func (h *TrackingHandler) ListOutgoingRequests(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Tracking.ListOutgoingRequests")

	callerID := middleware.UserIDFromContext(c)
	requests, err := h.trackingUC.ListOutgoingRequests(c.Request().Context(), callerID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Outgoing requests retrieved", requests)
}

// ListTrackers returns who tracks the caller
func (h *TrackingHandler) ListTrackers(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Tracking.ListTrackers")

	callerID := middleware.UserIDFromContext(c)
	tracks, err := h.trackingUC.ListTrackers(c.Request().Context(), callerID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trackers retrieved", tracks)
}

// ListTracked returns who the caller tracks
func (h *TrackingHandler) ListTracked(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Tracking.ListTracked")

	callerID := middleware.UserIDFromContext(c)
	tracks, err := h.trackingUC.ListTracked(c.Request().Context(), callerID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Tracked riders retrieved", tracks)
}

// PublishLocation handles a tracked-location publish from the caller's
// device
func (h *TrackingHandler) PublishLocation(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Tracking.PublishLocation")

	callerID := middleware.UserIDFromContext(c)

	var req models.PublishLocationRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if err := h.publisherUC.PublishLocation(c.Request().Context(), callerID, &req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusAccepted, "Location accepted", nil)
}

// GetTrackedLocation returns a tracked rider's last-known position
func (h *TrackingHandler) GetTrackedLocation(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Tracking.GetTrackedLocation")

	callerID := middleware.UserIDFromContext(c)
	trackedID := c.Param("userID")
	if trackedID == "" {
		return utils.BadRequestResponse(c, "User ID is required")
	}

	location, err := h.publisherUC.GetTrackedLocation(c.Request().Context(), callerID, trackedID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location retrieved", location)
}

func (h *TrackingHandler) requestAction(c echo.Context, txnName, message string, op func(ctx context.Context, callerID, requestID string) error) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, txnName)

	callerID := middleware.UserIDFromContext(c)
	requestID := c.Param("requestID")
	if requestID == "" {
		return utils.BadRequestResponse(c, "Request ID is required")
	}

	if err := op(c.Request().Context(), callerID, requestID); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, message, nil)
}

func (h *TrackingHandler) trackAction(c echo.Context, txnName, message string, op func(ctx context.Context, callerID, trackID string) error) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, txnName)

	callerID := middleware.UserIDFromContext(c)
	trackID := c.Param("trackID")
	if trackID == "" {
		return utils.BadRequestResponse(c, "Track ID is required")
	}

	if err := op(c.Request().Context(), callerID, trackID); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, message, nil)
}
