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
	"github.com/paceline/paceline/services/liveride"
)

// LiveRideHandler handles HTTP requests for live ride operations
type LiveRideHandler struct {
	liveRideUC liveride.LiveRideUC
}

// NewLiveRideHandler creates a new live ride HTTP handler
func NewLiveRideHandler(liveRideUC liveride.LiveRideUC) *LiveRideHandler {
	return &LiveRideHandler{liveRideUC: liveRideUC}
}

// StartRide handles the start ride request
func (h *LiveRideHandler) StartRide(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "LiveRide.StartRide")

	riderID := middleware.UserIDFromContext(c)

	var req models.StartRideRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	session, err := h.liveRideUC.StartRide(c.Request().Context(), riderID, &req)
	if err != nil {
		logger.Warn("Failed to start live ride",
			logger.String("rider_id", riderID),
			logger.Err(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Live ride started", session)
}

// UpdatePosition handles a position update for a session
func (h *LiveRideHandler) UpdatePosition(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "LiveRide.UpdatePosition")

	riderID := middleware.UserIDFromContext(c)
	sessionID := c.Param("sessionID")
	if sessionID == "" {
		return utils.BadRequestResponse(c, "Session ID is required")
	}

	var req models.UpdatePositionRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	session, err := h.liveRideUC.UpdatePosition(c.Request().Context(), riderID, sessionID, &req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Position recorded", session)
}

// PauseRide handles the pause request for a session
func (h *LiveRideHandler) PauseRide(c echo.Context) error {
	return h.transition(c, "LiveRide.PauseRide", "Ride paused", h.liveRideUC.PauseRide)
}

// ResumeRide handles the resume request for a session
func (h *LiveRideHandler) ResumeRide(c echo.Context) error {
	return h.transition(c, "LiveRide.ResumeRide", "Ride resumed", h.liveRideUC.ResumeRide)
}

// EndRide handles the end request for a session
func (h *LiveRideHandler) EndRide(c echo.Context) error {
	return h.transition(c, "LiveRide.EndRide", "Ride ended", h.liveRideUC.EndRide)
}

// SetViewers handles the viewer list replacement
func (h *LiveRideHandler) SetViewers(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "LiveRide.SetViewers")

	riderID := middleware.UserIDFromContext(c)
	sessionID := c.Param("sessionID")
	if sessionID == "" {
		return utils.BadRequestResponse(c, "Session ID is required")
	}

	var req models.SetViewersRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	session, err := h.liveRideUC.SetViewers(c.Request().Context(), riderID, sessionID, req.ViewerIDs)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Viewer list updated", session)
}

// SetPublic handles the public flag toggle
func (h *LiveRideHandler) SetPublic(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "LiveRide.SetPublic")

	riderID := middleware.UserIDFromContext(c)
	sessionID := c.Param("sessionID")
	if sessionID == "" {
		return utils.BadRequestResponse(c, "Session ID is required")
	}

	var req models.SetPublicRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	session, err := h.liveRideUC.SetPublic(c.Request().Context(), riderID, sessionID, req.IsPublic)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Visibility updated", session)
}

// GetSession handles a single session read
func (h *LiveRideHandler) GetSession(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "LiveRide.GetSession")

	callerID := middleware.UserIDFromContext(c)
	sessionID := c.Param("sessionID")
	if sessionID == "" {
		return utils.BadRequestResponse(c, "Session ID is required")
	}

	session, err := h.liveRideUC.GetSession(c.Request().Context(), callerID, sessionID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Session retrieved", session)
}

// GetActiveSession returns the caller's own non-completed session
func (h *LiveRideHandler) GetActiveSession(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "LiveRide.GetActiveSession")

	riderID := middleware.UserIDFromContext(c)

	session, err := h.liveRideUC.GetActiveSession(c.Request().Context(), riderID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Active session retrieved", session)
}

// ListMySessions returns the caller's session history
func (h *LiveRideHandler) ListMySessions(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "LiveRide.ListMySessions")

	riderID := middleware.UserIDFromContext(c)

	sessions, err := h.liveRideUC.ListMySessions(c.Request().Context(), riderID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Sessions retrieved", sessions)
}

func (h *LiveRideHandler) transition(
	c echo.Context,
	txnName, message string,
	op func(ctx context.Context, riderID, sessionID string) (*models.LiveRideSession, error),
) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, txnName)

	riderID := middleware.UserIDFromContext(c)
	sessionID := c.Param("sessionID")
	if sessionID == "" {
		return utils.BadRequestResponse(c, "Session ID is required")
	}

	session, err := op(c.Request().Context(), riderID, sessionID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, message, session)
}
