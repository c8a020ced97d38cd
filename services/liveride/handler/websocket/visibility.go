package websocket

import (
	"context"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/paceline/paceline/internal/pkg/constants"
	"github.com/paceline/paceline/internal/pkg/logger"
	"github.com/paceline/paceline/internal/pkg/models"
	wspkg "github.com/paceline/paceline/internal/pkg/websocket"
	"github.com/paceline/paceline/services/liveride"
)

// VisibilityHandler streams the merged visible-session feed over WebSocket
type VisibilityHandler struct {
	manager      *wspkg.Manager
	visibilityUC liveride.VisibilityUC
}

// NewVisibilityHandler creates a new visibility stream handler
func NewVisibilityHandler(manager *wspkg.Manager, visibilityUC liveride.VisibilityUC) *VisibilityHandler {
	return &VisibilityHandler{
		manager:      manager,
		visibilityUC: visibilityUC,
	}
}

// StreamVisibleSessions upgrades the connection and pushes every
// recomputed visible set to the viewer until the socket closes
func (h *VisibilityHandler) StreamVisibleSessions(c echo.Context) error {
	return h.manager.HandleConnection(c, h.streamToClient)
}

func (h *VisibilityHandler) streamToClient(client *models.WebSocketClient, ws *websocket.Conn) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates, stop, err := h.visibilityUC.StreamVisibleSessions(ctx, client.UserID)
	if err != nil {
		logger.Error("Failed to open visibility stream",
			logger.String("viewer_id", client.UserID),
			logger.Err(err))
		wspkg.SendError(ws, constants.ErrorStreamFailure, "Failed to open stream")
		return err
	}
	defer stop()

	// Drain reads so we notice the client going away. The feed is
	// push-only; inbound payloads are ignored.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case sessions, ok := <-updates:
			if !ok {
				return nil
			}
			if err := wspkg.SendEvent(ws, constants.EventVisibleSessions, sessions); err != nil {
				logger.Debug("Failed to push visible sessions",
					logger.String("viewer_id", client.UserID),
					logger.Err(err))
				return err
			}
		case <-done:
			return nil
		}
	}
}
