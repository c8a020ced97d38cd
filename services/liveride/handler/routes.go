package handler

import (
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"

	"github.com/paceline/paceline/internal/pkg/middleware"
	"github.com/paceline/paceline/internal/pkg/models"
	wspkg "github.com/paceline/paceline/internal/pkg/websocket"
	"github.com/paceline/paceline/services/liveride"
	httpHandler "github.com/paceline/paceline/services/liveride/handler/http"
	wsHandler "github.com/paceline/paceline/services/liveride/handler/websocket"
)

// Handler combines all handlers for the liveride service
type Handler struct {
	liveRideHTTP *httpHandler.LiveRideHandler
	visibilityWS *wsHandler.VisibilityHandler
	cfg          *models.Config
	redisClient  *redis.Client
}

// NewHandler creates a new combined handler
func NewHandler(
	liveRideUC liveride.LiveRideUC,
	visibilityUC liveride.VisibilityUC,
	cfg *models.Config,
	redisClient *redis.Client,
) *Handler {
	return &Handler{
		liveRideHTTP: httpHandler.NewLiveRideHandler(liveRideUC),
		visibilityWS: wsHandler.NewVisibilityHandler(wspkg.NewManager(cfg.JWT), visibilityUC),
		cfg:          cfg,
		redisClient:  redisClient,
	}
}

// RegisterRoutes registers all HTTP and WebSocket routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	rides := e.Group("/liverides", middleware.JWTAuthMiddleware(h.cfg.JWT))

	rides.POST("", h.liveRideHTTP.StartRide)
	rides.GET("/active", h.liveRideHTTP.GetActiveSession)
	rides.GET("/mine", h.liveRideHTTP.ListMySessions)
	rides.GET("/:sessionID", h.liveRideHTTP.GetSession)
	rides.POST("/:sessionID/position", h.liveRideHTTP.UpdatePosition,
		middleware.UserRateLimiter(120, time.Minute, h.redisClient))
	rides.POST("/:sessionID/pause", h.liveRideHTTP.PauseRide)
	rides.POST("/:sessionID/resume", h.liveRideHTTP.ResumeRide)
	rides.POST("/:sessionID/end", h.liveRideHTTP.EndRide)
	rides.PUT("/:sessionID/viewers", h.liveRideHTTP.SetViewers)
	rides.PUT("/:sessionID/public", h.liveRideHTTP.SetPublic)

	// The stream does its own token handshake during the upgrade
	e.GET("/ws/visible-sessions", h.visibilityWS.StreamVisibleSessions)
}
