package handler

import (
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"

	"github.com/paceline/paceline/internal/pkg/middleware"
	"github.com/paceline/paceline/internal/pkg/models"
	"github.com/paceline/paceline/services/tracking"
	httpHandler "github.com/paceline/paceline/services/tracking/handler/http"
)

// Handler combines all handlers for the tracking service
type Handler struct {
	trackingHTTP *httpHandler.TrackingHandler
	cfg          *models.Config
	redisClient  *redis.Client
}

// NewHandler creates a new combined handler
func NewHandler(
	trackingUC tracking.TrackingUC,
	publisherUC tracking.PublisherUC,
	cfg *models.Config,
	redisClient *redis.Client,
) *Handler {
	return &Handler{
		trackingHTTP: httpHandler.NewTrackingHandler(trackingUC, publisherUC),
		cfg:          cfg,
		redisClient:  redisClient,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/tracking", middleware.JWTAuthMiddleware(h.cfg.JWT))

	requests := api.Group("/requests")
	requests.POST("", h.trackingHTTP.SendRequest)
	requests.GET("/incoming", h.trackingHTTP.ListIncomingRequests)
	requests.GET("/outgoing", h.trackingHTTP.ListOutgoingRequests)
	requests.POST("/:requestID/approve", h.trackingHTTP.ApproveRequest)
	requests.POST("/:requestID/reject", h.trackingHTTP.RejectRequest)
	requests.POST("/:requestID/cancel", h.trackingHTTP.CancelRequest)

	tracks := api.Group("/tracks")
	tracks.GET("/trackers", h.trackingHTTP.ListTrackers)
	tracks.GET("/tracked", h.trackingHTTP.ListTracked)
	tracks.POST("/:trackID/revoke", h.trackingHTTP.RevokeTracking)
	tracks.POST("/:trackID/remove", h.trackingHTTP.RemoveTracker)

	api.POST("/location", h.trackingHTTP.PublishLocation,
		middleware.UserRateLimiter(60, time.Minute, h.redisClient))
	api.GET("/location/:userID", h.trackingHTTP.GetTrackedLocation)
}
