package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/paceline/paceline/internal/pkg/config"
	"github.com/paceline/paceline/internal/pkg/database"
	"github.com/paceline/paceline/internal/pkg/health"
	httpclient "github.com/paceline/paceline/internal/pkg/http"
	"github.com/paceline/paceline/internal/pkg/logger"
	"github.com/paceline/paceline/internal/pkg/middleware"
	"github.com/paceline/paceline/internal/pkg/nats"
	nrpkg "github.com/paceline/paceline/internal/pkg/newrelic"
	"github.com/paceline/paceline/internal/pkg/retry"
	"github.com/paceline/paceline/internal/pkg/server"
	redisstore "github.com/paceline/paceline/internal/pkg/store/redis"
	"github.com/paceline/paceline/services/tracking/gateway"
	"github.com/paceline/paceline/services/tracking/handler"
	"github.com/paceline/paceline/services/tracking/repository"
	"github.com/paceline/paceline/services/tracking/usecase"
)

func main() {
	appName := "tracking-service"
	configPath := "config/tracking.env"
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NATS client
	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// Initialize repositories
	docStore := redisstore.New(redisClient.GetClient())
	trackingRepo := repository.NewTrackingRepo(docStore)
	locationRepo := repository.NewLocationRepo(redisClient)

	// Initialize gateways
	retrier := retry.NewWithDefaults(zapLogger)
	trackingGW := gateway.NewTrackingGW(natsClient, retrier)
	socialGW := gateway.NewSocialGW(httpclient.NewClient(configs.Services.SocialServiceURL, 10*time.Second))
	profileGW := gateway.NewProfileGW(httpclient.NewClient(configs.Services.ProfileServiceURL, 10*time.Second))

	// Initialize use cases
	trackingUC := usecase.NewTrackingUC(configs, trackingRepo, trackingGW, socialGW, profileGW)
	publisherUC := usecase.NewPublisherUC(configs, trackingRepo, locationRepo)

	// Initialize handlers
	trackingHandler := handler.NewHandler(trackingUC, publisherUC, configs, redisClient.GetClient())

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(nrpkg.Middleware(nrApp))

	health.RegisterHealthEndpoints(e, appName)
	trackingHandler.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server terminated", logger.Err(err))
	}
}
