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
	"github.com/paceline/paceline/services/liveride/gateway"
	"github.com/paceline/paceline/services/liveride/handler"
	"github.com/paceline/paceline/services/liveride/repository"
	"github.com/paceline/paceline/services/liveride/usecase"
)

func main() {
	appName := "liveride-service"
	configPath := "config/liveride.env"
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

	// Initialize document store and repository
	docStore := redisstore.New(redisClient.GetClient())
	sessionRepo := repository.NewSessionRepo(docStore)

	// Initialize gateways
	retrier := retry.NewWithDefaults(zapLogger)
	liveRideGW := gateway.NewLiveRideGW(natsClient, retrier)
	socialGW := gateway.NewSocialGW(httpclient.NewClient(configs.Services.SocialServiceURL, 10*time.Second))

	// Initialize use cases
	liveRideUC := usecase.NewLiveRideUC(configs, sessionRepo, liveRideGW, socialGW)
	visibilityUC := usecase.NewVisibilityUC(sessionRepo, socialGW)

	// Initialize handlers
	liveRideHandler := handler.NewHandler(liveRideUC, visibilityUC, configs, redisClient.GetClient())

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(nrpkg.Middleware(nrApp))

	health.RegisterHealthEndpoints(e, appName)
	liveRideHandler.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server terminated", logger.Err(err))
	}
}
