package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	NewRelic NewRelicConfig
	Logger   LoggerConfig
	Services ServicesConfig
	LiveRide LiveRideConfig
	Tracking TrackingConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// NewRelicConfig contains New Relic APM configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// ServicesConfig contains URLs for collaborator services
type ServicesConfig struct {
	SocialServiceURL  string // follow graph and block relationships
	ProfileServiceURL string // privacy preferences
}

// LiveRideConfig contains liveride service specific configuration
type LiveRideConfig struct {
	// GeohashPrecision is the number of geohash characters derived from
	// the current position. 6 gives ~1.2 km cells.
	GeohashPrecision uint
	// UpdateIntervalSeconds is the minimum gap between accepted position
	// updates for one session.
	UpdateIntervalSeconds int
}

// TrackingConfig contains tracking service specific configuration
type TrackingConfig struct {
	// PublishIntervalSeconds is the minimum gap between accepted
	// tracked-location publishes for one user.
	PublishIntervalSeconds int
	// FreshnessWindowMinutes bounds how old a tracked location may be and
	// still count as online.
	FreshnessWindowMinutes int
}
