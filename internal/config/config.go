// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"
)

// Bcrypt cost bounds. Values outside this range are clamped to keep the
// per-login CPU cost predictable while still resisting brute force.
const (
	minBcryptCost     = 8
	maxBcryptCost     = 14
	defaultBcryptCost = 10
)

// Config holds all application configuration.
type Config struct {
	// ServerHost is the host address the server will bind to.
	ServerHost string
	// ServerPort is the port number the server will listen on.
	ServerPort int

	// MongoURI is the connection string for the document store.
	MongoURI string
	// MongoDatabase is the database name holding users, videos, comments and ratings.
	MongoDatabase string

	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// JWTSecret signs identity tokens. Required; there is no default and the
	// token service refuses to start without it.
	JWTSecret string
	// JWTExpiration is the duration after which an identity token expires.
	JWTExpiration time.Duration
	// JWTIssuer is an optional issuer claim. When set it is embedded on issue
	// and enforced on verify.
	JWTIssuer string
	// JWTAudience is an optional audience claim, handled like JWTIssuer.
	JWTAudience string

	// BcryptCost is the cost factor for the current password hashing scheme.
	BcryptCost int

	// AutoProvisionUsers controls whether a minimal consumer record is created
	// when an authenticated principal has no user record.
	AutoProvisionUsers bool
	// DevHeadersEnabled enables the X-User-Email/X-User-Role resolution path.
	// Local/testing only; must stay off in production deployments.
	DevHeadersEnabled bool
	// AdminAPIKey guards the privileged role-assignment endpoint. Empty
	// disables that endpoint entirely.
	AdminAPIKey string

	// BlobBucketURL is the gocloud.dev bucket URL for video objects
	// (e.g., "azblob://videos" or "file:///var/lib/vidshare/videos").
	BlobBucketURL string
	// UploadURLWindow is the validity window for write-scoped capability URLs.
	UploadURLWindow time.Duration
	// PlaybackURLWindow is the validity window for read-scoped capability URLs.
	PlaybackURLWindow time.Duration

	// RateLimitAuthEnabled indicates whether per-IP rate limiting for the
	// unauthenticated auth endpoints is enabled.
	RateLimitAuthEnabled bool
	// RateLimitAuthRequestsPerSec is the allowed request rate per IP.
	RateLimitAuthRequestsPerSec float64
	// RateLimitAuthBurst is the burst size per IP.
	RateLimitAuthBurst int

	// CORSEnabled indicates whether CORS is enabled.
	CORSEnabled bool
	// CORSAllowOrigins is a comma-separated list of allowed origins for CORS.
	CORSAllowOrigins string

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
	// MetricsPort is the port number for the metrics server.
	MetricsPort int
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Server configuration
		ServerHost: env.GetString("SERVER_HOST", "0.0.0.0"),
		ServerPort: env.GetInt("SERVER_PORT", 8080),

		// Document store configuration
		MongoURI:      env.GetString("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase: env.GetString("MONGODB_DATABASE", "vidshare"),

		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Identity tokens
		JWTSecret:     env.GetString("JWT_SECRET", ""),
		JWTExpiration: env.GetDuration("JWT_EXPIRATION_SECONDS", 7200, time.Second),
		JWTIssuer:     env.GetString("JWT_ISSUER", ""),
		JWTAudience:   env.GetString("JWT_AUDIENCE", ""),

		// Password hashing
		BcryptCost: clampBcryptCost(env.GetInt("BCRYPT_COST", defaultBcryptCost)),

		// Principal resolution and role authority
		AutoProvisionUsers: env.GetBool("AUTH_AUTOPROVISION_DEFAULT", false),
		DevHeadersEnabled:  env.GetBool("AUTH_DEV_HEADERS_ENABLED", false),
		AdminAPIKey:        env.GetString("ADMIN_API_KEY", ""),

		// Blob storage
		BlobBucketURL:     env.GetString("BLOB_BUCKET_URL", ""),
		UploadURLWindow:   env.GetDuration("UPLOAD_URL_WINDOW_MINUTES", 20, time.Minute),
		PlaybackURLWindow: env.GetDuration("PLAYBACK_URL_WINDOW_MINUTES", 60, time.Minute),

		// Rate limiting for unauthenticated auth endpoints (IP-based)
		RateLimitAuthEnabled:        env.GetBool("RATE_LIMIT_AUTH_ENABLED", true),
		RateLimitAuthRequestsPerSec: env.GetFloat64("RATE_LIMIT_AUTH_REQUESTS_PER_SEC", 5.0),
		RateLimitAuthBurst:          env.GetInt("RATE_LIMIT_AUTH_BURST", 10),

		// CORS
		CORSEnabled:      env.GetBool("CORS_ENABLED", false),
		CORSAllowOrigins: env.GetString("CORS_ALLOW_ORIGINS", ""),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", true),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "vidshare"),
		MetricsPort:      env.GetInt("METRICS_PORT", 8081),
	}
}

// GetGinMode returns the appropriate Gin mode based on log level.
func (c *Config) GetGinMode() string {
	switch c.LogLevel {
	case "debug":
		return "debug"
	case "info", "warn", "error":
		return "release"
	default:
		return "release"
	}
}

// clampBcryptCost keeps the configured cost inside the supported range.
func clampBcryptCost(cost int) int {
	if cost < minBcryptCost || cost > maxBcryptCost {
		return defaultBcryptCost
	}
	return cost
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	// Search for .env file recursively up the directory tree
	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			// .env file found, load it
			_ = godotenv.Load(envPath)
			return
		}

		// Move to parent directory
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root directory
			break
		}
		dir = parent
	}
}
