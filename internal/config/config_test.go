package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("Success_Defaults", func(t *testing.T) {
		cfg := Load()

		assert.Equal(t, "0.0.0.0", cfg.ServerHost)
		assert.Equal(t, 8080, cfg.ServerPort)
		assert.Equal(t, "vidshare", cfg.MongoDatabase)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, 2*time.Hour, cfg.JWTExpiration)
		assert.Equal(t, defaultBcryptCost, cfg.BcryptCost)
		assert.Equal(t, 20*time.Minute, cfg.UploadURLWindow)
		assert.Equal(t, 60*time.Minute, cfg.PlaybackURLWindow)
		assert.False(t, cfg.AutoProvisionUsers)
		assert.False(t, cfg.DevHeadersEnabled)
		assert.True(t, cfg.RateLimitAuthEnabled)
	})

	t.Run("Success_Overrides", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "9090")
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("AUTH_DEV_HEADERS_ENABLED", "true")
		t.Setenv("BLOB_BUCKET_URL", "file:///tmp/videos")
		t.Setenv("UPLOAD_URL_WINDOW_MINUTES", "5")

		cfg := Load()

		assert.Equal(t, 9090, cfg.ServerPort)
		assert.Equal(t, "test-secret", cfg.JWTSecret)
		assert.True(t, cfg.DevHeadersEnabled)
		assert.Equal(t, "file:///tmp/videos", cfg.BlobBucketURL)
		assert.Equal(t, 5*time.Minute, cfg.UploadURLWindow)
	})

	t.Run("Success_BcryptCostClamped", func(t *testing.T) {
		t.Setenv("BCRYPT_COST", "4")
		assert.Equal(t, defaultBcryptCost, Load().BcryptCost)

		t.Setenv("BCRYPT_COST", "31")
		assert.Equal(t, defaultBcryptCost, Load().BcryptCost)

		t.Setenv("BCRYPT_COST", "12")
		assert.Equal(t, 12, Load().BcryptCost)
	})
}

func TestConfig_GetGinMode(t *testing.T) {
	assert.Equal(t, "debug", (&Config{LogLevel: "debug"}).GetGinMode())
	assert.Equal(t, "release", (&Config{LogLevel: "info"}).GetGinMode())
	assert.Equal(t, "release", (&Config{LogLevel: "warn"}).GetGinMode())
	assert.Equal(t, "release", (&Config{LogLevel: "unknown"}).GetGinMode())
}
