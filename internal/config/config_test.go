package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(values map[string]string) func(string) string {
	return func(k string) string { return values[k] }
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(env(map[string]string{
		"JWT_SECRET":   "test-secret",
		"STORE_DRIVER": "memory",
	}))
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, []byte("test-secret"), cfg.JWTSecret)
	assert.Equal(t, 168*time.Hour, cfg.JWTTTL)
	assert.False(t, cfg.RecomputeCostOnEdit)
	assert.False(t, cfg.R2.Enabled())
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.Len(t, cfg.CORSOrigins, 2)
}

func TestFromEnvRequiresSecret(t *testing.T) {
	_, err := FromEnv(env(map[string]string{"STORE_DRIVER": "memory"}))
	require.EqualError(t, err, "JWT_SECRET is not set")
}

func TestFromEnvPostgresNeedsURL(t *testing.T) {
	_, err := FromEnv(env(map[string]string{"JWT_SECRET": "s"}))
	require.EqualError(t, err, "DATABASE_URL is not set")
}

func TestFromEnvRejectsPartialR2(t *testing.T) {
	_, err := FromEnv(env(map[string]string{
		"JWT_SECRET":   "s",
		"STORE_DRIVER": "memory",
		"R2_ENDPOINT":  "https://example.r2.cloudflarestorage.com",
	}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "R2_BUCKET_NAME")
}

func TestFromEnvOverrides(t *testing.T) {
	cfg, err := FromEnv(env(map[string]string{
		"JWT_SECRET":             "s",
		"STORE_DRIVER":           "memory",
		"JWT_TTL":                "2h",
		"RECOMPUTE_COST_ON_EDIT": "true",
		"CORS_ORIGINS":           "https://admin.example.com",
		"PUBLIC_BASE_URL":        "http://localhost:8000/",
	}))
	require.NoError(t, err)

	assert.Equal(t, 2*time.Hour, cfg.JWTTTL)
	assert.True(t, cfg.RecomputeCostOnEdit)
	assert.Equal(t, []string{"https://admin.example.com"}, cfg.CORSOrigins)
	assert.Equal(t, "http://localhost:8000", cfg.PublicBaseURL)
}
