package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "resumatch", cfg.Database.DBName)
	assert.Equal(t, "job_listings", cfg.Qdrant.Collection)
	assert.Equal(t, 3, cfg.Gemini.MaxRetries)
	assert.Equal(t, int64(10485760), cfg.Storage.MaxFileSize)
	assert.Equal(t, 10, cfg.Matcher.TopJobs)
	assert.Equal(t, 0.6, cfg.Matcher.VectorWeight)
	assert.Equal(t, 3, cfg.Ingest.Concurrency)
	assert.Equal(t, "http://localhost:8000", cfg.Client.BaseURL)
	assert.Equal(t, 120*time.Second, cfg.Client.Timeout)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("DB_NAME", "resumatch_test")
	t.Setenv("MATCHER_VECTOR_WEIGHT", "0.8")
	t.Setenv("RESUMATCH_TIMEOUT", "30s")

	cfg := Load()

	assert.Equal(t, "9999", cfg.Server.Port)
	assert.Equal(t, "resumatch_test", cfg.Database.DBName)
	assert.Equal(t, 0.8, cfg.Matcher.VectorWeight)
	assert.Equal(t, 30*time.Second, cfg.Client.Timeout)
}

func TestLoad_InvalidValuesFallBackToDefaults(t *testing.T) {
	t.Setenv("GEMINI_MAX_RETRIES", "not-a-number")
	t.Setenv("RESUMATCH_TIMEOUT", "soon")

	cfg := Load()

	assert.Equal(t, 3, cfg.Gemini.MaxRetries)
	assert.Equal(t, 120*time.Second, cfg.Client.Timeout)
}

func TestGetDatabaseDSN(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Host:     "db.internal",
		Port:     "5433",
		User:     "app",
		Password: "secret",
		DBName:   "resumatch",
	}}

	assert.Equal(t,
		"host=db.internal port=5433 user=app password=secret dbname=resumatch sslmode=disable",
		cfg.GetDatabaseDSN(),
	)
}
