package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadFiles()
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, "http", cfg.Production.Transport)
	assert.Equal(t, 10*time.Second, cfg.Production.Timeout)
	assert.Equal(t, "0 * * * *", cfg.Scheduler.Spec)
	assert.Equal(t, time.UTC, cfg.Scheduler.Location())
	assert.False(t, cfg.Psql.InMemory())
	assert.Equal(t, 8, cfg.Production.Concurrency)
	assert.Zero(t, cfg.Callback.Concurrency, "callbacks are unbounded by default")
}

func TestLoadCallbackConcurrency(t *testing.T) {
	t.Setenv("CALLBACK_CONCURRENCY", "4")

	cfg, err := LoadFiles()
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Callback.Concurrency)
	assert.Equal(t, 8, cfg.Production.Concurrency)
}

func TestLoadOfferMappings(t *testing.T) {
	t.Setenv("OFFER_MAPPINGS", "recA:1,recB:2")
	t.Setenv("PRODUCTION_TRANSPORT", "amqp")
	t.Setenv("SCHEDULER_TIMEZONE", "Europe/Berlin")

	cfg, err := LoadFiles()
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"recA": 1, "recB": 2}, cfg.OfferMappings)
	assert.Equal(t, "amqp", cfg.Production.Transport)
	assert.Equal(t, "Europe/Berlin", cfg.Scheduler.Location().String())
}

func TestLoadRejectsUnknownTransport(t *testing.T) {
	t.Setenv("PRODUCTION_TRANSPORT", "carrier-pigeon")
	_, err := LoadFiles()
	assert.Error(t, err)
}

func TestLoadDotenvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("CALLBACK_URL=http://cb.internal\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("CALLBACK_URL") })

	cfg, err := LoadFiles(path, filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "http://cb.internal", cfg.Callback.URL)
}
