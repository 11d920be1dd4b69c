package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "cameras.db", cfg.Database.Path)
	assert.NotEmpty(t, cfg.JWT.Secret)
	assert.Equal(t, "24h", cfg.JWT.Expiry)
	assert.Equal(t, "Telelenker", cfg.Company.Name)

	// Sweep disabled by default: online status stays sticky
	assert.Zero(t, cfg.Presence.OfflineAfter)
	assert.Equal(t, 10*time.Second, cfg.Presence.SweepInterval)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_PATH", "/tmp/test-cameras.db")
	t.Setenv("OFFLINE_AFTER", "90s")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "/tmp/test-cameras.db", cfg.Database.Path)
	assert.Equal(t, 90*time.Second, cfg.Presence.OfflineAfter)
}

func TestOfflineAfterAcceptsPlainSeconds(t *testing.T) {
	t.Setenv("OFFLINE_AFTER", "45")

	cfg := Load()
	assert.Equal(t, 45*time.Second, cfg.Presence.OfflineAfter)
}

func TestIsSupportedLocale(t *testing.T) {
	for _, lang := range SupportedLocales {
		assert.True(t, IsSupportedLocale(lang), lang)
	}
	assert.False(t, IsSupportedLocale("xx"))
	assert.False(t, IsSupportedLocale(""))
	assert.False(t, IsSupportedLocale("EN"))
}
