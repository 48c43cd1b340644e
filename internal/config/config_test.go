package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "portfolio.db", cfg.DBPath)
	assert.Equal(t, "admin", cfg.AdminUsername)
	assert.Equal(t, 100*time.Millisecond, cfg.RevealStagger)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("REVEAL_STAGGER", "250ms")
	t.Setenv("ADMIN_USERNAME", "marek")

	cfg := Load()

	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, 250*time.Millisecond, cfg.RevealStagger)
	assert.Equal(t, "marek", cfg.AdminUsername)
}

func TestLoadIgnoresInvalidDuration(t *testing.T) {
	t.Setenv("REVEAL_STAGGER", "not-a-duration")

	cfg := Load()
	assert.Equal(t, 100*time.Millisecond, cfg.RevealStagger)
}
