package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 8800, cfg.Server.Port)
	require.Equal(t, "taskhub.db", cfg.Database.Path)
	require.Equal(t, 24, cfg.Auth.TokenTTLHours)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("TASKHUB_SERVER_PORT", "9900")
	t.Setenv("TASKHUB_DATABASE_PATH", "/tmp/override.db")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 9900, cfg.Server.Port)
	require.Equal(t, "/tmp/override.db", cfg.Database.Path)
}
