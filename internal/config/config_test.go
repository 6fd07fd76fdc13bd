package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	req := require.New(t)

	cfg, err := Load()
	req.NoError(err)
	req.Equal("8080", cfg.Port)
	req.Equal("./data/chirp.db", cfg.DBPath)
	req.Equal("info", cfg.LogLevel)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_PATH", "/tmp/test.db")
	t.Setenv("LOG_LEVEL", "debug")

	req := require.New(t)
	cfg, err := Load()
	req.NoError(err)
	req.Equal("9090", cfg.Port)
	req.Equal("/tmp/test.db", cfg.DBPath)
	req.Equal("debug", cfg.LogLevel)
}
