package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "starfall.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestGetEnv(t *testing.T) {
	t.Setenv("STARFALL_TEST_KEY", "set")
	assert.Equal(t, "set", GetEnv("STARFALL_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("STARFALL_TEST_MISSING", "fallback"))
}

func TestLoadFileOverDefaults(t *testing.T) {
	path := writeFile(t, `
ship = "titan"
constrained = true

[ssh]
port = "2323"
`)
	s, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "titan", s.Ship)
	assert.True(t, s.Constrained)
	assert.Equal(t, "2323", s.SSH.Port)
	assert.Equal(t, Defaults().SSH.Host, s.SSH.Host)
	assert.Equal(t, Defaults().Web, s.Web)
}

func TestLoadFileRejectsUnknownKeys(t *testing.T) {
	path := writeFile(t, `shipp = "titan"`)
	_, err := LoadFile(path)
	assert.ErrorIs(t, err, ErrInvalidSettings)
}

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Defaults(), s)
}

func TestLoadExplicitMissingFile(t *testing.T) {
	t.Setenv(EnvConfigPath, filepath.Join(t.TempDir(), "nope.toml"))
	_, err := Load()
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvConfigPath, writeFile(t, `ship = "titan"`))
	t.Setenv(EnvShip, "hive")
	t.Setenv(EnvConstrained, "true")
	t.Setenv(EnvSeed, "42")
	t.Setenv(EnvAudio, "false")
	t.Setenv(EnvLogLevel, "debug")

	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "hive", s.Ship)
	assert.True(t, s.Constrained)
	assert.Equal(t, int64(42), s.Seed)
	assert.False(t, s.Audio)
	assert.Equal(t, log.DebugLevel, s.Level())
}

func TestInvalidSettings(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"unknown ship", EnvShip, "zeppelin"},
		{"bad bool", EnvConstrained, "maybe"},
		{"bad seed", EnvSeed, "abc"},
		{"bad level", EnvLogLevel, "loud"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			t.Setenv(tt.key, tt.val)
			_, err := Load()
			assert.ErrorIs(t, err, ErrInvalidSettings)
		})
	}
}
