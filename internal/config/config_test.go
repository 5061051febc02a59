package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diegok/termpong/internal/game"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestParseArgs_Defaults(t *testing.T) {
	cfg, err := ParseArgs(nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultBestOf, cfg.BestOf)
	assert.True(t, cfg.SoundEnabled)
	assert.Equal(t, "", cfg.SoundFile)
	assert.Equal(t, "", cfg.LogFile)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
}

func TestParseArgs_CustomOptions(t *testing.T) {
	args := []string{"--best-of", "7", "--sound", "score.wav", "--log-file", "pong.log", "--log-level", "debug"}
	cfg, err := ParseArgs(args)
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.BestOf)
	assert.Equal(t, "score.wav", cfg.SoundFile)
	assert.Equal(t, "pong.log", cfg.LogFile)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParseArgs_Mute(t *testing.T) {
	cfg, err := ParseArgs([]string{"--mute"})
	require.NoError(t, err)

	assert.False(t, cfg.SoundEnabled)
}

func TestParseArgs_InvalidBestOf(t *testing.T) {
	for _, v := range []string{"0", "4", "10", "-3"} {
		t.Run(v, func(t *testing.T) {
			_, err := ParseArgs([]string{"--best-of", v})
			require.Error(t, err)
			assert.True(t, errors.Is(err, game.ErrInvalidBestOf))
		})
	}
}

func TestParseArgs_InvalidLogLevel(t *testing.T) {
	_, err := ParseArgs([]string{"--log-level", "loud"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log level")
}

func TestParseArgs_UnknownFlag(t *testing.T) {
	_, err := ParseArgs([]string{"--server"})
	assert.Error(t, err)
}

func TestParseArgs_UnexpectedArgument(t *testing.T) {
	_, err := ParseArgs([]string{"extra"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected argument")
}

func TestParseArgs_Help(t *testing.T) {
	_, err := ParseArgs([]string{"--help"})
	assert.ErrorIs(t, err, ErrHelp)
}

func TestParseArgs_ConfigFile(t *testing.T) {
	path := writeConfig(t, "pong.json", `{
		"bestOf": 3,
		"sound": { "enabled": false, "file": "beep.wav" },
		"log": { "file": "game.log", "level": "warn" }
	}`)

	cfg, err := ParseArgs([]string{"--config", path})
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.BestOf)
	assert.False(t, cfg.SoundEnabled)
	assert.Equal(t, "beep.wav", cfg.SoundFile)
	assert.Equal(t, "game.log", cfg.LogFile)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestParseArgs_YAMLConfigFile(t *testing.T) {
	path := writeConfig(t, "pong.yaml", "bestOf: 7\nlog:\n  level: error\n")

	cfg, err := ParseArgs([]string{"--config", path})
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.BestOf)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.True(t, cfg.SoundEnabled)
}

func TestParseArgs_FlagOverridesConfigFile(t *testing.T) {
	path := writeConfig(t, "pong.json", `{"bestOf": 3}`)

	cfg, err := ParseArgs([]string{"--config", path, "--best-of", "7"})
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.BestOf)
}

func TestParseArgs_MissingConfigFile(t *testing.T) {
	_, err := ParseArgs([]string{"--config", "/nonexistent/pong.json"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestParseArgs_Environment(t *testing.T) {
	t.Setenv("PONG_BESTOF", "3")
	t.Setenv("PONG_SOUND_ENABLED", "false")

	cfg, err := ParseArgs(nil)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.BestOf)
	assert.False(t, cfg.SoundEnabled)
}

func TestParseArgs_FlagOverridesEnvironment(t *testing.T) {
	t.Setenv("PONG_BESTOF", "3")

	cfg, err := ParseArgs([]string{"--best-of", "5"})
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.BestOf)
}

func TestDefaultConstants(t *testing.T) {
	assert.Equal(t, 5, DefaultBestOf)
	assert.Equal(t, "info", DefaultLogLevel)
}
