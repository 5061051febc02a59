package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/diegok/termpong/internal/game"
)

// Default values for configuration
const (
	DefaultBestOf   = game.DefaultBestOf
	DefaultLogLevel = "info"
	EnvPrefix       = "PONG"
)

// ErrHelp is returned when usage was requested with --help
var ErrHelp = pflag.ErrHelp

// Config holds the application configuration
type Config struct {
	BestOf       int
	SoundEnabled bool
	SoundFile    string
	LogFile      string
	LogLevel     string
}

// newViper sets default values for every key
func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("bestOf", DefaultBestOf)
	v.SetDefault("sound.enabled", true)
	v.SetDefault("sound.file", "")
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", DefaultLogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// NewFlagSet returns the command line flags understood by ParseArgs
func NewFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("pong", pflag.ContinueOnError)
	fs.String("config", "", "config file (json, yaml or toml)")
	fs.Int("best-of", DefaultBestOf, "points to win: 3, 5 or 7")
	fs.Bool("mute", false, "disable sound")
	fs.String("sound", "", "WAV file played when a point is scored")
	fs.String("log-file", "", "write logs to this file")
	fs.String("log-level", DefaultLogLevel, "log level (trace, debug, info, warn, error)")
	return fs
}

// ParseArgs merges defaults, an optional config file, PONG_* environment
// variables and command line flags (highest precedence) into a Config
func ParseArgs(args []string) (*Config, error) {
	fs := NewFlagSet()
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	v := newViper()
	bindings := map[string]string{
		"bestOf":     "best-of",
		"sound.file": "sound",
		"log.file":   "log-file",
		"log.level":  "log-level",
	}
	for key, flag := range bindings {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return nil, fmt.Errorf("failed to bind flag %s: %w", flag, err)
		}
	}

	if path, _ := fs.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{
		BestOf:       v.GetInt("bestOf"),
		SoundEnabled: v.GetBool("sound.enabled"),
		SoundFile:    v.GetString("sound.file"),
		LogFile:      v.GetString("log.file"),
		LogLevel:     v.GetString("log.level"),
	}
	if mute, _ := fs.GetBool("mute"); mute {
		cfg.SoundEnabled = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if err := game.ValidateBestOf(c.BestOf); err != nil {
		return fmt.Errorf("best-of: %w", err)
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}
