package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/samber/lo"
)

// Jamendo defaults. The client id is the public demo key.
const (
	DefaultJamendoClientID = "b0ac0b46"
	DefaultJamendoBaseURL  = "https://api.jamendo.com/v3.0"
	DefaultJamendoLimit    = 20
	DefaultJamendoTimeout  = 10 * time.Second
	MaxJamendoLimit        = 200
)

type Config struct {
	Icons    string `koanf:"icons"`     // "nerd", "unicode", or "none"
	LogLevel string `koanf:"log_level"` // logrus level name (default: "info")
	LogFile  string `koanf:"log_file"`  // default: $XDG_STATE_HOME/harmony/harmony.log

	// Jamendo catalog access
	Jamendo JamendoConfig `koanf:"jamendo"`

	// Playback behaviour
	Playback PlaybackConfig `koanf:"playback"`

	// Prometheus endpoint (disabled when listen is empty)
	Metrics MetricsConfig `koanf:"metrics"`
}

// JamendoConfig holds Jamendo API settings.
type JamendoConfig struct {
	ClientID       string `koanf:"client_id"`
	BaseURL        string `koanf:"base_url"`
	Limit          int    `koanf:"limit"`           // page size (1-200, default: 20)
	TimeoutSeconds int    `koanf:"timeout_seconds"` // HTTP timeout (default: 10)
}

// Timeout returns the HTTP timeout as a duration.
func (j JamendoConfig) Timeout() time.Duration {
	return time.Duration(j.TimeoutSeconds) * time.Second
}

// PlaybackConfig holds player session settings.
type PlaybackConfig struct {
	InitialTracks  *int     `koanf:"initial_tracks"`  // popular tracks queued at start-up (default: 10, 0 disables)
	InitialVolume  *float64 `koanf:"initial_volume"`  // 0.0-1.0 (default: 1.0)
	SkipUnplayable bool     `koanf:"skip_unplayable"` // advance past tracks that fail to load
	RestoreSession *bool    `koanf:"restore_session"` // restore the saved queue (default: true)
	TimeUpdateMS   int      `koanf:"time_update_ms"`  // position update interval (default: 250)
}

// TimeUpdateInterval returns the position update interval as a duration.
func (p PlaybackConfig) TimeUpdateInterval() time.Duration {
	return time.Duration(p.TimeUpdateMS) * time.Millisecond
}

// MetricsConfig holds the Prometheus endpoint settings.
type MetricsConfig struct {
	Listen string `koanf:"listen"` // e.g., "127.0.0.1:9464"
}

// Load reads the default config files followed by extraPaths. Later files
// override earlier ones; missing files are skipped.
func Load(extraPaths ...string) (*Config, error) {
	k := koanf.New(".")

	configPaths := append(getConfigPaths(), extraPaths...)

	for _, path := range configPaths {
		path = expandPath(path)
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	// Normalize Jamendo base URL (remove trailing slash)
	cfg.Jamendo.BaseURL = strings.TrimSuffix(cfg.Jamendo.BaseURL, "/")

	if cfg.LogFile != "" {
		cfg.LogFile = expandPath(cfg.LogFile)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/harmony/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "harmony", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority among defaults)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// HasMetrics returns true if the metrics endpoint is configured.
func (c *Config) HasMetrics() bool {
	return c.Metrics.Listen != ""
}

// GetLogLevel returns the configured log level, defaulting to "info".
func (c *Config) GetLogLevel() string {
	if c.LogLevel == "" {
		return "info"
	}
	return c.LogLevel
}

// GetJamendoConfig returns the Jamendo configuration with defaults applied.
func (c *Config) GetJamendoConfig() JamendoConfig {
	cfg := c.Jamendo

	// Apply defaults
	if cfg.ClientID == "" {
		cfg.ClientID = DefaultJamendoClientID
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultJamendoBaseURL
	}
	if cfg.Limit <= 0 {
		cfg.Limit = DefaultJamendoLimit
	}
	cfg.Limit = min(cfg.Limit, MaxJamendoLimit)
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = int(DefaultJamendoTimeout / time.Second)
	}

	return cfg
}

// GetPlaybackConfig returns the playback configuration with defaults applied.
func (c *Config) GetPlaybackConfig() PlaybackConfig {
	cfg := c.Playback

	// Apply defaults
	if cfg.InitialTracks == nil {
		cfg.InitialTracks = lo.ToPtr(10)
	} else {
		cfg.InitialTracks = lo.ToPtr(lo.Clamp(*cfg.InitialTracks, 0, MaxJamendoLimit))
	}
	if cfg.InitialVolume == nil {
		cfg.InitialVolume = lo.ToPtr(1.0)
	} else {
		cfg.InitialVolume = lo.ToPtr(lo.Clamp(*cfg.InitialVolume, 0, 1))
	}
	if cfg.RestoreSession == nil {
		cfg.RestoreSession = lo.ToPtr(true)
	}
	if cfg.TimeUpdateMS <= 0 {
		cfg.TimeUpdateMS = 250
	}

	return cfg
}
