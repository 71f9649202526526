//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/logs/harmony.log",
			expected: filepath.Join(home, "logs", "harmony.log"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/var/log/harmony.log",
			expected: "/var/log/harmony.log",
		},
		{
			name:     "relative path unchanged",
			input:    "logs/harmony.log",
			expected: "logs/harmony.log",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: home,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	if len(paths) == 0 {
		t.Fatal("getConfigPaths() returned empty slice")
	}

	lastPath := paths[len(paths)-1]
	if lastPath != "config.toml" {
		t.Errorf("last config path = %q, want %q", lastPath, "config.toml")
	}

	if home, err := os.UserHomeDir(); err == nil {
		expectedFirst := filepath.Join(home, ".config", "harmony", "config.toml")
		if paths[0] != expectedFirst {
			t.Errorf("first config path = %q, want %q", paths[0], expectedFirst)
		}
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_ExtraPathOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	path := writeConfig(t, `
icons = "nerd"
log_level = "debug"

[jamendo]
client_id = "abc123"
base_url = "http://localhost:8080/v3.0/"
limit = 50

[playback]
initial_tracks = 5
initial_volume = 0.5
skip_unplayable = true
restore_session = false
time_update_ms = 100

[metrics]
listen = "127.0.0.1:9464"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "nerd", cfg.Icons)
	assert.Equal(t, "debug", cfg.GetLogLevel())
	assert.Equal(t, "abc123", cfg.Jamendo.ClientID)
	assert.Equal(t, "http://localhost:8080/v3.0", cfg.Jamendo.BaseURL, "trailing slash trimmed")
	assert.True(t, cfg.HasMetrics())

	pb := cfg.GetPlaybackConfig()
	assert.Equal(t, 5, *pb.InitialTracks)
	assert.InDelta(t, 0.5, *pb.InitialVolume, 0)
	assert.True(t, pb.SkipUnplayable)
	assert.False(t, *pb.RestoreSession)
	assert.Equal(t, 100*time.Millisecond, pb.TimeUpdateInterval())
}

func TestLoad_MissingFilesAreSkipped(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.GetLogLevel())
	assert.False(t, cfg.HasMetrics())
}

func TestLoad_InvalidTOML(t *testing.T) {
	t.Chdir(t.TempDir())
	path := writeConfig(t, "icons = [unterminated")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestGetJamendoConfig(t *testing.T) {
	tests := []struct {
		name     string
		config   JamendoConfig
		expected JamendoConfig
	}{
		{
			name:   "empty config uses all defaults",
			config: JamendoConfig{},
			expected: JamendoConfig{
				ClientID:       DefaultJamendoClientID,
				BaseURL:        DefaultJamendoBaseURL,
				Limit:          20,
				TimeoutSeconds: 10,
			},
		},
		{
			name: "custom values preserved",
			config: JamendoConfig{
				ClientID:       "key",
				BaseURL:        "http://local",
				Limit:          50,
				TimeoutSeconds: 3,
			},
			expected: JamendoConfig{
				ClientID:       "key",
				BaseURL:        "http://local",
				Limit:          50,
				TimeoutSeconds: 3,
			},
		},
		{
			name:   "limit above API maximum is capped",
			config: JamendoConfig{Limit: 500},
			expected: JamendoConfig{
				ClientID:       DefaultJamendoClientID,
				BaseURL:        DefaultJamendoBaseURL,
				Limit:          200,
				TimeoutSeconds: 10,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Jamendo: tt.config}
			result := cfg.GetJamendoConfig()
			if result != tt.expected {
				t.Errorf("GetJamendoConfig() = %+v, want %+v", result, tt.expected)
			}
		})
	}
}

func TestGetJamendoConfig_Timeout(t *testing.T) {
	cfg := Config{}
	if got := cfg.GetJamendoConfig().Timeout(); got != 10*time.Second {
		t.Errorf("Timeout() = %v, want 10s", got)
	}
}

func TestGetPlaybackConfig(t *testing.T) {
	tests := []struct {
		name        string
		config      PlaybackConfig
		wantTracks  int
		wantVolume  float64
		wantRestore bool
		wantTick    time.Duration
	}{
		{
			name:        "defaults",
			config:      PlaybackConfig{},
			wantTracks:  10,
			wantVolume:  1,
			wantRestore: true,
			wantTick:    250 * time.Millisecond,
		},
		{
			name: "zero initial tracks disables",
			config: PlaybackConfig{
				InitialTracks: lo.ToPtr(0),
				InitialVolume: lo.ToPtr(0.0),
			},
			wantTracks:  0,
			wantVolume:  0,
			wantRestore: true,
			wantTick:    250 * time.Millisecond,
		},
		{
			name: "out of range values clamped",
			config: PlaybackConfig{
				InitialTracks:  lo.ToPtr(-4),
				InitialVolume:  lo.ToPtr(1.8),
				RestoreSession: lo.ToPtr(false),
				TimeUpdateMS:   -1,
			},
			wantTracks:  0,
			wantVolume:  1,
			wantRestore: false,
			wantTick:    250 * time.Millisecond,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Playback: tt.config}
			pb := cfg.GetPlaybackConfig()

			if *pb.InitialTracks != tt.wantTracks {
				t.Errorf("InitialTracks = %d, want %d", *pb.InitialTracks, tt.wantTracks)
			}
			if *pb.InitialVolume != tt.wantVolume {
				t.Errorf("InitialVolume = %v, want %v", *pb.InitialVolume, tt.wantVolume)
			}
			if *pb.RestoreSession != tt.wantRestore {
				t.Errorf("RestoreSession = %v, want %v", *pb.RestoreSession, tt.wantRestore)
			}
			if pb.TimeUpdateInterval() != tt.wantTick {
				t.Errorf("TimeUpdateInterval() = %v, want %v", pb.TimeUpdateInterval(), tt.wantTick)
			}
		})
	}
}
