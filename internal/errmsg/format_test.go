//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"fmt"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpPlaybackLoad,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpPlaybackLoad,
			err:      errors.New("unexpected status: 404 Not Found"),
			expected: "Failed to load track: unexpected status: 404 Not Found",
		},
		{
			name:     "playback start operation",
			op:       OpPlaybackStart,
			err:      errors.New("no source loaded"),
			expected: "Failed to start playback: no source loaded",
		},
		{
			name:     "catalog search operation",
			op:       OpCatalogSearch,
			err:      errors.New("connection refused"),
			expected: "Failed to search catalog: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpPlaybackLoad,
			context:  "Wobbly Way",
			err:      nil,
			expected: "",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpSessionSave,
			context:  "",
			err:      errors.New("disk full"),
			expected: "Failed to save session: disk full",
		},
		{
			name:     "includes context in quotes",
			op:       OpPlaybackLoad,
			context:  "Wobbly Way",
			err:      errors.New("decode failed"),
			expected: "Failed to load track 'Wobbly Way': decode failed",
		},
		{
			name:     "genre context",
			op:       OpCatalogGenre,
			context:  "jazz",
			err:      errors.New("timeout"),
			expected: "Failed to browse genre 'jazz': timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith(%q, %q, %v) = %q, want %q", tt.op, tt.context, tt.err, result, tt.expected)
			}
		})
	}
}

func TestOpConstants(t *testing.T) {
	// Verify that Op constants are non-empty and produce valid messages
	ops := []Op{
		OpPlaybackLoad, OpPlaybackStart,
		OpCatalogSearch, OpCatalogPopular, OpCatalogGenre,
		OpSessionRestore, OpSessionSave,
		OpInitialize,
	}

	testErr := errors.New("test error")

	for _, op := range ops {
		t.Run(string(op), func(t *testing.T) {
			if op == "" {
				t.Error("Op constant should not be empty")
			}

			result := Format(op, testErr)
			expected := "Failed to " + string(op) + ": test error"
			if result != expected {
				t.Errorf("Format = %q, want %q", result, expected)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	if Wrap(OpInitialize, nil) != nil {
		t.Error("Wrap(op, nil) should be nil")
	}

	cause := errors.New("permission denied")
	err := Wrap(OpSessionRestore, cause)
	if !errors.Is(err, cause) {
		t.Error("wrapped error should match its cause")
	}
	if got, want := err.Error(), "restore session: permission denied"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"untagged", errors.New("boom"), "boom"},
		{"tagged", Wrap(OpInitialize, errors.New("no config")), "Failed to initialize application: no config"},
		{
			name: "tagged deeper in the chain",
			err:  fmt.Errorf("run: %w", Wrap(OpCatalogGenre, errors.New("timeout"))),
			want: "Failed to browse genre: timeout",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Message(tt.err); got != tt.want {
				t.Errorf("Message() = %q, want %q", got, tt.want)
			}
		})
	}
}
