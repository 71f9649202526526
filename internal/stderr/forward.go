// Package stderr keeps output that C audio libraries write to file
// descriptor 2 from corrupting the TUI. Captured lines go to the log.
package stderr

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
)

const bufferedLines = 100

// lines carries captured output to Forward. Full buffer drops lines.
var lines = make(chan string, bufferedLines)

// Forward logs captured lines until ctx is done.
func Forward(ctx context.Context, log logrus.FieldLogger) {
	for {
		select {
		case line := <-lines:
			entry := log.WithField("source", "stderr")
			if isBackendChatter(line) {
				entry.Debug(line)
			} else {
				entry.Warn(line)
			}
		case <-ctx.Done():
			return
		}
	}
}

// isBackendChatter reports lines the ALSA and PulseAudio client libraries
// print on routine device hiccups.
func isBackendChatter(line string) bool {
	return strings.HasPrefix(line, "ALSA lib ") ||
		strings.Contains(line, "underrun occurred")
}

func push(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	select {
	case lines <- line:
	default:
	}
}
