package player

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
)

// memSource is an in-memory, seekable source for the MP3 decoder.
type memSource struct {
	*bytes.Reader
}

func (memSource) Close() error { return nil }

// countingWriter records how many bytes went through it.
type countingWriter struct {
	n *atomic.Int64
}

func (w countingWriter) Write(b []byte) (int, error) {
	w.n.Add(int64(len(b)))
	return len(b), nil
}

// fetch downloads url fully into memory so the decoder can seek.
func fetch(ctx context.Context, client *http.Client, url string, progress *atomic.Int64) (io.ReadSeekCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status: %s", url, resp.Status)
	}

	var buf bytes.Buffer
	if resp.ContentLength > 0 {
		buf.Grow(int(resp.ContentLength))
	}
	body := io.TeeReader(resp.Body, countingWriter{n: progress})
	if _, err := buf.ReadFrom(body); err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}

	return memSource{bytes.NewReader(buf.Bytes())}, nil
}
