// Package jamendo provides a client for the Jamendo v3.0 tracks API.
package jamendo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/llehouerou/harmony/internal/catalog"
)

const (
	// DefaultBaseURL is the public Jamendo API root.
	DefaultBaseURL = "https://api.jamendo.com/v3.0"
	// DefaultClientID is the public demo client id.
	DefaultClientID = "b0ac0b46"

	maxLimit      = 200
	audioFormat   = "mp31"
	statusSuccess = "success"
	userAgent     = "harmony-music-player/1.0 (https://github.com/llehouerou/harmony)"
)

// Verify Client implements catalog.Catalog at compile time.
var _ catalog.Catalog = (*Client)(nil)

// Client is a Jamendo API client.
type Client struct {
	httpClient *http.Client
	baseURL    string
	clientID   string
	limit      int
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API root (used by tests).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimSuffix(u, "/") }
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// WithLimit sets the page size used by SearchTracks.
func WithLimit(n int) Option {
	return func(c *Client) { c.limit = n }
}

// New creates a Jamendo client for clientID.
func New(clientID string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    DefaultBaseURL,
		clientID:   clientID,
		limit:      catalog.DefaultLimit,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.clientID == "" {
		c.clientID = DefaultClientID
	}
	return c
}

// SearchTracks returns tracks matching query.
func (c *Client) SearchTracks(ctx context.Context, query string) ([]catalog.Track, error) {
	params := url.Values{}
	params.Set("search", query)
	return c.tracks(ctx, params, c.limit)
}

// PopularTracks returns the most popular tracks of all time.
func (c *Client) PopularTracks(ctx context.Context, limit int) ([]catalog.Track, error) {
	params := url.Values{}
	params.Set("order", "popularity_total")
	return c.tracks(ctx, params, limit)
}

// TracksByGenre returns tracks tagged with genre.
func (c *Client) TracksByGenre(ctx context.Context, genre string, limit int) ([]catalog.Track, error) {
	params := url.Values{}
	params.Set("tags", genre)
	return c.tracks(ctx, params, limit)
}

func (c *Client) tracks(ctx context.Context, params url.Values, limit int) ([]catalog.Track, error) {
	if limit <= 0 {
		limit = catalog.DefaultLimit
	}
	params.Set("client_id", c.clientID)
	params.Set("format", "json")
	params.Set("limit", strconv.Itoa(lo.Clamp(limit, 1, maxLimit)))
	params.Set("include", "musicinfo")
	params.Set("audioformat", audioFormat)

	var env envelope[trackResult]
	if err := c.get(ctx, "/tracks", params, &env); err != nil {
		return nil, err
	}

	return lo.Map(env.Results, func(r trackResult, _ int) catalog.Track {
		return r.toTrack()
	}), nil
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out *envelope[trackResult]) error {
	op := strings.TrimPrefix(endpoint, "/")
	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &catalog.NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &catalog.NetworkError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Err:        errors.New(resp.Status),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &catalog.NetworkError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}

	if out.Headers.Status != statusSuccess {
		return &catalog.APIError{
			Op:      op,
			Code:    out.Headers.Code,
			Message: out.Headers.ErrorMessage,
		}
	}
	return nil
}
