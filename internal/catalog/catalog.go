// Package catalog defines the track catalog contract consumed by the player.
//
// Implementations talk to a remote music service (see internal/jamendo).
// Callers that must never fail, such as the UI, wrap a Catalog with
// Resilient, which degrades failures to empty results.
package catalog

import "context"

// DefaultLimit is the page size used when a caller passes a non-positive limit.
const DefaultLimit = 20

// Catalog fetches ordered track lists. All methods are idempotent reads.
type Catalog interface {
	// SearchTracks returns tracks matching a free-text query.
	SearchTracks(ctx context.Context, query string) ([]Track, error)
	// PopularTracks returns the most popular tracks, at most limit of them.
	PopularTracks(ctx context.Context, limit int) ([]Track, error)
	// TracksByGenre returns tracks tagged with genre, at most limit of them.
	TracksByGenre(ctx context.Context, genre string, limit int) ([]Track, error)
}
