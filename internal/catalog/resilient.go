package catalog

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/llehouerou/harmony/internal/metrics"
)

// Operation names used for logs and metrics.
const (
	OpSearch  = "search"
	OpPopular = "popular"
	OpGenre   = "genre"
)

// Resilient wraps a Catalog so that failures surface as empty results.
// Each failure is logged and counted; nothing is returned to the caller.
type Resilient struct {
	catalog Catalog
	log     logrus.FieldLogger
	metrics *metrics.Metrics
}

// NewResilient wraps c. m may be nil.
func NewResilient(c Catalog, log logrus.FieldLogger, m *metrics.Metrics) *Resilient {
	return &Resilient{catalog: c, log: log, metrics: m}
}

// Search returns tracks matching query. Blank queries return nothing
// without reaching the catalog.
func (r *Resilient) Search(ctx context.Context, query string) []Track {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	tracks, err := r.catalog.SearchTracks(ctx, query)
	return r.settle(OpSearch, logrus.Fields{"query": query}, tracks, err)
}

// Popular returns up to limit popular tracks.
func (r *Resilient) Popular(ctx context.Context, limit int) []Track {
	tracks, err := r.catalog.PopularTracks(ctx, limit)
	return r.settle(OpPopular, logrus.Fields{"limit": limit}, tracks, err)
}

// Genre returns up to limit tracks tagged with genre.
func (r *Resilient) Genre(ctx context.Context, genre string, limit int) []Track {
	genre = strings.TrimSpace(genre)
	if genre == "" {
		return nil
	}
	tracks, err := r.catalog.TracksByGenre(ctx, genre, limit)
	return r.settle(OpGenre, logrus.Fields{"genre": genre, "limit": limit}, tracks, err)
}

func (r *Resilient) settle(op string, fields logrus.Fields, tracks []Track, err error) []Track {
	r.metrics.CatalogRequest(op, err)
	if err != nil {
		r.log.WithFields(fields).WithField("op", op).WithError(err).Warn("catalog request failed")
		return nil
	}
	return tracks
}
