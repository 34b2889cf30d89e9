// Package cache provides artifact caching for the honeycomb pipeline.
//
// The layout computation itself is pure and cheap, so only rendered
// artifacts are cached: the key is derived from the full parameter set and
// the render options, which makes hits exact by construction. A file-backed
// implementation serves the CLI; NullCache disables caching entirely.
package cache

import (
	"context"
	"time"
)

// TTLArtifact is how long rendered artifacts stay valid. Generation is
// deterministic, so the TTL only bounds disk usage over time.
const TTLArtifact = 7 * 24 * time.Hour

// Cache stores raw bytes by key with a TTL.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A non-positive ttl stores it without expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// ArtifactKeyOpts are the render options that distinguish artifacts built
// from the same layout parameters.
type ArtifactKeyOpts struct {
	Format      string
	Stroke      string
	StrokeWidth float64
	Fill        string
	Margin      float64
}

// Keyer generates cache keys.
type Keyer interface {
	// ArtifactKey generates a key for a rendered artifact from the layout
	// parameter hash and the render options.
	ArtifactKey(paramsHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard key generation scheme.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// ArtifactKey implements Keyer.
func (k *DefaultKeyer) ArtifactKey(paramsHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", paramsHash, opts)
}
