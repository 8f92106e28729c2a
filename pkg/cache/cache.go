// Package cache provides content-addressed caching for the deckflow pipeline.
//
// The pipeline caches three classes of values: normalized deck specs keyed
// by their source inputs, diagram layouts keyed by the spec content hash,
// and rendered artifacts keyed by the layout hash plus render options.
// Backends: file (CLI), Redis (server deployments), and null (disabled).
package cache

import (
	"context"
	"time"
)

// TTLs per cached value class. Normalization is deterministic, so spec
// entries can live long; artifacts are the largest and churn with themes.
const (
	TTLSpec     = 24 * time.Hour
	TTLLayout   = 24 * time.Hour
	TTLArtifact = 6 * time.Hour
)

// Cache is the storage interface shared by all backends.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A zero TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// SpecKeyOpts are the inputs that determine a normalized spec.
type SpecKeyOpts struct {
	SlideCount int
	Source     string // source kind: "offline", "file", ...
}

// LayoutKeyOpts are the inputs that determine a diagram layout.
type LayoutKeyOpts struct {
	Width  int
	Height int
}

// ArtifactKeyOpts are the inputs that determine a rendered artifact.
type ArtifactKeyOpts struct {
	Format     string
	Theme      string
	SlideIndex int
}

// Keyer generates cache keys for the pipeline's value classes.
type Keyer interface {
	// SpecKey generates a key for a normalized presentation spec.
	SpecKey(topic string, opts SpecKeyOpts) string

	// LayoutKey generates a key for a computed diagram layout.
	LayoutKey(diagramHash string, opts LayoutKeyOpts) string

	// ArtifactKey generates a key for a rendered artifact.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard key generator.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard key generator.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// SpecKey generates a key for a normalized presentation spec.
func (k *DefaultKeyer) SpecKey(topic string, opts SpecKeyOpts) string {
	return hashKey("spec", topic, opts)
}

// LayoutKey generates a key for a computed diagram layout.
func (k *DefaultKeyer) LayoutKey(diagramHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", diagramHash, opts)
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}
