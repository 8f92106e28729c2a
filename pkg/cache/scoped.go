package cache

// ScopedKeyer wraps a Keyer with a prefix for multi-tenant isolation.
// Useful when one Redis instance backs several deckflow deployments.
//
// Example usage:
//
//	// Per-deployment keys
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "staging:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// SpecKey generates a prefixed key for normalized spec caching.
func (k *ScopedKeyer) SpecKey(topic string, opts SpecKeyOpts) string {
	return k.prefix + k.inner.SpecKey(topic, opts)
}

// LayoutKey generates a prefixed key for layout caching.
func (k *ScopedKeyer) LayoutKey(diagramHash string, opts LayoutKeyOpts) string {
	return k.prefix + k.inner.LayoutKey(diagramHash, opts)
}

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(layoutHash, opts)
}
