package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	// Set does nothing (no error)
	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	// Still a miss after Set
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	// Delete does nothing (no error)
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	if err := c.Set(ctx, "spec:abc", []byte("payload"), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}

	data, hit, err := c.Get(ctx, "spec:abc")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !hit {
		t.Fatal("expected cache hit")
	}
	if string(data) != "payload" {
		t.Errorf("Get data = %q, want %q", data, "payload")
	}

	// Unknown key is a miss, not an error
	if _, hit, err := c.Get(ctx, "spec:missing"); err != nil || hit {
		t.Errorf("missing key: hit=%v err=%v, want miss without error", hit, err)
	}
}

func TestFileCacheExpiration(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	if err := c.Set(ctx, "artifact:x", []byte("stale"), -time.Second); err != nil {
		t.Fatalf("Set: %v", err)
	}

	if _, hit, err := c.Get(ctx, "artifact:x"); err != nil || hit {
		t.Errorf("expired entry: hit=%v err=%v, want miss without error", hit, err)
	}
}

func TestFileCacheDelete(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	if err := c.Set(ctx, "layout:y", []byte("data"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := c.Delete(ctx, "layout:y"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "layout:y"); hit {
		t.Error("deleted key should miss")
	}

	// Deleting a missing key is not an error
	if err := c.Delete(ctx, "layout:missing"); err != nil {
		t.Errorf("Delete missing key: %v", err)
	}
}

func TestHash(t *testing.T) {
	// Test determinism
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	// Test different inputs produce different hashes
	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	// Test hash length (SHA-256 produces 64 hex chars)
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	// SpecKey should include options in hash
	sk1 := k.SpecKey("Photosynthesis", SpecKeyOpts{SlideCount: 6, Source: "offline"})
	sk2 := k.SpecKey("Photosynthesis", SpecKeyOpts{SlideCount: 8, Source: "offline"})
	if sk1 == sk2 {
		t.Error("Different SpecKeyOpts should produce different keys")
	}

	// LayoutKey
	lk1 := k.LayoutKey("hash123", LayoutKeyOpts{Width: 1600, Height: 900})
	lk2 := k.LayoutKey("hash123", LayoutKeyOpts{Width: 800, Height: 900})
	if lk1 == lk2 {
		t.Error("Different LayoutKeyOpts should produce different keys")
	}

	// ArtifactKey
	ak1 := k.ArtifactKey("hash123", ArtifactKeyOpts{Format: "svg", Theme: "Minimal"})
	ak2 := k.ArtifactKey("hash123", ArtifactKeyOpts{Format: "png", Theme: "Minimal"})
	if ak1 == ak2 {
		t.Error("Different ArtifactKeyOpts should produce different keys")
	}
}

func TestScopedKeyer(t *testing.T) {
	inner := NewDefaultKeyer()
	scoped := NewScopedKeyer(inner, "staging:")

	key := scoped.SpecKey("topic", SpecKeyOpts{SlideCount: 6})
	if len(key) < 9 || key[:8] != "staging:" {
		t.Errorf("ScopedKeyer SpecKey should be prefixed: %s", key)
	}
}

func TestScopedKeyerNilInner(t *testing.T) {
	// Should use DefaultKeyer when inner is nil
	scoped := NewScopedKeyer(nil, "prefix:")
	key := scoped.ArtifactKey("h", ArtifactKeyOpts{Format: "svg"})
	if key[:7] != "prefix:" {
		t.Errorf("Unexpected key with nil inner: %s", key)
	}
}

func TestRetryableError(t *testing.T) {
	// Retryable(nil) returns nil
	if Retryable(nil) != nil {
		t.Error("Retryable(nil) should be nil")
	}

	base := errors.New("transient")
	wrapped := Retryable(base)
	if !IsRetryable(wrapped) {
		t.Error("wrapped error should be retryable")
	}
	if !errors.Is(wrapped, base) {
		t.Error("wrapped error should unwrap to base")
	}
	if IsRetryable(base) {
		t.Error("unwrapped error should not be retryable")
	}
}

func TestRetryWithBackoffStopsOnPermanent(t *testing.T) {
	calls := 0
	err := RetryWithBackoff(context.Background(), func() error {
		calls++
		return errors.New("permanent")
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if calls != 1 {
		t.Errorf("permanent error should not retry, got %d calls", calls)
	}
}

func TestKeyType(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"spec:abcdef", "spec"},
		{"artifact:123", "artifact"},
		{"noprefix", "unknown"},
	}
	for _, tt := range tests {
		if got := keyType(tt.key); got != tt.want {
			t.Errorf("keyType(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}
