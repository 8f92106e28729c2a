package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"deckflow/pkg/cache"
	"deckflow/pkg/errors"
	"deckflow/pkg/observability"
	"deckflow/pkg/plan"
	"deckflow/pkg/spec"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete spec → plan → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Spec
	specStart := time.Now()
	deck, synthetic, specHit, err := r.GenerateSpecWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Spec = deck
	result.Synthetic = synthetic
	result.Stats.SpecTime = time.Since(specStart)
	result.Stats.SlideCount = len(deck.Slides)
	result.CacheInfo.SpecHit = specHit

	if data, err := spec.Marshal(&deck); err == nil {
		result.SpecHash = cache.Hash(data)
	}

	r.Logger.Info("normalized deck",
		"slides", len(deck.Slides),
		"synthetic", synthetic,
		"duration", result.Stats.SpecTime)

	// Stage 2: Plan
	result.Plans = plan.Build(&deck)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, &deck, result.Plans, opts, &result.Stats)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered artifacts",
		"count", len(artifacts),
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// specEnvelope is the cached form of a normalized deck; the synthetic flag
// has to survive the round trip.
type specEnvelope struct {
	Synthetic bool              `json:"synthetic"`
	Deck      spec.Presentation `json:"deck"`
}

// GenerateSpecWithCacheInfo obtains and normalizes a deck with caching and
// returns cache hit info.
func (r *Runner) GenerateSpecWithCacheInfo(ctx context.Context, opts Options) (spec.Presentation, bool, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return spec.Presentation{}, false, false, err
	}
	r.applyLogger(&opts)

	topicKey := opts.Topic
	if opts.SpecFile != "" {
		topicKey = opts.SpecFile
	}
	cacheKey := r.Keyer.SpecKey(topicKey, cache.SpecKeyOpts{
		SlideCount: opts.SlideCount,
		Source:     opts.sourceName(),
	})

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var env specEnvelope
			if err := json.Unmarshal(data, &env); err == nil {
				return env.Deck, env.Synthetic, true, nil
			}
		}
	}

	raw, err := opts.specSource().Generate(ctx, opts.Topic, opts.SlideCount)
	if err != nil {
		// A dead file path is a user error and surfaces; any other source
		// failure degrades to the synthetic deck.
		if errors.Is(err, errors.ErrCodeFileNotFound) {
			return spec.Presentation{}, false, false, err
		}
		r.Logger.Warn("spec source failed, using fallback deck", "err", err)
		raw = nil
	}

	slideCount := opts.SlideCount
	if slideCount == 0 {
		// Rendering a spec file without a forced count: keep the file's
		// own length, clamped to the supported range.
		slideCount = DefaultSlideCount
		if raw != nil && len(raw.Slides) > 0 {
			slideCount = len(raw.Slides)
			if slideCount < errors.MinSlideCount {
				slideCount = errors.MinSlideCount
			}
			if slideCount > errors.MaxSlideCount {
				slideCount = errors.MaxSlideCount
			}
		}
	}

	observability.Pipeline().OnNormalizeStart(ctx, opts.Topic, slideCount)
	start := time.Now()
	deck, synthetic := spec.Normalize(raw, opts.Topic, slideCount)
	observability.Pipeline().OnNormalizeComplete(ctx, opts.Topic, slideCount, synthetic, time.Since(start))

	if data, err := json.Marshal(specEnvelope{Synthetic: synthetic, Deck: deck}); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLSpec)
	}

	return deck, synthetic, false, nil
}

// GenerateSpec is a convenience wrapper that discards cache hit info.
func (r *Runner) GenerateSpec(ctx context.Context, opts Options) (spec.Presentation, bool, error) {
	deck, synthetic, _, err := r.GenerateSpecWithCacheInfo(ctx, opts)
	return deck, synthetic, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
