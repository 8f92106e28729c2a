package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"deckflow/pkg/cache"
	"deckflow/pkg/diagram/render"
	"deckflow/pkg/observability"
	"deckflow/pkg/plan"
	"deckflow/pkg/spec"
	"deckflow/pkg/theme"
)

// deckDocument is the JSON artifact: the normalized spec plus the slide
// plans, everything a downstream deck builder needs in one file.
type deckDocument struct {
	Spec  spec.Presentation `json:"spec"`
	Plans []plan.SlidePlan  `json:"plans"`
	Theme string            `json:"theme"`
}

// RenderWithCacheInfo renders every flow diagram of a deck in the
// requested formats, with per-artifact caching. It returns the artifact
// map and whether all artifacts came from cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, deck *spec.Presentation, plans []plan.SlidePlan, opts Options, stats *Stats) (map[string][]byte, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	th := theme.Get(opts.Theme)
	specData, _ := spec.Marshal(deck)
	specHash := cache.Hash(specData)

	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	artifacts := make(map[string][]byte)
	allCached := true
	droppedCounted := make(map[int]bool)

	for _, format := range opts.Formats {
		if format == FormatJSON {
			doc, err := json.MarshalIndent(deckDocument{Spec: *deck, Plans: plans, Theme: th.Name}, "", "  ")
			if err != nil {
				observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
				return nil, false, err
			}
			artifacts[ArtifactName(0, FormatJSON)] = doc
			allCached = false
			continue
		}

		for i, s := range deck.Slides {
			if s.Type != spec.SlideFlow || s.Diagram == nil {
				continue
			}
			name := ArtifactName(i, format)

			cacheKey := r.Keyer.ArtifactKey(specHash, cache.ArtifactKeyOpts{
				Format:     format,
				Theme:      th.Name,
				SlideIndex: i,
			})
			if !opts.Refresh {
				if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
					artifacts[name] = data
					continue
				}
			}
			allCached = false

			frame, _, err := r.BuildFrameWithCacheInfo(ctx, s.Diagram, th.Diagram(), opts)
			if err != nil {
				observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
				return nil, false, err
			}
			if n := len(frame.Diag.Dropped); n > 0 && !droppedCounted[i] {
				droppedCounted[i] = true
				stats.DroppedEdges += n
				r.Logger.Warn("dropped unresolvable edges", "slide", i, "count", n)
			}

			data, err := renderFormat(ctx, frame, format)
			if err != nil {
				observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
				return nil, false, err
			}
			artifacts[name] = data
			_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
		}
	}

	for _, s := range deck.Slides {
		if s.Type == spec.SlideFlow && s.Diagram != nil {
			stats.FlowCount++
		}
	}

	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), nil)
	return artifacts, allCached, nil
}

// Render is a convenience wrapper that discards cache hit info.
func (r *Runner) Render(ctx context.Context, deck *spec.Presentation, plans []plan.SlidePlan, opts Options) (map[string][]byte, error) {
	var stats Stats
	artifacts, _, err := r.RenderWithCacheInfo(ctx, deck, plans, opts, &stats)
	return artifacts, err
}

func renderFormat(ctx context.Context, f render.Frame, format string) ([]byte, error) {
	switch format {
	case FormatSVG:
		return render.RenderSVG(f), nil
	case FormatPNG:
		return render.NewShape().Render(f)
	case FormatDOT:
		return render.NewDOT().Render(f)
	case FormatDOTSVG:
		return render.GraphvizSVG(ctx, render.ToDOT(f))
	default:
		return nil, ValidateFormat(format)
	}
}
