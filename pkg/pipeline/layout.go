package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"deckflow/pkg/cache"
	"deckflow/pkg/diagram"
	"deckflow/pkg/diagram/render"
	"deckflow/pkg/observability"
	"deckflow/pkg/spec"
	"deckflow/pkg/theme"
)

// frameGeometry is the cached, theme-independent part of a frame. The key
// covers diagram content and viewport; style is attached after load so one
// layout entry serves every theme.
type frameGeometry struct {
	Grid   diagram.Grid        `json:"grid"`
	Routes []diagram.Route     `json:"routes,omitempty"`
	Diag   diagram.Diagnostics `json:"diagnostics,omitempty"`
	Labels [][]string          `json:"labels,omitempty"`
	Scale  float64             `json:"scale"`
}

// BuildFrameWithCacheInfo computes the drawable frame for one diagram,
// reusing cached geometry when available.
func (r *Runner) BuildFrameWithCacheInfo(ctx context.Context, d *spec.Diagram, style theme.DiagramStyle, opts Options) (render.Frame, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return render.Frame{}, false, err
	}

	diagramData, _ := json.Marshal(d)
	cacheKey := r.Keyer.LayoutKey(cache.Hash(diagramData), cache.LayoutKeyOpts{
		Width:  opts.Width,
		Height: opts.Height,
	})

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var geo frameGeometry
			if err := json.Unmarshal(data, &geo); err == nil {
				return frameFromGeometry(geo, style, opts), true, nil
			}
		}
	}

	nodeCount := 0
	if d != nil {
		nodeCount = len(d.Nodes)
	}
	observability.Pipeline().OnLayoutStart(ctx, nodeCount)
	start := time.Now()
	f := render.Build(d, float64(opts.Width), float64(opts.Height), style)
	observability.Pipeline().OnLayoutComplete(ctx, nodeCount, len(f.Diag.Dropped), time.Since(start))

	geo := frameGeometry{
		Grid:   f.Grid,
		Routes: f.Routes,
		Diag:   f.Diag,
		Labels: f.Labels,
		Scale:  f.Scale,
	}
	if data, err := json.Marshal(geo); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLLayout)
	}

	return f, false, nil
}

// BuildFrame is a convenience wrapper that discards cache hit info.
func (r *Runner) BuildFrame(ctx context.Context, d *spec.Diagram, style theme.DiagramStyle, opts Options) (render.Frame, error) {
	f, _, err := r.BuildFrameWithCacheInfo(ctx, d, style, opts)
	return f, err
}

func frameFromGeometry(geo frameGeometry, style theme.DiagramStyle, opts Options) render.Frame {
	return render.Frame{
		Grid:   geo.Grid,
		Routes: geo.Routes,
		Diag:   geo.Diag,
		Labels: geo.Labels,
		Scale:  geo.Scale,
		Style:  style,
		Width:  float64(opts.Width),
		Height: float64(opts.Height),
	}
}
