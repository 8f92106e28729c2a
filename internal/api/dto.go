package api

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"deckflow/pkg/errors"
	"deckflow/pkg/pipeline"
	"deckflow/pkg/plan"
	"deckflow/pkg/spec"
)

// GenerateRequest is the request body for POST /generate.
type GenerateRequest struct {
	Topic      string   `json:"topic"`
	SlideCount int      `json:"slide_count,omitempty"`
	Theme      string   `json:"theme,omitempty"`
	Formats    []string `json:"formats,omitempty"`
	Width      int      `json:"width,omitempty"`
	Height     int      `json:"height,omitempty"`
	Refresh    bool     `json:"refresh,omitempty"`
}

// Validate checks request bounds before the pipeline sees them, so clients
// get field-level messages instead of pipeline errors.
func (r GenerateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Topic, validation.Required, validation.Length(errors.MinTopicLen, 200)),
		validation.Field(&r.SlideCount, validation.Min(0), validation.When(r.SlideCount != 0,
			validation.Min(errors.MinSlideCount), validation.Max(errors.MaxSlideCount))),
		validation.Field(&r.Formats, validation.Each(validation.By(func(v any) error {
			f, _ := v.(string)
			return pipeline.ValidateFormat(f)
		}))),
		validation.Field(&r.Width, validation.Min(0), validation.Max(8192)),
		validation.Field(&r.Height, validation.Min(0), validation.Max(8192)),
	)
}

// options maps the request onto pipeline options.
func (r GenerateRequest) options() pipeline.Options {
	return pipeline.Options{
		Topic:      r.Topic,
		SlideCount: r.SlideCount,
		Theme:      r.Theme,
		Formats:    r.Formats,
		Width:      r.Width,
		Height:     r.Height,
		Refresh:    r.Refresh,
	}
}

// GenerateResponse is the response body for POST /generate. Artifact bytes
// are base64-encoded by the standard JSON codec.
type GenerateResponse struct {
	Spec      spec.Presentation `json:"spec"`
	Synthetic bool              `json:"synthetic"`
	SpecHash  string            `json:"spec_hash"`
	Plans     []plan.SlidePlan  `json:"plans"`
	Artifacts map[string][]byte `json:"artifacts"`
	Stats     StatsDTO          `json:"stats"`
	Cache     CacheDTO          `json:"cache"`
}

// StatsDTO is the wire form of pipeline statistics, durations in
// milliseconds.
type StatsDTO struct {
	SlideCount   int   `json:"slide_count"`
	FlowCount    int   `json:"flow_count"`
	DroppedEdges int   `json:"dropped_edges"`
	SpecMs       int64 `json:"spec_ms"`
	RenderMs     int64 `json:"render_ms"`
}

// CacheDTO reports per-stage cache hits.
type CacheDTO struct {
	SpecHit   bool `json:"spec_hit"`
	RenderHit bool `json:"render_hit"`
}

// ThemeDTO is one theme in the themes listing.
type ThemeDTO struct {
	Name       string `json:"name"`
	Background string `json:"background"`
	Accent     string `json:"accent"`
	FontTitle  string `json:"font_title"`
	FontBody   string `json:"font_body"`
}

// ThemesResponse wraps the theme listing.
type ThemesResponse struct {
	Themes []ThemeDTO `json:"themes"`
}

// HealthResponse is the health check body.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

func toResponse(result *pipeline.Result) GenerateResponse {
	return GenerateResponse{
		Spec:      result.Spec,
		Synthetic: result.Synthetic,
		SpecHash:  result.SpecHash,
		Plans:     result.Plans,
		Artifacts: result.Artifacts,
		Stats: StatsDTO{
			SlideCount:   result.Stats.SlideCount,
			FlowCount:    result.Stats.FlowCount,
			DroppedEdges: result.Stats.DroppedEdges,
			SpecMs:       result.Stats.SpecTime.Milliseconds(),
			RenderMs:     result.Stats.RenderTime.Milliseconds(),
		},
		Cache: CacheDTO{
			SpecHit:   result.CacheInfo.SpecHit,
			RenderHit: result.CacheInfo.RenderHit,
		},
	}
}
