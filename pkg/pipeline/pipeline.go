// Package pipeline runs the complete deck generation flow: generate a raw
// spec, normalize it, plan slide presentation, and render diagram
// artifacts. CLI and API both drive this package, so behavior and caching
// stay identical across entry points.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Spec: obtain a raw deck from a source and normalize it
//  2. Plan: decide layout and image intent per slide
//  3. Render: draw every flow diagram in the requested formats
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Topic:   "Photosynthesis",
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["slide-2.svg"]
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"deckflow/pkg/errors"
	"deckflow/pkg/plan"
	"deckflow/pkg/source"
	"deckflow/pkg/spec"
)

// Defaults shared by CLI and API.
const (
	// DefaultSlideCount is used when the caller does not ask for a count.
	DefaultSlideCount = 6

	// DefaultWidth is the diagram viewport width in pixels.
	DefaultWidth = 1600

	// DefaultHeight is the diagram viewport height in pixels.
	DefaultHeight = 900
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatDOT  = "dot"
	FormatJSON = "json"

	// FormatDOTSVG renders through the embedded Graphviz engine instead of
	// the grid layout, letting Graphviz place the nodes.
	FormatDOTSVG = "dot-svg"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:    true,
	FormatPNG:    true,
	FormatDOT:    true,
	FormatDOTSVG: true,
	FormatJSON:   true,
}

// Options contains all configuration for one pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Topic drives generation. Required unless SpecFile is set.
	Topic      string `json:"topic"`
	SlideCount int    `json:"slide_count,omitempty"`

	// SpecFile renders a deck spec from disk instead of generating one.
	SpecFile string `json:"spec_file,omitempty"`

	// Theme names a registered preset. Unknown names fall back to the
	// default theme, matching renderer behavior everywhere else.
	Theme string `json:"theme,omitempty"`

	// Render options.
	Formats []string `json:"formats,omitempty"`
	Width   int      `json:"width,omitempty"`
	Height  int      `json:"height,omitempty"`

	// Refresh bypasses the cache and overwrites stale entries.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized).
	Source source.Source `json:"-"`
	Logger *log.Logger   `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Spec is the normalized presentation.
	Spec spec.Presentation

	// Synthetic reports whether the fallback deck replaced the source output.
	Synthetic bool

	// SpecHash is the content hash of the normalized spec.
	SpecHash string

	// Plans holds the per-slide presentation decisions.
	Plans []plan.SlidePlan

	// Artifacts contains rendered outputs keyed by name, e.g. "slide-2.svg".
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	SlideCount   int
	FlowCount    int
	DroppedEdges int

	SpecTime   time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	SpecHit   bool // normalized spec came from cache
	RenderHit bool // all artifacts came from cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png, dot, dot-svg, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if o.SpecFile == "" {
		if err := errors.ValidateTopic(o.Topic); err != nil {
			return err
		}
	}
	// Spec files keep their own slide count unless one is forced; a zero
	// count is resolved against the file content at generation time.
	if o.SlideCount == 0 && o.SpecFile == "" {
		o.SlideCount = DefaultSlideCount
	}
	if o.SlideCount != 0 {
		if err := errors.ValidateSlideCount(o.SlideCount); err != nil {
			return err
		}
	}

	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}

	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Width < 0 || o.Height < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "viewport %dx%d is invalid", o.Width, o.Height)
	}

	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}

// sourceName identifies the source kind inside spec cache keys.
func (o *Options) sourceName() string {
	switch {
	case o.SpecFile != "":
		return "file"
	case o.Source != nil:
		return "custom"
	default:
		return "offline"
	}
}

// specSource returns the source to generate from, honoring the precedence
// spec file > injected source > offline generator.
func (o *Options) specSource() source.Source {
	switch {
	case o.SpecFile != "":
		return source.NewFile(o.SpecFile)
	case o.Source != nil:
		return o.Source
	default:
		return source.NewOffline()
	}
}

// ArtifactName returns the artifact key for a slide and format,
// e.g. "slide-2.svg". The JSON document artifact is named "deck.json";
// Graphviz-rendered SVGs get a "dot.svg" extension so they never collide
// with the grid-layout SVGs.
func ArtifactName(slideIndex int, format string) string {
	switch format {
	case FormatJSON:
		return "deck.json"
	case FormatDOTSVG:
		return fmt.Sprintf("slide-%d.dot.svg", slideIndex)
	}
	return fmt.Sprintf("slide-%d.%s", slideIndex, format)
}
