package source

import (
	"context"
	"fmt"

	"deckflow/pkg/spec"
)

// Offline is the built-in deterministic generator. It fabricates a
// plausible deck from the topic alone, with prose content and a linear
// flow diagram, and is the default source when no external generator is
// configured.
type Offline struct{}

// NewOffline returns the offline generator.
func NewOffline() *Offline { return &Offline{} }

// Generate implements [Source]. It never fails.
//
// The deck is intentionally rough: prose paragraphs instead of bullet
// lists, and no padding to the requested count. Normalization shapes it,
// same as it would output from a live generator.
func (o *Offline) Generate(_ context.Context, topic string, slideCount int) (*spec.Presentation, error) {
	p := &spec.Presentation{
		Title: topic,
		Slides: []spec.Slide{
			{
				Type:     spec.SlideIntro,
				Title:    topic,
				Content:  fmt.Sprintf("An introduction to %s. What it is and why it matters. What this deck covers.", topic),
				Keywords: []string{topic, "introduction"},
			},
			{
				Type:     spec.SlideProcess,
				Title:    "Key Concepts",
				Content:  fmt.Sprintf("The vocabulary of %s. Core ideas and their relationships. Common misconceptions.", topic),
				Keywords: []string{topic, "concepts", "fundamentals"},
			},
			{
				Type:    spec.SlideFlow,
				Title:   "How It Works",
				Content: fmt.Sprintf("The path a request takes through %s.", topic),
				Diagram: &spec.Diagram{
					Nodes: []string{"Request", "Validate", "Process", "Store", "Respond"},
					Edges: []spec.Edge{
						{From: "Request", To: "Validate"},
						{From: "Validate", To: "Process"},
						{From: "Process", To: "Store"},
						{From: "Store", To: "Respond"},
					},
				},
				Keywords: []string{topic, "flow"},
			},
			{
				Type:     spec.SlideSummary,
				Title:    "Summary",
				Content:  fmt.Sprintf("What we learned about %s. Where to dig deeper.", topic),
				Keywords: []string{topic, "summary"},
			},
		},
	}
	_ = slideCount // normalization pads or trims to the requested count
	return p, nil
}
