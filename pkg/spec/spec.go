// Package spec defines the presentation document model and the repair
// pipeline that turns untrusted, possibly malformed deck specs into
// structurally valid ones.
//
// Documents arrive from external generators (a language-model client or the
// offline generator in pkg/source) and are treated as hostile input: fields
// may be missing, edges may reference unknown nodes, slide counts may be
// wrong. [Normalize] is the single recovery point; after it returns, the
// five structural invariants checked by [CheckInvariants] hold.
package spec

import (
	"encoding/json"
)

// SlideType is the structural role of a slide.
type SlideType string

// Slide roles.
const (
	SlideIntro   SlideType = "intro"
	SlideProcess SlideType = "process"
	SlideFlow    SlideType = "flow"
	SlideSummary SlideType = "summary"
)

// Valid reports whether the role is one of the four known slide roles.
func (t SlideType) Valid() bool {
	switch t {
	case SlideIntro, SlideProcess, SlideFlow, SlideSummary:
		return true
	}
	return false
}

// Edge is a directed edge between two diagram nodes, referenced by label.
// The wire format is a 2-element JSON array: ["source", "destination"].
type Edge struct {
	From string
	To   string
}

// MarshalJSON serializes the edge as a 2-element array.
func (e Edge) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{e.From, e.To})
}

// UnmarshalJSON accepts a JSON array and takes its first two string
// elements. Anything else yields a zero edge rather than an error: edges
// are untrusted input, and a zero edge is dropped downstream when its
// endpoints fail node lookup.
func (e *Edge) UnmarshalJSON(data []byte) error {
	*e = Edge{}
	var parts []any
	if err := json.Unmarshal(data, &parts); err != nil {
		return nil
	}
	if len(parts) < 2 {
		return nil
	}
	from, okF := parts[0].(string)
	to, okT := parts[1].(string)
	if !okF || !okT {
		return nil
	}
	e.From = from
	e.To = to
	return nil
}

// Diagram describes a flow diagram: ordered node labels plus directed
// edges referencing nodes by label.
//
// Labels are display strings, not identities: the layout engine assigns
// each node its list index as the stable identity, and an edge label
// resolves to the first index carrying it. Two nodes sharing a label are
// both placed and rendered, but edges can only address the first.
type Diagram struct {
	Nodes []string `json:"nodes"`
	Edges []Edge   `json:"edges,omitempty"`
}

// Slide is one slide of a presentation.
type Slide struct {
	Type     SlideType `json:"type"`
	Title    string    `json:"title"`
	Content  string    `json:"content"`
	Keywords []string  `json:"keywords,omitempty"`

	// Optional structured image intent. Queries are derived by pkg/plan;
	// no image retrieval happens in this repository.
	ImageQuery   string `json:"image_query,omitempty"`
	ImageAlt     string `json:"image_alt,omitempty"`
	ImageSubject string `json:"image_subject,omitempty"`
	ImageSetting string `json:"image_setting,omitempty"`
	ImageStyle   string `json:"image_style,omitempty"`

	// Optional layout preference and emphasis hints from the generator.
	LayoutPreference string `json:"layout_preference,omitempty"`
	Emphasis         string `json:"emphasis,omitempty"`

	// Diagram is only meaningful when Type is SlideFlow.
	Diagram *Diagram `json:"diagram,omitempty"`
}

// Presentation is a deck: a title plus an ordered, non-empty slide list.
// Invariants are enforced by Normalize, not by construction.
type Presentation struct {
	Title  string  `json:"title"`
	Slides []Slide `json:"slides"`
}

// Clone returns a deep copy. Normalize works on a clone so callers keep
// their input untouched.
func (p *Presentation) Clone() *Presentation {
	if p == nil {
		return nil
	}
	out := &Presentation{Title: p.Title, Slides: make([]Slide, len(p.Slides))}
	for i, s := range p.Slides {
		out.Slides[i] = cloneSlide(s)
	}
	return out
}

func cloneSlide(s Slide) Slide {
	if s.Keywords != nil {
		s.Keywords = append([]string(nil), s.Keywords...)
	}
	if s.Diagram != nil {
		d := Diagram{
			Nodes: append([]string(nil), s.Diagram.Nodes...),
		}
		if s.Diagram.Edges != nil {
			d.Edges = append([]Edge(nil), s.Diagram.Edges...)
		}
		s.Diagram = &d
	}
	return s
}

// Marshal serializes a presentation as indented JSON.
func Marshal(p *Presentation) ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}
