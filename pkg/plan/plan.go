// Package plan decides how each slide of a normalized deck is presented:
// which layout template it uses and what image search query, if any, a
// downstream asset fetcher should run for it.
//
// Planning is pure and deterministic. It consumes a presentation that has
// already been through spec.Normalize and never fails.
package plan

import "deckflow/pkg/spec"

// Layout names the slide templates a renderer can realize.
type Layout string

const (
	LayoutTitleFullImage Layout = "title_full_image"
	LayoutImageLeftText  Layout = "image_left_text_right"
	LayoutDiagramCenter  Layout = "diagram_center"
	LayoutBullets        Layout = "bullets"
)

// maxQueryTerms caps how many title and keyword terms feed an image query.
const maxQueryTerms = 6

// SlidePlan is the presentation decision for one slide.
type SlidePlan struct {
	Index  int    `json:"index"`
	Layout Layout `json:"layout"`

	// ImageQuery is empty when the slide needs no image: flow slides
	// center their diagram and bullets slides stay clean text.
	ImageQuery string `json:"image_query,omitempty"`
	ImageAlt   string `json:"image_alt,omitempty"`
}

// Build plans every slide of a deck.
func Build(p *spec.Presentation) []SlidePlan {
	plans := make([]SlidePlan, len(p.Slides))
	for i, s := range p.Slides {
		plans[i] = planSlide(i, s)
	}
	return plans
}

func planSlide(idx int, s spec.Slide) SlidePlan {
	sp := SlidePlan{Index: idx, Layout: layoutFor(s), ImageAlt: s.ImageAlt}
	// Only image layouts carry a query; bullet and diagram slides need none.
	if sp.Layout != LayoutDiagramCenter && sp.Layout != LayoutBullets {
		sp.ImageQuery = imageQuery(s)
	}
	if sp.ImageAlt == "" && sp.ImageQuery != "" {
		sp.ImageAlt = s.Title
	}
	return sp
}

func layoutFor(s spec.Slide) Layout {
	// An explicit generator preference wins when it names a known layout.
	switch Layout(s.LayoutPreference) {
	case LayoutTitleFullImage, LayoutImageLeftText, LayoutDiagramCenter, LayoutBullets:
		if s.Type != spec.SlideFlow {
			return Layout(s.LayoutPreference)
		}
	}

	switch s.Type {
	case spec.SlideIntro:
		return LayoutTitleFullImage
	case spec.SlideFlow:
		return LayoutDiagramCenter
	case spec.SlideSummary:
		if s.ImageQuery != "" {
			return LayoutImageLeftText
		}
		return LayoutBullets
	default:
		return LayoutImageLeftText
	}
}

// imageQuery derives a search query for a slide, preferring the most
// explicit intent available:
//
//  1. a verbatim image_query from the generator
//  2. the structured subject / setting / style triple
//  3. the slide title plus deduplicated keywords, capped at maxQueryTerms
//     terms and suffixed by a role-specific hint
func imageQuery(s spec.Slide) string {
	if s.ImageQuery != "" {
		return s.ImageQuery
	}

	if s.ImageSubject != "" {
		q := s.ImageSubject
		if s.ImageSetting != "" {
			q += " " + s.ImageSetting
		}
		if s.ImageStyle != "" {
			q += " " + s.ImageStyle
		}
		return q
	}

	terms := make([]string, 0, maxQueryTerms)
	seen := make(map[string]bool)
	for _, t := range append([]string{s.Title}, s.Keywords...) {
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		terms = append(terms, t)
		if len(terms) == maxQueryTerms {
			break
		}
	}

	q := ""
	for i, t := range terms {
		if i > 0 {
			q += " "
		}
		q += t
	}

	switch s.Type {
	case spec.SlideIntro:
		return q + " abstract background"
	case spec.SlideProcess:
		return q + " business workflow"
	default:
		return q + " workflow"
	}
}
