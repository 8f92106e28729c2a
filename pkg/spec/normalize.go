package spec

import (
	"fmt"
	"strings"
)

// minSlides is the smallest deck the invariants permit: intro, one interior
// slide for the flow diagram, and summary.
const minSlides = 3

// Normalize repairs an untrusted presentation into one satisfying the
// structural invariants of CheckInvariants. It is a total function: any
// input, including nil, yields a valid deck, falling back to the synthetic
// deck when repair is impossible. The returned flag reports that fallback.
//
// Normalize never mutates its input and is idempotent: normalizing an
// already-normalized deck returns it unchanged.
//
// slideCount below the supported minimum is clamped; the invariants need
// room for an intro, a summary, and one interior flow slide.
func Normalize(p *Presentation, topic string, slideCount int) (Presentation, bool) {
	if slideCount < minSlides {
		slideCount = minSlides
	}

	if p == nil || len(p.Slides) == 0 {
		return Synthetic(topic, slideCount), true
	}

	out := p.Clone()

	// Enforce count by truncating, or padding with simple process slides.
	if len(out.Slides) > slideCount {
		out.Slides = out.Slides[:slideCount]
	}
	for len(out.Slides) < slideCount {
		out.Slides = append(out.Slides, paddingSlide(len(out.Slides), topic))
	}

	// First slide is the intro; role reassignment only.
	if out.Slides[0].Type != SlideIntro {
		out.Slides[0].Type = SlideIntro
	}

	// Last slide is the summary. The title override only applies when the
	// role was wrong, so a deck that already ends in a summary keeps its own
	// title.
	last := len(out.Slides) - 1
	if out.Slides[last].Type != SlideSummary {
		out.Slides[last].Type = SlideSummary
		out.Slides[last].Title = "Summary"
	}

	// Bullet coercion for process and summary slides.
	for i, s := range out.Slides {
		if s.Type != SlideProcess && s.Type != SlideSummary {
			continue
		}
		out.Slides[i].Content = CoerceBullets(s.Content)
	}

	// Guarantee a flow slide with a diagram, placed near the midpoint but
	// never on the first or last slide.
	if !hasFlowDiagram(out.Slides) {
		mid := len(out.Slides) / 2
		if mid > len(out.Slides)-2 {
			mid = len(out.Slides) - 2
		}
		if mid < 1 {
			mid = 1
		}
		out.Slides[mid].Type = SlideFlow
		out.Slides[mid].Title = "Process Flow"
		out.Slides[mid].Diagram = templateDiagram()
	}

	if out.Title == "" {
		out.Title = topic
	}

	// Re-validate; if even the repaired deck is broken, discard it.
	if err := CheckInvariants(out, slideCount); err != nil {
		return Synthetic(topic, slideCount), true
	}
	return *out, false
}

func hasFlowDiagram(slides []Slide) bool {
	for _, s := range slides {
		if s.Type == SlideFlow && s.Diagram != nil && len(s.Diagram.Nodes) > 0 {
			return true
		}
	}
	return false
}

// paddingSlide builds the templated process slide appended when a deck is
// shorter than requested. idx is the slide's position in the deck.
func paddingSlide(idx int, topic string) Slide {
	return Slide{
		Type:     SlideProcess,
		Title:    fmt.Sprintf("Step %d", idx),
		Content:  placeholderBullets,
		Keywords: []string{topic, "steps", "process", "overview"},
	}
}

const placeholderBullets = "- Key point\n- Key point\n- Key point\n- Key point"

// templateDiagram is the fixed linear diagram injected when a deck has no
// flow slide.
func templateDiagram() *Diagram {
	nodes := []string{"Input", "Step 1", "Step 2", "Output", "Result"}
	edges := make([]Edge, 0, len(nodes)-1)
	for i := 0; i < len(nodes)-1; i++ {
		edges = append(edges, Edge{From: nodes[i], To: nodes[i+1]})
	}
	return &Diagram{Nodes: nodes, Edges: edges}
}

// CoerceBullets turns free-form slide content into a bounded hyphen-bulleted
// list:
//
//   - multi-line content is kept line by line
//   - single-line content is split on sentence-terminating periods when that
//     yields at least two fragments (capped at 6)
//   - otherwise the whole content becomes a single bullet
//
// Every surviving line is trimmed, prefixed with "- ", truncated to
// MaxBulletLen characters, and the list is capped at MaxBullets lines.
// Empty content yields the placeholder list.
func CoerceBullets(content string) string {
	text := strings.TrimSpace(content)
	if text == "" {
		text = placeholderBullets
	}

	if !strings.Contains(text, "\n") && !strings.HasPrefix(text, BulletPrefix) {
		parts := splitSentences(text)
		if len(parts) >= 2 {
			if len(parts) > 6 {
				parts = parts[:6]
			}
			bulleted := make([]string, len(parts))
			for i, p := range parts {
				bulleted[i] = BulletPrefix + p
			}
			text = strings.Join(bulleted, "\n")
		} else {
			text = BulletPrefix + text
		}
	}

	var fixed []string
	for _, ln := range strings.Split(text, "\n") {
		ln = strings.TrimSpace(ln)
		if ln == "" {
			continue
		}
		ln = strings.ReplaceAll(ln, "• ", BulletPrefix)
		if !strings.HasPrefix(ln, BulletPrefix) {
			ln = BulletPrefix + ln
		}
		if r := []rune(ln); len(r) > MaxBulletLen {
			ln = string(r[:MaxBulletLen])
		}
		fixed = append(fixed, ln)
		if len(fixed) == MaxBullets {
			break
		}
	}
	return strings.Join(fixed, "\n")
}

// splitSentences splits single-line text on periods, dropping empty
// fragments and stray bullet glyphs.
func splitSentences(text string) []string {
	cleaned := strings.ReplaceAll(text, "•", "")
	var parts []string
	for _, p := range strings.Split(cleaned, ".") {
		p = strings.TrimSpace(p)
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}
