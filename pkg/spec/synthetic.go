package spec

import "fmt"

// Synthetic builds the deterministic fallback deck used when an incoming
// spec cannot be repaired. The result already satisfies every invariant for
// the given slide count, so normalizing it again is a no-op.
//
// slideCount below the supported minimum is clamped, mirroring Normalize.
func Synthetic(topic string, slideCount int) Presentation {
	if slideCount < minSlides {
		slideCount = minSlides
	}

	slides := []Slide{{
		Type:     SlideIntro,
		Title:    topic,
		Content:  fmt.Sprintf("An overview of %s: what it is, how it works, and why it matters.", topic),
		Keywords: []string{topic, "introduction", "overview"},
	}}

	// The three-slide deck has no room for anything but the flow.
	if slideCount >= 4 {
		slides = append(slides, Slide{
			Type:     SlideProcess,
			Title:    "Core Components",
			Content:  "The main building blocks. Each component plays a distinct role. Together they form the complete system.",
			Keywords: []string{topic, "components", "architecture"},
		})
	}

	slides = append(slides, Slide{
		Type:    SlideFlow,
		Title:   "End-to-End Flow",
		Content: fmt.Sprintf("How data moves through %s from start to finish.", topic),
		Diagram: &Diagram{
			Nodes: []string{"Start", "Input", "Process", "Decision", "Output", "End"},
			Edges: []Edge{
				{From: "Start", To: "Input"},
				{From: "Input", To: "Process"},
				{From: "Process", To: "Decision"},
				{From: "Decision", To: "Output"},
				{From: "Output", To: "End"},
			},
		},
		Keywords: []string{topic, "flow", "diagram"},
	})

	// Pad with templated process slides, keeping room for the summary.
	for len(slides) < slideCount-1 {
		slides = append(slides, paddingSlide(len(slides), topic))
	}

	slides = append(slides, Slide{
		Type:     SlideSummary,
		Title:    "Summary",
		Content:  fmt.Sprintf("Key takeaways about %s. The essentials covered in this deck. Where to go next.", topic),
		Keywords: []string{topic, "summary", "takeaways"},
	})

	// Bullet-coerce up front so the deck is a fixed point of Normalize.
	for i, s := range slides {
		if s.Type == SlideProcess || s.Type == SlideSummary {
			slides[i].Content = CoerceBullets(s.Content)
		}
	}

	return Presentation{
		Title:  topic,
		Slides: slides,
	}
}
