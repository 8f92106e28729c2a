package spec

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Bullet list bounds for process and summary slides.
const (
	MaxBullets   = 8
	MaxBulletLen = 120

	// BulletPrefix is the normalized bullet marker.
	BulletPrefix = "- "
)

// Validate checks the basic document shape: a title, at least one slide,
// known slide roles, and non-empty diagram node lists where a diagram is
// present. It does not check the normalization invariants; see
// CheckInvariants for those.
func (p Presentation) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.Required),
		validation.Field(&p.Slides, validation.Required, validation.Length(1, 0), validation.By(validSlides)),
	)
}

func validSlides(value any) error {
	slides, _ := value.([]Slide)
	for i, s := range slides {
		if !s.Type.Valid() {
			return fmt.Errorf("slide %d: unknown role %q", i, s.Type)
		}
		if s.Diagram != nil && len(s.Diagram.Nodes) == 0 {
			return fmt.Errorf("slide %d: diagram without nodes", i)
		}
	}
	return nil
}

// CheckInvariants verifies the five structural invariants a normalized
// presentation must satisfy for the requested slide count:
//
//  1. exactly slideCount slides
//  2. the first slide is an intro
//  3. the last slide is a summary
//  4. at least one flow slide carries a non-nil diagram
//  5. every process/summary slide's content is a hyphen-bulleted list of
//     at most MaxBullets lines, each at most MaxBulletLen characters
func CheckInvariants(p *Presentation, slideCount int) error {
	if p == nil {
		return fmt.Errorf("nil presentation")
	}
	if err := p.Validate(); err != nil {
		return err
	}
	if len(p.Slides) != slideCount {
		return fmt.Errorf("slide count = %d, want %d", len(p.Slides), slideCount)
	}
	if p.Slides[0].Type != SlideIntro {
		return fmt.Errorf("first slide role = %q, want intro", p.Slides[0].Type)
	}
	if p.Slides[len(p.Slides)-1].Type != SlideSummary {
		return fmt.Errorf("last slide role = %q, want summary", p.Slides[len(p.Slides)-1].Type)
	}

	hasFlow := false
	for i, s := range p.Slides {
		if s.Type == SlideFlow && s.Diagram != nil && len(s.Diagram.Nodes) > 0 {
			hasFlow = true
		}
		if s.Type == SlideProcess || s.Type == SlideSummary {
			if err := checkBulletList(s.Content); err != nil {
				return fmt.Errorf("slide %d: %w", i, err)
			}
		}
	}
	if !hasFlow {
		return fmt.Errorf("no flow slide with a diagram")
	}
	return nil
}

func checkBulletList(content string) error {
	lines := strings.Split(content, "\n")
	if len(lines) > MaxBullets {
		return fmt.Errorf("bullet list has %d lines, max %d", len(lines), MaxBullets)
	}
	for _, ln := range lines {
		if !strings.HasPrefix(ln, BulletPrefix) {
			return fmt.Errorf("line %q is not hyphen-bulleted", ln)
		}
		if len(ln) > MaxBulletLen {
			return fmt.Errorf("bullet exceeds %d characters", MaxBulletLen)
		}
	}
	return nil
}
