// Package theme provides visual theme presets for deck and diagram rendering.
//
// A theme bundles the fonts and colors for slides plus the diagram style
// consumed by the renderers. Built-in presets cover the common deck looks;
// additional presets can be loaded from TOML files at startup.
package theme

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// RGB is an 8-bit-per-channel color.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color as a lowercase "#rrggbb" string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses a "#RRGGBB" (or "RRGGBB") color string.
func ParseHex(s string) (RGB, error) {
	v := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(v) != 6 {
		return RGB{}, fmt.Errorf("invalid hex color: %q", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(v, "%02x%02x%02x", &r, &g, &b); err != nil {
		return RGB{}, fmt.Errorf("invalid hex color: %q", s)
	}
	return RGB{R: r, G: g, B: b}, nil
}

// MarshalText implements encoding.TextMarshaler so colors serialize as hex
// strings in TOML and JSON.
func (c RGB) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *RGB) UnmarshalText(text []byte) error {
	parsed, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// mustHex parses a hex color or panics. Used only for built-in presets.
func mustHex(s string) RGB {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// DiagramStyle is the immutable style value consumed by diagram renderers.
// The renderers never mutate it.
type DiagramStyle struct {
	Background RGB
	NodeFill   RGB
	NodeLine   RGB
	Text       RGB
	FontFamily string
}

// Theme describes the full visual configuration of a deck.
type Theme struct {
	Name       string `toml:"name"`
	FontTitle  string `toml:"font_title"`
	FontBody   string `toml:"font_body"`
	Title      RGB    `toml:"title"`
	Body       RGB    `toml:"body"`
	Background RGB    `toml:"background"`
	Accent     RGB    `toml:"accent"`

	// Diagram styling, shared by all diagram render backends.
	DiagramNodeFill RGB `toml:"diagram_node_fill"`
	DiagramNodeLine RGB `toml:"diagram_node_line"`
	DiagramText     RGB `toml:"diagram_text"`
}

// Diagram returns the diagram style slice of the theme.
func (t Theme) Diagram() DiagramStyle {
	return DiagramStyle{
		Background: t.Background,
		NodeFill:   t.DiagramNodeFill,
		NodeLine:   t.DiagramNodeLine,
		Text:       t.DiagramText,
		FontFamily: t.FontBody,
	}
}

// DefaultName is the preset used when no theme is requested or the requested
// name is unknown.
const DefaultName = "Education Light"

var (
	presetsMu sync.RWMutex
	presets   = map[string]Theme{
		"Education Light": {
			Name:            "Education Light",
			FontTitle:       "Calibri",
			FontBody:        "Calibri",
			Title:           mustHex("#1F4E79"),
			Body:            mustHex("#333333"),
			Background:      mustHex("#FFFFFF"),
			Accent:          mustHex("#38BDF8"),
			DiagramNodeFill: mustHex("#EAF2FF"),
			DiagramNodeLine: mustHex("#4F81BD"),
			DiagramText:     mustHex("#1F375E"),
		},
		"Dark Tech": {
			Name:            "Dark Tech",
			FontTitle:       "Calibri",
			FontBody:        "Calibri",
			Title:           mustHex("#E6F0FF"),
			Body:            mustHex("#D1D5DB"),
			Background:      mustHex("#0B1220"),
			Accent:          mustHex("#22D3EE"),
			DiagramNodeFill: mustHex("#111827"),
			DiagramNodeLine: mustHex("#22D3EE"),
			DiagramText:     mustHex("#E5E7EB"),
		},
		"Corporate Blue": {
			Name:            "Corporate Blue",
			FontTitle:       "Calibri",
			FontBody:        "Calibri",
			Title:           mustHex("#0F2A43"),
			Body:            mustHex("#1F2937"),
			Background:      mustHex("#FFFFFF"),
			Accent:          mustHex("#2563EB"),
			DiagramNodeFill: mustHex("#EFF6FF"),
			DiagramNodeLine: mustHex("#2563EB"),
			DiagramText:     mustHex("#0F2A43"),
		},
		"Minimal": {
			Name:            "Minimal",
			FontTitle:       "Calibri",
			FontBody:        "Calibri",
			Title:           mustHex("#111827"),
			Body:            mustHex("#374151"),
			Background:      mustHex("#FFFFFF"),
			Accent:          mustHex("#6B7280"),
			DiagramNodeFill: mustHex("#FFFFFF"),
			DiagramNodeLine: mustHex("#6B7280"),
			DiagramText:     mustHex("#111827"),
		},
	}
)

// Get returns the preset with the given name, falling back to the default
// preset for empty or unknown names. Lookup never fails: callers downstream
// of spec normalization must always receive a usable theme.
func Get(name string) Theme {
	presetsMu.RLock()
	defer presetsMu.RUnlock()
	if t, ok := presets[strings.TrimSpace(name)]; ok {
		return t
	}
	return presets[DefaultName]
}

// Default returns the default preset.
func Default() Theme {
	return Get(DefaultName)
}

// Register adds or replaces a preset. Themes without a name are ignored.
func Register(t Theme) {
	if strings.TrimSpace(t.Name) == "" {
		return
	}
	presetsMu.Lock()
	defer presetsMu.Unlock()
	presets[t.Name] = t
}

// Names returns the sorted preset names.
func Names() []string {
	presetsMu.RLock()
	defer presetsMu.RUnlock()
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
