package theme

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// presetFile is the on-disk TOML shape for custom theme presets:
//
//	[[themes]]
//	name = "Night Owl"
//	font_title = "Calibri"
//	font_body = "Calibri"
//	title = "#E6F0FF"
//	body = "#D1D5DB"
//	background = "#0B1220"
//	accent = "#22D3EE"
//	diagram_node_fill = "#111827"
//	diagram_node_line = "#22D3EE"
//	diagram_text = "#E5E7EB"
type presetFile struct {
	Themes []Theme `toml:"themes"`
}

// LoadFile reads theme presets from a TOML file and registers each of them.
// Missing colors default to zero (black); a missing name skips the entry.
// Returns the number of themes registered.
func LoadFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return Load(data)
}

// Load parses TOML preset data and registers each named theme.
func Load(data []byte) (int, error) {
	var f presetFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return 0, fmt.Errorf("parse theme presets: %w", err)
	}
	n := 0
	for _, t := range f.Themes {
		if t.Name == "" {
			continue
		}
		Register(t)
		n++
	}
	return n, nil
}
