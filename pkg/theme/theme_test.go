package theme

import (
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    RGB
		wantErr bool
	}{
		{"with hash", "#4F81BD", RGB{0x4F, 0x81, 0xBD}, false},
		{"without hash", "ffffff", RGB{0xFF, 0xFF, 0xFF}, false},
		{"black", "#000000", RGB{0, 0, 0}, false},
		{"padded", "  #1F4E79 ", RGB{0x1F, 0x4E, 0x79}, false},
		{"too short", "#FFF", RGB{}, true},
		{"empty", "", RGB{}, true},
		{"garbage", "#zzzzzz", RGB{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	c := RGB{0x4F, 0x81, 0xBD}
	parsed, err := ParseHex(c.Hex())
	if err != nil {
		t.Fatalf("ParseHex(Hex()): %v", err)
	}
	if parsed != c {
		t.Errorf("round trip = %+v, want %+v", parsed, c)
	}
}

func TestGetFallsBackToDefault(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"known preset", "Dark Tech", "Dark Tech"},
		{"empty name", "", DefaultName},
		{"unknown name", "Vaporwave", DefaultName},
		{"padded known", "  Minimal  ", "Minimal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Get(tt.in); got.Name != tt.want {
				t.Errorf("Get(%q).Name = %q, want %q", tt.in, got.Name, tt.want)
			}
		})
	}
}

func TestDiagramStyle(t *testing.T) {
	th := Get("Dark Tech")
	ds := th.Diagram()

	if ds.Background != th.Background {
		t.Error("diagram background should come from theme background")
	}
	if ds.NodeLine != th.DiagramNodeLine {
		t.Error("diagram node line should come from theme diagram colors")
	}
	if ds.FontFamily != th.FontBody {
		t.Errorf("FontFamily = %q, want body font %q", ds.FontFamily, th.FontBody)
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	if len(names) < 4 {
		t.Fatalf("expected at least 4 built-in presets, got %d", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("Names() not sorted: %q > %q", names[i-1], names[i])
		}
	}
}

func TestLoadPresets(t *testing.T) {
	data := []byte(`
[[themes]]
name = "Night Owl"
font_title = "Calibri"
font_body = "Calibri"
title = "#E6F0FF"
body = "#D1D5DB"
background = "#0B1220"
accent = "#22D3EE"
diagram_node_fill = "#111827"
diagram_node_line = "#22D3EE"
diagram_text = "#E5E7EB"

[[themes]]
font_title = "Calibri"
`)

	n, err := Load(data)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if n != 1 {
		t.Errorf("Load registered %d themes, want 1 (unnamed entry skipped)", n)
	}

	got := Get("Night Owl")
	if got.Name != "Night Owl" {
		t.Fatalf("loaded theme not registered")
	}
	if got.Background.Hex() != "#0b1220" {
		t.Errorf("Background = %s, want #0b1220", got.Background.Hex())
	}
}

func TestLoadRejectsBadTOML(t *testing.T) {
	if _, err := Load([]byte("not [ valid toml")); err == nil {
		t.Error("expected error for invalid TOML")
	}
}
