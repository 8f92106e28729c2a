package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"deckflow/pkg/pipeline"
)

func testCLI() *CLI {
	return New(io.Discard, LogInfo)
}

func TestGenerateCommand(t *testing.T) {
	dir := t.TempDir()

	root := testCLI().RootCommand()
	root.SetArgs([]string{"generate", "Photosynthesis", "--no-cache", "-o", dir, "-f", "svg,json", "-n", "5"})
	if err := root.Execute(); err != nil {
		t.Fatalf("generate: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var svg, deckJSON bool
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".svg") {
			svg = true
		}
		if strings.HasSuffix(e.Name(), "deck.json") {
			deckJSON = true
		}
		if !strings.HasPrefix(e.Name(), "photosynthesis-") {
			t.Errorf("artifact %q not prefixed with topic slug", e.Name())
		}
	}
	if !svg || !deckJSON {
		t.Errorf("missing artifacts, got %v", entries)
	}
}

func TestGenerateCommandRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"topic too short", []string{"generate", "x", "--no-cache"}},
		{"bad slide count", []string{"generate", "Topic", "--no-cache", "-n", "99"}},
		{"bad format", []string{"generate", "Topic", "--no-cache", "-f", "gif"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := testCLI().RootCommand()
			root.SetArgs(tt.args)
			if err := root.Execute(); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	specPath := filepath.Join(dir, "deck.json")
	data := `{"title":"Stored Deck","slides":[
		{"type":"intro","title":"a","content":"x"},
		{"type":"flow","title":"f","content":"","diagram":{"nodes":["A","B"],"edges":[["A","B"]]}},
		{"type":"summary","title":"s","content":"- done"}
	]}`
	if err := os.WriteFile(specPath, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	out := t.TempDir()
	root := testCLI().RootCommand()
	root.SetArgs([]string{"render", specPath, "--no-cache", "-o", out})
	if err := root.Execute(); err != nil {
		t.Fatalf("render: %v", err)
	}

	entries, _ := os.ReadDir(out)
	if len(entries) != 1 || !strings.HasSuffix(entries[0].Name(), "slide-1.svg") {
		t.Errorf("entries = %v, want one SVG for the flow slide", entries)
	}
}

func TestNormalizeCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "rough.json")
	out := filepath.Join(dir, "clean.json")
	data := `{"title":"T","slides":[
		{"type":"process","title":"a","content":"x"},
		{"type":"process","title":"b","content":"y"},
		{"type":"process","title":"c","content":"One. Two. Three."}
	]}`
	if err := os.WriteFile(in, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	root := testCLI().RootCommand()
	root.SetArgs([]string{"normalize", in, "-o", out})
	if err := root.Execute(); err != nil {
		t.Fatalf("normalize: %v", err)
	}

	cleaned, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`"intro"`, `"flow"`, `"summary"`, "- One"} {
		if !strings.Contains(string(cleaned), want) {
			t.Errorf("normalized output missing %s", want)
		}
	}
}

func TestExecutePipelineLogsElapsed(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, LogInfo)
	ctx := withLogger(context.Background(), logger)

	runner := pipeline.NewRunner(nil, nil, logger)
	defer runner.Close()

	result, err := executePipeline(ctx, runner, pipeline.Options{
		Topic:   "Caching Strategies",
		Formats: []string{pipeline.FormatSVG},
		Logger:  logger,
	})
	if err != nil {
		t.Fatalf("executePipeline: %v", err)
	}
	if len(result.Artifacts) == 0 {
		t.Fatal("no artifacts rendered")
	}
	if !strings.Contains(buf.String(), "Rendered") {
		t.Error("elapsed-time log line missing")
	}
}

func TestThemesCommand(t *testing.T) {
	root := testCLI().RootCommand()
	root.SetArgs([]string{"themes"})
	if err := root.Execute(); err != nil {
		t.Fatalf("themes: %v", err)
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Photosynthesis", "photosynthesis"},
		{"How DNS Works!", "how-dns-works"},
		{"  spaced   out  ", "spaced-out"},
		{"***", ""},
	}

	for _, tt := range tests {
		if got := slugify(tt.in); got != tt.want {
			t.Errorf("slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
