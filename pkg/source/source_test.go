package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"deckflow/pkg/errors"
	"deckflow/pkg/spec"
)

func TestOfflineGeneratesRepairableDeck(t *testing.T) {
	raw, err := NewOffline().Generate(context.Background(), "Load Balancing", 6)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if raw.Title != "Load Balancing" {
		t.Errorf("Title = %q", raw.Title)
	}

	normalized, synthetic := spec.Normalize(raw, "Load Balancing", 6)
	if synthetic {
		t.Error("offline deck should be repairable, not replaced")
	}
	if err := spec.CheckInvariants(&normalized, 6); err != nil {
		t.Errorf("normalized offline deck: %v", err)
	}
}

func TestOfflineIsDeterministic(t *testing.T) {
	ctx := context.Background()
	a, _ := NewOffline().Generate(ctx, "Topic", 5)
	b, _ := NewOffline().Generate(ctx, "Topic", 5)
	if a.Title != b.Title || len(a.Slides) != len(b.Slides) {
		t.Error("offline generator should be deterministic")
	}
	for i := range a.Slides {
		if a.Slides[i].Content != b.Slides[i].Content {
			t.Errorf("slide %d content differs between runs", i)
		}
	}
}

func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deck.json")
	data := []byte(`{"title":"From Disk","slides":[{"type":"intro","title":"a","content":"x"}]}`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := NewFile(path).Generate(context.Background(), "ignored", 0)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if p.Title != "From Disk" {
		t.Errorf("Title = %q, want %q", p.Title, "From Disk")
	}
}

func TestFileSourceMissingFile(t *testing.T) {
	_, err := NewFile(filepath.Join(t.TempDir(), "nope.json")).Generate(context.Background(), "", 0)
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error code = %q, want FILE_NOT_FOUND", errors.GetCode(err))
	}
}

func TestFileSourceBadContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deck.json")
	if err := os.WriteFile(path, []byte("not json at all"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := NewFile(path).Generate(context.Background(), "", 0)
	if !errors.Is(err, errors.ErrCodeInvalidSpecFile) {
		t.Errorf("error code = %q, want INVALID_SPEC_FILE", errors.GetCode(err))
	}
}
