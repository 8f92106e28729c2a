package source

import (
	"context"
	"os"

	"deckflow/pkg/errors"
	"deckflow/pkg/spec"
)

// File reads a deck spec from a JSON file on disk, for rendering decks
// authored by hand or captured from a previous run.
type File struct {
	Path string
}

// NewFile returns a source reading from path.
func NewFile(path string) *File { return &File{Path: path} }

// Generate implements [Source]. The topic and slide count are ignored;
// the file's content is authoritative and normalization reconciles it
// with the requested count afterwards.
func (f *File) Generate(_ context.Context, _ string, _ int) (*spec.Presentation, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "spec file %s", f.Path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read spec file %s", f.Path)
	}
	return spec.Decode(data)
}
