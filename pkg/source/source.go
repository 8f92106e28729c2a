// Package source produces raw presentation specs for the pipeline.
//
// A Source returns UNTRUSTED output: decks may have wrong slide counts,
// missing roles, or broken diagrams. The pipeline always passes the result
// through spec.Normalize before doing anything with it, so sources are free
// to return whatever their backing medium contains.
package source

import (
	"context"

	"deckflow/pkg/spec"
)

// Source generates a raw deck spec for a topic.
type Source interface {
	// Generate returns a raw presentation. A nil presentation with a nil
	// error is valid and means "nothing produced"; normalization turns it
	// into the synthetic fallback deck.
	Generate(ctx context.Context, topic string, slideCount int) (*spec.Presentation, error)
}
