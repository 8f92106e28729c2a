package spec

import (
	"encoding/json"
	"strings"

	"deckflow/pkg/errors"
)

// Decode parses a presentation spec from raw generator output.
//
// Model output is frequently wrapped in markdown fences or commentary, so
// decoding first extracts the outermost JSON object from the text. Decode
// returns an error only when no parseable object exists at all; callers
// pass the nil result to Normalize, which falls back to the synthetic deck.
func Decode(data []byte) (*Presentation, error) {
	text, err := ExtractJSONObject(string(data))
	if err != nil {
		return nil, err
	}

	var p Presentation
	if err := json.Unmarshal([]byte(text), &p); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidSpecFile, err, "decode presentation spec")
	}
	return &p, nil
}

// ExtractJSONObject returns the outermost {...} block of text.
// Text that already is a JSON object is returned as-is.
func ExtractJSONObject(text string) (string, error) {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "{") && strings.HasSuffix(text, "}") {
		return text, nil
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end <= start {
		return "", errors.New(errors.ErrCodeInvalidSpecFile, "no JSON object found in input")
	}
	return text[start : end+1], nil
}
