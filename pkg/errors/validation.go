package errors

import (
	"strings"
	"unicode"
)

// Request bounds for deck generation. The lower slide bound leaves room for
// the forced intro and summary slides plus at least one content slide.
const (
	MinTopicLen   = 2
	MinSlideCount = 3
	MaxSlideCount = 15
)

// ValidateTopic validates a deck topic for safety and usefulness.
// Topics end up in file names and search queries, so control characters
// are rejected outright.
func ValidateTopic(topic string) error {
	trimmed := strings.TrimSpace(topic)
	if trimmed == "" {
		return New(ErrCodeInvalidTopic, "topic cannot be empty")
	}
	if len(trimmed) < MinTopicLen {
		return New(ErrCodeInvalidTopic, "topic too short (min %d characters)", MinTopicLen)
	}
	if len(trimmed) > 256 {
		return New(ErrCodeInvalidTopic, "topic too long (max 256 characters)")
	}
	for _, r := range trimmed {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidTopic, "topic contains invalid control characters")
		}
	}
	return nil
}

// ValidateSlideCount validates a requested slide count.
func ValidateSlideCount(n int) error {
	if n < MinSlideCount || n > MaxSlideCount {
		return New(ErrCodeInvalidSlideCount, "slide count must be between %d and %d", MinSlideCount, MaxSlideCount)
	}
	return nil
}

// ValidateOutputName validates an artifact file name component.
// It ensures the name is a simple basename without path components.
func ValidateOutputName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "output name cannot be empty")
	}
	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidInput, "output name cannot contain path separators")
	}
	if strings.Contains(name, "..") {
		return New(ErrCodeInvalidInput, "output name cannot contain path traversal sequences (..)")
	}
	return nil
}
