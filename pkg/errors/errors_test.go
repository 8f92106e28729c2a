package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "without cause",
			err:  New(ErrCodeInvalidTopic, "topic too short: %q", "a"),
			want: `INVALID_TOPIC: topic too short: "a"`,
		},
		{
			name: "with cause",
			err:  Wrap(ErrCodeInternal, fmt.Errorf("disk full"), "write artifact"),
			want: "INTERNAL_ERROR: write artifact: disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeInvalidFormat, "bad format")
	if !Is(err, ErrCodeInvalidFormat) {
		t.Error("Is should match the error's own code")
	}
	if Is(err, ErrCodeInternal) {
		t.Error("Is should not match a different code")
	}
	if Is(fmt.Errorf("plain"), ErrCodeInternal) {
		t.Error("Is should not match plain errors")
	}

	wrapped := fmt.Errorf("outer: %w", err)
	if !Is(wrapped, ErrCodeInvalidFormat) {
		t.Error("Is should unwrap to find the code")
	}
}

func TestUnwrap(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := Wrap(ErrCodeInternal, cause, "context")
	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeInvalidTheme, "unknown theme")); got != "unknown theme" {
		t.Errorf("UserMessage() = %q, want message without code", got)
	}
	if got := UserMessage(fmt.Errorf("plain error")); got != "plain error" {
		t.Errorf("UserMessage() = %q for plain error", got)
	}
}

func TestValidateTopic(t *testing.T) {
	tests := []struct {
		name    string
		topic   string
		wantErr bool
	}{
		{"valid", "Photosynthesis", false},
		{"valid with spaces", "  customer onboarding  ", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"single char", "x", true},
		{"control chars", "topic\x00name", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTopic(tt.topic)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTopic(%q) error = %v, wantErr %v", tt.topic, err, tt.wantErr)
			}
		})
	}
}

func TestValidateSlideCount(t *testing.T) {
	tests := []struct {
		n       int
		wantErr bool
	}{
		{3, false},
		{6, false},
		{15, false},
		{2, true},
		{16, true},
		{0, true},
		{-1, true},
	}

	for _, tt := range tests {
		err := ValidateSlideCount(tt.n)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateSlideCount(%d) error = %v, wantErr %v", tt.n, err, tt.wantErr)
		}
	}
}

func TestValidateOutputName(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"deck.svg", false},
		{"slide-3.png", false},
		{"", true},
		{"a/b.svg", true},
		{`a\b.svg`, true},
		{"../escape.svg", true},
	}

	for _, tt := range tests {
		err := ValidateOutputName(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateOutputName(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}
