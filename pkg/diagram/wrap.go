package diagram

import "strings"

// Label text limits inside a node box.
const (
	// WrapChars is the per-line character budget for node labels.
	WrapChars = 18

	// MaxLabelLines caps the wrapped label height.
	MaxLabelLines = 3
)

// WrapLabel greedily wraps a label into at most MaxLabelLines lines of
// roughly WrapChars characters. Words longer than the budget occupy a line
// of their own rather than being split. An empty label yields a single
// empty line so renderers always have something to center.
func WrapLabel(label string) []string {
	return wrap(label, WrapChars, MaxLabelLines)
}

func wrap(text string, budget, maxLines int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := words[0]
	for _, w := range words[1:] {
		if len(current)+1+len(w) <= budget {
			current += " " + w
			continue
		}
		lines = append(lines, current)
		current = w
	}
	lines = append(lines, current)

	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
