// Package fonts resolves TrueType fonts for raster rendering.
//
// Themes name fonts by family (Calibri, Montserrat, ...) but raster output
// needs an actual font file. Resolve searches the system font directories
// for the requested family and falls back through a list of widely
// installed faces. SVG output does not use this package; it names families
// in CSS and lets the viewer substitute.
package fonts

import (
	"strings"
	"sync"

	"github.com/flopp/go-findfont"
)

// fallbacks are tried in order when the requested family is not installed.
var fallbacks = []string{
	"DejaVuSans.ttf",
	"Arial.ttf",
	"Helvetica.ttf",
	"LiberationSans-Regular.ttf",
	"FreeSans.ttf",
}

var (
	mu    sync.Mutex
	cache = map[string]string{}
)

// Resolve returns the path of a TTF file for the given font family, or an
// empty string when neither the family nor any fallback is installed.
// Results are cached per family.
func Resolve(family string) string {
	mu.Lock()
	defer mu.Unlock()

	if p, ok := cache[family]; ok {
		return p
	}

	candidates := make([]string, 0, len(fallbacks)+1)
	if f := strings.TrimSpace(family); f != "" {
		candidates = append(candidates, strings.ReplaceAll(f, " ", "")+".ttf")
	}
	candidates = append(candidates, fallbacks...)

	var path string
	for _, name := range candidates {
		if p, err := findfont.Find(name); err == nil {
			path = p
			break
		}
	}
	cache[family] = path
	return path
}
