// Package render turns computed diagram geometry into output artifacts.
//
// Every backend consumes the same [Frame], produced once per diagram by
// [Build]: the native SVG writer, the raster shape backend, and the
// Graphviz DOT exporter all draw identical node placements and edge
// routes, differing only in output format.
package render

import (
	"deckflow/pkg/diagram"
	"deckflow/pkg/spec"
	"deckflow/pkg/theme"
)

// Default viewport, in pixels.
const (
	DefaultWidth  = 1600
	DefaultHeight = 900
)

// Frame is a fully resolved diagram ready to draw: placed boxes, routed
// edges, pre-wrapped labels, the color style, and the target viewport.
type Frame struct {
	Grid   diagram.Grid
	Routes []diagram.Route
	Diag   diagram.Diagnostics

	// Labels holds the wrapped label lines for each box, index-aligned
	// with Grid.Boxes.
	Labels [][]string

	Style theme.DiagramStyle

	// Viewport size in pixels.
	Width, Height float64

	// Scale maps layout units into the viewport; see [diagram.Grid.FitScale].
	Scale float64
}

// Build computes the frame for a diagram. A nil diagram yields an empty
// frame that renderers draw as a bare background.
func Build(d *spec.Diagram, width, height float64, style theme.DiagramStyle) Frame {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	var nodes []string
	var edges []spec.Edge
	if d != nil {
		nodes = d.Nodes
		edges = d.Edges
	}

	grid := diagram.Layout(nodes)
	routes, diag := grid.Routes(edges)

	labels := make([][]string, len(grid.Boxes))
	for i, b := range grid.Boxes {
		labels[i] = diagram.WrapLabel(b.Label)
	}

	return Frame{
		Grid:   grid,
		Routes: routes,
		Diag:   diag,
		Labels: labels,
		Style:  style,
		Width:  width,
		Height: height,
		Scale:  grid.FitScale(width, height),
	}
}

// Renderer draws a frame into one output format.
type Renderer interface {
	Render(f Frame) ([]byte, error)
}
