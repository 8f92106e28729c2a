// Package diagram computes flow-diagram geometry: a grid placement for
// nodes, anchor-to-anchor routes for edges, and a fit scale mapping the
// grid onto a target viewport.
//
// The package is pure geometry. It knows nothing about output formats;
// the renderers in pkg/diagram/render consume its results.
package diagram

import "deckflow/pkg/spec"

// Grid geometry constants, in layout units.
const (
	PadX = 100
	PadY = 110

	HGap = 80
	VGap = 90

	BoxW   = 320
	BoxH   = 110
	Corner = 18
)

// Box is one placed node: its grid cell, pixel origin, and display label.
// Index is the node's identity; labels may repeat.
type Box struct {
	Index int
	Label string

	Row, Col int
	X, Y     float64
}

// Point is a position in layout units.
type Point struct {
	X, Y float64
}

// Grid is the placed diagram: boxes in node order plus the overall extent
// the placement needs before any viewport fitting.
type Grid struct {
	Boxes []Box

	Cols, Rows int

	// Width and Height are the extent of the placement including padding.
	Width, Height float64
}

// maxPerRow returns the row capacity for a node count: small diagrams stay
// on a single row, medium ones wrap at three, large ones at four.
func maxPerRow(n int) int {
	switch {
	case n <= 4:
		if n < 1 {
			return 1
		}
		return n
	case n <= 6:
		return 3
	default:
		return 4
	}
}

// Layout places nodes on the grid. Placement is by list index: node i goes
// to row i/perRow, column i%perRow. The result is deterministic and every
// node gets a distinct cell, labels notwithstanding.
func Layout(nodes []string) Grid {
	perRow := maxPerRow(len(nodes))

	cols := len(nodes)
	if cols > perRow {
		cols = perRow
	}
	if cols < 1 {
		cols = 1
	}
	rows := (len(nodes) + perRow - 1) / perRow
	if rows < 1 {
		rows = 1
	}

	g := Grid{
		Boxes: make([]Box, len(nodes)),
		Cols:  cols,
		Rows:  rows,
	}
	for i, label := range nodes {
		row := i / perRow
		col := i % perRow
		g.Boxes[i] = Box{
			Index: i,
			Label: label,
			Row:   row,
			Col:   col,
			X:     float64(PadX + col*(BoxW+HGap)),
			Y:     float64(PadY + row*(BoxH+VGap)),
		}
	}

	g.Width = float64(2*PadX + cols*BoxW + (cols-1)*HGap)
	g.Height = float64(2*PadY + rows*BoxH + (rows-1)*VGap)
	return g
}

// FitScale returns the uniform scale mapping the grid into a width×height
// viewport. Diagrams smaller than the viewport are not scaled up.
func (g Grid) FitScale(width, height float64) float64 {
	if g.Width <= 0 || g.Height <= 0 {
		return 1
	}
	s := width / g.Width
	if v := height / g.Height; v < s {
		s = v
	}
	if s > 1 {
		return 1
	}
	return s
}

// Route is one drawable edge: the resolved endpoint indices and the anchor
// points the connector runs between.
type Route struct {
	From, To int
	Start    Point
	End      Point
}

// Diagnostics reports edges the router had to discard. Dropped edges are
// not an error; the caller decides whether to log them.
type Diagnostics struct {
	Dropped []spec.Edge
}

// Routes resolves edges against the grid and computes their anchors.
//
// Endpoints are matched by label to the FIRST box carrying that label.
// Edges whose endpoints cannot both be resolved are dropped and reported
// in Diagnostics. Anchor choice depends on index order:
//
//   - forward (from < to): right middle of the source to left middle of
//     the destination
//   - backward (from > to): left middle of the source to right middle of
//     the destination
//   - self (from == to): bottom middle to top middle
func (g Grid) Routes(edges []spec.Edge) ([]Route, Diagnostics) {
	byLabel := make(map[string]int, len(g.Boxes))
	for _, b := range g.Boxes {
		if _, seen := byLabel[b.Label]; !seen {
			byLabel[b.Label] = b.Index
		}
	}

	var routes []Route
	var diag Diagnostics
	for _, e := range edges {
		from, okF := byLabel[e.From]
		to, okT := byLabel[e.To]
		if !okF || !okT {
			diag.Dropped = append(diag.Dropped, e)
			continue
		}
		src, dst := g.Boxes[from], g.Boxes[to]

		var r Route
		r.From, r.To = from, to
		switch {
		case from < to:
			r.Start = Point{X: src.X + BoxW, Y: src.Y + BoxH/2}
			r.End = Point{X: dst.X, Y: dst.Y + BoxH/2}
		case from > to:
			r.Start = Point{X: src.X, Y: src.Y + BoxH/2}
			r.End = Point{X: dst.X + BoxW, Y: dst.Y + BoxH/2}
		default:
			r.Start = Point{X: src.X + BoxW/2, Y: src.Y + BoxH}
			r.End = Point{X: dst.X + BoxW/2, Y: dst.Y}
		}
		routes = append(routes, r)
	}
	return routes, diag
}
