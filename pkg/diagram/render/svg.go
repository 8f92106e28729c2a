package render

import (
	"bytes"
	"fmt"
	"strings"

	"deckflow/pkg/diagram"
)

// Text metrics for node labels, in layout units.
const (
	fontSize   = 34
	lineHeight = 40
)

// Edge and outline stroke width, in layout units.
const strokeWidth = 4

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

// WithoutBackground omits the background rect, for embedding the diagram
// into a surface that paints its own background.
func WithoutBackground() SVGOption { return func(r *svgRenderer) { r.background = false } }

// WithMarkerID overrides the arrowhead marker id. Needed when several
// diagrams are inlined into one SVG document and ids must not collide.
func WithMarkerID(id string) SVGOption { return func(r *svgRenderer) { r.markerID = id } }

type svgRenderer struct {
	background bool
	markerID   string
}

// SVG renders frames as standalone SVG documents.
type SVG struct {
	opts []SVGOption
}

// NewSVG returns the native SVG backend.
func NewSVG(opts ...SVGOption) *SVG { return &SVG{opts: opts} }

// Render implements [Renderer]. It never fails; the error is always nil.
func (s *SVG) Render(f Frame) ([]byte, error) {
	return RenderSVG(f, s.opts...), nil
}

// RenderSVG draws a frame as an SVG document.
//
// The drawing happens in layout units; the viewBox maps them onto the
// pixel viewport at the frame's fit scale, so oversized grids shrink
// uniformly and small ones render 1:1. Paint order is background, edges,
// node boxes, labels, so connectors pass under the boxes they join.
func RenderSVG(f Frame, opts ...SVGOption) []byte {
	r := svgRenderer{background: true, markerID: "arrow"}
	for _, opt := range opts {
		opt(&r)
	}

	scale := f.Scale
	if scale <= 0 {
		scale = 1
	}
	viewW := f.Width / scale
	viewH := f.Height / scale

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`+"\n",
		viewW, viewH, f.Width, f.Height)

	if r.background {
		fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%.2f" height="%.2f" fill="%s"/>`+"\n",
			viewW, viewH, f.Style.Background.Hex())
	}

	fmt.Fprintf(&buf, "  <defs>\n")
	fmt.Fprintf(&buf, `    <marker id="%s" markerWidth="12" markerHeight="12" refX="10" refY="6" orient="auto" markerUnits="userSpaceOnUse">`+"\n", r.markerID)
	fmt.Fprintf(&buf, `      <path d="M0,0 L12,6 L0,12 Z" fill="%s"/>`+"\n", f.Style.NodeLine.Hex())
	fmt.Fprintf(&buf, "    </marker>\n  </defs>\n")

	for _, rt := range f.Routes {
		fmt.Fprintf(&buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%d" opacity="0.85" marker-end="url(#%s)"/>`+"\n",
			rt.Start.X, rt.Start.Y, rt.End.X, rt.End.Y, f.Style.NodeLine.Hex(), strokeWidth, r.markerID)
	}

	for _, b := range f.Grid.Boxes {
		fmt.Fprintf(&buf, `  <rect x="%.1f" y="%.1f" width="%d" height="%d" rx="%d" fill="%s" stroke="%s" stroke-width="%d"/>`+"\n",
			b.X, b.Y, diagram.BoxW, diagram.BoxH, diagram.Corner, f.Style.NodeFill.Hex(), f.Style.NodeLine.Hex(), strokeWidth)
	}

	for i, b := range f.Grid.Boxes {
		renderLabel(&buf, f, b, f.Labels[i])
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderLabel(buf *bytes.Buffer, f Frame, b diagram.Box, lines []string) {
	cx := b.X + diagram.BoxW/2
	startY := b.Y + diagram.BoxH/2 - float64(len(lines)-1)*lineHeight/2 + fontSize/3

	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-family="%s" font-size="%d" fill="%s" text-anchor="middle">`+"\n",
		cx, startY, escapeXML(f.Style.FontFamily), fontSize, f.Style.Text.Hex())
	for j, ln := range lines {
		dy := 0
		if j > 0 {
			dy = lineHeight
		}
		fmt.Fprintf(buf, `    <tspan x="%.1f" dy="%d">%s</tspan>`+"\n", cx, dy, escapeXML(ln))
	}
	buf.WriteString("  </text>\n")
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}
