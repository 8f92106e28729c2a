package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"deckflow/pkg/errors"
)

// DOT renders frames as Graphviz DOT text. The exporter reuses the
// frame's resolved routes, so edges dropped by the router are absent from
// the DOT output too, and duplicate labels keep their index identity
// through the node ids.
type DOT struct{}

// NewDOT returns the DOT backend.
func NewDOT() *DOT { return &DOT{} }

// Render implements [Renderer]. It never fails; the error is always nil.
func (d *DOT) Render(f Frame) ([]byte, error) {
	return []byte(ToDOT(f)), nil
}

// ToDOT converts a frame to Graphviz DOT format. Graphviz does its own
// layout; only the node set, labels, edges, and theme colors carry over.
func ToDOT(f Frame) string {
	var buf bytes.Buffer
	buf.WriteString("digraph flow {\n")
	buf.WriteString("  rankdir=LR;\n")
	fmt.Fprintf(&buf, "  bgcolor=%q;\n", f.Style.Background.Hex())
	fmt.Fprintf(&buf, "  node [shape=box, style=\"rounded,filled\", fillcolor=%q, color=%q, fontcolor=%q, fontsize=24, margin=\"0.25,0.15\"];\n",
		f.Style.NodeFill.Hex(), f.Style.NodeLine.Hex(), f.Style.Text.Hex())
	fmt.Fprintf(&buf, "  edge [color=%q, penwidth=2];\n", f.Style.NodeLine.Hex())
	buf.WriteString("\n")

	for i, b := range f.Grid.Boxes {
		fmt.Fprintf(&buf, "  n%d [label=%q];\n", b.Index, strings.Join(f.Labels[i], "\n"))
	}

	buf.WriteString("\n")
	for _, rt := range f.Routes {
		fmt.Fprintf(&buf, "  n%d -> n%d;\n", rt.From, rt.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// GraphvizSVG renders DOT text to SVG using the embedded Graphviz engine.
func GraphvizSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render DOT")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the Graphviz svg tag so the document scales
// with its container instead of carrying fixed pt dimensions.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
