package render

import (
	"bytes"
	"math"

	"github.com/fogleman/gg"

	"deckflow/pkg/diagram"
	"deckflow/pkg/errors"
	"deckflow/pkg/fonts"
	"deckflow/pkg/theme"
)

// Arrowhead dimensions in layout units, matching the SVG marker.
const (
	arrowLen  = 12
	arrowHalf = 6
)

// Shape renders frames as PNG images by drawing primitive shapes.
//
// Geometry is multiplied by the frame's fit scale so the diagram lands
// inside the pixel viewport; line widths, corner radii, and font sizes
// scale with it.
type Shape struct{}

// NewShape returns the raster backend.
func NewShape() *Shape { return &Shape{} }

// Render implements [Renderer].
func (s *Shape) Render(f Frame) ([]byte, error) {
	dc := gg.NewContext(int(f.Width), int(f.Height))

	scale := f.Scale
	if scale <= 0 {
		scale = 1
	}

	setRGB(dc, f.Style.Background)
	dc.Clear()

	drawEdges(dc, f, scale)
	drawBoxes(dc, f, scale)
	drawLabels(dc, f, scale)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode diagram PNG")
	}
	return buf.Bytes(), nil
}

func drawEdges(dc *gg.Context, f Frame, scale float64) {
	for _, rt := range f.Routes {
		x1, y1 := rt.Start.X*scale, rt.Start.Y*scale
		x2, y2 := rt.End.X*scale, rt.End.Y*scale

		dx, dy := x2-x1, y2-y1
		if math.Abs(dx)+math.Abs(dy) < 1 {
			continue
		}

		setRGBA(dc, f.Style.NodeLine, 0.85)
		dc.SetLineWidth(strokeWidth * scale)
		dc.DrawLine(x1, y1, x2, y2)
		dc.Stroke()

		drawArrowhead(dc, f.Style.NodeLine, x2, y2, math.Atan2(dy, dx), scale)
	}
}

// drawArrowhead fills a triangle with its tip at (x,y), rotated to the
// edge angle.
func drawArrowhead(dc *gg.Context, c theme.RGB, x, y, angle, scale float64) {
	length := arrowLen * scale
	half := arrowHalf * scale

	sin, cos := math.Sincos(angle)
	bx, by := x-length*cos, y-length*sin
	px, py := -sin*half, cos*half

	setRGB(dc, c)
	dc.MoveTo(x, y)
	dc.LineTo(bx+px, by+py)
	dc.LineTo(bx-px, by-py)
	dc.ClosePath()
	dc.Fill()
}

func drawBoxes(dc *gg.Context, f Frame, scale float64) {
	for _, b := range f.Grid.Boxes {
		x, y := b.X*scale, b.Y*scale
		w, h := diagram.BoxW*scale, diagram.BoxH*scale

		setRGB(dc, f.Style.NodeFill)
		dc.DrawRoundedRectangle(x, y, w, h, diagram.Corner*scale)
		dc.Fill()

		setRGB(dc, f.Style.NodeLine)
		dc.SetLineWidth(strokeWidth * scale)
		dc.DrawRoundedRectangle(x, y, w, h, diagram.Corner*scale)
		dc.Stroke()
	}
}

func drawLabels(dc *gg.Context, f Frame, scale float64) {
	if path := fonts.Resolve(f.Style.FontFamily); path != "" {
		// Point size tracks the scaled layout font; errors leave the
		// context's built-in face in place.
		_ = dc.LoadFontFace(path, fontSize*scale)
	}

	setRGB(dc, f.Style.Text)
	for i, b := range f.Grid.Boxes {
		lines := f.Labels[i]
		cx := (b.X + diagram.BoxW/2) * scale
		cy := (b.Y + diagram.BoxH/2) * scale

		startY := cy - float64(len(lines)-1)*lineHeight*scale/2
		for j, ln := range lines {
			dc.DrawStringAnchored(ln, cx, startY+float64(j)*lineHeight*scale, 0.5, 0.5)
		}
	}
}

func setRGB(dc *gg.Context, c theme.RGB) {
	dc.SetRGB(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255)
}

func setRGBA(dc *gg.Context, c theme.RGB, a float64) {
	dc.SetRGBA(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255, a)
}
