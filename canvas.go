package layertext

import (
	"fmt"
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/layertext/internal/filter"
	"github.com/gogpu/layertext/internal/path"
	"github.com/gogpu/layertext/internal/raster"
	"github.com/gogpu/layertext/text"
)

// maxCanvasDimension is the largest width or height in pixels NewCanvas
// will allocate.
const maxCanvasDimension = 1 << 14

// sizeEpsilon absorbs float error when converting a point size to pixels.
const sizeEpsilon = 1e-9

// Shadow describes a drop shadow drawn beneath every fill.
// Offsets and blur are in base-space units (points): they scale with the
// device scale but ignore the current transform. The offset runs +x right
// and +y down on the output image.
type Shadow struct {
	OffsetX, OffsetY float64
	Blur             float64
	Color            RGBA
}

// canvasState is the paint state saved by Push and restored by Pop.
type canvasState struct {
	matrix    Matrix
	fill      RGBA
	shadow    Shadow
	hasShadow bool
	antialias bool
}

// Canvas is a raster surface that fills glyph outlines with a solid color
// and an optional drop shadow.
//
// A Canvas is sized in points. Its base transform maps one point to
// scale device pixels with the origin at the top-left corner; Translate
// and Scale compose onto the current transform.
//
// Canvas is not safe for concurrent use.
type Canvas struct {
	img       *image.RGBA
	scale     float64
	state     canvasState
	stack     []canvasState
	rast      *raster.Rasterizer
	finalized bool
}

// NewCanvas creates a transparent canvas of width x height points rendered
// at scale device pixels per point. The pixel size is the point size times
// scale, rounded up. It returns ErrCanvasAllocation if the surface would be
// empty or larger than 16384 pixels in either dimension.
func NewCanvas(width, height, scale float64) (*Canvas, error) {
	if !(scale > 0) || math.IsInf(scale, 0) {
		return nil, fmt.Errorf("%w: invalid scale %v", ErrCanvasAllocation, scale)
	}

	w := math.Ceil(width*scale - sizeEpsilon)
	h := math.Ceil(height*scale - sizeEpsilon)
	if !(w >= 1 && h >= 1) || w > maxCanvasDimension || h > maxCanvasDimension {
		return nil, fmt.Errorf("%w: %gx%g points at scale %g", ErrCanvasAllocation, width, height, scale)
	}

	return &Canvas{
		img:   image.NewRGBA(image.Rect(0, 0, int(w), int(h))),
		scale: scale,
		state: canvasState{
			matrix:    Scale(scale, scale),
			fill:      Black,
			antialias: true,
		},
		rast: raster.NewRasterizer(),
	}, nil
}

// Width returns the width of the canvas in pixels.
func (c *Canvas) Width() int {
	return c.img.Rect.Dx()
}

// Height returns the height of the canvas in pixels.
func (c *Canvas) Height() int {
	return c.img.Rect.Dy()
}

// DeviceScale returns the number of device pixels per point.
func (c *Canvas) DeviceScale() float64 {
	return c.scale
}

// Transform returns the current transformation matrix, which maps user
// space to device pixels.
func (c *Canvas) Transform() Matrix {
	return c.state.matrix
}

// Translate applies a translation transformation.
func (c *Canvas) Translate(x, y float64) {
	c.state.matrix = c.state.matrix.Multiply(Translate(x, y))
}

// Scale applies a scaling transformation.
func (c *Canvas) Scale(x, y float64) {
	c.state.matrix = c.state.matrix.Multiply(Scale(x, y))
}

// SetFillColor sets the color used by Fill.
func (c *Canvas) SetFillColor(col color.Color) {
	c.state.fill = FromColor(col)
}

// SetShadow enables a drop shadow for subsequent fills.
func (c *Canvas) SetShadow(dx, dy, blur float64, col color.Color) {
	c.state.shadow = Shadow{OffsetX: dx, OffsetY: dy, Blur: blur, Color: FromColor(col)}
	c.state.hasShadow = true
}

// ClearShadow disables the drop shadow.
func (c *Canvas) ClearShadow() {
	c.state.shadow = Shadow{}
	c.state.hasShadow = false
}

// Shadow returns the current shadow and whether one is set.
func (c *Canvas) Shadow() (Shadow, bool) {
	return c.state.shadow, c.state.hasShadow
}

// SetAntialias enables or disables antialiasing for subsequent fills.
// With antialiasing off a pixel is either fully covered or untouched.
func (c *Canvas) SetAntialias(on bool) {
	c.state.antialias = on
}

// Antialias reports whether antialiasing is enabled.
func (c *Canvas) Antialias() bool {
	return c.state.antialias
}

// Push saves the current paint state onto a stack.
func (c *Canvas) Push() {
	c.stack = append(c.stack, c.state)
}

// Pop restores the last saved paint state. Pop on an empty stack does
// nothing.
func (c *Canvas) Pop() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// Scoped runs fn between Push and Pop. The state is restored when fn
// returns or panics.
func (c *Canvas) Scoped(fn func() error) error {
	c.Push()
	defer c.Pop()
	return fn()
}

// Fill fills the outline with the current fill color using the non-zero
// winding rule. When a shadow is set, the shadow is composited first and
// the fill is drawn over it. An empty outline paints nothing.
func (c *Canvas) Fill(o *text.GlyphOutline) error {
	if c.finalized {
		return ErrCanvasFinalized
	}
	if o.IsEmpty() {
		return nil
	}

	edges := path.Edges(c.devicePath(o))
	minX, minY, maxX, maxY, ok := path.Bounds(edges)
	if !ok {
		return nil
	}

	area := image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	)

	var shadow *filter.DropShadow
	reach := c.img.Rect
	if c.state.hasShadow && c.state.shadow.Color.A > 0 {
		s := c.state.shadow
		shadow = filter.NewDropShadow(s.OffsetX*c.scale, s.OffsetY*c.scale, s.Blur/2*c.scale)
		// Source pixels whose shadow can land on the canvas.
		reach = reach.Union(c.img.Rect.Sub(shadow.Offset()).Inset(-filter.KernelRadius(shadow.Sigma)))
	}
	area = area.Intersect(reach)
	if area.Empty() {
		return nil
	}

	mask := image.NewAlpha(area)
	if c.state.antialias {
		c.rast.FillAA(mask, edges, raster.FillRuleNonZero)
	} else {
		c.rast.Fill(mask, edges, raster.FillRuleNonZero)
	}

	if shadow != nil {
		c.composite(shadow.Apply(mask), c.state.shadow.Color)
	}
	c.composite(mask, c.state.fill)
	return nil
}

// Image finalizes the canvas and returns its pixels. Further fills return
// ErrCanvasFinalized; Image keeps returning the same image.
func (c *Canvas) Image() *image.RGBA {
	c.finalized = true
	return c.img
}

// composite draws col through mask onto the canvas with source-over.
func (c *Canvas) composite(mask *image.Alpha, col RGBA) {
	r := mask.Rect.Intersect(c.img.Rect)
	if r.Empty() || col.A <= 0 {
		return
	}
	xdraw.DrawMask(c.img, r, image.NewUniform(col.Color()), image.Point{}, mask, r.Min, xdraw.Over)
}

// devicePath transforms the outline into device-space path elements.
// Segments with an unknown operation are skipped.
func (c *Canvas) devicePath(o *text.GlyphOutline) []path.PathElement {
	m := c.state.matrix
	pt := func(p text.OutlinePoint) path.Point {
		q := m.TransformPoint(Point{X: float64(p.X), Y: float64(p.Y)})
		return path.Point{X: q.X, Y: q.Y}
	}

	elements := make([]path.PathElement, 0, len(o.Segments))
	for _, seg := range o.Segments {
		switch seg.Op {
		case text.OutlineOpMoveTo:
			elements = append(elements, path.MoveTo{Point: pt(seg.Points[0])})
		case text.OutlineOpLineTo:
			elements = append(elements, path.LineTo{Point: pt(seg.Points[0])})
		case text.OutlineOpQuadTo:
			elements = append(elements, path.QuadTo{
				Control: pt(seg.Points[0]),
				Point:   pt(seg.Points[1]),
			})
		case text.OutlineOpCubicTo:
			elements = append(elements, path.CubicTo{
				Control1: pt(seg.Points[0]),
				Control2: pt(seg.Points[1]),
				Point:    pt(seg.Points[2]),
			})
		case text.OutlineOpClose:
			elements = append(elements, path.Close{})
		}
	}
	return elements
}
