package layertext

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/gogpu/layertext/text"
)

var (
	red  = RGB(1, 0, 0)
	blue = RGB(0, 0, 1)
)

// rectOutline returns a closed rectangle outline from (x0, y0) to (x1, y1).
func rectOutline(x0, y0, x1, y1 float32) *text.GlyphOutline {
	pt := func(x, y float32) [3]text.OutlinePoint {
		return [3]text.OutlinePoint{{X: x, Y: y}}
	}
	return &text.GlyphOutline{
		Segments: []text.OutlineSegment{
			{Op: text.OutlineOpMoveTo, Points: pt(x0, y0)},
			{Op: text.OutlineOpLineTo, Points: pt(x1, y0)},
			{Op: text.OutlineOpLineTo, Points: pt(x1, y1)},
			{Op: text.OutlineOpLineTo, Points: pt(x0, y1)},
			{Op: text.OutlineOpClose},
		},
		Bounds: text.Rect{MinX: float64(x0), MinY: float64(y0), MaxX: float64(x1), MaxY: float64(y1)},
	}
}

// opaque returns the premultiplied pixel value of an opaque color.
func opaque(c RGBA) color.RGBA {
	n := c.Color()
	return color.RGBA{R: n.R, G: n.G, B: n.B, A: 0xff}
}

func newTestCanvas(t *testing.T, w, h, scale float64) *Canvas {
	t.Helper()
	c, err := NewCanvas(w, h, scale)
	if err != nil {
		t.Fatalf("NewCanvas(%v, %v, %v) error = %v", w, h, scale, err)
	}
	return c
}

func TestNewCanvasSize(t *testing.T) {
	tests := []struct {
		name         string
		w, h, scale  float64
		wantW, wantH int
	}{
		{"integral", 20, 10, 1, 20, 10},
		{"rounds up", 20.2, 10.7, 1, 21, 11},
		{"scaled", 20.2, 10, 2, 41, 20},
		{"padding only", 0.3 * 80, 0.3 * 80, 1, 24, 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCanvas(t, tt.w, tt.h, tt.scale)
			if c.Width() != tt.wantW || c.Height() != tt.wantH {
				t.Errorf("size = %dx%d, want %dx%d", c.Width(), c.Height(), tt.wantW, tt.wantH)
			}
			if c.DeviceScale() != tt.scale {
				t.Errorf("DeviceScale = %v, want %v", c.DeviceScale(), tt.scale)
			}
		})
	}
}

func TestNewCanvasAllocationFailure(t *testing.T) {
	tests := []struct {
		name        string
		w, h, scale float64
	}{
		{"zero width", 0, 10, 1},
		{"negative height", 10, -1, 1},
		{"nan", math.NaN(), 10, 1},
		{"too large", 1e6, 10, 1},
		{"zero scale", 10, 10, 0},
		{"infinite scale", 10, 10, math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCanvas(tt.w, tt.h, tt.scale)
			if !errors.Is(err, ErrCanvasAllocation) {
				t.Errorf("error = %v, want ErrCanvasAllocation", err)
			}
			if c != nil {
				t.Error("canvas should be nil on failure")
			}
		})
	}
}

func TestCanvasFlipMapsOriginToBottomLeft(t *testing.T) {
	c := newTestCanvas(t, 30, 20, 2)
	c.Translate(0, 20)
	c.Scale(1, -1)

	m := c.Transform()
	if got := m.TransformPoint(Pt(0, 0)); got != Pt(0, 40) {
		t.Errorf("origin maps to %v, want (0, 40)", got)
	}
	if got := m.TransformPoint(Pt(30, 20)); got != Pt(60, 0) {
		t.Errorf("top-right maps to %v, want (60, 0)", got)
	}
}

func TestCanvasFillAliased(t *testing.T) {
	c := newTestCanvas(t, 20, 20, 1)
	c.SetAntialias(false)
	c.SetFillColor(red)

	if err := c.Fill(rectOutline(4, 4, 8, 8)); err != nil {
		t.Fatalf("Fill error = %v", err)
	}
	img := c.Image()

	if got := img.RGBAAt(4, 4); got != opaque(red) {
		t.Errorf("inside pixel = %v, want red", got)
	}
	if got := img.RGBAAt(7, 7); got != opaque(red) {
		t.Errorf("inside pixel = %v, want red", got)
	}
	if got := img.RGBAAt(8, 8); got != (color.RGBA{}) {
		t.Errorf("outside pixel = %v, want transparent", got)
	}
}

func TestCanvasAliasedFillHasHardEdges(t *testing.T) {
	triangle := &text.GlyphOutline{Segments: []text.OutlineSegment{
		{Op: text.OutlineOpMoveTo, Points: [3]text.OutlinePoint{{X: 0, Y: 0}}},
		{Op: text.OutlineOpLineTo, Points: [3]text.OutlinePoint{{X: 17, Y: 2}}},
		{Op: text.OutlineOpQuadTo, Points: [3]text.OutlinePoint{{X: 12, Y: 12}, {X: 3, Y: 19}}},
		{Op: text.OutlineOpClose},
	}}

	partial := func(antialias bool) int {
		c := newTestCanvas(t, 20, 20, 1)
		c.SetAntialias(antialias)
		c.SetFillColor(red)
		if err := c.Fill(triangle); err != nil {
			t.Fatalf("Fill error = %v", err)
		}
		img := c.Image()
		n := 0
		for y := 0; y < 20; y++ {
			for x := 0; x < 20; x++ {
				if a := img.RGBAAt(x, y).A; a != 0 && a != 0xff {
					n++
				}
			}
		}
		return n
	}

	if n := partial(false); n != 0 {
		t.Errorf("aliased fill produced %d partially covered pixels", n)
	}
	if n := partial(true); n == 0 {
		t.Error("antialiased fill produced no partial coverage")
	}
}

func TestCanvasShadowBeneathFill(t *testing.T) {
	c := newTestCanvas(t, 20, 20, 1)
	c.SetAntialias(false)
	c.SetFillColor(red)
	c.SetShadow(3, 3, 0, blue)

	if err := c.Fill(rectOutline(4, 4, 8, 8)); err != nil {
		t.Fatalf("Fill error = %v", err)
	}
	img := c.Image()

	tests := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"fill", 5, 5, opaque(red)},
		{"fill over shadow", 7, 7, opaque(red)},
		{"shadow only", 10, 10, opaque(blue)},
		{"shadow moves down", 5, 10, color.RGBA{}},
		{"untouched", 3, 3, color.RGBA{}},
	}
	for _, tt := range tests {
		if got := img.RGBAAt(tt.x, tt.y); got != tt.want {
			t.Errorf("%s: pixel (%d, %d) = %v, want %v", tt.name, tt.x, tt.y, got, tt.want)
		}
	}
}

func TestCanvasShadowScalesWithDevice(t *testing.T) {
	c := newTestCanvas(t, 10, 10, 2)
	c.SetAntialias(false)
	c.SetFillColor(red)
	c.SetShadow(2, 2, 0, blue)

	// Device rect (2,2)-(6,6); shadow offset 4 pixels.
	if err := c.Fill(rectOutline(1, 1, 3, 3)); err != nil {
		t.Fatalf("Fill error = %v", err)
	}
	img := c.Image()

	if got := img.RGBAAt(5, 5); got != opaque(red) {
		t.Errorf("fill pixel = %v, want red", got)
	}
	if got := img.RGBAAt(9, 9); got != opaque(blue) {
		t.Errorf("shadow pixel = %v, want blue", got)
	}
	if got := img.RGBAAt(10, 10); got != (color.RGBA{}) {
		t.Errorf("beyond shadow = %v, want transparent", got)
	}
}

func TestCanvasShadowIgnoresTransform(t *testing.T) {
	c := newTestCanvas(t, 20, 20, 1)
	c.Translate(0, 20)
	c.Scale(1, -1)
	c.SetAntialias(false)
	c.SetFillColor(red)
	c.SetShadow(3, 3, 0, blue)

	// User rect (4,4)-(8,8) lands on device rows 12..15.
	if err := c.Fill(rectOutline(4, 4, 8, 8)); err != nil {
		t.Fatalf("Fill error = %v", err)
	}
	img := c.Image()

	if got := img.RGBAAt(10, 18); got != opaque(blue) {
		t.Errorf("shadow pixel = %v, want blue below and right of the fill", got)
	}
	if got := img.RGBAAt(10, 9); got != (color.RGBA{}) {
		t.Errorf("pixel above the fill = %v, want transparent", got)
	}
}

func TestCanvasBlurredShadowSpreads(t *testing.T) {
	c := newTestCanvas(t, 30, 30, 1)
	c.SetAntialias(false)
	c.SetFillColor(red)
	c.SetShadow(2, 2, 4, blue)

	if err := c.Fill(rectOutline(10, 10, 16, 16)); err != nil {
		t.Fatalf("Fill error = %v", err)
	}
	img := c.Image()

	got := img.RGBAAt(20, 13)
	if got.A == 0 || got.A == 0xff {
		t.Errorf("blurred edge alpha = %d, want partial", got.A)
	}
	if got.R != 0 || got.B == 0 {
		t.Errorf("blurred edge = %v, want shadow color only", got)
	}
}

func TestCanvasFillEmptyOutline(t *testing.T) {
	c := newTestCanvas(t, 10, 10, 1)
	c.SetFillColor(red)

	for _, o := range []*text.GlyphOutline{nil, {}} {
		if err := c.Fill(o); err != nil {
			t.Errorf("Fill(empty) error = %v", err)
		}
	}
	img := c.Image()
	for i, v := range img.Pix {
		if v != 0 {
			t.Fatalf("Pix[%d] = %d, want untouched canvas", i, v)
		}
	}
}

func TestCanvasFillOffCanvas(t *testing.T) {
	c := newTestCanvas(t, 10, 10, 1)
	c.SetFillColor(red)

	if err := c.Fill(rectOutline(50, 50, 60, 60)); err != nil {
		t.Errorf("Fill off canvas error = %v", err)
	}
	if err := c.Fill(rectOutline(-5, -5, 2, 2)); err != nil {
		t.Errorf("Fill partly off canvas error = %v", err)
	}
	img := c.Image()
	if got := img.RGBAAt(0, 0); got != opaque(red) {
		t.Errorf("clipped fill pixel = %v, want red", got)
	}
}

func TestCanvasFillAfterImage(t *testing.T) {
	c := newTestCanvas(t, 10, 10, 1)
	first := c.Image()

	if err := c.Fill(rectOutline(0, 0, 5, 5)); !errors.Is(err, ErrCanvasFinalized) {
		t.Errorf("Fill after Image error = %v, want ErrCanvasFinalized", err)
	}
	if c.Image() != first {
		t.Error("Image returned a different image on the second call")
	}
}

func TestCanvasScopedRestoresState(t *testing.T) {
	c := newTestCanvas(t, 10, 10, 1)
	c.SetFillColor(red)
	before := c.state

	err := c.Scoped(func() error {
		c.Translate(3, 4)
		c.SetFillColor(blue)
		c.SetShadow(2, 2, 4, blue)
		c.SetAntialias(false)
		return nil
	})
	if err != nil {
		t.Fatalf("Scoped error = %v", err)
	}
	if c.state != before {
		t.Errorf("state = %+v, want %+v", c.state, before)
	}
	if len(c.stack) != 0 {
		t.Errorf("stack depth = %d, want 0", len(c.stack))
	}
}

func TestCanvasScopedReturnsError(t *testing.T) {
	c := newTestCanvas(t, 10, 10, 1)
	want := errors.New("boom")

	if err := c.Scoped(func() error { return want }); !errors.Is(err, want) {
		t.Errorf("Scoped error = %v, want %v", err, want)
	}
}

func TestCanvasScopedRestoresAfterPanic(t *testing.T) {
	c := newTestCanvas(t, 10, 10, 1)
	before := c.Transform()

	func() {
		defer func() {
			if recover() == nil {
				t.Error("panic was not propagated")
			}
		}()
		_ = c.Scoped(func() error {
			c.Translate(5, 5)
			c.SetAntialias(false)
			panic("paint failed")
		})
	}()

	if c.Transform() != before {
		t.Errorf("transform = %+v, want %+v", c.Transform(), before)
	}
	if !c.Antialias() {
		t.Error("antialias not restored after panic")
	}
}

func TestCanvasPopEmptyStack(t *testing.T) {
	c := newTestCanvas(t, 10, 10, 1)
	c.Translate(1, 1)
	c.Pop()
	if got := c.Transform(); got != Translate(1, 1) {
		t.Errorf("transform = %+v, want unchanged", got)
	}
}

func TestCanvasShadowState(t *testing.T) {
	c := newTestCanvas(t, 10, 10, 1)
	if _, ok := c.Shadow(); ok {
		t.Error("new canvas has a shadow")
	}

	c.SetShadow(2, 2, 4, color.NRGBA{R: 255, A: 255})
	s, ok := c.Shadow()
	if !ok || s.OffsetX != 2 || s.OffsetY != 2 || s.Blur != 4 || s.Color != red {
		t.Errorf("Shadow() = %+v, %v", s, ok)
	}

	c.ClearShadow()
	if _, ok := c.Shadow(); ok {
		t.Error("ClearShadow left a shadow set")
	}
}
