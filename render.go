package layertext

import (
	"image"
	"image/color"

	"github.com/gogpu/layertext/text"
)

// Render draws s on one line with face and returns the layered image.
//
// Every glyph is painted three times, Back, Middle and Front, each with
// its own offset, fill color and drop shadow, and with antialiasing off.
// All three passes of a glyph finish before the next glyph starts. The
// Front layer uses textColor; the other layers use the colors set by
// WithBackColor and WithMiddleColor.
//
// The canvas is the measured line size plus 0.3 times the point size in
// each dimension, with the baseline on its bottom edge. An empty string
// yields a transparent canvas of that padding alone. Render returns
// ErrNilFace for a nil face and ErrCanvasAllocation, with no image, when
// the canvas cannot be created.
//
// Render is deterministic: identical inputs produce identical pixels.
func Render(s string, face text.Face, textColor color.Color, opts ...Option) (*image.RGBA, error) {
	if face == nil {
		return nil, ErrNilFace
	}
	o := newOptions(opts)
	log := Logger()

	pointSize := face.Size()
	width, height := text.Measure(s, face, o.shaper)
	size := canvasSize(width, height, pointSize)

	c, err := NewCanvas(size.X, size.Y, o.scale)
	if err != nil {
		return nil, err
	}
	// Origin at the bottom-left, Y up, for the whole line.
	c.Translate(0, size.Y)
	c.Scale(1, -1)

	log.Debug("layertext: canvas",
		"text", s,
		"pointSize", pointSize,
		"width", c.Width(),
		"height", c.Height(),
		"scale", o.scale,
	)

	if s == "" {
		return c.Image(), nil
	}

	layers := Layers(pointSize, FromColor(textColor), o.back, o.middle)
	painted, skipped := 0, 0
	for i, run := range o.shaper.Shape(s, face) {
		if _, ok := run.ResolvedFace(); !ok {
			log.Debug("layertext: skipping run without face", "run", i, "glyphs", len(run.Glyphs))
			skipped += len(run.Glyphs)
			continue
		}
		for _, g := range run.Glyphs {
			if g.Outline.IsEmpty() {
				log.Debug("layertext: skipping glyph without outline", "gid", g.GID, "cluster", g.Cluster)
				skipped++
				continue
			}
			if err := paintGlyph(c, g, layers); err != nil {
				return nil, err
			}
			painted++
		}
	}

	log.Debug("layertext: rendered", "glyphs", painted, "skipped", skipped)
	return c.Image(), nil
}

// paintGlyph paints the layers of g at its position. The canvas state is
// unchanged on return.
func paintGlyph(c *Canvas, g text.ShapedGlyph, layers [3]LayerSpec) error {
	return c.Scoped(func() error {
		c.Translate(g.X, g.Y)
		for _, l := range layers {
			outline := g.Outline
			if l.Connect {
				outline = ConnectOutline(outline)
			}
			if err := paintLayer(c, outline, l); err != nil {
				return err
			}
		}
		return nil
	})
}

func paintLayer(c *Canvas, outline *text.GlyphOutline, l LayerSpec) error {
	return c.Scoped(func() error {
		c.Translate(l.Offset.X, l.Offset.Y)
		c.SetAntialias(false)
		c.SetShadow(l.Shadow.OffsetX, l.Shadow.OffsetY, l.Shadow.Blur, l.Shadow.Color)
		c.SetFillColor(l.Fill)
		return c.Fill(outline)
	})
}
