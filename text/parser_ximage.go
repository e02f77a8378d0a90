package text

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ximageParser implements FontParser using golang.org/x/image/font/opentype.
type ximageParser struct{}

func (p *ximageParser) Parse(data []byte) (ParsedFont, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return &ximageParsedFont{font: f}, nil
}

// ximageParsedFont implements ParsedFont and OutlineSource using sfnt.Font.
// sfnt.Buffer is not safe for concurrent use, so each call allocates its own.
type ximageParsedFont struct {
	font *sfnt.Font
}

func (f *ximageParsedFont) Name() string {
	if name, err := f.font.Name(nil, sfnt.NameIDFamily); err == nil {
		return name
	}
	return ""
}

func (f *ximageParsedFont) FullName() string {
	if name, err := f.font.Name(nil, sfnt.NameIDFull); err == nil {
		return name
	}
	return ""
}

func (f *ximageParsedFont) NumGlyphs() int {
	return f.font.NumGlyphs()
}

func (f *ximageParsedFont) UnitsPerEm() int {
	return int(f.font.UnitsPerEm())
}

func (f *ximageParsedFont) GlyphIndex(r rune) uint16 {
	idx, err := f.font.GlyphIndex(nil, r)
	if err != nil {
		return 0
	}
	return uint16(idx)
}

// GlyphAdvance is unhinted so that advances match outline geometry.
func (f *ximageParsedFont) GlyphAdvance(glyphIndex uint16, size float64) float64 {
	var buf sfnt.Buffer
	advance, err := f.font.GlyphAdvance(&buf, sfnt.GlyphIndex(glyphIndex), floatToFixed(size), font.HintingNone)
	if err != nil {
		return 0
	}
	return fixedToFloat(advance)
}

// GlyphBounds returns bounds in glyph space (Y up).
func (f *ximageParsedFont) GlyphBounds(glyphIndex uint16, size float64) Rect {
	var buf sfnt.Buffer
	bounds, _, err := f.font.GlyphBounds(&buf, sfnt.GlyphIndex(glyphIndex), floatToFixed(size), font.HintingNone)
	if err != nil {
		return Rect{}
	}

	return Rect{
		MinX: fixedToFloat(bounds.Min.X),
		MinY: -fixedToFloat(bounds.Max.Y),
		MaxX: fixedToFloat(bounds.Max.X),
		MaxY: -fixedToFloat(bounds.Min.Y),
	}
}

func (f *ximageParsedFont) Metrics(size float64) FontMetrics {
	var buf sfnt.Buffer
	m, err := f.font.Metrics(&buf, floatToFixed(size), font.HintingNone)
	if err != nil {
		return FontMetrics{}
	}

	// x/image reports Descent as a positive distance below the baseline.
	ascent := fixedToFloat(m.Ascent)
	descent := fixedToFloat(m.Descent)
	lineGap := fixedToFloat(m.Height) - ascent - descent
	if lineGap < 0 {
		lineGap = 0
	}

	return FontMetrics{
		Ascent:    ascent,
		Descent:   -descent,
		LineGap:   lineGap,
		CapHeight: fixedToFloat(m.CapHeight),
	}
}

// GlyphSegments implements OutlineSource. sfnt returns Y-down pixel
// coordinates at ppem = size; the Y axis is flipped here.
func (f *ximageParsedFont) GlyphSegments(glyphIndex uint16, size float64) ([]OutlineSegment, error) {
	var buf sfnt.Buffer
	segments, err := f.font.LoadGlyph(&buf, sfnt.GlyphIndex(glyphIndex), floatToFixed(size), nil)
	if err != nil {
		return nil, fmt.Errorf("text: load glyph %d: %w", glyphIndex, err)
	}

	out := make([]OutlineSegment, 0, len(segments))
	for _, seg := range segments {
		var s OutlineSegment
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			s.Op = OutlineOpMoveTo
		case sfnt.SegmentOpLineTo:
			s.Op = OutlineOpLineTo
		case sfnt.SegmentOpQuadTo:
			s.Op = OutlineOpQuadTo
		case sfnt.SegmentOpCubeTo:
			s.Op = OutlineOpCubicTo
		default:
			continue
		}
		for i := 0; i < s.Op.PointCount(); i++ {
			s.Points[i] = OutlinePoint{
				X: float32(seg.Args[i].X) / 64,
				Y: -float32(seg.Args[i].Y) / 64,
			}
		}
		out = append(out, s)
	}
	return out, nil
}

// floatToFixed converts a float64 size to fixed.Int26_6.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
