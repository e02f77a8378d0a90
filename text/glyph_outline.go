package text

import "math"

// OutlinePoint represents a point in a glyph outline, in glyph space.
type OutlinePoint struct {
	X, Y float32
}

// OutlineSegment represents a segment of a glyph outline.
type OutlineSegment struct {
	// Op is the segment operation type.
	Op OutlineOp

	// Points contains the control and end points for this segment.
	//   - MoveTo, LineTo: Points[0] is the target point
	//   - QuadTo: Points[0] is control, Points[1] is target
	//   - CubicTo: Points[0], Points[1] are controls, Points[2] is target
	//   - Close: no points
	Points [3]OutlinePoint
}

// OutlineOp is the type of path operation.
type OutlineOp uint8

const (
	// OutlineOpMoveTo starts a new contour.
	OutlineOpMoveTo OutlineOp = iota

	// OutlineOpLineTo draws a line to the target point.
	OutlineOpLineTo

	// OutlineOpQuadTo draws a quadratic bezier curve.
	OutlineOpQuadTo

	// OutlineOpCubicTo draws a cubic bezier curve.
	OutlineOpCubicTo

	// OutlineOpClose closes the current contour.
	OutlineOpClose
)

// String returns a string representation of the operation.
func (op OutlineOp) String() string {
	switch op {
	case OutlineOpMoveTo:
		return "MoveTo"
	case OutlineOpLineTo:
		return "LineTo"
	case OutlineOpQuadTo:
		return "QuadTo"
	case OutlineOpCubicTo:
		return "CubicTo"
	case OutlineOpClose:
		return "Close"
	default:
		return unknownStr
	}
}

// Valid reports whether op is a known operation.
func (op OutlineOp) Valid() bool {
	return op <= OutlineOpClose
}

// PointCount returns the number of points the operation uses.
func (op OutlineOp) PointCount() int {
	switch op {
	case OutlineOpMoveTo, OutlineOpLineTo:
		return 1
	case OutlineOpQuadTo:
		return 2
	case OutlineOpCubicTo:
		return 3
	default:
		return 0
	}
}

// GlyphOutline represents the vector outline of a glyph.
// The outline consists of zero or more closed contours.
type GlyphOutline struct {
	// Segments is the list of path segments that make up the outline.
	Segments []OutlineSegment

	// Bounds is the bounding box of the outline points.
	Bounds Rect

	// Advance is the horizontal advance width of the glyph.
	Advance float32

	// GID is the glyph ID this outline represents.
	GID GlyphID
}

// IsEmpty returns true if the outline has no segments.
func (o *GlyphOutline) IsEmpty() bool {
	return o == nil || len(o.Segments) == 0
}

// SegmentCount returns the number of segments in the outline.
func (o *GlyphOutline) SegmentCount() int {
	if o == nil {
		return 0
	}
	return len(o.Segments)
}

// Clone creates a deep copy of the outline.
func (o *GlyphOutline) Clone() *GlyphOutline {
	if o == nil {
		return nil
	}

	clone := *o
	clone.Segments = make([]OutlineSegment, len(o.Segments))
	copy(clone.Segments, o.Segments)
	return &clone
}

// Scale returns a new outline with all coordinates scaled by factor.
func (o *GlyphOutline) Scale(factor float32) *GlyphOutline {
	return o.mapPoints(func(p OutlinePoint) OutlinePoint {
		return OutlinePoint{X: p.X * factor, Y: p.Y * factor}
	}, factor)
}

// Translate returns a new outline with all coordinates translated by (dx, dy).
func (o *GlyphOutline) Translate(dx, dy float32) *GlyphOutline {
	return o.mapPoints(func(p OutlinePoint) OutlinePoint {
		return OutlinePoint{X: p.X + dx, Y: p.Y + dy}
	}, 1)
}

// mapPoints applies fn to every used point and recomputes the bounds.
// advanceScale scales the advance.
func (o *GlyphOutline) mapPoints(fn func(OutlinePoint) OutlinePoint, advanceScale float32) *GlyphOutline {
	if o == nil {
		return nil
	}

	out := &GlyphOutline{
		Segments: make([]OutlineSegment, len(o.Segments)),
		Advance:  o.Advance * advanceScale,
		GID:      o.GID,
	}
	for i, seg := range o.Segments {
		out.Segments[i].Op = seg.Op
		for j := 0; j < seg.Op.PointCount(); j++ {
			out.Segments[i].Points[j] = fn(seg.Points[j])
		}
	}
	out.Bounds = segmentBounds(out.Segments)
	return out
}

// segmentBounds returns the bounding box of all points used by segments.
func segmentBounds(segments []OutlineSegment) Rect {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	found := false

	for _, seg := range segments {
		for j := 0; j < seg.Op.PointCount(); j++ {
			p := seg.Points[j]
			minX = math.Min(minX, float64(p.X))
			minY = math.Min(minY, float64(p.Y))
			maxX = math.Max(maxX, float64(p.X))
			maxY = math.Max(maxY, float64(p.Y))
			found = true
		}
	}

	if !found {
		return Rect{}
	}
	return Rect{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

// closeContours returns segments with a Close after every contour.
func closeContours(segments []OutlineSegment) []OutlineSegment {
	if len(segments) == 0 {
		return nil
	}

	out := make([]OutlineSegment, 0, len(segments)+4)
	open := false
	for _, seg := range segments {
		if seg.Op == OutlineOpMoveTo && open {
			out = append(out, OutlineSegment{Op: OutlineOpClose})
		}
		switch seg.Op {
		case OutlineOpMoveTo:
			open = true
		case OutlineOpClose:
			open = false
		}
		out = append(out, seg)
	}
	if open {
		out = append(out, OutlineSegment{Op: OutlineOpClose})
	}
	return out
}

// OutlineExtractor extracts glyph outlines from parsed fonts.
// OutlineExtractor is stateless and safe for concurrent use.
type OutlineExtractor struct{}

// NewOutlineExtractor creates a new outline extractor.
func NewOutlineExtractor() *OutlineExtractor {
	return &OutlineExtractor{}
}

// ExtractOutline extracts the outline for a glyph at the given size in
// points. Every contour ends with a Close segment. A glyph without
// contours (e.g. space) yields an empty outline that still carries its
// advance.
func (e *OutlineExtractor) ExtractOutline(font ParsedFont, gid GlyphID, size float64) (*GlyphOutline, error) {
	if font == nil {
		return nil, ErrSourceClosed
	}
	src, ok := font.(OutlineSource)
	if !ok {
		return nil, ErrUnsupportedFontType
	}

	segments, err := src.GlyphSegments(uint16(gid), size)
	if err != nil {
		return nil, err
	}

	segments = closeContours(segments)
	return &GlyphOutline{
		Segments: segments,
		Bounds:   segmentBounds(segments),
		Advance:  float32(font.GlyphAdvance(uint16(gid), size)),
		GID:      gid,
	}, nil
}
