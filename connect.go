package layertext

import "github.com/gogpu/layertext/text"

// ConnectOutline rebuilds the outline painted by the middle layer.
//
// The result has the same segments as o in the same order, with identical
// points and contour boundaries. Segments with an unknown operation are
// dropped. Advance, GID and bounds are carried over. A nil outline yields
// nil.
//
// ConnectOutline never modifies o and is idempotent.
func ConnectOutline(o *text.GlyphOutline) *text.GlyphOutline {
	if o == nil {
		return nil
	}

	out := &text.GlyphOutline{
		Segments: make([]text.OutlineSegment, 0, len(o.Segments)),
		Bounds:   o.Bounds,
		Advance:  o.Advance,
		GID:      o.GID,
	}
	for _, seg := range o.Segments {
		if !seg.Op.Valid() {
			continue
		}
		s := text.OutlineSegment{Op: seg.Op}
		n := seg.Op.PointCount()
		copy(s.Points[:n], seg.Points[:n])
		out.Segments = append(out.Segments, s)
	}
	return out
}
