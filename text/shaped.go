package text

// ShapedGlyph is a positioned glyph together with its outline.
type ShapedGlyph struct {
	// GID is the glyph index in the font.
	GID GlyphID

	// Cluster is the source rune index in the original text.
	Cluster int

	// X is the horizontal position relative to the line origin.
	X float64

	// Y is the vertical position relative to the baseline (Y up).
	Y float64

	// XAdvance is the horizontal advance to the next glyph.
	XAdvance float64

	// Outline is the glyph outline in glyph space, or nil when the glyph
	// has no contours.
	Outline *GlyphOutline
}

// GlyphRun is a sequence of shaped glyphs sharing a face and direction.
// Glyphs are in visual order.
type GlyphRun struct {
	// Glyphs is the sequence of positioned glyphs.
	Glyphs []ShapedGlyph

	// Advance is the total advance of all glyphs.
	Advance float64

	// Direction is the resolved text direction for this run.
	Direction Direction

	face Face
}

// NewGlyphRun creates a run. A nil face marks a run whose glyphs could not
// be resolved to any font; renderers skip such runs.
func NewGlyphRun(face Face, dir Direction, glyphs []ShapedGlyph) GlyphRun {
	var advance float64
	for _, g := range glyphs {
		advance += g.XAdvance
	}
	return GlyphRun{
		Glyphs:    glyphs,
		Advance:   advance,
		Direction: dir,
		face:      face,
	}
}

// ResolvedFace returns the face the run was shaped with.
func (r GlyphRun) ResolvedFace() (Face, bool) {
	return r.face, r.face != nil
}
