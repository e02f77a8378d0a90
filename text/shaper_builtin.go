package text

// BuiltinShaper positions glyphs using nominal advances from the font's
// hmtx table. It performs no ligature substitution, kerning or
// reordering, and always lays text out left to right.
//
// BuiltinShaper is stateless and safe for concurrent use.
type BuiltinShaper struct{}

// Shape implements the Shaper interface. It returns a single run; the run
// has no resolved face if the font source has been closed.
func (s *BuiltinShaper) Shape(text string, face Face) []GlyphRun {
	if text == "" || face == nil {
		return nil
	}

	parsed := face.Source().Parsed()
	if parsed == nil {
		return []GlyphRun{NewGlyphRun(nil, DirectionLTR, nil)}
	}

	size := face.Size()
	extractor := NewOutlineExtractor()
	runes := []rune(text)
	glyphs := make([]ShapedGlyph, 0, len(runes))

	var x float64
	for cluster, r := range runes {
		gid := GlyphID(parsed.GlyphIndex(r))
		advance := parsed.GlyphAdvance(uint16(gid), size)

		g := ShapedGlyph{
			GID:      gid,
			Cluster:  cluster,
			X:        x,
			XAdvance: advance,
		}
		if outline, err := extractor.ExtractOutline(parsed, gid, size); err == nil && !outline.IsEmpty() {
			g.Outline = outline
		}

		glyphs = append(glyphs, g)
		x += advance
	}

	return []GlyphRun{NewGlyphRun(face, DirectionLTR, glyphs)}
}
