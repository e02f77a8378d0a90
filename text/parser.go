package text

import "sync"

// FontParser is an interface for font parsing backends.
//
// The default implementation uses golang.org/x/image/font/opentype.
type FontParser interface {
	// Parse parses font data (TTF or OTF) and returns a ParsedFont.
	Parse(data []byte) (ParsedFont, error)
}

// ParsedFont represents a parsed font file. Sizes are in points.
type ParsedFont interface {
	// Name returns the font family name, or "" if not available.
	Name() string

	// FullName returns the full font name, or "" if not available.
	FullName() string

	// NumGlyphs returns the number of glyphs in the font.
	NumGlyphs() int

	// UnitsPerEm returns the units per em for the font.
	UnitsPerEm() int

	// GlyphIndex returns the glyph index for a rune, or 0 if not found.
	GlyphIndex(r rune) uint16

	// GlyphAdvance returns the advance width for a glyph at the given size.
	GlyphAdvance(glyphIndex uint16, size float64) float64

	// GlyphBounds returns the bounding box for a glyph at the given size.
	GlyphBounds(glyphIndex uint16, size float64) Rect

	// Metrics returns the font metrics at the given size.
	Metrics(size float64) FontMetrics
}

// OutlineSource is implemented by parsed fonts that can load glyph
// outlines.
type OutlineSource interface {
	// GlyphSegments returns the outline of a glyph scaled to size, in glyph
	// space with the Y axis increasing up. Contours are closed implicitly
	// by the next MoveTo or the end of the outline.
	GlyphSegments(glyphIndex uint16, size float64) ([]OutlineSegment, error)
}

// FontMetrics holds font-level metrics at a specific size.
type FontMetrics struct {
	// Ascent is the distance from the baseline to the top of the font (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the font (negative).
	Descent float64

	// LineGap is the recommended line gap between lines.
	LineGap float64

	// CapHeight is the height of uppercase letters.
	CapHeight float64
}

// Height returns the total line height (ascent - descent + line gap).
func (m FontMetrics) Height() float64 {
	return m.Ascent - m.Descent + m.LineGap
}

const defaultParserName = "ximage"

var (
	parserMu       sync.RWMutex
	parserRegistry = map[string]FontParser{
		defaultParserName: &ximageParser{},
	}
)

// RegisterParser registers a custom font parser under name.
func RegisterParser(name string, parser FontParser) {
	parserMu.Lock()
	defer parserMu.Unlock()
	parserRegistry[name] = parser
}

// getParser returns the parser by name, or the default if not found.
func getParser(name string) FontParser {
	parserMu.RLock()
	defer parserMu.RUnlock()
	if p, ok := parserRegistry[name]; ok {
		return p
	}
	return parserRegistry[defaultParserName]
}
