package text

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"

	"github.com/gogpu/layertext/internal/cache"
)

// outlineCacheSize is the soft limit of the per-shaper outline cache.
const outlineCacheSize = 4096

// outlineKey identifies a glyph outline at one size.
type outlineKey struct {
	font  *font.Font
	gid   font.GID
	scale float32
}

// GoTextShaper provides HarfBuzz-level text shaping using go-text/typesetting.
// It applies kerning, ligatures and contextual forms, splits mixed-direction
// text into runs with the Unicode Bidirectional Algorithm and reads glyph
// outlines from the go-text font, so outlines always match the shaped GIDs.
//
//	shaper := text.NewGoTextShaper()
//	text.SetShaper(shaper)
//	defer text.SetShaper(nil) // Reset to default BuiltinShaper
//
// GoTextShaper is safe for concurrent use. It caches parsed font.Font objects
// (which are thread-safe) and creates a font.Face per Shape call (font.Face is
// not safe for concurrent use). HarfbuzzShaper instances are pooled.
//
// Glyph outlines are cached per font, glyph and size and shared between
// the runs returned by Shape; callers must not modify them.
type GoTextShaper struct {
	shaperPool sync.Pool

	// mu protects fontCache.
	mu        sync.RWMutex
	fontCache map[*FontSource]*font.Font

	outlines *cache.Cache[outlineKey, *GlyphOutline]
}

// NewGoTextShaper creates a new GoTextShaper backed by go-text/typesetting's
// HarfBuzz implementation.
func NewGoTextShaper() *GoTextShaper {
	return &GoTextShaper{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		fontCache: make(map[*FontSource]*font.Font),
		outlines:  cache.New[outlineKey, *GlyphOutline](outlineCacheSize),
	}
}

// Shape implements the Shaper interface. Each bidi run of text becomes one
// GlyphRun; runs are laid out left to right in visual order. If the font
// cannot be loaded by go-text, a single run without a resolved face is
// returned.
func (s *GoTextShaper) Shape(text string, face Face) []GlyphRun {
	if text == "" || face == nil {
		return nil
	}

	goTextFont, err := s.fontFor(face.Source())
	if err != nil {
		return []GlyphRun{NewGlyphRun(nil, face.Direction(), nil)}
	}
	goTextFace := font.NewFace(goTextFont)

	size := face.Size()
	scale := float32(size / float64(goTextFont.Upem()))
	runes := []rune(text)
	lang := language.NewLanguage(face.Language())

	hb := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	defer s.shaperPool.Put(hb)

	var runs []GlyphRun
	var pen float64
	for _, br := range BidiRuns(text, face.Direction()) {
		input := shaping.Input{
			Text:      runes,
			RunStart:  br.Start,
			RunEnd:    br.End,
			Direction: mapDirection(br.Direction),
			Face:      goTextFace,
			Size:      floatToFixed(size),
			Script:    detectScript(runes[br.Start:br.End]),
			Language:  lang,
		}
		output := hb.Shape(input)

		run := NewGlyphRun(face, br.Direction, s.convertGlyphs(output.Glyphs, goTextFace, pen, scale))
		pen += run.Advance
		runs = append(runs, run)
	}

	return runs
}

// fontFor returns the cached go-text font for source, parsing it on first
// use.
func (s *GoTextShaper) fontFor(source *FontSource) (*font.Font, error) {
	if source == nil {
		return nil, ErrSourceClosed
	}
	data := source.Data()
	if data == nil {
		return nil, ErrSourceClosed
	}

	s.mu.RLock()
	if f, ok := s.fontCache[source]; ok {
		s.mu.RUnlock()
		return f, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	if f, ok := s.fontCache[source]; ok {
		return f, nil
	}

	// ParseTTF returns a *Face which embeds the thread-safe *Font.
	parsed, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedFontType, err)
	}

	s.fontCache[source] = parsed.Font
	return parsed.Font, nil
}

// ClearCache removes all cached parsed fonts and outlines.
func (s *GoTextShaper) ClearCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fontCache = make(map[*FontSource]*font.Font)
	s.outlines.Clear()
}

// RemoveSource removes the cached parsed font and outlines for a specific
// FontSource. Call it when the FontSource is closed.
func (s *GoTextShaper) RemoveSource(source *FontSource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.fontCache[source]
	if !ok {
		return
	}
	delete(s.fontCache, source)
	s.outlines.DeleteFunc(func(k outlineKey) bool { return k.font == f })
}

func mapDirection(d Direction) di.Direction {
	if d == DirectionRTL {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript returns the script of the first non-space rune. Runs are
// split by direction only, so mixed-script runs take the first script.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// convertGlyphs converts shaped go-text glyphs starting at pen position x.
func (s *GoTextShaper) convertGlyphs(glyphs []shaping.Glyph, face *font.Face, x float64, scale float32) []ShapedGlyph {
	if len(glyphs) == 0 {
		return nil
	}

	result := make([]ShapedGlyph, len(glyphs))
	for i, g := range glyphs {
		adv := fixedToFloat(g.Advance)
		result[i] = ShapedGlyph{
			GID:      GlyphID(uint16(g.GlyphID)), //nolint:gosec // TrueType and CFF glyph IDs fit in 16 bits
			Cluster:  g.TextIndex(),
			X:        x + fixedToFloat(g.XOffset),
			Y:        fixedToFloat(g.YOffset),
			XAdvance: adv,
			Outline:  s.outline(face, g.GlyphID, scale, adv),
		}
		x += adv
	}
	return result
}

// outline returns the cached outline of gid carrying advance.
func (s *GoTextShaper) outline(face *font.Face, gid font.GID, scale float32, advance float64) *GlyphOutline {
	key := outlineKey{font: face.Font, gid: gid, scale: scale}
	cached := s.outlines.GetOrCreate(key, func() *GlyphOutline {
		return goTextOutline(face, gid, scale)
	})
	if cached == nil {
		return nil
	}
	o := *cached
	o.Advance = float32(advance)
	return &o
}

// goTextOutline converts the vector data of gid to a GlyphOutline in glyph
// space. go-text outlines are in font units with the Y axis up, so only a
// uniform scale is needed. Bitmap, SVG and empty glyphs have no outline.
// The advance is left zero.
func goTextOutline(face *font.Face, gid font.GID, scale float32) *GlyphOutline {
	data, ok := face.GlyphData(gid).(font.GlyphOutline)
	if !ok || len(data.Segments) == 0 {
		return nil
	}

	segments := make([]OutlineSegment, 0, len(data.Segments))
	for _, seg := range data.Segments {
		var out OutlineSegment
		switch seg.Op {
		case opentype.SegmentOpMoveTo:
			out.Op = OutlineOpMoveTo
		case opentype.SegmentOpLineTo:
			out.Op = OutlineOpLineTo
		case opentype.SegmentOpQuadTo:
			out.Op = OutlineOpQuadTo
		case opentype.SegmentOpCubeTo:
			out.Op = OutlineOpCubicTo
		default:
			continue
		}
		for j := 0; j < out.Op.PointCount(); j++ {
			out.Points[j] = OutlinePoint{X: seg.Args[j].X * scale, Y: seg.Args[j].Y * scale}
		}
		segments = append(segments, out)
	}

	segments = closeContours(segments)
	return &GlyphOutline{
		Segments: segments,
		Bounds:   segmentBounds(segments),
		GID:      GlyphID(uint16(gid)), //nolint:gosec // see convertGlyphs
	}
}
