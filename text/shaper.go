package text

import "sync"

// Shaper converts text to positioned glyph runs.
// Implementations provide different levels of text shaping support:
//   - BuiltinShaper: nominal advances from golang.org/x/image/font
//   - GoTextShaper: HarfBuzz shaping via go-text/typesetting
type Shaper interface {
	// Shape converts text into glyph runs using the given face.
	// The font size is obtained from face.Size(). Runs are returned in
	// visual order with glyph positions relative to the line origin.
	Shape(text string, face Face) []GlyphRun
}

var (
	shaperMu     sync.RWMutex
	globalShaper Shaper = &BuiltinShaper{}
)

// SetShaper sets the global shaper used by Shape.
// Pass nil to reset to the default BuiltinShaper.
func SetShaper(s Shaper) {
	shaperMu.Lock()
	defer shaperMu.Unlock()
	if s == nil {
		s = &BuiltinShaper{}
	}
	globalShaper = s
}

// GetShaper returns the current global shaper.
func GetShaper() Shaper {
	shaperMu.RLock()
	defer shaperMu.RUnlock()
	return globalShaper
}

// Shape shapes text with the global shaper.
func Shape(text string, face Face) []GlyphRun {
	return GetShaper().Shape(text, face)
}
