// Package text loads fonts, shapes strings into positioned glyph runs and
// extracts the vector outline of every glyph.
//
// The pipeline follows a separation of concerns:
//
//   - FontSource: Heavyweight, shared font resource (parses TTF/OTF files)
//   - Face: Lightweight font instance at a specific size
//   - FontParser: Pluggable font parsing backend (default: golang.org/x/image)
//   - Shaper: Converts a string into GlyphRuns carrying glyph outlines
//
// # Example usage
//
//	source, err := text.NewFontSourceFromFile("Avenir-Black.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer source.Close()
//
//	face := source.Face(80)
//	w, h := text.Measure("SUPER", face, nil)
//	runs := text.NewGoTextShaper().Shape("SUPER", face)
//
// Outlines are expressed in glyph space: points, relative to the glyph
// origin on the baseline, with the Y axis increasing up.
//
// # Pluggable Parser Backend
//
// Font parsing is abstracted through the FontParser interface.
// By default, golang.org/x/image/font/opentype is used.
//
//	text.RegisterParser("myparser", myCustomParser)
//	source, err := text.NewFontSource(data, text.WithParser("myparser"))
//
// A parser whose fonts also implement OutlineSource can be used for
// outline extraction.
package text
