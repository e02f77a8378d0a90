package text

// Measure returns the typographic size of text set on one line: the total
// shaped advance and the face's line height (ascent + descent + line gap).
// A nil shaper uses the global shaper. The empty string measures (0, 0).
func Measure(text string, face Face, shaper Shaper) (width, height float64) {
	if text == "" || face == nil {
		return 0, 0
	}
	if shaper == nil {
		shaper = GetShaper()
	}

	for _, run := range shaper.Shape(text, face) {
		width += run.Advance
	}
	return width, face.Metrics().LineHeight()
}
