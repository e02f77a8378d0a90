package text

import (
	"slices"
	"unicode/utf8"

	"golang.org/x/text/unicode/bidi"
)

// BidiRun is a span of text with a single resolved direction.
// Start and End are rune indices; End is exclusive.
type BidiRun struct {
	Start, End int
	Direction  Direction
}

// BidiRuns splits text into directional runs in visual order using the
// Unicode Bidirectional Algorithm with base as the paragraph direction.
// Only the first paragraph is analyzed; text after a paragraph separator
// forms one trailing run in the base direction. If the algorithm fails the
// whole text is one run in the base direction.
func BidiRuns(text string, base Direction) []BidiRun {
	n := utf8.RuneCountInString(text)
	if n == 0 {
		return nil
	}
	fallback := []BidiRun{{Start: 0, End: n, Direction: base}}

	defaultDir := bidi.LeftToRight
	if base == DirectionRTL {
		defaultDir = bidi.RightToLeft
	}

	var p bidi.Paragraph
	if _, err := p.SetString(text, bidi.DefaultDirection(defaultDir)); err != nil {
		return fallback
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return fallback
	}

	runs := make([]BidiRun, 0, ordering.NumRuns())
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		// Pos returns inclusive rune indices.
		start, end := run.Pos()
		if end >= n {
			end = n - 1
		}
		if start > end {
			continue
		}

		dir := DirectionLTR
		if run.Direction() == bidi.RightToLeft {
			dir = DirectionRTL
		}
		runs = append(runs, BidiRun{Start: start, End: end + 1, Direction: dir})
	}
	if len(runs) == 0 {
		return fallback
	}
	if last := runs[len(runs)-1].End; last < n {
		runs = append(runs, BidiRun{Start: last, End: n, Direction: base})
	}

	// Runs come back in logical order; an RTL paragraph displays them
	// right to left.
	if base == DirectionRTL {
		slices.Reverse(runs)
	}
	return runs
}
