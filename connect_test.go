package layertext

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/layertext/text"
)

func mixedOutline() *text.GlyphOutline {
	return &text.GlyphOutline{
		Segments: []text.OutlineSegment{
			{Op: text.OutlineOpMoveTo, Points: [3]text.OutlinePoint{{X: 1, Y: 2}}},
			{Op: text.OutlineOpLineTo, Points: [3]text.OutlinePoint{{X: 10, Y: 2}}},
			{Op: text.OutlineOpQuadTo, Points: [3]text.OutlinePoint{{X: 12, Y: 6}, {X: 10, Y: 10}}},
			{Op: text.OutlineOpCubicTo, Points: [3]text.OutlinePoint{{X: 7, Y: 12}, {X: 4, Y: 12}, {X: 1, Y: 10}}},
			{Op: text.OutlineOpClose},
			{Op: text.OutlineOpMoveTo, Points: [3]text.OutlinePoint{{X: 3.25, Y: 4.5}}},
			{Op: text.OutlineOpLineTo, Points: [3]text.OutlinePoint{{X: 5, Y: 4.5}}},
			{Op: text.OutlineOpLineTo, Points: [3]text.OutlinePoint{{X: 5, Y: 7}}},
			{Op: text.OutlineOpClose},
		},
		Bounds:  text.Rect{MinX: 1, MinY: 2, MaxX: 12, MaxY: 12},
		Advance: 13.5,
		GID:     42,
	}
}

func TestConnectOutlinePreservesStructure(t *testing.T) {
	in := mixedOutline()
	got := ConnectOutline(in)

	if diff := cmp.Diff(mixedOutline(), got); diff != "" {
		t.Errorf("ConnectOutline mismatch (-want +got):\n%s", diff)
	}
	if got == in || &got.Segments[0] == &in.Segments[0] {
		t.Error("ConnectOutline shares storage with its input")
	}
}

func TestConnectOutlineDoesNotModifyInput(t *testing.T) {
	in := mixedOutline()
	out := ConnectOutline(in)
	out.Segments[0].Points[0].X = 99

	if diff := cmp.Diff(mixedOutline(), in); diff != "" {
		t.Errorf("input changed (-want +got):\n%s", diff)
	}
}

func TestConnectOutlineIdempotent(t *testing.T) {
	once := ConnectOutline(mixedOutline())
	twice := ConnectOutline(once)

	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("second pass changed the outline (-once +twice):\n%s", diff)
	}
}

func TestConnectOutlineDropsUnknownOps(t *testing.T) {
	in := mixedOutline()
	unknown := text.OutlineSegment{Op: text.OutlineOp(200), Points: [3]text.OutlinePoint{{X: 50, Y: 50}}}
	in.Segments = append(in.Segments[:3:3], append([]text.OutlineSegment{unknown}, in.Segments[3:]...)...)
	in.Segments = append(in.Segments, unknown)

	got := ConnectOutline(in)
	if diff := cmp.Diff(mixedOutline().Segments, got.Segments); diff != "" {
		t.Errorf("unknown segments not dropped (-want +got):\n%s", diff)
	}
}

func TestConnectOutlineZeroesUnusedPoints(t *testing.T) {
	in := &text.GlyphOutline{Segments: []text.OutlineSegment{
		{Op: text.OutlineOpMoveTo, Points: [3]text.OutlinePoint{{X: 1, Y: 1}, {X: 8, Y: 8}, {X: 9, Y: 9}}},
		{Op: text.OutlineOpClose, Points: [3]text.OutlinePoint{{X: 5, Y: 5}}},
	}}
	want := []text.OutlineSegment{
		{Op: text.OutlineOpMoveTo, Points: [3]text.OutlinePoint{{X: 1, Y: 1}}},
		{Op: text.OutlineOpClose},
	}

	if diff := cmp.Diff(want, ConnectOutline(in).Segments); diff != "" {
		t.Errorf("ConnectOutline mismatch (-want +got):\n%s", diff)
	}
}

func TestConnectOutlineEmpty(t *testing.T) {
	if got := ConnectOutline(nil); got != nil {
		t.Errorf("ConnectOutline(nil) = %+v, want nil", got)
	}

	got := ConnectOutline(&text.GlyphOutline{Advance: 7, GID: 3})
	if got == nil || !got.IsEmpty() || got.Advance != 7 || got.GID != 3 {
		t.Errorf("ConnectOutline(empty) = %+v", got)
	}
}
