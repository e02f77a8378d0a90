package layertext

import (
	"image/color"
	"math"
	"testing"

	"github.com/gogpu/layertext/text"
)

func TestNewOptionsDefault(t *testing.T) {
	o := newOptions(nil)

	if o.back != DefaultBackColor {
		t.Errorf("back = %v, want %v", o.back, DefaultBackColor)
	}
	if o.middle != DefaultMiddleColor {
		t.Errorf("middle = %v, want %v", o.middle, DefaultMiddleColor)
	}
	if o.scale != 1 {
		t.Errorf("scale = %v, want 1", o.scale)
	}
	if o.shaper != text.GetShaper() {
		t.Errorf("shaper = %T, want the global shaper", o.shaper)
	}
}

func TestWithColors(t *testing.T) {
	o := newOptions([]Option{
		WithBackColor(color.NRGBA{R: 255, A: 255}),
		WithMiddleColor(color.Gray{Y: 0x80}),
	})

	if got, want := o.back.Color(), (color.NRGBA{R: 255, A: 255}); got != want {
		t.Errorf("back = %v, want %v", got, want)
	}
	if got, want := o.middle.Color(), (color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 255}); got != want {
		t.Errorf("middle = %v, want %v", got, want)
	}
}

func TestWithRenderScale(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{2, 2},
		{0.5, 0.5},
		{0, 1},
		{-3, 1},
		{math.NaN(), 1},
		{math.Inf(1), 1},
		{1000, 1},
	}

	for _, tt := range tests {
		o := newOptions([]Option{WithRenderScale(tt.in)})
		if o.scale != tt.want {
			t.Errorf("WithRenderScale(%v): scale = %v, want %v", tt.in, o.scale, tt.want)
		}
	}
}

func TestWithShaper(t *testing.T) {
	s := text.NewGoTextShaper()
	if o := newOptions([]Option{WithShaper(s)}); o.shaper != s {
		t.Errorf("shaper = %T, want the configured shaper", o.shaper)
	}
	if o := newOptions([]Option{WithShaper(nil)}); o.shaper != text.GetShaper() {
		t.Errorf("WithShaper(nil): shaper = %T, want the global shaper", o.shaper)
	}
}

func TestNilOptionIgnored(t *testing.T) {
	o := newOptions([]Option{nil, WithRenderScale(3)})
	if o.scale != 3 {
		t.Errorf("scale = %v, want 3", o.scale)
	}
}
