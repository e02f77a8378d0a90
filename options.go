package layertext

import (
	"image/color"

	"github.com/gogpu/layertext/text"
)

// Option configures a Render call.
// Use functional options to override the layer colors, the output scale,
// or the shaper.
//
// Example:
//
//	// Default colors at 1x
//	img, err := layertext.Render("SUPER", face, textColor)
//
//	// Retina output with a custom back layer
//	img, err := layertext.Render("SUPER", face, textColor,
//	    layertext.WithRenderScale(2),
//	    layertext.WithBackColor(color.NRGBA{R: 255, A: 255}))
type Option func(*options)

// options holds the configuration of a Render call.
type options struct {
	back   RGBA
	middle RGBA
	scale  float64
	shaper text.Shaper
}

// defaultOptions returns the default render options.
func defaultOptions() options {
	return options{
		back:   DefaultBackColor,
		middle: DefaultMiddleColor,
		scale:  1,
		shaper: nil, // Resolved to text.GetShaper() at render time
	}
}

func newOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.shaper == nil {
		o.shaper = text.GetShaper()
	}
	return o
}

// WithBackColor sets the Back layer color.
func WithBackColor(c color.Color) Option {
	return func(o *options) {
		o.back = FromColor(c)
	}
}

// WithMiddleColor sets the Middle layer color.
func WithMiddleColor(c color.Color) Option {
	return func(o *options) {
		o.middle = FromColor(c)
	}
}

// WithRenderScale sets the number of device pixels per point.
// Values outside (0, 64], including NaN, fall back to 1.
func WithRenderScale(scale float64) Option {
	return func(o *options) {
		if !(scale > 0) || scale > maxRenderScale {
			scale = 1
		}
		o.scale = scale
	}
}

// WithShaper sets the shaper used to lay out the string.
// A nil shaper selects the global shaper from text.GetShaper.
func WithShaper(s text.Shaper) Option {
	return func(o *options) {
		o.shaper = s
	}
}

// maxRenderScale is the largest accepted render scale.
const maxRenderScale = 64
