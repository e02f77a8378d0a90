package filter

import (
	"image"
	"math"
)

// DropShadow builds a shadow mask from a coverage mask: the coverage is
// moved by the offset and blurred. Colorizing and compositing are left to
// the caller.
type DropShadow struct {
	// OffsetX is the horizontal shadow offset in device pixels (+x right).
	OffsetX float64

	// OffsetY is the vertical shadow offset in device pixels (+y down).
	OffsetY float64

	// Sigma is the Gaussian standard deviation in device pixels.
	Sigma float64
}

// NewDropShadow creates a new drop shadow filter.
func NewDropShadow(offsetX, offsetY, sigma float64) *DropShadow {
	return &DropShadow{
		OffsetX: offsetX,
		OffsetY: offsetY,
		Sigma:   sigma,
	}
}

// Offset returns the shadow offset rounded to whole pixels.
func (f *DropShadow) Offset() image.Point {
	return image.Pt(int(math.Round(f.OffsetX)), int(math.Round(f.OffsetY)))
}

// Apply returns the shadow mask for mask. The result is a new mask whose
// bounds are ExpandBounds(mask.Rect); mask is not modified.
func (f *DropShadow) Apply(mask *image.Alpha) *image.Alpha {
	if mask == nil {
		return nil
	}

	moved := &image.Alpha{
		Pix:    mask.Pix,
		Stride: mask.Stride,
		Rect:   mask.Rect.Add(f.Offset()),
	}
	return Blur(moved, f.Sigma)
}

// ExpandBounds returns the bounds of the shadow of a mask covering input.
func (f *DropShadow) ExpandBounds(input image.Rectangle) image.Rectangle {
	return input.Add(f.Offset()).Inset(-KernelRadius(f.Sigma))
}
