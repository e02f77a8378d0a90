package layertext

import "errors"

var (
	// ErrNilFace is returned when Render is called without a font face.
	ErrNilFace = errors.New("layertext: nil font face")

	// ErrCanvasAllocation is returned when a canvas cannot be created for
	// the requested size. No partial image is produced.
	ErrCanvasAllocation = errors.New("layertext: cannot allocate canvas")

	// ErrCanvasFinalized is returned when painting on a canvas whose image
	// has already been taken.
	ErrCanvasFinalized = errors.New("layertext: canvas already finalized")

	// ErrInvalidColor is returned by ParseHex for malformed input.
	ErrInvalidColor = errors.New("layertext: invalid hex color")
)
