// Package filter provides the alpha-mask filters used for drop shadows:
//   - Gaussian kernels, cached by sigma
//   - Separable Gaussian blur of *image.Alpha masks
//   - Drop shadow masks (offset + blur)
//
// Masks keep their own bounds, so a blurred or offset mask can extend past
// the canvas it was rasterized for. Callers clip when compositing.
package filter
