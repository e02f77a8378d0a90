package filter

import (
	"image"
	"sync"
)

// Blur applies a separable Gaussian blur to src and returns a new mask.
// The result's bounds are src.Rect grown by KernelRadius(sigma) on every
// side, so no coverage is lost at the edges. Pixels outside src count as
// transparent.
//
// For sigma <= 0 the result is a copy of src.
func Blur(src *image.Alpha, sigma float64) *image.Alpha {
	if src == nil {
		return nil
	}

	radius := KernelRadius(sigma)
	srcRect := src.Rect
	dst := image.NewAlpha(srcRect.Inset(-radius))
	if srcRect.Empty() {
		return dst
	}

	if radius == 0 {
		copyMask(dst, src)
		return dst
	}

	kernel := CachedGaussianKernel(sigma)
	width := dst.Rect.Dx()
	height := srcRect.Dy()

	temp := getTempBuffer(width * height)
	defer putTempBuffer(temp)

	blurHorizontal(src, temp, width, radius, kernel)
	blurVertical(temp, dst, width, height, radius, kernel)

	return dst
}

// blurHorizontal convolves each row of src into temp. temp rows are
// width wide, starting radius pixels left of src.
func blurHorizontal(src *image.Alpha, temp []float32, width, radius int, kernel []float32) {
	srcW := src.Rect.Dx()
	srcH := src.Rect.Dy()
	kernelSize := len(kernel)

	for y := 0; y < srcH; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+srcW]
		out := temp[y*width : (y+1)*width]

		for x := 0; x < width; x++ {
			// Output x maps to source x - radius; kernel tap k reads
			// source (x - radius) + (k - radius).
			base := x - 2*radius
			var sum float32

			for k := 0; k < kernelSize; k++ {
				sx := base + k
				if sx < 0 || sx >= srcW {
					continue
				}
				sum += float32(row[sx]) * kernel[k]
			}

			out[x] = sum
		}
	}
}

// blurVertical convolves each column of temp into dst, whose rows start
// radius pixels above the rows of temp.
func blurVertical(temp []float32, dst *image.Alpha, width, height, radius int, kernel []float32) {
	dstH := dst.Rect.Dy()
	kernelSize := len(kernel)

	for y := 0; y < dstH; y++ {
		out := dst.Pix[y*dst.Stride : y*dst.Stride+width]
		base := y - 2*radius

		for x := 0; x < width; x++ {
			var sum float32

			for k := 0; k < kernelSize; k++ {
				ty := base + k
				if ty < 0 || ty >= height {
					continue
				}
				sum += temp[ty*width+x] * kernel[k]
			}

			out[x] = clampUint8(sum)
		}
	}
}

// copyMask copies the overlapping region of src into dst.
func copyMask(dst, src *image.Alpha) {
	r := dst.Rect.Intersect(src.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		si := src.PixOffset(r.Min.X, y)
		di := dst.PixOffset(r.Min.X, y)
		copy(dst.Pix[di:di+r.Dx()], src.Pix[si:si+r.Dx()])
	}
}

// floatBuffer wraps a slice for sync.Pool to avoid allocation warnings.
type floatBuffer struct {
	data []float32
}

var tempBufferPool = sync.Pool{
	New: func() interface{} {
		return &floatBuffer{data: make([]float32, 256*256)}
	},
}

// getTempBuffer retrieves a zeroed buffer of at least size elements.
func getTempBuffer(size int) []float32 {
	wrapper := tempBufferPool.Get().(*floatBuffer)

	if len(wrapper.data) < size {
		tempBufferPool.Put(wrapper)
		return make([]float32, size)
	}

	buf := wrapper.data[:size]
	clear(buf)
	return buf
}

// putTempBuffer returns a temporary buffer to the pool.
func putTempBuffer(buf []float32) {
	// Only pool reasonably-sized buffers (16MB).
	if cap(buf) <= 4*1024*1024 {
		tempBufferPool.Put(&floatBuffer{data: buf[:cap(buf)]})
	}
}

// clampUint8 clamps a float32 to [0, 255] and converts to uint8.
func clampUint8(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5) // Round to nearest
}
