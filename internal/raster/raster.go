// Package raster provides scanline rasterization of flattened paths into
// coverage masks.
package raster

import (
	"image"
	"math"

	"github.com/gogpu/layertext/internal/path"
)

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// Supersampling factor per axis used by FillAA.
const (
	SupersampleShift = 2
	SupersampleScale = 1 << SupersampleShift
	supersampleArea  = SupersampleScale * SupersampleScale
)

// Rasterizer performs scanline rasterization. A Rasterizer reuses its
// internal buffers between calls and is not safe for concurrent use.
type Rasterizer struct {
	aet   *ActiveEdgeTable
	spans []span
	cover []uint16
}

type span struct {
	x0, x1 float64
}

// NewRasterizer creates a new rasterizer.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{
		aet: NewActiveEdgeTable(),
	}
}

// Fill writes full coverage (0xff) into mask for every pixel whose center
// lies inside the path. No partial coverage is produced, so edges stay hard.
// Pixels outside mask.Rect are ignored.
func (r *Rasterizer) Fill(mask *image.Alpha, pathEdges []path.Edge, fillRule FillRule) {
	edges, yMin, yMax := buildEdges(pathEdges, mask.Rect)
	if len(edges) == 0 {
		return
	}

	b := mask.Rect
	for y := yMin; y < yMax; y++ {
		r.scanline(edges, float64(y)+0.5, fillRule)
		if len(r.spans) == 0 {
			continue
		}

		row := mask.Pix[(y-b.Min.Y)*mask.Stride:]
		for _, s := range r.spans {
			x0 := clampInt(int(math.Ceil(s.x0-0.5)), b.Min.X, b.Max.X)
			x1 := clampInt(int(math.Ceil(s.x1-0.5)), b.Min.X, b.Max.X)
			for x := x0; x < x1; x++ {
				row[x-b.Min.X] = 0xff
			}
		}
	}
}

// FillAA writes anti-aliased coverage into mask using 4x4 supersampling.
func (r *Rasterizer) FillAA(mask *image.Alpha, pathEdges []path.Edge, fillRule FillRule) {
	edges, yMin, yMax := buildEdges(pathEdges, mask.Rect)
	if len(edges) == 0 {
		return
	}

	b := mask.Rect
	width := b.Dx()
	if cap(r.cover) < width {
		r.cover = make([]uint16, width)
	}
	cover := r.cover[:width]

	superMin := b.Min.X * SupersampleScale
	superMax := b.Max.X * SupersampleScale

	for y := yMin; y < yMax; y++ {
		clear(cover)
		touched := false

		for sub := 0; sub < SupersampleScale; sub++ {
			scanY := float64(y) + (float64(sub)+0.5)/SupersampleScale
			r.scanline(edges, scanY, fillRule)

			for _, s := range r.spans {
				k0 := clampInt(int(math.Ceil(s.x0*SupersampleScale-0.5)), superMin, superMax)
				k1 := clampInt(int(math.Ceil(s.x1*SupersampleScale-0.5)), superMin, superMax)
				for k := k0; k < k1; k++ {
					cover[(k-superMin)>>SupersampleShift]++
				}
				touched = touched || k0 < k1
			}
		}

		if !touched {
			continue
		}

		row := mask.Pix[(y-b.Min.Y)*mask.Stride:]
		for i, c := range cover {
			if c == 0 {
				continue
			}
			row[i] = uint8(uint32(c) * 0xff / supersampleArea) //nolint:gosec // c <= supersampleArea
		}
	}
}

// scanline collects the inside spans at height y into r.spans.
func (r *Rasterizer) scanline(edges []Edge, y float64, fillRule FillRule) {
	r.spans = r.spans[:0]
	r.aet.Clear()

	for i := range edges {
		if edges[i].y0 <= y && y < edges[i].y1 {
			r.aet.AddAtY(edges[i], y)
		}
	}

	active := r.aet.Edges()
	if len(active) == 0 {
		return
	}
	r.aet.Sort()

	if fillRule == FillRuleEvenOdd {
		for i := 0; i+1 < len(active); i += 2 {
			r.spans = append(r.spans, span{x0: active[i].x, x1: active[i+1].x})
		}
		return
	}

	winding := 0
	var x0 float64
	for _, e := range active {
		if winding == 0 {
			x0 = e.x
		}
		winding += e.dir
		if winding == 0 {
			r.spans = append(r.spans, span{x0: x0, x1: e.x})
		}
	}
}

// buildEdges converts path edges to rasterizer edges, dropping horizontal
// ones, and returns the pixel rows [yMin, yMax) they touch within bounds.
func buildEdges(pathEdges []path.Edge, bounds image.Rectangle) (edges []Edge, yMin, yMax int) {
	edges = make([]Edge, 0, len(pathEdges))
	top, bottom := math.MaxFloat64, -math.MaxFloat64
	for _, pe := range pathEdges {
		if pe.P0.Y == pe.P1.Y {
			continue
		}
		e := NewEdge(pe.P0, pe.P1)
		top = math.Min(top, e.y0)
		bottom = math.Max(bottom, e.y1)
		edges = append(edges, e)
	}
	if len(edges) == 0 {
		return nil, 0, 0
	}

	yMin = clampInt(int(math.Floor(top)), bounds.Min.Y, bounds.Max.Y)
	yMax = clampInt(int(math.Ceil(bottom)), bounds.Min.Y, bounds.Max.Y)
	return edges, yMin, yMax
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
