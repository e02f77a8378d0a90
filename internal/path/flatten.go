// Package path turns outline elements into straight edges for the rasterizer.
package path

import "math"

// Point represents a 2D point in device space.
type Point struct {
	X, Y float64
}

// Tolerance is the maximum distance between a curve and its flattened polyline.
const Tolerance = 0.1

// maxDepth bounds curve subdivision for degenerate control points.
const maxDepth = 16

// PathElement represents an element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath.
type MoveTo struct{ Point Point }

func (MoveTo) isPathElement() {}

// LineTo draws a line.
type LineTo struct{ Point Point }

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic curve.
type QuadTo struct{ Control, Point Point }

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic curve.
type CubicTo struct{ Control1, Control2, Point Point }

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

func (p Point) lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

func (p Point) sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

func (p Point) dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

func (p Point) distance(q Point) float64 {
	d := p.sub(q)
	return math.Sqrt(d.X*d.X + d.Y*d.Y)
}

// FlattenQuadratic returns the polyline approximating the quadratic curve
// p0-p1-p2, excluding p0 and ending at p2.
func FlattenQuadratic(p0, p1, p2 Point, tolerance float64) []Point {
	var points []Point
	flattenQuadraticRec(p0, p1, p2, tolerance, 0, &points)
	return points
}

func flattenQuadraticRec(p0, p1, p2 Point, tolerance float64, depth int, points *[]Point) {
	if depth >= maxDepth || distanceToLine(p1, p0, p2) < tolerance {
		*points = append(*points, p2)
		return
	}

	q0 := p0.lerp(p1, 0.5)
	q1 := p1.lerp(p2, 0.5)
	q2 := q0.lerp(q1, 0.5)

	flattenQuadraticRec(p0, q0, q2, tolerance, depth+1, points)
	flattenQuadraticRec(q2, q1, p2, tolerance, depth+1, points)
}

// FlattenCubic returns the polyline approximating the cubic curve
// p0-p1-p2-p3, excluding p0 and ending at p3.
func FlattenCubic(p0, p1, p2, p3 Point, tolerance float64) []Point {
	var points []Point
	flattenCubicRec(p0, p1, p2, p3, tolerance, 0, &points)
	return points
}

func flattenCubicRec(p0, p1, p2, p3 Point, tolerance float64, depth int, points *[]Point) {
	dist := math.Max(distanceToLine(p1, p0, p3), distanceToLine(p2, p0, p3))
	if depth >= maxDepth || dist < tolerance {
		*points = append(*points, p3)
		return
	}

	// de Casteljau split at t=0.5
	q0 := p0.lerp(p1, 0.5)
	q1 := p1.lerp(p2, 0.5)
	q2 := p2.lerp(p3, 0.5)
	r0 := q0.lerp(q1, 0.5)
	r1 := q1.lerp(q2, 0.5)
	s := r0.lerp(r1, 0.5)

	flattenCubicRec(p0, q0, r0, s, tolerance, depth+1, points)
	flattenCubicRec(s, r1, q2, p3, tolerance, depth+1, points)
}

// distanceToLine is the distance from p to the segment a-b.
func distanceToLine(p, a, b Point) float64 {
	ab := b.sub(a)
	abLenSq := ab.dot(ab)
	if abLenSq < 1e-20 {
		return p.distance(a)
	}

	t := p.sub(a).dot(ab) / abLenSq
	switch {
	case t < 0:
		return p.distance(a)
	case t > 1:
		return p.distance(b)
	}
	return p.distance(a.add(ab.mul(t)))
}
