package path

// Edge represents a line segment from P0 to P1.
type Edge struct {
	P0, P1 Point
}

// Edges flattens elements into straight edges. Every subpath is closed back
// to its own start point, whether or not it ends with Close, and no edge ever
// joins two subpaths. Zero-length edges are omitted.
func Edges(elements []PathElement) []Edge {
	b := edgeBuilder{edges: make([]Edge, 0, len(elements)*2)}
	for _, elem := range elements {
		switch e := elem.(type) {
		case MoveTo:
			b.closeSubpath()
			b.start = e.Point
			b.current = e.Point
		case LineTo:
			b.lineTo(e.Point)
		case QuadTo:
			for _, pt := range FlattenQuadratic(b.current, e.Control, e.Point, Tolerance) {
				b.lineTo(pt)
			}
		case CubicTo:
			for _, pt := range FlattenCubic(b.current, e.Control1, e.Control2, e.Point, Tolerance) {
				b.lineTo(pt)
			}
		case Close:
			b.closeSubpath()
		}
	}
	b.closeSubpath()
	return b.edges
}

type edgeBuilder struct {
	edges   []Edge
	start   Point
	current Point
	open    bool
}

func (b *edgeBuilder) lineTo(pt Point) {
	b.open = true
	b.add(b.current, pt)
	b.current = pt
}

func (b *edgeBuilder) closeSubpath() {
	if !b.open {
		return
	}
	b.open = false
	b.add(b.current, b.start)
	b.current = b.start
}

func (b *edgeBuilder) add(p0, p1 Point) {
	if p0 == p1 {
		return
	}
	b.edges = append(b.edges, Edge{P0: p0, P1: p1})
}

// Bounds returns the bounding box of edges. ok is false when edges is empty.
func Bounds(edges []Edge) (minX, minY, maxX, maxY float64, ok bool) {
	if len(edges) == 0 {
		return 0, 0, 0, 0, false
	}
	minX, minY = edges[0].P0.X, edges[0].P0.Y
	maxX, maxY = minX, minY
	for _, e := range edges {
		for _, p := range [2]Point{e.P0, e.P1} {
			minX = min(minX, p.X)
			minY = min(minY, p.Y)
			maxX = max(maxX, p.X)
			maxY = max(maxY, p.Y)
		}
	}
	return minX, minY, maxX, maxY, true
}
