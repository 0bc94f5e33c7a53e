package geom

// Rect is an axis-aligned rectangle in the plane, used as the quadtree's
// world boundary and node boundaries.
//
// Contains is half-open — min inclusive, max exclusive — so a point on a
// shared edge between two adjacent quadrants belongs to exactly one of
// them: the one on the high-X / high-Y side of that edge.
type Rect struct {
	Pmin, Pmax Point2D
}

// NewRect builds a Rect; callers must ensure pmin <= pmax componentwise.
func NewRect(pmin, pmax Point2D) Rect {
	return Rect{Pmin: pmin, Pmax: pmax}
}

// Contains reports whether p lies within [Pmin, Pmax).
func (r Rect) Contains(p Point2D) bool {
	return p.X >= r.Pmin.X && p.X < r.Pmax.X &&
		p.Y >= r.Pmin.Y && p.Y < r.Pmax.Y
}

// Intersects reports whether r and other overlap (closed intervals).
func (r Rect) Intersects(other Rect) bool {
	return r.Pmin.X <= other.Pmax.X && r.Pmax.X >= other.Pmin.X &&
		r.Pmin.Y <= other.Pmax.Y && r.Pmax.Y >= other.Pmin.Y
}

// IsWithin reports whether r is fully contained by other.
func (r Rect) IsWithin(other Rect) bool {
	return r.Pmin.X >= other.Pmin.X && r.Pmax.X <= other.Pmax.X &&
		r.Pmin.Y >= other.Pmin.Y && r.Pmax.Y <= other.Pmax.Y
}

// IsValid reports whether pmin <= pmax componentwise.
func (r Rect) IsValid() bool {
	return r.Pmin.X <= r.Pmax.X && r.Pmin.Y <= r.Pmax.Y
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point2D {
	return Point2D{
		X: (r.Pmin.X + r.Pmax.X) / 2,
		Y: (r.Pmin.Y + r.Pmax.Y) / 2,
	}
}

// MinDist returns the minimum Euclidean distance from p to the closest
// point of r — zero if p is inside r. Per-axis distance is
// max(pmin-q, 0, q-pmax), combined by Euclidean norm.
func (r Rect) MinDist(p Point2D) Scalar {
	dx := max3(r.Pmin.X-p.X, 0, p.X-r.Pmax.X)
	dy := max3(r.Pmin.Y-p.Y, 0, p.Y-r.Pmax.Y)
	return Sqrt(dx*dx + dy*dy)
}

func max3(a, b, c Scalar) Scalar {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

// Quadrants returns the four equal sub-rectangles of r in the fixed
// {NW, NE, SW, SE} order the quadtree's subdivision protocol requires,
// using the midpoint of r as the split point.
//
// NW is the (low-X, low-Y) quadrant, NE is (high-X, low-Y), SW is
// (low-X, high-Y), SE is (high-X, high-Y) — the labels track fixed
// iteration order, not literal compass directions. A point sitting
// exactly on both split lines (Pmin of the SE quadrant) therefore
// resolves to SE, the last quadrant tried, under the half-open Contains
// above.
func (r Rect) Quadrants() [4]Rect {
	mid := r.Center()
	return [4]Rect{
		NewRect(r.Pmin, mid),                                       // NW
		NewRect(Point2D{mid.X, r.Pmin.Y}, Point2D{r.Pmax.X, mid.Y}), // NE
		NewRect(Point2D{r.Pmin.X, mid.Y}, Point2D{mid.X, r.Pmax.Y}), // SW
		NewRect(mid, r.Pmax),                                       // SE
	}
}
