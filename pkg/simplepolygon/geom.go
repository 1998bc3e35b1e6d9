package simplepolygon

import "math"

// shoelaceArea is the default AreaFunc: the absolute value of the
// shoelace-formula signed area of a closed ring (first point repeated as
// last), so it can rank rings by size regardless of winding direction.
func shoelaceArea(ring []Point) float64 {
	if len(ring) < 3 {
		return 0
	}
	sum := 0.0
	n := len(ring) - 1 // last point duplicates the first
	for i := 0; i < n; i++ {
		j := i + 1
		sum += ring[i].X*ring[j].Y - ring[j].X*ring[i].Y
	}
	return math.Abs(sum) / 2
}

// rayCastPointInPolygon is the default PointInPolygonFunc: the standard
// even-odd ray-casting test, casting a ray in the +X direction from pt
// and counting edge crossings. Points exactly on the boundary (on any
// edge, vertices included) are reported as outside, so containment is
// strict.
func rayCastPointInPolygon(pt Point, ring []Point) bool {
	inside := false
	n := len(ring) - 1 // last point duplicates the first
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := ring[i], ring[j]
		if (pi.X-pt.X)*(pj.Y-pt.Y) == (pj.X-pt.X)*(pi.Y-pt.Y) &&
			math.Min(pi.X, pj.X) <= pt.X && pt.X <= math.Max(pi.X, pj.X) &&
			math.Min(pi.Y, pj.Y) <= pt.Y && pt.Y <= math.Max(pi.Y, pj.Y) {
			return false
		}
		if (pi.Y > pt.Y) != (pj.Y > pt.Y) {
			xCross := pj.X + (pt.Y-pj.Y)/(pi.Y-pj.Y)*(pi.X-pj.X)
			if pt.X < xCross {
				inside = !inside
			}
		}
	}
	return inside
}
