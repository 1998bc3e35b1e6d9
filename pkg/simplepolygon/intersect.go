package simplepolygon

// bruteForceIntersector is the default Intersector: an O(e²) scan over
// every pair of edges, reporting a crossing for each pair whose segments
// meet strictly in their interiors. It is the simplest thing that
// satisfies the contract and is adequate for the small polygons this
// package targets; a caller with larger input can supply a sweep-line
// Intersector instead.
type bruteForceIntersector struct{}

// edgeStrictness bounds how close to an endpoint (parametric value 0 or
// 1) a crossing may fall before it is treated as touching rather than
// crossing, and is also the threshold below which two edges' direction
// vectors are treated as parallel.
const edgeStrictness = 1e-9

type edgeRef struct {
	ring, edge int
	p1, p2     Point
}

func (b bruteForceIntersector) FindIntersections(rings []Ring) ([]IntersectionRecord, error) {
	var edges []edgeRef
	for r, ring := range rings {
		n := len(ring) - 1
		for j := 0; j < n; j++ {
			edges = append(edges, edgeRef{ring: r, edge: j, p1: ring[j], p2: ring[j+1]})
		}
	}

	var records []IntersectionRecord
	for i := 0; i < len(edges); i++ {
		for k := i + 1; k < len(edges); k++ {
			a, c := edges[i], edges[k]
			if a.ring == c.ring && isAdjacentEdge(a.edge, c.edge, len(rings[a.ring])-1) {
				continue
			}

			pt, t, u, ok := segmentCross(a.p1, a.p2, c.p1, c.p2)
			if !ok {
				continue
			}

			records = append(records,
				IntersectionRecord{
					Point:        pt,
					IncomingRing: a.ring, IncomingEdge: a.edge, IncomingFrac: t,
					CrossingRing: c.ring, CrossingEdge: c.edge, CrossingFrac: u,
					Unique: true,
				},
				IntersectionRecord{
					Point:        pt,
					IncomingRing: c.ring, IncomingEdge: c.edge, IncomingFrac: u,
					CrossingRing: a.ring, CrossingEdge: a.edge, CrossingFrac: t,
					Unique: false,
				},
			)
		}
	}
	return records, nil
}

func isAdjacentEdge(j, k, edgeCount int) bool {
	if j == k {
		return true
	}
	return k == (j+1)%edgeCount || j == (k+1)%edgeCount
}

// segmentCross reports the strict interior crossing of segments p1-p2 and
// p3-p4, if one exists, along with each segment's parametric fraction at
// the crossing. Parallel (including collinear-overlapping) segments are
// reported as no crossing; overlapping collinear edges are outside this
// package's supported input space.
func segmentCross(p1, p2, p3, p4 Point) (pt Point, t, u float64, ok bool) {
	d1x, d1y := p2.X-p1.X, p2.Y-p1.Y
	d2x, d2y := p4.X-p3.X, p4.Y-p3.Y

	denom := d1x*d2y - d1y*d2x
	if denom > -edgeStrictness && denom < edgeStrictness {
		return Point{}, 0, 0, false
	}

	dx, dy := p3.X-p1.X, p3.Y-p1.Y
	t = (dx*d2y - dy*d2x) / denom
	u = (dx*d1y - dy*d1x) / denom

	if t <= edgeStrictness || t >= 1-edgeStrictness || u <= edgeStrictness || u >= 1-edgeStrictness {
		return Point{}, 0, 0, false
	}

	return Point{X: p1.X + t*d1x, Y: p1.Y + t*d1y}, t, u, true
}
