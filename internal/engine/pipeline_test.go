package engine

import "testing"

// mapIndex is a minimal SpatialIndex test double: an exact-coordinate
// map instead of an R-tree. The engine only requires exact-match lookup,
// so this is a faithful stand-in for tests that don't need to exercise
// the production R-tree-backed index in pkg/simplepolygon.
type mapIndex struct {
	byPoint map[Point]int
}

func newMapIndex() *mapIndex {
	return &mapIndex{byPoint: make(map[Point]int)}
}

func (m *mapIndex) Insert(p Point, isect int) {
	m.byPoint[p] = isect
}

func (m *mapIndex) Lookup(p Point) (int, bool) {
	isect, ok := m.byPoint[p]
	return isect, ok
}

func shoelace(ring []Point) float64 {
	sum := 0.0
	n := len(ring) - 1
	for i := 0; i < n; i++ {
		j := i + 1
		sum += ring[i].X*ring[j].Y - ring[j].X*ring[i].Y
	}
	if sum < 0 {
		sum = -sum
	}
	return sum / 2
}

func pointInPolygon(pt Point, ring []Point) bool {
	inside := false
	n := len(ring) - 1
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := ring[i], ring[j]
		if (pi.Y > pt.Y) != (pj.Y > pt.Y) {
			xCross := pj.X + (pt.Y-pj.Y)/(pi.Y-pj.Y)*(pi.X-pj.X)
			if pt.X < xCross {
				inside = !inside
			}
		}
	}
	return inside
}

// TestFigureEight walks the self-intersecting bowtie [[0,0],[2,0],[0,2],
// [2,2],[0,0]] end to end, expecting two triangular output rings: one
// with winding +1 spanning (0,0)-(2,0)-(1,1), one with winding -1
// spanning (1,1)-(0,2)-(2,2).
func TestFigureEight(t *testing.T) {
	rings := [][]Point{{{0, 0}, {2, 0}, {0, 2}, {2, 2}, {0, 0}}}

	// One strict crossing: edge 1 ((2,0)->(0,2)) crosses edge 3
	// ((2,2)->(0,0)) at (1,1), each at parametric fraction 0.5.
	records := []IntersectionRecord{
		{Point: Point{1, 1}, IncomingRing: 0, IncomingEdge: 1, IncomingFrac: 0.5,
			CrossingRing: 0, CrossingEdge: 3, CrossingFrac: 0.5, Unique: true},
		{Point: Point{1, 1}, IncomingRing: 0, IncomingEdge: 3, IncomingFrac: 0.5,
			CrossingRing: 0, CrossingEdge: 1, CrossingFrac: 0.5, Unique: false},
	}

	idx := newMapIndex()
	g, err := BuildGraph(rings, records, idx)
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}

	edgeCount := []int{4}
	seeds := SeedWindings(g, 1, edgeCount, 1e-9)
	if len(seeds) != 1 {
		t.Fatalf("SeedWindings: got %d seeds, want 1", len(seeds))
	}

	out := Walk(g, seeds)
	if len(out) != 2 {
		t.Fatalf("Walk: got %d output rings, want 2", len(out))
	}

	AssignParents(out, pointInPolygon, shoelace)
	AssignNetWindings(out)

	byWinding := map[int]OutputRing{}
	for _, r := range out {
		byWinding[r.Winding] = r
	}

	pos, okPos := byWinding[1]
	neg, okNeg := byWinding[-1]
	if !okPos || !okNeg {
		t.Fatalf("expected one ring of winding +1 and one of winding -1, got %+v", out)
	}

	if len(pos.Coords) != 4 || !pos.Coords[0].Equal(Point{0, 0}) {
		t.Errorf("positive ring = %v, want to start at (0,0) with 3 vertices", pos.Coords)
	}
	if len(neg.Coords) != 4 {
		t.Errorf("negative ring has %d coords, want 4 (3 vertices, closed)", len(neg.Coords))
	}

	if pos.Parent != -1 || neg.Parent != -1 {
		t.Errorf("expected both rings to be roots (parent -1), got pos.Parent=%d neg.Parent=%d", pos.Parent, neg.Parent)
	}
	if pos.NetWinding != 1 || neg.NetWinding != -1 {
		t.Errorf("expected net windings (1, -1), got (%d, %d)", pos.NetWinding, neg.NetWinding)
	}
}

func TestFastPathRings(t *testing.T) {
	rings := [][]Point{{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}}
	out := FastPathRings(rings, 1e-9)
	if len(out) != 1 {
		t.Fatalf("FastPathRings: got %d rings, want 1", len(out))
	}
	if out[0].Winding != 1 {
		t.Errorf("FastPathRings: winding = %d, want 1 for a CCW square", out[0].Winding)
	}
	if out[0].Parent != -1 {
		t.Errorf("FastPathRings: parent = %d, want -1", out[0].Parent)
	}
}

func TestAssignParentsNestedHole(t *testing.T) {
	outer := OutputRing{
		Coords:  []Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {0, 0}},
		Parent:  -1,
		Winding: 1,
	}
	inner := OutputRing{
		Coords:  []Point{{1, 1}, {1, 3}, {3, 3}, {3, 1}, {1, 1}},
		Parent:  -1,
		Winding: -1,
	}
	rings := []OutputRing{outer, inner}

	AssignParents(rings, pointInPolygon, shoelace)
	AssignNetWindings(rings)

	if rings[0].Parent != -1 {
		t.Errorf("outer ring parent = %d, want -1", rings[0].Parent)
	}
	if rings[1].Parent != 0 {
		t.Errorf("inner ring parent = %d, want 0", rings[1].Parent)
	}
	if rings[0].NetWinding != 1 {
		t.Errorf("outer net winding = %d, want 1", rings[0].NetWinding)
	}
	if rings[1].NetWinding != 0 {
		t.Errorf("inner net winding = %d, want 0", rings[1].NetWinding)
	}
}
