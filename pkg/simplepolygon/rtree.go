package simplepolygon

import "github.com/dhconnelly/rtreego"

// rtreeIndex is the default Index implementation: an R-tree keyed on
// point-sized rectangles (side pointEpsilon) at each Isect's coordinate,
// keying single points rather than coverage boxes.
type rtreeIndex struct {
	tree *rtreego.Rtree
}

// isectPoint implements rtreego.Spatial as a box of side pointEpsilon at
// Point, so SearchIntersect against an equal box returns the entries
// inserted at that coordinate (and any within pointEpsilon of it, which
// Lookup filters out).
type isectPoint struct {
	p     Point
	isect int
}

func (e isectPoint) Bounds() rtreego.Rect {
	rect, _ := rtreego.NewRect(rtreego.Point{e.p.X, e.p.Y}, []float64{pointEpsilon, pointEpsilon})
	return rect
}

// pointEpsilon is the minimum side length rtreego.NewRect accepts for a
// rectangle; it must be strictly positive even though the engine never
// needs more than exact-coordinate lookups.
const pointEpsilon = 1e-12

func newRTreeIndex() *rtreeIndex {
	return &rtreeIndex{tree: rtreego.NewTree(2, 25, 50)}
}

// Insert adds the Isect at index isect to the tree, keyed by p.
func (idx *rtreeIndex) Insert(p Point, isect int) {
	idx.tree.Insert(isectPoint{p: p, isect: isect})
}

// Lookup returns the index of an Isect inserted at a coordinate equal to
// p. Entries whose rectangles merely overlap the query rectangle are
// skipped by an exact coordinate comparison; the graph builder inserts
// each Isect exactly once, so the first exact match found is returned.
func (idx *rtreeIndex) Lookup(p Point) (int, bool) {
	rect, _ := rtreego.NewRect(rtreego.Point{p.X, p.Y}, []float64{pointEpsilon, pointEpsilon})
	for _, spatial := range idx.tree.SearchIntersect(rect) {
		e := spatial.(isectPoint)
		if e.p.Equal(p) {
			return e.isect, true
		}
	}
	return 0, false
}
