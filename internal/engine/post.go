package engine

import "math"

// AssignParents finds, for every walked ring that the walk itself never
// assigned a parent to (Parent == -1: a ring seeded directly from an
// input ring, or one predicted during a walk from a root ring as hugging
// its outside), the smallest-area ring that strictly contains it. When
// there is at most one such ring, nothing is changed. Rings are compared using one
// representative point each (the ring's own first vertex) against every
// other output ring's boundary.
func AssignParents(rings []OutputRing, pip PointInPolygonFunc, area AreaFunc) {
	roots := make([]int, 0)
	for i := range rings {
		if rings[i].Parent == -1 {
			roots = append(roots, i)
		}
	}
	if len(roots) <= 1 {
		return
	}

	for _, ci := range roots {
		rep := rings[ci].Coords[0]
		best := -1
		bestArea := math.Inf(1)

		for ri := range rings {
			if ri == ci {
				continue
			}
			if !pip(rep, rings[ri].Coords) {
				continue
			}
			a := area(rings[ri].Coords)
			if a < bestArea {
				bestArea = a
				best = ri
			}
		}

		rings[ci].Parent = best
	}
}

// AssignNetWindings computes each ring's net winding by a depth-first
// walk of the parent tree: a root's net winding is its own winding; a
// descendant's is its parent's net winding plus its own. The parent
// relation is acyclic, so memoized recursion terminates regardless of
// index order between parent and child.
func AssignNetWindings(rings []OutputRing) {
	resolved := make([]bool, len(rings))

	var resolve func(i int) int
	resolve = func(i int) int {
		if resolved[i] {
			return rings[i].NetWinding
		}
		if rings[i].Parent == -1 {
			rings[i].NetWinding = rings[i].Winding
		} else {
			rings[i].NetWinding = resolve(rings[i].Parent) + rings[i].Winding
		}
		resolved[i] = true
		return rings[i].NetWinding
	}

	for i := range rings {
		resolve(i)
	}
}
