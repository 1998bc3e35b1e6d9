package engine

import "sort"

// QueueItem is one entry of the walker's work queue: an ISECT to start a
// walk from, its predicted parent output-ring index, and its predicted
// winding.
type QueueItem struct {
	Isect   int
	Parent  int
	Winding int
}

// SeedWindings scans each input ring's contiguous block of ring-vertex
// ISECTs, picks the leftmost one, and derives that ring's initial
// winding from local convexity. It returns one QueueItem per ring,
// already ordered for a LIFO stack so that the entry whose leftmost
// ISECT has the largest x pops first — reversing this ordering produces
// incorrect parent assignment for rings nested inside other rings.
func SeedWindings(g *Graph, ringCount int, edgeCount []int, tol float64) []QueueItem {
	items := make([]QueueItem, 0, ringCount)

	offset := 0
	for r := 0; r < ringCount; r++ {
		e := edgeCount[r]
		chosen := offset
		for j := offset + 1; j < offset+e; j++ {
			if g.Isects[j].Point.X < g.Isects[chosen].Point.X ||
				(g.Isects[j].Point.X == g.Isects[chosen].Point.X && g.Isects[j].Point.Y < g.Isects[chosen].Point.Y) {
				chosen = j
			}
		}

		pred := findPredecessor(g, chosen)
		succ := g.Isects[chosen].NextAlong2

		winding := -1
		if isConvexRightHand(g.Isects[pred].Point, g.Isects[chosen].Point, g.Isects[succ].Point, true, tol) {
			winding = 1
		}

		items = append(items, QueueItem{Isect: chosen, Parent: -1, Winding: winding})
		offset += e
	}

	sortQueueAscendingByX(items, g)
	return items
}

// findPredecessor linearly scans every ISECT for one whose NextAlong1 or
// NextAlong2 points at target. This is intentionally linear: the graph
// maintains no reverse pointers, and a predecessor is only needed once
// per ring during seeding. Ring-vertex ISECTs (index < g.N) only ever have
// NextAlong2 resolved, so their NextAlong1 is not consulted.
func findPredecessor(g *Graph, target int) int {
	for i := range g.Isects {
		if g.Isects[i].NextAlong2 == target || (i >= g.N && g.Isects[i].NextAlong1 == target) {
			return i
		}
	}
	return target
}

// sortQueueAscendingByX orders items so the largest-x leftmost-ISECT is
// last — the position a LIFO stack pops first.
func sortQueueAscendingByX(items []QueueItem, g *Graph) {
	sort.SliceStable(items, func(i, k int) bool {
		return g.Isects[items[i].Isect].Point.X < g.Isects[items[k].Isect].Point.X
	})
}
