package engine

// OutputRing is one simple ring produced by the walker, carrying the
// parent/winding it was predicted with — NetWinding is left at zero
// until the post-processor fills it in.
type OutputRing struct {
	Coords     []Point
	Parent     int
	Winding    int
	NetWinding int
}

// Walk pops from seed until empty, tracing one output ring per pop by
// following next-intersection-along-edge pointers until the walk returns
// to its starting coordinate. It mutates g.Isects' Walkable flags in
// place and may enqueue additional work as it discovers an unfinished
// second ring through an ISECT it has already visited.
func Walk(g *Graph, seed []QueueItem) []OutputRing {
	q := newWorkQueue(seed)
	var out []OutputRing

	for {
		item, ok := q.pop()
		if !ok {
			break
		}

		start := item.Isect
		ring := []Point{g.Isects[start].Point}

		var walkingEdge RingAndEdge
		var nxtIsect int
		if g.Isects[start].Walkable1 {
			walkingEdge = g.Isects[start].Edge1
			nxtIsect = g.Isects[start].NextAlong1
		} else {
			walkingEdge = g.Isects[start].Edge2
			nxtIsect = g.Isects[start].NextAlong2
		}

		currentIsect := start
		thisRingIndex := len(out)

		for !g.Isects[nxtIsect].Point.Equal(g.Isects[start].Point) {
			ring = append(ring, g.Isects[nxtIsect].Point)
			q.removeByIsect(nxtIsect)

			arrivedOnEdge1 := g.Isects[nxtIsect].Edge1 == walkingEdge

			var otherEdge RingAndEdge
			var otherNext int
			var arrivalStillWalkable bool
			if arrivedOnEdge1 {
				otherEdge = g.Isects[nxtIsect].Edge2
				otherNext = g.Isects[nxtIsect].NextAlong2
				arrivalStillWalkable = g.Isects[nxtIsect].Walkable1
				g.Isects[nxtIsect].Walkable2 = false
			} else {
				otherEdge = g.Isects[nxtIsect].Edge1
				otherNext = g.Isects[nxtIsect].NextAlong1
				arrivalStillWalkable = g.Isects[nxtIsect].Walkable2
				g.Isects[nxtIsect].Walkable1 = false
			}

			if arrivalStillWalkable {
				rightHanded := item.Winding == 1
				convex := isConvexRightHand(
					g.Isects[currentIsect].Point,
					g.Isects[nxtIsect].Point,
					g.Isects[otherNext].Point,
					rightHanded, 0)

				if convex {
					q.push(QueueItem{Isect: nxtIsect, Parent: item.Parent, Winding: -item.Winding})
				} else {
					q.push(QueueItem{Isect: nxtIsect, Parent: thisRingIndex, Winding: item.Winding})
				}
			}

			currentIsect = nxtIsect
			walkingEdge = otherEdge
			nxtIsect = otherNext
		}

		ring = append(ring, g.Isects[nxtIsect].Point)
		out = append(out, OutputRing{
			Coords:  ring,
			Parent:  item.Parent,
			Winding: item.Winding,
		})
	}

	return out
}
