package engine

import (
	"fmt"
	"sort"
)

// BuildGraph constructs the pseudo-vertex/intersection graph from
// normalized, closed rings and the intersection records produced by an
// external segment-intersection finder.
//
// rings must already be normalized (Normalize): each ring closed, its
// first point equal to its last. index receives every Isect, keyed by
// coordinate, and is used immediately afterward to resolve the "next
// intersection along this edge" pointers — the graph builder both writes
// to and reads from it within this single call.
func BuildGraph(rings [][]Point, records []IntersectionRecord, index SpatialIndex) (*Graph, error) {
	edgeCount := make([]int, len(rings))
	ringOffset := make([]int, len(rings))
	n := 0
	for r, ring := range rings {
		e := len(ring) - 1
		edgeCount[r] = e
		ringOffset[r] = n
		n += e
	}

	g := &Graph{N: n}
	g.Isects = make([]Isect, n, n+len(records)/2+1)
	pvByEdge := make(map[RingAndEdge][]PseudoVertex, n+len(records))

	// Step 1: seed PVs and ISECTs for ring vertices.
	for r, ring := range rings {
		e := edgeCount[r]
		for j := 0; j < e; j++ {
			edgeKey := RingAndEdge{Ring: r, Edge: j}
			pvByEdge[edgeKey] = append(pvByEdge[edgeKey], PseudoVertex{
				Point:   ring[j+1],
				Param:   1.0,
				EdgeIn:  edgeKey,
				EdgeOut: RingAndEdge{Ring: r, Edge: floorMod(j+1, e)},
			})

			g.Isects[ringOffset[r]+j] = Isect{
				Point:     ring[j],
				Edge1:     RingAndEdge{Ring: r, Edge: floorMod(j-1, e)},
				Edge2:     edgeKey,
				Walkable1: false,
				Walkable2: true,
			}
		}
	}

	// Step 2: push one PV per intersection record, and one ISECT per
	// unique crossing.
	for _, rec := range records {
		edgeKey := RingAndEdge{Ring: rec.IncomingRing, Edge: rec.IncomingEdge}
		pvByEdge[edgeKey] = append(pvByEdge[edgeKey], PseudoVertex{
			Point:   rec.Point,
			Param:   rec.IncomingFrac,
			EdgeIn:  edgeKey,
			EdgeOut: RingAndEdge{Ring: rec.CrossingRing, Edge: rec.CrossingEdge},
		})

		if rec.Unique {
			g.Isects = append(g.Isects, Isect{
				Point:     rec.Point,
				Edge1:     RingAndEdge{Ring: rec.IncomingRing, Edge: rec.IncomingEdge},
				Edge2:     RingAndEdge{Ring: rec.CrossingRing, Edge: rec.CrossingEdge},
				Walkable1: true,
				Walkable2: true,
			})
		}
	}

	// Step 3: sort each edge's PV list by param ascending; the ring PV
	// (param 1.0) always sorts last.
	g.PVRange = make(map[RingAndEdge][2]int, len(pvByEdge))
	for r, ring := range rings {
		e := edgeCount[r]
		for j := 0; j < e; j++ {
			edgeKey := RingAndEdge{Ring: r, Edge: j}
			list := pvByEdge[edgeKey]
			sort.SliceStable(list, func(i, k int) bool { return list[i].Param < list[k].Param })

			start := len(g.PV)
			g.PV = append(g.PV, list...)
			g.PVRange[edgeKey] = [2]int{start, len(g.PV)}
		}
		_ = ring
	}

	// Step 4: load every ISECT into the spatial index keyed by coordinate.
	for i := range g.Isects {
		index.Insert(g.Isects[i].Point, i)
	}

	// Step 5: resolve each PV's next-intersection-along-its-incoming-edge.
	for r, ring := range rings {
		_ = ring
		e := edgeCount[r]
		for j := 0; j < e; j++ {
			edgeKey := RingAndEdge{Ring: r, Edge: j}
			rng := g.PVRange[edgeKey]
			start, end := rng[0], rng[1]
			for i := start; i < end; i++ {
				var next Point
				if i+1 < end {
					next = g.PV[i+1].Point
				} else {
					nextEdge := RingAndEdge{Ring: r, Edge: floorMod(j+1, e)}
					nextRng := g.PVRange[nextEdge]
					next = g.PV[nextRng[0]].Point
				}
				idx, ok := index.Lookup(next)
				if !ok {
					return nil, &InconsistencyError{Reason: fmt.Sprintf(
						"no intersection at (%g, %g) while resolving next-along-edge for ring %d edge %d", next.X, next.Y, r, j)}
				}
				g.PV[i].NextIsect = idx
			}
		}
	}

	// Step 6: resolve each ISECT's next-intersection-along-ringAndEdge1/2
	// by replaying every PV.
	for i := range g.PV {
		pv := g.PV[i]
		isectIdx, ok := index.Lookup(pv.Point)
		if !ok {
			return nil, &InconsistencyError{Reason: fmt.Sprintf(
				"no intersection at (%g, %g) while resolving ISECT pointers", pv.Point.X, pv.Point.Y)}
		}

		switch {
		case isectIdx < g.N:
			// Ring-vertex ISECTs always resolve onto the outgoing edge.
			g.Isects[isectIdx].NextAlong2 = pv.NextIsect
		case pv.EdgeIn == g.Isects[isectIdx].Edge1:
			g.Isects[isectIdx].NextAlong1 = pv.NextIsect
		default:
			g.Isects[isectIdx].NextAlong2 = pv.NextIsect
		}
	}

	return g, nil
}
