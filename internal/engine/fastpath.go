package engine

// FastPathRings builds one output ring per already-simple input ring,
// skipping graph construction entirely for the case where the
// intersection finder returns zero records. Each ring's winding is
// derived with the same extremal-vertex convexity test the seeder uses,
// applied directly to the ring's own vertices since there is no graph to
// resolve predecessor/successor through.
func FastPathRings(rings [][]Point, tol float64) []OutputRing {
	out := make([]OutputRing, len(rings))
	for r, ring := range rings {
		n := len(ring) - 1
		chosen := 0
		for i := 1; i < n; i++ {
			if ring[i].X < ring[chosen].X || (ring[i].X == ring[chosen].X && ring[i].Y < ring[chosen].Y) {
				chosen = i
			}
		}

		pred := ring[floorMod(chosen-1, n)]
		succ := ring[floorMod(chosen+1, n)]

		winding := -1
		if isConvexRightHand(pred, ring[chosen], succ, true, tol) {
			winding = 1
		}

		out[r] = OutputRing{Coords: append([]Point(nil), ring...), Parent: -1, Winding: winding}
	}
	return out
}
