package engine

// Normalize closes any open ring, validates that every non-closing vertex
// across all rings is unique, and returns the closed rings plus the total
// count of non-closing vertices N. N is the number of ring-vertex
// intersections the graph builder will seed.
//
// A ring is "open" when its first and last points differ; Normalize
// appends the first point to close it rather than mutating the caller's
// slice.
func Normalize(rings [][]Point) (closed [][]Point, n int, err error) {
	closed = make([][]Point, len(rings))
	seen := make(map[Point]struct{})

	for r, ring := range rings {
		work := ring
		if len(work) == 0 || !work[0].Equal(work[len(work)-1]) {
			work = append(append([]Point(nil), ring...), ring[0])
		} else {
			work = append([]Point(nil), ring...)
		}

		nonClosing := len(work) - 1
		if nonClosing < 3 {
			return nil, 0, &DegenerateRingError{Ring: r, VertexCount: nonClosing}
		}

		for i := 0; i < nonClosing; i++ {
			v := work[i]
			if _, dup := seen[v]; dup {
				return nil, 0, &InvalidVertexError{Point: v, Ring: r, Index: i}
			}
			seen[v] = struct{}{}
		}

		closed[r] = work
		n += nonClosing
	}

	return closed, n, nil
}
