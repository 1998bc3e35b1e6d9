package engine

import "fmt"

// InvalidVertexError reports that two non-closing vertices of the input
// polygon share a coordinate.
type InvalidVertexError struct {
	Point       Point
	Ring, Index int
}

func (e *InvalidVertexError) Error() string {
	return fmt.Sprintf("duplicate vertex (%g, %g) at ring %d vertex %d",
		e.Point.X, e.Point.Y, e.Ring, e.Index)
}

// DegenerateRingError reports a ring with fewer than three distinct
// vertices once closed — not enough to bound an area.
type DegenerateRingError struct {
	Ring, VertexCount int
}

func (e *DegenerateRingError) Error() string {
	return fmt.Sprintf("ring %d has only %d vertices, need at least 3", e.Ring, e.VertexCount)
}

// InconsistencyError reports a next-intersection reference that could
// not be resolved during graph wiring. It is the engine's only fatal,
// should-never-happen error class — everything else is validated before
// graph construction.
type InconsistencyError struct {
	Reason string
}

func (e *InconsistencyError) Error() string {
	return fmt.Sprintf("graph inconsistency: %s", e.Reason)
}
