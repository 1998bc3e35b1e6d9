package simplepolygon

import "github.com/beetlebugorg/simplepolygon/internal/engine"

// Index maps coordinates to the index of the Isect stored at that
// coordinate. Its method set is identical to the engine's internal
// SpatialIndex, by design — any value satisfying Index also satisfies
// the engine's collaborator interface with no adapter needed, since
// Point is a type alias of engine.Point.
type Index interface {
	Insert(p Point, isect int)
	Lookup(p Point) (isect int, ok bool)
}

// IntersectionRecord is one per-viewpoint record of a strict (non-endpoint)
// crossing between two edges. It is an alias of the engine's own record
// type: an Intersector fills these in directly, with no conversion layer
// between the public API and the core.
type IntersectionRecord = engine.IntersectionRecord

// Intersector finds every strict crossing between edges of the normalized
// rings and reports it as a pair of IntersectionRecords, pluggable so
// callers can swap in a sweep-line algorithm for large inputs without
// touching the engine.
type Intersector interface {
	FindIntersections(rings []Ring) ([]IntersectionRecord, error)
}

// AreaFunc returns a non-negative scalar area for a closed ring, used by
// the smallest-area-parent containment rule.
type AreaFunc = engine.AreaFunc

// PointInPolygonFunc reports strict (boundary-excluded) interior
// containment of pt within the closed ring.
type PointInPolygonFunc = engine.PointInPolygonFunc

// Options configures Decompose. Decompose fills every field left at its
// zero value with the same default DefaultOptions uses, so the zero value
// is usable as is.
type Options struct {
	// Tolerance guards the extremal-vertex convexity test performed once
	// per ring during seeding against catastrophic cancellation on
	// near-collinear triples. Zero selects a small built-in default.
	Tolerance float64

	// Index backs the graph builder's coordinate lookups. Nil selects an
	// R-tree-backed default.
	Index Index

	// Intersector finds edge crossings. Nil selects a brute-force O(e²)
	// default, adequate for the small-to-medium polygons this package
	// targets.
	Intersector Intersector

	// AreaFunc and PointInPolygon back the post-processor's containment
	// pass. Nil selects shoelace area and ray-casting point-in-polygon
	// defaults.
	AreaFunc       AreaFunc
	PointInPolygon PointInPolygonFunc

	// Trace, if non-nil, receives a line of progress commentary after
	// normalization, after intersection finding, and after walking. Graph
	// construction emits no line of its own.
	// Signature matches log.Printf's so a caller can pass that directly.
	Trace func(format string, args ...any)
}

// defaultTolerance is used whenever Options.Tolerance is left at zero.
const defaultTolerance = 1e-9

// DefaultOptions returns an Options populated with the package's default
// collaborators: an R-tree spatial index, a brute-force intersector,
// shoelace area, and ray-casting point-in-polygon.
func DefaultOptions() Options {
	return Options{
		Tolerance:      defaultTolerance,
		Index:          newRTreeIndex(),
		Intersector:    bruteForceIntersector{},
		AreaFunc:       shoelaceArea,
		PointInPolygon: rayCastPointInPolygon,
		Trace:          func(string, ...any) {},
	}
}

// withDefaults fills in any field left at its zero value, so callers may
// construct an Options literal overriding only what they care about.
func (o Options) withDefaults() Options {
	if o.Tolerance == 0 {
		o.Tolerance = defaultTolerance
	}
	if o.Index == nil {
		o.Index = newRTreeIndex()
	}
	if o.Intersector == nil {
		o.Intersector = bruteForceIntersector{}
	}
	if o.AreaFunc == nil {
		o.AreaFunc = shoelaceArea
	}
	if o.PointInPolygon == nil {
		o.PointInPolygon = rayCastPointInPolygon
	}
	if o.Trace == nil {
		o.Trace = func(string, ...any) {}
	}
	return o
}
