// Package simplepolygon decomposes a complex, possibly self-intersecting
// and possibly multi-ring planar polygon into a collection of simple
// one-ring polygons that partition the original polygon's traced
// interior. Each output ring is annotated with its winding number, net
// winding number, and containment parent.
//
// The decomposition engine itself (internal/engine) is deliberately
// ignorant of coordinate I/O, a specific spatial-index library, or a
// specific segment-intersection algorithm. This package supplies all
// three as pluggable collaborators — Index, Intersector, AreaFunc, and
// PointInPolygonFunc — with working defaults, wrapping the engine in a
// friendlier public surface whose default spatial index is an R-tree
// (github.com/dhconnelly/rtreego).
//
// Example:
//
//	fc, err := simplepolygon.Decompose(context.Background(), simplepolygon.Polygon{
//	    Rings: []simplepolygon.Ring{{
//	        {X: 0, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 2}, {X: 2, Y: 2}, {X: 0, Y: 0},
//	    }},
//	}, simplepolygon.DefaultOptions())
package simplepolygon

import (
	"context"
	"errors"
	"fmt"

	"github.com/beetlebugorg/simplepolygon/internal/engine"
)

// Point is a 2-D coordinate, shared verbatim with the engine so no
// conversion is needed between the public API and the core.
type Point = engine.Point

// Ring is an ordered sequence of points. Rings accepted as input may be
// open or closed — Decompose closes them. Rings returned as output are
// always closed (first point equals last).
type Ring []Point

// Polygon is the input to Decompose: an ordered sequence of rings. Ring 0
// is conventionally outer but this is not required, orientations are
// arbitrary, and inner rings need not be enclosed by the outer one.
type Polygon struct {
	Rings []Ring
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// Feature is one output ring: a simple, non-self-intersecting polygon
// that partitions the input polygon's traced interior, annotated with
// its winding number, net winding number, and containment parent.
type Feature struct {
	Ring       Ring
	Parent     int // index into the same FeatureCollection, or -1
	Winding    int // +1 or -1
	NetWinding int
}

// Bounds returns the axis-aligned bounding box of the feature's ring.
func (f Feature) Bounds() Bounds {
	b := Bounds{MinX: f.Ring[0].X, MinY: f.Ring[0].Y, MaxX: f.Ring[0].X, MaxY: f.Ring[0].Y}
	for _, p := range f.Ring[1:] {
		if p.X < b.MinX {
			b.MinX = p.X
		}
		if p.X > b.MaxX {
			b.MaxX = p.X
		}
		if p.Y < b.MinY {
			b.MinY = p.Y
		}
		if p.Y > b.MaxY {
			b.MaxY = p.Y
		}
	}
	return b
}

// FeatureCollection is the ordered sequence of output rings Decompose
// returns. Order matches the order in which walks terminated —
// deterministic given deterministic input.
type FeatureCollection struct {
	Features []Feature
}

// ByWinding returns the features whose Winding equals w.
func (fc *FeatureCollection) ByWinding(w int) []Feature {
	var out []Feature
	for _, f := range fc.Features {
		if f.Winding == w {
			out = append(out, f)
		}
	}
	return out
}

// Roots returns the features with no containing parent (Parent == -1).
func (fc *FeatureCollection) Roots() []Feature {
	var out []Feature
	for _, f := range fc.Features {
		if f.Parent == -1 {
			out = append(out, f)
		}
	}
	return out
}

// Decompose runs the full pipeline: normalize, find intersections, build
// the pseudo-vertex/intersection graph (skipped on the fast path when
// there are no intersections), seed and walk output rings, then assign
// parents and net windings.
//
// ctx is checked once before any work begins; the algorithm itself runs
// to completion in one call with no suspension points to cancel
// mid-flight, so a canceled context only prevents a call from starting.
func Decompose(ctx context.Context, polygon Polygon, opts Options) (*FeatureCollection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(polygon.Rings) == 0 {
		return nil, &InvalidInput{Reason: "polygon has no rings", RingIndex: -1}
	}

	opts = opts.withDefaults()

	rawRings := make([][]Point, len(polygon.Rings))
	for i, r := range polygon.Rings {
		if len(r) == 0 {
			return nil, &InvalidInput{Reason: "ring has no vertices", RingIndex: i}
		}
		rawRings[i] = []Point(r)
	}

	normalized, _, err := engine.Normalize(rawRings)
	if err != nil {
		return nil, convertInputError(err)
	}
	opts.Trace("normalized %d ring(s)", len(normalized))

	asRings := make([]Ring, len(normalized))
	for i, r := range normalized {
		asRings[i] = Ring(r)
	}

	records, err := opts.Intersector.FindIntersections(asRings)
	if err != nil {
		return nil, fmt.Errorf("find intersections: %w", err)
	}
	opts.Trace("found %d intersection record(s)", len(records))

	var outputs []engine.OutputRing
	if len(records) == 0 {
		outputs = engine.FastPathRings(normalized, opts.Tolerance)
	} else {
		g, err := engine.BuildGraph(normalized, records, opts.Index)
		if err != nil {
			return nil, convertGraphError(err)
		}

		edgeCount := make([]int, len(normalized))
		for i, r := range normalized {
			edgeCount[i] = len(r) - 1
		}

		seeds := engine.SeedWindings(g, len(normalized), edgeCount, opts.Tolerance)
		outputs = engine.Walk(g, seeds)
	}
	opts.Trace("walked %d output ring(s)", len(outputs))

	engine.AssignParents(outputs, opts.PointInPolygon, opts.AreaFunc)
	engine.AssignNetWindings(outputs)

	return toFeatureCollection(outputs), nil
}

func toFeatureCollection(rings []engine.OutputRing) *FeatureCollection {
	features := make([]Feature, len(rings))
	for i, r := range rings {
		features[i] = Feature{
			Ring:       Ring(r.Coords),
			Parent:     r.Parent,
			Winding:    r.Winding,
			NetWinding: r.NetWinding,
		}
	}
	return &FeatureCollection{Features: features}
}

func convertInputError(err error) error {
	var dup *engine.InvalidVertexError
	if errors.As(err, &dup) {
		return &InvalidInput{
			Reason:    fmt.Sprintf("duplicate vertex (%g, %g)", dup.Point.X, dup.Point.Y),
			RingIndex: dup.Ring,
		}
	}
	var deg *engine.DegenerateRingError
	if errors.As(err, &deg) {
		return &InvalidInput{
			Reason:    fmt.Sprintf("ring has only %d vertices, need at least 3", deg.VertexCount),
			RingIndex: deg.Ring,
		}
	}
	return &InvalidInput{Reason: err.Error(), RingIndex: -1}
}

func convertGraphError(err error) error {
	var inc *engine.InconsistencyError
	if errors.As(err, &inc) {
		return &GraphInconsistency{Reason: inc.Reason}
	}
	return &GraphInconsistency{Reason: err.Error()}
}
