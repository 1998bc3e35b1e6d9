package main

import (
	"context"
	"fmt"
	"log"

	"github.com/beetlebugorg/simplepolygon/pkg/simplepolygon"
)

func describeRing(f simplepolygon.Feature) {
	b := f.Bounds()
	fmt.Printf("  bounds: [%.3f,%.3f] to [%.3f,%.3f]\n", b.MinX, b.MinY, b.MaxX, b.MaxY)
	for i, p := range f.Ring {
		fmt.Printf("  %d: %.3f, %.3f\n", i, p.X, p.Y)
	}
}

func main() {
	// A square with a disjoint square hole punched into a separate ring.
	polygon := simplepolygon.Polygon{
		Rings: []simplepolygon.Ring{
			{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}, {X: 0, Y: 0}},
			{{X: 1, Y: 1}, {X: 1, Y: 3}, {X: 3, Y: 3}, {X: 3, Y: 1}, {X: 1, Y: 1}},
		},
	}

	fc, err := simplepolygon.Decompose(context.Background(), polygon, simplepolygon.DefaultOptions())
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("outer ring(s): %d\n", len(fc.ByWinding(1)))
	fmt.Printf("hole ring(s): %d\n", len(fc.ByWinding(-1)))

	for i, f := range fc.Features {
		fmt.Printf("\nring %d (winding=%d netWinding=%d parent=%d):\n", i, f.Winding, f.NetWinding, f.Parent)
		describeRing(f)
	}
}
