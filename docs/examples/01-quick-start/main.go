package main

import (
	"context"
	"fmt"
	"log"

	"github.com/beetlebugorg/simplepolygon/pkg/simplepolygon"
)

func main() {
	// A figure-eight: one ring that crosses itself once.
	polygon := simplepolygon.Polygon{
		Rings: []simplepolygon.Ring{{
			{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 2}, {X: 2, Y: 2}, {X: 0, Y: 0},
		}},
	}

	fc, err := simplepolygon.Decompose(context.Background(), polygon, simplepolygon.DefaultOptions())
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Decomposed into %d simple ring(s)\n", len(fc.Features))
	for i, f := range fc.Features {
		fmt.Printf("ring %d: winding=%d netWinding=%d parent=%d vertices=%d\n",
			i, f.Winding, f.NetWinding, f.Parent, len(f.Ring)-1)
	}
}
