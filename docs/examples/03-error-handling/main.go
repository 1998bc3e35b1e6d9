package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/beetlebugorg/simplepolygon/pkg/simplepolygon"
)

func safeDecompose(polygon simplepolygon.Polygon) (*simplepolygon.FeatureCollection, error) {
	fc, err := simplepolygon.Decompose(context.Background(), polygon, simplepolygon.DefaultOptions())
	if err != nil {
		var invalid *simplepolygon.InvalidInput
		if errors.As(err, &invalid) {
			return nil, fmt.Errorf("bad input, ring %d: %w", invalid.RingIndex, err)
		}

		var inconsistent *simplepolygon.GraphInconsistency
		if errors.As(err, &inconsistent) {
			log.Printf("graph inconsistency, likely a bug in the Intersector: %v", err)
			return nil, err
		}

		return nil, err
	}

	if len(fc.Features) == 0 {
		log.Printf("warning: decomposition produced no rings")
	}

	return fc, nil
}

func main() {
	good := simplepolygon.Polygon{
		Rings: []simplepolygon.Ring{{
			{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: 0, Y: 0},
		}},
	}

	fc, err := safeDecompose(good)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("decomposed %d ring(s)\n", len(fc.Features))

	// A ring with a duplicate vertex — fails normalization before any
	// graph construction is attempted.
	bad := simplepolygon.Polygon{
		Rings: []simplepolygon.Ring{{
			{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 0},
		}},
	}

	_, err = safeDecompose(bad)
	if err != nil {
		fmt.Printf("expected error: %v\n", err)
	}
}
