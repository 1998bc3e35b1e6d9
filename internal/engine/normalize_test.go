package engine

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		rings   [][]Point
		wantN   int
		wantErr bool
	}{
		{
			name:  "open ring gets closed",
			rings: [][]Point{{{0, 0}, {1, 0}, {0, 1}}},
			wantN: 3,
		},
		{
			name:  "already closed ring",
			rings: [][]Point{{{0, 0}, {1, 0}, {0, 1}, {0, 0}}},
			wantN: 3,
		},
		{
			name:  "two rings",
			rings: [][]Point{{{0, 0}, {4, 0}, {4, 4}, {0, 4}}, {{1, 1}, {3, 1}, {3, 3}, {1, 3}}},
			wantN: 8,
		},
		{
			name:    "degenerate ring",
			rings:   [][]Point{{{0, 0}, {1, 1}}},
			wantErr: true,
		},
		{
			name:    "duplicate vertex within a ring",
			rings:   [][]Point{{{0, 0}, {1, 0}, {0, 0}, {0, 1}}},
			wantErr: true,
		},
		{
			name:    "duplicate vertex across rings",
			rings:   [][]Point{{{0, 0}, {1, 0}, {0, 1}}, {{0, 0}, {2, 0}, {0, 2}}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			closed, n, err := Normalize(tt.rings)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Normalize() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if n != tt.wantN {
				t.Errorf("Normalize() n = %d, want %d", n, tt.wantN)
			}
			for r, ring := range closed {
				if !ring[0].Equal(ring[len(ring)-1]) {
					t.Errorf("ring %d not closed: %v", r, ring)
				}
			}
		})
	}
}
