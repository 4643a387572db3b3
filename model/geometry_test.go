package model

import (
	"math"
	"testing"
)

func TestPointDistances(t *testing.T) {
	tests := []struct {
		name    string
		a, b    Point
		distSq  float32
		dist    float32
	}{
		{"same point", Pt(3, 4), Pt(3, 4), 0, 0},
		{"3-4-5 triangle", Pt(0, 0), Pt(3, 4), 25, 5},
		{"negative coords", Pt(-1, -1), Pt(2, 3), 25, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.DistanceSquared(tt.b); got != tt.distSq {
				t.Errorf("DistanceSquared = %v, want %v", got, tt.distSq)
			}
			if got := tt.a.Distance(tt.b); math.Abs(float64(got-tt.dist)) > 1e-6 {
				t.Errorf("Distance = %v, want %v", got, tt.dist)
			}
		})
	}
}

func TestCloserFurtherThan(t *testing.T) {
	origin := Pt(0, 0)
	p := Pt(3, 4) // distance 5

	if !origin.CloserThan(6, p) {
		t.Error("expected point at distance 5 to be closer than 6")
	}
	if origin.CloserThan(5, p) {
		t.Error("CloserThan must be strict; distance 5 is not closer than 5")
	}
	if !origin.FurtherThan(4, p) {
		t.Error("expected point at distance 5 to be further than 4")
	}
	if origin.FurtherThan(5, p) {
		t.Error("FurtherThan must be strict; distance 5 is not further than 5")
	}
}

func TestSnap(t *testing.T) {
	tests := []struct {
		name string
		in   Point
		want Point
	}{
		{"rounds down within cell", Pt(10.9, 10.1), Pt(10.5, 10.5)},
		{"already centered", Pt(3.5, 7.5), Pt(3.5, 7.5)},
		{"negative coords", Pt(-0.3, -1.7), Pt(-0.5, -1.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Snap(); got != tt.want {
				t.Errorf("Snap(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestCenter(t *testing.T) {
	if _, ok := Center(nil); ok {
		t.Error("empty input must report no center")
	}

	got, ok := Center([]Point{Pt(0, 0), Pt(4, 0), Pt(2, 6)})
	if !ok {
		t.Fatal("expected a centroid")
	}
	if got != Pt(2, 2) {
		t.Errorf("Center = %v, want (2,2)", got)
	}
}

func TestTargetAsMapKey(t *testing.T) {
	// Command aggregation keys on Target; identical targets must collide.
	m := map[Target]int{}
	m[TargetAt(Pt(1, 2))]++
	m[TargetAt(Pt(1, 2))]++
	m[TargetUnit(9)]++
	m[NoTarget]++

	if len(m) != 3 {
		t.Fatalf("expected 3 distinct keys, got %d", len(m))
	}
	if m[TargetAt(Pt(1, 2))] != 2 {
		t.Errorf("identical position targets did not collapse")
	}
}
