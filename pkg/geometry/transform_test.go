package geometry

import (
	"math"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	rects := []Rect{
		{X: 0, Y: 0, W: 100, H: 40},
		{X: 72.5, Y: 191.25, W: 150, H: 50},
		{X: 0.001, Y: 841.89, W: 595.28, H: 1},
	}
	scales := []float64{0.25, 0.5, 1, 1.37, 2, 10}

	for _, r := range rects {
		for _, s := range scales {
			disp, err := ToDisplay(r, s)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			back, err := ToDocumentSpace(disp, s)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(back.X-r.X) > 1e-6 ||
				math.Abs(back.Y-r.Y) > 1e-6 ||
				math.Abs(back.W-r.W) > 1e-6 ||
				math.Abs(back.H-r.H) > 1e-6 {
				t.Fatalf("round trip at scale %v: got %+v, want %+v", s, back, r)
			}
		}
	}
}

func TestScaleApplied(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 30, H: 40}
	disp, err := ToDisplay(r, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Rect{X: 20, Y: 40, W: 60, H: 80}
	if disp != want {
		t.Fatalf("got %+v, want %+v", disp, want)
	}
}

func TestInvalidScale(t *testing.T) {
	for _, s := range []float64{0, -1, -0.001} {
		if _, err := ToDisplay(Rect{}, s); err != ErrInvalidScale {
			t.Fatalf("ToDisplay scale %v: expected ErrInvalidScale, got %v", s, err)
		}
		if _, err := ToDocumentSpace(Rect{}, s); err != ErrInvalidScale {
			t.Fatalf("ToDocumentSpace scale %v: expected ErrInvalidScale, got %v", s, err)
		}
		if _, err := PointToDisplay(Point{}, s); err != ErrInvalidScale {
			t.Fatalf("PointToDisplay scale %v: expected ErrInvalidScale, got %v", s, err)
		}
		if _, err := PointToDocumentSpace(Point{}, s); err != ErrInvalidScale {
			t.Fatalf("PointToDocumentSpace scale %v: expected ErrInvalidScale, got %v", s, err)
		}
	}
}
