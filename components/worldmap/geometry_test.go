package worldmap

import "testing"

func TestClampPercent(t *testing.T) {
	cases := []struct {
		in   Point
		want Point
	}{
		{Point{X: 50, Y: 50}, Point{X: 50, Y: 50}},
		{Point{X: -3, Y: 120}, Point{X: 0, Y: 100}},
		{Point{X: 100, Y: 0}, Point{X: 100, Y: 0}},
		{Point{X: 101.5, Y: -0.1}, Point{X: 100, Y: 0}},
	}
	for _, tc := range cases {
		if got := ClampPercent(tc.in); got != tc.want {
			t.Fatalf("ClampPercent(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestPointFromPointer(t *testing.T) {
	// 1000x500 container anchored at (100, 50).
	got := PointFromPointer(600, 300, 100, 50, 1000, 500)
	if got != (Point{X: 50, Y: 50}) {
		t.Fatalf("expected center, got %v", got)
	}

	got = PointFromPointer(50, 40, 100, 50, 1000, 500)
	if got != (Point{X: 0, Y: 0}) {
		t.Fatalf("expected clamp to origin, got %v", got)
	}

	got = PointFromPointer(5000, 5000, 100, 50, 1000, 500)
	if got != (Point{X: 100, Y: 100}) {
		t.Fatalf("expected clamp to far corner, got %v", got)
	}

	if got := PointFromPointer(600, 300, 100, 50, 0, 500); got != (Point{}) {
		t.Fatalf("expected zero point for degenerate container, got %v", got)
	}
}

func TestSuggestCurveBelow(t *testing.T) {
	cases := []struct {
		name string
		from Point
		to   Point
		want bool
	}{
		{"long westward", Point{X: 80, Y: 30}, Point{X: 20, Y: 40}, true},
		{"long eastward", Point{X: 20, Y: 30}, Point{X: 80, Y: 40}, false},
		{"short westward", Point{X: 50, Y: 30}, Point{X: 20, Y: 40}, false},
		{"boundary distance", Point{X: 60, Y: 30}, Point{X: 20, Y: 40}, false},
		{"just over boundary", Point{X: 61, Y: 30}, Point{X: 20, Y: 40}, true},
	}
	for _, tc := range cases {
		if got := SuggestCurveBelow(tc.from, tc.to); got != tc.want {
			t.Fatalf("%s: SuggestCurveBelow = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestControlPointArcsAbove(t *testing.T) {
	from := Point{X: 20, Y: 50}
	to := Point{X: 60, Y: 40}
	control := ControlPoint(from, to, false)
	if control.X != 40 {
		t.Fatalf("expected midpoint x 40, got %g", control.X)
	}
	// lift = 8 + 40*0.25 = 18 above the higher endpoint (y 40).
	if control.Y != 22 {
		t.Fatalf("expected control y 22, got %g", control.Y)
	}
}

func TestControlPointArcsBelow(t *testing.T) {
	from := Point{X: 80, Y: 30}
	to := Point{X: 20, Y: 44}
	control := ControlPoint(from, to, true)
	if control.X != 50 {
		t.Fatalf("expected midpoint x 50, got %g", control.X)
	}
	// lift = 8 + 60*0.25 = 23 below the lower endpoint (y 44).
	if control.Y != 67 {
		t.Fatalf("expected control y 67, got %g", control.Y)
	}
}

func TestControlPointStaysOnPlane(t *testing.T) {
	control := ControlPoint(Point{X: 0, Y: 2}, Point{X: 100, Y: 3}, false)
	if control.Y != 0 {
		t.Fatalf("expected lift clamped at plane edge, got %g", control.Y)
	}
}
