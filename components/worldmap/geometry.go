package worldmap

// Point is a position on the normalized 0-100 x 0-100 map plane.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ClampPercent clamps both axes into [0,100].
func ClampPercent(p Point) Point {
	return Point{X: clamp(p.X), Y: clamp(p.Y)}
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// PointFromPointer converts a pointer position in pixels into percentage
// coordinates relative to the container, clamped to the plane.
func PointFromPointer(pointerX, pointerY, originX, originY, width, height float64) Point {
	if width <= 0 || height <= 0 {
		return Point{}
	}
	return ClampPercent(Point{
		X: (pointerX - originX) / width * 100,
		Y: (pointerY - originY) / height * 100,
	})
}

// SuggestCurveBelow reports whether a flow line between the two points
// should arc below them: long westward connections (X-distance over 40,
// destination left of source) otherwise tend to overlap other lines.
func SuggestCurveBelow(from, to Point) bool {
	dx := from.X - to.X
	if dx < 0 {
		dx = -dx
	}
	return dx > 40 && to.X < from.X
}

// ControlPoint returns the quadratic-curve control point for a flow line.
// The curve arcs above both endpoints by default, below when curveBelow.
func ControlPoint(from, to Point, curveBelow bool) Point {
	dx := to.X - from.X
	if dx < 0 {
		dx = -dx
	}
	lift := 8 + dx*0.25
	control := Point{X: (from.X + to.X) / 2}
	if curveBelow {
		base := from.Y
		if to.Y > base {
			base = to.Y
		}
		control.Y = base + lift
	} else {
		base := from.Y
		if to.Y < base {
			base = to.Y
		}
		control.Y = base - lift
	}
	return ClampPercent(control)
}
