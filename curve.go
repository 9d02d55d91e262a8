package textmesh

// Bezier curves for glyph outline flattening.
// Based on kurbo patterns, adapted for Go idioms.

// QuadBez represents a quadratic Bezier curve with control points P0, P1, P2.
// P0 is the start point, P1 is the control point, P2 is the end point.
type QuadBez struct {
	P0, P1, P2 Point
}

// NewQuadBez creates a new quadratic Bezier curve.
func NewQuadBez(p0, p1, p2 Point) QuadBez {
	return QuadBez{P0: p0, P1: p1, P2: p2}
}

// Eval evaluates the curve at parameter t (0 to 1).
func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	// (1-t)^2 * P0 + 2(1-t)t * P1 + t^2 * P2
	return Point{
		X: mt*mt*q.P0.X + 2*mt*t*q.P1.X + t*t*q.P2.X,
		Y: mt*mt*q.P0.Y + 2*mt*t*q.P1.Y + t*t*q.P2.Y,
	}
}

// Flatten appends steps points approximating the curve to dst, at uniform
// parameter spacing, excluding the start point and including the end point.
// steps is clamped to a minimum of 1 (a straight line to the end point).
func (q QuadBez) Flatten(dst []Point, steps int) []Point {
	if steps < 1 {
		steps = 1
	}
	for i := 1; i <= steps; i++ {
		dst = append(dst, q.Eval(float64(i)/float64(steps)))
	}
	return dst
}

// CubicBez represents a cubic Bezier curve with control points P0, P1, P2, P3.
// P0 is the start point, P1 and P2 are control points, P3 is the end point.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// NewCubicBez creates a new cubic Bezier curve.
func NewCubicBez(p0, p1, p2, p3 Point) CubicBez {
	return CubicBez{P0: p0, P1: p1, P2: p2, P3: p3}
}

// Eval evaluates the curve at parameter t (0 to 1).
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	mt2 := mt * mt
	mt3 := mt2 * mt
	t2 := t * t
	t3 := t2 * t

	// (1-t)^3 * P0 + 3(1-t)^2*t * P1 + 3(1-t)*t^2 * P2 + t^3 * P3
	return Point{
		X: mt3*c.P0.X + 3*mt2*t*c.P1.X + 3*mt*t2*c.P2.X + t3*c.P3.X,
		Y: mt3*c.P0.Y + 3*mt2*t*c.P1.Y + 3*mt*t2*c.P2.Y + t3*c.P3.Y,
	}
}

// Flatten appends steps points approximating the curve to dst, at uniform
// parameter spacing, excluding the start point and including the end point.
// steps is clamped to a minimum of 1.
func (c CubicBez) Flatten(dst []Point, steps int) []Point {
	if steps < 1 {
		steps = 1
	}
	for i := 1; i <= steps; i++ {
		dst = append(dst, c.Eval(float64(i)/float64(steps)))
	}
	return dst
}
