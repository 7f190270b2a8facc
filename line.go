package bigo

import (
	"math"
)

// Line represents a line segment between two samples of a [Series].
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// LineIntersection describes where two segments meet.
type LineIntersection struct {
	// T is the position of the intersection on the receiver, in [0, 1].
	T float64
	// U is the position of the intersection on the other segment, in [0, 1].
	U float64
}

// Eval returns the point at t ∈ [0, 1] along the line.
func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// IntersectLine computes the intersection of two segments. Parallel and
// coincident segments never intersect, nor do segments with NaN or infinite
// coordinates.
//
// Parallelism is judged relative to the segments' lengths, so the result does
// not depend on the scale of the coordinates.
func (l Line) IntersectLine(o Line) (LineIntersection, bool) {
	const epsilon = 1e-9
	ab := l.P1.Sub(l.P0)
	cd := o.P1.Sub(o.P0)
	det := ab.Cross(cd)
	if math.Abs(det) <= epsilon*ab.Hypot()*cd.Hypot() {
		return LineIntersection{}, false
	}
	ac := o.P0.Sub(l.P0)
	t := ac.Cross(cd) / det
	u := ac.Cross(ab) / det
	if t >= -epsilon && t <= 1+epsilon && u >= -epsilon && u <= 1+epsilon {
		return LineIntersection{T: t, U: u}, true
	}
	return LineIntersection{}, false
}
