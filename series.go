package bigo

import (
	"iter"
	"math"

	"gonum.org/v1/plot/plotter"
)

// Func is a closed-form cost function of the input size.
type Func func(x float64) float64

// Series is one labeled curve: a function evaluated over a domain.
//
// The zero value is an empty, unlabeled series.
type Series struct {
	Label string
	// Func is the function the series was evaluated from. Eval uses it to
	// compute values between samples.
	Func Func

	domain Domain
	ys     []float64
}

// NewSeries evaluates f at every sample of d.
func NewSeries(label string, d Domain, f Func) Series {
	ys := make([]float64, d.Len())
	for i, x := range d.All() {
		ys[i] = f(x)
	}
	return Series{
		Label:  label,
		Func:   f,
		domain: d,
		ys:     ys,
	}
}

// Len returns the number of samples.
func (s Series) Len() int { return len(s.ys) }

// Domain returns the domain the series was evaluated over.
func (s Series) Domain() Domain { return s.domain }

// Point returns the i'th sample.
func (s Series) Point(i int) Point {
	return Point{X: s.domain.At(i), Y: s.ys[i]}
}

// Eval evaluates the series' function at x, which need not be a sample.
func (s Series) Eval(x float64) float64 {
	return s.Func(x)
}

// Points iterates over the samples in domain order.
func (s Series) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for i := range s.ys {
			if !yield(s.Point(i)) {
				return
			}
		}
	}
}

// Segments iterates over the lines connecting consecutive samples, which is
// how the series is drawn.
func (s Series) Segments() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for i := 1; i < len(s.ys); i++ {
			if !yield(Line{s.Point(i - 1), s.Point(i)}) {
				return
			}
		}
	}
}

// BoundingBox returns the smallest rectangle containing every sample. It
// returns the zero Rect for an empty series.
func (s Series) BoundingBox() Rect {
	if len(s.ys) == 0 {
		return Rect{}
	}
	p0 := s.Point(0)
	r := Rect{p0.X, p0.Y, p0.X, p0.Y}
	for pt := range s.Points() {
		r = r.UnionPoint(pt)
	}
	return r
}

// XYs returns the samples in the form gonum/plot consumes.
func (s Series) XYs() plotter.XYs {
	xys := make(plotter.XYs, len(s.ys))
	for i := range xys {
		xys[i].X = s.domain.At(i)
		xys[i].Y = s.ys[i]
	}
	return xys
}

// Crossings returns the points where s and o cross, in increasing x. A
// crossing is a change in the sign of the gap between the two series; series
// that touch without passing through each other, including meeting at either
// end of the domain, do not cross. Samples where either series is NaN or
// infinite interrupt the search.
//
// Both series are treated as the polylines they are drawn as, so a crossing
// between samples is only as accurate as that approximation. A crossing that
// lands on samples is reported once, at the first sample of the contact.
//
// Both series must share the same domain.
func (s Series) Crossings(o Series) []Point {
	if s.Len() != o.Len() {
		panic("series have different lengths")
	}
	var out []Point
	// sign of the gap at the last sample where the series differed, or 0
	sign := 0.0
	// first sample of the current run of contacts, or -1
	touch := -1
	for i := range s.ys {
		p, q := s.Point(i), o.Point(i)
		if p.IsNaN() || p.IsInf() || q.IsNaN() || q.IsInf() {
			sign, touch = 0, -1
			continue
		}
		gap := p.Y - q.Y
		if gap == 0 {
			if touch < 0 {
				touch = i
			}
			continue
		}
		g := math.Copysign(1, gap)
		if sign != 0 && g != sign {
			if touch >= 0 {
				out = append(out, s.Point(touch))
			} else {
				out = append(out, crossing(
					Line{s.Point(i - 1), p},
					Line{o.Point(i - 1), q},
				))
			}
		}
		sign, touch = g, -1
	}
	return out
}

// crossing returns where a and b, whose end points lie on opposite sides of
// each other, intersect.
func crossing(a, b Line) Point {
	if x, ok := a.IntersectLine(b); ok {
		return a.Eval(x.T)
	}
	// Too close to parallel for IntersectLine. The segments share their x
	// coordinates, so interpolate the gap instead.
	g0 := a.P0.Y - b.P0.Y
	g1 := a.P1.Y - b.P1.Y
	return a.Eval(g0 / (g0 - g1))
}
