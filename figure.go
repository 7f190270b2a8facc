package bigo

import "fmt"

// Axis labels shared by every figure.
const (
	XLabel = "Size of Input"
	YLabel = "Cost"
)

// RefLine is a dashed vertical reference line at X.
type RefLine struct {
	X float64
}

// Figure is one chart: a set of series over a common domain, reference
// lines, and axis labels. A Figure holds no rendering state; see [Canvas].
type Figure struct {
	// Name is the file name of the figure, without extension.
	Name   string
	XLabel string
	YLabel string
	Domain Domain
	Series []Series
	// RefLines are drawn beneath the series.
	RefLines []RefLine
}

// NewFigure returns an empty figure over d with the default axis labels.
func NewFigure(name string, d Domain) *Figure {
	return &Figure{
		Name:   name,
		XLabel: XLabel,
		YLabel: YLabel,
		Domain: d,
	}
}

// Add evaluates f over the figure's domain and appends the resulting series.
func (fig *Figure) Add(label string, f Func) *Figure {
	return fig.AddSeries(NewSeries(label, fig.Domain, f))
}

// AddSeries appends s. It panics if s was evaluated over a domain of a
// different length, as its samples would not line up with the others.
func (fig *Figure) AddSeries(s Series) *Figure {
	if s.Len() != fig.Domain.Len() {
		panic(fmt.Sprintf("series %q has %d samples, figure %q has %d", s.Label, s.Len(), fig.Name, fig.Domain.Len()))
	}
	fig.Series = append(fig.Series, s)
	return fig
}

// AxVLine appends a vertical reference line at x.
func (fig *Figure) AxVLine(x float64) *Figure {
	fig.RefLines = append(fig.RefLines, RefLine{X: x})
	return fig
}

// BoundingBox returns the union of the bounding boxes of all series. It
// returns the zero Rect for a figure without series.
func (fig *Figure) BoundingBox() Rect {
	if len(fig.Series) == 0 {
		return Rect{}
	}
	r := fig.Series[0].BoundingBox()
	for _, s := range fig.Series[1:] {
		r = r.Union(s.BoundingBox())
	}
	return r
}

// Crossings returns the points where the a'th and b'th series cross.
func (fig *Figure) Crossings(a, b int) []Point {
	return fig.Series[a].Crossings(fig.Series[b])
}

// Labels returns the legend entries in drawing order.
func (fig *Figure) Labels() []string {
	out := make([]string, len(fig.Series))
	for i, s := range fig.Series {
		out[i] = s.Label
	}
	return out
}
