package bigo

import "math"

// GrowthRates compares logarithmic, linear and linearithmic growth.
func GrowthRates() *Figure {
	fig := NewFigure("fig1", Linspace(1, 10, DefaultSamples))
	fig.Add("Logarithmic O(log(n))", math.Log)
	fig.Add("Linear O(n)", func(x float64) float64 { return x })
	fig.Add("Linearithmic O(n log(n))", func(x float64) float64 { return x * math.Log(x) })
	return fig
}

// PolynomialCrossover shows a quadratic overtaking a linear function with a
// larger constant factor, at x = 5 + √53.
func PolynomialCrossover() *Figure {
	fig := NewFigure("fig2", Linspace(1, 30, DefaultSamples))
	fig.Add("f(x) = 10x + 29", func(x float64) float64 { return 10*x + 29 })
	fig.Add("g(x) = x^2 + 1", func(x float64) float64 { return x*x + 1 })
	return fig
}

// DominanceReference shows 4n bounding 3n + 4 from above for all n ≥ 4.
func DominanceReference() *Figure {
	fig := NewFigure("fig3", Linspace(1, 10, DefaultSamples))
	fig.AxVLine(4)
	fig.Add("f(n) = 3n + 4", func(x float64) float64 { return 3*x + 4 })
	fig.Add("g(n) = 4n", func(x float64) float64 { return 4 * x })
	return fig
}

// ScaledBounds shows 3n + 4 enclosed by n and 5n for all n ≥ 2.
func ScaledBounds() *Figure {
	fig := NewFigure("fig4", Linspace(1, 10, DefaultSamples))
	fig.AxVLine(2)
	fig.Add("f(n) = 3n + 4", func(x float64) float64 { return 3*x + 4 })
	fig.Add("k1 * g(n) = n", func(x float64) float64 { return x })
	fig.Add("k2 * g(n) = 5n", func(x float64) float64 { return 5 * x })
	return fig
}

// Figures returns freshly built copies of all four figures, in file order.
func Figures() []*Figure {
	return []*Figure{
		GrowthRates(),
		PolynomialCrossover(),
		DominanceReference(),
		ScaledBounds(),
	}
}
