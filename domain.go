package bigo

import (
	"iter"
	"slices"
)

// DefaultSamples is the number of samples every figure's domain uses.
const DefaultSamples = 50

// Domain is an ordered, immutable sequence of evenly spaced input sizes.
type Domain struct {
	xs []float64
}

// Linspace returns n evenly spaced values over [start, stop]. Both endpoints
// are included and the last value is exactly stop. For n == 1 the domain holds
// only start; for n <= 0 it is empty.
func Linspace(start, stop float64, n int) Domain {
	switch {
	case n <= 0:
		return Domain{}
	case n == 1:
		return Domain{xs: []float64{start}}
	}
	step := (stop - start) / float64(n-1)
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = start + float64(i)*step
	}
	xs[n-1] = stop
	return Domain{xs: xs}
}

// Len returns the number of samples in the domain.
func (d Domain) Len() int { return len(d.xs) }

// At returns the i'th sample.
func (d Domain) At(i int) float64 { return d.xs[i] }

// Start returns the first sample. It panics on an empty domain.
func (d Domain) Start() float64 { return d.xs[0] }

// Stop returns the last sample. It panics on an empty domain.
func (d Domain) Stop() float64 { return d.xs[len(d.xs)-1] }

// Values returns a copy of the samples.
func (d Domain) Values() []float64 { return slices.Clone(d.xs) }

// All iterates over the samples and their indices.
func (d Domain) All() iter.Seq2[int, float64] {
	return slices.All(d.xs)
}
