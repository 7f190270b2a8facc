// Package bigo renders the figures that accompany an introduction to
// asymptotic notation. It compares the growth of common cost functions and
// marks the points where one starts to dominate another.
//
// # Domains, series, and figures
//
// A [Domain] is an ordered sequence of evenly spaced input sizes, usually
// built with [Linspace]. A [Series] is a labeled [Func] evaluated at every
// sample of a domain. A [Figure] groups series that share one domain, along
// with axis labels and optional dashed reference lines ([RefLine]).
//
// All series of a figure are evaluated over the figure's own domain, so their
// samples correspond point for point. [Figure.AddSeries] panics if handed a
// series that doesn't.
//
// # Crossovers
//
// Series are drawn as polylines, and [Series.Crossings] finds the points where
// one such polyline passes through another. Curves that merely touch do not
// cross. For linear functions the result is exact; for curved ones it is as
// accurate as the sampling. The underlying geometry lives
// in [Point], [Vec2], [Line], and [Rect].
//
// # Rendering
//
// [Canvas] turns a figure into an image using gonum/plot. Each render starts
// from a blank surface. [Generator] renders the four figures returned by
// [Figures] and saves them as fig1.png through fig4.png:
//
//   - fig1: logarithmic, linear, and linearithmic growth over [1, 10]
//   - fig2: 10x + 29 against x² + 1 over [1, 30]
//   - fig3: 3n + 4 against 4n, with a reference line at n = 4
//   - fig4: 3n + 4 between n and 5n, with a reference line at n = 2
//
// Files are replaced atomically; running the generator again rewrites the same
// four files with identical contents.
//
// The bigofig command in cmd/bigofig runs the generator and writes the files
// next to its own source.
package bigo
