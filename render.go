package bigo

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// LightGray is the color of reference lines.
var LightGray = color.RGBA{R: 211, G: 211, B: 211, A: 255}

// RefLineMargin is how far reference lines extend past the data, as a
// fraction of the data's height.
const RefLineMargin = 0.05

// Canvas describes the drawing surface figures are rendered onto.
//
// Every call to [Canvas.Render] starts from a blank surface, so nothing drawn
// for one figure carries over to the next.
type Canvas struct {
	Width  vg.Length
	Height vg.Length
	DPI    int

	LineWidth vg.Length
	FontSize  vg.Length

	RefLineWidth  vg.Length
	RefLineColor  color.Color
	RefLineDashes []vg.Length
}

// NewCanvas returns a 640×480 pixel canvas with 3pt lines and 14pt text.
func NewCanvas() *Canvas {
	return &Canvas{
		Width:         6.4 * vg.Inch,
		Height:        4.8 * vg.Inch,
		DPI:           100,
		LineWidth:     vg.Points(3),
		FontSize:      vg.Points(14),
		RefLineWidth:  vg.Points(2),
		RefLineColor:  LightGray,
		RefLineDashes: []vg.Length{vg.Points(7.4), vg.Points(3.2)},
	}
}

// Plot builds the gonum plot for fig.
func (c *Canvas) Plot(fig *Figure) (*plot.Plot, error) {
	p := plot.New()
	p.X.Label.Text = fig.XLabel
	p.Y.Label.Text = fig.YLabel
	for _, sty := range []*text.Style{
		&p.X.Label.TextStyle,
		&p.Y.Label.TextStyle,
		&p.X.Tick.Label,
		&p.Y.Tick.Label,
		&p.Legend.TextStyle,
	} {
		sty.Font.Size = c.FontSize
	}
	p.Legend.Top = true
	p.Legend.Left = true

	// Reference lines overshoot the data so they reach the plot's edges.
	bounds := fig.BoundingBox()
	span := bounds.Inflate(0, RefLineMargin*bounds.Height())
	for _, ref := range fig.RefLines {
		l, err := plotter.NewLine(plotter.XYs{
			{X: ref.X, Y: span.Y0},
			{X: ref.X, Y: span.Y1},
		})
		if err != nil {
			return nil, fmt.Errorf("reference line at x=%g: %w", ref.X, err)
		}
		l.LineStyle.Width = c.RefLineWidth
		l.LineStyle.Color = c.RefLineColor
		l.LineStyle.Dashes = c.RefLineDashes
		p.Add(l)
	}

	for i, s := range fig.Series {
		l, err := plotter.NewLine(s.XYs())
		if err != nil {
			return nil, fmt.Errorf("series %q: %w", s.Label, err)
		}
		l.LineStyle.Width = c.LineWidth
		l.LineStyle.Color = plotutil.Color(i)
		p.Add(l)
		p.Legend.Add(s.Label, l)
	}
	return p, nil
}

// Render draws fig onto a blank surface and returns the resulting image.
func (c *Canvas) Render(fig *Figure) (image.Image, error) {
	img, err := c.render(fig)
	if err != nil {
		return nil, err
	}
	return img.Image(), nil
}

func (c *Canvas) render(fig *Figure) (*vgimg.Canvas, error) {
	p, err := c.Plot(fig)
	if err != nil {
		return nil, err
	}
	img := vgimg.NewWith(vgimg.UseWH(c.Width, c.Height), vgimg.UseDPI(c.DPI))
	p.Draw(draw.New(img))
	return img, nil
}

// EncodePNG renders fig and writes it to w as a PNG image.
func (c *Canvas) EncodePNG(w io.Writer, fig *Figure) error {
	img, err := c.render(fig)
	if err != nil {
		return err
	}
	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(w); err != nil {
		return fmt.Errorf("encoding %s: %w", fig.Name, err)
	}
	return nil
}
