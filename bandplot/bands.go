/*
 * bands.go, part of spaghetti.
 *
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
 */

package bandplot

import (
	"fmt"
	"image/color"
	"math"

	"github.com/rmera/spaghetti"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//BandOptions controls how bands are drawn. The zero value gives black, 1.5 pt
//solid lines in a window of 2 eV around the Fermi level.
type BandOptions struct {
	Color  color.Color
	Width  vg.Length
	Dashes []vg.Length
	//Subtracted from every energy, in eV.
	Shift float64
	//Energy window. If YMin == YMax, -2..2 is used.
	YMin, YMax float64
	//Width of the reference lines, 1 pt if zero.
	GuideWidth vg.Length
	//If not empty, a legend entry with this text is added.
	Label string
}

func (o BandOptions) withDefaults() BandOptions {
	if o.Color == nil {
		o.Color = color.Black
	}
	if o.Width <= 0 {
		o.Width = vg.Points(1.5)
	}
	if o.YMin == o.YMax {
		o.YMin, o.YMax = -2, 2
	}
	if o.GuideWidth <= 0 {
		o.GuideWidth = vg.Points(1)
	}
	return o
}

//Bands draws every band in B as a line on p, and decorates p with the
//high-symmetry points in path (which can be nil). See Decorate.
func Bands(p *plot.Plot, B *spaghetti.BandSet, path *spaghetti.HighSymmetryPath, opts BandOptions) error {
	opts = opts.withDefaults()
	lines, err := bandLines(B, opts)
	if err != nil {
		return fmt.Errorf("Bands: %w", err)
	}
	for _, l := range lines {
		p.Add(l)
	}
	if opts.Label != "" {
		p.Legend.Add(opts.Label, lines[0])
	}
	if path == nil {
		p.X.Min, p.X.Max = B.K[0], B.K[len(B.K)-1]
	}
	return Decorate(p, path, opts.YMin, opts.YMax, opts.GuideWidth)
}

//bandLines returns one line per band of B.
func bandLines(B *spaghetti.BandSet, opts BandOptions) ([]*plotter.Line, error) {
	if B == nil || B.Len() == 0 {
		return nil, fmt.Errorf("no bands to plot")
	}
	lines := make([]*plotter.Line, 0, B.Len())
	e := make([]float64, len(B.K))
	for i := 0; i < B.Len(); i++ {
		e = B.Band(i, e)
		xy := make(plotter.XYs, len(B.K))
		for j, k := range B.K {
			xy[j].X = k
			xy[j].Y = e[j] - opts.Shift
		}
		l, err := plotter.NewLine(xy)
		if err != nil {
			return nil, fmt.Errorf("band %d: %w", i+1, err)
		}
		l.LineStyle.Color = opts.Color
		l.LineStyle.Width = opts.Width
		l.LineStyle.Dashes = opts.Dashes
		lines = append(lines, l)
	}
	return lines, nil
}

//Decorate sets the energy window of p to ymin..ymax and draws a dotted line
//at zero energy. If path is not nil, the x axis spans from its first to its last
//point, with a labeled tick and a dotted vertical line at each of them.
//Otherwise the current x range of p is kept. Decorate must be called after
//the data has been added, since adding plotters to p changes its ranges.
func Decorate(p *plot.Plot, path *spaghetti.HighSymmetryPath, ymin, ymax float64, guide vg.Length) error {
	if ymin >= ymax || math.IsNaN(ymin) || math.IsNaN(ymax) {
		return fmt.Errorf("Decorate: bad energy window [%g, %g]", ymin, ymax)
	}
	xmin, xmax := p.X.Min, p.X.Max
	if path != nil && path.Len() > 0 {
		xmin, xmax = path.K[0], path.K[path.Len()-1]
		ticks := make(plot.ConstantTicks, 0, path.Len())
		for i, k := range path.K {
			ticks = append(ticks, plot.Tick{Value: k, Label: path.Labels[i]})
			if err := guideLine(p, k, ymin, k, ymax, guide); err != nil {
				return fmt.Errorf("Decorate: %w", err)
			}
		}
		p.X.Tick.Marker = ticks
	}
	if xmin > xmax {
		return fmt.Errorf("Decorate: no x range, give a path or plot something first")
	}
	if err := guideLine(p, xmin, 0, xmax, 0, guide); err != nil {
		return fmt.Errorf("Decorate: %w", err)
	}
	p.X.Min, p.X.Max = xmin, xmax
	p.Y.Min, p.Y.Max = ymin, ymax
	p.X.Padding, p.Y.Padding = 0, 0
	if p.Y.Label.Text == "" {
		p.Y.Label.Text = EnergyLabel
	}
	return nil
}

//guideLine adds a dotted black line from (x0,y0) to (x1,y1).
func guideLine(p *plot.Plot, x0, y0, x1, y1 float64, width vg.Length) error {
	l, err := plotter.NewLine(plotter.XYs{{X: x0, Y: y0}, {X: x1, Y: y1}})
	if err != nil {
		return err
	}
	l.LineStyle = dotted(width)
	p.Add(l)
	return nil
}

//hasRange returns true if both axes of p already have a finite range.
func hasRange(p *plot.Plot) bool {
	return p.X.Min <= p.X.Max && p.Y.Min <= p.Y.Max
}

//addKeeping adds ps to p without changing the ranges p already has.
func addKeeping(p *plot.Plot, ps ...plot.Plotter) {
	keep := hasRange(p)
	xmin, xmax, ymin, ymax := p.X.Min, p.X.Max, p.Y.Min, p.Y.Max
	p.Add(ps...)
	if keep {
		p.X.Min, p.X.Max, p.Y.Min, p.Y.Max = xmin, xmax, ymin, ymax
	}
}

//Wannier draws the bands in W on p. When p already shows something, such as
//the DFT bands, the Wannier bands are laid over it without changing the axes.
//Otherwise the plot is decorated like a band plot without a path: x from the
//first to the last k-point, zero-energy line, and the energy window in opts.
//The default style is a red dashed line.
func Wannier(p *plot.Plot, W *spaghetti.BandSet, opts BandOptions) error {
	if opts.Color == nil {
		opts.Color = color.RGBA{R: 255, A: 255}
		if opts.Dashes == nil {
			opts.Dashes, _ = Dashes("--", vg.Points(1.5))
		}
	}
	opts = opts.withDefaults()
	lines, err := bandLines(W, opts)
	if err != nil {
		return fmt.Errorf("Wannier: %w", err)
	}
	overlay := hasRange(p)
	ps := make([]plot.Plotter, len(lines))
	for i, l := range lines {
		ps[i] = l
	}
	addKeeping(p, ps...)
	if opts.Label != "" {
		p.Legend.Add(opts.Label, lines[0])
	}
	if overlay {
		return nil
	}
	p.X.Min, p.X.Max = W.K[0], W.K[len(W.K)-1]
	return Decorate(p, nil, opts.YMin, opts.YMax, opts.GuideWidth)
}
