/*
 * dos.go, part of spaghetti.
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
	"strings"

	"github.com/rmera/spaghetti"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//Orientation tells which axis carries the energy in a DOS plot.
type Orientation int

const (
	//EnergyX puts the energy on the horizontal axis.
	EnergyX Orientation = iota
	//EnergyY puts the energy on the vertical axis, so the DOS can
	//stand next to a band plot.
	EnergyY
)

//DOSStyle is the way each DOS column is drawn.
type DOSStyle int

const (
	DOSLine     DOSStyle = iota //a plain line.
	DOSFill                     //filled down to zero, with a line of the same color.
	DOSFillLine                 //filled, with a black line over a thicker colored one.
)

var dosStyles = map[string]DOSStyle{
	"line":      DOSLine,
	"fill":      DOSFill,
	"fill_line": DOSFillLine,
}

//ParseDOSStyle returns the DOSStyle named s: line, fill or fill_line.
func ParseDOSStyle(s string) (DOSStyle, error) {
	st, ok := dosStyles[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return DOSLine, fmt.Errorf("ParseDOSStyle: unknown style %q, use line, fill or fill_line", s)
	}
	return st, nil
}

//DOSOptions controls how a density of states is drawn.
type DOSOptions struct {
	Orientation Orientation
	Style       DOSStyle
	//0-based indexes of the columns to draw. All of them if nil.
	Columns []int
	//One color per drawn column. If nil the first column is tab:blue and
	//the rest are spread over the hue circle.
	Colors []color.Color
	Width  vg.Length
	Dashes []vg.Length
	//Opacity of the fills, 0-1. Zero means opaque.
	Alpha float64
	//Subtracted from every energy, in eV.
	Shift float64
	//Energy window. If EMin == EMax, the whole energy range is used.
	EMin, EMax float64
	//Add a legend entry with the name of each column.
	Legend     bool
	GuideWidth vg.Length
}

//DOS draws the columns of D on p. The DOS axis starts at zero, or ends at zero if every
//value drawn is negative, as for spin-down channels. A dotted line marks zero energy.
func DOS(p *plot.Plot, D *spaghetti.DensityOfStates, opts DOSOptions) error {
	if D == nil || D.Len() == 0 || len(D.Energy) == 0 {
		return fmt.Errorf("DOS: nothing to plot")
	}
	cols := opts.Columns
	if cols == nil {
		for i := range D.Names {
			cols = append(cols, i)
		}
	}
	if opts.Colors != nil && len(opts.Colors) < len(cols) {
		return fmt.Errorf("DOS: %d colors for %d columns", len(opts.Colors), len(cols))
	}
	if opts.Width <= 0 {
		opts.Width = vg.Points(1)
	}
	if opts.GuideWidth <= 0 {
		opts.GuideWidth = vg.Points(1)
	}
	window := opts.EMin < opts.EMax
	dmin, dmax := math.Inf(1), math.Inf(-1)
	for n, c := range cols {
		if c < 0 || c >= len(D.Names) {
			return fmt.Errorf("DOS: column %d out of range [0,%d)", c, len(D.Names))
		}
		var xy plotter.XYs
		for i, v := range D.Column(c) {
			e := D.Energy[i] - opts.Shift
			if window && (e < opts.EMin || e > opts.EMax) {
				continue
			}
			dmin, dmax = math.Min(dmin, v), math.Max(dmax, v)
			xy = append(xy, orient(opts.Orientation, e, v))
		}
		if len(xy) == 0 {
			return fmt.Errorf("DOS: no points of column %d in the energy window", c)
		}
		col := dosColor(opts.Colors, n, len(cols))
		l, err := dosPlotters(p, xy, col, opts)
		if err != nil {
			return fmt.Errorf("DOS: column %d: %w", c, err)
		}
		if opts.Legend {
			p.Legend.Add(D.Names[c], l)
		}
	}
	emin, emax := D.Energy[0]-opts.Shift, D.Energy[len(D.Energy)-1]-opts.Shift
	if window {
		emin, emax = opts.EMin, opts.EMax
	}
	//the side of zero the DOS lies on.
	if dmax < 0 {
		dmax = 0
	} else {
		dmin = 0
	}
	from, to := orient(opts.Orientation, 0, dmin), orient(opts.Orientation, 0, dmax)
	if err := guideLine(p, from.X, from.Y, to.X, to.Y, opts.GuideWidth); err != nil {
		return fmt.Errorf("DOS: %w", err)
	}
	energy, dos := &p.X, &p.Y
	if opts.Orientation == EnergyY {
		energy, dos = dos, energy
	}
	energy.Min, energy.Max = emin, emax
	dos.Min, dos.Max = dmin, dmax
	p.X.Padding, p.Y.Padding = 0, 0
	if energy.Label.Text == "" {
		energy.Label.Text = EnergyLabel
	}
	if dos.Label.Text == "" {
		dos.Label.Text = "DOS (states/eV)"
	}
	return nil
}

//orient returns the point for energy e and DOS value v.
func orient(o Orientation, e, v float64) plotter.XY {
	if o == EnergyY {
		return plotter.XY{X: v, Y: e}
	}
	return plotter.XY{X: e, Y: v}
}

func dosColor(colors []color.Color, i, n int) color.Color {
	switch {
	case colors != nil:
		return colors[i]
	case i == 0:
		c, _ := ParseColor("tab:blue")
		return c
	default:
		return SeriesColor(i, n)
	}
}

//dosPlotters adds the plotters for one column, and returns the line
//to be used in the legend.
func dosPlotters(p *plot.Plot, xy plotter.XYs, col color.Color, opts DOSOptions) (*plotter.Line, error) {
	l, err := plotter.NewLine(xy)
	if err != nil {
		return nil, err
	}
	l.LineStyle.Color = col
	l.LineStyle.Width = opts.Width
	l.LineStyle.Dashes = opts.Dashes
	if opts.Style == DOSLine {
		p.Add(l)
		return l, nil
	}
	first, last := xy[0], xy[len(xy)-1]
	ring := append(plotter.XYs{}, xy...)
	//close the area down to zero DOS.
	if opts.Orientation == EnergyY {
		ring = append(ring, plotter.XY{X: 0, Y: last.Y}, plotter.XY{X: 0, Y: first.Y})
	} else {
		ring = append(ring, plotter.XY{X: last.X, Y: 0}, plotter.XY{X: first.X, Y: 0})
	}
	fill, err := plotter.NewPolygon(ring)
	if err != nil {
		return nil, err
	}
	fill.Color = fade(col, opts.Alpha)
	fill.LineStyle.Color = fill.Color
	fill.LineStyle.Width = 0
	p.Add(fill)
	if opts.Style == DOSFill {
		p.Add(l)
		return l, nil
	}
	under, err := plotter.NewLine(xy)
	if err != nil {
		return nil, err
	}
	under.LineStyle = l.LineStyle
	under.LineStyle.Width = opts.Width + vg.Points(1)
	over, err := plotter.NewLine(xy)
	if err != nil {
		return nil, err
	}
	over.LineStyle = l.LineStyle
	over.LineStyle.Color = color.Black
	p.Add(under, over)
	return under, nil
}
