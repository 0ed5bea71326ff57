/*
 * fermisurface.go, part of spaghetti.
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

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

//SurfaceOptions controls how FermiSurface draws the k-points.
type SurfaceOptions struct {
	//Colors from the lowest to the highest value. Heat if nil.
	Palette palette.Palette
	//Marker radius. 3 pt if zero.
	Radius vg.Length
	//Filled squares instead of circles, so that a dense grid looks like a map.
	Squares bool
	//Values mapped to the ends of the palette. If Min >= Max, the range of
	//the values is used.
	Min, Max float64
}

//FermiSurface draws a marker at each point of xy, colored by the matching
//element of values, and labels the axes kx and ky.
func FermiSurface(p *plot.Plot, xy plotter.XYs, values []float64, opts SurfaceOptions) error {
	if len(xy) == 0 {
		return fmt.Errorf("FermiSurface: nothing to plot")
	}
	if len(values) != len(xy) {
		return fmt.Errorf("FermiSurface: %d values for %d points", len(values), len(xy))
	}
	pal := opts.Palette
	if pal == nil {
		pal = palette.Heat(64, 1)
	}
	cols := pal.Colors()
	if len(cols) == 0 {
		return fmt.Errorf("FermiSurface: empty palette")
	}
	lo, hi := opts.Min, opts.Max
	if lo >= hi {
		lo, hi = floats.Min(values), floats.Max(values)
	}
	r := opts.Radius
	if r <= 0 {
		r = vg.Points(3)
	}
	var shape draw.GlyphDrawer = draw.CircleGlyph{}
	if opts.Squares {
		shape = draw.BoxGlyph{}
	}
	s, err := plotter.NewScatter(xy)
	if err != nil {
		return fmt.Errorf("FermiSurface: %w", err)
	}
	s.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		return draw.GlyphStyle{Color: paletteColor(cols, values[i], lo, hi), Radius: r, Shape: shape}
	}
	p.Add(s)
	p.X.Label.Text = "kx"
	p.Y.Label.Text = "ky"
	return nil
}

//paletteColor returns the color of cols for v in the range [lo, hi].
//Values out of the range get the color of the nearest end.
func paletteColor(cols []color.Color, v, lo, hi float64) color.Color {
	if !(hi > lo) || math.IsNaN(v) {
		return cols[0]
	}
	v = math.Max(lo, math.Min(v, hi))
	return cols[int(math.Round((v-lo)/(hi-lo)*float64(len(cols)-1)))]
}
