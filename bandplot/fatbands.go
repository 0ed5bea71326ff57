/*
 * fatbands.go, part of spaghetti.
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
	"gonum.org/v1/plot/vg/draw"
)

//FatBandOptions controls how the orbital character of the bands is drawn.
type FatBandOptions struct {
	//One color per character. If nil, DefaultColor is used, with atoms
	//counted in order of first appearance and the orbital of each query.
	Colors []color.Color
	//Legend entries, one per character. No legend is built if nil.
	Labels []string
	//Use a different marker shape for each atom, instead of circles.
	Glyphs bool
	//Opacity of the markers, 0-1. Zero means opaque.
	Alpha float64
}

//FatBands draws, for each character in chars, a marker at every point of every
//band, whose area in pt² is the weight of the character at that point. Points
//with zero weight are skipped. If p already has a range, as it does after Bands,
//only the points inside it are drawn and the range is kept.
func FatBands(p *plot.Plot, chars []*spaghetti.OrbitalCharacter, opts FatBandOptions) error {
	if len(chars) == 0 {
		return fmt.Errorf("FatBands: nothing to plot")
	}
	if opts.Colors != nil && len(opts.Colors) < len(chars) {
		return fmt.Errorf("FatBands: %d colors for %d characters", len(opts.Colors), len(chars))
	}
	if opts.Labels != nil && len(opts.Labels) != len(chars) {
		return fmt.Errorf("FatBands: %d labels for %d characters", len(opts.Labels), len(chars))
	}
	atoms := make(map[int]int) //atom number to position of first appearance
	for i, c := range chars {
		if c == nil {
			return fmt.Errorf("FatBands: character %d is nil", i)
		}
		ia, ok := atoms[c.Query.Atom]
		if !ok {
			ia = len(atoms)
			atoms[c.Query.Atom] = ia
		}
		col := fade(opts.color(i, ia, c.Query), opts.Alpha)
		var shape draw.GlyphDrawer = draw.CircleGlyph{}
		if opts.Glyphs {
			shape = Glyph(ia)
		}
		s, err := fatScatter(p, c, col, shape)
		if err != nil {
			return fmt.Errorf("FatBands: character %d: %w", i, err)
		}
		if s == nil {
			continue
		}
		addKeeping(p, s)
		if opts.Labels != nil {
			p.Legend.Add(opts.Labels[i], s)
		}
	}
	return nil
}

//color returns the color of the ith character, which belongs to the
//atom in position ia of the plot.
func (o FatBandOptions) color(i, ia int, q spaghetti.CharacterQuery) color.Color {
	if o.Colors != nil {
		return o.Colors[i]
	}
	return DefaultColor(ia, q.Orbital)
}

//fatScatter builds the scatter for one character. It returns nil if
//no point is visible.
func fatScatter(p *plot.Plot, c *spaghetti.OrbitalCharacter, col color.Color, shape draw.GlyphDrawer) (*plotter.Scatter, error) {
	clip := hasRange(p)
	var xy plotter.XYs
	var radii []vg.Length
	for i := 0; i < c.Len(); i++ {
		e, w := c.Band(i)
		for j, k := range c.K {
			if w[j] <= 0 || math.IsNaN(w[j]) || math.IsNaN(e[j]) {
				continue
			}
			if clip && (k < p.X.Min || k > p.X.Max || e[j] < p.Y.Min || e[j] > p.Y.Max) {
				continue
			}
			xy = append(xy, plotter.XY{X: k, Y: e[j]})
			radii = append(radii, MarkerRadius(w[j]))
		}
	}
	if len(xy) == 0 {
		return nil, nil
	}
	s, err := plotter.NewScatter(xy)
	if err != nil {
		return nil, err
	}
	//GlyphStyle is only used for the legend thumbnail.
	s.GlyphStyle = draw.GlyphStyle{Color: col, Radius: vg.Points(4), Shape: shape}
	s.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		return draw.GlyphStyle{Color: col, Radius: radii[i], Shape: shape}
	}
	return s, nil
}

//MarkerRadius returns the radius of a marker whose area, in pt², is w.
func MarkerRadius(w float64) vg.Length {
	if w <= 0 {
		return 0
	}
	return vg.Points(math.Sqrt(w) / 2)
}

//fade applies the opacity alpha to c. alpha <= 0 or >= 1 leaves c untouched.
func fade(c color.Color, alpha float64) color.Color {
	if alpha <= 0 || alpha >= 1 {
		return c
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float64(n.A) * alpha)
	return n
}

//LegendName returns the legend entry for an orbital of an atom species, "V-dxy".
func LegendName(species, orbital string) string {
	return species + "-" + orbital
}

//CharacterNames returns the legend entries for the characters in qs, using
//the species in S and the orbital names in the qtl header O.
func CharacterNames(S *spaghetti.Structure, O spaghetti.QtlOrbitals, qs []spaghetti.CharacterQuery) ([]string, error) {
	names := make([]string, 0, len(qs))
	for _, q := range qs {
		species, _, err := S.Atom(q.Atom)
		if err != nil {
			return nil, err
		}
		orb, err := O.Name(q.Atom, q.Orbital)
		if err != nil {
			return nil, err
		}
		names = append(names, LegendName(species, orb))
	}
	return names, nil
}
