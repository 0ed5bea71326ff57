/*
 * charge.go, part of spaghetti.
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
	"strings"

	"github.com/rmera/spaghetti"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
)

//Colormaps lists the names Palette accepts.
var Colormaps = []string{"heat", "rainbow", "blackbody", "kindlmann", "bluered", "greys"}

//Palette returns the colormap called name with n colors.
func Palette(name string, n int) (palette.Palette, error) {
	if n < 2 {
		n = 2
	}
	switch strings.ToLower(name) {
	case "heat", "":
		return palette.Heat(n, 1), nil
	case "rainbow":
		return palette.Rainbow(n, palette.Blue, palette.Red, 1, 1, 1), nil
	case "blackbody":
		return moreland.ExtendedBlackBody().Palette(n), nil
	case "kindlmann":
		return moreland.Kindlmann().Palette(n), nil
	case "bluered":
		return moreland.SmoothBlueRed().Palette(n), nil
	case "greys":
		cm, err := moreland.NewLuminance([]color.Color{color.Black, color.White})
		if err != nil {
			return nil, fmt.Errorf("Palette: %w", err)
		}
		c := cm.Palette(n).Colors()
		rev := make(colorList, len(c))
		for i := range c {
			rev[len(c)-1-i] = c[i]
		}
		return rev, nil
	}
	return nil, fmt.Errorf("Palette: unknown colormap %q, use one of %s", name, strings.Join(Colormaps, ", "))
}

//colorList is a palette.Palette made of the given colors.
type colorList []color.Color

func (c colorList) Colors() []color.Color { return c }

//rhoGrid shows a matrix as a plotter.GridXYZ, with the first row
//on top, like an image.
type rhoGrid struct {
	m *mat.Dense
}

func (g rhoGrid) Dims() (c, r int) {
	r, c = g.m.Dims()
	return c, r
}

func (g rhoGrid) Z(c, r int) float64 {
	rows, _ := g.m.Dims()
	return g.m.At(rows-1-r, c)
}

func (g rhoGrid) X(c int) float64 { return float64(c) }
func (g rhoGrid) Y(r int) float64 { return float64(r) }

//Charge draws the charge density C on p as a heat map with the colormap pal,
//hiding the axes.
func Charge(p *plot.Plot, C *spaghetti.ChargeDensity, pal palette.Palette) error {
	if C == nil || C.Rho == nil {
		return fmt.Errorf("Charge: nothing to plot")
	}
	if pal == nil || len(pal.Colors()) == 0 {
		return fmt.Errorf("Charge: empty palette")
	}
	h := plotter.NewHeatMap(rhoGrid{C.Rho}, pal)
	p.Add(h)
	p.HideAxes()
	p.X.Padding, p.Y.Padding = 0, 0
	return nil
}
