/*
 * bandplot_test.go, part of spaghetti.
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
	"bytes"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/rmera/spaghetti"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func testBands(Te *testing.T) (*spaghetti.BandSet, *spaghetti.HighSymmetryPath) {
	k := []float64{0, 0.25, 0.5, 0.75, 1}
	B, err := spaghetti.NewBandSet(
		[][]float64{k, k, k},
		[][]float64{
			{-2.5, -2.4, -2.1, -1.7, -1.5},
			{-0.5, -0.25, 0, 0.3, 0.41},
			{1.5, 1.75, 2, 2.25, 2.125},
		})
	if err != nil {
		Te.Fatal(err)
	}
	P, err := spaghetti.NewPath([]float64{0, 0.5, 1}, []string{"GAMMA", "M", "K"})
	if err != nil {
		Te.Fatal(err)
	}
	return B, P
}

//render draws p to an in-memory PNG.
func render(Te *testing.T, p *plot.Plot) {
	Te.Helper()
	wt, err := p.WriterTo(3*vg.Inch, 3*vg.Inch, "png")
	if err != nil {
		Te.Fatal(err)
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		Te.Fatal(err)
	}
	if buf.Len() == 0 {
		Te.Error("empty image")
	}
}

func TestBands(Te *testing.T) {
	B, P := testBands(Te)
	p := plot.New()
	DefaultStyle().Apply(p)
	if err := Bands(p, B, P, BandOptions{Label: "DFT"}); err != nil {
		Te.Fatal(err)
	}
	if p.X.Min != 0 || p.X.Max != 1 || p.Y.Min != -2 || p.Y.Max != 2 {
		Te.Errorf("ranges x [%g, %g] y [%g, %g]", p.X.Min, p.X.Max, p.Y.Min, p.Y.Max)
	}
	ticks := p.X.Tick.Marker.Ticks(p.X.Min, p.X.Max)
	want := []string{"Γ", "M", "K"}
	if len(ticks) != len(want) {
		Te.Fatalf("%d ticks, expected %d", len(ticks), len(want))
	}
	for i, t := range ticks {
		if t.Label != want[i] || t.Value != P.K[i] {
			Te.Errorf("tick %d: %v, expected %s at %g", i, t, want[i], P.K[i])
		}
	}
	if p.Y.Label.Text != EnergyLabel {
		Te.Errorf("energy label %q", p.Y.Label.Text)
	}
	render(Te, p)
}

func TestBandsOptions(Te *testing.T) {
	B, _ := testBands(Te)
	p := plot.New()
	opts := BandOptions{YMin: -4, YMax: 4, Shift: 1, Color: color.RGBA{B: 255, A: 255}}
	if err := Bands(p, B, nil, opts); err != nil {
		Te.Fatal(err)
	}
	if p.X.Min != 0 || p.X.Max != 1 || p.Y.Min != -4 || p.Y.Max != 4 {
		Te.Errorf("ranges x [%g, %g] y [%g, %g]", p.X.Min, p.X.Max, p.Y.Min, p.Y.Max)
	}
	if err := Bands(plot.New(), nil, nil, opts); err == nil {
		Te.Error("expected an error for nil bands")
	}
	if err := Decorate(plot.New(), nil, 2, -2, 1); err == nil {
		Te.Error("expected an error for a reversed window")
	}
	render(Te, p)
}

func TestWannier(Te *testing.T) {
	B, P := testBands(Te)
	p := plot.New()
	if err := Bands(p, B, P, BandOptions{}); err != nil {
		Te.Fatal(err)
	}
	if err := Wannier(p, B, BandOptions{Label: "Wannier"}); err != nil {
		Te.Fatal(err)
	}
	if p.Y.Min != -2 || p.Y.Max != 2 {
		Te.Errorf("the overlay changed the energy window to [%g, %g]", p.Y.Min, p.Y.Max)
	}
	render(Te, p)
	alone := plot.New()
	if err := Wannier(alone, B, BandOptions{}); err != nil {
		Te.Fatal(err)
	}
	if alone.X.Min != 0 || alone.X.Max != 1 || alone.Y.Min != -2 || alone.Y.Max != 2 {
		Te.Errorf("ranges x [%g, %g] y [%g, %g]", alone.X.Min, alone.X.Max, alone.Y.Min, alone.Y.Max)
	}
}

func TestFatBands(Te *testing.T) {
	B, P := testBands(Te)
	W := mat.NewDense(3, 5, []float64{
		80, 40, 0, 10, 20,
		0, 0, 0, 0, 0,
		5, 5, 5, 5, 5,
	})
	chars := []*spaghetti.OrbitalCharacter{
		{Query: spaghetti.CharacterQuery{Atom: 1, Orbital: 1}, K: B.K, Energies: B.Energies, Weights: W},
		{Query: spaghetti.CharacterQuery{Atom: 2, Orbital: 3}, K: B.K, Energies: B.Energies, Weights: W},
	}
	p := plot.New()
	if err := Bands(p, B, P, BandOptions{}); err != nil {
		Te.Fatal(err)
	}
	if err := FatBands(p, chars, FatBandOptions{Labels: []string{"Cs-s", "V-dz²"}, Glyphs: true, Alpha: 0.5}); err != nil {
		Te.Fatal(err)
	}
	if p.Y.Min != -2 || p.Y.Max != 2 {
		Te.Errorf("fat bands changed the energy window to [%g, %g]", p.Y.Min, p.Y.Max)
	}
	render(Te, p)
	if err := FatBands(p, chars, FatBandOptions{Colors: []color.Color{color.Black}}); err == nil {
		Te.Error("expected an error for too few colors")
	}
	if err := FatBands(p, chars, FatBandOptions{Labels: []string{"one"}}); err == nil {
		Te.Error("expected an error for too few labels")
	}
	if r := MarkerRadius(16); r != vg.Points(2) {
		Te.Errorf("radius for weight 16: %v, expected 2pt", r)
	}
	if r := MarkerRadius(-1); r != 0 {
		Te.Errorf("radius for a negative weight: %v", r)
	}
}

func TestFatBandColor(Te *testing.T) {
	var opts FatBandOptions
	cases := []struct {
		ia, orbital int
		want        color.Color
	}{
		{0, 0, DefaultColor(0, 0)},
		{0, 1, DefaultColor(0, 1)},
		{1, 3, DefaultColor(1, 3)},
		{2, 6, DefaultColor(2, 1)},
	}
	for _, c := range cases {
		got := opts.color(0, c.ia, spaghetti.CharacterQuery{Atom: c.ia + 1, Orbital: c.orbital})
		if got != c.want {
			Te.Errorf("atom %d orbital %d: %v, expected %v", c.ia, c.orbital, got, c.want)
		}
	}
	if got := opts.color(0, 0, spaghetti.CharacterQuery{Atom: 1, Orbital: 1}); got == DefaultColor(0, 0) {
		Te.Error("orbital 1 took the color of orbital 0")
	}
	opts.Colors = []color.Color{color.White, color.Black}
	if got := opts.color(1, 0, spaghetti.CharacterQuery{Atom: 1, Orbital: 1}); got != color.Black {
		Te.Errorf("explicit color ignored: %v", got)
	}
}

func TestCharacterNames(Te *testing.T) {
	S := &spaghetti.Structure{Nat: 2, Species: []string{"Cs", "V1"}, Mults: []int{1, 3}}
	O := spaghetti.QtlOrbitals{{"tot", "0", "1"}, {"tot", "DZ2", "DXY"}}
	names, err := CharacterNames(S, O, []spaghetti.CharacterQuery{{Atom: 1, Orbital: 2}, {Atom: 2, Orbital: 2}})
	if err != nil {
		Te.Fatal(err)
	}
	if names[0] != "Cs-s" || names[1] != "V1-dz²" {
		Te.Errorf("names %v", names)
	}
	if _, err := CharacterNames(S, O, []spaghetti.CharacterQuery{{Atom: 3, Orbital: 1}}); err == nil {
		Te.Error("expected an error for a missing atom")
	}
}

func testDOS(sign float64) *spaghetti.DensityOfStates {
	n := 21
	e := make([]float64, n)
	data := mat.NewDense(n, 2, nil)
	for i := range e {
		e[i] = -1 + 0.1*float64(i)
		data.Set(i, 0, sign*float64(10-abs(i-10)))
		data.Set(i, 1, sign*1)
	}
	return &spaghetti.DensityOfStates{Energy: e, Names: []string{"total", "V-d"}, Data: data}
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}

func TestDOS(Te *testing.T) {
	for _, st := range []string{"line", "fill", "fill_line"} {
		Te.Run(st, func(Te *testing.T) {
			style, err := ParseDOSStyle(st)
			if err != nil {
				Te.Fatal(err)
			}
			p := plot.New()
			if err := DOS(p, testDOS(1), DOSOptions{Style: style, Legend: true}); err != nil {
				Te.Fatal(err)
			}
			if p.X.Min != -1 || p.X.Max != 1 {
				Te.Errorf("energy range [%g, %g]", p.X.Min, p.X.Max)
			}
			if p.Y.Min != 0 || p.Y.Max != 10 {
				Te.Errorf("DOS range [%g, %g]", p.Y.Min, p.Y.Max)
			}
			render(Te, p)
		})
	}
	if _, err := ParseDOSStyle("grad_fill"); err == nil {
		Te.Error("expected an error for an unknown style")
	}
}

func TestDOSOrientation(Te *testing.T) {
	p := plot.New()
	opts := DOSOptions{Orientation: EnergyY, Columns: []int{1}, EMin: -0.5, EMax: 0.5, Style: DOSFill}
	if err := DOS(p, testDOS(-1), opts); err != nil {
		Te.Fatal(err)
	}
	if p.Y.Min != -0.5 || p.Y.Max != 0.5 {
		Te.Errorf("energy range [%g, %g]", p.Y.Min, p.Y.Max)
	}
	if p.X.Min != -1 || p.X.Max != 0 {
		Te.Errorf("DOS range [%g, %g], expected [-1, 0]", p.X.Min, p.X.Max)
	}
	render(Te, p)
	opts.Columns = []int{2}
	if err := DOS(plot.New(), testDOS(1), opts); err == nil {
		Te.Error("expected an error for a missing column")
	}
}

func TestCharge(Te *testing.T) {
	rho := &spaghetti.ChargeDensity{Rho: mat.NewDense(3, 4, []float64{
		0, 1, 2, 3,
		1, 2, 3, 4,
		2, 3, 4, 5,
	})}
	for _, name := range Colormaps {
		Te.Run(name, func(Te *testing.T) {
			pal, err := Palette(name, 16)
			if err != nil {
				Te.Fatal(err)
			}
			p := plot.New()
			if err := Charge(p, rho, pal); err != nil {
				Te.Fatal(err)
			}
			render(Te, p)
		})
	}
	if _, err := Palette("viridis", 16); err == nil {
		Te.Error("expected an error for an unknown colormap")
	}
	g := rhoGrid{rho.Rho}
	if c, r := g.Dims(); c != 4 || r != 3 {
		Te.Errorf("grid is %dx%d, expected 4x3", c, r)
	}
	//the first row of the matrix is on top.
	if g.Z(0, 2) != 0 || g.Z(3, 0) != 5 {
		Te.Errorf("grid is upside down")
	}
}

func TestSave(Te *testing.T) {
	B, P := testBands(Te)
	up, down := plot.New(), plot.New()
	if err := Bands(up, B, P, BandOptions{}); err != nil {
		Te.Fatal(err)
	}
	if err := Bands(down, B, P, BandOptions{Shift: 0.5}); err != nil {
		Te.Fatal(err)
	}
	dir := Te.TempDir()
	for _, name := range []string{"bands.png", "bands.svg", "bands.pdf"} {
		out := filepath.Join(dir, name)
		if err := Save(up, 4*vg.Inch, 4*vg.Inch, out); err != nil {
			Te.Fatal(err)
		}
		if fi, err := os.Stat(out); err != nil || fi.Size() == 0 {
			Te.Errorf("%s was not written: %v", name, err)
		}
	}
	grid := filepath.Join(dir, "spin.png")
	if err := SaveGrid([][]*plot.Plot{{up, down}}, 8*vg.Inch, 4*vg.Inch, grid); err != nil {
		Te.Fatal(err)
	}
	if _, err := os.Stat(grid); err != nil {
		Te.Error(err)
	}
	if err := Save(up, vg.Inch, vg.Inch, filepath.Join(dir, "bands.xyz")); err == nil {
		Te.Error("expected an error for an unknown format")
	}
	if _, err := Grid([][]*plot.Plot{{up, down}, {up}}, vg.Inch, vg.Inch, "png"); err == nil {
		Te.Error("expected an error for ragged rows")
	}
}

func TestFermiSurface(Te *testing.T) {
	xy := plotter.XYs{{X: 0, Y: 0}, {X: 0.5, Y: 0}, {X: 0, Y: 0.5}, {X: 0.5, Y: 0.5}}
	values := []float64{-1, 0, 0.5, 1}
	pal, err := Palette("greys", 8)
	if err != nil {
		Te.Fatal(err)
	}
	p := plot.New()
	if err := FermiSurface(p, xy, values, SurfaceOptions{Palette: pal, Squares: true}); err != nil {
		Te.Fatal(err)
	}
	if p.X.Label.Text != "kx" || p.Y.Label.Text != "ky" {
		Te.Errorf("axis labels %q and %q", p.X.Label.Text, p.Y.Label.Text)
	}
	render(Te, p)
	if err := FermiSurface(plot.New(), xy, values[:2], SurfaceOptions{}); err == nil {
		Te.Error("expected an error for too few values")
	}
	if err := FermiSurface(plot.New(), nil, nil, SurfaceOptions{}); err == nil {
		Te.Error("expected an error for no points")
	}

	cols := pal.Colors()
	cases := []struct {
		v    float64
		want color.Color
	}{
		{-1, cols[0]},
		{1, cols[7]},
		{5, cols[7]},
		{-5, cols[0]},
		{math.NaN(), cols[0]},
	}
	for _, c := range cases {
		if got := paletteColor(cols, c.v, -1, 1); got != c.want {
			Te.Errorf("color for %g: %v, expected %v", c.v, got, c.want)
		}
	}
	if got := paletteColor(cols, 3, 2, 2); got != cols[0] {
		Te.Errorf("color for an empty range: %v", got)
	}

	odd, err := Palette("greys", 5)
	if err != nil {
		Te.Fatal(err)
	}
	for i, c := range odd.Colors() {
		if c == nil {
			Te.Fatalf("greys color %d is nil", i)
		}
	}
	light, _, _, _ := odd.Colors()[0].RGBA()
	dark, _, _, _ := odd.Colors()[4].RGBA()
	if light <= dark {
		Te.Errorf("greys go from %d to %d, expected light to dark", light, dark)
	}
}
