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

package cli

import (
	"context"
	"strings"

	"github.com/rmera/spaghetti"
	"github.com/rmera/spaghetti/bandplot"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

type fermiSurfaceOpts struct {
	energy    string
	structure string
	fermi     string
	spin      string
	band      int
	window    float64
	kz        float64
	plane     bool //--kz was given.
	cartesian bool
	colormap  string
	size      float64
	circles   bool
}

func newFermiSurfaceCmd(o *rootOpts) *cobra.Command {
	var fs fermiSurfaceOpts
	cmd := &cobra.Command{
		Use:   "fermisurface",
		Short: "Plot a Fermi surface from the eigenvalues of lapw1",
		Long: `Plot the k-points of case.energy, unfolded to the whole Brillouin zone with the
symmetry operations in case.struct, projected on the kx-ky plane.

With --band, each point is colored by the energy of that band relative to the
Fermi energy, in eV. Otherwise the points where some band lies within --window
eV of the Fermi energy are marked, which traces the Fermi surface.
The k-points are in units of the reciprocal lattice vectors unless --cartesian
is given. Use --kz to keep only one plane.`,
		Example: `  spaghetti fermisurface --window 0.05 --kz 0
  spaghetti fermisurface --band 68 --colormap bluered --cartesian`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fs.plane = cmd.Flags().Changed("kz")
			return runFermiSurface(cmd.Context(), o, &fs)
		},
	}
	f := cmd.Flags()
	f.StringVar(&fs.energy, "energy", "", "eigenvalue file (default: case.energy)")
	f.StringVar(&fs.structure, "struct", "", "structure file (default: case.struct)")
	f.StringVar(&fs.fermi, "fermi", "", "Fermi energy in Ry, or a file to read it from (default: case.scf)")
	f.StringVar(&fs.spin, "spin", "", "spin channel: up or dn")
	f.IntVarP(&fs.band, "band", "b", 0, "band to color the points by, 1-based (default: mark the Fermi surface)")
	f.Float64Var(&fs.window, "window", 0.025, "half width, in eV, of the window around the Fermi energy")
	f.Float64Var(&fs.kz, "kz", 0, "keep only the k-points with this kz, in units of the reciprocal lattice")
	f.BoolVar(&fs.cartesian, "cartesian", false, "draw the k-points in Cartesian coordinates, in 1/bohr")
	f.StringVar(&fs.colormap, "colormap", "", "colormap: "+strings.Join(bandplot.Colormaps, ", ")+" (default: greys, or the style's with --band)")
	f.Float64Var(&fs.size, "size", 3, "marker radius in points")
	f.BoolVar(&fs.circles, "circles", false, "draw circles instead of squares")
	return cmd
}

func runFermiSurface(ctx context.Context, o *rootOpts, fs *fermiSurfaceOpts) error {
	logger := loggerFromContext(ctx)
	s, err := spinChannel(fs.spin)
	if err != nil {
		return err
	}
	if fs.band < 0 {
		return spaghetti.NewError(spaghetti.ErrShape, "", "fermisurface", "bands are 1-based, got %d", fs.band)
	}
	structName, err := o.need(fs.structure, spaghetti.ExtStruct, "the structure file")
	if err != nil {
		return err
	}
	eneName, err := o.need(fs.energy, s.EnergyExt(), "the eigenvalue file")
	if err != nil {
		return err
	}
	eF, err := o.fermi(ctx, fs.fermi)
	if err != nil {
		return err
	}
	S, err := spaghetti.ReadStructureFile(structName)
	if err != nil {
		return err
	}
	if len(S.Symmetry) == 0 {
		logger.Warn("no symmetry operations, only the irreducible k-points will be drawn", "file", structName)
	}
	pr := newProgress(logger)
	E, err := spaghetti.ReadEnergyFile(eneName)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	_, nk := E.E.Dims()
	pr.done("read eigenvalues", "file", eneName, "bands", E.Len(), "k-points", nk)
	Z, err := spaghetti.Unfold(E.K, S.Symmetry)
	if err != nil {
		return err
	}
	logger.Debug("unfolded the k-points", "operations", len(S.Symmetry), "points", Z.Len())

	var values []float64
	cmap := fs.colormap
	if fs.band > 0 {
		values, err = E.Surface(Z, fs.band-1, eF)
		if cmap == "" {
			cmap = o.style.Colormap
		}
	} else {
		values, err = E.Crossings(Z, eF, fs.window)
		if cmap == "" {
			cmap = "greys"
		}
	}
	if err != nil {
		return err
	}
	pal, err := bandplot.Palette(cmap, 256)
	if err != nil {
		return err
	}
	K := Z.K
	if fs.cartesian {
		R, err := S.Reciprocal()
		if err != nil {
			return err
		}
		K = Z.Cartesian(R)
	}
	rows := make([]int, Z.Len())
	for i := range rows {
		rows[i] = i
	}
	if fs.plane {
		if rows = Z.Plane(2, fs.kz); len(rows) == 0 {
			return spaghetti.NewError(spaghetti.ErrShape, "", "fermisurface", "no k-points with kz=%g", fs.kz)
		}
	}
	xy := make(plotter.XYs, len(rows))
	vals := make([]float64, len(rows))
	for i, r := range rows {
		xy[i] = plotter.XY{X: K.At(r, 0), Y: K.At(r, 1)}
		vals[i] = values[r]
	}
	p := o.newPlot()
	opts := bandplot.SurfaceOptions{Palette: pal, Radius: vg.Points(fs.size), Squares: !fs.circles}
	if err := bandplot.FermiSurface(p, xy, vals, opts); err != nil {
		return err
	}
	return o.save(ctx, p, "fermisurface.png")
}
