/*
 * vasp.go, part of spaghetti.
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
	"fmt"
	"image/color"
	"strconv"

	"github.com/rmera/spaghetti"
	"github.com/rmera/spaghetti/bandplot"
	"github.com/rmera/spaghetti/vasp"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
)

type vaspOpts struct {
	bandOpts
	procar  string
	ion     int
	orbital string
	weight  float64
	fat     string
}

func newVASPCmd(o *rootOpts) *cobra.Command {
	var v vaspOpts
	cmd := &cobra.Command{
		Use:   "vasp",
		Short: "Plot a VASP band structure, optionally with the projection on one orbital",
		Long: `Plot the bands in a BAND.dat file (by default the one found in the directory),
with energies relative to the Fermi level. With --procar, markers show the projection
of the bands on the orbital --orbital of the ion --ion. The orbital can be given by
name (s, py, dxy...) or by its 0-based column in the PROCAR ion tables.`,
		Example: `  spaghetti vasp --kpath 0,0.5,0.8,1.2 --klabels G,M,K,G
  spaghetti vasp --procar PROCAR --ion 3 --orbital dz2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVASP(cmd.Context(), o, &v)
		},
	}
	v.register(cmd)
	f := cmd.Flags()
	f.Lookup("spaghetti").Usage = "band file (default: the *BAND.dat in the directory)"
	f.StringVar(&v.procar, "procar", "", "PROCAR file with the orbital projections")
	f.IntVar(&v.ion, "ion", 1, "ion, from 1, whose projection is drawn")
	f.StringVar(&v.orbital, "orbital", "0", "orbital name or 0-based column of the projection")
	f.Float64VarP(&v.weight, "weight", "w", 80, "marker size factor")
	f.StringVar(&v.fat, "fat-color", "tab:red", "color of the projection markers")
	return cmd
}

//orbitalColumn returns the column of the orbital given by name or number.
func orbitalColumn(H *vasp.ProcarHeader, orbital string) (int, error) {
	if c, err := strconv.Atoi(orbital); err == nil {
		if c < 0 || c >= len(H.Orbitals) {
			return 0, fmt.Errorf("orbital column %d out of range [0,%d)", c, len(H.Orbitals))
		}
		return c, nil
	}
	for i, name := range H.Orbitals {
		if name == orbital {
			return i, nil
		}
	}
	return 0, fmt.Errorf("no orbital %q in the PROCAR file, it has %v", orbital, H.Orbitals)
}

func runVASP(ctx context.Context, o *rootOpts, v *vaspOpts) error {
	logger := loggerFromContext(ctx)
	name := v.file
	if name == "" {
		names, err := spaghetti.FindAll(o.dir, "*BAND.dat")
		if err != nil {
			return spaghetti.NewError(spaghetti.ErrMissingInput, "", "vasp", "no band file given: %s", err)
		}
		name = names[0]
	}
	pr := newProgress(logger)
	B, err := vasp.ReadBandsFile(name)
	if err != nil {
		return err
	}
	pr.done("read bands", "file", name, "bands", B.Len(), "k-points", len(B.K))
	P, err := o.path(ctx, B, v.pathOpts)
	if err != nil {
		return err
	}
	opts, err := v.options(o)
	if err != nil {
		return err
	}
	p := o.newPlot()
	if err := bandplot.Bands(p, B, P, opts); err != nil {
		return err
	}
	if v.procar != "" {
		if err := v.projection(ctx, p, B); err != nil {
			return err
		}
	}
	return o.save(ctx, p, "bands.png")
}

//projection draws the projection of the bands B on one orbital of one ion.
func (v *vaspOpts) projection(ctx context.Context, p *plot.Plot, B *spaghetti.BandSet) error {
	logger := loggerFromContext(ctx)
	H, err := vasp.ReadProcarHeaderFile(v.procar)
	if err != nil {
		return err
	}
	if v.ion < 1 || v.ion > H.Ions {
		return fmt.Errorf("ion %d out of range [1,%d]", v.ion, H.Ions)
	}
	col, err := orbitalColumn(H, v.orbital)
	if err != nil {
		return err
	}
	pr := newProgress(logger)
	W, err := vasp.ReadProcarFile(v.procar, v.ion, col, v.weight)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	pr.done("read projections", "file", v.procar, "ion", v.ion, "orbital", H.Orbitals[col])
	wb, wk := W.Dims()
	if wb != B.Len() || wk != len(B.K) {
		return spaghetti.NewError(spaghetti.ErrMismatch, v.procar, "vasp", "%d bands x %d k-points, but the band file has %d x %d", wb, wk, B.Len(), len(B.K))
	}
	var E mat.Dense
	E.Apply(func(_, _ int, e float64) float64 { return e - v.shift }, B.Energies)
	c := &spaghetti.OrbitalCharacter{
		Query:    spaghetti.CharacterQuery{Atom: v.ion, Orbital: col + 1, Scale: v.weight, Mult: 1, Shift: v.shift},
		K:        B.K,
		Energies: &E,
		Weights:  W,
	}
	fc, err := bandplot.ParseColor(v.fat)
	if err != nil {
		return err
	}
	label := fmt.Sprintf("ion %d-%s", v.ion, H.Orbitals[col])
	return bandplot.FatBands(p, []*spaghetti.OrbitalCharacter{c}, bandplot.FatBandOptions{
		Colors: []color.Color{fc},
		Labels: []string{label},
	})
}
