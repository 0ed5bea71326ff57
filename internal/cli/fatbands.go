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

package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rmera/spaghetti"
	"github.com/rmera/spaghetti/bandplot"
	"github.com/spf13/cobra"
)

//charSpec is an atom and the orbitals of it whose character is drawn.
type charSpec struct {
	atom     int
	orbitals []int
}

//parseCharacter parses "atom:orbital,orbital...", e.g. "2:1,3".
func parseCharacter(s string) (charSpec, error) {
	a, o, ok := strings.Cut(s, ":")
	if !ok {
		return charSpec{}, fmt.Errorf("bad character %q, use atom:orbital[,orbital...]", s)
	}
	atom, err := strconv.Atoi(strings.TrimSpace(a))
	if err != nil || atom < 1 {
		return charSpec{}, fmt.Errorf("bad atom in %q", s)
	}
	ret := charSpec{atom: atom}
	for _, f := range strings.Split(o, ",") {
		orb, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil || orb < 1 {
			return charSpec{}, fmt.Errorf("bad orbital %q in %q", f, s)
		}
		ret.orbitals = append(ret.orbitals, orb)
	}
	return ret, nil
}

type fatBandOpts struct {
	bandOpts
	characters []string
	qtl        string
	structure  string
	fermi      string
	colors     []string
	weight     float64
	glyphs     bool
	alpha      float64
}

func newFatBandsCmd(o *rootOpts) *cobra.Command {
	var f fatBandOpts
	cmd := &cobra.Command{
		Use:   "fatbands",
		Short: "Plot the band structure with the orbital character of some atoms",
		Long: `Plot the band structure with markers whose area is proportional to the
character of the chosen orbitals of the chosen atoms, read from case.qtl.
The atom multiplicities and species come from case.struct, the Fermi energy
from case.scf unless given with --fermi.

Atoms and orbitals are 1-based, as in the JATOM lines of case.qtl:
  spaghetti fatbands -a 1:1 -a 2:5,7`,
		Example: `  spaghetti fatbands --case CsV3Sb5 -a 2:5,6,7 --weight 100
  spaghetti fatbands --spin up -a 1:2 --colors tab:red`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("weight") && o.config.Weight > 0 {
				f.weight = o.config.Weight
			}
			return runFatBands(cmd.Context(), o, &f)
		},
	}
	f.register(cmd)
	fl := cmd.Flags()
	fl.StringVar(&f.spin, "spin", "", "spin channel: up or dn")
	fl.StringArrayVarP(&f.characters, "character", "a", nil, `atom and orbitals, "atom:orbital[,orbital...]", may be repeated`)
	fl.StringVar(&f.qtl, "qtl", "", "orbital character file (default: case.qtl)")
	fl.StringVar(&f.structure, "struct", "", "structure file (default: case.struct)")
	fl.StringVar(&f.fermi, "fermi", "", "Fermi energy in Ry, or a file to read it from (default: case.scf)")
	fl.StringSliceVar(&f.colors, "colors", nil, "one color per atom/orbital pair")
	fl.Float64VarP(&f.weight, "weight", "w", 80, "marker size factor")
	fl.BoolVar(&f.glyphs, "glyphs", false, "use a different marker shape for each atom")
	fl.Float64Var(&f.alpha, "alpha", 0, "opacity of the markers, 0-1 (0 is opaque)")
	return cmd
}

//specs returns the atom/orbital pairs from the flags, or else from the
//project file.
func (f *fatBandOpts) specs(o *rootOpts) ([]charSpec, error) {
	if len(f.characters) == 0 {
		if specs := o.config.characters(); len(specs) > 0 {
			return specs, nil
		}
		return nil, spaghetti.NewError(spaghetti.ErrMissingInput, "", "fatbands", "no atoms given, use --character or the atoms key of %s", configName)
	}
	specs := make([]charSpec, 0, len(f.characters))
	for _, c := range f.characters {
		s, err := parseCharacter(c)
		if err != nil {
			return nil, err
		}
		specs = append(specs, s)
	}
	return specs, nil
}

func runFatBands(ctx context.Context, o *rootOpts, f *fatBandOpts) error {
	logger := loggerFromContext(ctx)
	s, err := spinChannel(f.spin)
	if err != nil {
		return err
	}
	specs, err := f.specs(o)
	if err != nil {
		return err
	}
	colors := f.colors
	if len(colors) == 0 {
		colors = o.config.Colors
	}
	structName, err := o.need(f.structure, spaghetti.ExtStruct, "the structure file")
	if err != nil {
		return err
	}
	qtlName, err := o.need(f.qtl, s.QtlExt(), "the orbital character file")
	if err != nil {
		return err
	}
	eF, err := o.fermi(ctx, f.fermi)
	if err != nil {
		return err
	}
	S, err := spaghetti.ReadStructureFile(structName)
	if err != nil {
		return err
	}
	logger.Debug("structure", "title", S.Title, "atoms", S.Nat)
	B, P, err := f.read(ctx, o, s)
	if err != nil {
		return err
	}

	var qs []spaghetti.CharacterQuery
	for _, sp := range specs {
		_, mult, err := S.Atom(sp.atom)
		if err != nil {
			return err
		}
		for _, orb := range sp.orbitals {
			qs = append(qs, spaghetti.CharacterQuery{
				Atom:    sp.atom,
				Orbital: orb,
				Scale:   f.weight,
				Mult:    float64(mult),
				Fermi:   eF,
				Shift:   f.shift,
			})
		}
	}
	pr := newProgress(logger)
	chars, err := spaghetti.ReadCharactersFile(qtlName, qs, B.K)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	pr.done("read orbital characters", "file", qtlName, "pairs", len(qs))
	orbs, err := spaghetti.ReadQtlOrbitalsFile(qtlName)
	if err != nil {
		return err
	}
	names, err := bandplot.CharacterNames(S, orbs, qs)
	if err != nil {
		return err
	}
	fopts := bandplot.FatBandOptions{Labels: names, Glyphs: f.glyphs, Alpha: f.alpha}
	if len(colors) > 0 {
		if len(colors) < len(qs) {
			return fmt.Errorf("%d colors for %d atom/orbital pairs", len(colors), len(qs))
		}
		if fopts.Colors, err = bandplot.ParseColors(colors); err != nil {
			return err
		}
	}
	bopts, err := f.options(o)
	if err != nil {
		return err
	}

	logger.Info("plotting fat bands", "characters", strings.Join(names, " "))
	p := o.newPlot()
	if err := bandplot.Bands(p, B, P, bopts); err != nil {
		return err
	}
	if err := bandplot.FatBands(p, chars, fopts); err != nil {
		return err
	}
	return o.save(ctx, p, "fatbands.png")
}
