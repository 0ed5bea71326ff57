/*
 * info.go, part of spaghetti.
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
	"io"
	"strconv"
	"strings"

	"github.com/rmera/spaghetti"
	"github.com/spf13/cobra"
)

func newInfoCmd(o *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Summarize the inputs found in the directory",
		Long: `Look for every input spaghetti can read in the directory, read it, and print
what it contains. Inputs that are missing or can't be read are listed with the reason.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runInfo(cmd.Context(), o, cmd.OutOrStdout())
			return nil
		},
	}
}

func runInfo(ctx context.Context, o *rootOpts, w io.Writer) {
	printTitle(w, "Structure")
	if name, err := o.locate("", spaghetti.ExtStruct); err != nil {
		printMissing(w, "struct", err)
	} else if S, err := spaghetti.ReadStructureFile(name); err != nil {
		printMissing(w, "struct", err)
	} else {
		printFile(w, name)
		printKeyValue(w, "title", S.Title)
		printKeyValue(w, "lattice", S.Centering)
		if S.SpaceGroup > 0 {
			printKeyNumber(w, "space group", "%d", S.SpaceGroup)
		}
		printKeyNumber(w, "a b c (Å)", "%.4f %.4f %.4f", S.Params[0]*spaghetti.Bohr2Angstrom, S.Params[1]*spaghetti.Bohr2Angstrom, S.Params[2]*spaghetti.Bohr2Angstrom)
		printKeyNumber(w, "α β γ (°)", "%.2f %.2f %.2f", S.Params[3], S.Params[4], S.Params[5])
		if R, err := S.Reciprocal(); err == nil {
			for i := 0; i < 3; i++ {
				printKeyNumber(w, "b"+strconv.Itoa(i+1)+" (1/bohr)", "%.4f %.4f %.4f", R.At(i, 0), R.At(i, 1), R.At(i, 2))
			}
		}
		printKeyNumber(w, "symmetry ops", "%d", len(S.Symmetry))
		for i := range S.Species {
			sp, mult, _ := S.Atom(i + 1)
			printKeyNumber(w, "atom "+strconv.Itoa(i+1), "%s ×%d", sp, mult)
		}
	}

	printTitle(w, "Fermi energy")
	if eF, err := o.fermi(ctx, ""); err != nil {
		printMissing(w, "scf", err)
	} else {
		printKeyNumber(w, "ε_F", "%.5f Ry  %.4f eV", eF, eF*spaghetti.Ry2eV)
	}

	printTitle(w, "Bands")
	var B *spaghetti.BandSet
	if name, err := o.locate("", spaghetti.ExtBands); err != nil {
		printMissing(w, "spaghetti_ene", err)
	} else if B, err = spaghetti.ReadBandsFile(name); err != nil {
		printMissing(w, "spaghetti_ene", err)
	} else {
		printFile(w, name)
		emin, emax := B.Range()
		printKeyNumber(w, "bands", "%d", B.Len())
		printKeyNumber(w, "k-points", "%d", len(B.K))
		printKeyNumber(w, "energies (eV)", "%.3f to %.3f", emin, emax)
		if P, err := o.path(ctx, B, pathOpts{}); err != nil {
			printMissing(w, "k-path", err)
		} else {
			printKeyValue(w, "k-path", strings.Join(P.Labels, " "))
		}
	}

	printTitle(w, "Orbital character")
	if name, err := o.locate("", spaghetti.ExtQtl); err != nil {
		printMissing(w, "qtl", err)
	} else if O, err := spaghetti.ReadQtlOrbitalsFile(name); err != nil {
		printMissing(w, "qtl", err)
	} else {
		printFile(w, name)
		for i, orbs := range O {
			names := make([]string, len(orbs))
			for j := range orbs {
				names[j], _ = O.Name(i+1, j+1)
				names[j] = strconv.Itoa(j+1) + ":" + names[j]
			}
			printKeyValue(w, "atom "+strconv.Itoa(i+1), strings.Join(names, " "))
		}
	}

	printTitle(w, "Other inputs")
	if names, err := spaghetti.FindDOS(o.dir); err != nil {
		printMissing(w, "dos", err)
	} else {
		for _, n := range names {
			printFile(w, n)
		}
	}
	for _, in := range []struct{ what, ext string }{
		{"wannier", spaghetti.ExtWannier},
		{"rho", spaghetti.ExtRho},
	} {
		if name, err := o.locate("", in.ext); err != nil {
			printMissing(w, in.what, err)
		} else {
			printFile(w, name)
		}
	}
}
