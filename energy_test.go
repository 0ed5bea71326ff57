/*
 * energy_test.go, part of spaghetti.
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

package spaghetti

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//energyFile returns a case.energy with one k-point line per row of k, in the
//current layout, followed by the energies in e.
func energyFile(k [][3]float64, e [][]float64) string {
	var b strings.Builder
	b.WriteString(strings.Repeat("  0.30000", 13) + "\n")
	b.WriteString(strings.Repeat("  0.30000  0.30000 -0.15000", 3) + "\n")
	for i, kp := range k {
		fmt.Fprintf(&b, "%19.12E%19.12E%19.12E%-10s%6d%6d%5.1f\n", kp[0], kp[1], kp[2], "", 120, len(e[i]), 1.0)
		for j, v := range e[i] {
			fmt.Fprintf(&b, "%12d%24.16E\n", j+1, v)
		}
	}
	return b.String()
}

//cubic is an irreducible set of k-points of a square lattice.
var cubic = [][3]float64{{0, 0, 0}, {0.5, 0, 0}, {0.25, 0.25, 0}}

var cubicE = [][]float64{
	{-0.2, 0.4, 0.9},
	{0.1, 0.5, 1.1},
	{0.0, 0.45},
}

func TestReadEnergy(Te *testing.T) {
	E, err := ReadEnergy(strings.NewReader(energyFile(cubic, cubicE)))
	if err != nil {
		Te.Fatal(err)
	}
	if E.Len() != 2 {
		Te.Errorf("%d bands, expected the 2 present at every k-point", E.Len())
	}
	if r, _ := E.K.Dims(); r != 3 {
		Te.Fatalf("%d k-points, expected 3", r)
	}
	if !floats.Equal(E.K.RawRowView(1), cubic[1][:]) {
		Te.Errorf("second k-point %v", E.K.RawRowView(1))
	}
	want := mat.NewDense(2, 3, []float64{-0.2, 0.1, 0.0, 0.4, 0.5, 0.45})
	if !mat.EqualApprox(E.E, want, 1e-12) {
		Te.Errorf("energies\n%v\nexpected\n%v", mat.Formatted(E.E), mat.Formatted(want))
	}
	if len(E.Weights) != 3 || E.Weights[0] != 1 {
		Te.Errorf("weights %v", E.Weights)
	}
}

func TestReadEnergyOldLayout(Te *testing.T) {
	in := strings.Repeat("  0.30000", 13) + "\n" +
		fmt.Sprintf("%10.5f%10.5f%10.5f%-10s%6d%6d%5.1f\n", 0.5, 0.0, 0.25, "X", 100, 2, 6.0) +
		"           1  -0.538795652313770\n" +
		"           2   0.1D+00\n"
	E, err := ReadEnergy(strings.NewReader(in))
	if err != nil {
		Te.Fatal(err)
	}
	if E.Names[0] != "X" || E.K.At(0, 2) != 0.25 {
		Te.Errorf("k-point %v named %q", E.K.RawRowView(0), E.Names[0])
	}
	if E.E.At(1, 0) != 0.1 {
		Te.Errorf("second energy %g", E.E.At(1, 0))
	}
}

func TestReadEnergyErrors(Te *testing.T) {
	good := energyFile(cubic, cubicE)
	cases := map[string]string{
		"empty":     "",
		"header":    strings.Repeat("  0.30000", 13) + "\n",
		"truncated": good[:strings.LastIndex(strings.TrimRight(good, "\n"), "\n")+1],
		"garbage":   good + "this is not a k-point\n",
		"energy":    good + fmt.Sprintf("%19.12E%19.12E%19.12E%-10s%6d%6d%5.1f\n", 0.0, 0.0, 0.5, "", 120, 1, 1.0) + "           1         abc\n",
	}
	for name, in := range cases {
		Te.Run(name, func(Te *testing.T) {
			if _, err := ReadEnergy(strings.NewReader(in)); !errors.Is(err, ErrShape) {
				Te.Errorf("expected an ErrShape, got %v", err)
			}
		})
	}
}

func TestReadEnergyFile(Te *testing.T) {
	dir := Te.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "case"+SpinUp.EnergyExt()), []byte(energyFile(cubic, cubicE)), 0644); err != nil {
		Te.Fatal(err)
	}
	name, err := Resolve("", "case", dir, SpinUp.EnergyExt())
	if err != nil {
		Te.Fatal(err)
	}
	if _, err := ReadEnergyFile(name); err != nil {
		Te.Error(err)
	}
	if _, err := Resolve("", "case", dir, ExtEnergy); !errors.Is(err, ErrNotFound) {
		Te.Errorf("expected an ErrNotFound, got %v", err)
	}
}
