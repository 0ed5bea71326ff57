/*
 * energy.go, part of spaghetti.
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
	"fmt"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

//Eigenvalues contains the k-points of the irreducible wedge, as written by lapw1
//in case.energy, and the band energies at each of them.
type Eigenvalues struct {
	K       *mat.Dense //one k-point per row, in units of the reciprocal lattice vectors.
	Names   []string   //label of each k-point, often empty.
	Weights []float64
	E       *mat.Dense //energies in Ry, one band per row and one k-point per column.
}

//Len returns the number of bands.
func (E *Eigenvalues) Len() int {
	r, _ := E.E.Dims()
	return r
}

//ReadEnergy reads a case.energy file. The file starts with the linearization
//energies of each atom, followed, for each k-point, by a line with its
//coordinates, name, basis size, number of bands and weight, and one line per
//band with its index and energy. Both the 3e19.12 and the older 3f10.5 layout
//of the k-point lines are accepted. The number of bands of a k-point depends
//on the energy window, so only the bands present at every k-point are kept.
func ReadEnergy(r io.Reader) (*Eigenvalues, error) {
	var (
		k     []float64
		names []string
		wts   []float64
		ene   [][]float64
		left  int //band lines still to read for the last k-point.
	)
	err := eachLine(r, func(n int, l string) error {
		if left > 0 {
			e, err := energyLine(l)
			if err != nil {
				return NewError(ErrShape, "", "ReadEnergy", "line %d: %s", n+1, err)
			}
			ene[len(ene)-1] = append(ene[len(ene)-1], e)
			left--
			return nil
		}
		kp, name, nb, w, ok := kPointLine(l)
		if !ok {
			if len(k) > 0 && strings.TrimSpace(l) != "" {
				return NewError(ErrShape, "", "ReadEnergy", "line %d: expected a k-point, got %q", n+1, l)
			}
			return nil
		}
		k = append(k, kp[:]...)
		names = append(names, name)
		wts = append(wts, w)
		ene = append(ene, make([]float64, 0, nb))
		left = nb
		return nil
	})
	if err != nil {
		return nil, Decorate(err, "ReadEnergy", "")
	}
	if len(ene) == 0 {
		return nil, NewError(ErrShape, "", "ReadEnergy", "no k-points")
	}
	if left > 0 {
		return nil, NewError(ErrShape, "", "ReadEnergy", "the file ends %d bands short of k-point %d", left, len(ene))
	}
	nb := len(ene[0])
	for _, e := range ene {
		nb = min(nb, len(e))
	}
	if nb == 0 {
		return nil, NewError(ErrShape, "", "ReadEnergy", "a k-point without bands")
	}
	E := mat.NewDense(nb, len(ene), nil)
	for j, e := range ene {
		for i := 0; i < nb; i++ {
			E.Set(i, j, e[i])
		}
	}
	return &Eigenvalues{
		K:       mat.NewDense(len(ene), 3, k),
		Names:   names,
		Weights: wts,
		E:       E,
	}, nil
}

//ReadEnergyFile reads the eigenvalue file name. See ReadEnergy.
func ReadEnergyFile(name string) (*Eigenvalues, error) {
	return readFile(name, "ReadEnergyFile", ReadEnergy)
}

//kPointLine parses a k-point line. ok is false if l is not one, as is the case
//for the linearization energies at the top of the file.
func kPointLine(l string) (k [3]float64, name string, nb int, w float64, ok bool) {
	for _, width := range []int{19, 10} {
		start := 3*width + 10
		if len(l) <= start {
			continue
		}
		var err error
		good := true
		for i := range k {
			if k[i], err = parseFortranFloat(strings.TrimSpace(l[i*width : (i+1)*width])); err != nil {
				good = false
				break
			}
		}
		rest := strings.Fields(l[start:])
		if !good || len(rest) != 3 {
			continue
		}
		if _, err = strconv.Atoi(rest[0]); err != nil {
			continue
		}
		if nb, err = strconv.Atoi(rest[1]); err != nil || nb < 0 {
			continue
		}
		if w, err = parseFortranFloat(rest[2]); err != nil {
			continue
		}
		return k, strings.TrimSpace(l[3*width : start]), nb, w, true
	}
	return k, "", 0, 0, false
}

//energyLine returns the energy in a band line, an integer index 12 characters
//wide followed by the energy.
func energyLine(l string) (float64, error) {
	f := strings.Fields(l)
	if len(f) != 2 && len(l) > 12 {
		f = []string{strings.TrimSpace(l[:12]), strings.TrimSpace(l[12:])}
	}
	if len(f) != 2 {
		return 0, fmt.Errorf("expected a band index and an energy in %q", l)
	}
	if _, err := strconv.Atoi(f[0]); err != nil {
		return 0, fmt.Errorf("band index: %w", err)
	}
	return parseFortranFloat(f[1])
}
