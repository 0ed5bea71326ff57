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

package spaghetti

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

//Coordinates closer than zoneTol are the same k-point.
const zoneTol = 1e-6

//ZonePoints are k-points of the full Brillouin zone, obtained from those of the
//irreducible wedge with the symmetry operations of the crystal.
type ZonePoints struct {
	K     *mat.Dense //one k-point per row, in units of the reciprocal lattice vectors.
	Index []int      //row, in the irreducible set, of the k-point each one is an image of.
}

//Len returns the number of k-points.
func (Z *ZonePoints) Len() int {
	return len(Z.Index)
}

//Unfold applies every operation in ops to the k-points in the rows of K and
//returns the distinct images, together with the irreducible points themselves,
//ordered by z, then y, then x. Fractional k-points transform with the inverse
//transpose of the rotations, and, over the whole group, that gives the same
//set as the transposes.
func Unfold(K mat.Matrix, ops []SymOp) (*ZonePoints, error) {
	nk, c := K.Dims()
	if nk == 0 || c != 3 {
		return nil, NewError(ErrShape, "", "Unfold", "%d x %d k-points, expected 3 columns", nk, c)
	}
	type image struct {
		k  [3]float64
		ik int
	}
	var imgs []image
	seen := make(map[[3]int64]bool)
	add := func(v [3]float64, ik int) {
		var key [3]int64
		for i := range v {
			if math.Abs(v[i]) < zoneTol {
				v[i] = 0
			}
			key[i] = int64(math.Round(v[i] / zoneTol))
		}
		if seen[key] {
			return
		}
		seen[key] = true
		imgs = append(imgs, image{k: v, ik: ik})
	}
	for ik := 0; ik < nk; ik++ {
		add([3]float64{K.At(ik, 0), K.At(ik, 1), K.At(ik, 2)}, ik)
	}
	for _, op := range ops {
		for ik := 0; ik < nk; ik++ {
			var v [3]float64
			for i := range v {
				for j := 0; j < 3; j++ {
					v[i] += float64(op.Rot[j][i]) * K.At(ik, j)
				}
			}
			add(v, ik)
		}
	}
	sort.SliceStable(imgs, func(a, b int) bool {
		for _, i := range []int{2, 1, 0} {
			if imgs[a].k[i] != imgs[b].k[i] {
				return imgs[a].k[i] < imgs[b].k[i]
			}
		}
		return false
	})
	Z := &ZonePoints{K: mat.NewDense(len(imgs), 3, nil), Index: make([]int, len(imgs))}
	for i, im := range imgs {
		Z.K.SetRow(i, im.k[:])
		Z.Index[i] = im.ik
	}
	return Z, nil
}

//Cartesian returns the k-points of Z in Cartesian coordinates, given the
//reciprocal lattice vectors as the rows of recip.
func (Z *ZonePoints) Cartesian(recip mat.Matrix) *mat.Dense {
	var C mat.Dense
	C.Mul(Z.K, recip)
	return &C
}

//Plane returns the indexes of the k-points whose coordinate axis (0 to 2)
//is value.
func (Z *ZonePoints) Plane(axis int, value float64) []int {
	var ret []int
	for i := 0; i < Z.Len(); i++ {
		if math.Abs(Z.K.At(i, axis)-value) < zoneTol {
			ret = append(ret, i)
		}
	}
	return ret
}

//Reciprocal returns the reciprocal lattice vectors, in 1/bohr, as the rows of a
//3x3 matrix, such that each one has a dot product of 2π with the matching
//vector of Lattice and 0 with the others.
func (S *Structure) Reciprocal() (*mat.Dense, error) {
	for i := 0; i < 3; i++ {
		if S.Params[i] <= 0 || S.Params[i+3] <= 0 || S.Params[i+3] >= 180 {
			return nil, NewError(ErrShape, "", "Structure.Reciprocal", "bad lattice parameters %v", S.Params)
		}
	}
	var inv mat.Dense
	if err := inv.Inverse(S.Lattice()); err != nil {
		return nil, NewError(ErrShape, "", "Structure.Reciprocal", "lattice vectors: %s", err)
	}
	var B mat.Dense
	B.Scale(2*math.Pi, inv.T())
	return &B, nil
}

//Surface returns, for each k-point of Z, the energy of the band (0-based)
//relative to eF, in eV. eF is in Ry.
func (E *Eigenvalues) Surface(Z *ZonePoints, band int, eF float64) ([]float64, error) {
	if band < 0 || band >= E.Len() {
		return nil, NewError(ErrShape, "", "Eigenvalues.Surface", "band %d out of range [1,%d]", band+1, E.Len())
	}
	if err := E.check(Z, "Eigenvalues.Surface"); err != nil {
		return nil, err
	}
	ret := make([]float64, Z.Len())
	for i, ik := range Z.Index {
		ret[i] = (E.E.At(band, ik) - eF) * Ry2eV
	}
	return ret, nil
}

//Crossings returns, for each k-point of Z, the number of bands within window
//eV of eF, which is in Ry. The points with a non-zero count trace the Fermi
//surface.
func (E *Eigenvalues) Crossings(Z *ZonePoints, eF, window float64) ([]float64, error) {
	if !(window > 0) {
		return nil, NewError(ErrShape, "", "Eigenvalues.Crossings", "bad energy window %g", window)
	}
	if err := E.check(Z, "Eigenvalues.Crossings"); err != nil {
		return nil, err
	}
	lo, hi := eF-window*EV2Ry, eF+window*EV2Ry
	ret := make([]float64, Z.Len())
	for i, ik := range Z.Index {
		for b := 0; b < E.Len(); b++ {
			if e := E.E.At(b, ik); e > lo && e < hi {
				ret[i]++
			}
		}
	}
	return ret, nil
}

func (E *Eigenvalues) check(Z *ZonePoints, caller string) error {
	_, nk := E.E.Dims()
	for _, ik := range Z.Index {
		if ik < 0 || ik >= nk {
			return NewError(ErrMismatch, "", caller, "k-point %d of the zone, but only %d in the file", ik+1, nk)
		}
	}
	return nil
}
