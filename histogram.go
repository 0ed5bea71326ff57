/*
 * histogram.go, part of spaghetti.
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
	"gonum.org/v1/gonum/stat"
)

//Histogram estimates a density of states from the band energies in B, counting
//them in bins of the given width between emin and emax. The counts are divided
//by the number of k-points and the bin width, so the result is in states/eV per
//k-point when the energies are in eV. The energy mesh is made of the bin centers.
//Energies outside the window are ignored. The result has a single column, named
//after the spin channel of B.
func (B *BandSet) Histogram(emin, emax, width float64) (*DensityOfStates, error) {
	if B == nil || B.Len() == 0 {
		return nil, NewError(ErrMissingInput, "", "BandSet.Histogram", "no bands")
	}
	if !(emin < emax) || !(width > 0) {
		return nil, NewError(ErrShape, "", "BandSet.Histogram", "bad window [%g, %g] or bin width %g", emin, emax, width)
	}
	nbins := binCount(emax-emin, width)
	dividers := make([]float64, nbins+1)
	for i := range dividers {
		dividers[i] = emin + float64(i)*width
	}
	raw := make([]float64, 0, B.Len()*len(B.K))
	for i := 0; i < B.Len(); i++ {
		raw = append(raw, B.Band(i)...)
	}
	sort.Float64s(raw)
	//stat.Histogram panics for values outside the dividers.
	lo := sort.SearchFloat64s(raw, dividers[0])
	hi := sort.SearchFloat64s(raw, dividers[nbins])
	counts := stat.Histogram(nil, dividers, raw[lo:hi], nil)
	norm := 1 / (float64(len(B.K)) * width)
	energy := make([]float64, nbins)
	for i := range counts {
		counts[i] *= norm
		energy[i] = (dividers[i] + dividers[i+1]) / 2
	}
	name := "bands"
	if B.Spin != SpinNone {
		name += "-" + B.Spin.String()
	}
	return &DensityOfStates{
		Energy: energy,
		Names:  []string{name},
		Data:   mat.NewDense(nbins, 1, counts),
	}, nil
}

//binCount returns the number of bins of the given width needed to cover span.
//A quotient within rounding error of an integer is taken as that integer, so
//a window of 8 in bins of 0.05 has 160 bins, not 161.
func binCount(span, width float64) int {
	q := span / width
	if n := math.Round(q); math.Abs(q-n) <= 1e-9*math.Max(1, n) {
		return int(n)
	}
	return int(math.Ceil(q))
}
