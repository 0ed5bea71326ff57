/*
 * rho.go, part of spaghetti.
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
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

//ChargeDensity is a charge density sampled on a 2D grid, as written by
//WIEN2k's lapw5 in case.rho.
type ChargeDensity struct {
	Rho *mat.Dense
}

//Dims returns the number of points of the grid along each direction.
func (C *ChargeDensity) Dims() (nx, ny int) {
	return C.Rho.Dims()
}

//ReadRho reads a case.rho file. The first line has the grid dimensions Nx and Ny,
//and the rest of the file the Nx*Ny values in row-major order, in any number of
//lines.
func ReadRho(r io.Reader) (*ChargeDensity, error) {
	var nx, ny int
	var vals []float64
	err := eachLine(r, func(n int, l string) error {
		f := strings.Fields(l)
		if n == 0 {
			if len(f) < 2 {
				return NewError(ErrShape, "", "ReadRho", "the first line must have the grid dimensions")
			}
			var err error
			if nx, err = strconv.Atoi(f[0]); err != nil {
				return NewError(ErrShape, "", "ReadRho", "grid dimension: %s", err)
			}
			if ny, err = strconv.Atoi(f[1]); err != nil {
				return NewError(ErrShape, "", "ReadRho", "grid dimension: %s", err)
			}
			if nx < 1 || ny < 1 {
				return NewError(ErrShape, "", "ReadRho", "bad grid dimensions %d x %d", nx, ny)
			}
			return nil
		}
		for _, s := range f {
			v, err := parseFortranFloat(s)
			if err != nil {
				return NewError(ErrShape, "", "ReadRho", "line %d: %s", n+1, err)
			}
			vals = append(vals, v)
		}
		return nil
	})
	if err != nil {
		return nil, Decorate(err, "ReadRho", "")
	}
	if nx == 0 {
		return nil, NewError(ErrShape, "", "ReadRho", "empty file")
	}
	if len(vals) != nx*ny {
		return nil, NewError(ErrShape, "", "ReadRho", "%d values for a %d x %d grid", len(vals), nx, ny)
	}
	return &ChargeDensity{Rho: mat.NewDense(nx, ny, vals)}, nil
}

//ReadRhoFile reads the charge density file name. See ReadRho.
func ReadRhoFile(name string) (*ChargeDensity, error) {
	return readFile(name, "ReadRhoFile", ReadRho)
}

//Add returns the sum of both densities, which must be on grids of the same size.
func (C *ChargeDensity) Add(o *ChargeDensity) (*ChargeDensity, error) {
	if err := C.sameGrid(o, "ChargeDensity.Add"); err != nil {
		return nil, err
	}
	var ret mat.Dense
	ret.Add(C.Rho, o.Rho)
	return &ChargeDensity{Rho: &ret}, nil
}

//Sub returns C minus o. Both must be on grids of the same size.
func (C *ChargeDensity) Sub(o *ChargeDensity) (*ChargeDensity, error) {
	if err := C.sameGrid(o, "ChargeDensity.Sub"); err != nil {
		return nil, err
	}
	var ret mat.Dense
	ret.Sub(C.Rho, o.Rho)
	return &ChargeDensity{Rho: &ret}, nil
}

//Transform returns a new density with f applied to each value, for
//instance a logarithm to bring out low density regions.
func (C *ChargeDensity) Transform(f func(float64) float64) *ChargeDensity {
	var ret mat.Dense
	ret.Apply(func(_, _ int, v float64) float64 { return f(v) }, C.Rho)
	return &ChargeDensity{Rho: &ret}
}

func (C *ChargeDensity) sameGrid(o *ChargeDensity, caller string) error {
	r1, c1 := C.Dims()
	r2, c2 := o.Dims()
	if r1 != r2 || c1 != c2 {
		return NewError(ErrMismatch, "", caller, "grids of %d x %d and %d x %d", r1, c1, r2, c2)
	}
	return nil
}
