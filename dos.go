/*
 * dos.go, part of spaghetti.
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
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

//DensityOfStates holds an energy mesh and one or more named columns
//of state densities on it.
type DensityOfStates struct {
	Energy []float64
	Names  []string
	//One row per element of Energy, one column per element of Names.
	Data *mat.Dense
}

//Len returns the number of columns.
func (D *DensityOfStates) Len() int {
	return len(D.Names)
}

//Column returns a copy of the ith column.
func (D *DensityOfStates) Column(i int) []float64 {
	return mat.Col(nil, i, D.Data)
}

//Rename replaces the names of the columns given as keys in names.
//Indexes out of range are ignored.
func (D *DensityOfStates) Rename(names map[int]string) {
	for i, n := range names {
		if i >= 0 && i < len(D.Names) {
			D.Names[i] = n
		}
	}
}

//ReadDOS reads a WIEN2k density of states file (case.dosXev and the like).
//Lines starting with # are comments, except that the column names are taken from
//the one containing "ENERGY". The first column is the energy and the rest are
//densities. Every data row must have the same number of fields.
func ReadDOS(r io.Reader) (*DensityOfStates, error) {
	var names []string
	var flat []float64
	var energy []float64
	ncols := -1
	err := eachLine(r, func(n int, l string) error {
		t := strings.TrimSpace(l)
		if t == "" {
			return nil
		}
		if strings.HasPrefix(t, "#") {
			if names == nil && con(t, "ENERGY") {
				names = headerNames(t)
			}
			return nil
		}
		f := strings.Fields(t)
		if ncols < 0 {
			ncols = len(f)
			if ncols < 2 {
				return NewError(ErrShape, "", "ReadDOS", "line %d: an energy and at least one density expected", n+1)
			}
		}
		if len(f) != ncols {
			return NewError(ErrShape, "", "ReadDOS", "line %d: %d fields, %d expected", n+1, len(f), ncols)
		}
		v, err := parseFloats(f)
		if err != nil {
			return NewError(ErrShape, "", "ReadDOS", "line %d: %s", n+1, err)
		}
		energy = append(energy, v[0])
		flat = append(flat, v[1:]...)
		return nil
	})
	if err != nil {
		return nil, Decorate(err, "ReadDOS", "")
	}
	if len(energy) == 0 {
		return nil, NewError(ErrShape, "", "ReadDOS", "no data")
	}
	ncols--
	if len(names) != ncols {
		//No header, or one that doesn't match the data.
		names = make([]string, ncols)
		for i := range names {
			names[i] = "DOS-" + strconv.Itoa(i+1)
		}
	}
	return &DensityOfStates{Energy: energy, Names: names, Data: mat.NewDense(len(energy), ncols, flat)}, nil
}

//headerNames returns the fields after the one containing ENERGY.
func headerNames(l string) []string {
	f := strings.Fields(l)
	for i, v := range f {
		if con(v, "ENERGY") {
			return append([]string{}, f[i+1:]...)
		}
	}
	return nil
}

//ReadDOSFiles reads the DOS files names and puts all their columns side by side,
//in the given order. All files must share the same energy mesh, or an error wrapping
//ErrMismatch is returned.
func ReadDOSFiles(names ...string) (*DensityOfStates, error) {
	if len(names) == 0 {
		return nil, NewError(ErrMissingInput, "", "ReadDOSFiles", "no DOS files given")
	}
	var ret *DensityOfStates
	for _, name := range names {
		D, err := readFile(name, "ReadDOSFiles", ReadDOS)
		if err != nil {
			return nil, err
		}
		if ret == nil {
			ret = D
			continue
		}
		if len(D.Energy) != len(ret.Energy) || !floats.EqualApprox(D.Energy, ret.Energy, 1e-6) {
			return nil, NewError(ErrMismatch, name, "ReadDOSFiles", "energy mesh differs from the one in %s", names[0])
		}
		joined := mat.NewDense(len(ret.Energy), ret.Len()+D.Len(), nil)
		joined.Augment(ret.Data, D.Data)
		ret.Data = joined
		ret.Names = append(ret.Names, D.Names...)
	}
	return ret, nil
}

//FindDOS returns the DOS files (case.dosXev, case.dosXevup...) in dir.
func FindDOS(dir string) ([]string, error) {
	return FindAll(dir, "*.dos*ev*")
}

//Sum returns a new DensityOfStates with one column per group, containing the mean of
//the columns in the group. Column indexes are 0-based. The names of the new columns
//are the names of the group members joined by "+".
func (D *DensityOfStates) Sum(groups [][]int) (*DensityOfStates, error) {
	if len(groups) == 0 {
		return nil, NewError(ErrMissingInput, "", "DensityOfStates.Sum", "no groups given")
	}
	ne := len(D.Energy)
	ret := &DensityOfStates{
		Energy: append([]float64{}, D.Energy...),
		Names:  make([]string, len(groups)),
		Data:   mat.NewDense(ne, len(groups), nil),
	}
	row := make([]float64, 0, D.Len())
	for g, group := range groups {
		if len(group) == 0 {
			return nil, NewError(ErrShape, "", "DensityOfStates.Sum", "group %d is empty", g+1)
		}
		names := make([]string, len(group))
		for i, c := range group {
			if c < 0 || c >= D.Len() {
				return nil, NewError(ErrShape, "", "DensityOfStates.Sum", "group %d: column %d out of range [0,%d)", g+1, c, D.Len())
			}
			names[i] = D.Names[c]
		}
		ret.Names[g] = strings.Join(names, "+")
		for e := 0; e < ne; e++ {
			row = row[:0]
			for _, c := range group {
				row = append(row, D.Data.At(e, c))
			}
			ret.Data.Set(e, g, stat.Mean(row, nil))
		}
	}
	return ret, nil
}

//Smooth convolutes, in place, every column with a normalized Gaussian of the given
//full width at half maximum, in the units of the energy mesh. The energy mesh is not
//changed.
func (D *DensityOfStates) Smooth(fwhm float64) error {
	if fwhm <= 0 || math.IsNaN(fwhm) {
		return NewError(ErrShape, "", "DensityOfStates.Smooth", "the FWHM must be positive, got %g", fwhm)
	}
	sigma := fwhm / fwhmPerSigma
	ne := len(D.Energy)
	kernel := make([]float64, ne)
	smooth := mat.NewDense(ne, D.Len(), nil)
	col := make([]float64, ne)
	for c := 0; c < D.Len(); c++ {
		mat.Col(col, c, D.Data)
		for i, e := range D.Energy {
			for j, ej := range D.Energy {
				d := ej - e
				kernel[j] = math.Exp(-d * d / (2 * sigma * sigma))
			}
			//kernel[i] is 1, so the sum is never 0.
			smooth.Set(i, c, floats.Dot(col, kernel)/floats.Sum(kernel))
		}
	}
	D.Data.Copy(smooth)
	return nil
}
