/*
 * bands.go, part of spaghetti.
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

//BandSet holds a band structure: a k-axis (the projected distance along
//the path through reciprocal space) and the energies of each band at each
//point of that axis.
type BandSet struct {
	K        []float64  //unique, ascending.
	Energies *mat.Dense //one row per band, one column per element of K.
	Spin     Spin
}

//Len returns the number of bands.
func (B *BandSet) Len() int {
	r, _ := B.Energies.Dims()
	return r
}

//Band returns a copy of the energies of band i. It puts them in dst if it is
//given and has the right length.
func (B *BandSet) Band(i int, dst ...[]float64) []float64 {
	var d []float64
	if len(dst) > 0 && len(dst[0]) == len(B.K) {
		d = dst[0]
	}
	return mat.Row(d, i, B.Energies)
}

//Range returns the lowest and highest energy in the set.
func (B *BandSet) Range() (min, max float64) {
	return mat.Min(B.Energies), mat.Max(B.Energies)
}

//ReadBands reads a WIEN2k eigenvalue file (case.spaghetti_ene and its spin-polarized
//variants). Data rows are grouped in blocks, one per band, separated by lines containing
//"bandindex". The k-axis value is the fourth field of each row and the energy the fifth.
//Files where some rows have glued fields are read by looking at the number of fields
//in each row instead, as long as each row has 4 or 5 of them.
func ReadBands(r io.Reader) (*BandSet, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	ks, es, err := bandsFixed(lines)
	if err != nil {
		var err2 error
		ks, es, err2 = bandsSniffed(lines)
		if err2 != nil {
			return nil, Decorate(err2, "ReadBands", "")
		}
	}
	B, err := NewBandSet(ks, es)
	if err != nil {
		return nil, Decorate(err, "ReadBands", "")
	}
	return B, nil
}

//ReadBandsFile reads the eigenvalue file name. See ReadBands.
func ReadBandsFile(name string) (*BandSet, error) {
	return readFile(name, "ReadBandsFile", ReadBands)
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	err := eachLine(r, func(_ int, l string) error {
		lines = append(lines, l)
		return nil
	})
	return lines, err
}

//blocks accumulates the k and energy values of consecutive bands.
type blocks struct {
	k, e   [][]float64
	ck, ce []float64
}

func (b *blocks) add(k, e float64) {
	b.ck = append(b.ck, k)
	b.ce = append(b.ce, e)
}

func (b *blocks) flush() {
	if len(b.ck) == 0 {
		return
	}
	b.k = append(b.k, b.ck)
	b.e = append(b.e, b.ce)
	b.ck = nil
	b.ce = nil
}

//bandsFixed reads the k value and energy from the fourth and fifth fields.
func bandsFixed(lines []string) ([][]float64, [][]float64, error) {
	var b blocks
	for i, l := range lines {
		if con(l, "bandindex") {
			b.flush()
			continue
		}
		f := strings.Fields(l)
		if len(f) == 0 {
			continue
		}
		if len(f) < 5 {
			return nil, nil, NewError(ErrShape, "", "bandsFixed", "line %d: %d fields, at least 5 expected", i+1, len(f))
		}
		v, err := parseFloats(f[3:5])
		if err != nil {
			return nil, nil, NewError(ErrShape, "", "bandsFixed", "line %d: %s", i+1, err)
		}
		b.add(v[0], v[1])
	}
	b.flush()
	return b.k, b.e, nil
}

//bandsSniffed reads rows of 5 fields as (..., k, E) and rows of 4 fields as
//either (..., k, E) with two of the leading coordinates glued together, or
//(..., kE) with the k value and a negative energy glued together.
func bandsSniffed(lines []string) ([][]float64, [][]float64, error) {
	var b blocks
	for i, l := range lines {
		if con(l, "bandindex") {
			b.flush()
			continue
		}
		f := strings.Fields(l)
		var ks, es string
		switch len(f) {
		case 0:
			continue
		case 5:
			ks, es = f[3], f[4]
		case 4:
			if a, c, ok := splitGlued(f[3]); ok {
				ks, es = a, c
			} else {
				ks, es = f[2], f[3]
			}
		default:
			return nil, nil, NewError(ErrShape, "", "bandsSniffed", "line %d: %d fields, 4 or 5 expected", i+1, len(f))
		}
		k, err := strconv.ParseFloat(ks, 64)
		if err != nil {
			return nil, nil, NewError(ErrShape, "", "bandsSniffed", "line %d: k value: %s", i+1, err)
		}
		e, err := strconv.ParseFloat(es, 64)
		if err != nil {
			return nil, nil, NewError(ErrShape, "", "bandsSniffed", "line %d: energy: %s", i+1, err)
		}
		b.add(k, e)
	}
	b.flush()
	return b.k, b.e, nil
}

//splitGlued splits a token like "1.23456-10.12345" in two numbers. The split is done
//at the last minus sign that is neither the first character nor part of an exponent.
func splitGlued(tok string) (string, string, bool) {
	for i := len(tok) - 1; i > 0; i-- {
		if tok[i] != '-' {
			continue
		}
		if p := tok[i-1]; p == 'e' || p == 'E' || p == 'd' || p == 'D' {
			continue
		}
		return tok[:i], tok[i:], true
	}
	return "", "", false
}

//NewBandSet builds a BandSet from per-band blocks of k values and energies.
//The k-axis is the set of unique k values. The total number of energies must be a
//multiple of its length, and, when the file had more than one block, each block must
//have exactly one energy per k-point.
func NewBandSet(ks, es [][]float64) (*BandSet, error) {
	if len(ks) != len(es) {
		return nil, NewError(ErrMismatch, "", "NewBandSet", "%d blocks of k values but %d of energies", len(ks), len(es))
	}
	var allk, alle []float64
	for i := range ks {
		if len(ks[i]) != len(es[i]) {
			return nil, NewError(ErrMismatch, "", "NewBandSet", "block %d has %d k values but %d energies", i+1, len(ks[i]), len(es[i]))
		}
		allk = append(allk, ks[i]...)
		alle = append(alle, es[i]...)
	}
	if len(alle) == 0 {
		return nil, NewError(ErrShape, "", "NewBandSet", "no eigenvalues found")
	}
	kaxis := uniqueSorted(allk, kTolerance)
	nk := len(kaxis)
	if len(alle)%nk != 0 {
		return nil, NewError(ErrShape, "", "NewBandSet", "%d energies can't be split in bands of %d k-points", len(alle), nk)
	}
	if len(ks) > 1 {
		for i, v := range ks {
			if len(v) != nk {
				return nil, NewError(ErrShape, "", "NewBandSet", "band %d has %d k-points, %d expected", i+1, len(v), nk)
			}
		}
	}
	return &BandSet{K: kaxis, Energies: mat.NewDense(len(alle)/nk, nk, alle)}, nil
}
