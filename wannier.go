/*
 * wannier.go, part of spaghetti.
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
	"strings"
)

//ReadWannier reads a Wannier90 case_band.dat file: rows with a k-axis value and an
//energy, with bands separated by blank lines. The k values are scaled by
//Bohr2Angstrom so they share units with the WIEN2k k-axis. The result has the same
//invariants as the one from ReadBands.
func ReadWannier(r io.Reader) (*BandSet, error) {
	var b blocks
	err := eachLine(r, func(n int, l string) error {
		f := strings.Fields(l)
		if len(f) == 0 {
			b.flush()
			return nil
		}
		if len(f) < 2 {
			return NewError(ErrShape, "", "ReadWannier", "line %d: a k value and an energy expected", n+1)
		}
		v, err := parseFloats(f[:2])
		if err != nil {
			return NewError(ErrShape, "", "ReadWannier", "line %d: %s", n+1, err)
		}
		b.add(v[0]*Bohr2Angstrom, v[1])
		return nil
	})
	if err != nil {
		return nil, Decorate(err, "ReadWannier", "")
	}
	b.flush()
	B, err := NewBandSet(b.k, b.e)
	if err != nil {
		return nil, Decorate(err, "ReadWannier", "")
	}
	return B, nil
}

//ReadWannierFile reads the Wannier90 band file name. See ReadWannier.
func ReadWannierFile(name string) (*BandSet, error) {
	return readFile(name, "ReadWannierFile", ReadWannier)
}

