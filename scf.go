/*
 * scf.go, part of spaghetti.
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
)

//ReadFermi returns the Fermi energy, in Rydberg, from a WIEN2k SCF log. The
//value is the last field of the last line containing ":FER".
func ReadFermi(r io.Reader) (float64, error) {
	var last string
	err := eachLine(r, func(_ int, l string) error {
		if con(l, ":FER") {
			last = l
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	if last == "" {
		return 0, NewError(ErrShape, "", "ReadFermi", "no :FER line")
	}
	f := strings.Fields(last)
	eF, err := strconv.ParseFloat(f[len(f)-1], 64)
	if err != nil {
		return 0, NewError(ErrShape, "", "ReadFermi", "bad Fermi energy %q: %s", f[len(f)-1], err)
	}
	return eF, nil
}

//ReadFermiFile reads the Fermi energy from the SCF file name. See ReadFermi.
func ReadFermiFile(name string) (float64, error) {
	return readFile(name, "ReadFermiFile", ReadFermi)
}

//FermiFrom obtains the Fermi energy, in Rydberg, from value, which can be the
//energy itself or the name of an SCF file. If value is empty, the SCF file is
//searched for in dir.
func FermiFrom(value, dir string) (float64, error) {
	if value == "" {
		name, err := Find(dir, ExtSCF)
		if err != nil {
			return 0, NewError(ErrMissingInput, "", "FermiFrom", "the Fermi energy was not given and no SCF file was found in %s", dir)
		}
		return ReadFermiFile(name)
	}
	if eF, err := strconv.ParseFloat(value, 64); err == nil {
		return eF, nil
	}
	return ReadFermiFile(value)
}
