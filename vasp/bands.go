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

package vasp

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/rmera/spaghetti"
)

//ReadBands reads a band.dat file, as written by VASP post-processing tools: rows
//with a k-axis value and an energy, one band after the other. Any line whose first two
//fields are not numbers (blank lines, band headers, comments) ends the current band.
//The result has the same invariants as spaghetti.ReadBands.
func ReadBands(r io.Reader) (*spaghetti.BandSet, error) {
	var ks, es [][]float64
	var ck, ce []float64
	flush := func() {
		if len(ck) > 0 {
			ks = append(ks, ck)
			es = append(es, ce)
			ck, ce = nil, nil
		}
	}
	in := bufio.NewReader(r)
	for {
		line, err := in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		if k, e, ok := kE(line); ok {
			ck = append(ck, k)
			ce = append(ce, e)
		} else {
			flush()
		}
		if err != nil {
			break
		}
	}
	flush()
	B, err := spaghetti.NewBandSet(ks, es)
	if err != nil {
		return nil, spaghetti.Decorate(err, "vasp.ReadBands", "")
	}
	return B, nil
}

func kE(line string) (float64, float64, bool) {
	f := strings.Fields(line)
	if len(f) < 2 {
		return 0, 0, false
	}
	k, err := strconv.ParseFloat(f[0], 64)
	if err != nil {
		return 0, 0, false
	}
	e, err := strconv.ParseFloat(f[1], 64)
	if err != nil {
		return 0, 0, false
	}
	return k, e, true
}

//ReadBandsFile reads the band file name, which can be compressed.
func ReadBandsFile(name string) (*spaghetti.BandSet, error) {
	f, err := spaghetti.Open(name)
	if err != nil {
		return nil, spaghetti.Decorate(err, "vasp.ReadBandsFile", name)
	}
	defer f.Close()
	B, err := ReadBands(f)
	if err != nil {
		return nil, spaghetti.Decorate(err, "vasp.ReadBandsFile", name)
	}
	return B, nil
}
