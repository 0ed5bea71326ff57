/*
 * procar.go, part of spaghetti.
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
	"gonum.org/v1/gonum/mat"
)

//ProcarHeader contains the dimensions of a PROCAR file and the names
//of its projection columns.
type ProcarHeader struct {
	KPoints int
	Bands   int
	Ions    int
	//The projection columns of the ion tables, s, py, pz... The
	//last one is usually tot.
	Orbitals []string
}

//ReadProcarHeader reads the dimensions line of a PROCAR file and the
//column names from the first ion table.
func ReadProcarHeader(r io.Reader) (*ProcarHeader, error) {
	in := bufio.NewReader(r)
	var H *ProcarHeader
	for n := 1; ; n++ {
		line, err := in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		f := strings.Fields(line)
		switch {
		case H == nil && strings.Contains(line, "# of k-points"):
			var derr error
			if H, derr = parseDims(f); derr != nil {
				return nil, spaghetti.Decorate(derr, "vasp.ReadProcarHeader", "")
			}
		case H != nil && len(f) > 1 && f[0] == "ion":
			H.Orbitals = append([]string{}, f[1:]...)
			return H, nil
		}
		if err != nil {
			break
		}
	}
	if H == nil {
		return nil, spaghetti.NewError(spaghetti.ErrShape, "", "vasp.ReadProcarHeader", "no dimensions line")
	}
	return nil, spaghetti.NewError(spaghetti.ErrShape, "", "vasp.ReadProcarHeader", "no ion table")
}

//parseDims reads a line like
//  # of k-points:  280         # of bands:  240         # of ions:  12
//taking each number from the field after its label.
func parseDims(f []string) (*ProcarHeader, error) {
	H := new(ProcarHeader)
	targets := map[string]*int{"k-points:": &H.KPoints, "bands:": &H.Bands, "ions:": &H.Ions}
	found := 0
	for i, v := range f[:len(f)-1] {
		t, ok := targets[v]
		if !ok {
			continue
		}
		n, err := strconv.Atoi(f[i+1])
		if err != nil {
			return nil, spaghetti.NewError(spaghetti.ErrShape, "", "parseDims", "%s %s", v, err)
		}
		*t = n
		found++
	}
	if found != 3 || H.KPoints < 1 || H.Bands < 1 {
		return nil, spaghetti.NewError(spaghetti.ErrShape, "", "parseDims", "bad dimensions line %q", strings.Join(f, " "))
	}
	return H, nil
}

//ReadProcar reads the projection of every band at every k-point on one orbital of one
//ion from a PROCAR file. ion is 1-based, as in the file, and orbital is the 0-based
//index of the projection column (0 is s in the usual lm-decomposed layout). Only the
//first table after each band header is read, so in non-collinear files the result is
//the total projection. Values are multiplied by scale. The returned matrix has one row
//per band and one column per k-point, like the energies in a spaghetti.BandSet. An error
//wrapping spaghetti.ErrShape is returned if the number of values read doesn't match
//the dimensions in the header.
func ReadProcar(r io.Reader, ion, orbital int, scale float64) (*mat.Dense, error) {
	if ion < 1 || orbital < 0 {
		return nil, spaghetti.NewError(spaghetti.ErrShape, "", "vasp.ReadProcar", "bad ion (%d) or orbital (%d)", ion, orbital)
	}
	in := bufio.NewReader(r)
	var H *ProcarHeader
	var W *mat.Dense
	var filled []bool
	k, band := -1, -1
	intable, tabledone := false, false
	sion := strconv.Itoa(ion)
	count := 0
	for n := 1; ; n++ {
		line, err := in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		f := strings.Fields(line)
		if len(f) > 0 {
			switch {
			case H == nil:
				if strings.Contains(line, "# of k-points") {
					var derr error
					if H, derr = parseDims(f); derr != nil {
						return nil, spaghetti.Decorate(derr, "vasp.ReadProcar", "")
					}
					W = mat.NewDense(H.Bands, H.KPoints, nil)
					filled = make([]bool, H.Bands*H.KPoints)
				}
			case f[0] == "k-point":
				k++
				band = -1
				if k >= H.KPoints {
					return nil, spaghetti.NewError(spaghetti.ErrShape, "", "vasp.ReadProcar", "line %d: more than the %d k-points declared", n, H.KPoints)
				}
			case f[0] == "band":
				band++
				intable, tabledone = false, false
				if band >= H.Bands || k < 0 {
					return nil, spaghetti.NewError(spaghetti.ErrShape, "", "vasp.ReadProcar", "line %d: unexpected band header", n)
				}
			case f[0] == "ion" && band >= 0 && !tabledone:
				intable = true
			case f[0] == "tot" && intable:
				intable, tabledone = false, true
			case intable && f[0] == sion:
				if len(f) < orbital+2 {
					return nil, spaghetti.NewError(spaghetti.ErrShape, "", "vasp.ReadProcar", "line %d: no column for orbital %d", n, orbital)
				}
				v, err := strconv.ParseFloat(f[orbital+1], 64)
				if err != nil {
					return nil, spaghetti.NewError(spaghetti.ErrShape, "", "vasp.ReadProcar", "line %d: %s", n, err)
				}
				idx := band*H.KPoints + k
				if filled[idx] {
					return nil, spaghetti.NewError(spaghetti.ErrShape, "", "vasp.ReadProcar", "line %d: ion %d appears twice for band %d, k-point %d", n, ion, band+1, k+1)
				}
				filled[idx] = true
				W.Set(band, k, v*scale)
				count++
			}
		}
		if err != nil {
			break
		}
	}
	if H == nil {
		return nil, spaghetti.NewError(spaghetti.ErrShape, "", "vasp.ReadProcar", "no dimensions line")
	}
	if count != H.Bands*H.KPoints {
		return nil, spaghetti.NewError(spaghetti.ErrShape, "", "vasp.ReadProcar", "%d values for ion %d, %d bands x %d k-points expected", count, ion, H.Bands, H.KPoints)
	}
	return W, nil
}

//ReadProcarFile reads the projections from the PROCAR file name, which can be
//compressed. See ReadProcar.
func ReadProcarFile(name string, ion, orbital int, scale float64) (*mat.Dense, error) {
	f, err := spaghetti.Open(name)
	if err != nil {
		return nil, spaghetti.Decorate(err, "vasp.ReadProcarFile", name)
	}
	defer f.Close()
	W, err := ReadProcar(f, ion, orbital, scale)
	if err != nil {
		return nil, spaghetti.Decorate(err, "vasp.ReadProcarFile", name)
	}
	return W, nil
}

//ReadProcarHeaderFile reads the header of the PROCAR file name.
func ReadProcarHeaderFile(name string) (*ProcarHeader, error) {
	f, err := spaghetti.Open(name)
	if err != nil {
		return nil, spaghetti.Decorate(err, "vasp.ReadProcarHeaderFile", name)
	}
	defer f.Close()
	H, err := ReadProcarHeader(f)
	if err != nil {
		return nil, spaghetti.Decorate(err, "vasp.ReadProcarHeaderFile", name)
	}
	return H, nil
}
