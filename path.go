/*
 * path.go, part of spaghetti.
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

//HighSymmetryPath holds the positions along the k-axis of the high-symmetry
//points of a band structure calculation, and their labels.
type HighSymmetryPath struct {
	K      []float64 //non-decreasing
	Labels []string
}

//Len returns the number of high-symmetry points in the path.
func (P *HighSymmetryPath) Len() int {
	return len(P.K)
}

//NewPath builds a path from explicit positions and labels. Labels are passed
//through Label. It returns an error if the slices have different lengths or
//the positions decrease at some point.
func NewPath(positions []float64, labels []string) (*HighSymmetryPath, error) {
	if len(positions) != len(labels) {
		return nil, NewError(ErrMismatch, "", "NewPath", "%d positions but %d labels", len(positions), len(labels))
	}
	P := &HighSymmetryPath{K: make([]float64, len(positions)), Labels: make([]string, len(labels))}
	for i, v := range positions {
		if i > 0 && v < positions[i-1] {
			return nil, NewError(ErrShape, "", "NewPath", "position %d (%g) is lower than the previous one (%g)", i+1, v, positions[i-1])
		}
		P.K[i] = v
		P.Labels[i] = Label(labels[i])
	}
	return P, nil
}

//ReadKlistBand reads the high-symmetry points from a case.klist_band file. Each line
//before the one starting with END is a k-point, and those with something in the first
//10 columns are high-symmetry points. kaxis is the k-axis of the band structure
//computed from that list. The ith line is the ith element of kaxis.
func ReadKlistBand(r io.Reader, kaxis []float64) (*HighSymmetryPath, error) {
	P := new(HighSymmetryPath)
	err := eachLine(r, func(n int, l string) error {
		if strings.HasPrefix(l, "END") {
			return errStop
		}
		head := l
		if len(head) > 10 {
			head = head[:10]
		}
		if strings.TrimSpace(head) == "" {
			return nil
		}
		if n >= len(kaxis) {
			return NewError(ErrMismatch, "", "ReadKlistBand", "line %d is a high-symmetry point, but the k-axis has only %d points", n+1, len(kaxis))
		}
		P.K = append(P.K, kaxis[n])
		P.Labels = append(P.Labels, Label(strings.Fields(l)[0]))
		return nil
	})
	if err != nil {
		return nil, Decorate(err, "ReadKlistBand", "")
	}
	return P, nil
}

//ReadAgrPath reads the high-symmetry points from the xmgrace file that WIEN2k's
//spaghetti program writes. Each major tick on the x axis is a point. The
//position follows the comma in the tick line, and the label is the quoted text
//in the next line. Ticks with empty labels are skipped.
func ReadAgrPath(r io.Reader) (*HighSymmetryPath, error) {
	P := new(HighSymmetryPath)
	var k float64
	pending := false
	err := eachLine(r, func(n int, l string) error {
		if pending {
			pending = false
			f := strings.Split(l, `"`)
			if len(f) < 2 {
				return NewError(ErrShape, "", "ReadAgrPath", "line %d: no quoted tick label", n+1)
			}
			if lab := strings.TrimSpace(f[1]); lab != "" {
				P.K = append(P.K, k)
				P.Labels = append(P.Labels, Label(lab))
			}
			return nil
		}
		if !con(l, "xaxis") || !con(l, "tick major") || con(l, "grid") {
			return nil
		}
		f := strings.Split(l, ",")
		if len(f) < 2 {
			return nil //the major tick spacing, not a tick.
		}
		var err error
		k, err = strconv.ParseFloat(strings.TrimSpace(f[1]), 64)
		if err != nil {
			return NewError(ErrShape, "", "ReadAgrPath", "line %d: tick position: %s", n+1, err)
		}
		pending = true
		return nil
	})
	if err != nil {
		return nil, Decorate(err, "ReadAgrPath", "")
	}
	return P, nil
}

//ReadPath reads the high-symmetry points from name, either an xmgrace file or
//a klist_band file, chosen by the extension. kaxis is only used for the latter.
func ReadPath(name string, kaxis []float64) (*HighSymmetryPath, error) {
	if isAgr(name) {
		return readFile(name, "ReadPath", ReadAgrPath)
	}
	return readFile(name, "ReadPath", func(r io.Reader) (*HighSymmetryPath, error) {
		return ReadKlistBand(r, kaxis)
	})
}

func isAgr(name string) bool {
	for _, c := range compressed {
		name = strings.TrimSuffix(name, c)
	}
	return strings.HasSuffix(name, ExtAgr)
}
