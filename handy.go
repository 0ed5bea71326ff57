/*
 * handy.go, part of spaghetti.
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
	"bufio"
	"errors"
	"io"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats/scalar"
)

//con is a shorthand for strings.Contains
func con(s, substr string) bool { return strings.Contains(s, substr) }

//eachLine calls fn for each line in r, without the line terminator.
//n is the 0-based line number. Iteration stops at the first error
//returned by fn, or when fn returns errStop.
func eachLine(r io.Reader, fn func(n int, line string) error) error {
	inp := bufio.NewReader(r)
	var l string
	var err error
	for n := 0; ; n++ {
		l, err = inp.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if l == "" && err != nil {
			return nil
		}
		if ferr := fn(n, strings.TrimRight(l, "\r\n")); ferr != nil {
			if errors.Is(ferr, errStop) {
				return nil
			}
			return ferr
		}
		if err != nil {
			return nil
		}
	}
}

//errStop ends eachLine without an error.
var errStop = errors.New("stop")

//parseFloats parses all the fields as floats.
func parseFloats(fields []string) ([]float64, error) {
	ret := make([]float64, len(fields))
	var err error
	for i, v := range fields {
		ret[i], err = strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, err
		}
	}
	return ret, nil
}

//Fortran-written files sometimes use D as the exponent marker.
func parseFortranFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.NewReplacer("D", "E", "d", "e").Replace(s), 64)
}

//uniqueSorted returns the distinct values of v in ascending order. Values closer
//than tol are considered the same, and the first one found is kept.
func uniqueSorted(v []float64, tol float64) []float64 {
	if len(v) == 0 {
		return nil
	}
	s := append([]float64(nil), v...)
	sort.Float64s(s)
	ret := s[:1]
	for _, x := range s[1:] {
		if !scalar.EqualWithinAbs(x, ret[len(ret)-1], tol) {
			ret = append(ret, x)
		}
	}
	return ret
}

//kTolerance is the tolerance used to decide whether two k-axis values
//are the same point. Eigenvalue files print them with 5 decimals.
const kTolerance = 1e-9
