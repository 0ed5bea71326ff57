/*
 * struct.go, part of spaghetti.
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
	"unicode"

	"gonum.org/v1/gonum/mat"
)

//SymOp is a symmetry operation of the space group: a rotation, in the
//basis of the lattice vectors, followed by a fractional translation.
type SymOp struct {
	Rot   [3][3]int
	Trans [3]float64
}

//Structure contains the information from a case.struct file needed to
//label and weight the orbital character of the bands.
type Structure struct {
	Title      string
	Centering  string //lattice type: P, F, B, H, R, CXY...
	Nat        int    //number of inequivalent atoms.
	SpaceGroup int
	//a, b, c in bohr, and alpha, beta, gamma in degrees.
	Params   [6]float64
	Species  []string
	Mults    []int
	Symmetry []SymOp //nil if the file has no symmetry operations.
}

//Atom returns the species and multiplicity of the ith inequivalent atom.
//i is 1-based, as in WIEN2k files.
func (S *Structure) Atom(i int) (string, int, error) {
	if i < 1 || i > len(S.Species) {
		return "", 0, NewError(ErrShape, "", "Structure.Atom", "atom %d out of range [1,%d]", i, len(S.Species))
	}
	return S.Species[i-1], S.Mults[i-1], nil
}

//Lattice returns the real-space lattice vectors, in bohr, as the rows of a 3x3 matrix.
//The first vector lies along x and the second in the xy plane.
func (S *Structure) Lattice() *mat.Dense {
	a, b, c := S.Params[0], S.Params[1], S.Params[2]
	deg := math.Pi / 180
	ca, cb, cg := math.Cos(S.Params[3]*deg), math.Cos(S.Params[4]*deg), math.Cos(S.Params[5]*deg)
	sg := math.Sin(S.Params[5] * deg)
	cy := (ca - cb*cg) / sg
	cz := math.Sqrt(1 - cb*cb - cy*cy)
	return mat.NewDense(3, 3, []float64{
		a, 0, 0,
		b * cg, b * sg, 0,
		c * cb, c * cy, c * cz,
	})
}

//ReadStructure reads a WIEN2k case.struct file. The number of MULT records and
//the number of NPT records must both equal the number of atoms declared in the
//header, or an error wrapping ErrMismatch is returned.
func ReadStructure(r io.Reader) (*Structure, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	if len(lines) < 4 {
		return nil, NewError(ErrShape, "", "ReadStructure", "%d lines, the header alone has 4", len(lines))
	}
	S := &Structure{Title: strings.TrimSpace(lines[0])}
	if err := S.readHeader(lines[1]); err != nil {
		return nil, Decorate(err, "ReadStructure", "")
	}
	if S.Params, err = latticeParams(lines[3]); err != nil {
		return nil, Decorate(err, "ReadStructure", "")
	}
	symline := -1
	for i, l := range lines {
		switch {
		case con(l, "MULT"):
			f := strings.SplitN(l, "=", 2)
			var m []string
			if len(f) == 2 {
				m = strings.Fields(f[1])
			}
			if len(m) == 0 {
				return nil, NewError(ErrShape, "", "ReadStructure", "line %d: no multiplicity", i+1)
			}
			mult, err := strconv.Atoi(m[0])
			if err != nil {
				return nil, NewError(ErrShape, "", "ReadStructure", "line %d: multiplicity: %s", i+1, err)
			}
			S.Mults = append(S.Mults, mult)
		case con(l, "NPT"):
			S.Species = append(S.Species, strings.Fields(l)[0])
		case con(l, "NUMBER OF SYMMETRY OPERATIONS"):
			symline = i
		}
		if symline >= 0 {
			break
		}
	}
	if len(S.Mults) != S.Nat || len(S.Species) != S.Nat {
		return nil, NewError(ErrMismatch, "", "ReadStructure", "%d atoms declared, but %d MULT and %d NPT records found", S.Nat, len(S.Mults), len(S.Species))
	}
	if symline >= 0 {
		if S.Symmetry, err = readSymOps(lines[symline:]); err != nil {
			return nil, Decorate(err, "ReadStructure", "")
		}
	}
	return S, nil
}

//ReadStructureFile reads the struct file name. See ReadStructure.
func ReadStructureFile(name string) (*Structure, error) {
	return readFile(name, "ReadStructureFile", ReadStructure)
}

//readHeader gets the lattice type, the number of atoms and the space group from
//the second line of the file. Depending on the WIEN2k version, the atom count
//is the third or the second field.
func (S *Structure) readHeader(l string) error {
	f := strings.Fields(l)
	if len(f) > 0 {
		S.Centering = f[0]
	}
	for _, i := range []int{2, 1} {
		if len(f) < i+2 {
			continue
		}
		nat, err := strconv.Atoi(f[i])
		if err != nil {
			continue
		}
		spg, err := leadingInt(f[i+1])
		if err != nil {
			continue
		}
		S.Nat, S.SpaceGroup = nat, spg
		return nil
	}
	return NewError(ErrShape, "", "readHeader", "can't find the atom count and space group in %q", l)
}

//leadingInt parses the integer at the beginning of s, as in "225_Fm-3m".
func leadingInt(s string) (int, error) {
	end := strings.IndexFunc(s, func(r rune) bool { return !unicode.IsDigit(r) })
	if end >= 0 {
		s = s[:end]
	}
	return strconv.Atoi(s)
}

//latticeParams reads the 6 lattice parameters, written in fields 10 characters wide.
//Lines that don't follow that layout are split on spaces.
func latticeParams(l string) ([6]float64, error) {
	var p [6]float64
	fixed := len(strings.TrimRight(l, " ")) >= 60
	for i := 0; fixed && i < 6; i++ {
		v, err := parseFortranFloat(strings.TrimSpace(l[i*10 : (i+1)*10]))
		if err != nil {
			fixed = false
			break
		}
		p[i] = v
	}
	if fixed {
		return p, nil
	}
	f := strings.Fields(l)
	if len(f) < 6 {
		return p, NewError(ErrShape, "", "latticeParams", "6 lattice parameters expected in %q", l)
	}
	for i := range p {
		v, err := parseFortranFloat(f[i])
		if err != nil {
			return p, NewError(ErrShape, "", "latticeParams", "lattice parameter %d: %s", i+1, err)
		}
		p[i] = v
	}
	return p, nil
}

//readSymOps reads the symmetry operations. lines[0] is the line with the
//number of operations. Each operation takes 3 lines with 3 integers 2
//characters wide and a translation, followed by a line with its index.
func readSymOps(lines []string) ([]SymOp, error) {
	f := strings.Fields(lines[0])
	nops, err := strconv.Atoi(f[0])
	if err != nil {
		return nil, NewError(ErrShape, "", "readSymOps", "number of symmetry operations: %s", err)
	}
	ops := make([]SymOp, 0, nops)
	rest := lines[1:]
	for len(rest) >= 3 && len(ops) < nops {
		var op SymOp
		for row := 0; row < 3; row++ {
			l := rest[row]
			if len(l) < 7 {
				return nil, NewError(ErrShape, "", "readSymOps", "operation %d, row %d too short: %q", len(ops)+1, row+1, l)
			}
			for col := 0; col < 3; col++ {
				v, err := strconv.Atoi(strings.TrimSpace(l[2*col : 2*col+2]))
				if err != nil {
					return nil, NewError(ErrShape, "", "readSymOps", "operation %d, row %d: %s", len(ops)+1, row+1, err)
				}
				op.Rot[row][col] = v
			}
			t, err := parseFortranFloat(strings.TrimSpace(l[6:]))
			if err != nil {
				return nil, NewError(ErrShape, "", "readSymOps", "operation %d, row %d: translation: %s", len(ops)+1, row+1, err)
			}
			op.Trans[row] = t
		}
		ops = append(ops, op)
		rest = rest[min(4, len(rest)):]
	}
	if len(ops) != nops {
		return nil, NewError(ErrMismatch, "", "readSymOps", "%d symmetry operations declared, %d found", nops, len(ops))
	}
	return ops, nil
}
