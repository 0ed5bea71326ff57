/*
 * qtl.go, part of spaghetti.
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

//CharacterQuery selects the atom and orbital whose character is read from a
//case.qtl file, and how energies and weights are transformed.
type CharacterQuery struct {
	Atom    int     //1-based index of the atom in case.struct.
	Orbital int     //1-based index of the orbital in the JATOM header of the atom.
	Scale   float64 //weight multiplier.
	Mult    float64 //multiplicity of the atom.
	Fermi   float64 //Fermi energy, in Rydberg.
	Shift   float64 //extra shift of the energies, in eV.
}

//OrbitalCharacter is the projection of the bands on one orbital of one atom.
//Energies, in eV relative to the Fermi energy, and weights are arranged like
//the energies of a BandSet: one row per band, one column per k-point.
type OrbitalCharacter struct {
	Query    CharacterQuery
	K        []float64
	Energies *mat.Dense
	Weights  *mat.Dense
}

//Len returns the number of bands.
func (O *OrbitalCharacter) Len() int {
	r, _ := O.Energies.Dims()
	return r
}

//Band returns the energies and weights of band i.
func (O *OrbitalCharacter) Band(i int) (energies, weights []float64) {
	return mat.Row(nil, i, O.Energies), mat.Row(nil, i, O.Weights)
}

//ReadCharacter reads the character of one orbital of one atom from a case.qtl file.
//kaxis is the k-axis of the band structure. Each BAND section of the file must contain
//exactly one row for the atom per element of kaxis, otherwise an error wrapping
//ErrMismatch is returned. The energy of each row is converted to eV relative to the
//Fermi energy, minus q.Shift, and the weight is q.Scale*q.Mult times the overlap.
func ReadCharacter(r io.Reader, q CharacterQuery, kaxis []float64) (*OrbitalCharacter, error) {
	c, err := ReadCharacters(r, []CharacterQuery{q}, kaxis)
	if err != nil {
		return nil, Decorate(err, "ReadCharacter", "")
	}
	return c[0], nil
}

//ReadCharacters is like ReadCharacter, but reads several atom/orbital pairs
//in a single pass over the file. The results follow the order of qs.
func ReadCharacters(r io.Reader, qs []CharacterQuery, kaxis []float64) ([]*OrbitalCharacter, error) {
	if len(qs) == 0 {
		return nil, NewError(ErrMissingInput, "", "ReadCharacters", "no atom/orbital pairs requested")
	}
	for _, q := range qs {
		if q.Atom < 1 || q.Orbital < 1 {
			return nil, NewError(ErrShape, "", "ReadCharacters", "atom and orbital indexes start at 1, got %d and %d", q.Atom, q.Orbital)
		}
	}
	nk := len(kaxis)
	if nk == 0 {
		return nil, NewError(ErrMissingInput, "", "ReadCharacters", "empty k-axis")
	}
	es := make([][]float64, len(qs)) //the whole file, flat.
	ws := make([][]float64, len(qs))
	segE := make([]int, len(qs)) //rows in the current BAND section.
	band := 0
	flush := func(n int) error {
		for i, q := range qs {
			if segE[i] != nk {
				return NewError(ErrMismatch, "", "ReadCharacters", "BAND section %d (ending at line %d) has %d rows for atom %d, but there are %d k-points", band, n, segE[i], q.Atom, nk)
			}
			segE[i] = 0
		}
		return nil
	}
	err := eachLine(r, func(n int, l string) error {
		if con(l, "BAND") {
			if band > 0 {
				if err := flush(n); err != nil {
					return err
				}
			}
			band++
			return nil
		}
		f := strings.Fields(l)
		if band == 0 || len(f) == 0 {
			return nil
		}
		if len(f) < 2 {
			return NewError(ErrShape, "", "ReadCharacters", "line %d: %d fields, at least 2 expected", n+1, len(f))
		}
		atom, err := strconv.Atoi(f[1])
		if err != nil {
			return NewError(ErrShape, "", "ReadCharacters", "line %d: atom index: %s", n+1, err)
		}
		var e float64
		parsed := false
		for i, q := range qs {
			if q.Atom != atom {
				continue
			}
			if len(f) < q.Orbital+2 {
				return NewError(ErrShape, "", "ReadCharacters", "line %d: no column for orbital %d of atom %d", n+1, q.Orbital, atom)
			}
			if !parsed {
				if e, err = strconv.ParseFloat(f[0], 64); err != nil {
					return NewError(ErrShape, "", "ReadCharacters", "line %d: energy: %s", n+1, err)
				}
				parsed = true
			}
			ov, err := strconv.ParseFloat(f[q.Orbital+1], 64)
			if err != nil {
				return NewError(ErrShape, "", "ReadCharacters", "line %d: overlap: %s", n+1, err)
			}
			es[i] = append(es[i], (e-q.Fermi)*Ry2eV-q.Shift)
			ws[i] = append(ws[i], q.Scale*q.Mult*ov)
			segE[i]++
		}
		return nil
	})
	if err == nil && band == 0 {
		err = NewError(ErrShape, "", "ReadCharacters", "no BAND sections")
	}
	if err == nil {
		err = flush(-1)
	}
	if err != nil {
		return nil, Decorate(err, "ReadCharacters", "")
	}
	ret := make([]*OrbitalCharacter, len(qs))
	for i, q := range qs {
		ret[i] = &OrbitalCharacter{
			Query:    q,
			K:        kaxis,
			Energies: mat.NewDense(band, nk, es[i]),
			Weights:  mat.NewDense(band, nk, ws[i]),
		}
	}
	return ret, nil
}

//QtlOrbitals holds the orbital names of each atom, as given in the JATOM
//lines of a case.qtl file.
type QtlOrbitals [][]string

//Name returns the legend name of the given orbital of the given atom.
//Both indexes are 1-based.
func (Q QtlOrbitals) Name(atom, orbital int) (string, error) {
	if atom < 1 || atom > len(Q) {
		return "", NewError(ErrShape, "", "QtlOrbitals.Name", "atom %d out of range [1,%d]", atom, len(Q))
	}
	o := Q[atom-1]
	if orbital < 1 || orbital > len(o) {
		return "", NewError(ErrShape, "", "QtlOrbitals.Name", "orbital %d out of range [1,%d] for atom %d", orbital, len(o), atom)
	}
	return OrbitalLabel(o[orbital-1]), nil
}

//ReadQtlOrbitals reads the orbital names of each atom from the JATOM lines of
//a case.qtl file. They are the last field of each line, separated by commas.
func ReadQtlOrbitals(r io.Reader) (QtlOrbitals, error) {
	var ret QtlOrbitals
	err := eachLine(r, func(_ int, l string) error {
		if con(l, "BAND") {
			return errStop
		}
		if !con(l, "JATOM") {
			return nil
		}
		f := strings.Fields(l)
		ret = append(ret, strings.Split(f[len(f)-1], ","))
		return nil
	})
	if err != nil {
		return nil, Decorate(err, "ReadQtlOrbitals", "")
	}
	if len(ret) == 0 {
		return nil, NewError(ErrShape, "", "ReadQtlOrbitals", "no JATOM lines")
	}
	return ret, nil
}

//ReadQtlOrbitalsFile reads the orbital names from the qtl file name.
func ReadQtlOrbitalsFile(name string) (QtlOrbitals, error) {
	return readFile(name, "ReadQtlOrbitalsFile", ReadQtlOrbitals)
}

//ReadCharactersFile reads the character of the atom/orbital pairs qs from the
//qtl file name. See ReadCharacters.
func ReadCharactersFile(name string, qs []CharacterQuery, kaxis []float64) ([]*OrbitalCharacter, error) {
	return readFile(name, "ReadCharactersFile", func(r io.Reader) ([]*OrbitalCharacter, error) {
		return ReadCharacters(r, qs, kaxis)
	})
}
