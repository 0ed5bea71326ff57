/*
 * files.go, part of spaghetti.
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
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

//File extensions of the WIEN2k, Wannier90 and xmgrace files the package reads.
const (
	ExtBands      = ".spaghetti_ene"
	ExtBandsUp    = ".spaghettiup_ene"
	ExtBandsDown  = ".spaghettidn_ene"
	ExtKlistBand  = ".klist_band"
	ExtAgr        = ".agr"
	ExtStruct     = ".struct"
	ExtSCF        = ".scf"
	ExtQtl        = ".qtl"
	ExtQtlUp      = ".qtlup"
	ExtQtlDown    = ".qtldn"
	ExtRho        = ".rho"
	ExtEnergy     = ".energy"
	ExtEnergyUp   = ".energyup"
	ExtEnergyDown = ".energydn"
	ExtWannier    = "_band.dat"
)

//Suffixes of compressed files, which Find and Open accept in addition
//to the plain ones.
var compressed = []string{".zst", ".gz"}

//Spin selects the spin channel of a spin-polarized calculation.
type Spin int

const (
	SpinNone Spin = iota
	SpinUp
	SpinDown
)

func (s Spin) String() string {
	switch s {
	case SpinUp:
		return "up"
	case SpinDown:
		return "dn"
	default:
		return ""
	}
}

//BandsExt returns the extension of the eigenvalue file for the spin channel.
func (s Spin) BandsExt() string {
	switch s {
	case SpinUp:
		return ExtBandsUp
	case SpinDown:
		return ExtBandsDown
	default:
		return ExtBands
	}
}

//QtlExt returns the extension of the orbital-character file for the spin channel.
func (s Spin) QtlExt() string {
	switch s {
	case SpinUp:
		return ExtQtlUp
	case SpinDown:
		return ExtQtlDown
	default:
		return ExtQtl
	}
}

//EnergyExt returns the extension of the lapw1 eigenvalue file for the spin channel.
func (s Spin) EnergyExt() string {
	switch s {
	case SpinUp:
		return ExtEnergyUp
	case SpinDown:
		return ExtEnergyDown
	default:
		return ExtEnergy
	}
}

//Case returns the name of the file with extension ext for the WIEN2k case
//casename, i.e. casename+ext.
func Case(casename, ext string) string {
	return casename + ext
}

//Find looks in dir for a file with the extension ext, or with ext followed by
//one of the compression suffixes. If several files match, the first in
//lexical order is returned. An error wrapping ErrNotFound is returned if
//there is no match.
func Find(dir, ext string) (string, error) {
	patterns := []string{"*" + ext}
	for _, c := range compressed {
		patterns = append(patterns, "*"+ext+c)
	}
	for _, p := range patterns {
		matches, err := filepath.Glob(filepath.Join(dir, p))
		if err != nil {
			return "", NewError(ErrNotFound, "", "Find", "bad pattern %q: %s", p, err)
		}
		if len(matches) == 0 {
			continue
		}
		sort.Strings(matches)
		return matches[0], nil
	}
	return "", NewError(ErrNotFound, "", "Find", "no case%s file in %s", ext, dir)
}

//FindAll returns every file in dir matching the glob pattern, sorted.
//Like Find, it fails with ErrNotFound if nothing matches.
func FindAll(dir, pattern string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, NewError(ErrNotFound, "", "FindAll", "bad pattern %q: %s", pattern, err)
	}
	if len(matches) == 0 {
		return nil, NewError(ErrNotFound, "", "FindAll", "no file matching %s in %s", pattern, dir)
	}
	sort.Strings(matches)
	return matches, nil
}

//Resolve returns the input file with extension ext. An explicit name is
//returned as is. Otherwise, if casename is given, the case file in dir is
//used, plain or compressed, and else dir is searched for ext. An error
//wrapping ErrNotFound is returned if the file doesn't exist.
func Resolve(explicit, casename, dir, ext string) (string, error) {
	if explicit != "" {
		if !exists(explicit) {
			return "", NewError(ErrNotFound, explicit, "Resolve", "no such file")
		}
		return explicit, nil
	}
	if casename == "" {
		return Find(dir, ext)
	}
	base := filepath.Join(dir, Case(casename, ext))
	for _, c := range append([]string{""}, compressed...) {
		if exists(base + c) {
			return base + c, nil
		}
	}
	return "", NewError(ErrNotFound, base, "Resolve", "no such file")
}

func exists(name string) bool {
	_, err := os.Stat(name)
	return err == nil
}

//Open opens the file name for reading. Files ending in .zst or .gz are
//decompressed on the fly. A missing file gives an error wrapping ErrNotFound.
func Open(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, NewError(ErrNotFound, name, "Open", "can't open file")
		}
		return nil, fmt.Errorf("Open: %w", err)
	}
	switch {
	case strings.HasSuffix(name, ".zst"):
		d, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("Open: zstd stream in %s: %w", name, err)
		}
		return &decompressed{Reader: d, closers: []func() error{func() error { d.Close(); return nil }, f.Close}}, nil
	case strings.HasSuffix(name, ".gz"):
		g, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("Open: gzip stream in %s: %w", name, err)
		}
		return &decompressed{Reader: g, closers: []func() error{g.Close, f.Close}}, nil
	}
	return f, nil
}

//decompressed closes both the decompressor and the underlying file.
//*zstd.Decoder has a Close method that doesn't return an error, so
//it can't be an io.ReadCloser on its own.
type decompressed struct {
	io.Reader
	closers []func() error
}

func (d *decompressed) Close() error {
	var first error
	for _, c := range d.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

//readFile opens name and hands it to read, decorating any error with caller
//and the file name.
func readFile[T any](name, caller string, read func(io.Reader) (T, error)) (T, error) {
	var zero T
	f, err := Open(name)
	if err != nil {
		return zero, Decorate(err, caller, name)
	}
	defer f.Close()
	ret, err := read(f)
	if err != nil {
		return zero, Decorate(err, caller, name)
	}
	return ret, nil
}
