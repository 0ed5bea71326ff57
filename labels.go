/*
 * labels.go, part of spaghetti.
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

import "strings"

//klabels maps the raw tokens used for high-symmetry points in k-path files
//to the symbols printed on the figure.
var klabels = map[string]string{
	`\xG`:    "Γ",
	"GAMMA":  "Γ",
	"Gamma":  "Γ",
	"LAMBDA": "Λ",
	"DELTA":  "Δ",
	"SIGMA":  "Σ",
}

//Label returns the symbol for the high-symmetry point token tok. Unknown
//tokens, including already converted symbols, are returned unchanged.
func Label(tok string) string {
	tok = strings.TrimSpace(tok)
	if l, ok := klabels[tok]; ok {
		return l
	}
	return tok
}

//qtl2orb maps the orbital names in the JATOM header lines of case.qtl to
//the names shown in legends.
var qtl2orb = map[string]string{
	"PZ":        "pz",
	"PX":        "px",
	"PY":        "py",
	"PX+PY":     "px+py",
	"DZ2":       "dz²",
	"DX2Y2":     "dx²-y²",
	"DXZ":       "dxz",
	"DYZ":       "dyz",
	"DXY":       "dxy",
	"DX2Y2+DXY": "dx²-y²+dxy",
	"DXZ+DYZ":   "dxz+dyz",
	"0":         "s",
	"1":         "p",
	"2":         "d",
	"3":         "f",
	"tot":       "Total",
}

//OrbitalLabel returns the legend name of the qtl orbital name. Unknown
//names are returned unchanged.
func OrbitalLabel(name string) string {
	name = strings.TrimSpace(name)
	if l, ok := qtl2orb[name]; ok {
		return l
	}
	return name
}
