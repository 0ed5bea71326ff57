/*
 * conversion.go, part of spaghetti.
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

//Conversions
const (
	Ry2eV         = 13.605693122994 //Rydberg to electronvolt
	EV2Ry         = 1 / Ry2eV
	Bohr2Angstrom = 0.529177210903
)

//A Gaussian's full width at half maximum is sqrt(8 ln 2) times its
//standard deviation.
const fwhmPerSigma = 2.3548200450309493
