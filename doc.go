/*
 * doc.go, part of spaghetti.
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

/*Package spaghetti reads the output of band structure calculations done with WIEN2k,
and with Wannier90 on top of it, into plain numeric structures, ready to be plotted
with the bandplot package or processed further with gonum.

	**Capabilities**

    Reads eigenvalue files (case.spaghetti_ene, and the up/dn variants of spin-polarized
    runs) into a BandSet, a k-axis plus a band x k-point energy matrix.

    Reads the high-symmetry points of the path, either from case.klist_band or from the
    xmgrace file written by the spaghetti program.

    Reads the Fermi energy from the SCF log.

    Reads the orbital character of the bands (case.qtl) for any set of atom/orbital pairs,
    in one pass over the file.

    Reads case.struct: species, multiplicities, lattice and symmetry operations.

    Reads density of states files, sums groups of columns and applies a Gaussian smearing.

    Reads Wannier90 interpolated bands and 2D charge densities from lapw5.

    Reads the eigenvalues of lapw1 (case.energy) and unfolds their k-points over the
    Brillouin zone with the symmetry operations of the structure, to map Fermi surfaces.

    Every file can also be read compressed with zstd or gzip.

All the readers return errors of type *Error, which wrap one of ErrNotFound, ErrShape,
ErrMismatch and ErrMissingInput. None of them is recoverable.

*/
package spaghetti
