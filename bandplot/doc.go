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

/*Package bandplot draws the data read by the spaghetti package on gonum/plot plots.

Every renderer takes the *plot.Plot to draw on, so several of them can share a
figure: Bands followed by FatBands gives a fat band plot, Bands followed by Wannier
compares DFT and Wannier bands. Renderers that set the axes (Bands, Decorate, DOS)
should go before the ones that only add to them (FatBands, Wannier on a decorated plot).
FermiSurface and Charge draw k-space and real-space maps on their own.

The look of the figures is kept in a Style, which can be saved as TOML and
installed in the user configuration directory.
*/
package bandplot
