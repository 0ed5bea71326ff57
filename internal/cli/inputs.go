/*
 * inputs.go, part of spaghetti.
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

package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/rmera/spaghetti"
	"github.com/rmera/spaghetti/bandplot"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

//locate returns the input file with extension ext, explicit if given, and
//else the one of the selected case or the one found in the directory.
func (o *rootOpts) locate(explicit, ext string) (string, error) {
	return spaghetti.Resolve(explicit, o.casename, o.dir, ext)
}

//need is like locate, for inputs without which the requested plot can't be
//made: a file that can't be found gives an error wrapping ErrMissingInput.
func (o *rootOpts) need(explicit, ext, what string) (string, error) {
	name, err := o.locate(explicit, ext)
	if errors.Is(err, spaghetti.ErrNotFound) {
		return "", spaghetti.NewError(spaghetti.ErrMissingInput, "", "need", "%s is needed: %s", what, err)
	}
	return name, err
}

//pathOpts are the flags that select the high-symmetry path.
type pathOpts struct {
	klist   string
	kpath   []float64
	klabels []string
}

//path returns the high-symmetry path for the bands B: the --kpath and --klabels
//flags or their project file keys if given, else the file given with --klist,
//else case.klist_band or the xmgrace file from the directory.
func (o *rootOpts) path(ctx context.Context, B *spaghetti.BandSet, p pathOpts) (*spaghetti.HighSymmetryPath, error) {
	logger := loggerFromContext(ctx)
	kpath, klabels := p.kpath, p.klabels
	if len(kpath) == 0 {
		kpath, klabels = o.config.KPath, o.config.KLabels
	}
	if len(kpath) > 0 {
		logger.Debug("manual k-path", "points", len(kpath))
		return spaghetti.NewPath(kpath, klabels)
	}
	name := p.klist
	if name == "" {
		var err error
		if name, err = o.locate("", spaghetti.ExtKlistBand); err != nil {
			logger.Debug("no klist_band file, looking for an xmgrace file", "err", err)
			if name, err = o.locate("", spaghetti.ExtAgr); err != nil {
				return nil, err
			}
		}
	}
	logger.Debug("reading k-path", "file", name)
	return spaghetti.ReadPath(name, B.K)
}

//fermi returns the Fermi energy in Ry, from value (a number or a file), or from
//the SCF file of the case.
func (o *rootOpts) fermi(ctx context.Context, value string) (float64, error) {
	if value == "" {
		value = o.config.Fermi
	}
	if value == "" && o.casename != "" {
		name, err := o.need("", spaghetti.ExtSCF, "the SCF file, for the Fermi energy")
		if err != nil {
			return 0, err
		}
		value = name
	}
	eF, err := spaghetti.FermiFrom(value, o.dir)
	if err != nil {
		return 0, err
	}
	loggerFromContext(ctx).Debug("Fermi energy", "Ry", eF)
	return eF, nil
}

//newPlot returns a plot with the style applied.
func (o *rootOpts) newPlot() *plot.Plot {
	p := plot.New()
	o.style.Apply(p)
	p.Y.Label.Text = o.style.EnergyLabel
	return p
}

func (o *rootOpts) guide() vg.Length {
	return vg.Points(o.style.GuideWidth)
}

//lineStyle returns the width and dash pattern for a line of width lw (the
//style's if zero) and style ls.
func (o *rootOpts) lineStyle(lw float64, ls string) (vg.Length, []vg.Length, error) {
	if lw <= 0 {
		lw = o.style.LineWidth
	}
	width := vg.Points(lw)
	d, err := bandplot.Dashes(ls, width)
	return width, d, err
}

//save writes the figure p to the output file. Nothing is written once ctx
//is done.
func (o *rootOpts) save(ctx context.Context, p *plot.Plot, def string) error {
	return o.saveGrid(ctx, [][]*plot.Plot{{p}}, def)
}

func (o *rootOpts) saveGrid(ctx context.Context, plots [][]*plot.Plot, def string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	name := o.outputName(def)
	pr := newProgress(loggerFromContext(ctx))
	w, h := o.size(len(plots[0]))
	var err error
	if len(plots) == 1 && len(plots[0]) == 1 {
		err = bandplot.Save(plots[0][0], w, h, name)
	} else {
		err = bandplot.SaveGrid(plots, w, h, name)
	}
	if err != nil {
		return fmt.Errorf("saving figure: %w", err)
	}
	pr.done("saved figure", "file", name)
	return nil
}
