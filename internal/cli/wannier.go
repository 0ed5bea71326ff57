/*
 * wannier.go, part of spaghetti.
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

	"github.com/rmera/spaghetti"
	"github.com/rmera/spaghetti/bandplot"
	"github.com/spf13/cobra"
)

type wannierOpts struct {
	bandOpts
	wannier string
	dft     bool
	wcolor  string
	wls     string
}

func newWannierCmd(o *rootOpts) *cobra.Command {
	var w wannierOpts
	cmd := &cobra.Command{
		Use:   "wannier",
		Short: "Plot Wannier90 interpolated bands, optionally over the DFT ones",
		Long: `Plot the bands in a Wannier90 case_band.dat file. With --dft they are drawn
over the DFT band structure of the case, on its k-path, to check the quality of the
interpolation. Without it, the k-path can be given with --kpath and --klabels.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWannier(cmd.Context(), o, &w)
		},
	}
	w.register(cmd)
	f := cmd.Flags()
	f.StringVar(&w.wannier, "wannier", "", "Wannier90 band file (default: case_band.dat)")
	f.BoolVar(&w.dft, "dft", false, "draw the DFT bands under the Wannier ones")
	f.StringVar(&w.wcolor, "wannier-color", "r", "color of the Wannier bands")
	f.StringVar(&w.wls, "wannier-ls", "--", "line style of the Wannier bands")
	return cmd
}

func runWannier(ctx context.Context, o *rootOpts, w *wannierOpts) error {
	logger := loggerFromContext(ctx)
	name, err := o.need(w.wannier, spaghetti.ExtWannier, "the Wannier90 band file")
	if err != nil {
		return err
	}
	pr := newProgress(logger)
	W, err := spaghetti.ReadWannierFile(name)
	if err != nil {
		return err
	}
	pr.done("read Wannier bands", "file", name, "bands", W.Len(), "k-points", len(W.K))
	opts, err := w.options(o)
	if err != nil {
		return err
	}
	wopts := opts
	if wopts.Color, err = bandplot.ParseColor(w.wcolor); err != nil {
		return err
	}
	if wopts.Width, wopts.Dashes, err = o.lineStyle(w.lw, w.wls); err != nil {
		return err
	}
	p := o.newPlot()
	if w.dft {
		B, P, err := w.read(ctx, o, spaghetti.SpinNone)
		if err != nil {
			return err
		}
		opts.Label, wopts.Label = "DFT", "Wannier"
		if err := bandplot.Bands(p, B, P, opts); err != nil {
			return err
		}
		if err := bandplot.Wannier(p, W, wopts); err != nil {
			return err
		}
		return o.save(ctx, p, "wannier.png")
	}
	if err := bandplot.Wannier(p, W, wopts); err != nil {
		return err
	}
	kpath, klabels := w.kpath, w.klabels
	if len(kpath) == 0 {
		kpath, klabels = o.config.KPath, o.config.KLabels
	}
	if len(kpath) > 0 {
		P, err := spaghetti.NewPath(kpath, klabels)
		if err != nil {
			return err
		}
		if err := bandplot.Decorate(p, P, o.ymin, o.ymax, o.guide()); err != nil {
			return err
		}
	}
	return o.save(ctx, p, "wannier.png")
}
