/*
 * bands.go, part of spaghetti.
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
	"fmt"
	"image/color"

	"github.com/rmera/spaghetti"
	"github.com/rmera/spaghetti/bandplot"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
)

//bandOpts are the flags of the commands that draw DFT bands.
type bandOpts struct {
	pathOpts
	file  string
	spin  string
	shift float64
	color string
	ls    string
	lw    float64
}

func (b *bandOpts) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&b.file, "spaghetti", "s", "", "eigenvalue file (default: case.spaghetti_ene)")
	f.StringVar(&b.klist, "klist", "", "k-path file, case.klist_band or xmgrace .agr (default: found in the directory)")
	f.Float64SliceVar(&b.kpath, "kpath", nil, "positions of the high-symmetry points, instead of a k-path file")
	f.StringSliceVar(&b.klabels, "klabels", nil, "labels of the high-symmetry points given with --kpath")
	f.Float64Var(&b.shift, "shift", 0, "shift of the Fermi level (eV), subtracted from every energy")
	f.StringVarP(&b.color, "color", "c", "k", "color of the bands")
	f.StringVar(&b.ls, "ls", "-", `line style of the bands: "-", "--", ":" or "-."`)
	f.Float64Var(&b.lw, "lw", 0, "line width of the bands in points (default from the style)")
}

//spinChannel returns the spin channel for --spin up or dn.
func spinChannel(s string) (spaghetti.Spin, error) {
	switch s {
	case "":
		return spaghetti.SpinNone, nil
	case "up":
		return spaghetti.SpinUp, nil
	case "dn", "down":
		return spaghetti.SpinDown, nil
	}
	return spaghetti.SpinNone, fmt.Errorf("unknown spin channel %q, use up or dn", s)
}

//options returns the renderer options for the flags.
func (b *bandOpts) options(o *rootOpts) (bandplot.BandOptions, error) {
	col, err := bandplot.ParseColor(b.color)
	if err != nil {
		return bandplot.BandOptions{}, err
	}
	width, dashes, err := o.lineStyle(b.lw, b.ls)
	if err != nil {
		return bandplot.BandOptions{}, err
	}
	return bandplot.BandOptions{
		Color:      col,
		Width:      width,
		Dashes:     dashes,
		Shift:      b.shift,
		YMin:       o.ymin,
		YMax:       o.ymax,
		GuideWidth: o.guide(),
	}, nil
}

//read returns the bands of the spin channel s, and their path.
func (b *bandOpts) read(ctx context.Context, o *rootOpts, s spaghetti.Spin) (*spaghetti.BandSet, *spaghetti.HighSymmetryPath, error) {
	logger := loggerFromContext(ctx)
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	name, err := o.locate(b.file, s.BandsExt())
	if err != nil {
		return nil, nil, err
	}
	pr := newProgress(logger)
	B, err := spaghetti.ReadBandsFile(name)
	if err != nil {
		return nil, nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	pr.done("read bands", "file", name, "bands", B.Len(), "k-points", len(B.K))
	P, err := o.path(ctx, B, b.pathOpts)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("high-symmetry points", "labels", P.Labels)
	return B, P, nil
}

func newBandsCmd(o *rootOpts) *cobra.Command {
	var b bandOpts
	cmd := &cobra.Command{
		Use:   "bands",
		Short: "Plot the band structure",
		Long: `Plot the band structure from case.spaghetti_ene, with the high-symmetry points
from case.klist_band or the xmgrace file written by spaghetti.

With --spin join both spin channels are drawn on the same axes, up as a solid
blue line and down as a dashed red one. With --spin sep they are drawn side by side.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBands(cmd.Context(), o, &b)
		},
	}
	b.register(cmd)
	cmd.Flags().StringVar(&b.spin, "spin", "", "spin channel: up, dn, join (both on one plot) or sep (side by side)")
	return cmd
}

func runBands(ctx context.Context, o *rootOpts, b *bandOpts) error {
	logger := loggerFromContext(ctx)
	switch b.spin {
	case "join", "sep":
		if b.file != "" {
			return fmt.Errorf("--spin %s reads both channels, it can't be used with --spaghetti", b.spin)
		}
		if b.spin == "join" {
			return runBandsJoin(ctx, o, b)
		}
		return runBandsSep(ctx, o, b)
	}
	s, err := spinChannel(b.spin)
	if err != nil {
		return err
	}
	opts, err := b.options(o)
	if err != nil {
		return err
	}
	B, P, err := b.read(ctx, o, s)
	if err != nil {
		return err
	}
	logger.Info("plotting bands")
	p := o.newPlot()
	if err := bandplot.Bands(p, B, P, opts); err != nil {
		return err
	}
	return o.save(ctx, p, "bands.png")
}

func runBandsJoin(ctx context.Context, o *rootOpts, b *bandOpts) error {
	up, P, err := b.read(ctx, o, spaghetti.SpinUp)
	if err != nil {
		return err
	}
	dn, _, err := b.read(ctx, o, spaghetti.SpinDown)
	if err != nil {
		return err
	}
	opts, err := b.options(o)
	if err != nil {
		return err
	}
	p := o.newPlot()
	loggerFromContext(ctx).Info("plotting both spin channels")
	upOpts := opts
	upOpts.Color, upOpts.Dashes, upOpts.Label = color.RGBA{B: 255, A: 255}, nil, "up"
	if err := bandplot.Bands(p, up, P, upOpts); err != nil {
		return err
	}
	dnOpts := opts
	dnOpts.Color, dnOpts.Label = color.RGBA{R: 255, A: 255}, "dn"
	if dnOpts.Dashes, err = bandplot.Dashes("--", opts.Width); err != nil {
		return err
	}
	if err := bandplot.Bands(p, dn, P, dnOpts); err != nil {
		return err
	}
	return o.save(ctx, p, "bands_spin.png")
}

func runBandsSep(ctx context.Context, o *rootOpts, b *bandOpts) error {
	opts, err := b.options(o)
	if err != nil {
		return err
	}
	var plots []*plot.Plot
	for _, s := range []spaghetti.Spin{spaghetti.SpinUp, spaghetti.SpinDown} {
		B, P, err := b.read(ctx, o, s)
		if err != nil {
			return err
		}
		p := o.newPlot()
		p.Title.Text = "spin " + s.String()
		if err := bandplot.Bands(p, B, P, opts); err != nil {
			return err
		}
		plots = append(plots, p)
	}
	plots[1].Y.Label.Text = ""
	return o.saveGrid(ctx, [][]*plot.Plot{plots}, "bands_spin.png")
}
