/*
 * charge.go, part of spaghetti.
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
	"math"
	"strings"

	"github.com/rmera/spaghetti"
	"github.com/rmera/spaghetti/bandplot"
	"github.com/spf13/cobra"
)

//rhoFloor is the smallest density the log transform takes, so that
//empty regions don't give -Inf.
const rhoFloor = 1e-10

//transforms are the functions --transform can apply to a charge density.
var transforms = map[string]func(float64) float64{
	"log":  func(v float64) float64 { return math.Log10(math.Max(math.Abs(v), rhoFloor)) },
	"sqrt": func(v float64) float64 { return math.Sqrt(math.Abs(v)) },
	"abs":  math.Abs,
}

type chargeOpts struct {
	rho       string
	minus     string
	transform string
	colormap  string
	levels    int
}

func newChargeCmd(o *rootOpts) *cobra.Command {
	var c chargeOpts
	cmd := &cobra.Command{
		Use:   "charge",
		Short: "Plot a charge density map from lapw5",
		Long: `Plot the charge density grid in case.rho, as written by lapw5, as a color map.
With --minus, the difference with a second density is drawn instead, for example
to see the bonding charge.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCharge(cmd.Context(), o, &c)
		},
	}
	f := cmd.Flags()
	f.StringVar(&c.rho, "rho", "", "charge density file (default: case.rho)")
	f.StringVar(&c.minus, "minus", "", "density to subtract, on the same grid")
	f.StringVar(&c.transform, "transform", "none", "function applied to the density: none, log, sqrt or abs")
	f.StringVar(&c.colormap, "colormap", "", "colormap: "+strings.Join(bandplot.Colormaps, ", ")+" (default from the style)")
	f.IntVar(&c.levels, "levels", 256, "number of colors in the map")
	return cmd
}

func runCharge(ctx context.Context, o *rootOpts, c *chargeOpts) error {
	logger := loggerFromContext(ctx)
	name, err := o.need(c.rho, spaghetti.ExtRho, "the charge density file")
	if err != nil {
		return err
	}
	cmap := c.colormap
	if cmap == "" {
		cmap = o.style.Colormap
	}
	pal, err := bandplot.Palette(cmap, c.levels)
	if err != nil {
		return err
	}
	pr := newProgress(logger)
	C, err := spaghetti.ReadRhoFile(name)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	nx, ny := C.Dims()
	pr.done("read charge density", "file", name, "grid", fmt.Sprintf("%dx%d", nx, ny))
	if c.minus != "" {
		M, err := spaghetti.ReadRhoFile(c.minus)
		if err != nil {
			return err
		}
		if C, err = C.Sub(M); err != nil {
			return err
		}
		logger.Debug("subtracted density", "file", c.minus)
	}
	if c.transform != "none" && c.transform != "" {
		f, ok := transforms[c.transform]
		if !ok {
			return fmt.Errorf("unknown transform %q, use none, log, sqrt or abs", c.transform)
		}
		C = C.Transform(f)
	}
	p := o.newPlot()
	p.Y.Label.Text = ""
	if err := bandplot.Charge(p, C, pal); err != nil {
		return err
	}
	return o.save(ctx, p, "rho.png")
}
