/*
 * dos.go, part of spaghetti.
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
	"strconv"
	"strings"

	"github.com/rmera/spaghetti"
	"github.com/rmera/spaghetti/bandplot"
	"github.com/spf13/cobra"
)

//parseColumns parses a list of 1-based column numbers and returns them 0-based.
func parseColumns(fields []string) ([]int, error) {
	var ret []int
	for _, f := range fields {
		c, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil || c < 1 {
			return nil, fmt.Errorf("bad column %q, columns are numbered from 1", f)
		}
		ret = append(ret, c-1)
	}
	return ret, nil
}

//parseGroups parses groups of 1-based columns like "1+2,3", and returns
//them 0-based.
func parseGroups(s string) ([][]int, error) {
	var ret [][]int
	for _, g := range strings.Split(s, ",") {
		cols, err := parseColumns(strings.Split(g, "+"))
		if err != nil {
			return nil, err
		}
		ret = append(ret, cols)
	}
	return ret, nil
}

//parseRenames turns the 1-based keys of --rename into 0-based column indexes.
func parseRenames(m map[string]string) (map[int]string, error) {
	ret := make(map[int]string, len(m))
	for k, v := range m {
		c, err := parseColumns([]string{k})
		if err != nil {
			return nil, err
		}
		ret[c[0]] = v
	}
	return ret, nil
}

type dosOpts struct {
	columns   []string
	sum       string
	smooth    float64
	style     string
	vertical  bool
	rename    map[string]string
	colors    []string
	shift     float64
	alpha     float64
	ls        string
	lw        float64
	noLegend  bool
	fromBands bool
	bin       float64
}

func newDOSCmd(o *rootOpts) *cobra.Command {
	var d dosOpts
	cmd := &cobra.Command{
		Use:   "dos [files...]",
		Short: "Plot densities of states",
		Long: `Plot the densities of states in the given files, by default every case.dosXev
file in the directory. The columns of all the files are numbered together, from 1,
in the order the files are given. The energy window is --ymin to --ymax.`,
		Example: `  spaghetti dos --columns 1,3 --draw fill_line
  spaghetti dos case.dos1ev case.dos2ev --sum 2+3,4 --rename 1=V-d --smooth 0.1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDOS(cmd.Context(), o, &d, args)
		},
	}
	f := cmd.Flags()
	f.StringSliceVar(&d.columns, "columns", nil, "columns to plot, from 1 (default: all)")
	f.StringVar(&d.sum, "sum", "", `average groups of columns into one, e.g. "1+2,3"; applied before --columns`)
	f.Float64Var(&d.smooth, "smooth", 0, "Gaussian smearing FWHM in eV (0: none)")
	f.StringVar(&d.style, "draw", "line", "drawing style: line, fill or fill_line")
	f.BoolVar(&d.vertical, "vertical", false, "put the energy on the vertical axis, as in a band plot")
	f.StringToStringVar(&d.rename, "rename", nil, `legend names of columns, e.g. "1=Total,2=V-d"`)
	f.StringSliceVar(&d.colors, "colors", nil, "one color per plotted column")
	f.Float64Var(&d.shift, "shift", 0, "shift of the Fermi level (eV), subtracted from every energy")
	f.Float64Var(&d.alpha, "alpha", 0, "opacity of the fills, 0-1 (0 is opaque)")
	f.StringVar(&d.ls, "ls", "-", `line style: "-", "--", ":" or "-."`)
	f.Float64Var(&d.lw, "lw", 0, "line width in points (default from the style)")
	f.BoolVar(&d.noLegend, "no-legend", false, "don't draw the legend")
	f.BoolVar(&d.fromBands, "from-bands", false, "estimate the DOS from a histogram of the band energies in case.spaghetti_ene")
	f.Float64Var(&d.bin, "bin", 0.05, "bin width in eV for --from-bands")
	return cmd
}

func runDOS(ctx context.Context, o *rootOpts, d *dosOpts, files []string) error {
	logger := loggerFromContext(ctx)
	style, err := bandplot.ParseDOSStyle(d.style)
	if err != nil {
		return err
	}
	D, err := d.read(ctx, o, files)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	logger.Debug("columns", "names", D.Names)
	if len(d.rename) > 0 {
		renames, err := parseRenames(d.rename)
		if err != nil {
			return err
		}
		D.Rename(renames)
	}
	if d.sum != "" {
		groups, err := parseGroups(d.sum)
		if err != nil {
			return err
		}
		if D, err = D.Sum(groups); err != nil {
			return err
		}
	}
	if d.smooth > 0 {
		if err := D.Smooth(d.smooth); err != nil {
			return err
		}
	}
	opts := bandplot.DOSOptions{
		Style:      style,
		Alpha:      d.alpha,
		Shift:      d.shift,
		EMin:       o.ymin,
		EMax:       o.ymax,
		Legend:     !d.noLegend,
		GuideWidth: o.guide(),
	}
	if d.vertical {
		opts.Orientation = bandplot.EnergyY
	}
	if opts.Columns, err = parseColumns(d.columns); err != nil {
		return err
	}
	if len(d.colors) > 0 {
		if opts.Colors, err = bandplot.ParseColors(d.colors); err != nil {
			return err
		}
	}
	if opts.Width, opts.Dashes, err = o.lineStyle(d.lw, d.ls); err != nil {
		return err
	}

	logger.Info("plotting densities of states", "columns", plotted(D, opts.Columns))
	p := o.newPlot()
	p.Y.Label.Text = ""
	if err := bandplot.DOS(p, D, opts); err != nil {
		return err
	}
	return o.save(ctx, p, "dos.png")
}

//read returns the densities of states in files, or in the DOS files of the
//directory, or the histogram of the band energies with --from-bands.
func (d *dosOpts) read(ctx context.Context, o *rootOpts, files []string) (*spaghetti.DensityOfStates, error) {
	logger := loggerFromContext(ctx)
	pr := newProgress(logger)
	if d.fromBands {
		var explicit string
		if len(files) > 0 {
			explicit = files[0]
		}
		name, err := o.need(explicit, spaghetti.ExtBands, "the eigenvalue file")
		if err != nil {
			return nil, err
		}
		B, err := spaghetti.ReadBandsFile(name)
		if err != nil {
			return nil, err
		}
		D, err := B.Histogram(o.ymin+d.shift, o.ymax+d.shift, d.bin)
		if err != nil {
			return nil, err
		}
		pr.done("histogram of the band energies", "file", name, "bins", len(D.Energy))
		return D, nil
	}
	var err error
	if len(files) == 0 {
		if files, err = spaghetti.FindDOS(o.dir); err != nil {
			return nil, spaghetti.NewError(spaghetti.ErrMissingInput, "", "dos", "no DOS files given: %s", err)
		}
	}
	D, err := spaghetti.ReadDOSFiles(files...)
	if err != nil {
		return nil, err
	}
	pr.done("read densities of states", "files", len(files), "columns", D.Len(), "points", len(D.Energy))
	return D, nil
}

//plotted returns the names of the columns to be drawn, for the log.
func plotted(D *spaghetti.DensityOfStates, cols []int) string {
	if cols == nil {
		return strings.Join(D.Names, " ")
	}
	var names []string
	for _, c := range cols {
		if c < D.Len() {
			names = append(names, D.Names[c])
		}
	}
	return strings.Join(names, " ")
}
