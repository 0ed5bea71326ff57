/*
 * cli.go, part of spaghetti.
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

/*Package cli implements the spaghetti command line interface.

Each command reads one set of WIEN2k (or VASP, or Wannier90) files from a directory
and writes one figure. Inputs not given explicitly are looked for in the directory,
as case.<extension> if --case is given, or as the only file with the right extension
otherwise. Settings that are tedious to repeat (the k-path, the orbitals for fat
bands, colors, the energy window) can be kept in a spaghetti.toml file in the same
directory; flags given on the command line take precedence over it.

The figure goes to the file given with --output, or to the standard output as PNG
with --output -. Logs go to the standard error, with debug messages if --verbose
is given.
*/
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/rmera/spaghetti/bandplot"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"
)

const appName = "spaghetti"

var (
	version = "dev"
	commit  string
	date    string
)

//SetVersion sets the version information shown by --version, usually
//injected with ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

//rootOpts holds the flags shared by every command, and what is loaded
//from them before the command runs.
type rootOpts struct {
	verbose    bool
	dir        string
	casename   string
	output     string
	ymin       float64
	ymax       float64
	width      float64 //inches, 0 means the style's.
	height     float64
	stylePath  string
	configPath string

	style  *bandplot.Style
	config *Config
}

//Execute runs the command line with the arguments of the process.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	o := &rootOpts{}
	root := &cobra.Command{
		Use:   appName,
		Short: "spaghetti plots band structures and densities of states from WIEN2k",
		Long: `spaghetti plots band structures, fat bands, densities of states, Wannier90 bands
and charge densities from the output of WIEN2k, and band structures from VASP.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := log.InfoLevel
			if o.verbose {
				level = log.DebugLevel
			}
			logger := newLogger(cmd.ErrOrStderr(), level)
			cmd.SetContext(withLogger(cmd.Context(), logger))
			return o.load(cmd, logger)
		},
	}
	root.SetVersionTemplate(fmt.Sprintf("spaghetti %s\ncommit: %s\nbuilt: %s\n", version, commit, date))

	f := root.PersistentFlags()
	f.BoolVarP(&o.verbose, "verbose", "v", false, "enable debug logging")
	f.StringVarP(&o.dir, "dir", "d", ".", "directory with the input files")
	f.StringVar(&o.casename, "case", "", "WIEN2k case name, inputs are then case.<extension>")
	f.StringVarP(&o.output, "output", "o", "", `output file, its extension sets the format; "-" writes PNG to the standard output`)
	f.Float64Var(&o.ymin, "ymin", -4, "lower end of the energy window (eV)")
	f.Float64Var(&o.ymax, "ymax", 4, "upper end of the energy window (eV)")
	f.Float64Var(&o.width, "width", 0, "figure width in inches (default from the style)")
	f.Float64Var(&o.height, "height", 0, "figure height in inches (default from the style)")
	f.StringVar(&o.stylePath, "style", "", "style file (default: the installed one)")
	f.StringVar(&o.configPath, "config", "", "project file (default: spaghetti.toml in --dir)")

	root.AddCommand(newBandsCmd(o))
	root.AddCommand(newFatBandsCmd(o))
	root.AddCommand(newDOSCmd(o))
	root.AddCommand(newWannierCmd(o))
	root.AddCommand(newVASPCmd(o))
	root.AddCommand(newChargeCmd(o))
	root.AddCommand(newFermiSurfaceCmd(o))
	root.AddCommand(newInfoCmd(o))
	root.AddCommand(newInitCmd(o))
	root.AddCommand(newStyleCmd(o))
	return root
}

//load reads the style and the project file, and fills the flags that
//were not given with the values from the project file.
func (o *rootOpts) load(cmd *cobra.Command, logger *log.Logger) error {
	var err error
	changed := cmd.Flags().Changed
	if changed("style") && !exists(o.stylePath) {
		return fmt.Errorf("style file %s not found", o.stylePath)
	}
	if o.stylePath == "" {
		if o.stylePath, err = bandplot.StylePath(); err != nil {
			logger.Debug("no user configuration directory, using the default style", "err", err)
		}
	}
	o.style = bandplot.DefaultStyle()
	if o.stylePath != "" {
		if o.style, err = bandplot.LoadStyle(o.stylePath); err != nil {
			return err
		}
		logger.Debug("style", "path", o.stylePath)
	}
	if o.configPath == "" {
		o.configPath = filepath.Join(o.dir, configName)
	}
	if o.config, err = LoadConfig(o.configPath); err != nil {
		return err
	}
	c := o.config
	if !changed("case") && c.Case != "" {
		o.casename = c.Case
	}
	if !changed("output") && c.Output != "" {
		o.output = c.Output
	}
	if !changed("ymin") && c.YMin != nil {
		o.ymin = *c.YMin
	}
	if !changed("ymax") && c.YMax != nil {
		o.ymax = *c.YMax
	}
	if o.ymin >= o.ymax {
		return fmt.Errorf("empty energy window [%g, %g]", o.ymin, o.ymax)
	}
	return nil
}

//size returns the figure size, scaling the width by cols panels.
func (o *rootOpts) size(cols int) (vg.Length, vg.Length) {
	w, h := o.style.Size()
	if o.width > 0 {
		w = vg.Length(o.width) * vg.Inch
	}
	if o.height > 0 {
		h = vg.Length(o.height) * vg.Inch
	}
	return w * vg.Length(cols), h
}

//outputName returns the output file, or def if none was given.
func (o *rootOpts) outputName(def string) string {
	if o.output != "" {
		return o.output
	}
	return filepath.Join(o.dir, def)
}

//exists is true if name can be stat'ed.
func exists(name string) bool {
	_, err := os.Stat(name)
	return err == nil
}
