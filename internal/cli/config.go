/*
 * config.go, part of spaghetti.
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
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

const configName = "spaghetti.toml"

//Config is the project file, spaghetti.toml, kept next to the calculation.
//Every key is optional. Flags given on the command line win over it.
type Config struct {
	Case   string   `toml:"case"`
	Output string   `toml:"output"`
	Fermi  string   `toml:"fermi"` //a number in Ry, or a file.
	YMin   *float64 `toml:"ymin"`
	YMax   *float64 `toml:"ymax"`
	//Manual high-symmetry path.
	KPath   []float64 `toml:"kpath"`
	KLabels []string  `toml:"klabels"`
	//Fat bands: the orbitals of atoms[i] are orbitals[i]. Colors go in
	//the same order as the atom/orbital pairs.
	Atoms    []int    `toml:"atoms"`
	Orbitals [][]int  `toml:"orbitals"`
	Colors   []string `toml:"colors"`
	Weight   float64  `toml:"weight"`
}

//LoadConfig reads the project file path. A missing file gives an
//empty Config. Unknown keys are an error, as they are most likely typos.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}
	c := &Config{}
	md, err := toml.Decode(string(data), c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if und := md.Undecoded(); len(und) > 0 {
		keys := make([]string, len(und))
		for i, k := range und {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if len(c.KLabels) != len(c.KPath) {
		return nil, fmt.Errorf("%s: %d klabels for %d kpath points", path, len(c.KLabels), len(c.KPath))
	}
	if len(c.Atoms) != len(c.Orbitals) {
		return nil, fmt.Errorf("%s: %d atoms but %d orbital lists", path, len(c.Atoms), len(c.Orbitals))
	}
	return c, nil
}

//characters returns the atom/orbital pairs in the file.
func (c *Config) characters() []charSpec {
	ret := make([]charSpec, len(c.Atoms))
	for i, a := range c.Atoms {
		ret[i] = charSpec{atom: a, orbitals: c.Orbitals[i]}
	}
	return ret
}

const configTemplate = `# spaghetti project file. Every key is optional, and flags win over it.

# WIEN2k case name, inputs are then case.<extension>.
# case = "CsV3Sb5"

# Output file. Its extension sets the format: png, svg, pdf, eps, jpg, tiff.
# output = "bands.pdf"

# Fermi energy for fat bands, in Ry or as a file. By default it is read
# from the SCF file.
# fermi = "0.52834"

# Energy window, in eV.
ymin = -4.0
ymax = 4.0

# High-symmetry path, used instead of case.klist_band or the xmgrace file.
# kpath = [0.0, 0.42, 0.66, 1.15]
# klabels = ["GAMMA", "M", "K", "GAMMA"]

# Fat bands: the orbitals (columns of case.qtl) of each atom.
# atoms = [1, 2]
# orbitals = [[1], [5, 7]]
# colors = ["dodgerblue", "lightcoral", "gold"]
weight = 80.0
`

func newInitCmd(o *rootOpts) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a commented " + configName + " in the directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := filepath.Join(o.dir, configName)
			if exists(path) && !force {
				return fmt.Errorf("%s already exists, use --force to overwrite it", path)
			}
			if err := os.WriteFile(path, []byte(configTemplate), 0o644); err != nil {
				return err
			}
			printSuccess(cmd.ErrOrStderr(), "wrote %s", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}
