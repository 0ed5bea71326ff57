/*
 * config_test.go, part of spaghetti.
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
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadConfig(Te *testing.T) {
	dir := Te.TempDir()
	c, err := LoadConfig(filepath.Join(dir, "none.toml"))
	if err != nil {
		Te.Fatal(err)
	}
	if !reflect.DeepEqual(c, &Config{}) {
		Te.Errorf("a missing file gives %+v", c)
	}

	name := filepath.Join(dir, configName)
	content := `case = "CsV3Sb5"
fermi = "0.52834"
ymax = 2.5
kpath = [0.0, 0.5]
klabels = ["GAMMA", "M"]
atoms = [1, 2]
orbitals = [[1], [5, 7]]
colors = ["r", "g", "b"]
weight = 40.0
`
	if err := os.WriteFile(name, []byte(content), 0o644); err != nil {
		Te.Fatal(err)
	}
	if c, err = LoadConfig(name); err != nil {
		Te.Fatal(err)
	}
	if c.Case != "CsV3Sb5" || c.Fermi != "0.52834" || c.Weight != 40 {
		Te.Errorf("unexpected values %+v", c)
	}
	if c.YMin != nil || c.YMax == nil || *c.YMax != 2.5 {
		Te.Errorf("ymin %v, ymax %v", c.YMin, c.YMax)
	}
	want := []charSpec{{atom: 1, orbitals: []int{1}}, {atom: 2, orbitals: []int{5, 7}}}
	if got := c.characters(); !reflect.DeepEqual(got, want) {
		Te.Errorf("characters %+v, expected %+v", got, want)
	}
}

func TestLoadConfigErrors(Te *testing.T) {
	cases := map[string]string{
		"unknown key":   "ymn = 1.0\n",
		"syntax":        "ymin = \n",
		"wrong type":    "ymin = \"low\"\n",
		"klabels":       "kpath = [0.0, 1.0]\nklabels = [\"A\"]\n",
		"orbital lists": "atoms = [1, 2]\norbitals = [[1]]\n",
	}
	dir := Te.TempDir()
	for name, content := range cases {
		Te.Run(name, func(Te *testing.T) {
			path := filepath.Join(dir, name+".toml")
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				Te.Fatal(err)
			}
			if _, err := LoadConfig(path); err == nil {
				Te.Errorf("expected an error for %q", content)
			}
		})
	}
}
