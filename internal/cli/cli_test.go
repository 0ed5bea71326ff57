/*
 * cli_test.go, part of spaghetti.
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
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rmera/spaghetti"
)

var testK = []float64{0, 0.25, 0.5, 0.75, 1}

//eneFile returns a spaghetti_ene file with 3 bands on testK.
func eneFile() string {
	var b strings.Builder
	for band := 0; band < 3; band++ {
		fmt.Fprintf(&b, "  bandindex:  %d\n", band+1)
		for _, k := range testK {
			fmt.Fprintf(&b, "   0.00000   0.00000   0.00000%11.5f%15.5f\n", k, float64(band-1)+k)
		}
	}
	return b.String()
}

const structFile = `Test
P   LATTICE,NONEQUIV.ATOMS:  1 221_Pm-3m
MODE OF CALC=RELA unit=bohr
  7.000000  7.000000  7.000000 90.000000 90.000000 90.000000
ATOM   1: X=0.00000000 Y=0.00000000 Z=0.00000000
          MULT= 1          ISPLIT= 2
Fe1        NPT=  781  R0=0.00005000 RMT=    2.0000   Z: 26.00000
`

//symmetryOps are the rotations about z, appended to structFile.
const symmetryOps = `   4      NUMBER OF SYMMETRY OPERATIONS
 1 0 0 0.00000000
 0 1 0 0.00000000
 0 0 1 0.00000000
       1
 0-1 0 0.00000000
 1 0 0 0.00000000
 0 0 1 0.00000000
       2
-1 0 0 0.00000000
 0-1 0 0.00000000
 0 0 1 0.00000000
       3
 0 1 0 0.00000000
-1 0 0 0.00000000
 0 0 1 0.00000000
       4
`

//energyFile returns a case.energy with 3 k-points, at Γ, X and halfway to M,
//and 2 bands around 0.5 Ry.
func energyFile() string {
	var b strings.Builder
	b.WriteString(strings.Repeat("  0.30000", 13) + "\n")
	k := [][3]float64{{0, 0, 0}, {0.5, 0, 0}, {0.25, 0.25, 0}}
	e := [][]float64{{0.2, 0.49}, {0.3, 0.6}, {0.1, 0.51}}
	for i, kp := range k {
		fmt.Fprintf(&b, "%19.12E%19.12E%19.12E%-10s%6d%6d%5.1f\n", kp[0], kp[1], kp[2], "", 120, len(e[i]), 1.0)
		for j, v := range e[i] {
			fmt.Fprintf(&b, "%12d%24.16E\n", j+1, v)
		}
	}
	return b.String()
}

//qtlFile returns a case.qtl for structFile, with 3 bands on testK and
//energies close to 0.5 Ry.
func qtlFile() string {
	var b strings.Builder
	b.WriteString(" Test\n")
	b.WriteString(" JATOM  1 MULT= 1  ISPLIT= 2 tot,0,1,2\n")
	for band := 1; band <= 3; band++ {
		fmt.Fprintf(&b, " BAND: %d\n", band)
		for k := range testK {
			e := 0.5 + 0.05*float64(band-2) + 0.01*float64(k)
			for atom := 1; atom <= 2; atom++ {
				fmt.Fprintf(&b, "%10.6f%3d%8.4f%8.4f%8.4f%8.4f\n", e, atom, 0.9, 0.5, 0.3, 0.1)
			}
		}
	}
	return b.String()
}

const dosFile = `# EF=  0.45000   NDOS=  2   NENRG= 5  ev
#
#   ENERGY total-DOS Fe-d
  -1.00000   1.00000   0.50000
  -0.50000   2.00000   1.50000
   0.00000   3.00000   2.50000
   0.50000   2.00000   1.50000
   1.00000   1.00000   0.50000
`

//testDir writes the given files to a temporary directory, and points the
//user configuration directory to another one.
func testDir(Te *testing.T, files map[string]string) string {
	Te.Helper()
	home := Te.TempDir()
	Te.Setenv("HOME", home)
	Te.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	dir := Te.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			Te.Fatal(err)
		}
	}
	return dir
}

//run executes the command line args and returns its standard output.
func run(args ...string) (string, error) {
	return runContext(context.Background(), args...)
}

func runContext(ctx context.Context, args ...string) (string, error) {
	var out, errb bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&errb)
	err := root.ExecuteContext(ctx)
	return out.String(), err
}

//isPNG checks that name exists and starts like a PNG file.
func isPNG(Te *testing.T, name string) {
	Te.Helper()
	data, err := os.ReadFile(name)
	if err != nil {
		Te.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		Te.Errorf("%s is not a PNG file", name)
	}
}

func TestSetVersion(Te *testing.T) {
	v, c, d := version, commit, date
	defer SetVersion(v, c, d)
	SetVersion("1.2.0", "abc123", "2026-01-01")
	if version != "1.2.0" || commit != "abc123" || date != "2026-01-01" {
		Te.Errorf("version %q, commit %q, date %q", version, commit, date)
	}
}

func TestBandsCommand(Te *testing.T) {
	dir := testDir(Te, map[string]string{"test" + spaghetti.ExtBands: eneFile()})
	cases := []struct {
		name string
		args []string
		out  string
	}{
		{"default output", []string{"bands", "-d", dir, "--kpath", "0,0.5,1", "--klabels", "GAMMA,X,M"}, filepath.Join(dir, "bands.png")},
		{"explicit output", []string{"bands", "-d", dir, "--kpath", "0,1", "--klabels", "GAMMA,X", "-o", filepath.Join(dir, "b.png"), "--ymin", "-1", "--ymax", "1", "-c", "tab:blue", "--ls", "--"}, filepath.Join(dir, "b.png")},
	}
	for _, c := range cases {
		Te.Run(c.name, func(Te *testing.T) {
			if _, err := run(c.args...); err != nil {
				Te.Fatal(err)
			}
			isPNG(Te, c.out)
		})
	}
}

func TestCancelled(Te *testing.T) {
	dir := testDir(Te, map[string]string{
		"test" + spaghetti.ExtBands:  eneFile(),
		"test" + spaghetti.ExtStruct: structFile,
		"test" + spaghetti.ExtQtl:    qtlFile(),
		"test.dos1ev":                dosFile,
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cases := map[string][]string{
		"bands":      {"bands", "--kpath", "0,1", "--klabels", "GAMMA,X"},
		"dos":        {"dos"},
		"from bands": {"dos", "--from-bands"},
		"fatbands":   {"fatbands", "--kpath", "0,1", "--klabels", "GAMMA,X", "-a", "1:2", "--fermi", "0.5"},
	}
	for name, args := range cases {
		Te.Run(name, func(Te *testing.T) {
			out := filepath.Join(dir, strings.ReplaceAll(name, " ", "_")+".png")
			_, err := runContext(ctx, append(args, "-d", dir, "-o", out)...)
			if !errors.Is(err, context.Canceled) {
				Te.Errorf("expected context.Canceled, got %v", err)
			}
			if _, err := os.Stat(out); err == nil {
				Te.Errorf("%s was written after the interruption", out)
			}
		})
	}
}

func TestBandsCommandErrors(Te *testing.T) {
	dir := testDir(Te, map[string]string{"test" + spaghetti.ExtBands: eneFile()})
	cases := []struct {
		name string
		args []string
		want error
	}{
		{"no path", []string{"bands", "-d", dir}, spaghetti.ErrNotFound},
		{"no bands", []string{"bands", "-d", Te.TempDir(), "--kpath", "0,1", "--klabels", "A,B"}, spaghetti.ErrNotFound},
		{"missing case", []string{"bands", "-d", dir, "--case", "other", "--kpath", "0,1", "--klabels", "A,B"}, spaghetti.ErrNotFound},
	}
	for _, c := range cases {
		Te.Run(c.name, func(Te *testing.T) {
			if _, err := run(c.args...); !errors.Is(err, c.want) {
				Te.Errorf("expected %v, got %v", c.want, err)
			}
		})
	}
	bad := [][]string{
		{"bands", "-d", dir, "--kpath", "0,1", "--klabels", "A,B", "--spin", "sideways"},
		{"bands", "-d", dir, "--kpath", "0,1", "--klabels", "A,B", "--spin", "join", "-s", "x"},
		{"bands", "-d", dir, "--kpath", "0,1", "--klabels", "A,B", "-c", "notacolor"},
		{"bands", "-d", dir, "--kpath", "0,1", "--klabels", "A,B", "--ymin", "2", "--ymax", "1"},
		{"bands", "-d", dir, "--kpath", "0,1", "--klabels", "A,B", "-o", filepath.Join(dir, "b.bmp")},
	}
	for _, args := range bad {
		if _, err := run(args...); err == nil {
			Te.Errorf("expected an error for %v", args)
		}
	}
}

func TestBandsSpin(Te *testing.T) {
	dir := testDir(Te, map[string]string{
		"test" + spaghetti.ExtBandsUp:   eneFile(),
		"test" + spaghetti.ExtBandsDown: eneFile(),
	})
	for _, spin := range []string{"up", "dn", "join", "sep"} {
		Te.Run(spin, func(Te *testing.T) {
			out := filepath.Join(dir, spin+".png")
			if _, err := run("bands", "-d", dir, "--kpath", "0,1", "--klabels", "A,B", "--spin", spin, "-o", out); err != nil {
				Te.Fatal(err)
			}
			isPNG(Te, out)
		})
	}
}

func TestFatBandsCommand(Te *testing.T) {
	dir := testDir(Te, map[string]string{
		"test" + spaghetti.ExtBands:  eneFile(),
		"test" + spaghetti.ExtStruct: structFile,
		"test" + spaghetti.ExtQtl:    qtlFile(),
	})
	args := []string{"fatbands", "-d", dir, "--kpath", "0,1", "--klabels", "GAMMA,X", "-a", "1:2,3", "--fermi", "0.5"}
	if _, err := run(args...); err != nil {
		Te.Fatal(err)
	}
	isPNG(Te, filepath.Join(dir, "fatbands.png"))

	out := filepath.Join(dir, "fat2.png")
	if _, err := run(append(args, "--colors", "r,g", "--glyphs", "--alpha", "0.5", "-o", out)...); err != nil {
		Te.Fatal(err)
	}
	isPNG(Te, out)
	if _, err := run(append(args, "--colors", "r")...); err == nil {
		Te.Error("expected an error for too few colors")
	}
	if _, err := run(append(args, "-a", "2:1")...); !errors.Is(err, spaghetti.ErrShape) {
		Te.Errorf("expected an ErrShape for an atom not in the structure, got %v", err)
	}
}

func TestFatBandsMissingInput(Te *testing.T) {
	files := map[string]string{
		"test" + spaghetti.ExtBands:  eneFile(),
		"test" + spaghetti.ExtStruct: structFile,
		"test" + spaghetti.ExtQtl:    qtlFile(),
	}
	for _, missing := range []string{spaghetti.ExtStruct, spaghetti.ExtQtl, spaghetti.ExtSCF} {
		Te.Run(missing, func(Te *testing.T) {
			fs := make(map[string]string)
			for name, content := range files {
				if !strings.HasSuffix(name, missing) {
					fs[name] = content
				}
			}
			dir := testDir(Te, fs)
			_, err := run("fatbands", "-d", dir, "--kpath", "0,1", "--klabels", "A,B", "-a", "1:1")
			if !errors.Is(err, spaghetti.ErrMissingInput) {
				Te.Errorf("expected an ErrMissingInput, got %v", err)
			}
		})
	}
	dir := testDir(Te, files)
	if _, err := run("fatbands", "-d", dir, "--kpath", "0,1", "--klabels", "A,B", "--fermi", "0.5"); !errors.Is(err, spaghetti.ErrMissingInput) {
		Te.Errorf("expected an ErrMissingInput without atoms, got %v", err)
	}
}

func TestDOSCommand(Te *testing.T) {
	dir := testDir(Te, map[string]string{"test.dos1ev": dosFile})
	cases := map[string][]string{
		"all":       {},
		"columns":   {"--columns", "2", "--draw", "fill"},
		"sum":       {"--sum", "1+2", "--draw", "fill_line", "--vertical"},
		"smooth":    {"--smooth", "0.2", "--rename", "1=Total", "--colors", "k,tab:red"},
		"no legend": {"--no-legend", "--ymin", "-0.5", "--ymax", "0.5"},
	}
	for name, extra := range cases {
		Te.Run(name, func(Te *testing.T) {
			out := filepath.Join(dir, strings.ReplaceAll(name, " ", "_")+".png")
			args := append([]string{"dos", "-d", dir, "-o", out}, extra...)
			if _, err := run(args...); err != nil {
				Te.Fatal(err)
			}
			isPNG(Te, out)
		})
	}
	if _, err := run("dos", "-d", dir, "--columns", "3"); err == nil {
		Te.Error("expected an error for a column out of range")
	}
	if _, err := run("dos", "-d", Te.TempDir()); !errors.Is(err, spaghetti.ErrMissingInput) {
		Te.Errorf("expected an ErrMissingInput without DOS files, got %v", err)
	}
}

func TestDOSFromBands(Te *testing.T) {
	dir := testDir(Te, map[string]string{"test" + spaghetti.ExtBands: eneFile()})
	out := filepath.Join(dir, "hist.png")
	if _, err := run("dos", "-d", dir, "--from-bands", "--bin", "0.25", "--smooth", "0.5", "-o", out); err != nil {
		Te.Fatal(err)
	}
	isPNG(Te, out)
	if _, err := run("dos", "-d", dir, "--from-bands", "--bin", "0"); !errors.Is(err, spaghetti.ErrShape) {
		Te.Errorf("expected an ErrShape for a zero bin width, got %v", err)
	}
}

func TestInitCommand(Te *testing.T) {
	dir := testDir(Te, nil)
	if _, err := run("init", "-d", dir); err != nil {
		Te.Fatal(err)
	}
	c, err := LoadConfig(filepath.Join(dir, configName))
	if err != nil {
		Te.Fatal(err)
	}
	if c.YMin == nil || *c.YMin != -4 || c.Weight != 80 {
		Te.Errorf("unexpected template values %+v", c)
	}
	if _, err := run("init", "-d", dir); err == nil {
		Te.Error("expected an error when the file exists")
	}
	if _, err := run("init", "-d", dir, "--force"); err != nil {
		Te.Error(err)
	}
}

//Settings in the project file apply unless a flag is given.
func TestProjectFile(Te *testing.T) {
	dir := testDir(Te, map[string]string{"test" + spaghetti.ExtBands: eneFile()})
	fromConfig := filepath.Join(dir, "fromconfig.png")
	project := fmt.Sprintf(`output = %q
kpath = [0.0, 1.0]
klabels = ["GAMMA", "X"]
ymin = -1.0
ymax = 1.0
`, fromConfig)
	if err := os.WriteFile(filepath.Join(dir, configName), []byte(project), 0o644); err != nil {
		Te.Fatal(err)
	}
	if _, err := run("bands", "-d", dir); err != nil {
		Te.Fatal(err)
	}
	isPNG(Te, fromConfig)
	out := filepath.Join(dir, "flag.png")
	if _, err := run("bands", "-d", dir, "-o", out); err != nil {
		Te.Fatal(err)
	}
	isPNG(Te, out)
	if _, err := run("bands", "-d", dir, "--ymin", "2"); err == nil {
		Te.Error("expected an error for ymin above the ymax of the project file")
	}
}

func TestInfoCommand(Te *testing.T) {
	dir := testDir(Te, map[string]string{
		"test" + spaghetti.ExtBands:  eneFile(),
		"test" + spaghetti.ExtStruct: structFile,
		"test" + spaghetti.ExtQtl:    qtlFile(),
		configName:                   "kpath = [0.0, 1.0]\nklabels = [\"GAMMA\", \"X\"]\n",
	})
	out, err := run("info", "-d", dir)
	if err != nil {
		Te.Fatal(err)
	}
	for _, want := range []string{"Structure", "Fe1", "221", "0.8976", "symmetry ops", "Γ X", "k-points", "scf", "wannier"} {
		if !strings.Contains(out, want) {
			Te.Errorf("%q not in the output:\n%s", want, out)
		}
	}
}

func TestFermiSurfaceCommand(Te *testing.T) {
	dir := testDir(Te, map[string]string{
		"test" + spaghetti.ExtStruct: structFile + symmetryOps,
		"test" + spaghetti.ExtEnergy: energyFile(),
	})
	cases := map[string][]string{
		"crossings": {},
		"band":      {"--band", "2", "--colormap", "bluered"},
		"plane":     {"--kz", "0", "--cartesian", "--circles", "--window", "0.5"},
	}
	for name, extra := range cases {
		Te.Run(name, func(Te *testing.T) {
			out := filepath.Join(dir, name+".png")
			args := append([]string{"fermisurface", "-d", dir, "--fermi", "0.5", "-o", out}, extra...)
			if _, err := run(args...); err != nil {
				Te.Fatal(err)
			}
			isPNG(Te, out)
		})
	}
	errs := []struct {
		name string
		args []string
		want error
	}{
		{"band out of range", []string{"--band", "3"}, spaghetti.ErrShape},
		{"empty plane", []string{"--kz", "0.5"}, spaghetti.ErrShape},
		{"no energy file", []string{"--energy", filepath.Join(dir, "none.energy")}, spaghetti.ErrMissingInput},
		{"no fermi energy", []string{"--fermi", ""}, spaghetti.ErrMissingInput},
	}
	for _, c := range errs {
		Te.Run(c.name, func(Te *testing.T) {
			args := append([]string{"fermisurface", "-d", dir, "--fermi", "0.5", "-o", filepath.Join(dir, "bad.png")}, c.args...)
			if _, err := run(args...); !errors.Is(err, c.want) {
				Te.Errorf("expected %v, got %v", c.want, err)
			}
		})
	}
}

func TestStyleCommand(Te *testing.T) {
	testDir(Te, nil)
	path, err := run("style", "path")
	if err != nil {
		Te.Fatal(err)
	}
	path = strings.TrimSpace(path)
	if _, err := run("style", "install"); err != nil {
		Te.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		Te.Errorf("style not installed at %s: %v", path, err)
	}
	if _, err := run("style", "install"); err == nil {
		Te.Error("expected an error for an installed style")
	}
	if _, err := run("style", "install", "--force"); err != nil {
		Te.Error(err)
	}
	out, err := run("style", "show")
	if err != nil {
		Te.Fatal(err)
	}
	if !strings.Contains(out, "line_width") {
		Te.Errorf("unexpected style output:\n%s", out)
	}
	if _, err := run("style", "show", "--style", filepath.Join(Te.TempDir(), "none.toml")); err == nil {
		Te.Error("expected an error for a missing style file")
	}
}
