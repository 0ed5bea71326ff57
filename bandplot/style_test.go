/*
 * style_test.go, part of spaghetti.
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

package bandplot

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/colornames"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

func TestParseColor(Te *testing.T) {
	cases := []struct {
		in   string
		want color.RGBA
	}{
		{"k", color.RGBA{0, 0, 0, 255}},
		{"r", color.RGBA{255, 0, 0, 255}},
		{" DodgerBlue ", colornames.Dodgerblue},
		{"tab:blue", color.RGBA{0x1f, 0x77, 0xb4, 255}},
		{"#00ff00", color.RGBA{0, 255, 0, 255}},
		{"#f00", color.RGBA{255, 0, 0, 255}},
		{"#0000ff80", color.RGBA{0, 0, 128, 128}},
	}
	for _, c := range cases {
		Te.Run(c.in, func(Te *testing.T) {
			got, err := ParseColor(c.in)
			if err != nil {
				Te.Fatal(err)
			}
			if color.RGBAModel.Convert(got) != c.want {
				Te.Errorf("%v, expected %v", got, c.want)
			}
		})
	}
	for _, bad := range []string{"", "notacolor", "tab:teal", "#12", "#gg0000"} {
		if _, err := ParseColor(bad); err == nil {
			Te.Errorf("expected an error for %q", bad)
		}
	}
	if _, err := ParseColors([]string{"k", "nope"}); err == nil {
		Te.Error("expected an error from ParseColors")
	}
}

func TestDefaultColor(Te *testing.T) {
	if DefaultColor(0, 0) != color.Color(colornames.Dodgerblue) {
		Te.Errorf("first color %v", DefaultColor(0, 0))
	}
	if DefaultColor(3, 5) != DefaultColor(0, 0) || DefaultColor(-1, 0) != DefaultColor(2, 0) {
		Te.Error("colors don't wrap around")
	}
	if DefaultColor(1, 1) != color.Color(letters["r"]) {
		Te.Errorf("second atom, second orbital %v", DefaultColor(1, 1))
	}
	seen := make(map[color.Color]bool)
	for i := 0; i < 6; i++ {
		seen[SeriesColor(i, 6)] = true
	}
	if len(seen) != 6 {
		Te.Errorf("%d different series colors, expected 6", len(seen))
	}
}

func TestDashes(Te *testing.T) {
	for _, ls := range []string{"-", "solid"} {
		if d, err := Dashes(ls, 1); err != nil || d != nil {
			Te.Errorf("%q: %v %v", ls, d, err)
		}
	}
	d, err := Dashes("--", 2)
	if err != nil {
		Te.Fatal(err)
	}
	if len(d) != 2 || d[0] != 7.4 || d[1] != 3.2 {
		Te.Errorf("dashed at width 2: %v", d)
	}
	if d, _ := Dashes("-.", 1); len(d) != 4 {
		Te.Errorf("dash-dot: %v", d)
	}
	if _, err := Dashes("~", 1); err == nil {
		Te.Error("expected an error for an unknown style")
	}
}

func TestStyle(Te *testing.T) {
	dir := Te.TempDir()
	s, err := LoadStyle(filepath.Join(dir, "missing.toml"))
	if err != nil {
		Te.Fatal(err)
	}
	if *s != *DefaultStyle() {
		Te.Errorf("missing file gave %+v", s)
	}
	s.LabelSize = 20
	s.Colormap = "kindlmann"
	path := filepath.Join(dir, "sub", "style.toml")
	if err := s.Save(path); err != nil {
		Te.Fatal(err)
	}
	back, err := LoadStyle(path)
	if err != nil {
		Te.Fatal(err)
	}
	if *back != *s {
		Te.Errorf("read %+v, saved %+v", back, s)
	}
	partial := filepath.Join(dir, "partial.toml")
	if err := os.WriteFile(partial, []byte("width = 8.5\nlegend_left = true\n"), 0o644); err != nil {
		Te.Fatal(err)
	}
	s, err = LoadStyle(partial)
	if err != nil {
		Te.Fatal(err)
	}
	if s.Width != 8.5 || !s.LegendLeft || s.Height != DefaultStyle().Height {
		Te.Errorf("partial file gave %+v", s)
	}
	w, h := s.Size()
	if w != 8.5*vg.Inch || h != 6*vg.Inch {
		Te.Errorf("size %v x %v", w, h)
	}
	p := plot.New()
	s.Apply(p)
	if p.X.Label.TextStyle.Font.Size != vg.Points(s.LabelSize) || !p.Legend.Left {
		Te.Error("style not applied")
	}
	for name, content := range map[string]string{
		"negative.toml": "line_width = -1\n",
		"broken.toml":   "width = \n",
		"zero.toml":     "height = 0\n",
	} {
		bad := filepath.Join(dir, name)
		if err := os.WriteFile(bad, []byte(content), 0o644); err != nil {
			Te.Fatal(err)
		}
		if _, err := LoadStyle(bad); err == nil {
			Te.Errorf("expected an error for %s", name)
		}
	}
}

func TestInstallStyle(Te *testing.T) {
	dir := Te.TempDir()
	Te.Setenv("XDG_CONFIG_HOME", dir)
	Te.Setenv("HOME", dir)
	path, written, err := InstallStyle()
	if err != nil {
		Te.Fatal(err)
	}
	if !written {
		Te.Error("style not written on first install")
	}
	if _, err := os.Stat(path); err != nil {
		Te.Fatal(err)
	}
	if _, written, _ = InstallStyle(); written {
		Te.Error("style overwritten on second install")
	}
}
