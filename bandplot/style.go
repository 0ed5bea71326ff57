/*
 * style.go, part of spaghetti.
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
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

//EnergyLabel is the default label for energy axes.
const EnergyLabel = "ε - ε_F (eV)"

//Style collects the look of the figures, the way a style sheet would.
//Sizes are in points, except for the figure size, which is in inches.
type Style struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`

	//Font sizes of the title, the axis labels, the tick labels
	//and the legend.
	TitleSize  float64 `toml:"title_size"`
	LabelSize  float64 `toml:"label_size"`
	TickSize   float64 `toml:"tick_size"`
	LegendSize float64 `toml:"legend_size"`

	AxisWidth  float64 `toml:"axis_width"`
	TickLength float64 `toml:"tick_length"`
	TickWidth  float64 `toml:"tick_width"`
	//Width of the bands and DOS curves.
	LineWidth float64 `toml:"line_width"`
	//Width of the zero-energy and high-symmetry lines.
	GuideWidth float64 `toml:"guide_width"`

	LegendTop  bool `toml:"legend_top"`
	LegendLeft bool `toml:"legend_left"`

	//Name of the palette used for charge densities, see Palette.
	Colormap    string `toml:"colormap"`
	EnergyLabel string `toml:"energy_label"`
}

//DefaultStyle returns the style used when no style file is installed.
func DefaultStyle() *Style {
	return &Style{
		Width:       6,
		Height:      6,
		TitleSize:   15,
		LabelSize:   15,
		TickSize:    15,
		LegendSize:  12,
		AxisWidth:   0.5,
		TickLength:  7,
		TickWidth:   0.5,
		LineWidth:   1.5,
		GuideWidth:  1,
		LegendTop:   true,
		Colormap:    "heat",
		EnergyLabel: EnergyLabel,
	}
}

//LoadStyle reads a style from the TOML file path. Keys missing from the
//file keep their default values, and a missing file gives the default style.
func LoadStyle(path string) (*Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultStyle(), nil
		}
		return nil, err
	}
	s := DefaultStyle()
	if err := toml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("LoadStyle: %s: %w", path, err)
	}
	if err := s.check(); err != nil {
		return nil, fmt.Errorf("LoadStyle: %s: %w", path, err)
	}
	return s, nil
}

func (s *Style) check() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("figure size must be positive, got %gx%g", s.Width, s.Height)
	}
	for name, v := range map[string]float64{
		"title_size":  s.TitleSize,
		"label_size":  s.LabelSize,
		"tick_size":   s.TickSize,
		"legend_size": s.LegendSize,
		"axis_width":  s.AxisWidth,
		"tick_length": s.TickLength,
		"tick_width":  s.TickWidth,
		"line_width":  s.LineWidth,
		"guide_width": s.GuideWidth,
	} {
		if v < 0 {
			return fmt.Errorf("%s can't be negative (%g)", name, v)
		}
	}
	return nil
}

//Save writes the style to path as TOML, creating the directory if needed.
func (s *Style) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(s); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

//StylePath returns the place where the style file is installed,
//spaghetti/style.toml under the user configuration directory.
func StylePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "spaghetti", "style.toml"), nil
}

//InstallStyle writes the default style to StylePath, unless a file
//is already there. It returns the path and whether the file was written.
func InstallStyle() (string, bool, error) {
	path, err := StylePath()
	if err != nil {
		return "", false, err
	}
	if _, err := os.Stat(path); err == nil {
		return path, false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return path, false, err
	}
	return path, true, DefaultStyle().Save(path)
}

//Size returns the figure size.
func (s *Style) Size() (w, h vg.Length) {
	return vg.Length(s.Width) * vg.Inch, vg.Length(s.Height) * vg.Inch
}

//Apply sets fonts, line widths, ticks and legend placement of p.
func (s *Style) Apply(p *plot.Plot) {
	p.Title.TextStyle.Font.Size = vg.Points(s.TitleSize)
	for _, a := range []*plot.Axis{&p.X, &p.Y} {
		a.Label.TextStyle.Font.Size = vg.Points(s.LabelSize)
		a.Tick.Label.Font.Size = vg.Points(s.TickSize)
		a.LineStyle.Width = vg.Points(s.AxisWidth)
		a.Tick.LineStyle.Width = vg.Points(s.TickWidth)
		a.Tick.Length = vg.Points(s.TickLength)
	}
	p.Legend.TextStyle.Font.Size = vg.Points(s.LegendSize)
	p.Legend.Top = s.LegendTop
	p.Legend.Left = s.LegendLeft
}
