/*
 * colors.go, part of spaghetti.
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
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

//Single-letter color codes.
var letters = map[string]color.RGBA{
	"b": {0, 0, 255, 255},
	"g": {0, 128, 0, 255},
	"r": {255, 0, 0, 255},
	"c": {0, 191, 191, 255},
	"m": {191, 0, 191, 255},
	"y": {191, 191, 0, 255},
	"k": {0, 0, 0, 255},
	"w": {255, 255, 255, 255},
}

//The "tab:" qualitative palette.
var tableau = map[string]string{
	"blue":   "#1f77b4",
	"orange": "#ff7f0e",
	"green":  "#2ca02c",
	"red":    "#d62728",
	"purple": "#9467bd",
	"brown":  "#8c564b",
	"pink":   "#e377c2",
	"gray":   "#7f7f7f",
	"grey":   "#7f7f7f",
	"olive":  "#bcbd22",
	"cyan":   "#17becf",
}

//ParseColor returns the color named by s, which can be a single letter
//(b, g, r, c, m, y, k, w), an SVG color name (dodgerblue), a tab: color
//(tab:orange) or a hex code (#rgb, #rrggbb, #rrggbbaa).
func ParseColor(s string) (color.Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if c, ok := letters[name]; ok {
		return c, nil
	}
	if t, ok := strings.CutPrefix(name, "tab:"); ok {
		hex, ok := tableau[t]
		if !ok {
			return nil, fmt.Errorf("ParseColor: unknown color %q", s)
		}
		name = hex
	}
	if strings.HasPrefix(name, "#") {
		return parseHex(name)
	}
	if c, ok := colornames.Map[name]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("ParseColor: unknown color %q", s)
}

func parseHex(s string) (color.Color, error) {
	h := s[1:]
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return nil, fmt.Errorf("ParseColor: bad hex color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("ParseColor: bad hex color %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

//ParseColors parses every element of names with ParseColor.
func ParseColors(names []string) ([]color.Color, error) {
	ret := make([]color.Color, 0, len(names))
	for _, n := range names {
		c, err := ParseColor(n)
		if err != nil {
			return nil, err
		}
		ret = append(ret, c)
	}
	return ret, nil
}

//Fat band colors, one row per atom, one column per orbital.
var defaultColors = [3][5]string{
	{"dodgerblue", "lightcoral", "gold", "forestgreen", "magenta"},
	{"b", "r", "g", "y", "c"},
	{"royalblue", "salmon", "lawngreen", "orange", "deeppink"},
}

//DefaultColor returns the color for the orbital orbital of the atom in
//position atom of a fat band plot. Both indexes wrap around.
func DefaultColor(atom, orbital int) color.Color {
	c, _ := ParseColor(defaultColors[mod(atom, 3)][mod(orbital, 5)])
	return c
}

func mod(a, b int) int {
	return ((a % b) + b) % b
}

//SeriesColor returns the key-th of steps colors spread over the hue circle,
//skipping the yellows, which are hard to see on white.
func SeriesColor(key, steps int) color.Color {
	if steps < 1 {
		steps = 1
	}
	hp := float64(key)*260/float64(steps) + 20
	h := hp + 20
	if hp < 55 {
		h = hp - 20
	}
	r, g, b := hsv2rgb(math.Mod(h, 360), 1, 1)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

//hsv2rgb takes hue (0-360), saturation and value (0-1), returns r,g,b (0-255).
func hsv2rgb(h, s, v float64) (uint8, uint8, uint8) {
	conv := 255 * v
	if s == 0 {
		return uint8(conv), uint8(conv), uint8(conv)
	}
	h /= 60
	i := math.Floor(h)
	f := h - i
	p := 1 - s
	q := 1 - s*f
	t := 1 - s*(1-f)
	var r, g, b float64
	switch int(i) {
	case 0:
		r, g, b = 1, t, p
	case 1:
		r, g, b = q, 1, p
	case 2:
		r, g, b = p, 1, t
	case 3:
		r, g, b = p, q, 1
	case 4:
		r, g, b = t, p, 1
	default:
		r, g, b = 1, p, q
	}
	return uint8(r * conv), uint8(g * conv), uint8(b * conv)
}

//Glyph returns a marker shape for the i-th series, so several series
//can be told apart without colors. It cycles after 6 shapes.
func Glyph(i int) draw.GlyphDrawer {
	switch mod(i, 6) {
	case 0:
		return draw.CircleGlyph{}
	case 1:
		return draw.SquareGlyph{}
	case 2:
		return draw.TriangleGlyph{}
	case 3:
		return draw.PyramidGlyph{}
	case 4:
		return draw.RingGlyph{}
	default:
		return draw.BoxGlyph{}
	}
}

//Dashes returns the dash pattern for a line style given as "-", "--",
//":" or "-." (or solid, dashed, dotted, dashdot), scaled with the line width.
func Dashes(ls string, width vg.Length) ([]vg.Length, error) {
	var pattern []float64
	switch strings.TrimSpace(ls) {
	case "-", "solid", "":
		return nil, nil
	case "--", "dashed":
		pattern = []float64{3.7, 1.6}
	case ":", "dotted":
		pattern = []float64{1, 1.65}
	case "-.", "dashdot":
		pattern = []float64{6.4, 1.6, 1, 1.6}
	default:
		return nil, fmt.Errorf("Dashes: unknown line style %q", ls)
	}
	if width <= 0 {
		width = 1
	}
	d := make([]vg.Length, len(pattern))
	for i, v := range pattern {
		d[i] = vg.Length(v) * width
	}
	return d, nil
}

//dotted is the style of the reference lines.
func dotted(width vg.Length) draw.LineStyle {
	d, _ := Dashes(":", width)
	return draw.LineStyle{Color: color.Black, Width: width, Dashes: d}
}
