/*
 * save.go, part of spaghetti.
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
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

//Formats are the output formats, by file extension.
var Formats = []string{"png", "svg", "pdf", "eps", "jpg", "jpeg", "tif", "tiff"}

//Stdout is the file name that sends the figure, as PNG, to the standard output.
const Stdout = "-"

//Format returns the output format for the file name, from its extension.
func Format(name string) (string, error) {
	if name == Stdout {
		return "png", nil
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	for _, f := range Formats {
		if f == ext {
			return ext, nil
		}
	}
	return "", fmt.Errorf("Format: can't write %q, use one of %s", name, strings.Join(Formats, ", "))
}

//Save writes p, of size w x h, to the file name, in the format given by its
//extension. If name is Stdout, a PNG goes to os.Stdout.
func Save(p *plot.Plot, w, h vg.Length, name string) error {
	format, err := Format(name)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(w, h, format)
	if err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	return write(wt, name)
}

//SaveGrid draws plots, arranged in rows and columns, into one figure of
//size w x h and writes it like Save does. Nil elements leave empty panels.
func SaveGrid(plots [][]*plot.Plot, w, h vg.Length, name string) error {
	format, err := Format(name)
	if err != nil {
		return err
	}
	wt, err := Grid(plots, w, h, format)
	if err != nil {
		return fmt.Errorf("SaveGrid: %w", err)
	}
	return write(wt, name)
}

//Grid draws plots, arranged in rows and columns, into a canvas of size
//w x h in the given format. Every row must have the same length.
func Grid(plots [][]*plot.Plot, w, h vg.Length, format string) (io.WriterTo, error) {
	rows := len(plots)
	if rows == 0 || len(plots[0]) == 0 {
		return nil, fmt.Errorf("Grid: no plots")
	}
	cols := len(plots[0])
	for i, r := range plots {
		if len(r) != cols {
			return nil, fmt.Errorf("Grid: row %d has %d plots, expected %d", i, len(r), cols)
		}
	}
	img, err := draw.NewFormattedCanvas(w, h, format)
	if err != nil {
		return nil, err
	}
	dc := draw.New(img)
	t := draw.Tiles{
		Rows:      rows,
		Cols:      cols,
		PadX:      vg.Millimeter,
		PadY:      vg.Millimeter,
		PadTop:    vg.Points(2),
		PadBottom: vg.Points(2),
		PadLeft:   vg.Points(2),
		PadRight:  vg.Points(2),
	}
	canvases := plot.Align(plots, t, dc)
	for i, r := range plots {
		for j, p := range r {
			if p != nil {
				p.Draw(canvases[i][j])
			}
		}
	}
	return img, nil
}

func write(wt io.WriterTo, name string) error {
	if name == Stdout {
		_, err := wt.WriteTo(os.Stdout)
		return err
	}
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if _, err := wt.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
