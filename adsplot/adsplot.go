/*
 * adsplot.go, part of adsorb
 *
 * Copyright 2026 Raul Mera <rauldotmeraatusachdotcl>
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
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

//Package adsplot renders the gyration-radius histograms produced by the
//adsorption analysis as PNG figures.
package adsplot

import (
	"fmt"
	"image/color"

	"github.com/rmera/adsorb/histo"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Histo plots the histogram d, bin centers against counts, and saves it as a
// PNG to filename.
func Histo(d *histo.Data, title, filename string) error {
	if d == nil {
		return fmt.Errorf("adsplot.Histo: given nil histogram")
	}
	centers := d.Centers()
	counts := d.View()
	pts := make(plotter.XYs, len(centers))
	for i := range pts {
		pts[i].X = centers[i]
		pts[i].Y = counts[i]
	}
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Rg"
	p.Y.Label.Text = "Count"
	p.Add(plotter.NewGrid())
	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return err
	}
	line.Color = color.RGBA{B: 255, A: 255}
	points.GlyphStyle.Color = color.RGBA{R: 255, A: 255}
	p.Add(line, points)
	return p.Save(12*vg.Centimeter, 8*vg.Centimeter, filename)
}
