/*
Copyright © 2019 the HazPlume authors.
This file is part of HazPlume.

HazPlume is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

HazPlume is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with HazPlume.  If not, see <http://www.gnu.org/licenses/>.
*/

package hazplumeutil

import (
	"fmt"
	"image/color"

	"github.com/spatialmodel/hazplume"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var zoneColors = map[hazplume.HazardLevel]color.Color{
	hazplume.Red:    color.NRGBA{215, 25, 28, 255},
	hazplume.Orange: color.NRGBA{253, 174, 97, 255},
	hazplume.Yellow: color.NRGBA{230, 200, 0, 255},
}

// ConcentrationChart returns a log-log plot of the ground-level centerline
// concentration of s over the model search grid, with a horizontal line
// at each hazard threshold.
func ConcentrationChart(m *hazplume.Model, s *hazplume.Scenario) (*plot.Plot, error) {
	profile := m.CenterlineProfile(s, m.Grid())
	var positive []hazplume.ConcentrationSample
	for _, c := range profile {
		if c.Value > 0 { // zeros can't be shown on a log scale
			positive = append(positive, c)
		}
	}
	xy := make(plotter.XYs, len(positive))
	for i, c := range positive {
		xy[i].X, xy[i].Y = c.X, c.Value
	}
	if len(xy) < 2 {
		return nil, fmt.Errorf("hazplumeutil: concentration is zero everywhere; nothing to plot")
	}

	p, err := plot.New()
	if err != nil {
		return nil, err
	}
	p.Title.Text = fmt.Sprintf("%s, class %s, %g m/s", s.Chemical, s.Stability.Normalize(), m.WindSpeed(s))
	p.X.Label.Text = "Downwind distance (m)"
	p.Y.Label.Text = "Concentration (mg/m³)"
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{}
	p.Y.Tick.Marker = plot.LogTicks{}
	p.Legend.Top = true

	l, err := plotter.NewLine(xy)
	if err != nil {
		return nil, err
	}
	l.Width = vg.Points(1.5)
	p.Add(l)
	p.Legend.Add("centerline", l)

	xmin, xmax := xy[0].X, xy[len(xy)-1].X
	t := m.Thresholds(s.Chemical)
	for _, level := range hazplume.HazardLevels {
		if !(t[level] > 0) {
			continue
		}
		tl, err := plotter.NewLine(plotter.XYs{{X: xmin, Y: t[level]}, {X: xmax, Y: t[level]}})
		if err != nil {
			return nil, err
		}
		tl.Color = zoneColors[level]
		tl.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		p.Add(tl)
		p.Legend.Add(level.String(), tl)
	}
	return p, nil
}

// SaveChart writes the concentration chart of s to path. The image format
// is taken from the file extension.
func SaveChart(m *hazplume.Model, s *hazplume.Scenario, path string) error {
	p, err := ConcentrationChart(m, s)
	if err != nil {
		return err
	}
	if err = p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("hazplumeutil: saving chart: %v", err)
	}
	return nil
}
