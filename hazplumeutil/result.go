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
	"io"
	"text/tabwriter"

	"github.com/ctessum/geom"
	"github.com/spatialmodel/hazplume"
	"github.com/spatialmodel/hazplume/chemical"
	"github.com/spatialmodel/hazplume/footprint"
)

// Result holds the hazard assessment of a scenario together with its
// map geometry.
type Result struct {
	Name string
	*hazplume.Assessment

	// Footprints are ordered from least to most severe.
	Footprints []footprint.Footprint
	Arrow      geom.Polygon
	Touchdown  footprint.Touchdown
}

// Evaluate assesses s and projects its hazard zones onto the map.
func Evaluate(p *footprint.Projector, name string, s *hazplume.Scenario) *Result {
	a := p.Model.Assess(s)
	u := p.Model.WindSpeed(s)
	return &Result{
		Name:       name,
		Assessment: a,
		Footprints: p.Zones(s.Source, a.Zones, s.WindDirection, u),
		Arrow:      p.WindArrow(s.Source, s.WindDirection),
		Touchdown:  p.GroundTouchdown(s, a.Zones.Yellow.Distance),
	}
}

// WriteTable writes a summary of results to w as aligned columns.
func WriteTable(w io.Writer, results ...*Result) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "scenario\tchemical\tclass\tmax (mg/m³)\tat (m)\trise (m)\tred (m)\torange (m)\tyellow (m)\ttouchdown (m)")
	for _, r := range results {
		s := r.Scenario
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.4g\t%.0f\t%.1f\t%.0f\t%.0f\t%.0f\t%.0f\n",
			r.Name, s.Chemical, s.Stability.Normalize(), r.MaxConcentration, r.MaxDistance,
			r.PlumeRise, r.Zones.Red.Distance, r.Zones.Orange.Distance, r.Zones.Yellow.Distance,
			r.Touchdown.Distance)
	}
	return tw.Flush()
}

// writeChemicals writes the thresholds of every chemical known to m.
func writeChemicals(w io.Writer, m *hazplume.Model) error {
	t, ok := m.Chemicals.(*chemical.Table)
	if !ok {
		return fmt.Errorf("hazplumeutil: the model has no chemical table")
	}
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "chemical\tred (mg/m³)\torange (mg/m³)\tyellow (mg/m³)")
	for _, name := range t.Names() {
		th := m.Thresholds(name)
		fmt.Fprintf(tw, "%s\t%.4g\t%.4g\t%.4g\n", name, th[hazplume.Red], th[hazplume.Orange], th[hazplume.Yellow])
	}
	return tw.Flush()
}
