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

// Package footprint turns hazard distances into map geometry: elliptical
// plume footprints, a wind direction arrow, and the point where an
// elevated plume reaches the ground.
package footprint

import (
	"math"

	"github.com/ctessum/geom"
	"github.com/spatialmodel/hazplume"
)

// Projector creates map geometry for hazard zones. Its fields are
// read-only after creation.
type Projector struct {
	// Model supplies the plume rise used by GroundTouchdown.
	Model *hazplume.Model

	// MinAspect and MaxAspect bound the ratio of footprint length to width.
	MinAspect, MaxAspect float64

	// UpwindOverhang is the fraction of the footprint's semi-major axis
	// that lies upwind of the source.
	UpwindOverhang float64

	// Asymmetry is the fractional widening of the footprint at its
	// downwind end.
	Asymmetry float64

	// Steps is the number of vertices in a footprint polygon.
	Steps int

	// ArrowLength and ArrowHalfWidth give the size of the wind arrow [m].
	ArrowLength, ArrowHalfWidth float64

	// TouchdownMultiplier relates effective height times wind speed to
	// touchdown distance, and MaxTouchdownFraction caps the touchdown
	// distance as a fraction of the yellow zone distance.
	TouchdownMultiplier, MaxTouchdownFraction float64
}

// NewProjector returns a projector with the standard settings.
func NewProjector(m *hazplume.Model) *Projector {
	return &Projector{
		Model:                m,
		MinAspect:            2.5,
		MaxAspect:            8,
		UpwindOverhang:       0.1,
		Asymmetry:            0.3,
		Steps:                72,
		ArrowLength:          300,
		ArrowHalfWidth:       20,
		TouchdownMultiplier:  10,
		MaxTouchdownFraction: 0.9,
	}
}

// AspectRatio returns the length-to-width ratio of a footprint at wind
// speed u [m/s]. Stronger winds make longer, narrower plumes.
func (p *Projector) AspectRatio(u float64) float64 {
	a := 2.5 + 0.5*math.Max(u, 0)
	return math.Min(math.Max(a, p.MinAspect), p.MaxAspect)
}

// WidthFactor scales footprint width for the turbulence implied by wind
// speed u [m/s]: light winds go with unstable, wide plumes and strong
// winds with narrow ones.
func WidthFactor(u float64) float64 {
	switch {
	case u < 2:
		return 1.3
	case u < 6:
		return 1.0
	default:
		return 0.8
	}
}

// FootprintPolygon returns a polygon approximating the ground area within
// distance meters of source in the downwind direction. windFrom is the
// bearing the wind blows from and windSpeed is in m/s. The polygon is an
// ellipse with the source just inside its upwind edge; its single ring
// is implicitly closed. It returns nil if distance is not positive.
func (p *Projector) FootprintPolygon(source geom.Point, distance, windFrom, windSpeed float64) geom.Polygon {
	if !(distance > 0) || p.Steps < 4 {
		return nil
	}
	bearing := TravelBearing(windFrom)
	fe := NewFlatEarth(source)

	a := distance / (2 - p.UpwindOverhang) // semi-major axis
	center := a * (1 - p.UpwindOverhang)
	b := a / p.AspectRatio(windSpeed) * WidthFactor(windSpeed)

	ring := make(geom.Path, p.Steps)
	for i := range ring {
		theta := 2 * math.Pi * float64(i) / float64(p.Steps)
		sin, cos := math.Sincos(theta)
		along := center + a*cos
		t := (1 + cos) / 2 // 0 at the upwind edge, 1 at the downwind edge
		across := b * sin * (1 + p.Asymmetry*t)
		ring[i] = fe.Point(rotate(along, across, bearing))
	}
	return geom.Polygon{ring}
}

// WindArrow returns an arrow-shaped polygon starting at source and
// pointing downwind, for showing wind direction. Its size does not
// depend on the hazard distance.
func (p *Projector) WindArrow(source geom.Point, windFrom float64) geom.Polygon {
	bearing := TravelBearing(windFrom)
	fe := NewFlatEarth(source)
	l, w := p.ArrowLength, p.ArrowHalfWidth
	shape := [][2]float64{
		{0, -w},
		{0.7 * l, -w},
		{0.6 * l, -3 * w}, // notch
		{l, 0},
		{0.6 * l, 3 * w}, // notch
		{0.7 * l, w},
		{0, w},
	}
	ring := make(geom.Path, len(shape))
	for i, v := range shape {
		ring[i].X, ring[i].Y = rotate(v[0], v[1], bearing)
	}
	g, err := geom.Polygon{ring}.Transform(fe.Transformer())
	if err != nil {
		panic(err) // FlatEarth transforms can't fail.
	}
	return g.(geom.Polygon)
}

// Footprint is the map geometry of one hazard zone.
type Footprint struct {
	Level    hazplume.HazardLevel
	Distance float64
	Polygon  geom.Polygon
}

// Zones returns footprints for each zone of z with a positive distance,
// from least to most severe so that more severe zones draw on top.
func (p *Projector) Zones(source geom.Point, z hazplume.HazardZones, windFrom, windSpeed float64) []Footprint {
	all := z.All()
	var o []Footprint
	for i := len(all) - 1; i >= 0; i-- {
		zone := all[i]
		if !(zone.Distance > 0) {
			continue
		}
		o = append(o, Footprint{
			Level:    zone.Level,
			Distance: zone.Distance,
			Polygon:  p.FootprintPolygon(source, zone.Distance, windFrom, windSpeed),
		})
	}
	return o
}
