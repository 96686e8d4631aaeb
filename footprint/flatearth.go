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

package footprint

import (
	"math"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/proj"
)

// MetersPerDegreeLatitude is the length of one degree of latitude.
const MetersPerDegreeLatitude = 111320.

// minCosLatitude keeps longitude scaling finite at the poles.
const minCosLatitude = 1.e-3

// FlatEarth converts planar offsets [m] from an origin to longitude and
// latitude, treating the earth as flat near the origin. It is accurate to
// within a fraction of a percent over the tens of kilometers covered by a
// hazard zone.
type FlatEarth struct {
	// Origin is the point at zero offset; X is longitude and Y is latitude.
	Origin geom.Point

	metersPerDegreeLon float64
}

// NewFlatEarth returns a FlatEarth projection centered on origin.
func NewFlatEarth(origin geom.Point) FlatEarth {
	c := math.Max(math.Cos(origin.Y*math.Pi/180), minCosLatitude)
	return FlatEarth{Origin: origin, metersPerDegreeLon: MetersPerDegreeLatitude * c}
}

// Point returns the location east and north meters from the origin.
func (f FlatEarth) Point(east, north float64) geom.Point {
	return geom.Point{
		X: f.Origin.X + east/f.metersPerDegreeLon,
		Y: f.Origin.Y + north/MetersPerDegreeLatitude,
	}
}

// Offset returns the east and north distances [m] from the origin to p.
func (f FlatEarth) Offset(p geom.Point) (east, north float64) {
	return (p.X - f.Origin.X) * f.metersPerDegreeLon, (p.Y - f.Origin.Y) * MetersPerDegreeLatitude
}

// Transformer returns f as a transform from planar offsets to
// longitude and latitude, for use with geom.Geom.Transform.
func (f FlatEarth) Transformer() proj.Transformer {
	return func(x, y float64) (float64, float64, error) {
		p := f.Point(x, y)
		return p.X, p.Y, nil
	}
}

// TravelBearing returns the bearing [degrees clockwise from north] the
// plume travels toward, given the bearing the wind blows from.
func TravelBearing(windFrom float64) float64 {
	b := math.Mod(windFrom+180, 360)
	if b < 0 {
		b += 360
	}
	return b
}

// rotate converts an offset along and across the travel bearing [m]
// to east and north offsets. Positive across is to the right of the
// direction of travel.
func rotate(along, across, bearing float64) (east, north float64) {
	sin, cos := math.Sincos(bearing * math.Pi / 180)
	return along*sin + across*cos, along*cos - across*sin
}
