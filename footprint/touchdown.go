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
	"github.com/spatialmodel/hazplume"
)

// Touchdown is the estimated location where the centerline of an
// elevated plume reaches the ground.
type Touchdown struct {
	Point geom.Point

	// Distance is the downwind distance from the source [m].
	Distance float64

	// EffectiveHeight is the release height plus buoyant rise [m].
	EffectiveHeight float64
}

// GroundTouchdown estimates where the plume of s reaches the ground.
// The touchdown distance is never more than MaxTouchdownFraction of
// yellowDistance, and is zero for ground-level releases without
// buoyant rise.
func (p *Projector) GroundTouchdown(s *hazplume.Scenario, yellowDistance float64) Touchdown {
	m := p.Model
	if m == nil {
		m = hazplume.NewModel(nil)
	}
	h := math.Max(s.ReleaseHeight, 0) + m.BuoyantRise(s)
	x := p.TouchdownMultiplier * h * m.WindSpeed(s)
	x = math.Min(x, p.MaxTouchdownFraction*yellowDistance)
	if !(x > 0) {
		x = 0
	}
	fe := NewFlatEarth(s.Source)
	return Touchdown{
		Point:           fe.Point(rotate(x, 0, TravelBearing(s.WindDirection))),
		Distance:        x,
		EffectiveHeight: h,
	}
}
