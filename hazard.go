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

package hazplume

import (
	"math"

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/hazplume/chemical"
)

// ChemicalLookup provides chemical properties by case-insensitive name.
type ChemicalLookup interface {
	Lookup(name string) (chemical.Record, bool)
}

// HazardLevel identifies a hazard zone.
type HazardLevel int

// Hazard levels from most to least severe.
const (
	Red HazardLevel = iota
	Orange
	Yellow
)

// HazardLevels lists the hazard levels from most to least severe.
var HazardLevels = []HazardLevel{Red, Orange, Yellow}

func (l HazardLevel) String() string {
	switch l {
	case Red:
		return "red"
	case Orange:
		return "orange"
	case Yellow:
		return "yellow"
	default:
		return "unknown"
	}
}

// HazardZone is the area where the ground-level concentration exceeds
// Threshold [mg/m³]. It extends Distance meters downwind of the source;
// SigmaY and SigmaZ are the dispersion coefficients at that distance.
type HazardZone struct {
	Level     HazardLevel
	Distance  float64
	Threshold float64
	SigmaY    float64
	SigmaZ    float64
}

// HazardZones holds the three hazard zones of a scenario.
type HazardZones struct {
	Red, Orange, Yellow HazardZone
}

// All returns the zones from most to least severe.
func (z HazardZones) All() []HazardZone {
	return []HazardZone{z.Red, z.Orange, z.Yellow}
}

// Thresholds returns the red, orange, and yellow concentration
// thresholds [mg/m³] for chemical name. Tiers missing from the
// chemical record are derived from the other tiers; if the chemical is
// unknown or has no usable limits, the default thresholds are returned.
func (m *Model) Thresholds(name string) [3]float64 {
	log := m.log().WithField("chemical", name)
	var rec chemical.Record
	var ok bool
	if m.Chemicals != nil {
		rec, ok = m.Chemicals.Lookup(name)
	}
	if !ok {
		log.Debug("hazplume: no chemical record; using default thresholds")
		return m.DefaultThresholds
	}
	ppm, derived := deriveTiers(rec, m.DerivedOrangeFraction, m.DerivedYellowFraction)
	if !(rec.MolecularWeight > 0) || !(ppm[Yellow] > 0) {
		log.Debug("hazplume: chemical record has no usable limits; using default thresholds")
		return m.DefaultThresholds
	}
	if derived {
		log.WithFields(logrus.Fields{
			"red":    ppm[Red],
			"orange": ppm[Orange],
			"yellow": ppm[Yellow],
		}).Debug("hazplume: derived missing exposure tiers")
	}
	var t [3]float64
	for i, v := range ppm {
		t[i] = PPMToMgPerM3(v, rec.MolecularWeight, m.MolarVolume)
	}
	return t
}

// deriveTiers fills in missing tiers of rec [ppm]. A missing red tier is
// replaced by IDLH; other missing tiers are scaled from a neighboring
// tier by orange = red·fo and yellow = orange·fy. Tiers are then made
// non-increasing in severity.
func deriveTiers(rec chemical.Record, fo, fy float64) (ppm [3]float64, derived bool) {
	r, o, y := rec.AEGL3, rec.AEGL2, rec.AEGL1
	if !(r > 0) && rec.IDLH > 0 {
		r, derived = rec.IDLH, true
	}
	if !(o > 0) && r > 0 && fo > 0 {
		o, derived = r*fo, true
	}
	if !(o > 0) && y > 0 && fy > 0 {
		o, derived = y/fy, true
	}
	if !(r > 0) && o > 0 && fo > 0 {
		r, derived = o/fo, true
	}
	if !(y > 0) && o > 0 && fy > 0 {
		y, derived = o*fy, true
	}
	o = math.Min(o, r)
	y = math.Min(y, o)
	return [3]float64{r, o, y}, derived
}

// HazardZones calculates the red, orange, and yellow hazard zones of s.
// A zone whose threshold is never reached has zero distance. Because the
// thresholds decrease in severity, the yellow zone always extends at
// least as far as the orange zone, and the orange zone at least as far
// as the red zone.
func (m *Model) HazardZones(s *Scenario) HazardZones {
	defer m.measure("hazard_zones")()
	t := m.Thresholds(s.Chemical)
	h := m.EffectiveHeight(s)
	maxC, maxX := m.maxConcentration(s, h)

	var zones [3]HazardZone
	for _, l := range HazardLevels {
		d := m.thresholdDistance(s, h, t[l], maxC, maxX)
		if d == 0 {
			m.log().WithFields(logrus.Fields{
				"zone":      l.String(),
				"threshold": t[l],
				"max":       maxC,
			}).Debug("hazplume: threshold not reached")
		}
		sigma := Sigmas(d, s.Stability)
		zones[l] = HazardZone{
			Level:     l,
			Distance:  d,
			Threshold: t[l],
			SigmaY:    sigma.SigmaY,
			SigmaZ:    sigma.SigmaZ,
		}
	}
	return HazardZones{Red: zones[Red], Orange: zones[Orange], Yellow: zones[Yellow]}
}

// Assessment collects the model results for a scenario.
type Assessment struct {
	Scenario Scenario
	Zones    HazardZones

	// MaxConcentration [mg/m³] occurs MaxDistance meters downwind.
	MaxConcentration, MaxDistance float64

	// PlumeRise and EffectiveHeight are in meters.
	PlumeRise, EffectiveHeight float64
}

// Assess calculates the hazard zones and summary values of s.
func (m *Model) Assess(s *Scenario) *Assessment {
	defer m.measure("assess")()
	a := &Assessment{
		Scenario:        *s,
		Zones:           m.HazardZones(s),
		PlumeRise:       m.PlumeRise(s),
		EffectiveHeight: m.EffectiveHeight(s),
	}
	a.MaxConcentration, a.MaxDistance = m.maxConcentration(s, a.EffectiveHeight)
	return a
}
