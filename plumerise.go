/*
Copyright (C) 2013-2014 Regents of the University of Minnesota.
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

import "math"

const (
	g           = 9.80665 // m/s2
	zeroCelsius = 273.15  // K
)

// stack returns the stack diameter [m] and exit velocity [m/s] of s,
// substituting the configured defaults for omitted values.
func (m *Model) stack(s *Scenario) (diam, vel float64) {
	diam, vel = s.StackDiameter, s.ExitVelocity
	if !(diam > 0) {
		diam = m.DefaultStackDiameter
	}
	if !(vel > 0) {
		vel = m.DefaultExitVelocity
	}
	return diam, vel
}

// Fluxes returns the buoyancy flux fb [m4/s3] and momentum flux fm [m4/s2]
// of the release described by s.
func (m *Model) Fluxes(s *Scenario) (fb, fm float64) {
	diam, vel := m.stack(s)
	ta := s.AmbientTemperature + zeroCelsius
	ts := s.ReleaseTemperature + zeroCelsius
	if !(ts > 0) || !(ta > 0) {
		return 0, 0
	}
	fb = g * vel * diam * diam * (ts - ta) / (4 * ts)
	fm = vel * vel * diam * diam * ta / (4 * ts)
	return fb, fm
}

// BuoyantRise returns the plume rise [m] caused by buoyancy, which is
// zero unless the release is warmer than the ambient air.
// Unstable and neutral conditions use the ASME (1973) relation
// as described in Seinfeld and Pandis; stable conditions use
// the Briggs stable-plume relation with a fixed stability parameter.
// The ASME relation scales with the release height, so a warm release
// at ground level does not rise in classes A through D.
func (m *Model) BuoyantRise(s *Scenario) float64 {
	if !(s.ReleaseTemperature > s.AmbientTemperature) {
		return 0
	}
	fb, _ := m.Fluxes(s)
	if !(fb > 0) {
		return 0
	}
	u := m.WindSpeed(s)
	var deltaH float64
	if s.Stability.Stable() {
		deltaH = 2.6 * math.Cbrt(fb/(u*m.StableStabilityParameter))
	} else {
		deltaH = 7.4 * math.Cbrt(fb*s.ReleaseHeight*s.ReleaseHeight) / u
	}
	return nonNegative(deltaH)
}

// PlumeRise returns the height [m] the release rises above its release
// point. Buoyant releases use BuoyantRise and get no momentum rise, even
// when BuoyantRise is zero (warm ground-level releases in classes A-D).
// All other releases are dominated by momentum and rise 3·v·d/u, using
// the default stack diameter and exit velocity when they are omitted.
// With the defaults a cold release in a 5 m/s wind rises 6 m.
func (m *Model) PlumeRise(s *Scenario) float64 {
	if s.ReleaseTemperature > s.AmbientTemperature {
		if fb, _ := m.Fluxes(s); fb > 0 {
			return m.BuoyantRise(s)
		}
	}
	// Plume is dominated by momentum forces
	diam, vel := m.stack(s)
	return nonNegative(3 * vel * diam / m.WindSpeed(s))
}

// EffectiveHeight returns the release height plus plume rise [m].
func (m *Model) EffectiveHeight(s *Scenario) float64 {
	return nonNegative(s.ReleaseHeight) + m.PlumeRise(s)
}

// nonNegative replaces negative and non-finite values with zero.
func nonNegative(v float64) float64 {
	if !(v > 0) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
