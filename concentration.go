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

import "math"

// Scale factors between the scenario and output units.
const (
	gramsPerKilogram  = 1000. // emission rate kg/s -> g/s
	milligramsPerGram = 1000. // concentration g/m³ -> mg/m³
)

// ConcentrationSample is a concentration [mg/m³] at a receptor located
// X meters downwind, Y meters crosswind, and Z meters above the ground.
type ConcentrationSample struct {
	X, Y, Z float64
	Value   float64
}

// Concentration returns the concentration [mg/m³] at downwind distance x,
// crosswind offset y, and height z [m], using the Gaussian plume equation
// with total reflection at the ground. It is zero at and upwind of
// the source.
func (m *Model) Concentration(s *Scenario, x, y, z float64) float64 {
	if !(x > 0) {
		return 0
	}
	return m.concentration(s, m.EffectiveHeight(s), x, y, z)
}

// concentration is Concentration with a precomputed effective height h.
func (m *Model) concentration(s *Scenario, h, x, y, z float64) float64 {
	if !(x > 0) {
		return 0
	}
	sy := SigmaY(x, s.Stability)
	sz := SigmaZ(x, s.Stability)
	if !(sy > 0) || !(sz > 0) {
		return 0
	}
	q := s.EmissionRate * gramsPerKilogram
	u := m.WindSpeed(s)

	crosswind := math.Exp(-y * y / (2 * sy * sy))
	vertical := math.Exp(-(z-h)*(z-h)/(2*sz*sz)) + math.Exp(-(z+h)*(z+h)/(2*sz*sz))

	c := q / (2 * math.Pi * u * sy * sz) * crosswind * vertical * milligramsPerGram
	if math.IsNaN(c) || math.IsInf(c, 0) || c < 0 {
		return 0
	}
	return c
}

// CenterlineProfile returns the ground-level centerline concentration at
// each of the downwind distances in xs.
func (m *Model) CenterlineProfile(s *Scenario, xs []float64) []ConcentrationSample {
	h := m.EffectiveHeight(s)
	o := make([]ConcentrationSample, len(xs))
	for i, x := range xs {
		o[i] = ConcentrationSample{X: x, Value: m.concentration(s, h, x, 0, 0)}
	}
	return o
}
