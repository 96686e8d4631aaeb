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

// Package hazplume is a Gaussian plume model for accidental chemical releases.
// It calculates ground-reflected concentrations downwind of a point source
// using Pasquill-Gifford dispersion coefficients and ASME/Briggs plume rise,
// and derives red, orange, and yellow hazard zones from chemical exposure
// limits. All calculations are pure functions of a Scenario and are safe
// for concurrent use.
package hazplume

import (
	"github.com/sirupsen/logrus"
)

// Version gives the version number.
const Version = "1.2.0"

// Config holds the constants that control the numerical behavior of the
// model. The values returned by DefaultConfig pin the search grid and
// tolerances that the hazard distances depend on; changing them changes
// the results.
type Config struct {
	// MinWindSpeed is the floor applied to wind speed before it is used
	// as a divisor [m/s].
	MinWindSpeed float64

	// DefaultStackDiameter and DefaultExitVelocity are used for plume rise
	// when a scenario does not specify them [m and m/s].
	DefaultStackDiameter float64
	DefaultExitVelocity  float64

	// StableStabilityParameter is the stability parameter s used for
	// buoyant plume rise in stable (E and F) conditions [1/s²].
	StableStabilityParameter float64

	// GridMin, GridMax, and GridRatio define the geometric sequence of
	// downwind distances scanned for the maximum concentration [m].
	GridMin, GridMax, GridRatio float64

	// SearchUpperBound is the far end of the threshold distance search and
	// SearchTolerance is the bracket width at which it stops [m].
	SearchUpperBound, SearchTolerance float64

	// MolarVolume is the volume of one mole of gas used to convert
	// mixing ratios to mass concentrations [L/mol].
	MolarVolume float64

	// DerivedOrangeFraction is the ratio of the orange to the red threshold
	// and DerivedYellowFraction is the ratio of the yellow to the orange
	// threshold, used when a chemical record is missing a tier.
	DerivedOrangeFraction, DerivedYellowFraction float64

	// DefaultThresholds holds the red, orange, and yellow thresholds
	// used when no chemical limits are available [mg/m³].
	DefaultThresholds [3]float64
}

// DefaultConfig returns the standard model configuration.
func DefaultConfig() Config {
	return Config{
		MinWindSpeed:             0.5,
		DefaultStackDiameter:     1.0,
		DefaultExitVelocity:      10.0,
		StableStabilityParameter: 0.000875,
		GridMin:                  10,
		GridMax:                  50000,
		GridRatio:                1.1,
		SearchUpperBound:         100000,
		SearchTolerance:          10,
		MolarVolume:              24.45,
		DerivedOrangeFraction:    0.2,
		DerivedYellowFraction:    0.1,
		DefaultThresholds:        [3]float64{100, 25, 5},
	}
}

// Model evaluates release scenarios. A Model is not modified by any of its
// methods, so one Model can be shared between goroutines.
type Model struct {
	Config

	// Chemicals provides exposure limits for hazard zones. If it is nil,
	// the default thresholds are used for every chemical.
	Chemicals ChemicalLookup

	// Log receives debugging information about fallbacks.
	Log logrus.FieldLogger

	// Measurer, if set, times the top-level operations.
	Measurer Measurer
}

// NewModel returns a model with the default configuration that looks up
// exposure limits in chemicals.
func NewModel(chemicals ChemicalLookup) *Model {
	return &Model{
		Config:    DefaultConfig(),
		Chemicals: chemicals,
		Log:       logrus.StandardLogger(),
	}
}

func (m *Model) log() logrus.FieldLogger {
	if m.Log == nil {
		return logrus.StandardLogger()
	}
	return m.Log
}

// WindSpeed returns the wind speed of s [m/s], floored at MinWindSpeed.
func (m *Model) WindSpeed(s *Scenario) float64 {
	floor := m.MinWindSpeed
	if !(floor > 0) {
		floor = DefaultConfig().MinWindSpeed
	}
	if !(s.WindSpeed > floor) {
		return floor
	}
	return s.WindSpeed
}
