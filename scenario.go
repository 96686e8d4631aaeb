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
	"fmt"
	"strings"

	"github.com/ctessum/geom"
)

// StabilityClass is a Pasquill-Gifford atmospheric stability category,
// from A (very unstable) to F (very stable).
type StabilityClass string

// Stability classes.
const (
	ClassA StabilityClass = "A"
	ClassB StabilityClass = "B"
	ClassC StabilityClass = "C"
	ClassD StabilityClass = "D"
	ClassE StabilityClass = "E"
	ClassF StabilityClass = "F"
)

// StabilityClasses lists the stability classes from most to least unstable.
var StabilityClasses = []StabilityClass{ClassA, ClassB, ClassC, ClassD, ClassE, ClassF}

// ParseStability converts a stability symbol to a StabilityClass.
// Symbols are case-insensitive. Unrecognized symbols are
// neutral (class D).
func ParseStability(symbol string) StabilityClass {
	c := StabilityClass(strings.ToUpper(strings.TrimSpace(symbol)))
	if c.index() < 0 {
		return ClassD
	}
	return c
}

// index returns the position of c in StabilityClasses, or -1.
func (c StabilityClass) index() int {
	switch c {
	case ClassA:
		return 0
	case ClassB:
		return 1
	case ClassC:
		return 2
	case ClassD:
		return 3
	case ClassE:
		return 4
	case ClassF:
		return 5
	default:
		return -1
	}
}

// Normalize returns c if it is a recognized class and ClassD otherwise.
func (c StabilityClass) Normalize() StabilityClass {
	return ParseStability(string(c))
}

// Stable returns whether c is one of the stable classes E and F.
func (c StabilityClass) Stable() bool {
	n := c.Normalize()
	return n == ClassE || n == ClassF
}

// Scenario describes a single release and the weather it occurs in.
// Optional fields are omitted by leaving them at zero.
type Scenario struct {
	// EmissionRate is the release rate [kg/s].
	EmissionRate float64

	// ReleaseHeight is the physical height of the release [m].
	ReleaseHeight float64

	// WindSpeed [m/s] and WindDirection [degrees clockwise from north]
	// describe the wind. WindDirection is the bearing the wind
	// blows from.
	WindSpeed, WindDirection float64

	Stability StabilityClass

	// AmbientTemperature and ReleaseTemperature are in °C.
	AmbientTemperature, ReleaseTemperature float64

	// Source is the release location; X is longitude and Y is latitude.
	Source geom.Point

	// Chemical identifies the released substance.
	Chemical string

	// StackDiameter [m] and ExitVelocity [m/s] describe the release
	// opening. Zero values are replaced by the model defaults.
	StackDiameter, ExitVelocity float64

	// Humidity [%] and Pressure [kPa] do not affect the results; they are
	// carried through to map output.
	Humidity, Pressure float64
}

// String returns a description of the scenario that can be used as a
// cache key.
func (s Scenario) String() string {
	return fmt.Sprintf("%s q=%g h=%g u=%g dir=%g class=%s ta=%g tr=%g src=(%g,%g) d=%g v=%g rh=%g p=%g",
		strings.ToLower(s.Chemical), s.EmissionRate, s.ReleaseHeight, s.WindSpeed,
		s.WindDirection, s.Stability.Normalize(), s.AmbientTemperature,
		s.ReleaseTemperature, s.Source.X, s.Source.Y, s.StackDiameter,
		s.ExitVelocity, s.Humidity, s.Pressure)
}
