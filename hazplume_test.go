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
	"testing"

	"github.com/ctessum/geom"
	"github.com/spatialmodel/hazplume/chemical"
)

const testTolerance = 1.e-8

// different returns whether a and b differ by more than the relative
// tolerance.
func different(a, b, tolerance float64) bool {
	if 2*math.Abs(a-b)/math.Abs(a+b) > tolerance || math.IsNaN(a) || math.IsNaN(b) {
		return true
	}
	return false
}

func absDifferent(a, b, tolerance float64) bool {
	if math.Abs(a-b) > tolerance {
		return true
	}
	return false
}

// chlorineRelease is a 1 kg/s ground-level chlorine release in neutral
// conditions.
func chlorineRelease() *Scenario {
	return &Scenario{
		EmissionRate:       1,
		WindSpeed:          5,
		WindDirection:      270,
		Stability:          ClassD,
		AmbientTemperature: 20,
		ReleaseTemperature: 20,
		Source:             geom.Point{X: -93.26, Y: 44.98},
		Chemical:           "chlorine",
	}
}

// hotStack is an elevated release warmer than the surrounding air.
func hotStack(class StabilityClass) *Scenario {
	return &Scenario{
		EmissionRate:       1,
		ReleaseHeight:      10,
		WindSpeed:          5,
		Stability:          class,
		AmbientTemperature: 20,
		ReleaseTemperature: 120,
		Chemical:           "chlorine",
	}
}

func testModel() *Model {
	return NewModel(chemical.Default())
}

func TestDefaultConfig(t *testing.T) {
	m := NewModel(nil)
	if m.GridMin != 10 || m.GridMax != 50000 || m.GridRatio != 1.1 {
		t.Errorf("grid = %g, %g, %g", m.GridMin, m.GridMax, m.GridRatio)
	}
	if m.SearchUpperBound != 100000 || m.SearchTolerance != 10 {
		t.Errorf("search = %g, %g", m.SearchUpperBound, m.SearchTolerance)
	}
	if m.Log == nil {
		t.Error("model should have a logger")
	}
}

func TestWindSpeed(t *testing.T) {
	m := NewModel(nil)
	for _, test := range []struct{ in, want float64 }{
		{in: 5, want: 5},
		{in: 0.5, want: 0.5},
		{in: 0.1, want: 0.5},
		{in: 0, want: 0.5},
		{in: -3, want: 0.5},
		{in: math.NaN(), want: 0.5},
	} {
		s := &Scenario{WindSpeed: test.in}
		if got := m.WindSpeed(s); got != test.want {
			t.Errorf("WindSpeed(%g) = %g, want %g", test.in, got, test.want)
		}
	}
}

func TestParseStability(t *testing.T) {
	for in, want := range map[string]StabilityClass{
		"A": ClassA, "b": ClassB, " c ": ClassC, "D": ClassD,
		"e": ClassE, "F": ClassF, "G": ClassD, "": ClassD, "stable": ClassD,
	} {
		if got := ParseStability(in); got != want {
			t.Errorf("ParseStability(%q) = %s, want %s", in, got, want)
		}
	}
	if !ClassE.Stable() || !ClassF.Stable() || ClassD.Stable() || StabilityClass("x").Stable() {
		t.Error("wrong stable classes")
	}
}

func TestScenarioString(t *testing.T) {
	a, b := chlorineRelease(), chlorineRelease()
	b.Chemical = "CHLORINE"
	if a.String() != b.String() {
		t.Errorf("chemical name case changed the key: %s != %s", a, b)
	}
	b.WindSpeed = 6
	if a.String() == b.String() {
		t.Error("different scenarios have the same key")
	}
}
