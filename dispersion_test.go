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
)

func TestSigmas(t *testing.T) {
	for _, test := range []struct {
		x      float64
		class  StabilityClass
		sy, sz float64
	}{
		{x: 1000, class: ClassA, sy: 213, sz: 440},
		{x: 1000, class: ClassD, sy: 68, sz: 32},
		{x: 1000, class: ClassF, sy: 34, sz: 12},
		{x: 1000, class: "Z", sy: 68, sz: 32},
		{x: 100, class: ClassD, sy: 68 * math.Pow(0.1, 0.894), sz: 32 * math.Pow(0.1, 0.78)},
		{x: 5, class: ClassD, sy: 68 * math.Pow(0.005, 0.894), sz: 32 * math.Pow(0.01, 0.78)},
		{x: 0, class: ClassD, sy: 0, sz: 0},
		{x: -10, class: ClassB, sy: 0, sz: 0},
	} {
		s := Sigmas(test.x, test.class)
		if absDifferent(s.SigmaY, test.sy, testTolerance) {
			t.Errorf("σy(%g, %s) = %g, want %g", test.x, test.class, s.SigmaY, test.sy)
		}
		if absDifferent(s.SigmaZ, test.sz, testTolerance) {
			t.Errorf("σz(%g, %s) = %g, want %g", test.x, test.class, s.SigmaZ, test.sz)
		}
	}
}

// Dispersion must decrease from unstable to stable classes and increase
// with distance.
func TestSigmaOrdering(t *testing.T) {
	for _, x := range []float64{0.5, 1, 5, 8.5, 10, 12, 100, 1000, 10000, 50000} {
		for i := 1; i < len(StabilityClasses); i++ {
			a, b := StabilityClasses[i-1], StabilityClasses[i]
			if SigmaY(x, a) <= SigmaY(x, b) {
				t.Errorf("σy(%g): class %s <= class %s", x, a, b)
			}
			if SigmaZ(x, a) <= SigmaZ(x, b) {
				t.Errorf("σz(%g): class %s <= class %s", x, a, b)
			}
		}
	}
	for _, c := range StabilityClasses {
		if SigmaY(2000, c) <= SigmaY(1000, c) || SigmaZ(2000, c) <= SigmaZ(1000, c) {
			t.Errorf("class %s: dispersion doesn't increase with distance", c)
		}
		prevY, prevZ := 0., 0.
		for _, x := range []float64{0.1, 1, 5, 9.99, 10, 10.01, 50, 1000} {
			y, z := SigmaY(x, c), SigmaZ(x, c)
			if !(y > 0) || !(z > 0) {
				t.Errorf("class %s: σ(%g) = %g, %g, want positive", c, x, y, z)
			}
			if y < prevY || z < prevZ {
				t.Errorf("class %s: σ decreases at %g", c, x)
			}
			prevY, prevZ = y, z
		}
	}
}
