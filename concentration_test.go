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

func TestConcentration(t *testing.T) {
	m := testModel()
	s := chlorineRelease()

	t.Run("centerline", func(t *testing.T) {
		// Q/(2π u σy σz) · 2exp(-h²/2σz²) with h = 6 m.
		want := 1000. / (2 * math.Pi * 5 * 68 * 32) * 2 * math.Exp(-36./(2*32*32)) * 1000
		if c := m.Concentration(s, 1000, 0, 0); different(c, want, 1.e-10) {
			t.Errorf("c = %g, want %g", c, want)
		}
	})
	t.Run("upwind", func(t *testing.T) {
		for _, x := range []float64{0, -1, -1000} {
			if c := m.Concentration(s, x, 0, 0); c != 0 {
				t.Errorf("c(%g) = %g, want 0", x, c)
			}
		}
	})
	t.Run("symmetric", func(t *testing.T) {
		a := m.Concentration(s, 1000, 50, 0)
		b := m.Concentration(s, 1000, -50, 0)
		if different(a, b, testTolerance) {
			t.Errorf("%g != %g", a, b)
		}
		if a >= m.Concentration(s, 1000, 0, 0) {
			t.Error("off-centerline concentration should be lower")
		}
	})
	t.Run("crosswind", func(t *testing.T) {
		s := chlorineRelease()
		s.ReleaseHeight = 10
		c0 := m.Concentration(s, 1000, 0, 0)
		c100 := m.Concentration(s, 1000, 100, 0)
		c500 := m.Concentration(s, 1000, 500, 0)
		if !(c0 > c100 && c100 > c500 && c500 >= 0) {
			t.Errorf("crosswind profile %g, %g, %g isn't decreasing", c0, c100, c500)
		}
	})
	t.Run("decreasing beyond maximum", func(t *testing.T) {
		for _, h := range []float64{0, 10} {
			s := chlorineRelease()
			s.ReleaseHeight = h
			_, xmax := m.MaxConcentration(s)
			prev := m.Concentration(s, xmax, 0, 0)
			for x := xmax * 1.01; x <= m.SearchUpperBound; x *= 1.01 {
				c := m.Concentration(s, x, 0, 0)
				if !(c < prev) {
					t.Errorf("h = %g: c(%g) = %g isn't less than %g", h, x, c, prev)
					break
				}
				prev = c
			}
		}
	})
	t.Run("linear in emissions", func(t *testing.T) {
		s2 := chlorineRelease()
		s2.EmissionRate = 2
		if different(m.Concentration(s2, 500, 0, 0), 2*m.Concentration(s, 500, 0, 0), testTolerance) {
			t.Error("concentration should be proportional to emission rate")
		}
	})
	t.Run("no emissions", func(t *testing.T) {
		s2 := chlorineRelease()
		s2.EmissionRate = 0
		if c := m.Concentration(s2, 500, 0, 0); c != 0 {
			t.Errorf("c = %g", c)
		}
	})
	t.Run("finite", func(t *testing.T) {
		s2 := chlorineRelease()
		s2.WindSpeed = 0
		s2.Stability = "unknown"
		for _, x := range []float64{1e-6, 1, 1e5} {
			c := m.Concentration(s2, x, 0, 0)
			if math.IsNaN(c) || math.IsInf(c, 0) || c < 0 {
				t.Errorf("c(%g) = %g", x, c)
			}
		}
	})
}

func TestCenterlineProfile(t *testing.T) {
	m := testModel()
	s := chlorineRelease()
	xs := []float64{100, 1000, 10000}
	p := m.CenterlineProfile(s, xs)
	if len(p) != len(xs) {
		t.Fatalf("length %d", len(p))
	}
	for i, c := range p {
		if c.X != xs[i] || c.Y != 0 || c.Z != 0 {
			t.Errorf("sample %d at (%g, %g, %g)", i, c.X, c.Y, c.Z)
		}
		if different(c.Value, m.Concentration(s, xs[i], 0, 0), testTolerance) {
			t.Errorf("sample %d = %g", i, c.Value)
		}
	}
}

// An elevated release at ambient temperature only rises by momentum,
// and its dispersion at 1 km is within the range of the neutral curves.
func TestElevatedNeutralRelease(t *testing.T) {
	m := testModel()
	s := chlorineRelease()
	s.ReleaseHeight = 10
	if r := m.PlumeRise(s); absDifferent(r, 6, testTolerance) {
		t.Errorf("rise = %g, want 6", r)
	}
	if r := m.BuoyantRise(s); r != 0 {
		t.Errorf("buoyant rise = %g, want 0", r)
	}
	for _, test := range []struct {
		name          string
		sigma, lo, hi float64
	}{
		{name: "σy", sigma: SigmaY(1000, s.Stability), lo: 50, hi: 200},
		{name: "σz", sigma: SigmaZ(1000, s.Stability), lo: 20, hi: 100},
	} {
		if !(test.sigma > test.lo && test.sigma < test.hi) {
			t.Errorf("%s(1000) = %g, want between %g and %g", test.name, test.sigma, test.lo, test.hi)
		}
	}
	if c := m.Concentration(s, 1000, 0, 0); !(c > 0) {
		t.Errorf("c(1000) = %g", c)
	}
}
