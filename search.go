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

	"gonum.org/v1/gonum/floats"
)

// maxBisections bounds the threshold search when the configured
// tolerance is too small to be reached in floating point.
const maxBisections = 100

// Grid returns the downwind distances [m] scanned by MaxConcentration:
// GridMin, GridMin·GridRatio, GridMin·GridRatio², ... up to GridMax.
func (m *Model) Grid() []float64 {
	def := DefaultConfig()
	lo, hi, ratio := m.GridMin, m.GridMax, m.GridRatio
	if !(lo > 0) {
		lo = def.GridMin
	}
	if !(hi >= lo) {
		hi = lo
	}
	if !(ratio > 1) {
		ratio = def.GridRatio
	}
	var xs []float64
	for x := lo; x <= hi; x *= ratio {
		xs = append(xs, x)
	}
	return xs
}

// MaxConcentration returns the largest ground-level centerline
// concentration [mg/m³] on the search grid and the downwind distance [m]
// where it occurs. This is a grid search, so the result is only as
// precise as the grid spacing.
func (m *Model) MaxConcentration(s *Scenario) (value, distance float64) {
	defer m.measure("max_concentration")()
	return m.maxConcentration(s, m.EffectiveHeight(s))
}

func (m *Model) maxConcentration(s *Scenario, h float64) (value, distance float64) {
	xs := m.Grid()
	cs := make([]float64, len(xs))
	for i, x := range xs {
		cs[i] = m.concentration(s, h, x, 0, 0)
	}
	i := floats.MaxIdx(cs)
	return cs[i], xs[i]
}

// ThresholdDistance returns the downwind distance [m] beyond which the
// ground-level centerline concentration stays below threshold [mg/m³].
// It returns exactly zero if the maximum concentration never reaches
// threshold. The search only covers the decreasing part of the
// concentration profile, from the distance of maximum concentration
// to SearchUpperBound. If SearchUpperBound is no farther than the
// distance of maximum concentration, that distance is returned.
func (m *Model) ThresholdDistance(s *Scenario, threshold float64) float64 {
	defer m.measure("threshold_distance")()
	h := m.EffectiveHeight(s)
	maxC, maxX := m.maxConcentration(s, h)
	return m.thresholdDistance(s, h, threshold, maxC, maxX)
}

func (m *Model) thresholdDistance(s *Scenario, h, threshold, maxC, maxX float64) float64 {
	if maxC < threshold {
		return 0
	}
	tol := m.SearchTolerance
	if !(tol > 0) {
		tol = DefaultConfig().SearchTolerance
	}
	lo, hi := maxX, m.SearchUpperBound
	if !(hi > 0) {
		hi = math.Max(lo, DefaultConfig().SearchUpperBound)
	}
	if !(hi > lo) {
		// The configured bound is inside the grid.
		return math.Round(lo)
	}
	for i := 0; hi-lo > tol && i < maxBisections; i++ {
		mid := (lo + hi) / 2
		if m.concentration(s, h, mid, 0, 0) >= threshold {
			lo = mid
		} else {
			hi = mid
		}
	}
	return math.Round(hi)
}
