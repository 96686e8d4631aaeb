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

const metersPerKilometer = 1000.

// Power-law fits of the Pasquill-Gifford curves, σ = a·x^b with x in km
// and σ in m, indexed by the position of the class in StabilityClasses.
var (
	sigmaYCoefficient = [6]float64{213, 156, 104, 68, 50.5, 34}
	sigmaZCoefficient = [6]float64{440, 120, 61, 32, 19, 12}
	sigmaZExponent    = [6]float64{0.92, 0.92, 0.78, 0.78, 0.67, 0.67}
)

const sigmaYExponent = 0.894

// minSigmaZDistance [m] is the shortest distance the σz fits are
// evaluated at. The fits for classes B and C, and for D and E, cross
// between 8 and 9 m, so σz is held constant closer to the source to
// keep the classes ordered.
const minSigmaZDistance = 10.

// DispersionCoefficients holds the horizontal and vertical plume spread
// at a downwind distance [m].
type DispersionCoefficients struct {
	SigmaY, SigmaZ float64
}

// classIndex returns the coefficient index for c, using class D
// for unrecognized classes.
func classIndex(c StabilityClass) int {
	if i := c.index(); i >= 0 {
		return i
	}
	return ClassD.index()
}

// SigmaY returns the horizontal dispersion coefficient [m] at
// downwind distance x [m] for stability class c.
func SigmaY(x float64, c StabilityClass) float64 {
	if !(x > 0) {
		return 0
	}
	return sigmaYCoefficient[classIndex(c)] * math.Pow(x/metersPerKilometer, sigmaYExponent)
}

// SigmaZ returns the vertical dispersion coefficient [m] at
// downwind distance x [m] for stability class c. Between the source and
// 10 m downwind it returns the value at 10 m.
func SigmaZ(x float64, c StabilityClass) float64 {
	if !(x > 0) {
		return 0
	}
	x = math.Max(x, minSigmaZDistance)
	i := classIndex(c)
	return sigmaZCoefficient[i] * math.Pow(x/metersPerKilometer, sigmaZExponent[i])
}

// Sigmas returns both dispersion coefficients at x.
func Sigmas(x float64, c StabilityClass) DispersionCoefficients {
	return DispersionCoefficients{SigmaY: SigmaY(x, c), SigmaZ: SigmaZ(x, c)}
}
