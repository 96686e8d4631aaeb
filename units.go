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
	"sort"
	"strings"

	"github.com/ctessum/unit"
)

// KilogramPerSecond is the dimension of emission rates.
var KilogramPerSecond = unit.Dimensions{unit.MassDim: 1, unit.TimeDim: -1}

const poundsToKilograms = 0.45359237

// emissionUnits holds the factors that convert supported emission
// rate units to kg/s.
var emissionUnits = map[string]float64{
	"kg/s":   1,
	"g/s":    1.e-3,
	"kg/min": 1. / 60,
	"g/min":  1.e-3 / 60,
	"kg/h":   1. / 3600,
	"lb/s":   poundsToKilograms,
	"lb/min": poundsToKilograms / 60,
	"lb/h":   poundsToKilograms / 3600,
}

// EmissionUnits returns the supported emission rate units.
func EmissionUnits() []string {
	o := make([]string, 0, len(emissionUnits))
	for u := range emissionUnits {
		o = append(o, u)
	}
	sort.Strings(o)
	return o
}

// ConvertEmissionRate converts an emission rate in the given units
// to kg/s.
func ConvertEmissionRate(value float64, units string) (*unit.Unit, error) {
	f, ok := emissionUnits[strings.ToLower(strings.TrimSpace(units))]
	if !ok {
		return nil, fmt.Errorf("hazplume: emission units must be one of %s, but are `%s`",
			strings.Join(EmissionUnits(), ", "), units)
	}
	return unit.New(value*f, KilogramPerSecond), nil
}

// PPMToMgPerM3 converts a mixing ratio [ppm] of a gas with molecular
// weight mw [g/mol] to a mass concentration [mg/m³], where molarVolume
// is the volume of one mole of air [L/mol].
func PPMToMgPerM3(ppm, mw, molarVolume float64) float64 {
	const (
		perPPM        = 1.e-6
		kgPerGram     = 1.e-3
		m3PerLiter    = 1.e-3
		mgPerKilogram = 1.e6
	)
	// The mole is treated as dimensionless.
	ratio := unit.New(ppm*perPPM, unit.Dimless)
	molarMass := unit.New(mw*kgPerGram, unit.Kilogram)
	volume := unit.New(molarVolume*m3PerLiter, unit.Meter3)
	c := unit.Div(unit.Mul(ratio, molarMass), volume)
	if c.Check(unit.KilogramPerMeter3) != nil {
		return 0
	}
	return nonNegative(c.Value() * mgPerKilogram)
}
